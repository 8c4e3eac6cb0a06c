package models

import (
	"time"
)

type Category struct {
	ID          uint32 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:255;unique;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	// 分类下还有题目时不允许删除，删除前必须先清空题目
	Challenges []Challenge `gorm:"foreignKey:CategoryID" json:"challenges,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (Category) TableName() string {
	return "thc_category"
}

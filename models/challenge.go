package models

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrFlagHashMissing 表示题目缺少 Flag 哈希（数据损坏），校验按错误处理
var ErrFlagHashMissing = errors.New("challenge has no stored flag hash")

type Challenge struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	CategoryID  uint32    `gorm:"not null;index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	// Flag 仅存 bcrypt 哈希，永远不会出现在任何响应里
	Flag      string    `gorm:"size:255;not null" json:"-"`
	Points    uint      `gorm:"not null" json:"points"`
	IsActive  bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Challenge) TableName() string {
	return "thc_challenge"
}

// CheckFlag 用 bcrypt 校验提交的 Flag。比较由库完成，耗时与前缀匹配
// 长度无关；哈希缺失或损坏时 fail closed：返回 false 并附带错误供记录。
func (ch *Challenge) CheckFlag(submitted string) (bool, error) {
	if ch.Flag == "" {
		return false, ErrFlagHashMissing
	}
	err := bcrypt.CompareHashAndPassword([]byte(ch.Flag), []byte(submitted))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("flag hash unreadable: %w", err)
}

// HashFlag 生成 Flag 的存储形式
func HashFlag(flag string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(flag), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

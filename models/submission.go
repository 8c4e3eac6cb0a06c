package models

import (
	"time"
)

// Submission 一次 Flag 提交记录。只追加：创建后不存在任何更新或删除路径。
type Submission struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	UserID        uint32    `gorm:"not null;index:idx_user_challenge" json:"user_id"`
	ChallengeID   uint32    `gorm:"not null;index:idx_user_challenge" json:"challenge_id"`
	SubmittedFlag string    `gorm:"size:500;not null" json:"submitted_flag"`
	IsCorrect     bool      `gorm:"not null" json:"is_correct"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Submission) TableName() string {
	return "thc_submission"
}

package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID       uint32 `gorm:"primarykey" json:"id"`
	Name     string `gorm:"size:100;unique;not null" json:"name"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	// Score 只能由计分引擎递增，禁止直接覆盖
	Score uint `gorm:"not null;default:0" json:"score"`
	// ScoreAchievedAt 只在 Score 变化时更新，作为排行榜同分时的
	// 平局判定依据：时间越早排名越高
	ScoreAchievedAt time.Time `gorm:"not null" json:"score_achieved_at"`
	IsAdmin         bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "thc_user"
}

// BeforeSave GORM Hook，在保存用户前自动哈希密码
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	// 在新用户创建时或密码变更时执行哈希
	if (u.ID == 0 && u.Password != "") || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

// BeforeCreate 保证 ScoreAchievedAt 永远有值，排名查询不会读到零时间
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ScoreAchievedAt.IsZero() {
		u.ScoreAchievedAt = time.Now()
	}
	return nil
}

// CheckPassword 校验密码是否正确
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// PublicUserInfo 排行榜与管理后台使用的用户视图
type PublicUserInfo struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Score uint   `json:"score"`
}

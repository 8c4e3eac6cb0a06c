package services

import (
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/The-Hackers-Corner/thc-website/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// 内存库只允许单连接，否则连接池里每个连接各是一个空库
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Challenge{}, &models.Submission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		Name:  name,
		Email: fmt.Sprintf("%s@test.local", name),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return category
}

func createChallenge(t *testing.T, db *gorm.DB, categoryID uint32, title, flag string, points uint, active bool) models.Challenge {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(flag), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash flag: %v", err)
	}
	challenge := models.Challenge{
		CategoryID: categoryID,
		Title:      title,
		Flag:       string(hashed),
		Points:     points,
		IsActive:   active,
	}
	if err := db.Create(&challenge).Error; err != nil {
		t.Fatalf("create challenge %s: %v", title, err)
	}
	return challenge
}

func userScore(t *testing.T, db *gorm.DB, id uint32) uint {
	t.Helper()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("reload user %d: %v", id, err)
	}
	return user.Score
}

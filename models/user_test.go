package models

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserPasswordHashedOnCreate(t *testing.T) {
	db := newUserTestDB(t)

	user := User{Name: "alice", Email: "alice@test.local", Password: "s3cret-pass"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	var saved User
	if err := db.First(&saved, user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.Password == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if !saved.CheckPassword("s3cret-pass") {
		t.Fatal("CheckPassword rejects the original password")
	}
	if saved.CheckPassword("wrong") {
		t.Fatal("CheckPassword accepts a wrong password")
	}
}

func TestUserScoreAchievedAtDefaulted(t *testing.T) {
	db := newUserTestDB(t)

	before := time.Now().Add(-time.Second)
	user := User{Name: "bob", Email: "bob@test.local", Password: "s3cret-pass"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	var saved User
	db.First(&saved, user.ID)
	if saved.ScoreAchievedAt.IsZero() || saved.ScoreAchievedAt.Before(before) {
		t.Fatalf("ScoreAchievedAt = %v, want defaulted to creation time", saved.ScoreAchievedAt)
	}
}

func TestUserPasswordNotRehashedOnUnrelatedUpdate(t *testing.T) {
	db := newUserTestDB(t)

	user := User{Name: "carol", Email: "carol@test.local", Password: "s3cret-pass"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	hashBefore := user.Password

	// 计分引擎更新分数的方式：按主键 Updates 指定列
	err := db.Model(&User{ID: user.ID}).Updates(map[string]interface{}{
		"score":             100,
		"score_achieved_at": time.Now(),
	}).Error
	if err != nil {
		t.Fatalf("score update: %v", err)
	}

	var saved User
	db.First(&saved, user.ID)
	if saved.Password != hashBefore {
		t.Fatal("score update must not touch the password hash")
	}
	if saved.Score != 100 {
		t.Fatalf("score = %d, want 100", saved.Score)
	}
}

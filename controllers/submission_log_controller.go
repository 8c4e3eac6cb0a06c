package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/The-Hackers-Corner/thc-website/utils"
)

// GetSubmissionLogs 管理员查询 Flag 提交日志，联表带出用户名和题目名
func GetSubmissionLogs(c *gin.Context) {
	type LogDetail struct {
		ID             uint64    `json:"id"`
		UserID         uint32    `json:"user_id"`
		UserName       string    `json:"user_name"`
		ChallengeID    uint32    `json:"challenge_id"`
		ChallengeTitle string    `json:"challenge_title"`
		SubmittedFlag  string    `json:"submitted_flag"`
		IsCorrect      bool      `json:"is_correct"`
		CreatedAt      time.Time `json:"created_at"`
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := db.Table("thc_submission s").
		Select("s.id, s.user_id, u.name AS user_name, s.challenge_id, c.title AS challenge_title, s.submitted_flag, s.is_correct, s.created_at").
		Joins("LEFT JOIN thc_user u ON s.user_id = u.id").
		Joins("LEFT JOIN thc_challenge c ON s.challenge_id = c.id")

	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("s.user_id = ?", userID)
	}
	if challengeID := c.Query("challenge_id"); challengeID != "" {
		query = query.Where("s.challenge_id = ?", challengeID)
	}
	if correct := c.Query("correct"); correct != "" {
		query = query.Where("s.is_correct = ?", correct == "1" || correct == "true")
	}

	var results []LogDetail
	if err := query.Order("s.created_at DESC").Limit(limit).Find(&results).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	utils.Success(c, "success", gin.H{"logs": results})
}

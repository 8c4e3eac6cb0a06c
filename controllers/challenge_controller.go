package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/The-Hackers-Corner/thc-website/dto"
	"github.com/The-Hackers-Corner/thc-website/models"
	"github.com/The-Hackers-Corner/thc-website/services"
	"github.com/The-Hackers-Corner/thc-website/utils"
)

// currentUserID 从中间件上下文读取登录用户，未登录返回 (0, false)
func currentUserID(c *gin.Context) (uint32, bool) {
	userIDAny, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userIDAny.(uint32), true
}

// ListChallenges —— 按分类分组的激活题目列表，登录时附带已解出标记
func ListChallenges(c *gin.Context) {
	var categories []models.Category
	if err := db.Preload("Challenges", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_active = ?", true).Order("points ASC")
	}).Order("name ASC").Find(&categories).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	solved := map[uint32]bool{}
	if uid, ok := currentUserID(c); ok {
		ids, err := submissions.SolvedChallengeIDs(uid)
		if err != nil {
			utils.Error(c, 5000, "查询失败")
			return
		}
		for _, id := range ids {
			solved[id] = true
		}
	}

	groups := make([]dto.CategoryGroupResp, 0, len(categories))
	for _, cat := range categories {
		items := make([]dto.ChallengeItemResp, 0, len(cat.Challenges))
		for _, ch := range cat.Challenges {
			items = append(items, dto.ChallengeItemResp{
				ID:     ch.ID,
				Title:  ch.Title,
				Points: ch.Points,
				Solved: solved[ch.ID],
			})
		}
		groups = append(groups, dto.CategoryGroupResp{
			ID:          cat.ID,
			Name:        cat.Name,
			Slug:        cat.Slug,
			Description: cat.Description,
			Challenges:  items,
		})
	}

	utils.Success(c, "success", gin.H{"categories": groups})
}

// GetChallengeDetail —— 激活题目详情，登录时附带本人提交历史
func GetChallengeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var challenge models.Challenge
	if err := db.Preload("Category").First(&challenge, id).Error; err != nil {
		utils.Error(c, 4004, "题目不存在")
		return
	}
	if !challenge.IsActive {
		utils.Error(c, 4004, "题目不存在")
		return
	}

	resp := dto.ChallengeDetailResp{
		ID:          challenge.ID,
		Title:       challenge.Title,
		Description: challenge.Description,
		Points:      challenge.Points,
		Submissions: []dto.SubmissionHistoryItem{},
	}
	if challenge.Category != nil {
		resp.Category = dto.CategoryBrief{
			ID:   challenge.Category.ID,
			Name: challenge.Category.Name,
			Slug: challenge.Category.Slug,
		}
	}

	if uid, ok := currentUserID(c); ok {
		history, err := submissions.History(uid, challenge.ID)
		if err != nil {
			utils.Error(c, 5000, "提交记录查询失败")
			return
		}
		for _, sub := range history {
			if sub.IsCorrect {
				resp.HasSolved = true
			}
			resp.Submissions = append(resp.Submissions, dto.SubmissionHistoryItem{
				ID:            sub.ID,
				SubmittedFlag: sub.SubmittedFlag,
				IsCorrect:     sub.IsCorrect,
				CreatedAt:     sub.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
	}

	utils.Success(c, "success", resp)
}

// SubmitFlag —— 核心提交接口，拒绝原因逐一映射为业务码
func SubmitFlag(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))

	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "未登录")
		return
	}

	result, err := submissions.SubmitFlag(uid, uint32(challengeID), req.Flag)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			utils.Error(c, 1001, err.Error())
		case errors.Is(err, services.ErrChallengeNotFound):
			utils.Error(c, 4004, err.Error())
		case errors.Is(err, services.ErrChallengeInactive):
			utils.Error(c, 4201, err.Error())
		case errors.Is(err, services.ErrAlreadySolved):
			utils.Error(c, 4202, err.Error())
		case errors.Is(err, services.ErrDuplicateAttempt):
			utils.Error(c, 4203, err.Error())
		default:
			utils.Error(c, 5000, "提交处理失败")
		}
		return
	}

	if result.Correct {
		if result.PointsAwarded > 0 {
			ranking.InvalidateCache(c.Request.Context())
		}
		utils.Success(c, "Congratulations! You solved the challenge!", gin.H{
			"correct":        true,
			"points_awarded": result.PointsAwarded,
		})
		return
	}

	utils.Success(c, "Incorrect flag. Try again!", gin.H{
		"correct":        false,
		"points_awarded": 0,
	})
}

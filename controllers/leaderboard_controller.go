package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/The-Hackers-Corner/thc-website/models"
	"github.com/The-Hackers-Corner/thc-website/utils"
)

// GetLeaderboard 查询排行榜，登录时附带本人排名
func GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := ranking.TopN(c.Request.Context(), limit)
	if err != nil {
		utils.Error(c, 5000, "排行榜查询失败")
		return
	}

	resp := gin.H{"users": entries}

	if uid, ok := currentUserID(c); ok {
		var user models.User
		if err := db.First(&user, uid).Error; err == nil {
			rank, err := ranking.RankOf(&user)
			if err == nil {
				resp["me"] = gin.H{
					"rank":  rank,
					"name":  user.Name,
					"score": user.Score,
				}
			}
		}
	}

	utils.Success(c, "success", resp)
}

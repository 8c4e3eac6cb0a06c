package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/The-Hackers-Corner/thc-website/models"
	"github.com/The-Hackers-Corner/thc-website/utils"
)

// GetUserList 管理员查询用户列表
func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := db.Model(&models.User{})
	if kw := c.Query("search"); kw != "" {
		like := "%" + kw + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("id ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"page":  page,
		"limit": limit,
		"users": users,
	})
}

// UpdateUserAdmin 切换用户的管理员标记，不允许操作自己
func UpdateUserAdmin(c *gin.Context) {
	targetID, _ := strconv.Atoi(c.Param("id"))

	uid, _ := currentUserID(c)
	if uint32(targetID) == uid {
		utils.Error(c, 4005, "You cannot modify your own administrative privileges")
		return
	}

	var req struct {
		IsAdmin *bool `json:"is_admin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	result := db.Model(&models.User{}).Where("id = ?", targetID).Update("is_admin", *req.IsAdmin)
	if result.Error != nil {
		utils.Error(c, 5000, "更新失败: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "User updated successfully", nil)
}

// DeleteUser 删除用户，不允许删除自己
func DeleteUser(c *gin.Context) {
	targetID, _ := strconv.Atoi(c.Param("id"))

	uid, _ := currentUserID(c)
	if uint32(targetID) == uid {
		utils.Error(c, 4005, "You cannot delete your own account")
		return
	}

	result := db.Delete(&models.User{}, targetID)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "User deleted successfully", nil)
}

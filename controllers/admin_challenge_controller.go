package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/The-Hackers-Corner/thc-website/dto"
	"github.com/The-Hackers-Corner/thc-website/models"
	"github.com/The-Hackers-Corner/thc-website/utils"
)

// AdminListChallenges —— 管理员题目列表（含隐藏题目，支持筛选+分页）
func AdminListChallenges(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := db.Model(&models.Challenge{}).Preload("Category")
	if catID := c.Query("category_id"); catID != "" {
		query = query.Where("category_id = ?", catID)
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "1" || active == "true")
	}
	if kw := c.Query("keyword"); kw != "" {
		like := "%" + kw + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(c, 5000, "查询失败: "+err.Error())
		return
	}

	var challenges []models.Challenge
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&challenges).Error; err != nil {
		utils.Error(c, 5000, "查询失败: "+err.Error())
		return
	}

	utils.Success(c, "success", gin.H{
		"total":      total,
		"page":       page,
		"limit":      limit,
		"challenges": challenges,
	})
}

// CreateChallenge 新建题目。Flag 明文只接收一次，落库前哈希；
// 未提供 Flag 时自动生成并在响应中返回明文，仅此一次。
func CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	var category models.Category
	if err := db.First(&category, req.CategoryID).Error; err != nil {
		utils.Error(c, 4001, "分类不存在")
		return
	}

	generated := ""
	plainFlag := req.Flag
	if plainFlag == "" {
		plainFlag = utils.GenerateFlag()
		generated = plainFlag
	}
	hashed, err := models.HashFlag(plainFlag)
	if err != nil {
		utils.Error(c, 5000, "Flag 处理失败")
		return
	}

	challenge := models.Challenge{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Flag:        hashed,
		Points:      req.Points,
		IsActive:    req.IsActive,
	}
	if err := db.Create(&challenge).Error; err != nil {
		utils.Error(c, 5000, "创建题目失败: "+err.Error())
		return
	}

	resp := gin.H{"id": challenge.ID}
	if generated != "" {
		resp["generated_flag"] = generated
	}
	utils.Success(c, "Challenge created successfully", resp)
}

// UpdateChallenge 修改题目，Flag 留空时保留原哈希
func UpdateChallenge(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req dto.UpdateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	var challenge models.Challenge
	if err := db.First(&challenge, id).Error; err != nil {
		utils.Error(c, 4004, "题目不存在")
		return
	}

	var category models.Category
	if err := db.First(&category, req.CategoryID).Error; err != nil {
		utils.Error(c, 4001, "分类不存在")
		return
	}

	challenge.CategoryID = req.CategoryID
	challenge.Title = req.Title
	challenge.Description = req.Description
	challenge.Points = req.Points
	challenge.IsActive = req.IsActive
	if req.Flag != "" {
		hashed, err := models.HashFlag(req.Flag)
		if err != nil {
			utils.Error(c, 5000, "Flag 处理失败")
			return
		}
		challenge.Flag = hashed
	}

	if err := db.Save(&challenge).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "Challenge updated successfully", nil)
}

// DeleteChallenge 删除题目
func DeleteChallenge(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := db.Delete(&models.Challenge{}, id)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "题目不存在")
		return
	}

	utils.Success(c, "Challenge deleted successfully", nil)
}

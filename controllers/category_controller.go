package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/The-Hackers-Corner/thc-website/dto"
	"github.com/The-Hackers-Corner/thc-website/models"
	"github.com/The-Hackers-Corner/thc-website/utils"
)

// GetCategoryList 公开的分类列表
func GetCategoryList(c *gin.Context) {
	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}
	utils.Success(c, "success", gin.H{"categories": categories})
}

// CreateCategory 新增分类，slug 由名称派生
func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	slug := utils.Slugify(req.Name)
	if slug == "" {
		utils.Error(c, 1002, "分类名无法生成有效 slug")
		return
	}

	var existing models.Category
	if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		utils.Error(c, 4001, "Category already exists")
		return
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}
	if err := db.Create(&category).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Category created successfully", gin.H{
		"id":   category.ID,
		"slug": category.Slug,
	})
}

// UpdateCategory 修改分类，slug 随名称重新派生
func UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		utils.Error(c, 4004, "分类不存在")
		return
	}

	slug := utils.Slugify(req.Name)
	if slug == "" {
		utils.Error(c, 1002, "分类名无法生成有效 slug")
		return
	}

	category.Name = req.Name
	category.Slug = slug
	category.Description = req.Description

	if err := db.Save(&category).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "Category updated successfully", nil)
}

// DeleteCategory 删除分类。分类下还有题目时拒绝删除，保证引用完整性。
func DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var challengeCount int64
	db.Model(&models.Challenge{}).Where("category_id = ?", id).Count(&challengeCount)
	if challengeCount > 0 {
		utils.Error(c, 4002, "Cannot delete a category that has challenges")
		return
	}

	result := db.Delete(&models.Category{}, id)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "分类不存在")
		return
	}

	utils.Success(c, "Category deleted successfully", nil)
}

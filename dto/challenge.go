package dto

import "strings"

// ========== 请求 DTO ==========

type SubmitFlagReq struct {
	Flag string `json:"flag" binding:"required"`
}

type CreateChallengeReq struct {
	CategoryID  uint32 `json:"category_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	// Flag 留空时由服务端生成，明文只在创建响应里返回一次
	Flag     string `json:"flag" binding:"max=500"`
	Points   uint   `json:"points"`
	IsActive bool   `json:"is_active"`
}

func (r *CreateChallengeReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Flag = strings.TrimSpace(r.Flag)
}

type UpdateChallengeReq struct {
	CategoryID  uint32 `json:"category_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	// Flag 留空表示保留原哈希不变
	Flag     string `json:"flag" binding:"max=500"`
	Points   uint   `json:"points"`
	IsActive bool   `json:"is_active"`
}

func (r *UpdateChallengeReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Flag = strings.TrimSpace(r.Flag)
}

// ========== 响应 DTO ==========

type ChallengeItemResp struct {
	ID     uint32 `json:"id"`
	Title  string `json:"title"`
	Points uint   `json:"points"`
	Solved bool   `json:"solved"`
}

type CategoryGroupResp struct {
	ID          uint32              `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	Challenges  []ChallengeItemResp `json:"challenges"`
}

type SubmissionHistoryItem struct {
	ID            uint64 `json:"id"`
	SubmittedFlag string `json:"submitted_flag"`
	IsCorrect     bool   `json:"is_correct"`
	CreatedAt     string `json:"created_at"`
}

type ChallengeDetailResp struct {
	ID          uint32                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Points      uint                    `json:"points"`
	Category    CategoryBrief           `json:"category"`
	HasSolved   bool                    `json:"has_solved"`
	Submissions []SubmissionHistoryItem `json:"submissions"`
}

type CategoryBrief struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

package services

import (
	"gorm.io/gorm"

	"github.com/The-Hackers-Corner/thc-website/models"
)

// UserStats 个人主页的统计卡片
type UserStats struct {
	TotalChallenges  int64 `json:"total_challenges"`
	SolvedChallenges int64 `json:"solved_challenges"`
	TotalPoints      uint  `json:"total_points"`
	Rank             uint  `json:"rank"`
}

type StatsService struct {
	db      *gorm.DB
	ranking *RankingService
}

func NewStatsService(db *gorm.DB, ranking *RankingService) *StatsService {
	return &StatsService{db: db, ranking: ranking}
}

func (s *StatsService) ForUser(user *models.User) (UserStats, error) {
	var total int64
	if err := s.db.Model(&models.Challenge{}).
		Where("is_active = ?", true).Count(&total).Error; err != nil {
		return UserStats{}, err
	}

	var solved int64
	if err := s.db.Model(&models.Submission{}).
		Where("user_id = ? AND is_correct = ?", user.ID, true).
		Distinct("challenge_id").Count(&solved).Error; err != nil {
		return UserStats{}, err
	}

	rank, err := s.ranking.RankOf(user)
	if err != nil {
		return UserStats{}, err
	}

	return UserStats{
		TotalChallenges:  total,
		SolvedChallenges: solved,
		TotalPoints:      user.Score,
		Rank:             rank,
	}, nil
}

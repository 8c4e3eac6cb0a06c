package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/The-Hackers-Corner/thc-website/models"
)

const maxFlagLength = 500

// SubmitResult 一次被受理的提交的结果。PointsAwarded 在重复加分被
// 拦截时为 0，即使 Correct 为 true。
type SubmitResult struct {
	Submission    models.Submission `json:"submission"`
	Correct       bool              `json:"correct"`
	PointsAwarded uint              `json:"points_awarded"`
}

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// SubmitFlag 处理一次 Flag 提交。前置检查按固定顺序执行：
//  1. 题目存在且处于激活状态
//  2. 该用户尚未解出此题
//  3. 完全相同的 Flag 字符串未被该用户对此题提交过
//
// 通过后校验 Flag、落库提交记录，答对且首次答对时加分。整个
// 检查-校验-落库-加分序列在一个事务中执行，并对提交用户的行加锁，
// 同一用户的并发提交被串行化，不可能重复加分；不同用户之间互不影响。
func (s *SubmissionService) SubmitFlag(userID uint32, challengeID uint32, rawFlag string) (SubmitResult, error) {
	flag := strings.TrimSpace(rawFlag)
	if flag == "" || len(flag) > maxFlagLength {
		return SubmitResult{}, ErrInvalidInput
	}

	var result SubmitResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var challenge models.Challenge
		if err := tx.First(&challenge, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChallengeNotFound
			}
			return err
		}
		if !challenge.IsActive {
			return ErrChallengeInactive
		}

		var solved int64
		if err := tx.Model(&models.Submission{}).
			Where("user_id = ? AND challenge_id = ? AND is_correct = ?", userID, challengeID, true).
			Count(&solved).Error; err != nil {
			return err
		}
		if solved > 0 {
			return ErrAlreadySolved
		}

		var repeats int64
		if err := tx.Model(&models.Submission{}).
			Where("user_id = ? AND challenge_id = ? AND submitted_flag = ?", userID, challengeID, flag).
			Count(&repeats).Error; err != nil {
			return err
		}
		if repeats > 0 {
			return ErrDuplicateAttempt
		}

		correct, verifyErr := challenge.CheckFlag(flag)
		if verifyErr != nil {
			// fail closed：按答错处理并照常落库，故障只进日志
			log.Printf("challenge %d: flag verification fault: %v", challenge.ID, verifyErr)
		}

		submission := models.Submission{
			UserID:        userID,
			ChallengeID:   challengeID,
			SubmittedFlag: flag,
			IsCorrect:     correct,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}

		result = SubmitResult{Submission: submission, Correct: correct}
		if !correct {
			return nil
		}

		awarded, err := awardIfEligible(tx, &user, &challenge, &submission)
		if err != nil {
			return err
		}
		if awarded {
			result.PointsAwarded = challenge.Points
		}
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}
	return result, nil
}

// awardIfEligible 首次答对时给用户加分。加分前在同一事务内复查
// 该 (user, challenge) 是否已存在其他正确提交，有则跳过——配合调用方
// 持有的用户行锁，复查和递增是原子的，积分最多发放一次。
func awardIfEligible(tx *gorm.DB, user *models.User, challenge *models.Challenge, current *models.Submission) (bool, error) {
	var prior int64
	if err := tx.Model(&models.Submission{}).
		Where("user_id = ? AND challenge_id = ? AND is_correct = ? AND id <> ?",
			user.ID, challenge.ID, true, current.ID).
		Count(&prior).Error; err != nil {
		return false, err
	}
	if prior > 0 {
		log.Printf("user %d challenge %d: points already awarded, skipping", user.ID, challenge.ID)
		return false, nil
	}

	// score = score + points 由数据库原子执行，不回写整行，避免丢失更新
	err := tx.Model(&models.User{ID: user.ID}).Updates(map[string]interface{}{
		"score":             gorm.Expr("score + ?", challenge.Points),
		"score_achieved_at": time.Now(),
	}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// SolvedChallengeIDs 用户已解出的题目 ID 列表
func (s *SubmissionService) SolvedChallengeIDs(userID uint32) ([]uint32, error) {
	var ids []uint32
	err := s.db.Model(&models.Submission{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Distinct("challenge_id").
		Pluck("challenge_id", &ids).Error
	return ids, err
}

// History 用户对某题的全部提交记录，新的在前
func (s *SubmissionService) History(userID uint32, challengeID uint32) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Order("created_at DESC, id DESC").
		Find(&submissions).Error
	return submissions, err
}

package services

import "errors"

// 提交流程的业务拒绝。这些都是预期内、对用户可见的结果，不算故障。
var (
	ErrInvalidInput      = errors.New("flag must be a non-empty string of at most 500 characters")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrChallengeInactive = errors.New("this challenge is not active")
	ErrAlreadySolved     = errors.New("you have already solved this challenge")
	ErrDuplicateAttempt  = errors.New("you have already submitted this flag")
	ErrUserNotFound      = errors.New("user not found")
)

// IsRejection 判断 err 是否为预期内的提交拒绝（区别于服务端故障）
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrChallengeInactive) ||
		errors.Is(err, ErrAlreadySolved) ||
		errors.Is(err, ErrDuplicateAttempt)
}

package services

import (
	"testing"

	"github.com/The-Hackers-Corner/thc-website/models"
)

func TestStatsForUser(t *testing.T) {
	db := newTestDB(t)
	subSvc := NewSubmissionService(db)
	statsSvc := NewStatsService(db, NewRankingService(db, nil))

	cat := createCategory(t, db, "Web", "web")
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ch1 := createChallenge(t, db, cat.ID, "A", "THC{A}", 50, true)
	ch2 := createChallenge(t, db, cat.ID, "B", "THC{B}", 75, true)
	createChallenge(t, db, cat.ID, "Hidden", "THC{C}", 10, false)

	if _, err := subSvc.SubmitFlag(alice.ID, ch1.ID, "THC{A}"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := subSvc.SubmitFlag(alice.ID, ch2.ID, "nope"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := subSvc.SubmitFlag(bob.ID, ch1.ID, "THC{A}"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := subSvc.SubmitFlag(bob.ID, ch2.ID, "THC{B}"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var user models.User
	db.First(&user, alice.ID)
	got, err := statsSvc.ForUser(&user)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}

	// 隐藏题不计入总数；答错的提交不计入已解
	if got.TotalChallenges != 2 {
		t.Errorf("TotalChallenges = %d, want 2", got.TotalChallenges)
	}
	if got.SolvedChallenges != 1 {
		t.Errorf("SolvedChallenges = %d, want 1", got.SolvedChallenges)
	}
	if got.TotalPoints != 50 {
		t.Errorf("TotalPoints = %d, want 50", got.TotalPoints)
	}
	if got.Rank != 2 {
		t.Errorf("Rank = %d, want 2 (bob has more points)", got.Rank)
	}
}

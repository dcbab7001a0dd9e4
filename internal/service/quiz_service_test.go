package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"love-by-flavour/internal/flavour"
)

func neutralAnswers() []int {
	answers := make([]int, flavour.QuestionCount)
	for i := range answers {
		answers[i] = 2
	}
	return answers
}

func TestQuizServiceClassifyPure(t *testing.T) {
	quizzes := &mockQuizResultRepo{}
	users := newMockUserRepo()
	svc := NewQuizService(quizzes, users, zap.NewNop())

	result, err := svc.Classify(neutralAnswers())
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !flavour.IsValid(result.Flavour) {
		t.Fatalf("unknown flavour %q", result.Flavour)
	}
	if result.ID != "" || result.UserID != "" {
		t.Fatalf("pure classify must not mint identity: %+v", result)
	}
	if len(quizzes.results) != 0 {
		t.Fatalf("pure classify must not persist")
	}
}

func TestQuizServiceClassifyInvalid(t *testing.T) {
	svc := NewQuizService(&mockQuizResultRepo{}, newMockUserRepo(), zap.NewNop())

	if _, err := svc.Classify([]int{1, 2, 3}); !errors.Is(err, flavour.ErrInvalidAnswers) {
		t.Fatalf("expected ErrInvalidAnswers, got %v", err)
	}
}

func TestQuizServiceSubmitPersistsAndUpdatesFlavour(t *testing.T) {
	quizzes := &mockQuizResultRepo{}
	users := newMockUserRepo()
	svc := NewQuizService(quizzes, users, zap.NewNop())

	result, err := svc.SubmitForUser(context.Background(), "u1", neutralAnswers())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.ID == "" || result.UserID != "u1" || result.CreatedAt.IsZero() {
		t.Fatalf("submit did not fill identity fields: %+v", result)
	}
	if len(quizzes.results) != 1 {
		t.Fatalf("expected one persisted result, got %d", len(quizzes.results))
	}
	if users.flavourUpdates["u1"] != result.Flavour {
		t.Fatalf("expected user flavour update to %s, got %s", result.Flavour, users.flavourUpdates["u1"])
	}
}

func TestQuizServiceSubmitCreateFailure(t *testing.T) {
	quizzes := &mockQuizResultRepo{createErr: errors.New("db down")}
	users := newMockUserRepo()
	svc := NewQuizService(quizzes, users, zap.NewNop())

	if _, err := svc.SubmitForUser(context.Background(), "u1", neutralAnswers()); !errors.Is(err, quizzes.createErr) {
		t.Fatalf("expected create error, got %v", err)
	}
	if len(users.flavourUpdates) != 0 {
		t.Fatalf("flavour must not change when the result was not saved")
	}
}

func TestQuizServiceSubmitSurvivesFlavourUpdateFailure(t *testing.T) {
	quizzes := &mockQuizResultRepo{}
	users := newMockUserRepo()
	users.updateFlavourErr = errors.New("db hiccup")
	svc := NewQuizService(quizzes, users, zap.NewNop())

	result, err := svc.SubmitForUser(context.Background(), "u1", neutralAnswers())
	if err != nil {
		t.Fatalf("submit should tolerate flavour update failure, got %v", err)
	}
	if len(quizzes.results) != 1 || quizzes.results[0].ID != result.ID {
		t.Fatalf("result not persisted: %+v", quizzes.results)
	}
}

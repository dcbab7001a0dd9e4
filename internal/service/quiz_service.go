package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"love-by-flavour/internal/domain"
	"love-by-flavour/internal/flavour"
	"love-by-flavour/internal/repository"
)

// QuizService corre el clasificador y persiste resultados cuando hay usuario.
type QuizService struct {
	quizRepo repository.QuizResultRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewQuizService(quizRepo repository.QuizResultRepository, userRepo repository.UserRepository, logger *zap.Logger) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Classify corre el clasificador puro, sin tocar la base.
func (s *QuizService) Classify(answers []int) (domain.QuizResult, error) {
	traits, err := flavour.Score(answers)
	if err != nil {
		return domain.QuizResult{}, err
	}
	return domain.QuizResult{
		Answers: answers,
		Traits:  traits,
		Flavour: flavour.ClassifyVector(traits),
	}, nil
}

// SubmitForUser clasifica, guarda el resultado y actualiza el sabor del usuario.
func (s *QuizService) SubmitForUser(ctx context.Context, userID string, answers []int) (domain.QuizResult, error) {
	result, err := s.Classify(answers)
	if err != nil {
		return domain.QuizResult{}, err
	}

	result.ID = uuid.NewString()
	result.UserID = userID
	result.CreatedAt = time.Now().UTC()

	if err := s.quizRepo.Create(ctx, result); err != nil {
		return domain.QuizResult{}, fmt.Errorf("save quiz result: %w", err)
	}

	if err := s.userRepo.UpdateFlavour(ctx, userID, result.Flavour); err != nil {
		// El resultado ya quedo guardado; el sabor del usuario se corrige solo
		// en el proximo submit.
		s.logger.Warn("update user flavour failed", zap.Error(err), zap.String("user_id", userID))
	}

	return result, nil
}

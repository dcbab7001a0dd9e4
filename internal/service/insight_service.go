package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"love-by-flavour/internal/flavour"
	"love-by-flavour/internal/llm"
	"love-by-flavour/internal/repository"
)

// ErrUnknownFlavour indica un sabor fuera de la enumeracion fija.
var ErrUnknownFlavour = errors.New("unknown flavour")

// TTLs por tipo de analisis. La compatibilidad entre dos sabores fijos cambia
// poco, asi que vive mas que los analisis atados a la historia del usuario.
const (
	patternsTTL      = 24 * time.Hour
	compatibilityTTL = 7 * 24 * time.Hour
	exInsightTTL     = 24 * time.Hour
)

// InsightService genera lecturas narrativas con el LLM, siempre a traves del
// cache: cada tipo de analisis es un prompt distinto sobre el mismo GetOrCompute.
type InsightService struct {
	llmClient   llm.Client
	cache       *AICache
	partnerRepo repository.PartnerRepository
	quizRepo    repository.QuizResultRepository
	logger      *zap.Logger
}

func NewInsightService(
	llmClient llm.Client,
	cache *AICache,
	partnerRepo repository.PartnerRepository,
	quizRepo repository.QuizResultRepository,
	logger *zap.Logger,
) *InsightService {
	return &InsightService{
		llmClient:   llmClient,
		cache:       cache,
		partnerRepo: partnerRepo,
		quizRepo:    quizRepo,
		logger:      logger,
	}
}

// AnalyzePatterns cruza el sabor del usuario con su historial de ex parejas.
func (s *InsightService) AnalyzePatterns(ctx context.Context, userID string) (json.RawMessage, error) {
	latest, err := s.quizRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest quiz result for user %s: %w", userID, err)
	}

	partners, err := s.partnerRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list partners for user %s: %w", userID, err)
	}

	input := struct {
		Flavour  flavour.Flavour     `json:"flavour"`
		Traits   flavour.TraitVector `json:"traits"`
		Partners []patternPartner    `json:"partners"`
	}{
		Flavour:  latest.Flavour,
		Traits:   latest.Traits,
		Partners: make([]patternPartner, 0, len(partners)),
	}
	for _, p := range partners {
		input.Partners = append(input.Partners, patternPartner{Flavour: p.Flavour, Notes: p.Notes})
	}

	return s.cache.GetOrCompute(ctx, input, AnalysisTypePatterns, patternsTTL, func(ctx context.Context) (string, error) {
		return s.llmClient.Generate(ctx, buildPatternsPrompt(latest.Flavour, latest.Traits, partners))
	})
}

type patternPartner struct {
	Flavour flavour.Flavour `json:"flavour"`
	Notes   string          `json:"notes,omitempty"`
}

// AnalyzeCompatibility explica el match entre dos sabores fijos.
func (s *InsightService) AnalyzeCompatibility(ctx context.Context, a, b flavour.Flavour) (json.RawMessage, error) {
	if !flavour.IsValid(a) || !flavour.IsValid(b) {
		return nil, ErrUnknownFlavour
	}

	// Par normalizado: (a,b) y (b,a) son el mismo analisis.
	if b < a {
		a, b = b, a
	}
	input := struct {
		A flavour.Flavour `json:"a"`
		B flavour.Flavour `json:"b"`
	}{A: a, B: b}

	return s.cache.GetOrCompute(ctx, input, AnalysisTypeCompatibility, compatibilityTTL, func(ctx context.Context) (string, error) {
		return s.llmClient.Generate(ctx, buildCompatibilityPrompt(a, b))
	})
}

// PartnerInsight genera la lectura de una ex pareja puntual del usuario.
func (s *InsightService) PartnerInsight(ctx context.Context, userID, partnerID string) (json.RawMessage, error) {
	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get partner %s: %w", partnerID, err)
	}
	if partner.UserID != userID {
		return nil, fmt.Errorf("get partner %s: %w", partnerID, pgx.ErrNoRows)
	}

	input := struct {
		PartnerID string              `json:"partner_id"`
		Flavour   flavour.Flavour     `json:"flavour"`
		Traits    flavour.TraitVector `json:"traits"`
		Notes     string              `json:"notes,omitempty"`
	}{
		PartnerID: partner.ID,
		Flavour:   partner.Flavour,
		Traits:    partner.Traits,
		Notes:     partner.Notes,
	}

	return s.cache.GetOrCompute(ctx, input, AnalysisTypeExInsight, exInsightTTL, func(ctx context.Context) (string, error) {
		return s.llmClient.Generate(ctx, buildExInsightPrompt(partner))
	})
}

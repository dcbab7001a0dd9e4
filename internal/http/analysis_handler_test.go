package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"love-by-flavour/internal/domain"
	"love-by-flavour/internal/flavour"
	"love-by-flavour/internal/llm"
	"love-by-flavour/internal/service"
)

type mockCacheRepo struct {
	entries map[string]domain.AICacheEntry
}

func (m *mockCacheRepo) Get(_ context.Context, key string) (domain.AICacheEntry, error) {
	entry, ok := m.entries[key]
	if !ok {
		return domain.AICacheEntry{}, pgx.ErrNoRows
	}
	return entry, nil
}

func (m *mockCacheRepo) Upsert(_ context.Context, entry domain.AICacheEntry) error {
	if m.entries == nil {
		m.entries = make(map[string]domain.AICacheEntry)
	}
	m.entries[entry.CacheKey] = entry
	return nil
}

func (m *mockCacheRepo) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

type mockPartnerRepo struct {
	partners map[string]domain.Partner
}

func (m *mockPartnerRepo) Create(_ context.Context, p domain.Partner) error {
	if m.partners == nil {
		m.partners = make(map[string]domain.Partner)
	}
	m.partners[p.ID] = p
	return nil
}

func (m *mockPartnerRepo) GetByID(_ context.Context, id string) (domain.Partner, error) {
	p, ok := m.partners[id]
	if !ok {
		return domain.Partner{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockPartnerRepo) ListByUserID(_ context.Context, userID string) ([]domain.Partner, error) {
	var out []domain.Partner
	for _, p := range m.partners {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPartnerRepo) Update(_ context.Context, p domain.Partner) error {
	m.partners[p.ID] = p
	return nil
}

func (m *mockPartnerRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.partners, id)
	return nil
}

type mockLimiter struct {
	allow bool
}

func (m *mockLimiter) Allow(_ string) bool { return m.allow }

func setupAnalysisRouter(client *llm.MockClient, partners *mockPartnerRepo, quizzes *mockQuizRepo, limiter service.AnalysisRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cache := service.NewAICache(&mockCacheRepo{}, zap.NewNop())
	insights := service.NewInsightService(client, cache, partners, quizzes, zap.NewNop())
	h := NewAnalysisHandler(zap.NewNop(), insights, limiter, false)

	r := gin.New()
	r.POST("/analysis/patterns", fakeAuth("u1"), h.Patterns)
	r.POST("/analysis/compatibility", fakeAuth("u1"), h.Compatibility)
	r.POST("/partners/:id/insight", fakeAuth("u1"), h.PartnerInsight)
	return r
}

func TestAnalysisHandlerPatterns_RateLimited(t *testing.T) {
	client := &llm.MockClient{Response: `{"pattern":"x"}`}
	r := setupAnalysisRouter(client, &mockPartnerRepo{}, &mockQuizRepo{}, &mockLimiter{allow: false})

	rec := performJSONRequest(r, http.MethodPost, "/analysis/patterns", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if client.Calls != 0 {
		t.Fatalf("llm must not be called when rate limited")
	}
}

func TestAnalysisHandlerPatterns_NoQuizResult(t *testing.T) {
	client := &llm.MockClient{Response: `{"pattern":"x"}`}
	r := setupAnalysisRouter(client, &mockPartnerRepo{}, &mockQuizRepo{}, &mockLimiter{allow: true})

	rec := performJSONRequest(r, http.MethodPost, "/analysis/patterns", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without quiz result, got %d", rec.Code)
	}
}

func TestAnalysisHandlerPatterns_Success(t *testing.T) {
	client := &llm.MockClient{Response: `{"pattern":"anxious loop"}`}
	quizzes := &mockQuizRepo{results: []domain.QuizResult{{
		ID: "q1", UserID: "u1", Flavour: flavour.Strawberry,
	}}}
	r := setupAnalysisRouter(client, &mockPartnerRepo{}, quizzes, &mockLimiter{allow: true})

	rec := performJSONRequest(r, http.MethodPost, "/analysis/patterns", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if client.Calls != 1 {
		t.Fatalf("expected one llm call, got %d", client.Calls)
	}
}

func TestAnalysisHandlerCompatibility_UnknownFlavour(t *testing.T) {
	client := &llm.MockClient{Response: `{"score":5}`}
	r := setupAnalysisRouter(client, &mockPartnerRepo{}, &mockQuizRepo{}, &mockLimiter{allow: true})

	rec := performJSONRequest(r, http.MethodPost, "/analysis/compatibility", map[string]string{
		"a": "vanilla",
		"b": "pistachio",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalysisHandlerCompatibility_Success(t *testing.T) {
	client := &llm.MockClient{Response: `{"score":8,"summary":"solid"}`}
	r := setupAnalysisRouter(client, &mockPartnerRepo{}, &mockQuizRepo{}, &mockLimiter{allow: true})

	rec := performJSONRequest(r, http.MethodPost, "/analysis/compatibility", map[string]string{
		"a": "vanilla",
		"b": "coffee",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalysisHandlerPartnerInsight_NotOwned(t *testing.T) {
	client := &llm.MockClient{Response: `{"insight":"x"}`}
	partners := &mockPartnerRepo{partners: map[string]domain.Partner{
		"p1": {ID: "p1", UserID: "someone-else", Flavour: flavour.Coconut},
	}}
	r := setupAnalysisRouter(client, partners, &mockQuizRepo{}, &mockLimiter{allow: true})

	rec := performJSONRequest(r, http.MethodPost, "/partners/p1/insight", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign partner, got %d", rec.Code)
	}
}

func TestAnalysisHandlerMalformedAIResponseIs500(t *testing.T) {
	client := &llm.MockClient{Response: "no json in here"}
	r := setupAnalysisRouter(client, &mockPartnerRepo{}, &mockQuizRepo{}, &mockLimiter{allow: true})

	rec := performJSONRequest(r, http.MethodPost, "/analysis/compatibility", map[string]string{
		"a": "vanilla",
		"b": "coffee",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for malformed ai response, got %d", rec.Code)
	}
}

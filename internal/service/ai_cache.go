package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"love-by-flavour/internal/domain"
	"love-by-flavour/internal/repository"
)

// ErrAIResponseMalformed indica que el texto del LLM no traia un JSON parseable.
var ErrAIResponseMalformed = errors.New("ai response malformed")

// AICache memoiza respuestas de LLM en la base, direccionadas por contenido
// y con vencimiento. Una sola implementacion generica: cada tipo de analisis
// pasa por GetOrCompute en vez de repetir el patron get/compute/store.
type AICache struct {
	repo   repository.AICacheRepository
	logger *zap.Logger
	group  singleflight.Group
	now    func() time.Time
}

func NewAICache(repo repository.AICacheRepository, logger *zap.Logger) *AICache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AICache{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCompute devuelve el resultado cacheado para (input, analysisType) si
// sigue vigente; si no, invoca compute, extrae el primer objeto JSON del texto
// y persiste el resultado con expires_at = now + ttl. Misses concurrentes para
// la misma clave comparten una sola llamada (single-flight).
func (c *AICache) GetOrCompute(
	ctx context.Context,
	input any,
	analysisType string,
	ttl time.Duration,
	compute func(ctx context.Context) (string, error),
) (json.RawMessage, error) {
	cacheKey, inputHash, err := c.CacheKey(input, analysisType)
	if err != nil {
		return nil, err
	}

	// El vuelo compartido corre con un contexto desacoplado del primer caller:
	// si ese request se cancela a mitad de la llamada al LLM, los que esperan
	// la misma clave igual reciben el resultado.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(cacheKey, func() (any, error) {
		return c.getOrCompute(flightCtx, cacheKey, inputHash, analysisType, ttl, compute)
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

func (c *AICache) getOrCompute(
	ctx context.Context,
	cacheKey, inputHash, analysisType string,
	ttl time.Duration,
	compute func(ctx context.Context) (string, error),
) (json.RawMessage, error) {
	entry, err := c.repo.Get(ctx, cacheKey)
	switch {
	case err == nil:
		if entry.ExpiresAt.After(c.now()) {
			c.logger.Debug("ai cache hit",
				zap.String("analysis_type", analysisType),
				zap.String("cache_key", cacheKey),
			)
			return entry.Result, nil
		}
		// Fila vencida: borrado perezoso antes de recomputar, asi la tabla
		// no crece sin limite.
		if derr := c.repo.Delete(ctx, cacheKey); derr != nil {
			c.logger.Warn("expired cache delete failed", zap.Error(derr), zap.String("cache_key", cacheKey))
		}
	case errors.Is(err, pgx.ErrNoRows):
		// miss limpio
	default:
		return nil, fmt.Errorf("cache lookup: %w", err)
	}

	raw, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	result, err := parseAIResult(raw)
	if err != nil {
		// No cachear fallas: el proximo request vuelve a intentar.
		return nil, err
	}

	now := c.now()
	newEntry := domain.AICacheEntry{
		ID:           uuid.NewString(),
		CacheKey:     cacheKey,
		AnalysisType: analysisType,
		InputHash:    inputHash,
		Result:       result,
		ExpiresAt:    now.Add(ttl),
		CreatedAt:    now,
	}
	if err := c.repo.Upsert(ctx, newEntry); err != nil {
		return nil, fmt.Errorf("cache upsert: %w", err)
	}

	return result, nil
}

// CacheKey deriva la clave estable para (input, analysisType): serializacion
// canonica del input (claves de objeto ordenadas), concatenada con el tipo,
// hasheada con SHA-256 y hex-encodeada.
func (c *AICache) CacheKey(input any, analysisType string) (cacheKey, inputHash string, err error) {
	canonical, err := canonicalJSON(input)
	if err != nil {
		return "", "", fmt.Errorf("serialize cache input: %w", err)
	}

	keySum := sha256.Sum256([]byte(canonical + "|" + analysisType))
	inputSum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(keySum[:]), hex.EncodeToString(inputSum[:]), nil
}

// canonicalJSON produce una serializacion con orden de claves estable:
// marshal -> unmarshal a any -> marshal. encoding/json ordena las claves de
// los maps, asi dos inputs estructuralmente iguales hashean igual aunque sus
// claves vengan en distinto orden.
func canonicalJSON(input any) (string, error) {
	first, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(first, &generic); err != nil {
		return "", err
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(canonical), nil
}

// parseAIResult extrae y valida el primer objeto JSON del texto del LLM.
func parseAIResult(raw string) (json.RawMessage, error) {
	cleaned := cleanLLMJSONResponse(raw)

	obj := extractFirstJSONObject(cleaned)
	if obj == "" {
		obj = extractFirstJSONObject(raw)
	}
	if obj == "" {
		return nil, fmt.Errorf("%w: no json object in response", ErrAIResponseMalformed)
	}
	if !json.Valid([]byte(obj)) {
		return nil, fmt.Errorf("%w: invalid json object", ErrAIResponseMalformed)
	}
	return json.RawMessage(obj), nil
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"love-by-flavour/internal/domain"
)

// AICacheRepository define el contrato de persistencia para respuestas de LLM
// memoizadas. Get devuelve la fila viva sin filtrar vencimiento: el chequeo de
// expiry es del servicio, que ademas borra filas vencidas al encontrarlas.
type AICacheRepository interface {
	Get(ctx context.Context, cacheKey string) (domain.AICacheEntry, error)
	Upsert(ctx context.Context, entry domain.AICacheEntry) error
	Delete(ctx context.Context, cacheKey string) error
}

// PgAICacheRepository implementa AICacheRepository usando pgxpool.
type PgAICacheRepository struct {
	pool *pgxpool.Pool
}

func NewPgAICacheRepository(pool *pgxpool.Pool) *PgAICacheRepository {
	return &PgAICacheRepository{pool: pool}
}

func (r *PgAICacheRepository) Get(ctx context.Context, cacheKey string) (domain.AICacheEntry, error) {
	const query = `
		SELECT id, cache_key, analysis_type, input_hash, result, expires_at, created_at
		FROM ai_response_cache
		WHERE cache_key = $1
	`
	var e domain.AICacheEntry
	err := r.pool.QueryRow(ctx, query, cacheKey).Scan(
		&e.ID,
		&e.CacheKey,
		&e.AnalysisType,
		&e.InputHash,
		&e.Result,
		&e.ExpiresAt,
		&e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AICacheEntry{}, err
	}
	return e, err
}

func (r *PgAICacheRepository) Upsert(ctx context.Context, entry domain.AICacheEntry) error {
	const query = `
		INSERT INTO ai_response_cache (id, cache_key, analysis_type, input_hash, result, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (cache_key)
		DO UPDATE SET
			analysis_type = EXCLUDED.analysis_type,
			input_hash = EXCLUDED.input_hash,
			result = EXCLUDED.result,
			expires_at = EXCLUDED.expires_at
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.CacheKey,
		entry.AnalysisType,
		entry.InputHash,
		entry.Result,
		entry.ExpiresAt,
		entry.CreatedAt,
	)
	return err
}

func (r *PgAICacheRepository) Delete(ctx context.Context, cacheKey string) error {
	const query = `
		DELETE FROM ai_response_cache WHERE cache_key = $1
	`
	_, err := r.pool.Exec(ctx, query, cacheKey)
	return err
}

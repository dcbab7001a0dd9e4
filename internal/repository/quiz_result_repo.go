package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"love-by-flavour/internal/domain"
	"love-by-flavour/internal/flavour"
)

// QuizResultRepository define el contrato de persistencia para resultados del quiz.
type QuizResultRepository interface {
	Create(ctx context.Context, result domain.QuizResult) error
	FindLatestByUserID(ctx context.Context, userID string) (domain.QuizResult, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.QuizResult, error)
}

// PgQuizResultRepository implementa QuizResultRepository usando pgxpool.
type PgQuizResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuizResultRepository(pool *pgxpool.Pool) *PgQuizResultRepository {
	return &PgQuizResultRepository{pool: pool}
}

func (r *PgQuizResultRepository) Create(ctx context.Context, result domain.QuizResult) error {
	const query = `
		INSERT INTO quiz_results (id, user_id, answers, traits, flavour, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	answersJSON, err := json.Marshal(result.Answers)
	if err != nil {
		return err
	}
	traitsJSON, err := json.Marshal(result.Traits)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.UserID,
		answersJSON,
		traitsJSON,
		string(result.Flavour),
		result.CreatedAt,
	)
	return err
}

func (r *PgQuizResultRepository) FindLatestByUserID(ctx context.Context, userID string) (domain.QuizResult, error) {
	const query = `
		SELECT id, user_id, answers, traits, flavour, created_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanQuizResult(r.pool.QueryRow(ctx, query, userID))
}

func (r *PgQuizResultRepository) ListByUserID(ctx context.Context, userID string) ([]domain.QuizResult, error) {
	const query = `
		SELECT id, user_id, answers, traits, flavour, created_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.QuizResult
	for rows.Next() {
		res, err := scanQuizResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func scanQuizResult(row pgx.Row) (domain.QuizResult, error) {
	var res domain.QuizResult
	var flav string
	var answersJSON, traitsJSON []byte

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&answersJSON,
		&traitsJSON,
		&flav,
		&res.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.QuizResult{}, err
	}
	if err != nil {
		return domain.QuizResult{}, err
	}

	res.Flavour = flavour.Flavour(flav)
	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &res.Answers); err != nil {
			return domain.QuizResult{}, err
		}
	}
	if len(traitsJSON) > 0 {
		if err := json.Unmarshal(traitsJSON, &res.Traits); err != nil {
			return domain.QuizResult{}, err
		}
	}
	return res, nil
}

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

// PartnerRepository define el contrato de persistencia para ex parejas.
type PartnerRepository interface {
	Create(ctx context.Context, partner domain.Partner) error
	GetByID(ctx context.Context, id string) (domain.Partner, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Partner, error)
	Update(ctx context.Context, partner domain.Partner) error
	Delete(ctx context.Context, id, userID string) error
}

// PgPartnerRepository implementa PartnerRepository usando pgxpool.
type PgPartnerRepository struct {
	pool *pgxpool.Pool
}

func NewPgPartnerRepository(pool *pgxpool.Pool) *PgPartnerRepository {
	return &PgPartnerRepository{pool: pool}
}

func (r *PgPartnerRepository) Create(ctx context.Context, partner domain.Partner) error {
	const query = `
		INSERT INTO partners (id, user_id, nickname, flavour, traits, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	traitsJSON, err := json.Marshal(partner.Traits)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		partner.ID,
		partner.UserID,
		partner.Nickname,
		string(partner.Flavour),
		traitsJSON,
		partner.Notes,
		partner.CreatedAt,
		partner.UpdatedAt,
	)
	return err
}

func (r *PgPartnerRepository) GetByID(ctx context.Context, id string) (domain.Partner, error) {
	const query = `
		SELECT id, user_id, nickname, flavour, traits, notes, created_at, updated_at
		FROM partners
		WHERE id = $1
	`
	return scanPartner(r.pool.QueryRow(ctx, query, id))
}

func (r *PgPartnerRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Partner, error) {
	const query = `
		SELECT id, user_id, nickname, flavour, traits, notes, created_at, updated_at
		FROM partners
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

func (r *PgPartnerRepository) Update(ctx context.Context, partner domain.Partner) error {
	const query = `
		UPDATE partners
		SET nickname = $3, flavour = $4, traits = $5, notes = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2
	`
	traitsJSON, err := json.Marshal(partner.Traits)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		partner.ID,
		partner.UserID,
		partner.Nickname,
		string(partner.Flavour),
		traitsJSON,
		partner.Notes,
		partner.UpdatedAt,
	)
	return err
}

func (r *PgPartnerRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `
		DELETE FROM partners WHERE id = $1 AND user_id = $2
	`
	_, err := r.pool.Exec(ctx, query, id, userID)
	return err
}

func scanPartner(row pgx.Row) (domain.Partner, error) {
	var p domain.Partner
	var flav string
	var traitsJSON []byte

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Nickname,
		&flav,
		&traitsJSON,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Partner{}, err
	}
	if err != nil {
		return domain.Partner{}, err
	}

	p.Flavour = flavour.Flavour(flav)
	if len(traitsJSON) > 0 {
		if err := json.Unmarshal(traitsJSON, &p.Traits); err != nil {
			return domain.Partner{}, err
		}
	}
	return p, nil
}

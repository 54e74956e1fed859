// README: Plan archive backed by PostgreSQL.
package plan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SavePlan archives a generated plan document.
func (s *Store) SavePlan(ctx context.Context, p *Plan) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO travel_plans
			(id, origin, destination, days, theme, departure_date, return_date, document, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.Origin, p.Destination, p.Days, p.Theme,
		p.DepartureDate, p.ReturnDate, p.Document, p.CreatedAt)
	return err
}

// GetPlan loads an archived plan by id. Returns ErrNotFound when absent.
func (s *Store) GetPlan(ctx context.Context, id string) (*Plan, error) {
	var p Plan
	err := s.db.QueryRow(ctx, `
		SELECT id, origin, destination, days, theme, departure_date, return_date, document, created_at
		FROM travel_plans WHERE id = $1
	`, id).Scan(&p.ID, &p.Origin, &p.Destination, &p.Days, &p.Theme,
		&p.DepartureDate, &p.ReturnDate, &p.Document, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

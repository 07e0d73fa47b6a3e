package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	"github.com/OSU-CS493-Sp18/auth/internal/domain"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

const (
	insertLodgingSQL = `INSERT INTO lodgings (id, owner_id, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	findByOwnerSQL = `SELECT id, owner_id, name, description, created_at
		FROM lodgings WHERE owner_id = $1 ORDER BY created_at`
)

// LodgingStore implements ports.LodgingStore on the relational store. Rows
// here are the authoritative ownership record; no retry is performed on
// failure, resilience is the caller's concern.
type LodgingStore struct {
	pool *pgxpool.Pool
}

func NewLodgingStore(pool *pgxpool.Pool) *LodgingStore {
	return &LodgingStore{pool: pool}
}

func (s *LodgingStore) Insert(ctx context.Context, l *domain.Lodging) error {
	_, err := s.pool.Exec(ctx, insertLodgingSQL,
		l.ID, l.OwnerID, l.Name, l.Description, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: insert lodging: %v", domerrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *LodgingStore) FindByOwner(ctx context.Context, ownerID int) ([]domain.Lodging, error) {
	rows, err := s.pool.Query(ctx, findByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: query lodgings: %v", domerrors.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	lodgings := []domain.Lodging{}
	for rows.Next() {
		var l domain.Lodging
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Name, &l.Description, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan lodging: %v", domerrors.ErrStorageUnavailable, err)
		}
		lodgings = append(lodgings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read lodgings: %v", domerrors.ErrStorageUnavailable, err)
	}
	return lodgings, nil
}

// Ensure LodgingStore implements ports.LodgingStore.
var _ ports.LodgingStore = (*LodgingStore)(nil)

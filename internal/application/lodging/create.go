package lodging

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	"github.com/OSU-CS493-Sp18/auth/internal/domain"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

type CreateInput struct {
	// OwnerID is the owning user's identifier in string form; it must
	// coerce to the relational store's integer key.
	OwnerID     string
	Name        string
	Description string
}

// Create inserts a lodging row and then denormalizes the new identifier into
// the owner's user document. The relational row is the source of truth; the
// document append is best-effort and its failure never fails the creation.
type Create struct {
	lodgings  ports.LodgingStore
	directory ports.UserDirectory
	log       zerolog.Logger
}

func NewCreate(lodgings ports.LodgingStore, directory ports.UserDirectory, log zerolog.Logger) *Create {
	return &Create{lodgings: lodgings, directory: directory, log: log}
}

func (uc *Create) Execute(ctx context.Context, input CreateInput) (*domain.Lodging, error) {
	if input.OwnerID == "" || input.Name == "" {
		return nil, domerrors.ErrValidation
	}
	ownerKey, err := strconv.Atoi(input.OwnerID)
	if err != nil {
		return nil, domerrors.ErrValidation
	}
	l := &domain.Lodging{
		ID:          uuid.NewString(),
		OwnerID:     ownerKey,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.lodgings.Insert(ctx, l); err != nil {
		return nil, err
	}
	if err := uc.directory.AppendOwnedLodging(ctx, input.OwnerID, l.ID); err != nil {
		// The row already exists; a missed append only leaves the
		// denormalized list stale until a rebuild.
		uc.log.Warn().
			Err(err).
			Str("user_id", input.OwnerID).
			Str("lodging_id", l.ID).
			Msg("ownership link append failed")
	}
	return l, nil
}

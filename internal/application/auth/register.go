package auth

import (
	"context"
	"time"

	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	"github.com/OSU-CS493-Sp18/auth/internal/domain"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

type RegisterInput struct {
	UserID   string
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	// StorageID is the identity assigned by the document store, distinct
	// from the application-level UserID.
	StorageID string
	User      *domain.User
}

// Register creates a user with a hashed credential and an empty lodging list.
type Register struct {
	directory ports.UserDirectory
	hasher    ports.PasswordHasher
}

func NewRegister(directory ports.UserDirectory, hasher ports.PasswordHasher) *Register {
	return &Register{directory: directory, hasher: hasher}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if input.UserID == "" || input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domerrors.ErrValidation
	}
	// Hash before building the record so an abandoned request can never
	// persist an unhashed password.
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		UserID:       input.UserID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Lodgings:     []string{},
		CreatedAt:    time.Now(),
	}
	storageID, err := uc.directory.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.StorageID = storageID
	return &RegisterResult{StorageID: storageID, User: user}, nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

type LoginInput struct {
	UserID   string
	Password string
}

type LoginResult struct {
	Token string
}

// Login verifies a credential against the stored hash and issues a token
// with the user identifier as subject.
type Login struct {
	directory ports.UserDirectory
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
}

func NewLogin(directory ports.UserDirectory, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Login {
	return &Login{directory: directory, hasher: hasher, issuer: issuer}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.UserID == "" || input.Password == "" {
		return nil, domerrors.ErrValidation
	}
	user, err := uc.directory.FindByID(ctx, input.UserID, true)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Same outcome as a bad password: no user-existence oracle.
		return nil, domerrors.ErrInvalidCredentials
	}
	ok, err := uc.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		// A stored hash we cannot decode is a storage-class failure,
		// not a credential mismatch.
		return nil, fmt.Errorf("verify credential for %q: %w", input.UserID, err)
	}
	if !ok {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.Issue(user.UserID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token}, nil
}

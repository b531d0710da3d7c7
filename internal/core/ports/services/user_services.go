package services

import (
	"context"

	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	"github.com/inmatic/invoices_accounting_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user account with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// AuthSvc verifies credentials for login.
type AuthSvc interface {
	// Authenticate checks username and password, returning the user on
	// success and apperrors.ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthSvc
}

package profile

import (
	"context"
	"errors"

	"github.com/Alexandru2223/postpilot/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("business profile already exists")
	ErrNotFound      = errors.New("business profile not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=mocks/mock.go
type Repository interface {
	// Upsert inserts the profile for its user or replaces the existing one
	Upsert(ctx context.Context, profile domain.BusinessProfile) (*domain.BusinessProfile, error)

	// GetByUserID returns the profile owned by the given user
	GetByUserID(ctx context.Context, userID string) (*domain.BusinessProfile, error)

	// DeleteByUserID removes the profile owned by the given user
	DeleteByUserID(ctx context.Context, userID string) error
}

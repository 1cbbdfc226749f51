package template

import (
	"context"
	"errors"

	"github.com/Alexandru2223/postpilot/internal/domain"
)

var ErrNotFound = errors.New("post template not found")

//go:generate go run go.uber.org/mock/mockgen -source=template.go -destination=mocks/mock.go
type Repository interface {
	// Create adds a new template and returns it with its assigned id
	Create(ctx context.Context, tpl domain.PostTemplate) (*domain.PostTemplate, error)

	// GetByUserID returns all templates owned by the given user, newest first
	GetByUserID(ctx context.Context, userID string) ([]*domain.PostTemplate, error)

	// GetActiveByPlatform returns the active templates for a user and platform
	GetActiveByPlatform(ctx context.Context, userID string, platform domain.Platform) ([]*domain.PostTemplate, error)

	// Delete removes a template if it belongs to the given user
	Delete(ctx context.Context, userID string, id int64) error
}

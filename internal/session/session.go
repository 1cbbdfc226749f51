package session

import (
	"context"

	"github.com/Alexandru2223/postpilot/internal/domain"
)

// Context is the per-caller onboarding state. The original UI kept this in
// browser storage; here it is loaded and saved server-side, keyed by the
// caller's bearer token.
//
//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=mocks/mock.go
type Context interface {
	// Load returns the caller's business profile, or ErrNotFound if
	// onboarding never completed.
	Load(ctx context.Context, token string) (*domain.BusinessProfile, error)

	// Save stores the caller's business profile, replacing any previous one.
	Save(ctx context.Context, token string, profile domain.BusinessProfile) (*domain.BusinessProfile, error)

	// Clear removes the caller's business profile so onboarding restarts.
	Clear(ctx context.Context, token string) error

	// Templates returns the caller's saved post templates, newest first.
	Templates(ctx context.Context, token string) ([]*domain.PostTemplate, error)

	// ActiveTemplates returns the caller's active templates for a platform.
	ActiveTemplates(ctx context.Context, token string, platform domain.Platform) ([]*domain.PostTemplate, error)

	// SaveTemplate stores a new post template for the caller.
	SaveTemplate(ctx context.Context, token string, tpl domain.PostTemplate) (*domain.PostTemplate, error)

	// DeleteTemplate removes one of the caller's templates, or ErrNotFound.
	DeleteTemplate(ctx context.Context, token string, id int64) error
}

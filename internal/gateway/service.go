package gateway

import (
	"context"

	"github.com/Alexandru2223/postpilot/internal/backend"
	"github.com/Alexandru2223/postpilot/internal/domain"
)

// PostService is the post resource the HTTP surface exposes. Two
// implementations exist: localimpl over the in-memory planner store and
// proxyimpl over the external backend, chosen at startup by whether
// BACKEND_API_URL is configured.
//
//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/mock.go
type PostService interface {
	List(ctx context.Context, token string) ([]domain.Post, error)
	Get(ctx context.Context, token string, id int64) (domain.Post, error)
	Create(ctx context.Context, token string, post domain.Post) (domain.Post, error)
	Update(ctx context.Context, token string, id int64, post domain.Post) (domain.Post, error)
	Delete(ctx context.Context, token string, id int64) error
	Filter(ctx context.Context, token string, params backend.FilterParams) ([]domain.Post, error)
	Suggestions(ctx context.Context, token string, platform domain.Platform, category string) (domain.Suggestion, error)
}

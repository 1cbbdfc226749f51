package gateway

import (
	"context"

	"github.com/Alexandru2223/postpilot/internal/backend"
	"github.com/Alexandru2223/postpilot/internal/domain"
)

// ProxyService forwards every operation to the external backend, passing the
// caller's bearer token through unchanged.
type ProxyService struct {
	client *backend.Client
}

func NewProxyService(client *backend.Client) *ProxyService {
	return &ProxyService{client: client}
}

var _ PostService = (*ProxyService)(nil)

func (s *ProxyService) List(ctx context.Context, token string) ([]domain.Post, error) {
	return s.client.List(ctx, token)
}

func (s *ProxyService) Get(ctx context.Context, token string, id int64) (domain.Post, error) {
	return s.client.Get(ctx, token, id)
}

func (s *ProxyService) Create(ctx context.Context, token string, post domain.Post) (domain.Post, error) {
	return s.client.Create(ctx, token, post)
}

func (s *ProxyService) Update(ctx context.Context, token string, id int64, post domain.Post) (domain.Post, error) {
	return s.client.Update(ctx, token, id, post)
}

func (s *ProxyService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.Delete(ctx, token, id)
}

func (s *ProxyService) Filter(ctx context.Context, token string, params backend.FilterParams) ([]domain.Post, error) {
	return s.client.Filter(ctx, token, params)
}

func (s *ProxyService) Suggestions(ctx context.Context, token string, platform domain.Platform, category string) (domain.Suggestion, error) {
	return s.client.Suggestions(ctx, token, platform, category, "ro")
}

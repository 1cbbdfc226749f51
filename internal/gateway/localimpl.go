package gateway

import (
	"context"
	"time"

	"github.com/Alexandru2223/postpilot/internal/backend"
	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/internal/generator"
	"github.com/Alexandru2223/postpilot/internal/planner"
	apperrors "github.com/Alexandru2223/postpilot/pkg/errors"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

// LocalService serves posts from the in-memory planner store. It backs the
// API when no external backend is configured; every caller shares the same
// working set, matching the single-user planner semantics.
type LocalService struct {
	store     *planner.Store
	generator generator.Client
	logger    logger.Logger
	now       func() time.Time
}

func NewLocalService(store *planner.Store, gen generator.Client, log logger.Logger) *LocalService {
	return &LocalService{
		store:     store,
		generator: gen,
		logger:    log.WithComponent("LocalPostService"),
		now:       time.Now,
	}
}

var _ PostService = (*LocalService)(nil)

func (s *LocalService) List(ctx context.Context, token string) ([]domain.Post, error) {
	return s.store.All(), nil
}

func (s *LocalService) Get(ctx context.Context, token string, id int64) (domain.Post, error) {
	post, ok := s.store.Get(id)
	if !ok {
		return domain.Post{}, apperrors.ErrNotFound
	}
	return post, nil
}

func (s *LocalService) Create(ctx context.Context, token string, post domain.Post) (domain.Post, error) {
	if post.Title == "" {
		return domain.Post{}, apperrors.Wrap(apperrors.ErrInvalidInput, "title is required")
	}
	if !post.Platform.Valid() {
		return domain.Post{}, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown platform")
	}
	post.ID = s.now().UnixMilli()
	if post.Status == "" {
		post.Status = domain.StatusScheduled
	}
	if post.PostType == "" {
		post.PostType = domain.PostTypeNormal
	}
	s.store.Add(post)
	return post, nil
}

func (s *LocalService) Update(ctx context.Context, token string, id int64, post domain.Post) (domain.Post, error) {
	if _, ok := s.store.Get(id); !ok {
		return domain.Post{}, apperrors.ErrNotFound
	}
	s.store.Update(id, post)
	updated, _ := s.store.Get(id)
	return updated, nil
}

func (s *LocalService) Delete(ctx context.Context, token string, id int64) error {
	s.store.Remove(id)
	return nil
}

func (s *LocalService) Filter(ctx context.Context, token string, params backend.FilterParams) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range s.store.All() {
		if params.Status != "" && string(p.Status) != params.Status {
			continue
		}
		if params.Platform != "" && string(p.Platform) != params.Platform {
			continue
		}
		if params.PostType != "" && string(p.PostType) != params.PostType {
			continue
		}
		// Canonical YYYY-MM-DD keys order lexicographically.
		if params.StartDate != "" && p.Date < params.StartDate {
			continue
		}
		if params.EndDate != "" && p.Date > params.EndDate {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *LocalService) Suggestions(ctx context.Context, token string, platform domain.Platform, category string) (domain.Suggestion, error) {
	return s.generator.Suggestions(ctx, platform, category)
}

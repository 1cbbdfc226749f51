package sessionimpl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"go.uber.org/fx"

	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/internal/repositories/profile"
	"github.com/Alexandru2223/postpilot/internal/repositories/template"
	"github.com/Alexandru2223/postpilot/internal/session"
	apperrors "github.com/Alexandru2223/postpilot/pkg/errors"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

type Opts struct {
	fx.In
	Profiles  profile.Repository
	Templates template.Repository
	Logger    logger.Logger
}

type Impl struct {
	profiles  profile.Repository
	templates template.Repository
	logger    logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		profiles:  opts.Profiles,
		templates: opts.Templates,
		logger:    opts.Logger.WithComponent("Session"),
	}
}

var _ session.Context = (*Impl)(nil)

func (i *Impl) Load(ctx context.Context, token string) (*domain.BusinessProfile, error) {
	p, err := i.profiles.GetByUserID(ctx, userKey(token))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load business profile")
	}
	return p, nil
}

func (i *Impl) Save(ctx context.Context, token string, p domain.BusinessProfile) (*domain.BusinessProfile, error) {
	p.UserID = userKey(token)
	saved, err := i.profiles.Upsert(ctx, p)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to save business profile")
	}
	i.logger.Info("Business profile saved", "business_name", saved.BusinessName)
	return saved, nil
}

func (i *Impl) Clear(ctx context.Context, token string) error {
	err := i.profiles.DeleteByUserID(ctx, userKey(token))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.Wrap(err, "failed to clear business profile")
	}
	return nil
}

func (i *Impl) Templates(ctx context.Context, token string) ([]*domain.PostTemplate, error) {
	templates, err := i.templates.GetByUserID(ctx, userKey(token))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load post templates")
	}
	return templates, nil
}

func (i *Impl) ActiveTemplates(ctx context.Context, token string, platform domain.Platform) ([]*domain.PostTemplate, error) {
	templates, err := i.templates.GetActiveByPlatform(ctx, userKey(token), platform)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load active post templates")
	}
	return templates, nil
}

func (i *Impl) SaveTemplate(ctx context.Context, token string, tpl domain.PostTemplate) (*domain.PostTemplate, error) {
	tpl.UserID = userKey(token)
	saved, err := i.templates.Create(ctx, tpl)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to save post template")
	}
	return saved, nil
}

func (i *Impl) DeleteTemplate(ctx context.Context, token string, id int64) error {
	err := i.templates.Delete(ctx, userKey(token), id)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.Wrap(err, "failed to delete post template")
	}
	return nil
}

// userKey derives the storage key from the bearer token. Tokens are never
// stored raw.
func userKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

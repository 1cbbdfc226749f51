// Package templateimpl derives post content by interpolating the business
// description into canned templates. No model is involved; the configured
// delay only simulates generation latency for the UI flow.
package templateimpl

import (
	"context"
	"strings"
	"time"

	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/internal/generator"
	"github.com/Alexandru2223/postpilot/pkg/config"
	apperrors "github.com/Alexandru2223/postpilot/pkg/errors"
	"github.com/Alexandru2223/postpilot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TemplateImpl struct {
	Delay  time.Duration
	Logger logger.Logger
}

func New(opts Opts) *TemplateImpl {
	return &TemplateImpl{
		Delay:  opts.Config.Generator.Delay,
		Logger: opts.Logger.WithComponent("ContentGenerator"),
	}
}

var _ generator.Client = (*TemplateImpl)(nil)

func (g *TemplateImpl) Generate(ctx context.Context, req generator.Request) (domain.GeneratedContent, error) {
	if strings.TrimSpace(req.Description) == "" {
		return domain.GeneratedContent{}, apperrors.Wrap(apperrors.ErrInvalidInput, "description is required")
	}
	if !req.Platform.Valid() {
		return domain.GeneratedContent{}, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown platform")
	}

	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return domain.GeneratedContent{}, ctx.Err()
		}
	}

	g.Logger.Info("Generated content",
		"platform", req.Platform,
		"post_type", req.PostType,
	)

	if req.PostType == domain.PostTypeReel {
		return reelContent(req.Description, req.Platform), nil
	}
	return normalContent(req.Description, req.Platform), nil
}

func (g *TemplateImpl) Suggestions(ctx context.Context, platform domain.Platform, category string) (domain.Suggestion, error) {
	if !platform.Valid() {
		return domain.Suggestion{}, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown platform")
	}
	if category == "" {
		category = "conținut"
	}
	return suggestionsFor(platform, category), nil
}

package generator

import (
	"context"

	"github.com/Alexandru2223/postpilot/internal/domain"
)

// Request describes what content to generate.
type Request struct {
	Description string
	Platform    domain.Platform
	PostType    domain.PostType
}

//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock.go
type Client interface {
	// Generate derives title, caption and hashtags (and, for reels, a video
	// script plus ten video ideas) from the business description.
	Generate(ctx context.Context, req Request) (domain.GeneratedContent, error)

	// Suggestions returns ready-made content ideas for a platform.
	Suggestions(ctx context.Context, platform domain.Platform, category string) (domain.Suggestion, error)
}

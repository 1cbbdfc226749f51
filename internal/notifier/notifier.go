package notifier

import (
	"github.com/Alexandru2223/postpilot/internal/domain"
)

// Client announces planner events to an external channel.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock.go
type Client interface {
	// PostPublished announces that a scheduled post went live.
	PostPublished(post domain.Post)

	// SendMessageToUser sends a plain status message to the configured user.
	SendMessageToUser(message string)
}

package publisher

import "context"

// Client runs the background jobs that move posts through their lifecycle:
// flipping due scheduled posts to published and pruning old published ones.
type Client interface {
	// SchedulePublishing starts the interval and daily cleanup jobs. They run
	// until ctx is cancelled.
	SchedulePublishing(ctx context.Context) error

	// PublishDue flips every scheduled post whose slot has passed and returns
	// how many were published.
	PublishDue(ctx context.Context) int
}

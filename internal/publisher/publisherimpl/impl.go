package publisherimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"

	"github.com/Alexandru2223/postpilot/internal/calendar"
	"github.com/Alexandru2223/postpilot/internal/notifier"
	"github.com/Alexandru2223/postpilot/internal/planner"
	"github.com/Alexandru2223/postpilot/internal/publisher"
	"github.com/Alexandru2223/postpilot/pkg/config"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

type Opts struct {
	fx.In

	Store    *planner.Store
	Notifier notifier.Client
	Logger   logger.Logger
	Config   *config.Config
}

type PublisherImpl struct {
	Store    *planner.Store
	Notifier notifier.Client
	Logger   logger.Logger
	Config   *config.Config

	now func() time.Time
}

func New(opts Opts) *PublisherImpl {
	return &PublisherImpl{
		Store:    opts.Store,
		Notifier: opts.Notifier,
		Logger:   opts.Logger.WithComponent("Publisher"),
		Config:   opts.Config,
		now:      time.Now,
	}
}

var _ publisher.Client = (*PublisherImpl)(nil)

// PublishDue flips every scheduled post whose slot has passed and returns
// how many were published.
func (p *PublisherImpl) PublishDue(ctx context.Context) int {
	now := p.now()
	due := p.Store.DueScheduled(calendar.DateKey(now), now.Format("15:04"))
	for _, post := range due {
		if ctx.Err() != nil {
			return 0
		}
		p.Store.MarkPublished(post.ID)
		p.Logger.Info("Post published", "post_id", post.ID, "title", post.Title, "date", post.Date, "time", post.Time)
		p.Notifier.PostPublished(post)
	}
	return len(due)
}

// SchedulePublishing starts the interval publish job and a daily cleanup job
// that drops published posts older than the configured retention.
func (p *PublisherImpl) SchedulePublishing(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return fmt.Errorf("failed to create publish scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(p.Config.Publisher.Interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				p.Logger.Info("Context cancelled, stopping publish job")
				return
			}
			if n := p.PublishDue(ctx); n > 0 {
				p.Logger.Info("Publish run completed", "published", n)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule publish job: %w", err)
	}

	// Prune old published posts at 3:00 AM every day
	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				p.Logger.Info("Context cancelled, stopping cleanup job")
				return
			}

			cutoff := p.now().Add(-p.Config.Publisher.CleanupOlderThan)
			removed := p.Store.RemovePublishedBefore(calendar.DateKey(cutoff))
			p.Logger.Info("Cleanup completed", "posts_removed", removed)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		p.Logger.Info("Stopping publish scheduler")
		if err := scheduler.Shutdown(); err != nil {
			p.Logger.Error("Failed to shut down publish scheduler", "error", err)
		}
	}()

	return nil
}

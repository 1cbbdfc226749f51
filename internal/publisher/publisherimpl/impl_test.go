package publisherimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alexandru2223/postpilot/internal/domain"
	mock_notifier "github.com/Alexandru2223/postpilot/internal/notifier/mocks"
	"github.com/Alexandru2223/postpilot/internal/planner"
	"github.com/Alexandru2223/postpilot/pkg/config"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

func scheduledPost(id int64, date, timeOfDay string) domain.Post {
	return domain.Post{
		ID:       id,
		Title:    "Postare programată",
		Platform: domain.PlatformInstagram,
		Date:     date,
		Time:     timeOfDay,
		Status:   domain.StatusScheduled,
		PostType: domain.PostTypeNormal,
	}
}

func newTestPublisher(t *testing.T, store *planner.Store) (*PublisherImpl, *mock_notifier.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notif := mock_notifier.NewMockClient(ctrl)
	cfg := &config.Config{}
	cfg.Publisher.Interval = time.Minute
	cfg.Publisher.CleanupOlderThan = 720 * time.Hour

	p := New(Opts{
		Store:    store,
		Notifier: notif,
		Logger:   logger.New(logger.Opts{}),
		Config:   cfg,
	})
	p.now = func() time.Time {
		return time.Date(2025, time.March, 5, 12, 0, 0, 0, time.Local)
	}
	return p, notif
}

func TestPublishDueFlipsPastSlots(t *testing.T) {
	store := planner.NewStore()
	store.Add(scheduledPost(1, "2025-03-05", "09:00")) // earlier today
	store.Add(scheduledPost(2, "2025-03-04", "18:00")) // yesterday
	store.Add(scheduledPost(3, "2025-03-05", "15:00")) // later today
	store.Add(scheduledPost(4, "2025-03-06", "09:00")) // tomorrow

	p, notif := newTestPublisher(t, store)
	notif.EXPECT().PostPublished(gomock.Any()).Times(2)

	published := p.PublishDue(context.Background())
	assert.Equal(t, 2, published)

	post1, _ := store.Get(1)
	post2, _ := store.Get(2)
	post3, _ := store.Get(3)
	assert.Equal(t, domain.StatusPublished, post1.Status)
	assert.Equal(t, domain.StatusPublished, post2.Status)
	assert.Equal(t, domain.StatusScheduled, post3.Status)
}

func TestPublishDueSkipsDraftsAndPublished(t *testing.T) {
	store := planner.NewStore()
	draft := scheduledPost(1, "2025-03-01", "09:00")
	draft.Status = domain.StatusDraft
	done := scheduledPost(2, "2025-03-01", "09:00")
	done.Status = domain.StatusPublished
	store.Add(draft)
	store.Add(done)

	p, _ := newTestPublisher(t, store)
	assert.Equal(t, 0, p.PublishDue(context.Background()))
}

func TestPublishDueExactSlotIsDue(t *testing.T) {
	store := planner.NewStore()
	store.Add(scheduledPost(1, "2025-03-05", "12:00"))

	p, notif := newTestPublisher(t, store)
	notif.EXPECT().PostPublished(gomock.Any()).Times(1)

	assert.Equal(t, 1, p.PublishDue(context.Background()))
}

func TestRemovePublishedBefore(t *testing.T) {
	store := planner.NewStore()
	old := scheduledPost(1, "2025-01-01", "09:00")
	old.Status = domain.StatusPublished
	recent := scheduledPost(2, "2025-03-04", "09:00")
	recent.Status = domain.StatusPublished
	oldButScheduled := scheduledPost(3, "2025-01-01", "09:00")
	store.Add(old)
	store.Add(recent)
	store.Add(oldButScheduled)

	removed := store.RemovePublishedBefore("2025-02-01")
	assert.Equal(t, 1, removed)
	require.Equal(t, 2, store.Len())

	_, ok := store.Get(1)
	assert.False(t, ok)
	_, ok = store.Get(3)
	assert.True(t, ok)
}

func TestSchedulePublishingStopsOnCancel(t *testing.T) {
	store := planner.NewStore()
	p, _ := newTestPublisher(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.SchedulePublishing(ctx))
	cancel()
}

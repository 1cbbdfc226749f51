package planner

import (
	"testing"
	"time"

	"github.com/Alexandru2223/postpilot/internal/calendar"
	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePost(id int64, date string) domain.Post {
	return domain.Post{
		ID:       id,
		Title:    "Tutorial: Design floral",
		Caption:  "Pas cu pas",
		Hashtags: "#tutorial #floral",
		Platform: domain.PlatformInstagram,
		Time:     "10:00",
		Date:     date,
		Status:   domain.StatusScheduled,
		PostType: domain.PostTypeNormal,
	}
}

func TestStoreSeed(t *testing.T) {
	s := NewStore()
	now := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	s.Seed(now)

	require.Equal(t, len(seedPosts), s.Len())

	today := s.PostsForDate("2025-03-05")
	assert.Len(t, today, 3, "three samples are dated today")

	// Reseeding a non-empty store must not duplicate anything.
	s.Seed(now)
	assert.Equal(t, len(seedPosts), s.Len())
}

func TestStoreAddRemoveRoundTrip(t *testing.T) {
	s := NewStore()
	s.Add(samplePost(1, "2025-03-05"))
	s.Add(samplePost(2, "2025-03-06"))
	before := s.All()

	s.Add(samplePost(99, "2025-03-07"))
	s.Remove(99)

	assert.Equal(t, before, s.All())
}

func TestStoreRemoveMissingID(t *testing.T) {
	s := NewStore()
	s.Add(samplePost(1, "2025-03-05"))
	s.Remove(42)
	assert.Equal(t, 1, s.Len())
}

func TestStoreUpdate(t *testing.T) {
	t.Run("missing id leaves the store unchanged", func(t *testing.T) {
		s := NewStore()
		s.Add(samplePost(1, "2025-03-05"))
		before := s.All()

		s.Update(42, samplePost(42, "2025-03-09"))

		assert.Equal(t, before, s.All())
	})

	t.Run("replaces editable fields, keeps id and generated content", func(t *testing.T) {
		s := NewStore()
		p := samplePost(1, "2025-03-05")
		p.SourceDescription = "salon unghii"
		p.VideoScript = "script"
		s.Add(p)

		fields := samplePost(0, "2025-03-08")
		fields.Title = "Titlu nou"
		fields.Status = domain.StatusDraft
		s.Update(1, fields)

		got, ok := s.Get(1)
		require.True(t, ok)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "Titlu nou", got.Title)
		assert.Equal(t, "2025-03-08", got.Date)
		assert.Equal(t, domain.StatusDraft, got.Status)
		assert.Equal(t, "salon unghii", got.SourceDescription)
		assert.Equal(t, "script", got.VideoScript)
	})
}

func TestPostsForDate(t *testing.T) {
	s := NewStore()
	s.Add(samplePost(1, "2025-03-05"))
	s.Add(samplePost(2, "2025-03-06"))
	s.Add(samplePost(3, "2025-03-05"))

	day := s.PostsForDate("2025-03-05")
	require.Len(t, day, 2)
	assert.Equal(t, int64(1), day[0].ID, "store order is preserved")
	assert.Equal(t, int64(3), day[1].ID)

	assert.Empty(t, s.PostsForDate("2025-03-07"))
}

func TestPostsForDateAfterAdd(t *testing.T) {
	s := NewStore()
	s.Add(samplePost(10, "2025-03-05"))

	included := s.PostsForDate("2025-03-05")
	require.Len(t, included, 1)
	assert.Equal(t, int64(10), included[0].ID)

	assert.Empty(t, s.PostsForDate("2025-03-06"))
}

func TestSeedDatesMatchBucketKeys(t *testing.T) {
	// The seed keys and the calendar bucket keys must agree even near
	// midnight in a non-UTC zone.
	loc := time.FixedZone("UTC+11", 11*3600)
	now := time.Date(2025, time.March, 5, 0, 30, 0, 0, loc)

	s := NewStore()
	s.Seed(now)

	assert.NotEmpty(t, s.PostsForDate(calendar.DateKey(now)))
}

func TestDueScheduled(t *testing.T) {
	s := NewStore()
	early := samplePost(1, "2025-03-05")
	early.Time = "09:00"
	late := samplePost(2, "2025-03-05")
	late.Time = "15:00"
	exact := samplePost(3, "2025-03-05")
	exact.Time = "12:00"
	published := samplePost(4, "2025-03-01")
	published.Status = domain.StatusPublished
	s.Add(early)
	s.Add(late)
	s.Add(exact)
	s.Add(published)

	due := s.DueScheduled("2025-03-05", "12:00")
	require.Len(t, due, 2)
	assert.Equal(t, int64(1), due[0].ID)
	assert.Equal(t, int64(3), due[1].ID)
}

func TestMarkPublished(t *testing.T) {
	s := NewStore()
	s.Add(samplePost(1, "2025-03-05"))

	s.MarkPublished(1)
	p, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPublished, p.Status)

	s.MarkPublished(99) // missing id is a no-op
	assert.Equal(t, 1, s.Len())
}

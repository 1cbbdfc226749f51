package planner

import (
	"context"
	"sync"
	"time"

	"github.com/Alexandru2223/postpilot/internal/calendar"
	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/internal/generator"
	apperrors "github.com/Alexandru2223/postpilot/pkg/errors"
	"github.com/Alexandru2223/postpilot/pkg/formatter"
	"github.com/Alexandru2223/postpilot/pkg/logger"
	"go.uber.org/fx"
)

// FlowState tracks where the creation flow currently is.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowGenerating FlowState = "generating"
	FlowGenerated  FlowState = "generated"
	FlowCommitting FlowState = "committing"
)

type Opts struct {
	fx.In

	Store     *Store
	Generator generator.Client
	Logger    logger.Logger
}

// Controller mediates user actions against the post store: period
// navigation, the generation flow, the edit flow and the two-step delete
// confirmation.
type Controller struct {
	mu        sync.Mutex
	store     *Store
	generator generator.Client
	logger    logger.Logger
	now       func() time.Time

	viewMode  calendar.ViewMode
	reference time.Time
	selected  *time.Time

	detailID      int64
	pendingDelete int64

	flow  FlowState
	genID uint64
	draft *draft
}

type draft struct {
	content     domain.GeneratedContent
	description string
	platform    domain.Platform
	postType    domain.PostType
}

func NewController(opts Opts) *Controller {
	now := time.Now
	return &Controller{
		store:     opts.Store,
		generator: opts.Generator,
		logger:    opts.Logger.WithComponent("Planner"),
		now:       now,
		viewMode:  calendar.ViewWeek,
		reference: now(),
		flow:      FlowIdle,
	}
}

// Store exposes the underlying post store.
func (c *Controller) Store() *Store {
	return c.store
}

// --- period navigation ---

func (c *Controller) ViewMode() calendar.ViewMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMode
}

func (c *Controller) SetViewMode(mode calendar.ViewMode) error {
	if !mode.Valid() {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "unknown view mode")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewMode = mode
	return nil
}

func (c *Controller) PreviousPeriod() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reference = calendar.Previous(c.reference, c.viewMode)
}

func (c *Controller) NextPeriod() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reference = calendar.Next(c.reference, c.viewMode)
}

// GoToToday resets the reference date to the current date and selects it.
func (c *Controller) GoToToday() {
	c.mu.Lock()
	defer c.mu.Unlock()
	today := c.now()
	c.reference = today
	c.selected = &today
}

func (c *Controller) SelectDate(d time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &d
}

func (c *Controller) SelectedDate() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return time.Time{}, false
	}
	return *c.selected, true
}

// VisibleDays returns the dates of the current period: 7 for week mode, 42
// for month mode.
func (c *Controller) VisibleDays() []time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return calendar.Days(c.reference, c.viewMode)
}

func (c *Controller) PeriodTitle() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return calendar.PeriodTitle(c.reference, c.viewMode)
}

// PostsOn buckets the store by the date's canonical key.
func (c *Controller) PostsOn(d time.Time) []domain.Post {
	return c.store.PostsForDate(calendar.DateKey(d))
}

// --- detail view ---

func (c *Controller) OpenDetails(id int64) (domain.Post, error) {
	p, ok := c.store.Get(id)
	if !ok {
		return domain.Post{}, apperrors.ErrNotFound
	}
	c.mu.Lock()
	c.detailID = id
	c.mu.Unlock()
	return p, nil
}

func (c *Controller) CloseDetails() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detailID = 0
}

// --- delete flow ---

// RequestDelete arms the confirmation step; nothing is removed yet.
func (c *Controller) RequestDelete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

// ConfirmDelete removes the armed post. If the open detail view shows the
// same post it is closed as a side effect. Without a prior RequestDelete
// this is a no-op.
func (c *Controller) ConfirmDelete() {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = 0
	if id != 0 && c.detailID == id {
		c.detailID = 0
	}
	c.mu.Unlock()

	if id == 0 {
		return
	}
	c.store.Remove(id)
	c.logger.Info("Deleted post", "post_id", id)
}

func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = 0
}

// --- edit flow ---

func (c *Controller) BeginEdit(id int64) (EditForm, error) {
	p, ok := c.store.Get(id)
	if !ok {
		return EditForm{}, apperrors.ErrNotFound
	}
	return FormFromPost(p), nil
}

// SaveEdit overwrites every editable field of the post with the form's
// values. Validation failures come back as a field-keyed map and nothing is
// written. A stale id degrades to a no-op in the store.
func (c *Controller) SaveEdit(id int64, form EditForm) map[string]string {
	if errs := form.Validate(); len(errs) > 0 {
		return errs
	}
	c.store.Update(id, form.apply(domain.Post{}))
	return nil
}

// --- creation flow ---

func (c *Controller) FlowState() FlowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flow
}

// Generate runs the content generator for the description and parks the
// result as the current draft. The flow sits in the generating state for the
// duration of the (artificial) generation latency.
func (c *Controller) Generate(ctx context.Context, req generator.Request) (domain.GeneratedContent, error) {
	c.mu.Lock()
	if c.flow == FlowGenerating || c.flow == FlowCommitting {
		c.mu.Unlock()
		return domain.GeneratedContent{}, apperrors.Wrap(apperrors.ErrInvalidInput, "generation already in progress")
	}
	c.flow = FlowGenerating
	c.genID++
	id := c.genID
	c.mu.Unlock()

	content, err := c.generator.Generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if id != c.genID {
		// Superseded by a cancel or a newer generation while in flight;
		// the result is discarded.
		return content, err
	}
	if err != nil {
		c.flow = FlowIdle
		c.draft = nil
		return domain.GeneratedContent{}, err
	}
	c.flow = FlowGenerated
	c.draft = &draft{
		content:     content,
		description: req.Description,
		platform:    req.Platform,
		postType:    req.PostType,
	}
	return content, nil
}

// CommitDraft schedules the drafted content for the given date and time. An
// empty date blocks the commit and keeps the creation surface open.
func (c *Controller) CommitDraft(dateKey, timeOfDay string) (domain.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.flow != FlowGenerated || c.draft == nil {
		return domain.Post{}, apperrors.Wrap(apperrors.ErrInvalidInput, "nothing generated yet")
	}
	if dateKey == "" {
		return domain.Post{}, apperrors.Wrap(apperrors.ErrInvalidInput, "a target date is required")
	}
	if _, err := calendar.ParseDateKey(dateKey); err != nil {
		return domain.Post{}, apperrors.Wrap(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}

	c.flow = FlowCommitting
	d := c.draft
	post := domain.Post{
		ID:                c.now().UnixMilli(),
		Title:             d.content.Title,
		Caption:           d.content.Caption,
		Hashtags:          formatter.JoinHashtags(d.content.Hashtags),
		Platform:          d.platform,
		Time:              formatter.Time24(timeOfDay),
		Date:              dateKey,
		Status:            domain.StatusScheduled,
		PostType:          d.postType,
		SourceDescription: d.description,
		VideoScript:       d.content.VideoScript,
		VideoIdeas:        d.content.VideoIdeas,
	}
	c.store.Add(post)
	c.flow = FlowIdle
	c.draft = nil

	c.logger.Info("Scheduled post",
		"post_id", post.ID,
		"platform", post.Platform,
		"date", post.Date,
	)
	return post, nil
}

// CancelDraft abandons the creation flow. A generation still in flight is
// not cancelled; its result is discarded when it lands.
func (c *Controller) CancelDraft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.genID++
	c.flow = FlowIdle
	c.draft = nil
}

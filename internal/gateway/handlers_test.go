package gateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alexandru2223/postpilot/internal/domain"
	mock_generator "github.com/Alexandru2223/postpilot/internal/generator/mocks"
	"github.com/Alexandru2223/postpilot/internal/planner"
	"github.com/Alexandru2223/postpilot/internal/ratelimit"
	mock_session "github.com/Alexandru2223/postpilot/internal/session/mocks"
	apperrors "github.com/Alexandru2223/postpilot/pkg/errors"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

type testEnv struct {
	server    *Server
	store     *planner.Store
	generator *mock_generator.MockClient
	session   *mock_session.MockContext
	handler   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := planner.NewStore()
	gen := mock_generator.NewMockClient(ctrl)
	sess := mock_session.NewMockContext(ctrl)
	log := logger.New(logger.Opts{})

	local := NewLocalService(store, gen, log)
	local.now = func() time.Time {
		return time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)
	}

	controller := planner.NewController(planner.Opts{
		Store:     store,
		Generator: gen,
		Logger:    log,
	})

	srv := New(Opts{
		Service:    local,
		Controller: controller,
		Session:    sess,
		Limiter:    ratelimit.NewInMemoryLimiter(100, time.Second, 100),
		Logger:     log,
	})
	srv.now = func() time.Time {
		return time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)
	}

	return &testEnv{
		server:    srv,
		store:     store,
		generator: gen,
		session:   sess,
		handler:   srv.Handler(),
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func samplePost(id int64, date string) domain.Post {
	return domain.Post{
		ID:       id,
		Title:    "Promoție de primăvară",
		Caption:  "Detalii în bio",
		Hashtags: "#salon #promo",
		Platform: domain.PlatformInstagram,
		Time:     "10:00",
		Date:     date,
		Status:   domain.StatusScheduled,
		PostType: domain.PostTypeNormal,
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAuthRejectsNonBearerHeader(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthzIsOpen(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestListPosts(t *testing.T) {
	env := newTestEnv(t)
	env.store.Add(samplePost(1, "2025-03-05"))
	env.store.Add(samplePost(2, "2025-03-06"))

	rec := env.request(t, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []domain.Post
	decodeInto(t, rec, &posts)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.Equal(t, int64(2), posts[1].ID)
}

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/posts", map[string]any{
		"title":    "Postare nouă",
		"caption":  "Descriere",
		"platform": "Instagram",
		"date":     "2025-03-07",
		"time":     "14:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Post
	decodeInto(t, rec, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.StatusScheduled, created.Status)
	assert.Equal(t, domain.PostTypeNormal, created.PostType)
	assert.Equal(t, 1, env.store.Len())
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/posts", map[string]any{
		"caption":  "fără titlu",
		"platform": "Instagram",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/posts", map[string]any{
		"title":    "Titlu",
		"platform": "MySpace",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, env.store.Len())
}

func TestGetPost(t *testing.T) {
	env := newTestEnv(t)
	env.store.Add(samplePost(7, "2025-03-05"))

	rec := env.request(t, http.MethodGet, "/api/posts/7", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var post domain.Post
	decodeInto(t, rec, &post)
	assert.Equal(t, int64(7), post.ID)
}

func TestGetPostNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/posts/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPostBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/posts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePost(t *testing.T) {
	env := newTestEnv(t)
	env.store.Add(samplePost(3, "2025-03-05"))

	rec := env.request(t, http.MethodPut, "/api/posts/3", map[string]any{
		"title":    "Titlu schimbat",
		"caption":  "Caption schimbat",
		"platform": "Facebook",
		"date":     "2025-03-08",
		"time":     "18:00",
		"status":   "draft",
		"postType": "normal",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Post
	decodeInto(t, rec, &updated)
	assert.Equal(t, "Titlu schimbat", updated.Title)
	assert.Equal(t, domain.PlatformFacebook, updated.Platform)

	stored, ok := env.store.Get(3)
	require.True(t, ok)
	assert.Equal(t, "2025-03-08", stored.Date)
}

func TestUpdatePostNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPut, "/api/posts/42", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePost(t *testing.T) {
	env := newTestEnv(t)
	env.store.Add(samplePost(5, "2025-03-05"))

	rec := env.request(t, http.MethodDelete, "/api/posts/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.store.Len())
}

func TestFilterPosts(t *testing.T) {
	env := newTestEnv(t)
	igPost := samplePost(1, "2025-03-05")
	fbPost := samplePost(2, "2025-03-06")
	fbPost.Platform = domain.PlatformFacebook
	oldPost := samplePost(3, "2025-02-01")
	env.store.Add(igPost)
	env.store.Add(fbPost)
	env.store.Add(oldPost)

	rec := env.request(t, http.MethodGet, "/api/posts/filter?platform=Instagram", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []domain.Post
	decodeInto(t, rec, &posts)
	require.Len(t, posts, 2)

	rec = env.request(t, http.MethodGet, "/api/posts/filter?startDate=2025-03-01&endDate=2025-03-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts = nil
	decodeInto(t, rec, &posts)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.GreaterOrEqual(t, p.Date, "2025-03-01")
	}
}

func TestSuggestions(t *testing.T) {
	env := newTestEnv(t)
	env.generator.EXPECT().
		Suggestions(gomock.Any(), domain.PlatformInstagram, "unghii").
		Return(domain.Suggestion{Hashtags: []string{"#unghii"}}, nil)
	env.session.EXPECT().
		ActiveTemplates(gomock.Any(), "test-token", domain.PlatformInstagram).
		Return(nil, nil)

	rec := env.request(t, http.MethodGet, "/api/posts/suggestions/Instagram?category=unghii", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestion domain.Suggestion
	decodeInto(t, rec, &suggestion)
	assert.Equal(t, []string{"#unghii"}, suggestion.Hashtags)
}

func TestSuggestionsMergeActiveTemplates(t *testing.T) {
	env := newTestEnv(t)
	env.generator.EXPECT().
		Suggestions(gomock.Any(), domain.PlatformInstagram, "unghii").
		Return(domain.Suggestion{
			Captions:  []string{"caption standard"},
			PostIdeas: []string{"idee standard"},
		}, nil)
	env.session.EXPECT().
		ActiveTemplates(gomock.Any(), "test-token", domain.PlatformInstagram).
		Return([]*domain.PostTemplate{
			{
				Name:            "Promoție",
				TitleTemplate:   "Ofertă {{descriere}}",
				CaptionTemplate: "Profită acum de {{descriere}}!",
				Platform:        domain.PlatformInstagram,
				IsActive:        true,
			},
		}, nil)

	rec := env.request(t, http.MethodGet, "/api/posts/suggestions/Instagram?category=unghii", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestion domain.Suggestion
	decodeInto(t, rec, &suggestion)
	assert.Equal(t, []string{"Ofertă unghii", "idee standard"}, suggestion.PostIdeas)
	assert.Equal(t, []string{"Profită acum de unghii!", "caption standard"}, suggestion.Captions)
}

func TestSuggestionsUnknownPlatform(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/posts/suggestions/MySpace", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarWeekView(t *testing.T) {
	env := newTestEnv(t)
	env.store.Add(samplePost(1, "2025-03-05"))
	env.store.Add(samplePost(2, "2025-03-05"))
	env.store.Add(samplePost(3, "2025-03-20"))

	rec := env.request(t, http.MethodGet, "/api/calendar?mode=week&reference=2025-03-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp calendarResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, "3 - 9 Martie 2025", resp.PeriodTitle)
	assert.Equal(t, []string{"Lun", "Mar", "Mie", "Joi", "Vin", "Sâm", "Dum"}, resp.DayNames)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2025-03-03", resp.Days[0].Date)
	assert.Equal(t, "2025-03-09", resp.Days[6].Date)

	for _, day := range resp.Days {
		assert.True(t, day.InPeriod)
		switch day.Date {
		case "2025-03-05":
			assert.True(t, day.IsToday)
			assert.Len(t, day.Posts, 2)
		default:
			assert.False(t, day.IsToday)
			assert.Empty(t, day.Posts)
		}
	}
}

func TestCalendarMonthView(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/calendar?mode=month&reference=2025-03-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp calendarResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, "Martie 2025", resp.PeriodTitle)
	require.Len(t, resp.Days, 42)
	assert.Equal(t, "2025-02-24", resp.Days[0].Date)
	assert.False(t, resp.Days[0].InPeriod)
}

func TestCalendarRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/calendar?mode=year", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/calendar?reference=15-03-2025", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOnboardingDataNotOnboarded(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Load(gomock.Any(), "test-token").Return(nil, apperrors.ErrNotFound)

	rec := env.request(t, http.MethodGet, "/api/onboarding/data", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"onboardingCompleted":false}`, rec.Body.String())
}

func TestBusinessDetailsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Load(gomock.Any(), "test-token").Return(nil, apperrors.ErrNotFound)

	rec := env.request(t, http.MethodGet, "/api/onboarding/business-details", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Business details not found"}`, rec.Body.String())
}

func TestSaveBusinessDetails(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().
		Save(gomock.Any(), "test-token", gomock.Any()).
		DoAndReturn(func(_ any, _ string, p domain.BusinessProfile) (*domain.BusinessProfile, error) {
			assert.True(t, p.OnboardingCompleted)
			p.ID = 10
			return &p, nil
		})

	rec := env.request(t, http.MethodPost, "/api/onboarding/business-details", map[string]any{
		"businessName": "Salon Anca",
		"businessType": "Salon",
		"industry":     "Beauty",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var saved domain.BusinessProfile
	decodeInto(t, rec, &saved)
	assert.Equal(t, "Salon Anca", saved.BusinessName)
	assert.True(t, saved.OnboardingCompleted)
}

func TestSaveBusinessDetailsRequiresName(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/onboarding/business-details", map[string]any{
		"businessType": "Salon",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearBusinessDetails(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Clear(gomock.Any(), "test-token").Return(nil)

	rec := env.request(t, http.MethodDelete, "/api/onboarding/business-details", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTemplates(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().
		Templates(gomock.Any(), "test-token").
		Return([]*domain.PostTemplate{{ID: 1, Name: "Promoție săptămânală", Platform: domain.PlatformInstagram}}, nil)

	rec := env.request(t, http.MethodGet, "/api/post-templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var templates []domain.PostTemplate
	decodeInto(t, rec, &templates)
	require.Len(t, templates, 1)
	assert.Equal(t, "Promoție săptămânală", templates[0].Name)
}

func TestListTemplatesEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Templates(gomock.Any(), "test-token").Return(nil, nil)

	rec := env.request(t, http.MethodGet, "/api/post-templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateTemplate(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().
		SaveTemplate(gomock.Any(), "test-token", gomock.Any()).
		DoAndReturn(func(_ any, _ string, tpl domain.PostTemplate) (*domain.PostTemplate, error) {
			assert.Equal(t, domain.PostTypeNormal, tpl.PostType)
			tpl.ID = 4
			return &tpl, nil
		})

	rec := env.request(t, http.MethodPost, "/api/post-templates", map[string]any{
		"name":            "Promoție săptămânală",
		"platform":        "Instagram",
		"captionTemplate": "Ofertă: {{descriere}}",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var saved domain.PostTemplate
	decodeInto(t, rec, &saved)
	assert.Equal(t, int64(4), saved.ID)
}

func TestCreateTemplateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/post-templates", map[string]any{
		"platform": "Instagram",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/post-templates", map[string]any{
		"name":     "Fără platformă",
		"platform": "MySpace",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTemplateNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().
		DeleteTemplate(gomock.Any(), "test-token", int64(9)).
		Return(apperrors.ErrNotFound)

	rec := env.request(t, http.MethodDelete, "/api/post-templates/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateAndCommit(t *testing.T) {
	env := newTestEnv(t)
	env.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(domain.GeneratedContent{
			Title:    "Transformarea salon unghii - Ghid complet",
			Caption:  "Descoperă cum salon unghii poate fi implementat",
			Hashtags: []string{"#salonunghii", "#instagram"},
		}, nil)

	rec := env.request(t, http.MethodPost, "/api/posts/generate", map[string]any{
		"description": "salon unghii",
		"platform":    "Instagram",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var genResp generateResponse
	decodeInto(t, rec, &genResp)
	assert.Equal(t, "generated", genResp.FlowState)
	assert.Equal(t, "Transformarea salon unghii - Ghid complet", genResp.Content.Title)

	rec = env.request(t, http.MethodPost, "/api/posts/generate/commit", map[string]any{
		"date": "2025-03-10",
		"time": "14:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var post domain.Post
	decodeInto(t, rec, &post)
	assert.Equal(t, "2025-03-10", post.Date)
	assert.Equal(t, "14:30", post.Time)
	assert.Equal(t, "#salonunghii #instagram", post.Hashtags)
	assert.Equal(t, 1, env.store.Len())
}

func TestCommitWithoutDraft(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/posts/generate/commit", map[string]any{
		"date": "2025-03-10",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommitRequiresDate(t *testing.T) {
	env := newTestEnv(t)
	env.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(domain.GeneratedContent{Title: "Titlu"}, nil)

	rec := env.request(t, http.MethodPost, "/api/posts/generate", map[string]any{
		"description": "salon unghii",
		"platform":    "Instagram",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/posts/generate/commit", map[string]any{
		"date": "",
		"time": "14:30",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, env.store.Len())

	// The draft survives a blocked commit.
	rec = env.request(t, http.MethodPost, "/api/posts/generate/commit", map[string]any{
		"date": "2025-03-10",
		"time": "14:30",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCancelDraft(t *testing.T) {
	env := newTestEnv(t)
	env.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(domain.GeneratedContent{Title: "Titlu"}, nil)

	rec := env.request(t, http.MethodPost, "/api/posts/generate", map[string]any{
		"description": "salon unghii",
		"platform":    "Instagram",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodDelete, "/api/posts/generate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"flowState":"idle"}`, rec.Body.String())

	rec = env.request(t, http.MethodPost, "/api/posts/generate/commit", map[string]any{
		"date": "2025-03-10",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := planner.NewStore()
	log := logger.New(logger.Opts{})
	gen := mock_generator.NewMockClient(ctrl)
	srv := New(Opts{
		Service:    NewLocalService(store, gen, log),
		Controller: planner.NewController(planner.Opts{Store: store, Generator: gen, Logger: log}),
		Session:    mock_session.NewMockContext(ctrl),
		Limiter:    ratelimit.NewInMemoryLimiter(1, time.Hour, 1),
		Logger:     log,
	})
	handler := srv.Handler()

	first := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	first.Header.Set("Authorization", "Bearer limited-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	second := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	second.Header.Set("Authorization", "Bearer limited-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

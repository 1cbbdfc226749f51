package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/Alexandru2223/postpilot/internal/backend"
	"github.com/Alexandru2223/postpilot/internal/calendar"
	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/internal/generator"
	"github.com/Alexandru2223/postpilot/internal/planner"
	"github.com/Alexandru2223/postpilot/internal/ratelimit"
	"github.com/Alexandru2223/postpilot/internal/session"
	apperrors "github.com/Alexandru2223/postpilot/pkg/errors"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

type Opts struct {
	fx.In

	Service    PostService
	Controller *planner.Controller
	Session    session.Context
	Limiter    ratelimit.Limiter
	Logger     logger.Logger
}

// Server is the authenticated HTTP surface over the post service, the
// calendar view, the creation flow and the onboarding session.
type Server struct {
	service    PostService
	controller *planner.Controller
	session    session.Context
	limiter    ratelimit.Limiter
	logger     logger.Logger
	now        func() time.Time
}

func New(opts Opts) *Server {
	return &Server{
		service:    opts.Service,
		controller: opts.Controller,
		session:    opts.Session,
		limiter:    opts.Limiter,
		logger:     opts.Logger.WithComponent("Gateway"),
		now:        time.Now,
	}
}

// Handler builds the route table. Everything under /api requires a bearer
// token and is rate limited per token; /healthz is open.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /api/posts", s.listPosts)
	api.HandleFunc("POST /api/posts", s.createPost)
	api.HandleFunc("GET /api/posts/filter", s.filterPosts)
	api.HandleFunc("POST /api/posts/generate", s.generateDraft)
	api.HandleFunc("POST /api/posts/generate/commit", s.commitDraft)
	api.HandleFunc("DELETE /api/posts/generate", s.cancelDraft)
	api.HandleFunc("GET /api/posts/suggestions/{platform}", s.suggestions)
	api.HandleFunc("GET /api/posts/{postId}", s.getPost)
	api.HandleFunc("PUT /api/posts/{postId}", s.updatePost)
	api.HandleFunc("DELETE /api/posts/{postId}", s.deletePost)
	api.HandleFunc("GET /api/calendar", s.calendarView)
	api.HandleFunc("GET /api/post-templates", s.listTemplates)
	api.HandleFunc("POST /api/post-templates", s.createTemplate)
	api.HandleFunc("DELETE /api/post-templates/{templateId}", s.deleteTemplate)
	api.HandleFunc("GET /api/onboarding/data", s.onboardingData)
	api.HandleFunc("GET /api/onboarding/business-details", s.getBusinessDetails)
	api.HandleFunc("POST /api/onboarding/business-details", s.saveBusinessDetails)
	api.HandleFunc("DELETE /api/onboarding/business-details", s.clearBusinessDetails)

	root := http.NewServeMux()
	root.Handle("/api/", RequireAuth(RateLimit(s.limiter, api)))
	root.HandleFunc("GET /healthz", s.healthz)
	return root
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.service.List(r.Context(), Token(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, posts)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var post domain.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}
	created, err := s.service.Create(r.Context(), Token(r), post)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	post, err := s.service.Get(r.Context(), Token(r), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var post domain.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}
	updated, err := s.service.Update(r.Context(), Token(r), id, post)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.service.Delete(r.Context(), Token(r), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

func (s *Server) filterPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := backend.FilterParams{
		Status:    q.Get("status"),
		Platform:  q.Get("platform"),
		PostType:  q.Get("postType"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	posts, err := s.service.Filter(r.Context(), Token(r), params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, posts)
}

func (s *Server) suggestions(w http.ResponseWriter, r *http.Request) {
	platform := domain.Platform(r.PathValue("platform"))
	if !platform.Valid() {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown platform"))
		return
	}
	category := r.URL.Query().Get("category")
	suggestion, err := s.service.Suggestions(r.Context(), Token(r), platform, category)
	if err != nil {
		s.writeError(w, err)
		return
	}

	templates, err := s.session.ActiveTemplates(r.Context(), Token(r), platform)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if category == "" {
		category = "conținut"
	}
	// The caller's own active templates rank ahead of the stock ideas.
	for i := len(templates) - 1; i >= 0; i-- {
		tpl := templates[i]
		if tpl.TitleTemplate != "" {
			suggestion.PostIdeas = append([]string{fillTemplate(tpl.TitleTemplate, category)}, suggestion.PostIdeas...)
		}
		if tpl.CaptionTemplate != "" {
			suggestion.Captions = append([]string{fillTemplate(tpl.CaptionTemplate, category)}, suggestion.Captions...)
		}
	}
	s.writeJSON(w, http.StatusOK, suggestion)
}

// fillTemplate substitutes the {{descriere}} markers a saved template carries.
func fillTemplate(tpl, description string) string {
	return strings.ReplaceAll(tpl, "{{descriere}}", description)
}

type generateRequest struct {
	Description string `json:"description"`
	Platform    string `json:"platform"`
	PostType    string `json:"postType"`
}

type generateResponse struct {
	FlowState string                  `json:"flowState"`
	Content   domain.GeneratedContent `json:"content"`
}

// generateDraft runs the content generator and parks the result as the
// drafted post. The draft stays open until committed or cancelled.
func (s *Server) generateDraft(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}
	postType := domain.PostType(req.PostType)
	if req.PostType == "" {
		postType = domain.PostTypeNormal
	}
	content, err := s.controller.Generate(r.Context(), generator.Request{
		Description: req.Description,
		Platform:    domain.Platform(req.Platform),
		PostType:    postType,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{
		FlowState: string(s.controller.FlowState()),
		Content:   content,
	})
}

type commitRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (s *Server) commitDraft(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}
	post, err := s.controller.CommitDraft(req.Date, req.Time)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, post)
}

func (s *Server) cancelDraft(w http.ResponseWriter, r *http.Request) {
	s.controller.CancelDraft()
	s.writeJSON(w, http.StatusOK, map[string]string{"flowState": string(s.controller.FlowState())})
}

type calendarDay struct {
	Date     string        `json:"date"`
	InPeriod bool          `json:"inPeriod"`
	IsToday  bool          `json:"isToday"`
	Posts    []domain.Post `json:"posts"`
}

type calendarResponse struct {
	PeriodTitle string        `json:"periodTitle"`
	Mode        string        `json:"mode"`
	DayNames    []string      `json:"dayNames"`
	Days        []calendarDay `json:"days"`
}

// calendarView renders the period around ?reference= (default today) in
// ?mode= week or month, with posts bucketed onto their days.
func (s *Server) calendarView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode := calendar.ViewMode(q.Get("mode"))
	if mode == "" {
		mode = calendar.ViewWeek
	}
	if !mode.Valid() {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown view mode"))
		return
	}

	ref := s.now()
	if raw := q.Get("reference"); raw != "" {
		parsed, err := calendar.ParseDateKey(raw)
		if err != nil {
			s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "reference must be YYYY-MM-DD"))
			return
		}
		ref = parsed
	}

	posts, err := s.service.List(r.Context(), Token(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	byDate := make(map[string][]domain.Post)
	for _, p := range posts {
		byDate[p.Date] = append(byDate[p.Date], p)
	}

	today := s.now()
	days := calendar.Days(ref, mode)
	resp := calendarResponse{
		PeriodTitle: calendar.PeriodTitle(ref, mode),
		Mode:        string(mode),
		DayNames:    calendar.DayNames[:],
		Days:        make([]calendarDay, 0, len(days)),
	}
	for _, day := range days {
		key := calendar.DateKey(day)
		resp.Days = append(resp.Days, calendarDay{
			Date:     key,
			InPeriod: calendar.InPeriod(day, ref, mode),
			IsToday:  calendar.SameDay(day, today),
			Posts:    byDate[key],
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) onboardingData(w http.ResponseWriter, r *http.Request) {
	profile, err := s.session.Load(r.Context(), Token(r))
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.writeJSON(w, http.StatusOK, map[string]bool{"onboardingCompleted": false})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) getBusinessDetails(w http.ResponseWriter, r *http.Request) {
	profile, err := s.session.Load(r.Context(), Token(r))
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{"message": "Business details not found"})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *Server) saveBusinessDetails(w http.ResponseWriter, r *http.Request) {
	var profile domain.BusinessProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}
	if profile.BusinessName == "" {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "businessName is required"))
		return
	}
	profile.OnboardingCompleted = true
	saved, err := s.session.Save(r.Context(), Token(r), profile)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) clearBusinessDetails(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Clear(r.Context(), Token(r)); err != nil && !apperrors.IsNotFound(err) {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Business details cleared"})
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.session.Templates(r.Context(), Token(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if templates == nil {
		templates = []*domain.PostTemplate{}
	}
	s.writeJSON(w, http.StatusOK, templates)
}

func (s *Server) createTemplate(w http.ResponseWriter, r *http.Request) {
	var tpl domain.PostTemplate
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed request body"))
		return
	}
	if tpl.Name == "" {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "name is required"))
		return
	}
	if !tpl.Platform.Valid() {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown platform"))
		return
	}
	if tpl.PostType == "" {
		tpl.PostType = domain.PostTypeNormal
	}
	saved, err := s.session.SaveTemplate(r.Context(), Token(r), tpl)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("templateId"), 10, 64)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrInvalidInput, "templateId must be numeric"))
		return
	}
	if err := s.session.DeleteTemplate(r.Context(), Token(r), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Template deleted successfully"})
}

func postID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("postId"), 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "postId must be numeric")
	}
	return id, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsInvalidInput(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsUnauthorized(err):
		status = http.StatusUnauthorized
	case apperrors.IsServiceUnavailable(err):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	}

	message := apperrors.GetMessage(err)
	if message == "" || errors.Is(err, apperrors.ErrInternalServer) {
		message = "Internal server error"
	}
	s.writeJSON(w, status, map[string]string{"error": message})
}

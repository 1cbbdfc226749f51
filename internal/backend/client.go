// Package backend talks to the external post service. The planner's local
// store is authoritative for the mock flows; this client exists for
// deployments where the gateway proxies to a real backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/pkg/config"
	apperrors "github.com/Alexandru2223/postpilot/pkg/errors"
	"github.com/Alexandru2223/postpilot/pkg/logger"
	"github.com/Alexandru2223/postpilot/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func New(opts Opts) *Client {
	return &Client{
		baseURL: strings.TrimRight(opts.Config.Backend.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Config.Backend.Timeout},
		logger:  opts.Logger.WithComponent("BackendClient"),
	}
}

// Enabled reports whether a backend base URL is configured. Without one the
// gateway serves the in-memory store instead.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// FilterParams narrows a post listing. Empty fields are omitted.
type FilterParams struct {
	Status    string
	Platform  string
	PostType  string
	StartDate string
	EndDate   string
}

func (f FilterParams) query() string {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Platform != "" {
		q.Set("platform", f.Platform)
	}
	if f.PostType != "" {
		q.Set("postType", f.PostType)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	return q.Encode()
}

// postPayload is the backend's wire shape for a post. It differs from the
// planner entity in naming its schedule fields scheduledDate/scheduledTime.
type postPayload struct {
	ID            int64    `json:"id,omitempty"`
	Title         string   `json:"title"`
	Caption       string   `json:"caption,omitempty"`
	Hashtags      string   `json:"hashtags,omitempty"`
	Platform      string   `json:"platform"`
	PostType      string   `json:"postType"`
	Status        string   `json:"status"`
	ScheduledDate string   `json:"scheduledDate"`
	ScheduledTime string   `json:"scheduledTime"`
	VideoScript   string   `json:"videoScript,omitempty"`
	VideoIdeas    []string `json:"videoIdeas,omitempty"`
}

func toPayload(p domain.Post) postPayload {
	return postPayload{
		ID:            p.ID,
		Title:         p.Title,
		Caption:       p.Caption,
		Hashtags:      p.Hashtags,
		Platform:      string(p.Platform),
		PostType:      string(p.PostType),
		Status:        string(p.Status),
		ScheduledDate: p.Date,
		ScheduledTime: p.Time,
		VideoScript:   p.VideoScript,
		VideoIdeas:    p.VideoIdeas,
	}
}

func (p postPayload) toDomain() domain.Post {
	return domain.Post{
		ID:          p.ID,
		Title:       p.Title,
		Caption:     p.Caption,
		Hashtags:    p.Hashtags,
		Platform:    domain.Platform(p.Platform),
		PostType:    domain.PostType(p.PostType),
		Status:      domain.Status(p.Status),
		Date:        p.ScheduledDate,
		Time:        p.ScheduledTime,
		VideoScript: p.VideoScript,
		VideoIdeas:  p.VideoIdeas,
	}
}

func (c *Client) List(ctx context.Context, token string) ([]domain.Post, error) {
	var payloads []postPayload
	err := c.getWithRetry(ctx, "/posts", token, &payloads)
	if err != nil {
		return nil, err
	}
	posts := make([]domain.Post, 0, len(payloads))
	for _, p := range payloads {
		posts = append(posts, p.toDomain())
	}
	return posts, nil
}

// Get fetches a single post. A backend 404 maps to ErrNotFound; it is "no
// such post", not a transport failure.
func (c *Client) Get(ctx context.Context, token string, id int64) (domain.Post, error) {
	var payload postPayload
	err := c.getWithRetry(ctx, fmt.Sprintf("/posts/%d", id), token, &payload)
	if err != nil {
		return domain.Post{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) Filter(ctx context.Context, token string, params FilterParams) ([]domain.Post, error) {
	path := "/posts"
	if q := params.query(); q != "" {
		path += "?" + q
	}
	var payloads []postPayload
	if err := c.getWithRetry(ctx, path, token, &payloads); err != nil {
		return nil, err
	}
	posts := make([]domain.Post, 0, len(payloads))
	for _, p := range payloads {
		posts = append(posts, p.toDomain())
	}
	return posts, nil
}

func (c *Client) Suggestions(ctx context.Context, token string, platform domain.Platform, category, language string) (domain.Suggestion, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if language != "" {
		q.Set("language", language)
	}
	path := "/posts/suggestions/" + url.PathEscape(string(platform))
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var s domain.Suggestion
	if err := c.getWithRetry(ctx, path, token, &s); err != nil {
		return domain.Suggestion{}, err
	}
	return s, nil
}

func (c *Client) Create(ctx context.Context, token string, post domain.Post) (domain.Post, error) {
	var payload postPayload
	if err := c.do(ctx, http.MethodPost, "/posts", token, toPayload(post), &payload); err != nil {
		return domain.Post{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) Update(ctx context.Context, token string, id int64, post domain.Post) (domain.Post, error) {
	var payload postPayload
	path := fmt.Sprintf("/posts/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, toPayload(post), &payload); err != nil {
		return domain.Post{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) Delete(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), token, nil, nil)
}

// getWithRetry retries idempotent reads with backoff. Mutations are never
// retried automatically.
func (c *Client) getWithRetry(ctx context.Context, path, token string, out any) error {
	return retry.Do(ctx, c.logger, "backend GET "+path, func() error {
		err := c.do(ctx, http.MethodGet, path, token, nil, out)
		if err != nil && !apperrors.IsServiceUnavailable(err) {
			return retry.Permanent(err)
		}
		return err
	}, retry.DefaultConfig())
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrServiceUnavailable, "backend unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorFromResponse builds the user-facing error for a non-2xx response. The
// body may carry an optional message field used as the display text.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Message
	if msg == "" {
		msg = fmt.Sprintf("backend error: %d", resp.StatusCode)
	}

	c.logger.Warn("Backend request failed",
		"status", resp.StatusCode,
		"message", msg,
	)

	if resp.StatusCode >= 500 {
		return &apperrors.Error{
			Code:    fmt.Sprintf("%d", resp.StatusCode),
			Message: msg,
			Err:     apperrors.ErrServiceUnavailable,
		}
	}
	return &apperrors.Error{
		Code:    fmt.Sprintf("%d", resp.StatusCode),
		Message: msg,
		Err:     apperrors.ErrInvalidInput,
	}
}

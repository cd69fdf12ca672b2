// Package client talks to the interview tracker JSON API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/viewstate"
)

var (
	_ viewstate.Mutator        = (*Client)(nil)
	_ viewstate.StandupMutator = (*Client)(nil)
)

// APIError is a non-2xx reply. Message is the server's error text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

type Session struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	IsAdmin     bool   `json:"is_admin"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// SetToken attaches a bearer token to every following request.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func do[T any](ctx context.Context, req *resty.Request, method, path string) (T, error) {
	var out envelope[T]
	var zero T
	resp, err := req.SetContext(ctx).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Execute(method, path)
	if err != nil {
		return zero, err
	}
	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		if e, ok := resp.Error().(*errorEnvelope); ok && e.Error != "" {
			apiErr.Message = e.Error
		}
		return zero, apiErr
	}
	return out.Data, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	sess, err := do[*Session](ctx, c.http.R().SetBody(map[string]string{"email": email, "password": password}),
		http.MethodPost, "/api/auth/signin")
	if err != nil {
		return nil, err
	}
	c.SetToken(sess.AccessToken)
	return sess, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	_, err := do[any](ctx, c.http.R(), http.MethodPost, "/api/auth/signout")
	return err
}

type interviewList struct {
	Rows []struct {
		Interview *interview.Interview `json:"interview"`
	} `json:"rows"`
}

func (c *Client) ListInterviews(ctx context.Context) ([]*interview.Interview, error) {
	list, err := do[interviewList](ctx, c.http.R(), http.MethodGet, "/api/interviews")
	if err != nil {
		return nil, err
	}
	out := make([]*interview.Interview, 0, len(list.Rows))
	for _, r := range list.Rows {
		out = append(out, r.Interview)
	}
	return out, nil
}

func formRequest(req *resty.Request, form viewstate.Form) *resty.Request {
	fields := map[string]string{
		"profile":        form.Profile,
		"company":        form.Company,
		"step":           form.Step,
		"interview_date": form.InterviewDate,
		"note":           form.Note,
		"state":          string(form.State),
		"interview_type": form.InterviewType,
		"script":         form.Script,
	}
	if form.RemoveImage {
		fields["remove_image"] = "true"
	}
	req.SetMultipartFormData(fields)
	if form.Image != nil {
		name := form.ImageName
		if name == "" {
			name = "image"
		}
		req.SetFileReader("image", name, form.Image)
	}
	return req
}

func (c *Client) CreateInterview(ctx context.Context, form viewstate.Form) (*interview.Interview, error) {
	return do[*interview.Interview](ctx, formRequest(c.http.R(), form), http.MethodPost, "/api/interviews")
}

func (c *Client) UpdateInterview(ctx context.Context, id uuid.UUID, form viewstate.Form) (*interview.Interview, error) {
	req := formRequest(c.http.R(), form).SetPathParam("id", id.String())
	return do[*interview.Interview](ctx, req, http.MethodPut, "/api/interviews/{id}")
}

func (c *Client) UpdateStatus(ctx context.Context, id uuid.UUID, state interview.State) (*interview.Interview, error) {
	req := c.http.R().SetPathParam("id", id.String()).SetBody(map[string]string{"state": string(state)})
	return do[*interview.Interview](ctx, req, http.MethodPatch, "/api/interviews/{id}/status")
}

func (c *Client) DeleteInterview(ctx context.Context, id uuid.UUID) error {
	_, err := do[any](ctx, c.http.R().SetPathParam("id", id.String()), http.MethodDelete, "/api/interviews/{id}")
	return err
}

func (c *Client) ListStandups(ctx context.Context) ([]*standup.Standup, error) {
	return do[[]*standup.Standup](ctx, c.http.R(), http.MethodGet, "/api/standups")
}

// UpsertStandup saves the day's items, given as the JSON item array.
func (c *Client) UpsertStandup(ctx context.Context, form viewstate.StandupForm) (*standup.Standup, error) {
	req := c.http.R().SetBody(map[string]string{"standup_date": form.Date, "items": form.ItemsJSON})
	return do[*standup.Standup](ctx, req, http.MethodPost, "/api/standups")
}

func (c *Client) DeleteStandup(ctx context.Context, id uuid.UUID) error {
	_, err := do[any](ctx, c.http.R().SetPathParam("id", id.String()), http.MethodDelete, "/api/standups/{id}")
	return err
}

func (c *Client) AnalyzeScript(ctx context.Context, script, prompt string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"script": script, "prompt": prompt}).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Post("/api/interviews/analyze")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		msg := http.StatusText(resp.StatusCode())
		if e, ok := resp.Error().(*errorEnvelope); ok && e.Error != "" {
			msg = e.Error
		}
		return "", &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return out.Response, nil
}

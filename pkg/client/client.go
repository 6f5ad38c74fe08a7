// Package client is a Go client for the PeakLearn HTTP API.
//
// The client holds no authentication state: every authenticated call takes
// a Credentials value, so one Client can serve many users concurrently.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Credentials authenticate a single request.
type Credentials struct {
	AccessToken string
}

func (c Credentials) apply(req *http.Request) {
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}
}

// anonymous is used for endpoints that need no token.
var anonymous = Credentials{}

// FieldError is one invalid field reported by the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Msg        string       `json:"msg"`
	Errors     []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("peaklearn: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("peaklearn: HTTP %d: %s", e.StatusCode, e.Msg)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to one PeakLearn server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- auth ---

// Signup registers an account and returns its tokens.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, anonymous, http.MethodPost, "/api/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns fresh tokens.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, anonymous, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.doJSON(ctx, anonymous, http.MethodPost, "/api/auth/refresh", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes every refresh token of the caller.
func (c *Client) Logout(ctx context.Context, creds Credentials) error {
	return c.doJSON(ctx, creds, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me returns the caller's profile.
func (c *Client) Me(ctx context.Context, creds Credentials) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, creds, http.MethodGet, "/api/user/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// --- documents ---

// UploadDocument sends a PDF and returns the created document and plan IDs.
func (c *Client) UploadDocument(ctx context.Context, creds Credentials, filename, subject string, hoursPerDay float64, file io.Reader) (*UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("subject", subject); err != nil {
		return nil, err
	}
	if err := mw.WriteField("hoursPerDay", strconv.FormatFloat(hoursPerDay, 'f', -1, 64)); err != nil {
		return nil, err
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, fmt.Errorf("peaklearn: read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, creds, http.MethodPost, "/api/documents/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out UploadResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDocuments returns the caller's documents, newest first.
func (c *Client) ListDocuments(ctx context.Context, creds Credentials, limit, offset int) ([]Document, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)

	var out struct {
		Documents []Document `json:"documents"`
	}
	if err := c.doJSON(ctx, creds, http.MethodGet, withQuery("/api/documents", q), nil, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// GetDocument returns one document with its outline.
func (c *Client) GetDocument(ctx context.Context, creds Credentials, id uuid.UUID) (*Document, error) {
	var out struct {
		Document Document `json:"document"`
	}
	if err := c.doJSON(ctx, creds, http.MethodGet, "/api/documents/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out.Document, nil
}

// DownloadDocument streams the stored file. The caller must close the body.
func (c *Client) DownloadDocument(ctx context.Context, creds Credentials, id uuid.UUID) (io.ReadCloser, error) {
	resp, err := c.do(ctx, creds, http.MethodGet, "/api/documents/"+id.String()+"/download", nil, "")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, apiError(resp)
	}
	return resp.Body, nil
}

// DeleteDocument soft-deletes a document and its study plan.
func (c *Client) DeleteDocument(ctx context.Context, creds Credentials, id uuid.UUID) error {
	return c.doJSON(ctx, creds, http.MethodDelete, "/api/documents/"+id.String(), nil, nil)
}

// --- study plans ---

// ListStudyPlans returns the caller's plans without topics.
func (c *Client) ListStudyPlans(ctx context.Context, creds Credentials, opts ListPlansOptions) ([]StudyPlan, error) {
	q := url.Values{}
	if opts.Completed != nil {
		q.Set("completed", strconv.FormatBool(*opts.Completed))
	}
	if opts.Subject != "" {
		q.Set("subject", opts.Subject)
	}
	setInt(q, "limit", opts.Limit)
	setInt(q, "offset", opts.Offset)

	var out struct {
		StudyPlans []StudyPlan `json:"studyPlans"`
	}
	if err := c.doJSON(ctx, creds, http.MethodGet, withQuery("/api/study-plans", q), nil, &out); err != nil {
		return nil, err
	}
	return out.StudyPlans, nil
}

// GetStudyPlan returns one plan with topics and progress.
func (c *Client) GetStudyPlan(ctx context.Context, creds Credentials, planID uuid.UUID) (*StudyPlan, error) {
	var out struct {
		StudyPlan StudyPlan `json:"studyPlan"`
	}
	if err := c.doJSON(ctx, creds, http.MethodGet, "/api/study-plans/"+planID.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out.StudyPlan, nil
}

// SetTopicCompletion marks one topic completed or not.
func (c *Client) SetTopicCompletion(ctx context.Context, creds Credentials, planID uuid.UUID, topicIndex int, completed bool) (*TopicCompletion, error) {
	path := fmt.Sprintf("/api/study-plans/%s/topics/%d", planID, topicIndex)
	var out TopicCompletion
	if err := c.doJSON(ctx, creds, http.MethodPatch, path, map[string]bool{"completed": completed}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPlanCompletion overrides the plan's completed flag.
func (c *Client) SetPlanCompletion(ctx context.Context, creds Credentials, planID uuid.UUID, completed bool) (*StudyPlan, error) {
	var out struct {
		StudyPlan StudyPlan `json:"studyPlan"`
	}
	err := c.doJSON(ctx, creds, http.MethodPatch, "/api/study-plans/"+planID.String(), map[string]bool{"completed": completed}, &out)
	if err != nil {
		return nil, err
	}
	return &out.StudyPlan, nil
}

// PlanHistory returns the most recent audited changes of a plan.
func (c *Client) PlanHistory(ctx context.Context, creds Credentials, planID uuid.UUID, limit int) ([]HistoryEntry, error) {
	q := url.Values{}
	setInt(q, "limit", limit)

	var out struct {
		History []HistoryEntry `json:"history"`
	}
	path := withQuery("/api/study-plans/"+planID.String()+"/history", q)
	if err := c.doJSON(ctx, creds, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

// Health returns nil when the server reports itself healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, anonymous, http.MethodGet, "/health", nil, nil)
}

// --- plumbing ---

func (c *Client) doJSON(ctx context.Context, creds Credentials, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("peaklearn: marshal request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, creds, method, path, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, out)
}

func (c *Client) do(ctx context.Context, creds Credentials, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("peaklearn: create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	creds.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("peaklearn: %s %s: %w", method, path, err)
	}
	return resp, nil
}

// decode reads a JSON body into out, or converts an error status into an
// APIError. out may be nil.
func decode(resp *http.Response, out any) error {
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("peaklearn: decode response: %w", err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(data) > 0 {
		if json.Unmarshal(data, apiErr) != nil {
			apiErr.Msg = strings.TrimSpace(string(data))
		}
	}
	return apiErr
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

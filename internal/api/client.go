// Package api talks to the HomelyHub marketplace backend over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homelyhub/internal/domain"
)

// Backend routes
const (
	ListingPath     = "/api/v1/rent/listing"
	CurrentUserPath = "/api/v1/rent/user/me"
	UpdateUserPath  = "/api/v1/rent/user/updateMe"
)

// RequestIDHeader is sent with every request so backend logs can be correlated
const RequestIDHeader = "X-Request-ID"

// Error is a non-2xx response from the backend
type Error struct {
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("backend returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, strings.Join(e.Messages, "; "))
}

// Messages extracts user-facing messages from err, falling back to err.Error()
func Messages(err error) []string {
	var apiErr *Error
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return apiErr.Messages
	}
	if err == nil {
		return nil
	}
	return []string{err.Error()}
}

// PropertyPage is one page of the listing endpoint
type PropertyPage struct {
	Properties []domain.Property `json:"properties"`
	Total      int               `json:"totalProperties"`
}

// Options configures a Client
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is the backend HTTP client
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for opts.BaseURL
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		token:   opts.Token,
		http:    hc,
		logger:  logger.Named("api"),
	}, nil
}

// ListProperties fetches one backend page of properties
func (c *Client) ListProperties(ctx context.Context, page int) (*PropertyPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var out PropertyPage
	if err := c.do(ctx, http.MethodGet, ListingPath, q, nil, &out); err != nil {
		return nil, fmt.Errorf("list properties page %d: %w", page, err)
	}
	return &out, nil
}

// CurrentUser fetches the signed-in user
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, CurrentUserPath, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &out.User, nil
}

// UpdateUser sends a partial profile update and returns the updated user
func (c *Client) UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, UpdateUserPath, nil, update, &out); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &out.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method), zap.String("path", path),
			zap.String("request_id", requestID), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("method", method), zap.String("path", path),
		zap.String("request_id", requestID), zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError understands {"message": ..}, {"error": ..} and {"errors": [..]} bodies
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body struct {
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Errors  []json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Messages = append(apiErr.Messages, body.Message)
	}
	if body.Error != "" {
		apiErr.Messages = append(apiErr.Messages, body.Error)
	}
	for _, raw := range body.Errors {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			apiErr.Messages = append(apiErr.Messages, s)
			continue
		}
		var obj struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &obj) == nil {
			if obj.Message != "" {
				apiErr.Messages = append(apiErr.Messages, obj.Message)
			} else if obj.Msg != "" {
				apiErr.Messages = append(apiErr.Messages, obj.Msg)
			}
		}
	}
	return apiErr
}

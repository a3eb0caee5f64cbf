// Package dappclient is the Go client for the DApp rankings API. It speaks
// the response envelope the server emits and hands callers plain domain
// values.
package dappclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/HungEzz/surfsui/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

// maxErrorBodyBytes caps how much of a failed response is read for the
// error message.
const maxErrorBodyBytes = 4 << 10

type Client interface {
	AllRankings(ctx context.Context) ([]domain.DAppRanking, error)
	TopDApps(ctx context.Context, limit int) ([]domain.DAppRanking, error)
	DAppsByCategory(ctx context.Context, category domain.Category) ([]domain.DAppRanking, error)
	Stats(ctx context.Context) (*domain.DAppStats, error)
	Health(ctx context.Context) (*domain.HealthStatus, error)
}

type APIClient struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*APIClient)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) {
		c.httpClient = hc
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *APIClient) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(baseURL string, opts ...Option) Client {
	client := &APIClient{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// StatusError is returned when the server answers with an error envelope.
// Callers branch on StatusCode or Code, never on message text.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api responded %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err is a StatusError for a 404 response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

type successEnvelope struct {
	Success   bool                `json:"success"`
	Data      jsoniter.RawMessage `json:"data"`
	Total     *int                `json:"total"`
	Timestamp string              `json:"timestamp"`
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *APIClient) AllRankings(ctx context.Context) ([]domain.DAppRanking, error) {
	var rankings []domain.DAppRanking
	if err := c.getData(ctx, "/api/dapps/rankings", &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

func (c *APIClient) TopDApps(ctx context.Context, limit int) ([]domain.DAppRanking, error) {
	var rankings []domain.DAppRanking
	if err := c.getData(ctx, fmt.Sprintf("/api/dapps/top/%d", limit), &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

func (c *APIClient) DAppsByCategory(ctx context.Context, category domain.Category) ([]domain.DAppRanking, error) {
	var rankings []domain.DAppRanking
	endpoint := "/api/dapps/by-category/" + url.PathEscape(category.String())
	if err := c.getData(ctx, endpoint, &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

func (c *APIClient) Stats(ctx context.Context) (*domain.DAppStats, error) {
	var stats domain.DAppStats
	if err := c.getData(ctx, "/api/dapps/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health calls the health endpoint. A 503 still carries a valid body, so it
// is decoded rather than treated as a StatusError.
func (c *APIClient) Health(ctx context.Context) (*domain.HealthStatus, error) {
	body, _, err := c.get(ctx, "/health", http.StatusServiceUnavailable)
	if err != nil {
		return nil, err
	}

	var health domain.HealthStatus
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, errors.Wrap(err, "decoding health response")
	}
	return &health, nil
}

// getData fetches an endpoint and unwraps the success envelope into out.
func (c *APIClient) getData(ctx context.Context, endpoint string, out interface{}) error {
	body, _, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}

	var env successEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrapf(err, "decoding response from %s", endpoint)
	}

	if !env.Success {
		return errors.Errorf("response from %s has success=false without error envelope", endpoint)
	}

	if len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(err, "decoding data from %s", endpoint)
	}
	return nil
}

// get performs the request and returns the raw body. Status codes other than
// 200 or one of acceptStatuses become a StatusError built from the error
// envelope.
func (c *APIClient) get(ctx context.Context, endpoint string, acceptStatuses ...int) ([]byte, int, error) {
	target, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, 0, errors.Wrap(err, "parsing base URL")
	}
	target.Path = path.Join(target.Path, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "requesting %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && !statusAccepted(resp.StatusCode, acceptStatuses) {
		return nil, resp.StatusCode, c.statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrapf(err, "reading response from %s", endpoint)
	}

	return body, resp.StatusCode, nil
}

func statusAccepted(status int, accepted []int) bool {
	for _, s := range accepted {
		if s == status {
			return true
		}
	}
	return false
}

func (c *APIClient) statusError(resp *http.Response) error {
	statusErr := &StatusError{
		StatusCode: resp.StatusCode,
		Code:       "UNKNOWN",
		Message:    resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return statusErr
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Code != "" {
		statusErr.Code = env.Error.Code
		statusErr.Message = env.Error.Message
	}

	return statusErr
}

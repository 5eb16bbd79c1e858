package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"userdeck/internal/domain"
	apperrors "userdeck/internal/errors"
)

// UserAgent identifies userdeck to the endpoint
const UserAgent = "userdeck/1.0"

// Source returns the ordered user batch for a session
type Source interface {
	Fetch(ctx context.Context) ([]domain.UserRecord, error)
}

// Client fetches users from a random-user compatible endpoint
type Client struct {
	endpoint string
	seed     string
	client   *http.Client
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        2,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// NewClient creates a client for endpoint. seed may be empty.
func NewClient(endpoint, seed string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		endpoint: endpoint,
		seed:     seed,
		client:   newHTTPClient(timeout),
		validate: validator.New(),
		logger:   logger,
	}
}

// Endpoint returns the base URL the client calls
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Close releases idle connections
func (c *Client) Close() error {
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
	return nil
}

// Fetch requests one batch of BatchSize users.
// Every failure is returned as a DataSourceError.
func (c *Client) Fetch(ctx context.Context) ([]domain.UserRecord, error) {
	reqURL, err := c.requestURL()
	if err != nil {
		return nil, apperrors.NewDataSourceError("build request", err).WithContext("endpoint", c.endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewDataSourceError("build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewDataSourceError("fetch", err).WithContext("url", reqURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewDataSourceError("fetch", fmt.Errorf("endpoint returned status %d: %s", resp.StatusCode, string(body))).
			WithContext("status", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewDataSourceError("decode", err)
	}
	if payload.Error != "" {
		return nil, apperrors.NewDataSourceError("fetch", fmt.Errorf("endpoint error: %s", payload.Error))
	}

	users := mapUsers(payload.Results, c.validate, c.logger)
	c.logger.Infow("fetched user batch",
		"requested", BatchSize,
		"received", len(payload.Results),
		"kept", len(users),
		"elapsed", time.Since(start),
	)
	return users, nil
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(BatchSize))
	if c.seed != "" {
		q.Set("seed", c.seed)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

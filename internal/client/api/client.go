package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nxtlabs/nxtcli/internal/client/models"
)

// Client is the transport surface the flows depend on. The NXT account
// service is a black box behind this interface; tests substitute fakes.
type Client interface {
	// Login submits first-phase credentials. A nil error means the server
	// accepted them and dispatched an OTP out-of-band.
	Login(ctx context.Context, email string, password []byte) error

	// VerifyOTP exchanges the one-time passcode for a session token.
	VerifyOTP(ctx context.Context, email, otp string) (string, error)

	// Register creates a new account from a multipart profile submission.
	Register(ctx context.Context, form *models.SignupForm) error

	// FetchProfile loads the profile of the token's account.
	FetchProfile(ctx context.Context, token string) (*models.UserProfile, error)

	// DeleteProfile permanently removes the token's account.
	DeleteProfile(ctx context.Context, token string) error

	Close() error
}

// HTTPClient talks JSON (and multipart, for signup) to the account service.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the service at baseURL. The timeout
// bounds every request end to end; there is no retry logic, callers decide
// whether an operation is retryable.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) url(path string) string {
	return c.baseURL + path
}

// do performs a single HTTP request. Every request carries a fresh
// X-Request-Id so server logs can correlate client attempts. Transport-level
// failures (connection refused, timeout) are wrapped in ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-Id", uuid.NewString())
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return resp, nil
}

// Close releases idle connections held by the underlying transport.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

package api

import (
	"context"
	"net/http"

	"github.com/nxtlabs/nxtcli/internal/client/models"
)

// profileResponse wraps the profile payload; the service nests the record
// under a "user" key.
type profileResponse struct {
	User models.UserProfile `json:"user"`
}

// FetchProfile loads the account profile for the given session token.
// The token travels in the "token" request header.
func (c *HTTPClient) FetchProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/profile", nil, map[string]string{
		"token": token,
	})
	if err != nil {
		return nil, err
	}

	var pr profileResponse
	if err := decodeJSON(resp, &pr); err != nil {
		return nil, err
	}

	return &pr.User, nil
}

// DeleteProfile permanently removes the token's account on the server.
// The local session token is the caller's responsibility.
func (c *HTTPClient) DeleteProfile(ctx context.Context, token string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/profile", nil, map[string]string{
		"token": token,
	})
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nxtlabs/nxtcli/internal/client/models"
)

// Login submits the email/password pair. On 2xx the server dispatches an
// OTP out-of-band and the caller moves to the OTP phase; the password is
// not needed (and must not be resent) after that.
func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) error {
	creds := models.Credentials{Email: email, Password: string(password)}

	body, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil)
}

// verifyOTPRequest is the body of the verify-otp call. The email travels in
// a request header, not the body; that is the service's contract.
type verifyOTPRequest struct {
	OTP string `json:"otp"`
}

type verifyOTPResponse struct {
	Token string `json:"token"`
}

// VerifyOTP exchanges the passcode for a session token.
func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	body, err := json.Marshal(verifyOTPRequest{OTP: otp})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
		"email":        email,
	})
	if err != nil {
		return "", err
	}

	var vr verifyOTPResponse
	if err := decodeJSON(resp, &vr); err != nil {
		return "", err
	}

	return vr.Token, nil
}

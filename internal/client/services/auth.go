// Package services contains the application flows of the nxtcli client:
// the login/OTP state machine (AuthFlow), the authenticated-session gate
// (SessionFlow), and account registration (SignupFlow). Flows orchestrate
// validation, the API client, and the session store; they own all phase
// transitions and decide which failure messages reach the user.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nxtlabs/nxtcli/internal/client/api"
	"github.com/nxtlabs/nxtcli/internal/client/session"
	"github.com/nxtlabs/nxtcli/internal/client/validation"
	"github.com/nxtlabs/nxtcli/internal/common"
	"github.com/nxtlabs/nxtcli/internal/logging"
)

// Phase is the login state machine position. A failed request is not a
// phase of its own: it returns the flow to the phase it failed from and
// leaves a displayable message behind.
type Phase int

const (
	// PhaseAnonymous: no credentials submitted yet.
	PhaseAnonymous Phase = iota
	// PhaseSubmitting: credential request in flight.
	PhaseSubmitting
	// PhaseOTPPending: credentials accepted, waiting for the passcode.
	PhaseOTPPending
	// PhaseVerifyingOTP: passcode request in flight.
	PhaseVerifyingOTP
	// PhaseAuthenticated: token issued and persisted.
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseAnonymous:
		return "anonymous"
	case PhaseSubmitting:
		return "submitting"
	case PhaseOTPPending:
		return "otp-pending"
	case PhaseVerifyingOTP:
		return "verifying-otp"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User-facing failure messages. The OTP one is deliberately generic: unlike
// login, server detail is never surfaced on a failed verification.
const (
	msgLoginFailed = "Login failed"
	msgInvalidOTP  = "Invalid OTP, please try again."
)

// AuthFlow drives two-phase login. One instance serves one login attempt
// sequence; it is not safe for concurrent use. There is intentionally no
// transition from PhaseOTPPending back to PhaseAnonymous: once credentials
// are accepted the email is locked to the pending challenge.
type AuthFlow struct {
	client api.Client
	store  session.Store
	log    logging.Logger

	phase   Phase
	email   string
	message string
	gen     uint64
}

func NewAuthFlow(client api.Client, store session.Store, log logging.Logger) *AuthFlow {
	return &AuthFlow{
		client: client,
		store:  store,
		log:    log.With("component", "authflow"),
		phase:  PhaseAnonymous,
	}
}

// Phase returns the current state machine position.
func (f *AuthFlow) Phase() Phase { return f.phase }

// Email returns the address locked to the pending OTP challenge, or ""
// outside the OTP phases.
func (f *AuthFlow) Email() string { return f.email }

// Message returns the displayable message left by the last failed request,
// or "" after a success.
func (f *AuthFlow) Message() string { return f.message }

// SubmitCredentials runs first-phase login. Validation failures are
// returned as a validation.ErrorMap without any network call and leave the
// flow in PhaseAnonymous. On transport success the flow moves to
// PhaseOTPPending, retains the email for the challenge, and wipes the
// password: it is no longer needed and must not be resent.
func (f *AuthFlow) SubmitCredentials(ctx context.Context, email string, password []byte) error {
	if f.phase != PhaseAnonymous {
		return common.ErrNotAllowed
	}

	if errs := validation.Login(email, string(password)); len(errs) > 0 {
		return errs
	}

	f.phase = PhaseSubmitting
	f.message = ""
	gen := f.gen

	err := f.client.Login(ctx, email, password)

	if f.gen != gen {
		// Reset raced the response; the instance no longer owns this state.
		return common.ErrSuperseded
	}

	if err != nil {
		f.phase = PhaseAnonymous
		f.message = loginFailureMessage(err)
		f.log.Warn(ctx, "credential submission failed", "error", err)
		return err
	}

	f.phase = PhaseOTPPending
	f.email = email
	common.WipeByteArray(password)
	f.log.Info(ctx, "credentials accepted, awaiting otp", "email", email)
	return nil
}

// loginFailureMessage surfaces the server's message verbatim when the
// response carried one, else falls back to a generic message.
func loginFailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return msgLoginFailed
}

// SubmitOTP runs the second phase. Only reachable after SubmitCredentials
// succeeded. On success the issued token is written to the session store
// and the flow becomes PhaseAuthenticated; on failure the flow returns to
// PhaseOTPPending so the user can retry.
func (f *AuthFlow) SubmitOTP(ctx context.Context, otp string) error {
	if f.phase != PhaseOTPPending {
		return common.ErrNotAllowed
	}

	if errs := validation.OTP(otp); len(errs) > 0 {
		return errs
	}

	f.phase = PhaseVerifyingOTP
	f.message = ""
	gen := f.gen

	token, err := f.client.VerifyOTP(ctx, f.email, otp)

	if f.gen != gen {
		return common.ErrSuperseded
	}

	if err != nil {
		f.phase = PhaseOTPPending
		f.message = msgInvalidOTP
		f.log.Warn(ctx, "otp verification failed", "error", err)
		return err
	}

	if err := f.store.Set(ctx, token); err != nil {
		f.phase = PhaseOTPPending
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	f.phase = PhaseAuthenticated
	f.email = ""
	f.log.Info(ctx, "authenticated, session token persisted")
	return nil
}

// Reset abandons the instance, discarding any transient state and any
// in-flight result. It models teardown of the owning component, not a
// user-visible "cancel" action; a UI must not expose it as a way back from
// a pending OTP challenge.
func (f *AuthFlow) Reset() {
	f.gen++
	f.phase = PhaseAnonymous
	f.email = ""
	f.message = ""
}

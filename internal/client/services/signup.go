package services

import (
	"context"
	"errors"

	"github.com/nxtlabs/nxtcli/internal/client/api"
	"github.com/nxtlabs/nxtcli/internal/client/models"
	"github.com/nxtlabs/nxtcli/internal/client/validation"
	"github.com/nxtlabs/nxtcli/internal/common"
	"github.com/nxtlabs/nxtcli/internal/logging"
)

// SignupPhase is the registration state machine position.
type SignupPhase int

const (
	// SignupFilling: collecting (or re-collecting, after a failure) input.
	SignupFilling SignupPhase = iota
	// SignupSubmitting: registration request in flight.
	SignupSubmitting
	// SignupSucceeded: account created. Terminal for this instance;
	// signing up again requires a fresh SignupFlow.
	SignupSucceeded
)

const msgSignupFailed = "Signup failed"

// SignupFlow registers a new account. Single-shot and fully independent of
// the session store: creating an account does not log anyone in.
type SignupFlow struct {
	client api.Client
	log    logging.Logger

	phase   SignupPhase
	message string
}

func NewSignupFlow(client api.Client, log logging.Logger) *SignupFlow {
	return &SignupFlow{
		client: client,
		log:    log.With("component", "signupflow"),
		phase:  SignupFilling,
	}
}

// Phase returns the current state machine position.
func (f *SignupFlow) Phase() SignupPhase { return f.phase }

// Message returns the displayable message left by the last failed
// submission, or "" otherwise.
func (f *SignupFlow) Message() string { return f.message }

// Submit validates the whole form and, when clean, sends it as one
// multipart request. A validation failure returns the ErrorMap with no
// network call. A transport failure returns the flow to SignupFilling with
// a server-verbatim (or generic) message; the caller's form values are
// never touched, so the user input survives for the next attempt.
func (f *SignupFlow) Submit(ctx context.Context, form *models.SignupForm) error {
	if f.phase != SignupFilling {
		return common.ErrNotAllowed
	}

	if errs := validation.Signup(form); len(errs) > 0 {
		return errs
	}

	f.phase = SignupSubmitting
	f.message = ""

	if err := f.client.Register(ctx, form); err != nil {
		f.phase = SignupFilling
		f.message = signupFailureMessage(err)
		f.log.Warn(ctx, "signup failed", "error", err)
		return err
	}

	f.phase = SignupSucceeded
	f.log.Info(ctx, "account created", "email", form.Email)
	return nil
}

func signupFailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return msgSignupFailed
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/nxtlabs/nxtcli/internal/client/services"
	"github.com/nxtlabs/nxtcli/internal/client/validation"
	"github.com/nxtlabs/nxtcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printFieldErrors renders a validation.ErrorMap one field per line, in
// stable order.
func (a *App) printFieldErrors(errs validation.ErrorMap) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", f, errs[f])
	}
}

// Login drives the two-phase login conversation: email and password first,
// then the one-time passcode the service sent out-of-band. The email stays
// locked to the pending challenge; there is no way back to the credential
// prompt short of leaving the command with EOF.
//
// On success the app switches to the authenticated view.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}

	flow := a.newAuthFlow()
	defer flow.Reset()

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.submitStep(ctx, flow, func() error {
		return flow.SubmitCredentials(ctx, email, password)
	}); err != nil || flow.Phase() != services.PhaseOTPPending {
		return err
	}

	for flow.Phase() == services.PhaseOTPPending {
		prompt := fmt.Sprintf("We've sent an OTP to %s\nEnter OTP", flow.Email())
		otp, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}

		if err := a.submitStep(ctx, flow, func() error {
			return flow.SubmitOTP(ctx, otp)
		}); err != nil {
			return err
		}
	}

	if flow.Phase() != services.PhaseAuthenticated {
		return nil
	}

	fmt.Fprintln(a.out, "OTP verified successfully, you are logged in.")
	if err := a.enterSession(ctx); err != nil {
		fmt.Fprintln(a.out, "Failed to load profile.")
		a.log.Warn(ctx, "profile load after login failed", "error", err)
	}
	return nil
}

// submitStep runs one state machine step and renders its outcome: field
// errors for validation failures, the flow's displayable message for
// request failures. Only input errors propagate; a failed request leaves
// the user free to retry.
func (a *App) submitStep(ctx context.Context, flow authFlow, step func() error) error {
	err := step()
	if err == nil {
		return nil
	}

	var verrs validation.ErrorMap
	switch {
	case errors.As(err, &verrs):
		a.printFieldErrors(verrs)
	case errors.Is(err, common.ErrSuperseded):
		return err
	default:
		if msg := flow.Message(); msg != "" {
			fmt.Fprintln(a.out, msg)
		}
		a.log.Warn(ctx, "login step failed", "error", err)
	}
	return nil
}

// Logout ends the session locally and returns to the anonymous prompt.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	if err := a.sess.Logout(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Logout failed:", err)
		return err
	}

	a.userEmail = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

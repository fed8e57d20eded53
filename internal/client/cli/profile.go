package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nxtlabs/nxtcli/internal/client/models"
	"github.com/nxtlabs/nxtcli/internal/common"
)

// enterSession loads the profile behind the persisted token and, on success,
// switches to the authenticated view. On any failure the view stays (or
// becomes) anonymous; the stored token is left for the session flow to manage.
func (a *App) enterSession(ctx context.Context) error {
	profile, err := a.sess.Enter(ctx)
	if err != nil {
		a.userEmail = ""
		return err
	}

	a.userEmail = profile.Email
	a.printProfile(profile)
	return nil
}

func (a *App) printProfile(p *models.UserProfile) {
	fmt.Fprintf(a.out, "Thank you for joining us, %s!\n", p.Name)
	fmt.Fprintln(a.out, "  Name:         ", p.Name)
	fmt.Fprintln(a.out, "  Email:        ", p.Email)
	fmt.Fprintln(a.out, "  Company:      ", p.CompanyName)
	fmt.Fprintln(a.out, "  Age:          ", p.Age)
	fmt.Fprintln(a.out, "  Date of birth:", p.DateOfBirth)
}

// Profile re-fetches and displays the account profile.
func (a *App) Profile(ctx context.Context) error {
	err := a.enterSession(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNoSession):
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	case errors.Is(err, common.ErrSessionInvalid):
		fmt.Fprintln(a.out, "Your session is no longer valid, please log in again.")
		return nil
	default:
		return err
	}
}

// DeleteAccount asks for confirmation, removes the account on the service
// and, once the service confirms, logs out locally after a short delay so
// the farewell message stays on screen.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Are you sure you want to delete your account? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	fmt.Fprintln(a.out, "Deleting account...")

	err = a.sess.DeleteAccount(ctx, func() {
		fmt.Fprintln(a.out, "Account deleted successfully. Logging out...")
	})
	if err != nil {
		fmt.Fprintln(a.out, "Failed to delete account. Please try again.")
		a.log.Warn(ctx, "account deletion failed", "error", err)
		return nil
	}

	a.userEmail = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

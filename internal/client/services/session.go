package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nxtlabs/nxtcli/internal/client/api"
	"github.com/nxtlabs/nxtcli/internal/client/models"
	"github.com/nxtlabs/nxtcli/internal/client/session"
	"github.com/nxtlabs/nxtcli/internal/common"
	"github.com/nxtlabs/nxtcli/internal/logging"
)

// SessionFlow gates the authenticated view. It reads the token store fresh
// on every entry, never caching the token in memory across entries.
type SessionFlow struct {
	client api.Client
	store  session.Store
	log    logging.Logger

	// logoutDelay is the pause between a confirmed account deletion and the
	// forced local logout, giving the user time to read the confirmation.
	logoutDelay time.Duration

	profile  *models.UserProfile
	deleting bool
}

func NewSessionFlow(client api.Client, store session.Store, log logging.Logger, logoutDelay time.Duration) *SessionFlow {
	return &SessionFlow{
		client:      client,
		store:       store,
		log:         log.With("component", "sessionflow"),
		logoutDelay: logoutDelay,
	}
}

// Enter validates session presence and loads the profile.
//
// Without a stored token it returns common.ErrNoSession and performs no
// network call. A failed profile fetch (network error, invalid or expired
// token, any non-2xx) returns common.ErrSessionInvalid wrapping the cause;
// the stored token is intentionally NOT cleared in that case — the next
// entry attempt gets to retry with it.
func (f *SessionFlow) Enter(ctx context.Context) (*models.UserProfile, error) {
	token, err := f.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session store: %w", err)
	}
	if token == "" {
		return nil, common.ErrNoSession
	}

	profile, err := f.client.FetchProfile(ctx, token)
	if err != nil {
		f.profile = nil
		f.log.Warn(ctx, "profile fetch failed, leaving session", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrSessionInvalid, err)
	}

	f.profile = profile
	f.log.Info(ctx, "session entered", "email", profile.Email)
	return profile, nil
}

// Profile returns the profile loaded by the last successful Enter.
func (f *SessionFlow) Profile() *models.UserProfile { return f.profile }

// Logout ends the session locally. No network call is made; the server is
// never told.
func (f *SessionFlow) Logout(ctx context.Context) error {
	if err := f.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	f.profile = nil
	f.log.Info(ctx, "logged out")
	return nil
}

// DeleteAccount removes the account on the server, then, after the
// configured delay, clears the local session. The deleted callback (may be
// nil) runs as soon as the server confirms, before the delay starts, so a
// UI can show its confirmation while the session is still intact. On
// failure the session token is retained and the operation can simply be
// retried. A second call while one is in flight is rejected.
func (f *SessionFlow) DeleteAccount(ctx context.Context, deleted func()) error {
	if f.deleting {
		return common.ErrNotAllowed
	}

	token, err := f.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session store: %w", err)
	}
	if token == "" {
		return common.ErrNoSession
	}

	f.deleting = true
	defer func() { f.deleting = false }()

	if err := f.client.DeleteProfile(ctx, token); err != nil {
		f.log.Warn(ctx, "account deletion failed", "error", err)
		return err
	}

	f.log.Info(ctx, "account deleted, logging out", "delay", f.logoutDelay)

	if deleted != nil {
		deleted()
	}

	select {
	case <-time.After(f.logoutDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := f.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	f.profile = nil
	return nil
}

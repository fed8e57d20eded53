package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nxtlabs/nxtcli/internal/client/api"
	"github.com/nxtlabs/nxtcli/internal/client/config"
	"github.com/nxtlabs/nxtcli/internal/client/models"
	"github.com/nxtlabs/nxtcli/internal/client/services"
	"github.com/nxtlabs/nxtcli/internal/client/session"
	"github.com/nxtlabs/nxtcli/internal/common"
	"github.com/nxtlabs/nxtcli/internal/logging"

	_ "modernc.org/sqlite"
)

// authFlow is the slice of services.AuthFlow the commands need.
// Tests provide lightweight stubs.
type authFlow interface {
	SubmitCredentials(ctx context.Context, email string, password []byte) error
	SubmitOTP(ctx context.Context, otp string) error
	Phase() services.Phase
	Email() string
	Message() string
	Reset()
}

// sessionFlow gates the authenticated commands.
type sessionFlow interface {
	Enter(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context, deleted func()) error
}

// signupFlow registers a new account.
type signupFlow interface {
	Submit(ctx context.Context, form *models.SignupForm) error
	Message() string
}

// App is the interactive terminal client. Login and signup flows are
// single-shot, so App holds factories and creates a fresh instance per
// command invocation; the session flow is long-lived.
type App struct {
	config *config.Config
	log    logging.Logger

	client api.Client
	store  *session.SQLiteStore

	sess          sessionFlow
	newAuthFlow   func() authFlow
	newSignupFlow func() signupFlow

	reader *bufio.Reader
	out    io.Writer

	// userEmail is non-empty while the authenticated view is active.
	userEmail string
}

// NewApp wires the client from configuration: local session store (with
// migrations), HTTP gateways, and flows.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, err := session.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session store: %w", err)
	}

	client := api.NewHTTPClient(cfg.ServiceBaseURL, cfg.RequestTimeout)

	return &App{
		config: cfg,
		log:    logger,
		client: client,
		store:  store,
		sess:   services.NewSessionFlow(client, store, logger, cfg.DeleteLogoutDelay),
		newAuthFlow: func() authFlow {
			return services.NewAuthFlow(client, store, logger)
		},
		newSignupFlow: func() signupFlow {
			return services.NewSignupFlow(client, logger)
		},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores a persisted session if one exists, then blocks in the REPL
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.client.Close()
		_ = a.store.Close()
	}()

	fmt.Fprintln(a.out, "Welcome to the NXT account client (type 'help' for commands)")
	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userEmail)
}

// restoreSession tries to resume the persisted session at startup. Absence
// of a token is the normal anonymous case and stays silent.
func (a *App) restoreSession(ctx context.Context) {
	err := a.enterSession(ctx)
	switch {
	case err == nil, errors.Is(err, common.ErrNoSession):
	case errors.Is(err, common.ErrSessionInvalid):
		fmt.Fprintln(a.out, "Your saved session is no longer valid, please log in again.")
	default:
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
}

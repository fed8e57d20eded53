package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nxtlabs/nxtcli/internal/client/models"
	"github.com/nxtlabs/nxtcli/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

// fakeClient implements api.Client for flow unit tests. It records the
// arguments of the last call and returns canned results. The optional hooks
// run inside the call, before the canned result is returned.
type fakeClient struct {
	LoginErr  error
	LoginHook func()

	VerifyOTPRet string
	VerifyOTPErr error

	RegisterErr error

	FetchProfileRet *models.UserProfile
	FetchProfileErr error

	DeleteProfileErr  error
	DeleteProfileHook func()

	LoginCalls   int
	VerifyCalls  int
	RegisterCall int
	FetchCalls   int
	DeleteCalls  int

	LastLoginEmail    string
	LastLoginPassword []byte
	LastVerifyEmail   string
	LastVerifyOTP     string
	LastRegisterForm  *models.SignupForm
	LastFetchToken    string
	LastDeleteToken   string
}

func (f *fakeClient) Login(_ context.Context, email string, password []byte) error {
	f.LoginCalls++
	f.LastLoginEmail = email
	f.LastLoginPassword = append([]byte(nil), password...)
	if f.LoginHook != nil {
		f.LoginHook()
	}
	return f.LoginErr
}

func (f *fakeClient) VerifyOTP(_ context.Context, email, otp string) (string, error) {
	f.VerifyCalls++
	f.LastVerifyEmail, f.LastVerifyOTP = email, otp
	return f.VerifyOTPRet, f.VerifyOTPErr
}

func (f *fakeClient) Register(_ context.Context, form *models.SignupForm) error {
	f.RegisterCall++
	f.LastRegisterForm = form
	return f.RegisterErr
}

func (f *fakeClient) FetchProfile(_ context.Context, token string) (*models.UserProfile, error) {
	f.FetchCalls++
	f.LastFetchToken = token
	return f.FetchProfileRet, f.FetchProfileErr
}

func (f *fakeClient) DeleteProfile(_ context.Context, token string) error {
	f.DeleteCalls++
	f.LastDeleteToken = token
	if f.DeleteProfileHook != nil {
		f.DeleteProfileHook()
	}
	return f.DeleteProfileErr
}

func (f *fakeClient) Close() error { return nil }

// fakeStore is an in-memory session.Store. Guarded by a mutex so tests can
// observe it while a flow goroutine is still running.
type fakeStore struct {
	mu    sync.Mutex
	Token string

	GetErr   error
	SetErr   error
	ClearErr error

	SetCalls   int
	ClearCalls int
}

func (s *fakeStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Token, s.GetErr
}

func (s *fakeStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Token = token
	return nil
}

func (s *fakeStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ClearCalls++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Token = ""
	return nil
}

func (s *fakeStore) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Token
}

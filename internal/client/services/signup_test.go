package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxtlabs/nxtcli/internal/client/api"
	"github.com/nxtlabs/nxtcli/internal/client/models"
	"github.com/nxtlabs/nxtcli/internal/client/validation"
	"github.com/nxtlabs/nxtcli/internal/common"
)

func newSignupForm() *models.SignupForm {
	return &models.SignupForm{
		Name:            "Alice",
		Email:           "alice@example.org",
		Password:        "pw1",
		ConfirmPassword: "pw1",
		CompanyName:     "ACME",
		DateOfBirth:     "1990-04-01",
		Photo:           []byte{0xFF, 0xD8},
		PhotoName:       "me.jpg",
	}
}

func TestSubmit_ValidationFailureSkipsTransport(t *testing.T) {
	client := &fakeClient{}
	f := NewSignupFlow(client, discardLogger())

	form := newSignupForm()
	form.Password = "a"
	form.ConfirmPassword = "b"

	err := f.Submit(context.Background(), form)

	var verrs validation.ErrorMap
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Passwords do not match", verrs["confirmPassword"])
	assert.Zero(t, client.RegisterCall)
	assert.Equal(t, SignupFilling, f.Phase())
}

func TestSubmit_Success(t *testing.T) {
	client := &fakeClient{}
	f := NewSignupFlow(client, discardLogger())

	form := newSignupForm()
	require.NoError(t, f.Submit(context.Background(), form))

	assert.Equal(t, SignupSucceeded, f.Phase())
	assert.Same(t, form, client.LastRegisterForm)
	assert.Empty(t, f.Message())
}

func TestSubmit_SuccessIsTerminal(t *testing.T) {
	client := &fakeClient{}
	f := NewSignupFlow(client, discardLogger())
	ctx := context.Background()

	require.NoError(t, f.Submit(ctx, newSignupForm()))

	err := f.Submit(ctx, newSignupForm())
	require.ErrorIs(t, err, common.ErrNotAllowed)
	assert.Equal(t, 1, client.RegisterCall)
}

func TestSubmit_ServerMessageSurfacedVerbatim(t *testing.T) {
	client := &fakeClient{RegisterErr: &api.Error{Status: 409, Message: "email already registered"}}
	f := NewSignupFlow(client, discardLogger())

	form := newSignupForm()
	require.Error(t, f.Submit(context.Background(), form))

	assert.Equal(t, SignupFilling, f.Phase())
	assert.Equal(t, "email already registered", f.Message())
	// user input is preserved for the next attempt
	assert.Equal(t, "Alice", form.Name)
	assert.Equal(t, []byte{0xFF, 0xD8}, form.Photo)
}

func TestSubmit_GenericMessageAndRetry(t *testing.T) {
	client := &fakeClient{RegisterErr: errors.New("connection reset")}
	f := NewSignupFlow(client, discardLogger())
	ctx := context.Background()

	form := newSignupForm()
	require.Error(t, f.Submit(ctx, form))
	assert.Equal(t, "Signup failed", f.Message())

	client.RegisterErr = nil
	require.NoError(t, f.Submit(ctx, form))
	assert.Equal(t, SignupSucceeded, f.Phase())
	assert.Empty(t, f.Message())
}

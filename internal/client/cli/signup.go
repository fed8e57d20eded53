package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nxtlabs/nxtcli/internal/client/models"
	"github.com/nxtlabs/nxtcli/internal/client/validation"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Signup collects the registration form field by field, attaches the profile
// photo from disk, and submits it. Validation failures are shown per field;
// a rejected submission prints the service's reason and leaves the user free
// to run the command again.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}

	form, err := a.collectSignupForm()
	if err != nil {
		return err
	}

	flow := a.newSignupFlow()
	if err := flow.Submit(ctx, form); err != nil {
		var verrs validation.ErrorMap
		if errors.As(err, &verrs) {
			a.printFieldErrors(verrs)
			return nil
		}
		fmt.Fprintln(a.out, flow.Message())
		a.log.Warn(ctx, "signup failed", "error", err)
		return nil
	}

	fmt.Fprintln(a.out, "Signup successful! Please log in.")
	return nil
}

// collectSignupForm prompts for every field. An unreadable photo file is
// reported but leaves the photo empty, so the submission fails the same
// "Profile image is required" check as a skipped photo.
func (a *App) collectSignupForm() (*models.SignupForm, error) {
	form := &models.SignupForm{}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter name", &form.Name},
		{"Enter email", &form.Email},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return nil, err
		}
		*p.dst = v
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return nil, err
	}
	form.Password = string(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return nil, err
	}
	form.ConfirmPassword = string(confirm)

	rest := []struct {
		label string
		dst   *string
	}{
		{"Enter company name", &form.CompanyName},
		{"Enter date of birth (YYYY-MM-DD)", &form.DateOfBirth},
	}
	for _, p := range rest {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return nil, err
		}
		*p.dst = v
	}

	path, err := getSimpleText(a.reader, "Enter path to profile photo", a.out)
	if err != nil {
		return nil, err
	}
	if path != "" {
		photo, err := readFile(path)
		if err != nil {
			fmt.Fprintln(a.out, "Could not read photo file:", err)
		} else {
			form.Photo = photo
			form.PhotoName = filepath.Base(path)
		}
	}

	return form, nil
}

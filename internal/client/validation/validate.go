// Package validation contains the pure field validators used before any
// network call. Validators are stateless and recompute the full error map
// on every pass; nothing is merged incrementally.
package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nxtlabs/nxtcli/internal/client/models"
)

// emailRe matches the local@domain.tld shape. Deliberately permissive,
// the server does its own checking.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrorMap maps a field name to a user-facing error message.
// It implements error so flows can return it directly.
type ErrorMap map[string]string

func (m ErrorMap) Error() string {
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Login checks the first-phase credentials: email required and well-formed,
// password required. The OTP field is not consulted here.
func Login(email, password string) ErrorMap {
	errs := ErrorMap{}

	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}

	if password == "" {
		errs["password"] = "Password is required"
	}

	return errs
}

// OTP checks the second-phase input. The password is not consulted here;
// exactly one of password/OTP is validated depending on the current phase.
func OTP(otp string) ErrorMap {
	errs := ErrorMap{}
	if otp == "" {
		errs["otp"] = "OTP is required"
	}
	return errs
}

// Signup checks the whole registration form. Every field is required,
// including the photo; there is no default or placeholder image.
func Signup(form *models.SignupForm) ErrorMap {
	errs := ErrorMap{}

	if form.Name == "" {
		errs["name"] = "Name is required"
	}

	if form.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(form.Email) {
		errs["email"] = "Invalid email format"
	}

	if form.Password == "" {
		errs["password"] = "Password is required"
	}
	if form.ConfirmPassword == "" {
		errs["confirmPassword"] = "Confirm password is required"
	}
	if form.Password != "" && form.ConfirmPassword != "" && form.Password != form.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if form.CompanyName == "" {
		errs["companyName"] = "Company name is required"
	}
	if form.DateOfBirth == "" {
		errs["dateOfBirth"] = "Date of Birth is required"
	}
	if len(form.Photo) == 0 {
		errs["photo"] = "Profile image is required"
	}

	return errs
}

package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/nxtlabs/nxtcli/internal/client/models"
)

// Register submits the signup form as a single multipart request: all text
// fields plus the photo as a file part named "photo".
func (c *HTTPClient) Register(ctx context.Context, form *models.SignupForm) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":            form.Name,
		"email":           form.Email,
		"password":        form.Password,
		"confirmPassword": form.ConfirmPassword,
		"companyName":     form.CompanyName,
		"dateOfBirth":     form.DateOfBirth,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("photo", form.PhotoName)
	if err != nil {
		return fmt.Errorf("failed to create photo part: %w", err)
	}
	if _, err := part.Write(form.Photo); err != nil {
		return fmt.Errorf("failed to write photo part: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/signup", &buf, map[string]string{
		"Content-Type": w.FormDataContentType(),
	})
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil)
}

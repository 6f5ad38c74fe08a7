package user

import (
	"strings"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

const (
	maxNameLen     = 100
	minPasswordLen = 8
	maxPasswordLen = 72
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Name string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > maxNameLen {
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

// ChangePasswordInput holds parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "required"})
	}

	switch {
	case i.NewPassword == "":
		errs = append(errs, domain.FieldError{Field: "newPassword", Message: "required"})
	case len(i.NewPassword) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must be at least 8 characters"})
	case len(i.NewPassword) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must be at most 72 bytes"})
	case i.NewPassword == i.CurrentPassword:
		errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must differ from the current password"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

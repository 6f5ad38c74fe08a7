package document

import (
	"io"
	"path"
	"strings"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

const (
	maxFilenameLen = 255
	maxSubjectLen  = 255
	maxHoursPerDay = 24

	defaultListLimit = 50
	maxListLimit     = 200
)

// UploadInput holds parameters for a document upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Subject     string
	HoursPerDay float64
	Body        io.Reader
}

// Validate checks the upload metadata against the size limit. The body is
// sniffed separately during Upload.
func (i UploadInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Filename)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	case len(name) > maxFilenameLen:
		errs = append(errs, domain.FieldError{Field: "file", Message: "filename too long"})
	case !strings.EqualFold(path.Ext(name), ".pdf"):
		errs = append(errs, domain.FieldError{Field: "file", Message: "only PDF files are allowed"})
	}

	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "empty file"})
	} else if maxBytes > 0 && i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file too large"})
	}

	subject := strings.TrimSpace(i.Subject)
	if subject == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	} else if len(subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "too long"})
	}

	if i.HoursPerDay <= 0 || i.HoursPerDay > maxHoursPerDay {
		errs = append(errs, domain.FieldError{Field: "hoursPerDay", Message: "must be greater than 0 and at most 24"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination for document listings.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return defaultListLimit
	}
	return i.Limit
}

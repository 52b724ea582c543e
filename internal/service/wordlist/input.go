package wordlist

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

const (
	maxListNameLen    = 100
	maxWordTextLen    = 200
	maxTranslationLen = 200
	maxNotesLen       = 1000
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > maxListNameLen {
		return domain.NewValidationError("name", "max 100 characters")
	}
	return nil
}

// AddWordInput holds the parameters for adding a word to a list.
type AddWordInput struct {
	ListID      uuid.UUID
	Text        string
	Translation string
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(text) > maxWordTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 200 characters"})
	}

	translation := strings.TrimSpace(i.Translation)
	if translation == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	} else if utf8.RuneCountInString(translation) > maxTranslationLen {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "max 200 characters"})
	}

	if i.Notes != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Notes)) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package practice

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// StartSessionInput selects the word source and direction of a new session.
// Exactly one of ListID and AllLists must be set.
type StartSessionInput struct {
	ListID    *uuid.UUID
	AllLists  bool
	Direction domain.Direction
}

func (i StartSessionInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.ListID == nil && !i.AllLists:
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required unless all_lists is set"})
	case i.ListID != nil && i.AllLists:
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "must be empty when all_lists is set"})
	case i.ListID != nil && *i.ListID == uuid.Nil:
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AnswerInput answers the current word of a session.
type AnswerInput struct {
	SessionID  uuid.UUID
	Difficulty domain.Difficulty
}

func (i AnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangeDirectionInput restarts a session in another direction.
type ChangeDirectionInput struct {
	SessionID uuid.UUID
	Direction domain.Direction
}

func (i ChangeDirectionInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

package practice

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// ErrPersistFailed marks an answer whose new review state was applied to the
// session but could not be stored. The session stays usable.
var ErrPersistFailed = errors.New("persist review state failed")

// PersistError reports a failed write of a review state.
type PersistError struct {
	WordID    uuid.UUID
	Direction domain.Direction
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist review state of word %s (%s): %v", e.WordID, e.Direction, e.Err)
}

func (e *PersistError) Unwrap() []error {
	return []error{ErrPersistFailed, e.Err}
}

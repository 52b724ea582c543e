package practice

import (
	"time"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// SelectDue returns a shuffled copy of the items due in the given direction.
// The input slice and the review states it references are left untouched.
// A nil shuffle keeps the input order.
func SelectDue(items []domain.PracticeItem, dir domain.Direction, now time.Time, shuffle Shuffler) []domain.PracticeItem {
	due := make([]domain.PracticeItem, 0, len(items))
	for _, item := range items {
		if item.Word.IsDue(dir, now) {
			due = append(due, item.Clone())
		}
	}

	if shuffle != nil {
		shuffle(due)
	}
	return due
}

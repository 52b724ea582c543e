package practice

import (
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Shuffler reorders items in place.
type Shuffler func(items []domain.PracticeItem)

// RandomShuffle is a uniform Fisher-Yates shuffle.
func RandomShuffle(items []domain.PracticeItem) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

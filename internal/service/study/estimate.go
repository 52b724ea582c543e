package study

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// estimateEpoch is the reference time for previews; only the returned
// duration is used, so its value is irrelevant.
var estimateEpoch = time.Unix(0, 0).UTC()

// Estimate is the previewed outcome of one difficulty choice.
type Estimate struct {
	Difficulty domain.Difficulty
	Interval   time.Duration
	Label      string
}

// EstimateReviewTime returns how far ahead the word would be rescheduled if
// answered with the given difficulty. The state is not modified.
func EstimateReviewTime(cfg domain.SRSConfig, state domain.ReviewState, difficulty domain.Difficulty) (time.Duration, error) {
	out, err := Schedule(cfg, state.Clone(), difficulty, estimateEpoch)
	if err != nil {
		return 0, err
	}
	return out.Interval, nil
}

// PreviewAll estimates every difficulty choice, ordered from HARD to PERFECT.
func PreviewAll(cfg domain.SRSConfig, state domain.ReviewState) ([]Estimate, error) {
	estimates := make([]Estimate, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		interval, err := EstimateReviewTime(cfg, state, d)
		if err != nil {
			return nil, fmt.Errorf("estimate %s: %w", d, err)
		}
		estimates = append(estimates, Estimate{
			Difficulty: d,
			Interval:   interval,
			Label:      FormatInterval(interval),
		})
	}
	return estimates, nil
}

// FormatInterval renders a duration in a coarse human unit:
// "< 1 min", "N min", "N h", or "N d" (one decimal below ten days).
func FormatInterval(d time.Duration) string {
	if d < time.Minute {
		return "< 1 min"
	}
	if m := d.Round(time.Minute); m < time.Hour {
		return fmt.Sprintf("%d min", int(m.Minutes()))
	}
	if h := d.Round(time.Hour); h < 24*time.Hour {
		return fmt.Sprintf("%d h", int(h.Hours()))
	}

	days := d.Hours() / 24
	if days < 10 {
		return strconv.FormatFloat(math.Round(days*10)/10, 'f', -1, 64) + " d"
	}
	return fmt.Sprintf("%d d", int(math.Round(days)))
}

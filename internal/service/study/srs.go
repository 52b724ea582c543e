package study

import (
	"math"
	"time"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// qualityFactors scales the interval growth of mature words by quality tier
// (quality 3, 4, 5).
var qualityFactors = [3]float64{0.5, 1.0, 1.5}

// SRSInput holds all data needed for SRS calculation. Pure value — no side effects.
type SRSInput struct {
	State   domain.ReviewState
	Quality int
	Now     time.Time
	Config  domain.SRSConfig
}

// SRSOutput is the result of SRS calculation.
type SRSOutput struct {
	State    domain.ReviewState
	Interval time.Duration
}

// CalculateSRS is a pure function. No DB, no context, no logger.
// The ease factor is updated from its pre-answer value on every branch, so
// repeated failures erode it down to domain.MinEaseFactor.
func CalculateSRS(input SRSInput) (SRSOutput, error) {
	if input.Quality < domain.MinQuality || input.Quality > domain.MaxQuality {
		return SRSOutput{}, domain.NewValidationError("quality", "must be between 0 and 5")
	}

	prev, err := input.State.Normalize()
	if err != nil {
		return SRSOutput{}, err
	}

	next := domain.ReviewState{
		EaseFactor: nextEaseFactor(prev.EaseFactor, input.Quality),
	}

	var delay time.Duration
	if input.Quality < domain.PassingQuality {
		next.Repetitions = 0
		next.Interval = 0
		delay = input.Config.FailedRetryDelay
	} else {
		next.Repetitions = prev.Repetitions + 1
		tier := input.Quality - domain.PassingQuality

		switch next.Repetitions {
		case 1:
			next.Interval = input.Config.FirstStepIntervals[tier]
		case 2:
			next.Interval = input.Config.SecondStepIntervals[tier]
		default:
			next.Interval = prev.Interval * prev.EaseFactor * qualityFactors[tier]
		}
		delay = DaysToDuration(next.Interval)
	}

	reviewedAt := input.Now
	nextReview := input.Now.Add(delay)
	next.LastReview = &reviewedAt
	next.NextReview = &nextReview

	return SRSOutput{State: next, Interval: delay}, nil
}

// Schedule answers a word with a learner-facing difficulty. It is the single
// entry point shared by practice sessions and review-time previews.
// HARD always reschedules exactly cfg.FailedRetryDelay ahead.
func Schedule(cfg domain.SRSConfig, state domain.ReviewState, difficulty domain.Difficulty, now time.Time) (SRSOutput, error) {
	if !difficulty.IsValid() {
		return SRSOutput{}, domain.NewValidationError("difficulty", "must be HARD, OK, GOOD, or PERFECT")
	}

	out, err := CalculateSRS(SRSInput{
		State:   state,
		Quality: difficulty.Quality(),
		Now:     now,
		Config:  cfg,
	})
	if err != nil {
		return SRSOutput{}, err
	}

	if difficulty == domain.DifficultyHard {
		out.Interval = cfg.FailedRetryDelay
		nextReview := now.Add(out.Interval)
		out.State.NextReview = &nextReview
	}

	return out, nil
}

// DaysToDuration converts a fractional day count into a duration.
func DaysToDuration(days float64) time.Duration {
	if days <= 0 {
		return 0
	}
	return time.Duration(math.Round(days * float64(24*time.Hour)))
}

func nextEaseFactor(ease float64, quality int) float64 {
	q := float64(domain.MaxQuality - quality)
	return math.Max(domain.MinEaseFactor, ease+(0.1-q*(0.08+q*0.02)))
}

package rest

import (
	"time"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/service/practice"
	"github.com/heartmarshall/myenglish-practice/internal/service/study"
)

type listResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"wordCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type reviewStateResponse struct {
	EaseFactor  float64    `json:"easeFactor"`
	Interval    float64    `json:"intervalDays"`
	Repetitions int        `json:"repetitions"`
	NextReview  *time.Time `json:"nextReview"`
	LastReview  *time.Time `json:"lastReview,omitempty"`
}

type wordResponse struct {
	ID          string                                   `json:"id"`
	ListID      string                                   `json:"listId"`
	Text        string                                   `json:"text"`
	Translation string                                   `json:"translation"`
	Notes       *string                                  `json:"notes,omitempty"`
	States      map[domain.Direction]reviewStateResponse `json:"states,omitempty"`
	CreatedAt   time.Time                                `json:"createdAt"`
}

type progressResponse struct {
	Status    domain.SessionStatus `json:"status"`
	Direction domain.Direction     `json:"direction"`
	Total     int                  `json:"total"`
	Position  int                  `json:"position"`
	Answered  int                  `json:"answered"`
	Remaining int                  `json:"remaining"`
}

type practiceItemResponse struct {
	WordID string               `json:"wordId"`
	ListID string               `json:"listId"`
	Prompt string               `json:"prompt"`
	Answer string               `json:"answer"`
	Notes  *string              `json:"notes,omitempty"`
	State  *reviewStateResponse `json:"state,omitempty"`
}

type sessionResponse struct {
	ID       string                `json:"id"`
	Progress progressResponse      `json:"progress"`
	Current  *practiceItemResponse `json:"current"`
}

type answerResponse struct {
	Result  answerResultResponse `json:"result"`
	Session sessionResponse      `json:"session"`
	Warning string               `json:"warning,omitempty"`
}

type answerResultResponse struct {
	WordID     string              `json:"wordId"`
	Direction  domain.Direction    `json:"direction"`
	Difficulty domain.Difficulty   `json:"difficulty"`
	State      reviewStateResponse `json:"state"`
	Interval   string              `json:"interval"`
	Label      string              `json:"label"`
}

type estimateResponse struct {
	Difficulty domain.Difficulty `json:"difficulty"`
	Seconds    int64             `json:"seconds"`
	Label      string            `json:"label"`
}

func toListResponse(l domain.List) listResponse {
	return listResponse{ID: l.ID.String(), Name: l.Name, WordCount: l.WordCount, CreatedAt: l.CreatedAt}
}

func toReviewStateResponse(s domain.ReviewState) reviewStateResponse {
	return reviewStateResponse{
		EaseFactor:  s.EaseFactor,
		Interval:    s.Interval,
		Repetitions: s.Repetitions,
		NextReview:  s.NextReview,
		LastReview:  s.LastReview,
	}
}

func toWordResponse(w domain.Word) wordResponse {
	resp := wordResponse{
		ID:          w.ID.String(),
		ListID:      w.ListID.String(),
		Text:        w.Text,
		Translation: w.Translation,
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt,
	}
	if len(w.States) > 0 {
		resp.States = make(map[domain.Direction]reviewStateResponse, len(w.States))
		for dir, s := range w.States {
			resp.States[dir] = toReviewStateResponse(s)
		}
	}
	return resp
}

// toPracticeItemResponse orients the word for the session direction:
// the prompt is what the learner sees, the answer is what they recall.
func toPracticeItemResponse(item domain.PracticeItem, dir domain.Direction) *practiceItemResponse {
	w := item.Word
	resp := &practiceItemResponse{
		WordID: w.ID.String(),
		ListID: item.SourceListID.String(),
		Prompt: w.Text,
		Answer: w.Translation,
		Notes:  w.Notes,
	}
	if dir == domain.DirectionTargetToSource {
		resp.Prompt, resp.Answer = w.Translation, w.Text
	}
	if s, ok := w.States[dir]; ok {
		st := toReviewStateResponse(s)
		resp.State = &st
	}
	return resp
}

func toSessionResponse(v practice.SessionView) sessionResponse {
	p := v.Progress
	resp := sessionResponse{
		ID: v.ID.String(),
		Progress: progressResponse{
			Status:    p.Status,
			Direction: p.Direction,
			Total:     p.Total,
			Position:  p.Position,
			Answered:  p.Answered,
			Remaining: p.Remaining,
		},
	}
	if v.Current != nil {
		resp.Current = toPracticeItemResponse(*v.Current, p.Direction)
	}
	return resp
}

func toAnswerResultResponse(r practice.AnswerResult) answerResultResponse {
	return answerResultResponse{
		WordID:     r.WordID.String(),
		Direction:  r.Direction,
		Difficulty: r.Difficulty,
		State:      toReviewStateResponse(r.State),
		Interval:   r.Interval.String(),
		Label:      r.Label,
	}
}

func toEstimateResponses(estimates []study.Estimate) []estimateResponse {
	resp := make([]estimateResponse, len(estimates))
	for i, e := range estimates {
		resp[i] = estimateResponse{
			Difficulty: e.Difficulty,
			Seconds:    int64(e.Interval / time.Second),
			Label:      e.Label,
		}
	}
	return resp
}

package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/service/practice"
	"github.com/heartmarshall/myenglish-practice/internal/service/study"
	"github.com/heartmarshall/myenglish-practice/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-practice/pkg/ctxutil"
)

// persistWarning is shown to the learner when an answer was scored but its
// new review state could not be saved.
const persistWarning = "progress could not be saved"

// practiceService defines the minimal interface needed by PracticeHandler.
type practiceService interface {
	StartSession(ctx context.Context, input practice.StartSessionInput) (practice.SessionView, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	Answer(ctx context.Context, input practice.AnswerInput) (practice.AnswerResult, practice.SessionView, error)
	Advance(ctx context.Context, sessionID uuid.UUID, skip bool) (practice.SessionView, error)
	RemoveWord(ctx context.Context, sessionID, wordID uuid.UUID) (practice.SessionView, error)
	Restart(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	ChangeDirection(ctx context.Context, input practice.ChangeDirectionInput) (practice.SessionView, error)
	Preview(ctx context.Context, sessionID uuid.UUID) ([]study.Estimate, error)
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
}

// PracticeHandler serves practice session REST endpoints.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{svc: svc, log: logger.With("handler", "practice")}
}

type startSessionRequest struct {
	ListID    *uuid.UUID       `json:"listId"`
	All       bool             `json:"all"`
	Direction domain.Direction `json:"direction"`
}

type answerRequest struct {
	Difficulty domain.Difficulty `json:"difficulty"`
}

type advanceRequest struct {
	Skip bool `json:"skip"`
}

type directionRequest struct {
	Direction domain.Direction `json:"direction"`
}

// StartSession handles POST /practice/sessions.
func (h *PracticeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Direction == "" {
		req.Direction = domain.DirectionSourceToTarget
	}

	view, err := h.svc.StartSession(r.Context(), practice.StartSessionInput{
		ListID:    req.ListID,
		AllLists:  req.All,
		Direction: req.Direction,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// GetSession handles GET /practice/sessions/{id}.
func (h *PracticeHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(ctx context.Context, id uuid.UUID) (practice.SessionView, error) {
		return h.svc.GetSession(ctx, id)
	})
}

// Answer handles POST /practice/sessions/{id}/answer.
// A failed save still returns 200 with the scored result and a warning.
func (h *PracticeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	r, sessionID, err := sessionPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, view, err := h.svc.Answer(r.Context(), practice.AnswerInput{
		SessionID:  sessionID,
		Difficulty: req.Difficulty,
	})

	var resp answerResponse
	switch {
	case err == nil:
	case errors.Is(err, practice.ErrPersistFailed):
		h.log.WarnContext(r.Context(), "review state not saved",
			slog.String("session_id", sessionID.String()),
			slog.String("error", err.Error()),
		)
		resp.Warning = persistWarning
	default:
		handleError(h.log, w, r, err)
		return
	}

	resp.Result = toAnswerResultResponse(result)
	resp.Session = toSessionResponse(view)
	writeJSON(w, http.StatusOK, resp)
}

// Advance handles POST /practice/sessions/{id}/advance.
// An empty body advances past an answered word.
func (h *PracticeHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.withSession(w, r, func(ctx context.Context, id uuid.UUID) (practice.SessionView, error) {
		return h.svc.Advance(ctx, id, req.Skip)
	})
}

// RemoveWord handles DELETE /practice/sessions/{id}/words/{wordId}.
func (h *PracticeHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
	wordID, err := pathID(r, "wordId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.withSession(w, r, func(ctx context.Context, id uuid.UUID) (practice.SessionView, error) {
		return h.svc.RemoveWord(ctx, id, wordID)
	})
}

// Restart handles POST /practice/sessions/{id}/restart.
func (h *PracticeHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(ctx context.Context, id uuid.UUID) (practice.SessionView, error) {
		return h.svc.Restart(ctx, id)
	})
}

// ChangeDirection handles POST /practice/sessions/{id}/direction.
func (h *PracticeHandler) ChangeDirection(w http.ResponseWriter, r *http.Request) {
	var req directionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.withSession(w, r, func(ctx context.Context, id uuid.UUID) (practice.SessionView, error) {
		return h.svc.ChangeDirection(ctx, practice.ChangeDirectionInput{SessionID: id, Direction: req.Direction})
	})
}

// Preview handles GET /practice/sessions/{id}/preview.
func (h *PracticeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	r, sessionID, err := sessionPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	estimates, err := h.svc.Preview(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEstimateResponses(estimates))
}

// CloseSession handles DELETE /practice/sessions/{id}.
func (h *PracticeHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	r, sessionID, err := sessionPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.CloseSession(r.Context(), sessionID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PracticeHandler) withSession(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error),
) {
	r, sessionID, err := sessionPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := fn(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// sessionPath resolves the {id} wildcard and tags the request context and
// access log with the session.
func sessionPath(r *http.Request) (*http.Request, uuid.UUID, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return r, uuid.Nil, err
	}
	middleware.RecordSessionID(r.Context(), id)
	return r.WithContext(ctxutil.WithSessionID(r.Context(), id)), id, nil
}

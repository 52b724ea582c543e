package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/service/wordlist"
)

// listService defines the minimal interface needed by ListHandler.
type listService interface {
	CreateList(ctx context.Context, input wordlist.CreateListInput) (*domain.List, error)
	ListLists(ctx context.Context) ([]domain.List, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	AddWord(ctx context.Context, input wordlist.AddWordInput) (*domain.Word, error)
	ListWords(ctx context.Context, listID uuid.UUID) ([]domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
}

// ListHandler serves word list REST endpoints.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "lists")}
}

type createListRequest struct {
	Name string `json:"name"`
}

type addWordRequest struct {
	Text        string  `json:"text"`
	Translation string  `json:"translation"`
	Notes       *string `json:"notes"`
}

// CreateList handles POST /lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := h.svc.CreateList(r.Context(), wordlist.CreateListInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(*list))
}

// ListLists handles GET /lists.
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]listResponse, len(lists))
	for i, l := range lists {
		resp[i] = toListResponse(l)
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteList handles DELETE /lists/{id}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteList(r.Context(), listID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddWord handles POST /lists/{id}/words.
func (h *ListHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addWordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.svc.AddWord(r.Context(), wordlist.AddWordInput{
		ListID:      listID,
		Text:        req.Text,
		Translation: req.Translation,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// ListWords handles GET /lists/{id}/words.
func (h *ListHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words, err := h.svc.ListWords(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]wordResponse, len(words))
	for i, word := range words {
		resp[i] = toWordResponse(word)
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteWord handles DELETE /words/{id}.
func (h *ListHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	wordID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteWord(r.Context(), wordID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"net/http"

	"github.com/heartmarshall/myenglish-practice/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Lists    *ListHandler
	Practice *PracticeHandler
}

// NewRouter registers every route. Probes are public; everything else
// requires an authenticated user.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireUser(fn))
	}

	protected("POST /lists", h.Lists.CreateList)
	protected("GET /lists", h.Lists.ListLists)
	protected("DELETE /lists/{id}", h.Lists.DeleteList)
	protected("POST /lists/{id}/words", h.Lists.AddWord)
	protected("GET /lists/{id}/words", h.Lists.ListWords)
	protected("DELETE /words/{id}", h.Lists.DeleteWord)

	protected("POST /practice/sessions", h.Practice.StartSession)
	protected("GET /practice/sessions/{id}", h.Practice.GetSession)
	protected("DELETE /practice/sessions/{id}", h.Practice.CloseSession)
	protected("POST /practice/sessions/{id}/answer", h.Practice.Answer)
	protected("POST /practice/sessions/{id}/advance", h.Practice.Advance)
	protected("POST /practice/sessions/{id}/restart", h.Practice.Restart)
	protected("POST /practice/sessions/{id}/direction", h.Practice.ChangeDirection)
	protected("GET /practice/sessions/{id}/preview", h.Practice.Preview)
	protected("DELETE /practice/sessions/{id}/words/{wordId}", h.Practice.RemoveWord)

	return mux
}

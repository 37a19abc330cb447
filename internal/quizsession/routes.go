package quizsession

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/new", h.CreateQuiz)
	r.Get("/{sessionID}", h.GetSessionStatus)
	r.Post("/{sessionID}/answer", h.SubmitAnswer)
	r.Get("/{sessionID}/results", h.GetResults)
	return r
}

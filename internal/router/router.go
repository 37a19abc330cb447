package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Sanesh764/quiz-c/internal/middlewares"
	"github.com/Sanesh764/quiz-c/internal/quizsession"
)

type RouterConfig struct {
	QuizSessionHandler *quizsession.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/quiz", func(r chi.Router) {
		r.Mount("/", quizsession.Routes(cfg.QuizSessionHandler))
	})
	return r
}

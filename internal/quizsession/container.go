package quizsession

import (
	"os"
	"strconv"
	"time"

	"github.com/Sanesh764/quiz-c/internal/aiquiz"
)

type QuizSessionContainer struct {
	Handler *Handler
	Service Service
}

func NewQuizSessionContainer(questions aiquiz.Service) *QuizSessionContainer {
	count := 10
	if v := os.Getenv("QUIZ_QUESTION_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	ttl := 60 * time.Minute
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}

	store := NewMemoryStore(ttl)
	service := NewService(store, questions, count)
	handler := NewHandler(service)

	return &QuizSessionContainer{
		Handler: handler,
		Service: service,
	}
}

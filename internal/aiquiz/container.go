package aiquiz

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type AIQuizContainer struct {
	Service Service
}

func NewAIQuizContainer() *AIQuizContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Provedor Gemini indisponível; sessões usarão o pool estático")
		provider = nil
	}

	timeout := 20 * time.Second
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return &AIQuizContainer{
		Service: NewService(provider, timeout),
	}
}

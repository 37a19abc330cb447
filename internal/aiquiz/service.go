package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Sanesh764/quiz-c/internal/config"
)

type Service interface {
	// AcquireQuestions nunca falha: tenta o modelo e, em qualquer erro,
	// recorre ao pool estático. Pode devolver menos que count se o pool
	// for menor que o pedido.
	AcquireQuestions(ctx context.Context, d Difficulty, count int) []Question
}

type service struct {
	provider Provider
	timeout  time.Duration
}

func NewService(provider Provider, timeout time.Duration) Service {
	return &service{provider: provider, timeout: timeout}
}

func (s *service) AcquireQuestions(ctx context.Context, d Difficulty, count int) []Question {
	log := config.WithContext(ctx)

	questions, err := s.generate(ctx, d, count)
	if err != nil {
		log.WithError(err).Warnf("[AIQUIZ] Geração falhou para dificuldade %q, usando pool estático", d)
		return s.fallback(d, count)
	}

	log.Infof("[AIQUIZ] %d perguntas geradas pelo modelo para dificuldade %q", len(questions), d)
	return questions
}

func (s *service) generate(ctx context.Context, d Difficulty, count int) ([]Question, error) {
	if s.provider == nil {
		return nil, errors.New("provedor de modelo indisponível")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	questions, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(d, count, newNonce()))
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.New("o modelo não retornou perguntas")
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

func (s *service) fallback(d Difficulty, count int) []Question {
	questions := Pool(d)
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > count {
		questions = questions[:count]
	}

	// Marca de rodada para reduzir a sensação de repetição entre sessões.
	stamp := time.Now().Format("15:04:05")
	for i := range questions {
		questions[i].Text = fmt.Sprintf("%s (rodada de %s)", questions[i].Text, stamp)
	}
	return questions
}

func newNonce() string {
	return fmt.Sprintf("%d-%04d", time.Now().UnixNano(), rand.Intn(10000))
}

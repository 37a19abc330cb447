package quizsession

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sanesh764/quiz-c/internal/aiquiz"
	"github.com/Sanesh764/quiz-c/internal/config"
)

var ErrInvalidDifficulty = errors.New("dificuldade inválida")

type Service interface {
	CreateSession(ctx context.Context, difficulty string) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	RecordAnswer(ctx context.Context, id string, questionIndex, answer int) error
	ComputeResults(ctx context.Context, id string) (*ResultSummary, error)
}

type service struct {
	store         Store
	questions     aiquiz.Service
	questionCount int
}

func NewService(store Store, questions aiquiz.Service, questionCount int) Service {
	return &service{
		store:         store,
		questions:     questions,
		questionCount: questionCount,
	}
}

func (s *service) CreateSession(ctx context.Context, difficulty string) (*Session, error) {
	log := config.WithContext(ctx)

	if difficulty == "" {
		difficulty = string(aiquiz.DifficultyBasic)
	}
	d, err := aiquiz.ParseDifficulty(difficulty)
	if err != nil {
		log.Warnf("Dificuldade rejeitada na criação de sessão: %q", difficulty)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}

	questions := s.questions.AcquireQuestions(ctx, d, s.questionCount)
	session := s.store.Create(d, questions)

	log.Infof("Sessão %s criada com %d perguntas, dificuldade %q", session.ID, len(questions), d)
	return session, nil
}

func (s *service) GetSession(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(id)
}

func (s *service) RecordAnswer(ctx context.Context, id string, questionIndex, answer int) error {
	log := config.WithContext(ctx)

	session, err := s.store.Get(id)
	if err != nil {
		log.Warnf("Resposta para sessão desconhecida %s", id)
		return err
	}

	if err := session.RecordAnswer(questionIndex, answer); err != nil {
		log.WithError(err).Warnf("Resposta rejeitada na sessão %s (pergunta %d)", id, questionIndex)
		return err
	}
	return nil
}

func (s *service) ComputeResults(ctx context.Context, id string) (*ResultSummary, error) {
	log := config.WithContext(ctx)

	session, err := s.store.Get(id)
	if err != nil {
		log.Warnf("Resultados pedidos para sessão desconhecida %s", id)
		return nil, err
	}

	summary := session.Results()
	log.Infof("Sessão %s corrigida: %d/%d (score %d)", id, summary.Correct, summary.Total, summary.Score)
	return summary, nil
}

package quizsession

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/Sanesh764/quiz-c/internal/aiquiz"
)

// NoAnswer é o sentinela de "sem resposta": distinto de qualquer índice
// de alternativa válido e sempre contado como incorreto.
const NoAnswer = -1

var (
	ErrSessionNotFound    = errors.New("sessão não encontrada")
	ErrAlreadyCompleted   = errors.New("sessão já finalizada")
	ErrQuestionOutOfRange = errors.New("índice de pergunta fora do intervalo")
	ErrAnswerOutOfRange   = errors.New("índice de resposta fora do intervalo")
)

// Session é o estado de uma tentativa de quiz. ID, Difficulty, Questions
// e StartTime são imutáveis após a criação; answers e completed só mudam
// sob o mutex da própria sessão.
type Session struct {
	ID         string
	Difficulty aiquiz.Difficulty
	Questions  []aiquiz.Question
	StartTime  time.Time

	mu        sync.Mutex
	answers   map[int]int
	completed bool
}

func newSession(id string, d aiquiz.Difficulty, questions []aiquiz.Question) *Session {
	return &Session{
		ID:         id,
		Difficulty: d,
		Questions:  questions,
		StartTime:  time.Now(),
		answers:    make(map[int]int),
	}
}

// RecordAnswer grava (ou sobrescreve) a resposta de uma pergunta.
// Reenvio é permitido enquanto a sessão não estiver finalizada.
func (s *Session) RecordAnswer(questionIndex, answer int) error {
	if questionIndex < 0 || questionIndex >= len(s.Questions) {
		return ErrQuestionOutOfRange
	}
	if answer < 0 || answer > 3 {
		return ErrAnswerOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrAlreadyCompleted
	}
	s.answers[questionIndex] = answer
	return nil
}

// Progress devolve quantas perguntas já foram respondidas.
func (s *Session) Progress() (answered, total int, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers), len(s.Questions), s.completed
}

type ReviewEntry struct {
	Question      string `json:"question"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Answered      bool   `json:"answered"`
	Explanation   string `json:"explanation"`
}

type ResultSummary struct {
	Score      int               `json:"score"`
	Correct    int               `json:"correct"`
	Total      int               `json:"total"`
	Results    []ReviewEntry     `json:"results"`
	TimeSpent  int               `json:"timeSpent"`
	Difficulty aiquiz.Difficulty `json:"difficulty"`
}

// Results corrige a sessão e a marca como finalizada. A correção parte
// apenas de dados imutáveis mais o mapa de respostas congelado pela
// finalização, então chamadas repetidas produzem o mesmo resultado
// (exceto pelo tempo decorrido, medido a cada chamada).
func (s *Session) Results() *ResultSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.Questions)
	correct := 0
	entries := make([]ReviewEntry, 0, total)

	for i, q := range s.Questions {
		answer, answered := s.answers[i]
		if !answered {
			answer = NoAnswer
		}
		isCorrect := answered && answer == q.CorrectIndex
		if isCorrect {
			correct++
		}
		entries = append(entries, ReviewEntry{
			Question:      q.Text,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectIndex,
			IsCorrect:     isCorrect,
			Answered:      answered,
			Explanation:   q.Explanation,
		})
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	s.completed = true

	return &ResultSummary{
		Score:      score,
		Correct:    correct,
		Total:      total,
		Results:    entries,
		TimeSpent:  int(time.Since(s.StartTime).Seconds()),
		Difficulty: s.Difficulty,
	}
}

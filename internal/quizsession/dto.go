package quizsession

import "github.com/Sanesh764/quiz-c/internal/aiquiz"

type NewQuizRequest struct {
	Difficulty string `json:"difficulty"`
}

// QuestionDTO é a visão da pergunta entregue ao cliente antes da
// finalização: sem índice correto e sem explicação.
type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type NewQuizResponse struct {
	SessionID  string            `json:"sessionId"`
	Difficulty aiquiz.Difficulty `json:"difficulty"`
	Questions  []QuestionDTO     `json:"questions"`
}

type AnswerRequest struct {
	QuestionIndex int `json:"questionIndex"`
	Answer        int `json:"answer"`
}

type AnswerResponse struct {
	Success bool `json:"success"`
}

type SessionStatusResponse struct {
	ID              string            `json:"id"`
	Difficulty      aiquiz.Difficulty `json:"difficulty"`
	CurrentQuestion int               `json:"currentQuestion"`
	TotalQuestions  int               `json:"totalQuestions"`
	Completed       bool              `json:"completed"`
}

func toNewQuizResponse(session *Session) NewQuizResponse {
	questions := make([]QuestionDTO, 0, len(session.Questions))
	for _, q := range session.Questions {
		questions = append(questions, QuestionDTO{
			Question: q.Text,
			Options:  q.Options,
		})
	}
	return NewQuizResponse{
		SessionID:  session.ID,
		Difficulty: session.Difficulty,
		Questions:  questions,
	}
}

func toSessionStatusResponse(session *Session) SessionStatusResponse {
	answered, total, completed := session.Progress()
	return SessionStatusResponse{
		ID:              session.ID,
		Difficulty:      session.Difficulty,
		CurrentQuestion: answered,
		TotalQuestions:  total,
		Completed:       completed,
	}
}

package container

import (
	"github.com/Sanesh764/quiz-c/internal/aiquiz"
	"github.com/Sanesh764/quiz-c/internal/config"
	"github.com/Sanesh764/quiz-c/internal/quizsession"
)

type Container struct {
	AIQuizContainer      *aiquiz.AIQuizContainer
	QuizSessionContainer *quizsession.QuizSessionContainer
}

func New() *Container {
	config.Init()

	aiQuizContainer := aiquiz.NewAIQuizContainer()
	quizSessionContainer := quizsession.NewQuizSessionContainer(aiQuizContainer.Service)

	return &Container{
		AIQuizContainer:      aiQuizContainer,
		QuizSessionContainer: quizSessionContainer,
	}
}

package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Sanesh764/quiz-c/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Question, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" || strings.HasPrefix(key, "your-") {
		return nil, errors.New("GEMINI_API_KEY ausente ou placeholder")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Question, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		"gemini-2.0-flash",
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("falha ao gerar conteúdo do Gemini")
		return nil, fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Resposta bruta do Gemini:\n%s", raw)

	if raw == "" {
		return nil, errors.New("resposta vazia do modelo")
	}

	questions, err := DecodeQuestions(raw)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Resposta do modelo rejeitada na validação")
		return nil, err
	}

	log.Infof("[AIQUIZ] Geradas %d perguntas com sucesso", len(questions))
	return questions, nil
}

package aiquiz_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Sanesh764/quiz-c/internal/aiquiz"
)

type stubProvider struct {
	questions []aiquiz.Question
	err       error
}

func (p *stubProvider) SendPrompt(_ context.Context, _, _ string) ([]aiquiz.Question, error) {
	return p.questions, p.err
}

func stubQuestions(n int) []aiquiz.Question {
	questions := make([]aiquiz.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, aiquiz.Question{
			Text:         "pergunta gerada",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
		})
	}
	return questions
}

func TestAcquireQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("ProvedorFalhandoUsaPool", func(t *testing.T) {
		svc := aiquiz.NewService(&stubProvider{err: errors.New("provedor fora do ar")}, time.Second)

		questions := svc.AcquireQuestions(ctx, aiquiz.DifficultyModerate, 10)
		if len(questions) == 0 {
			t.Fatal("AcquireQuestions deveria devolver o pool quando o modelo falha.")
		}
		if len(questions) > 10 {
			t.Fatalf("AcquireQuestions devolveu mais que o pedido: %d", len(questions))
		}
		for i, q := range questions {
			if err := q.Validate(); err != nil {
				t.Errorf("Pergunta %d do fallback inválida: %v", i, err)
			}
			if !strings.Contains(q.Text, "rodada de") {
				t.Errorf("Pergunta %d do fallback sem a marca de rodada: %q", i, q.Text)
			}
		}
	})

	t.Run("ProvedorNuloUsaPool", func(t *testing.T) {
		svc := aiquiz.NewService(nil, time.Second)

		questions := svc.AcquireQuestions(ctx, aiquiz.DifficultyBasic, 5)
		if len(questions) != 5 {
			t.Fatalf("Quantidade incorreta do fallback. Esperado: 5, Recebido: %d", len(questions))
		}
	})

	t.Run("PedidoMaiorQueOPool", func(t *testing.T) {
		svc := aiquiz.NewService(nil, time.Second)

		poolSize := len(aiquiz.Pool(aiquiz.DifficultyHarder))
		questions := svc.AcquireQuestions(ctx, aiquiz.DifficultyHarder, poolSize+50)
		if len(questions) != poolSize {
			t.Fatalf("Pedido maior que o pool deveria devolver o pool inteiro. Esperado: %d, Recebido: %d", poolSize, len(questions))
		}
	})

	t.Run("SucessoDoModeloTruncaAoPedido", func(t *testing.T) {
		svc := aiquiz.NewService(&stubProvider{questions: stubQuestions(15)}, time.Second)

		questions := svc.AcquireQuestions(ctx, aiquiz.DifficultyBasic, 10)
		if len(questions) != 10 {
			t.Fatalf("Saída do modelo deveria ser truncada a 10. Recebido: %d", len(questions))
		}
		if questions[0].Text != "pergunta gerada" {
			t.Error("Com o modelo saudável, as perguntas deveriam vir dele, não do pool.")
		}
	})

	t.Run("ModeloSemPerguntasUsaPool", func(t *testing.T) {
		svc := aiquiz.NewService(&stubProvider{questions: nil}, time.Second)

		questions := svc.AcquireQuestions(ctx, aiquiz.DifficultyBasic, 10)
		if len(questions) == 0 {
			t.Fatal("Resposta vazia do modelo deveria cair no pool.")
		}
		if questions[0].Text == "pergunta gerada" {
			t.Error("Perguntas deveriam vir do pool, não do stub vazio.")
		}
	})
}

package quizsession_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Sanesh764/quiz-c/internal/quizsession"
)

func newTestService(t *testing.T, count int) quizsession.Service {
	t.Helper()
	store := quizsession.NewMemoryStore(time.Hour)
	return quizsession.NewService(store, &fixedAcquirer{}, count)
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("DificuldadePadrao", func(t *testing.T) {
		svc := newTestService(t, 10)

		session, err := svc.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("Dificuldade vazia deveria cair no padrão basic: %v", err)
		}
		if string(session.Difficulty) != "basic" {
			t.Errorf("Dificuldade padrão incorreta. Esperado: basic, Recebido: %s", session.Difficulty)
		}
		if len(session.Questions) != 10 {
			t.Errorf("Sessão deveria ter 10 perguntas. Recebido: %d", len(session.Questions))
		}
	})

	t.Run("DificuldadeInvalida", func(t *testing.T) {
		svc := newTestService(t, 10)

		_, err := svc.CreateSession(ctx, "impossible")
		if !errors.Is(err, quizsession.ErrInvalidDifficulty) {
			t.Errorf("Dificuldade desconhecida deveria ser rejeitada sem coerção. Recebido: %v", err)
		}
	})
}

func TestServiceRecordAndResults(t *testing.T) {
	ctx := context.Background()

	t.Run("SessaoDesconhecida", func(t *testing.T) {
		svc := newTestService(t, 10)

		if err := svc.RecordAnswer(ctx, "fantasma", 0, 0); !errors.Is(err, quizsession.ErrSessionNotFound) {
			t.Errorf("RecordAnswer de sessão desconhecida deveria falhar com ErrSessionNotFound. Recebido: %v", err)
		}
		if _, err := svc.ComputeResults(ctx, "fantasma"); !errors.Is(err, quizsession.ErrSessionNotFound) {
			t.Errorf("ComputeResults de sessão desconhecida deveria falhar com ErrSessionNotFound. Recebido: %v", err)
		}
	})

	t.Run("ArredondamentoDoisDeTres", func(t *testing.T) {
		svc := newTestService(t, 3)

		session, err := svc.CreateSession(ctx, "moderate")
		if err != nil {
			t.Fatalf("CreateSession falhou: %v", err)
		}

		svc.RecordAnswer(ctx, session.ID, 0, 0)
		svc.RecordAnswer(ctx, session.ID, 1, 0)
		svc.RecordAnswer(ctx, session.ID, 2, 2)

		summary, err := svc.ComputeResults(ctx, session.ID)
		if err != nil {
			t.Fatalf("ComputeResults falhou: %v", err)
		}
		if summary.Score != 67 {
			t.Errorf("2/3 deveria arredondar para 67. Recebido: %d", summary.Score)
		}
		if summary.Difficulty != session.Difficulty {
			t.Errorf("Dificuldade do resumo incorreta. Esperado: %s, Recebido: %s", session.Difficulty, summary.Difficulty)
		}
	})

	t.Run("RespostaAposFinalizacao", func(t *testing.T) {
		svc := newTestService(t, 3)

		session, _ := svc.CreateSession(ctx, "basic")
		if _, err := svc.ComputeResults(ctx, session.ID); err != nil {
			t.Fatalf("ComputeResults falhou: %v", err)
		}

		if err := svc.RecordAnswer(ctx, session.ID, 0, 0); !errors.Is(err, quizsession.ErrAlreadyCompleted) {
			t.Errorf("Resposta após finalização deveria falhar com ErrAlreadyCompleted. Recebido: %v", err)
		}
	})
}

func TestConcurrentSessionsIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 10)

	a, err := svc.CreateSession(ctx, "basic")
	if err != nil {
		t.Fatalf("CreateSession falhou: %v", err)
	}
	b, err := svc.CreateSession(ctx, "basic")
	if err != nil {
		t.Fatalf("CreateSession falhou: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			// sessão A responde tudo certo
			if err := svc.RecordAnswer(ctx, a.ID, i, 0); err != nil {
				t.Errorf("RecordAnswer na sessão A falhou: %v", err)
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			// sessão B responde tudo errado
			if err := svc.RecordAnswer(ctx, b.ID, i, 3); err != nil {
				t.Errorf("RecordAnswer na sessão B falhou: %v", err)
			}
		}(i)
	}
	wg.Wait()

	summaryA, _ := svc.ComputeResults(ctx, a.ID)
	summaryB, _ := svc.ComputeResults(ctx, b.ID)

	if summaryA.Correct != 10 {
		t.Errorf("Sessão A deveria ter 10 acertos. Recebido: %d", summaryA.Correct)
	}
	if summaryB.Correct != 0 {
		t.Errorf("Sessão B deveria ter 0 acertos. Recebido: %d", summaryB.Correct)
	}
}

package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const optionCount = 4

// Question é o registro validado que pode ser embutido em uma sessão.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("enunciado vazio")
	}
	if len(q.Options) != optionCount {
		return fmt.Errorf("esperadas %d alternativas, recebidas %d", optionCount, len(q.Options))
	}
	seen := make(map[string]struct{}, optionCount)
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return errors.New("alternativa vazia")
		}
		if _, ok := seen[opt]; ok {
			return fmt.Errorf("alternativa duplicada: %q", opt)
		}
		seen[opt] = struct{}{}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= optionCount {
		return fmt.Errorf("índice da resposta correta fora do intervalo: %d", q.CorrectIndex)
	}
	return nil
}

// DecodeQuestions extrai e valida o array de perguntas do texto bruto do
// modelo. O modelo costuma envolver o JSON em cercas de código ou em texto
// explicativo; aceitamos o trecho entre o primeiro '[' e o último ']'.
// Qualquer falha de parse ou de formato invalida a resposta inteira.
func DecodeQuestions(raw string) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	start := strings.Index(clean, "[")
	end := strings.LastIndex(clean, "]")
	if start == -1 || end <= start {
		return nil, errors.New("nenhum array JSON encontrado na resposta")
	}
	clean = clean[start : end+1]

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("falha ao decodificar JSON: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.New("o modelo retornou um array vazio")
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("pergunta %d inválida: %w", i, err)
		}
	}
	return questions, nil
}

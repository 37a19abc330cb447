package aiquiz

import "fmt"

const systemPrompt = `
Você é um gerador de perguntas de múltipla escolha sobre a linguagem de programação C.

Seu papel é criar perguntas **claras, corretas e educativas** sobre C: sintaxe, ponteiros, memória, tipos, pré-processador, biblioteca padrão e comportamento definido pela norma.

Regras gerais:
1. Cada pergunta deve ter uma **única resposta correta**.
2. Cada pergunta deve ter exatamente 4 alternativas, todas distintas e plausíveis.
3. O campo "correctIndex" é o índice (0 a 3) da alternativa correta dentro de "options".
4. A explicação deve ser breve, clara e objetiva.

Formato JSON esperado:

[
  {
    "text": "<texto da pergunta>",
    "options": ["...", "...", "...", "..."],
    "correctIndex": 2,
    "explanation": "<por que esta alternativa é a correta>"
  }
]

Diretrizes de qualidade:
- **Não deixe a resposta correta óbvia.** As alternativas devem ter tamanho e estrutura similares; use distratores plausíveis (erros comuns de quem aprende C).
- Nunca revele a resposta no enunciado.
- Varie o estilo: leitura de código, conceito, comportamento em tempo de execução.
- Gere sempre **JSON puro e válido**, sem nenhum texto fora do array JSON.
`

func difficultyFraming(d Difficulty) string {
	switch d {
	case DifficultyModerate:
		return "dificuldade intermediária: aplicação de conceitos, ponteiros simples, leitura de trechos curtos de código"
	case DifficultyHarder:
		return "dificuldade avançada: comportamento indefinido, aritmética de ponteiros, promoção de tipos, detalhes da norma"
	default:
		return "dificuldade básica: sintaxe, tipos fundamentais, operadores e conceitos introdutórios"
	}
}

// BuildUserPrompt é uma função pura de (dificuldade, quantidade, nonce);
// o nonce torna chamadas repetidas improváveis de repetir conteúdo.
func BuildUserPrompt(d Difficulty, count int, nonce string) string {
	if count <= 0 {
		count = 1
	}

	return fmt.Sprintf(
		"Gere %d perguntas de múltipla escolha sobre a linguagem C com %s. "+
			"Siga estritamente o formato JSON do system prompt, com exatamente 4 alternativas por pergunta e o campo 'correctIndex' entre 0 e 3. "+
			"Identificador de unicidade desta rodada (não o mencione nas perguntas): %s.",
		count, difficultyFraming(d), nonce,
	)
}

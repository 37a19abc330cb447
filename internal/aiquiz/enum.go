package aiquiz

import "fmt"

type Difficulty string

const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHarder   Difficulty = "harder"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyBasic, DifficultyModerate, DifficultyHarder:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("dificuldade desconhecida: %q", s)
	}
}

package domain

import (
	"time"

	"love-by-flavour/internal/flavour"
)

// QuizResult es el resultado persistido de una corrida del quiz.
type QuizResult struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Answers   []int               `json:"answers"`
	Traits    flavour.TraitVector `json:"traits"`
	Flavour   flavour.Flavour     `json:"flavour"`
	CreatedAt time.Time           `json:"created_at"`
}

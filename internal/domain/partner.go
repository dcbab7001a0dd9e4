package domain

import (
	"time"

	"love-by-flavour/internal/flavour"
)

// Partner es un registro de ex pareja cargado por el usuario para analisis.
type Partner struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Nickname  string              `json:"nickname"`
	Flavour   flavour.Flavour     `json:"flavour"`
	Traits    flavour.TraitVector `json:"traits"`
	Notes     string              `json:"notes,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

package domain

import (
	"time"

	"love-by-flavour/internal/flavour"
)

type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	DisplayName  string          `json:"display_name,omitempty"`
	PasswordHash string          `json:"-"`
	Flavour      flavour.Flavour `json:"flavour,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

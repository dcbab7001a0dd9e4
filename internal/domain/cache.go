package domain

import (
	"encoding/json"
	"time"
)

// AICacheEntry es una respuesta de LLM memoizada con vencimiento.
// CacheKey es el hash del payload canonico + tipo de analisis; una fila viva
// por clave (upsert, no append).
type AICacheEntry struct {
	ID           string          `json:"id"`
	CacheKey     string          `json:"cache_key"`
	AnalysisType string          `json:"analysis_type"`
	InputHash    string          `json:"input_hash"`
	Result       json.RawMessage `json:"result"`
	ExpiresAt    time.Time       `json:"expires_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

package dto

import (
	"encoding/json"
	"time"
)

// SaveDraftRequest estado en curso del formulario (paso actual y respuestas sin procesar).
type SaveDraftRequest struct {
	Step string          `json:"step" validate:"required,max=64"`
	Data json.RawMessage `json:"data" validate:"required"`
}

// DraftResponse borrador guardado del usuario.
type DraftResponse struct {
	Step      string          `json:"step"`
	Data      json.RawMessage `json:"data"`
	SizeBytes int             `json:"size_bytes"`
	UpdatedAt time.Time       `json:"updated_at"`
}

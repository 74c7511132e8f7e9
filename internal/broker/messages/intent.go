package messages

import "time"

// Intent es lo que se publica en el topic de intenciones por cada cambio aceptado.
type Intent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	SubjectID  string    `json:"subject_id,omitempty"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

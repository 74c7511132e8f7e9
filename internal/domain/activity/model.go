package activity

import "time"

// Event es una intención del usuario (o de un sistema externo) ya aceptada por el core.
type Event struct {
	ID   string
	Type EventType

	// SubjectID apunta al registro afectado (animal, alerta, setting). Vacío en operaciones masivas.
	SubjectID string
	Summary   string

	OccurredAt time.Time
}

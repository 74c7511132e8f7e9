package alerts

import "time"

// Alert es una notificación sobre un animal.
type Alert struct {
	ID string

	// AnimalID es una referencia débil: el animal puede no existir.
	AnimalID string
	// AnimalName se copia al crear la alerta y no se vuelve a sincronizar.
	AnimalName string

	Type      Type
	Message   string
	Timestamp string // etiqueta relativa ("5 minutes ago")
	Read      bool

	CreatedAt time.Time
}

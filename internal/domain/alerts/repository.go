package alerts

import "context"

// Repository mantiene las alertas en orden de llegada.
// Solo cambia el flag Read; nunca se borra nada.
type Repository interface {
	Append(ctx context.Context, a Alert) error
	List(ctx context.Context) ([]Alert, error)

	// MarkRead devuelve false si el id no existe.
	MarkRead(ctx context.Context, id string) (bool, error)
	// MarkAllRead devuelve cuántas alertas pasaron de no leídas a leídas.
	MarkAllRead(ctx context.Context) (int, error)
}

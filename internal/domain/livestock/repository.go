package livestock

import "context"

// Repository guarda la lista ordenada (orden de inserción) del rebaño.
// No hay borrado: el único cambio in-place es el estado.
type Repository interface {
	Append(ctx context.Context, a Animal) error
	List(ctx context.Context) ([]Animal, error)
	GetByID(ctx context.Context, id string) (Animal, error)
	UpdateStatus(ctx context.Context, id string, status Status, lastSeen string) (Animal, error)
}

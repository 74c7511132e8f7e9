package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"livestock-tracker/internal/collection"
	"livestock-tracker/internal/domain/livestock"
)

// livestockRepo guarda el rebaño como lista ordenada; cada cambio reemplaza la lista.
type livestockRepo struct {
	mu    sync.RWMutex
	items []livestock.Animal
}

func NewLivestockRepo() livestock.Repository {
	return &livestockRepo{}
}

func (r *livestockRepo) Append(ctx context.Context, a livestock.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := collection.Find(r.items, byAnimalID(a.ID)); exists {
		return errors.New("animal already exists")
	}
	r.items = collection.Append(r.items, cloneAnimal(a))
	return nil
}

func (r *livestockRepo) List(ctx context.Context) ([]livestock.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]livestock.Animal, len(r.items))
	for i, a := range r.items {
		out[i] = cloneAnimal(a)
	}
	return out, nil
}

func (r *livestockRepo) GetByID(ctx context.Context, id string) (livestock.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := collection.Find(r.items, byAnimalID(id))
	if !ok {
		return livestock.Animal{}, livestock.ErrNotFound
	}
	return cloneAnimal(a), nil
}

func (r *livestockRepo) UpdateStatus(ctx context.Context, id string, status livestock.Status, lastSeen string) (livestock.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, n := collection.UpdateWhere(r.items, byAnimalID(id), func(a livestock.Animal) livestock.Animal {
		a.Status = status
		a.LastSeen = lastSeen
		return a
	})
	if n == 0 {
		return livestock.Animal{}, livestock.ErrNotFound
	}
	r.items = next

	a, _ := collection.Find(r.items, byAnimalID(id))
	return cloneAnimal(a), nil
}

func byAnimalID(id string) func(livestock.Animal) bool {
	return func(a livestock.Animal) bool { return a.ID == id }
}

// cloneAnimal evita compartir Position entre la lista guardada y los llamadores.
func cloneAnimal(a livestock.Animal) livestock.Animal {
	if a.Position != nil {
		p := *a.Position
		a.Position = &p
	}
	return a
}

package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"livestock-tracker/internal/collection"
	"livestock-tracker/internal/domain/activity"
	"livestock-tracker/internal/filter"
)

// activityRepo es un historial acotado: se descartan los eventos más viejos al superar maxEvents.
type activityRepo struct {
	mu        sync.RWMutex
	items     []activity.Event
	maxEvents int
}

const defaultMaxEvents = 1000

func NewActivityRepo() activity.Repository {
	return &activityRepo{maxEvents: defaultMaxEvents}
}

func (r *activityRepo) Create(ctx context.Context, e activity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}

	next := collection.Append(r.items, e)
	if len(next) > r.maxEvents {
		next = next[len(next)-r.maxEvents:]
	}
	r.items = next
	return nil
}

func (r *activityRepo) List(ctx context.Context, f activity.ListFilter) ([]activity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := f.Limit
	if limit <= 0 {
		limit = activity.DefaultLimit
	}

	out := make([]activity.Event, 0)
	// Más reciente primero: se recorre desde el final.
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.items[i]
		if len(f.Types) > 0 && !containsType(f.Types, e.Type) {
			continue
		}
		if !filter.MatchText(f.Query, e.Summary) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func containsType(types []activity.EventType, t activity.EventType) bool {
	for _, it := range types {
		if it == t {
			return true
		}
	}
	return false
}

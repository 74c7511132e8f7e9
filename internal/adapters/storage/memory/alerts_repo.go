package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"livestock-tracker/internal/collection"
	"livestock-tracker/internal/domain/alerts"
)

type alertRepo struct {
	mu    sync.RWMutex
	items []alerts.Alert
}

func NewAlertRepo() alerts.Repository {
	return &alertRepo{}
}

func (r *alertRepo) Append(ctx context.Context, a alerts.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("alert id required")
	}
	if _, exists := collection.Find(r.items, byAlertID(a.ID)); exists {
		return errors.New("alert already exists")
	}
	r.items = collection.Append(r.items, a)
	return nil
}

func (r *alertRepo) List(ctx context.Context) ([]alerts.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]alerts.Alert(nil), r.items...), nil
}

func (r *alertRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := collection.Find(r.items, byAlertID(id)); !ok {
		return false, nil
	}
	r.items, _ = collection.UpdateWhere(r.items, byAlertID(id), markRead)
	return true, nil
}

func (r *alertRepo) MarkAllRead(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, n := collection.UpdateWhere(r.items, func(a alerts.Alert) bool { return !a.Read }, markRead)
	r.items = next
	return n, nil
}

func byAlertID(id string) func(alerts.Alert) bool {
	return func(a alerts.Alert) bool { return a.ID == id }
}

func markRead(a alerts.Alert) alerts.Alert {
	a.Read = true
	return a
}

package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"livestock-tracker/internal/domain/activity"
	"livestock-tracker/internal/domain/alerts"
	"livestock-tracker/internal/domain/livestock"
)

type testAnimals struct {
	items []livestock.Animal
	calls int

	// afterRead corre después de leer, antes de devolver (simula una escritura concurrente).
	afterRead func()
}

func (r *testAnimals) List(ctx context.Context, f livestock.ListFilter) ([]livestock.Animal, error) {
	r.calls++
	out := append([]livestock.Animal(nil), r.items...)
	if r.afterRead != nil {
		r.afterRead()
	}
	return out, nil
}

func (r *testAnimals) GetByID(ctx context.Context, id string) (livestock.Animal, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return livestock.Animal{}, livestock.ErrNotFound
}

type testAlerts struct {
	items []alerts.Alert
}

func (r *testAlerts) List(ctx context.Context, f alerts.ListFilter) ([]alerts.Alert, error) {
	return append([]alerts.Alert(nil), r.items...), nil
}

func (r *testAlerts) UnreadCount(ctx context.Context) (int, error) {
	n := 0
	for _, a := range r.items {
		if !a.Read {
			n++
		}
	}
	return n, nil
}

// mapCache es un BytesCache en memoria.
type mapCache struct {
	data   map[string][]byte
	getErr error
	dels   int
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	b, ok := c.data[key]
	return b, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.data == nil {
		c.data = map[string][]byte{}
	}
	c.data[key] = value
	return nil
}

func (c *mapCache) Del(ctx context.Context, key string) error {
	c.dels++
	delete(c.data, key)
	return nil
}

type recordedEvents struct {
	items []activity.Event
}

func (s *recordedEvents) Record(ctx context.Context, e activity.Event) error {
	s.items = append(s.items, e)
	return nil
}

func fixtures() (*testAnimals, *testAlerts) {
	return &testAnimals{items: []livestock.Animal{
			{ID: "1", Name: "Bessie", Type: livestock.TypeCow, Status: livestock.StatusNormal},
			{ID: "2", Name: "Woolly", Type: livestock.TypeSheep, Status: livestock.StatusAlert},
			{ID: "3", Name: "Fluffy", Type: livestock.TypeSheep, Status: livestock.StatusOutside},
		}}, &testAlerts{items: []alerts.Alert{
			{ID: "a1", Read: false},
			{ID: "a2", Read: true},
		}}
}

func TestService_Summary_Counts(t *testing.T) {
	animals, al := fixtures()
	svc := NewService(animals, al, Options{})

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if sum.Total != 3 || sum.UnreadAlerts != 1 {
		t.Fatalf("unexpected summary: %#v", sum)
	}
	if sum.ByType[livestock.TypeSheep] != 2 || sum.ByType[livestock.TypeGoat] != 0 {
		t.Fatalf("unexpected by_type: %#v", sum.ByType)
	}
	if sum.ByStatus[livestock.StatusOutside] != 1 || sum.ByStatus[livestock.StatusNormal] != 1 {
		t.Fatalf("unexpected by_status: %#v", sum.ByStatus)
	}
}

func TestService_Summary_UsesCacheUntilInvalidated(t *testing.T) {
	animals, al := fixtures()
	cache := &mapCache{}
	svc := NewService(animals, al, Options{Cache: cache, TTL: time.Minute})
	ctx := context.Background()

	if _, err := svc.Summary(ctx); err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	animals.items = append(animals.items, livestock.Animal{ID: "4", Type: livestock.TypeGoat, Status: livestock.StatusNormal})

	sum, _ := svc.Summary(ctx)
	if sum.Total != 3 || animals.calls != 1 {
		t.Fatalf("expected cached summary, got total=%d calls=%d", sum.Total, animals.calls)
	}

	if err := svc.Record(ctx, activity.Event{Type: activity.EventTypeLivestockAdded}); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	sum, _ = svc.Summary(ctx)
	if sum.Total != 4 || animals.calls != 2 {
		t.Fatalf("expected fresh summary, got total=%d calls=%d", sum.Total, animals.calls)
	}
}

func TestService_Summary_InvalidationDuringComputeIsNotOverwritten(t *testing.T) {
	animals, al := fixtures()
	cache := &mapCache{}
	svc := NewService(animals, al, Options{Cache: cache, TTL: time.Minute})
	ctx := context.Background()

	animals.afterRead = func() {
		animals.afterRead = nil
		animals.items = append(animals.items, livestock.Animal{ID: "4", Type: livestock.TypeGoat, Status: livestock.StatusNormal})
		if err := svc.Record(ctx, activity.Event{Type: activity.EventTypeLivestockAdded}); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	first, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if first.Total != 3 {
		t.Fatalf("expected first summary from the read snapshot, got %d", first.Total)
	}
	if _, ok := cache.data[summaryCacheKey]; ok {
		t.Fatalf("stale summary should not be cached")
	}

	second, _ := svc.Summary(ctx)
	if second.Total != 4 {
		t.Fatalf("expected fresh summary after invalidation, got %d", second.Total)
	}
	if _, ok := cache.data[summaryCacheKey]; !ok {
		t.Fatalf("expected fresh summary to be cached")
	}
}

// raceCache deja correr una invalidación justo antes de que Set escriba.
type raceCache struct {
	mapCache
	beforeSet func()
}

func (c *raceCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.beforeSet != nil {
		f := c.beforeSet
		c.beforeSet = nil
		f()
	}
	return c.mapCache.Set(ctx, key, value, ttl)
}

func TestService_Summary_InvalidationBeforeSetIsUndone(t *testing.T) {
	animals, al := fixtures()
	cache := &raceCache{}
	svc := NewService(animals, al, Options{Cache: cache, TTL: time.Minute})
	ctx := context.Background()

	cache.beforeSet = func() {
		animals.items = append(animals.items, livestock.Animal{ID: "4", Type: livestock.TypeGoat, Status: livestock.StatusNormal})
		_ = svc.Record(ctx, activity.Event{Type: activity.EventTypeLivestockAdded})
	}

	if _, err := svc.Summary(ctx); err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if _, ok := cache.data[summaryCacheKey]; ok {
		t.Fatalf("stale summary should have been removed")
	}

	sum, _ := svc.Summary(ctx)
	if sum.Total != 4 {
		t.Fatalf("expected fresh summary, got %d", sum.Total)
	}
}

func TestService_Summary_CacheFailureFallsBack(t *testing.T) {
	animals, al := fixtures()
	svc := NewService(animals, al, Options{Cache: &mapCache{getErr: errors.New("redis down")}})

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if sum.Total != 3 {
		t.Fatalf("expected computed summary, got %#v", sum)
	}
}

func TestService_Select(t *testing.T) {
	animals, al := fixtures()
	cache := &mapCache{}
	sink := &recordedEvents{}
	svc := NewService(animals, al, Options{Cache: cache, Sink: sink})
	ctx := context.Background()

	if _, err := svc.Summary(ctx); err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if err := svc.Select(ctx, " 2 "); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}

	sum, _ := svc.Summary(ctx)
	if sum.SelectedAnimalID != "2" {
		t.Fatalf("expected selection in summary, got %#v", sum)
	}
	if string(cache.data[summaryCacheKey]) == "" {
		t.Fatalf("expected cached summary")
	}
	if len(sink.items) != 1 || sink.items[0].Type != activity.EventTypeAnimalSelected {
		t.Fatalf("expected ANIMAL_SELECTED, got %#v", sink.items)
	}

	if err := svc.Select(ctx, "404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if svc.Selected(ctx) != "2" {
		t.Fatalf("failed selection must keep previous one")
	}
}

func TestService_RecentAlerts_AllInStoreOrder(t *testing.T) {
	animals, al := fixtures()
	svc := NewService(animals, al, Options{})

	got, err := svc.RecentAlerts(context.Background())
	if err != nil {
		t.Fatalf("RecentAlerts returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "a2" {
		t.Fatalf("unexpected alerts: %#v", got)
	}
}

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"livestock-tracker/internal/domain/activity"
	"livestock-tracker/internal/domain/alerts"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/platform/logger"
)

const summaryCacheKey = "dashboard:summary"

var ErrNotFound = errors.New("animal not found")

type LivestockReader interface {
	List(ctx context.Context, f livestock.ListFilter) ([]livestock.Animal, error)
	GetByID(ctx context.Context, id string) (livestock.Animal, error)
}

type AlertReader interface {
	List(ctx context.Context, f alerts.ListFilter) ([]alerts.Alert, error)
	UnreadCount(ctx context.Context) (int, error)
}

// BytesCache es opcional (Redis). Un fallo de cache nunca rompe el dashboard.
type BytesCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Summary son los contadores de la cabecera del dashboard.
type Summary struct {
	Total            int                      `json:"total"`
	ByType           map[livestock.Type]int   `json:"by_type"`
	ByStatus         map[livestock.Status]int `json:"by_status"`
	UnreadAlerts     int                      `json:"unread_alerts"`
	SelectedAnimalID string                   `json:"selected_animal_id,omitempty"`
}

type Options struct {
	Cache BytesCache
	TTL   time.Duration
	Sink  activity.Sink
	Log   logger.Logger
}

type Service struct {
	animals LivestockReader
	alerts  AlertReader

	cache BytesCache
	ttl   time.Duration
	sink  activity.Sink
	log   logger.Logger

	// gen cambia con cada invalidación; un resumen calculado antes no se cachea.
	gen atomic.Uint64

	mu       sync.RWMutex
	selected string
}

func NewService(animals LivestockReader, alertsReader AlertReader, opts Options) *Service {
	if opts.Sink == nil {
		opts.Sink = activity.Discard
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Second
	}
	return &Service{
		animals: animals,
		alerts:  alertsReader,
		cache:   opts.Cache,
		ttl:     opts.TTL,
		sink:    opts.Sink,
		log:     opts.Log,
	}
}

// SetSink permite cablear el Fanout después de construir el servicio
// (el dashboard también es suscriptor del mismo Fanout).
func (s *Service) SetSink(sink activity.Sink) {
	if sink != nil {
		s.sink = sink
	}
}

// Summary cuenta animales por tipo y estado y las alertas sin leer.
// La selección no se cachea: es estado de la sesión del mapa.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	sum, ok := s.cachedSummary(ctx)
	if !ok {
		gen := s.gen.Load()
		var err error
		sum, err = s.computeSummary(ctx)
		if err != nil {
			return Summary{}, err
		}
		s.storeSummary(ctx, sum, gen)
	}
	sum.SelectedAnimalID = s.Selected(ctx)
	return sum, nil
}

func (s *Service) computeSummary(ctx context.Context) (Summary, error) {
	animals, err := s.animals.List(ctx, livestock.ListFilter{})
	if err != nil {
		return Summary{}, err
	}
	unread, err := s.alerts.UnreadCount(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Total:        len(animals),
		ByType:       make(map[livestock.Type]int, len(livestock.Types)),
		ByStatus:     make(map[livestock.Status]int, len(livestock.Statuses)),
		UnreadAlerts: unread,
	}
	for _, t := range livestock.Types {
		sum.ByType[t] = 0
	}
	for _, st := range livestock.Statuses {
		sum.ByStatus[st] = 0
	}
	for _, a := range animals {
		sum.ByType[a.Type]++
		sum.ByStatus[a.Status]++
	}
	return sum, nil
}

func (s *Service) cachedSummary(ctx context.Context) (Summary, bool) {
	if s.cache == nil {
		return Summary{}, false
	}
	b, ok, err := s.cache.Get(ctx, summaryCacheKey)
	if err != nil {
		s.log.Warn("dashboard cache get failed", map[string]any{"err": err})
		return Summary{}, false
	}
	if !ok {
		return Summary{}, false
	}
	var sum Summary
	if err := json.Unmarshal(b, &sum); err != nil {
		s.log.Warn("dashboard cache entry unreadable", map[string]any{"err": err})
		return Summary{}, false
	}
	return sum, true
}

// storeSummary cachea sum solo si no hubo invalidaciones desde gen.
// Si una invalidación llega mientras se escribe, se borra lo escrito.
func (s *Service) storeSummary(ctx context.Context, sum Summary, gen uint64) {
	if s.cache == nil || s.gen.Load() != gen {
		return
	}
	sum.SelectedAnimalID = ""
	b, err := json.Marshal(sum)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, summaryCacheKey, b, s.ttl); err != nil {
		s.log.Warn("dashboard cache set failed", map[string]any{"err": err})
		return
	}
	if s.gen.Load() != gen {
		if err := s.cache.Del(ctx, summaryCacheKey); err != nil {
			s.log.Warn("dashboard cache del failed", map[string]any{"err": err})
		}
	}
}

// Record invalida el resumen cacheado ante cualquier intención aceptada.
func (s *Service) Record(ctx context.Context, e activity.Event) error {
	s.gen.Add(1)
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Del(ctx, summaryCacheKey); err != nil {
		return fmt.Errorf("invalidate dashboard summary: %w", err)
	}
	return nil
}

// Select guarda el animal elegido en el mapa.
func (s *Service) Select(ctx context.Context, animalID string) error {
	animalID = strings.TrimSpace(animalID)
	a, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, livestock.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.mu.Lock()
	s.selected = a.ID
	s.mu.Unlock()

	_ = s.sink.Record(ctx, activity.Event{
		Type:      activity.EventTypeAnimalSelected,
		SubjectID: a.ID,
		Summary:   fmt.Sprintf("%s selected on the map", a.Name),
	})
	return nil
}

func (s *Service) Selected(ctx context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// RecentAlerts es el contenido del AlertsPanel: todas las alertas en orden de llegada.
func (s *Service) RecentAlerts(ctx context.Context) ([]alerts.Alert, error) {
	return s.alerts.List(ctx, alerts.ListFilter{View: alerts.ViewAll})
}

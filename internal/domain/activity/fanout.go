package activity

import (
	"context"
	"strings"
	"sync"
	"time"

	"livestock-tracker/internal/platform/logger"

	"github.com/google/uuid"
)

// Sink recibe cada intención aceptada. Es la interfaz angosta que los servicios
// de dominio conocen; no saben quién escucha (historial, métricas, cache, Kafka).
type Sink interface {
	Record(ctx context.Context, e Event) error
}

// SinkFunc adapta una función a Sink.
type SinkFunc func(ctx context.Context, e Event) error

func (f SinkFunc) Record(ctx context.Context, e Event) error { return f(ctx, e) }

// Discard ignora todos los eventos.
var Discard Sink = SinkFunc(func(context.Context, Event) error { return nil })

// Fanout reparte cada evento a todos los suscriptores, en orden de suscripción.
// Un suscriptor que falla se loguea y no corta a los demás: la intención ya fue aplicada.
type Fanout struct {
	mu    sync.RWMutex
	sinks []Sink

	log   logger.Logger
	now   func() time.Time
	newID func() string
}

func NewFanout(log logger.Logger, sinks ...Sink) *Fanout {
	if log == nil {
		log = logger.Nop()
	}
	return &Fanout{
		sinks: append([]Sink(nil), sinks...),
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Subscribe agrega un suscriptor. Permite cablear servicios que a su vez dependen del Fanout.
func (f *Fanout) Subscribe(s Sink) {
	if s == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = append(f.sinks, s)
}

func (f *Fanout) Record(ctx context.Context, e Event) error {
	// ID y hora se fijan una sola vez para que todos los suscriptores vean el mismo evento.
	if strings.TrimSpace(e.ID) == "" {
		e.ID = f.newID()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = f.now().UTC()
	}

	f.mu.RLock()
	sinks := append([]Sink(nil), f.sinks...)
	f.mu.RUnlock()

	for _, s := range sinks {
		if err := s.Record(ctx, e); err != nil {
			f.log.Warn("activity sink failed", map[string]any{
				"event_id":   e.ID,
				"event_type": string(e.Type),
				"err":        err,
			})
		}
	}
	return nil
}

package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"livestock-tracker/internal/domain/activity"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/filter"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidType  = errors.New("type must be boundary, movement, battery or offline")
	ErrInvalidView  = errors.New("view must be all, unread or read")
)

// TimestampJustNow es la etiqueta de una alerta recién recibida sin timestamp.
const TimestampJustNow = "Just now"

// Roster es lo único que alerts necesita del rebaño.
type Roster interface {
	AnimalName(ctx context.Context, id string) (string, error)
	SetStatus(ctx context.Context, id string, status livestock.Status, lastSeen string) (livestock.Animal, error)
}

type Service struct {
	repo   Repository
	roster Roster
	sink   activity.Sink
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, roster Roster, sink activity.Sink) *Service {
	if sink == nil {
		sink = activity.Discard
	}
	return &Service{
		repo:   repo,
		roster: roster,
		sink:   sink,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

type RaiseInput struct {
	AnimalID   string
	AnimalName string
	Type       Type
	Message    string
	Timestamp  string

	// Status opcional del animal que acompaña a la alerta.
	Status livestock.Status
}

// Raise agrega una alerta nueva (no leída) al final del feed.
func (s *Service) Raise(ctx context.Context, in RaiseInput) (Alert, error) {
	animalID := strings.TrimSpace(in.AnimalID)
	message := strings.TrimSpace(in.Message)
	if animalID == "" || message == "" {
		return Alert{}, ErrInvalidInput
	}
	if !in.Type.Valid() {
		return Alert{}, ErrInvalidType
	}
	if in.Status != "" && !in.Status.Valid() {
		return Alert{}, livestock.ErrInvalidStatus
	}

	name := strings.TrimSpace(in.AnimalName)
	if s.roster != nil {
		n, err := s.roster.AnimalName(ctx, animalID)
		switch {
		case err == nil:
			name = n
		case errors.Is(err, livestock.ErrNotFound):
			// referencia colgante permitida
		default:
			return Alert{}, err
		}
	}
	if name == "" {
		name = animalID
	}

	ts := strings.TrimSpace(in.Timestamp)
	if ts == "" {
		ts = TimestampJustNow
	}

	// El estado va antes que la alerta: si falla, no queda nada guardado y el
	// reintento (p.ej. redelivery de Kafka) no duplica la alerta.
	if in.Status != "" && s.roster != nil {
		if _, err := s.roster.SetStatus(ctx, animalID, in.Status, ts); err != nil && !errors.Is(err, livestock.ErrNotFound) {
			return Alert{}, err
		}
	}

	a := Alert{
		ID:         s.newID(),
		AnimalID:   animalID,
		AnimalName: name,
		Type:       in.Type,
		Message:    message,
		Timestamp:  ts,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Append(ctx, a); err != nil {
		return Alert{}, err
	}

	_ = s.sink.Record(ctx, activity.Event{
		Type:      activity.EventTypeAlertRaised,
		SubjectID: a.ID,
		Summary:   fmt.Sprintf("%s: %s", a.AnimalName, a.Message),
	})

	return a, nil
}

// MarkRead marca una alerta como leída. Un id desconocido no es error.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	found, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if found {
		_ = s.sink.Record(ctx, activity.Event{
			Type:      activity.EventTypeAlertRead,
			SubjectID: id,
			Summary:   "alert marked as read",
		})
	}
	return nil
}

// MarkAllRead es idempotente; devuelve cuántas alertas cambiaron.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	n, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	_ = s.sink.Record(ctx, activity.Event{
		Type:    activity.EventTypeAlertsAllRead,
		Summary: fmt.Sprintf("%d alerts marked as read", n),
	})
	return n, nil
}

// ListFilter: texto sobre nombre del animal y mensaje, tipo y pestaña de lectura.
type ListFilter struct {
	Query string
	Type  string
	View  View
}

func (f ListFilter) Validate() error {
	if !filter.IsAll(f.Type) && !Type(strings.TrimSpace(f.Type)).Valid() {
		return ErrInvalidType
	}
	if f.View != "" && !f.View.Valid() {
		return ErrInvalidView
	}
	return nil
}

func (f ListFilter) Matches(a Alert) bool {
	return filter.MatchText(f.Query, a.AnimalName, a.Message) &&
		filter.MatchCategory(f.Type, a.Type) &&
		f.View.Matches(a)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Alert, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, f.Matches), nil
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(filter.Apply(items, ViewUnread.Matches)), nil
}

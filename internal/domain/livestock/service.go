package livestock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"livestock-tracker/internal/domain/activity"
	"livestock-tracker/internal/filter"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("please fill in all required fields")
	ErrInvalidType     = errors.New("type must be cow, sheep or goat")
	ErrInvalidStatus   = errors.New("status must be normal, alert or outside")
	ErrNotFound        = errors.New("animal not found")
)

type Service struct {
	repo  Repository
	sink  activity.Sink
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, sink activity.Sink) *Service {
	if sink == nil {
		sink = activity.Discard
	}
	return &Service{
		repo:  repo,
		sink:  sink,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type AddInput struct {
	Name     string
	Type     Type
	Age      string
	TagID    string
	Position *Position
}

// Add registra un animal nuevo al final del rebaño.
// El id lo genera el servicio (nunca a partir del largo de la colección).
func (s *Service) Add(ctx context.Context, in AddInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	tagID := strings.TrimSpace(in.TagID)
	if name == "" || tagID == "" {
		return Animal{}, ErrMissingRequired
	}

	typ := in.Type
	if typ == "" {
		typ = TypeCow
	}
	if !typ.Valid() {
		return Animal{}, ErrInvalidType
	}

	var pos *Position
	if in.Position != nil {
		if !in.Position.Valid() {
			return Animal{}, ErrInvalidInput
		}
		p := *in.Position
		pos = &p
	}

	a := Animal{
		ID:        s.newID(),
		Name:      name,
		Type:      typ,
		Age:       strings.TrimSpace(in.Age),
		TagID:     tagID,
		Status:    StatusNormal,
		LastSeen:  LastSeenJustNow,
		Position:  pos,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Append(ctx, a); err != nil {
		return Animal{}, err
	}

	_ = s.sink.Record(ctx, activity.Event{
		Type:      activity.EventTypeLivestockAdded,
		SubjectID: a.ID,
		Summary:   fmt.Sprintf("%s (%s) registered with tag %s", a.Name, a.Type.Label(), a.TagID),
	})
	return a, nil
}

// ListFilter: texto sobre el nombre + tipo + estado. "" o "all" desactiva el filtro.
type ListFilter struct {
	Query  string
	Type   string
	Status string
}

func (f ListFilter) Validate() error {
	if !filter.IsAll(f.Type) && !Type(strings.TrimSpace(f.Type)).Valid() {
		return ErrInvalidType
	}
	if !filter.IsAll(f.Status) && !Status(strings.TrimSpace(f.Status)).Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (f ListFilter) Matches(a Animal) bool {
	return filter.MatchText(f.Query, a.Name) &&
		filter.MatchCategory(f.Type, a.Type) &&
		filter.MatchCategory(f.Status, a.Status)
}

// List devuelve la vista filtrada en orden de inserción.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Animal, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, f.Matches), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// AnimalName se usa para denormalizar el nombre en las alertas.
func (s *Service) AnimalName(ctx context.Context, id string) (string, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return a.Name, nil
}

// SetStatus es el punto de entrada de eventos externos (tracker, alertas).
func (s *Service) SetStatus(ctx context.Context, id string, status Status, lastSeen string) (Animal, error) {
	if !status.Valid() {
		return Animal{}, ErrInvalidStatus
	}
	lastSeen = strings.TrimSpace(lastSeen)
	if lastSeen == "" {
		lastSeen = LastSeenJustNow
	}

	a, err := s.repo.UpdateStatus(ctx, strings.TrimSpace(id), status, lastSeen)
	if err != nil {
		return Animal{}, err
	}

	_ = s.sink.Record(ctx, activity.Event{
		Type:      activity.EventTypeLivestockStatusChanged,
		SubjectID: a.ID,
		Summary:   fmt.Sprintf("%s is now %s", a.Name, a.Status.Label()),
	})
	return a, nil
}

package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Service guarda el historial de intenciones. Implementa Sink, así que se
// suscribe directamente al Fanout.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Record(ctx context.Context, e Event) error {
	if !e.Type.Valid() {
		return ErrInvalidInput
	}
	if strings.TrimSpace(e.ID) == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = s.now().UTC()
	}
	e.SubjectID = strings.TrimSpace(e.SubjectID)
	e.Summary = strings.TrimSpace(e.Summary)

	return s.repo.Create(ctx, e)
}

// List devuelve los eventos más recientes primero.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	for _, t := range filter.Types {
		if !t.Valid() {
			return nil, ErrInvalidInput
		}
	}
	return s.repo.List(ctx, filter)
}

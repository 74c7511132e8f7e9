package mapview

import (
	"context"
	"errors"
	"strings"

	"livestock-tracker/internal/domain/livestock"
)

var ErrNotFound = errors.New("animal not found")

// Roster es la parte del rebaño que el mapa lee.
type Roster interface {
	List(ctx context.Context, f livestock.ListFilter) ([]livestock.Animal, error)
	GetByID(ctx context.Context, id string) (livestock.Animal, error)
}

// Selector guarda qué animal está seleccionado (lo implementa el dashboard).
type Selector interface {
	Select(ctx context.Context, animalID string) error
	Selected(ctx context.Context) string
}

type Service struct {
	roster   Roster
	selector Selector
	home     View
}

func NewService(roster Roster, selector Selector, home View) *Service {
	if home.Zoom <= 0 {
		home = DefaultView()
	}
	return &Service{roster: roster, selector: selector, home: home}
}

type MarkersResult struct {
	View       View
	Markers    []Marker
	SelectedID string
}

// Markers ubica los animales con posición. Si hay uno seleccionado, el encuadre lo sigue.
func (s *Service) Markers(ctx context.Context, f livestock.ListFilter, strategy Strategy) (MarkersResult, error) {
	animals, err := s.roster.List(ctx, f)
	if err != nil {
		return MarkersResult{}, err
	}
	locs := LocationsOf(animals)

	markers, err := Place(locs, strategy)
	if err != nil {
		return MarkersResult{}, err
	}

	res := MarkersResult{View: s.home, Markers: markers}
	if s.selector != nil {
		res.SelectedID = s.selector.Selected(ctx)
		for _, l := range locs {
			if l.ID == res.SelectedID {
				res.View = s.home.Focus(l)
				break
			}
		}
	}
	return res, nil
}

// Select es el callback de clic sobre un marcador. Devuelve el nuevo encuadre.
func (s *Service) Select(ctx context.Context, animalID string) (View, error) {
	animalID = strings.TrimSpace(animalID)
	a, err := s.roster.GetByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, livestock.ErrNotFound) {
			return View{}, ErrNotFound
		}
		return View{}, err
	}

	if s.selector != nil {
		if err := s.selector.Select(ctx, a.ID); err != nil {
			return View{}, err
		}
	}

	locs := LocationsOf([]livestock.Animal{a})
	if len(locs) == 0 {
		// sin posición: se selecciona pero el mapa no se mueve
		return s.home, nil
	}
	return s.home.Focus(locs[0]), nil
}

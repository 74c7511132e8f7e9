package mapview

import (
	"context"
	"errors"
	"testing"

	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/filter"
)

type testRoster struct {
	items []livestock.Animal
}

func (r *testRoster) List(ctx context.Context, f livestock.ListFilter) ([]livestock.Animal, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return filter.Apply(r.items, f.Matches), nil
}

func (r *testRoster) GetByID(ctx context.Context, id string) (livestock.Animal, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return livestock.Animal{}, livestock.ErrNotFound
}

type testSelector struct {
	id string
}

func (s *testSelector) Select(ctx context.Context, id string) error {
	s.id = id
	return nil
}

func (s *testSelector) Selected(ctx context.Context) string { return s.id }

func herd() []livestock.Animal {
	return []livestock.Animal{
		{ID: "1", Name: "Bessie", Type: livestock.TypeCow, Status: livestock.StatusNormal, Position: &livestock.Position{Latitude: -32.88, Longitude: 27.83}},
		{ID: "2", Name: "Woolly", Type: livestock.TypeSheep, Status: livestock.StatusAlert, Position: &livestock.Position{Latitude: -32.90, Longitude: 27.86}},
		{ID: "3", Name: "Fluffy", Type: livestock.TypeSheep, Status: livestock.StatusOutside},
	}
}

func TestService_Markers_DefaultView(t *testing.T) {
	svc := NewService(&testRoster{items: herd()}, &testSelector{}, View{})

	res, err := svc.Markers(context.Background(), livestock.ListFilter{}, StrategyPercent)
	if err != nil {
		t.Fatalf("Markers returned error: %v", err)
	}
	if len(res.Markers) != 2 {
		t.Fatalf("expected 2 located markers, got %d", len(res.Markers))
	}
	if res.View != DefaultView() || res.SelectedID != "" {
		t.Fatalf("unexpected view: %#v", res)
	}
}

func TestService_Markers_FilteredByType(t *testing.T) {
	svc := NewService(&testRoster{items: herd()}, nil, DefaultView())

	res, err := svc.Markers(context.Background(), livestock.ListFilter{Type: "sheep"}, StrategyMercator)
	if err != nil {
		t.Fatalf("Markers returned error: %v", err)
	}
	if len(res.Markers) != 1 || res.Markers[0].ID != "2" {
		t.Fatalf("expected only Woolly, got %#v", res.Markers)
	}

	if _, err := svc.Markers(context.Background(), livestock.ListFilter{Type: "horse"}, StrategyPercent); !errors.Is(err, livestock.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestService_Select_FocusesAndRemembers(t *testing.T) {
	sel := &testSelector{}
	svc := NewService(&testRoster{items: herd()}, sel, DefaultView())

	v, err := svc.Select(context.Background(), " 2 ")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if v.Zoom != FocusZoom || v.CenterLatitude != -32.90 || v.CenterLongitude != 27.86 {
		t.Fatalf("unexpected view: %#v", v)
	}
	if sel.id != "2" {
		t.Fatalf("expected selection stored, got %q", sel.id)
	}

	res, _ := svc.Markers(context.Background(), livestock.ListFilter{}, StrategyPercent)
	if res.SelectedID != "2" || res.View.Zoom != FocusZoom {
		t.Fatalf("expected view to follow selection, got %#v", res)
	}
}

func TestService_Select_WithoutPositionKeepsView(t *testing.T) {
	sel := &testSelector{}
	svc := NewService(&testRoster{items: herd()}, sel, DefaultView())

	v, err := svc.Select(context.Background(), "3")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if v != DefaultView() || sel.id != "3" {
		t.Fatalf("expected default view with selection, got %#v / %q", v, sel.id)
	}
}

func TestService_Select_UnknownAnimal(t *testing.T) {
	sel := &testSelector{}
	svc := NewService(&testRoster{items: herd()}, sel, DefaultView())

	if _, err := svc.Select(context.Background(), "404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if sel.id != "" {
		t.Fatalf("unknown animal must not be selected")
	}
}

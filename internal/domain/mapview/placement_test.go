package mapview

import (
	"math"
	"testing"

	"livestock-tracker/internal/domain/livestock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStyleFor(t *testing.T) {
	cases := []struct {
		typ    livestock.Type
		status livestock.Status
		want   Style
	}{
		{livestock.TypeCow, livestock.StatusNormal, Style{Fill: "#795548", Stroke: "#ffffff", StrokeWidth: 1, Radius: 8}},
		{livestock.TypeSheep, livestock.StatusAlert, Style{Fill: "#9e9e9e", Stroke: "#ff4444", StrokeWidth: 2, Radius: 8}},
		{livestock.TypeGoat, livestock.StatusOutside, Style{Fill: "#8BC34A", Stroke: "#ff9800", StrokeWidth: 2, Radius: 8}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, StyleFor(tc.typ, tc.status)); diff != "" {
			t.Fatalf("%s/%s (-want +got):\n%s", tc.typ, tc.status, diff)
		}
	}
}

func TestPlace_PercentNormalizesToBoundingBox(t *testing.T) {
	locs := []Location{
		{ID: "nw", Type: livestock.TypeCow, Status: livestock.StatusNormal, Latitude: -32.0, Longitude: 27.0},
		{ID: "se", Type: livestock.TypeSheep, Status: livestock.StatusNormal, Latitude: -33.0, Longitude: 28.0},
		{ID: "mid", Type: livestock.TypeGoat, Status: livestock.StatusNormal, Latitude: -32.5, Longitude: 27.5},
	}

	got, err := Place(locs, StrategyPercent)
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}

	type xy struct{ X, Y float64 }
	want := []xy{{0, 0}, {100, 100}, {50, 50}}
	gotXY := make([]xy, len(got))
	for i, m := range got {
		gotXY[i] = xy{m.X, m.Y}
	}
	if diff := cmp.Diff(want, gotXY, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected placement (-want +got):\n%s", diff)
	}
	if got[0].ID != "nw" || got[2].Style.Fill != "#8BC34A" {
		t.Fatalf("order or style lost: %#v", got)
	}
}

func TestPlace_PercentDegenerateBox(t *testing.T) {
	got, err := Place([]Location{{ID: "only", Latitude: -32.9, Longitude: 27.8}}, StrategyPercent)
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if got[0].X != 50 || got[0].Y != 50 {
		t.Fatalf("expected centered marker, got (%v, %v)", got[0].X, got[0].Y)
	}

	// misma latitud: solo X varía
	got, _ = Place([]Location{{Latitude: -32, Longitude: 27}, {Latitude: -32, Longitude: 29}}, StrategyPercent)
	if got[0].X != 0 || got[1].X != 100 || got[0].Y != 50 || got[1].Y != 50 {
		t.Fatalf("unexpected placement: %#v", got)
	}
}

func TestPlace_Empty(t *testing.T) {
	got, err := Place(nil, StrategyPercent)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %#v (%v)", got, err)
	}
}

func TestPlace_Mercator(t *testing.T) {
	got, err := Place([]Location{
		{ID: "origin", Latitude: 0, Longitude: 0},
		{ID: "ec", Latitude: DefaultCenterLatitude, Longitude: DefaultCenterLongitude},
	}, StrategyMercator)
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if math.Abs(got[0].X) > 1e-6 || math.Abs(got[0].Y) > 1e-6 {
		t.Fatalf("expected origin at (0,0), got (%v, %v)", got[0].X, got[0].Y)
	}

	// x = R * lon(rad)
	wantX := 6378137.0 * DefaultCenterLongitude * math.Pi / 180
	if math.Abs(got[1].X-wantX) > 1 {
		t.Fatalf("expected x≈%v, got %v", wantX, got[1].X)
	}
	if got[1].Y >= 0 {
		t.Fatalf("southern hemisphere should have negative y, got %v", got[1].Y)
	}
}

func TestParseStrategy(t *testing.T) {
	if s, err := ParseStrategy(""); err != nil || s != StrategyPercent {
		t.Fatalf("expected percent by default, got %q (%v)", s, err)
	}
	if s, err := ParseStrategy(" Mercator "); err != nil || s != StrategyMercator {
		t.Fatalf("expected mercator, got %q (%v)", s, err)
	}
	if _, err := ParseStrategy("lambert"); err != ErrInvalidStrategy {
		t.Fatalf("expected ErrInvalidStrategy, got %v", err)
	}
	if _, err := Place([]Location{{}}, "lambert"); err != ErrInvalidStrategy {
		t.Fatalf("expected ErrInvalidStrategy, got %v", err)
	}
}

func TestLocationsOf_SkipsAnimalsWithoutPosition(t *testing.T) {
	got := LocationsOf([]livestock.Animal{
		{ID: "1", Name: "Bessie", Position: &livestock.Position{Latitude: -32.9, Longitude: 27.8}},
		{ID: "3", Name: "Fluffy"},
	})
	if len(got) != 1 || got[0].ID != "1" || got[0].Latitude != -32.9 {
		t.Fatalf("unexpected locations: %#v", got)
	}
}

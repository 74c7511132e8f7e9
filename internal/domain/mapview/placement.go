package mapview

import (
	"errors"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

var ErrInvalidStrategy = errors.New("strategy must be percent or mercator")

// Strategy decide cómo se convierten lat/lng en X/Y.
// @Enum percent, mercator
type Strategy string

const (
	// StrategyPercent normaliza a [0,100] dentro del bounding box de los marcadores.
	StrategyPercent Strategy = "percent"
	// StrategyMercator proyecta a Web Mercator (EPSG:3857), en metros.
	StrategyMercator Strategy = "mercator"
)

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StrategyPercent, nil
	case StrategyPercent, StrategyMercator:
		return st, nil
	default:
		return "", ErrInvalidStrategy
	}
}

// Place ubica cada Location según la estrategia, conservando el orden.
func Place(locs []Location, strategy Strategy) ([]Marker, error) {
	points := make([]orb.Point, len(locs))
	for i, l := range locs {
		points[i] = orb.Point{l.Longitude, l.Latitude}
	}

	var placed []orb.Point
	switch strategy {
	case StrategyPercent, "":
		placed = placePercent(points)
	case StrategyMercator:
		placed = placeMercator(points)
	default:
		return nil, ErrInvalidStrategy
	}

	out := make([]Marker, len(locs))
	for i, l := range locs {
		out[i] = Marker{
			ID:     l.ID,
			Name:   l.Name,
			Type:   l.Type,
			Status: l.Status,
			X:      placed[i].X(),
			Y:      placed[i].Y(),
			Style:  StyleFor(l.Type, l.Status),
		}
	}
	return out, nil
}

func placePercent(points []orb.Point) []orb.Point {
	out := make([]orb.Point, len(points))
	if len(points) == 0 {
		return out
	}

	b := orb.MultiPoint(points).Bound()
	width := b.Max.X() - b.Min.X()
	height := b.Max.Y() - b.Min.Y()

	for i, p := range points {
		x, y := 50.0, 50.0
		if width > 0 {
			x = (p.X() - b.Min.X()) / width * 100
		}
		// Norte arriba: Y crece hacia el sur.
		if height > 0 {
			y = (b.Max.Y() - p.Y()) / height * 100
		}
		out[i] = orb.Point{x, y}
	}
	return out
}

func placeMercator(points []orb.Point) []orb.Point {
	out := make([]orb.Point, len(points))
	for i, p := range points {
		out[i] = project.Point(p, project.WGS84.ToMercator)
	}
	return out
}

package mapview

import "livestock-tracker/internal/domain/livestock"

// Location es un animal con posición conocida.
type Location struct {
	ID        string
	Name      string
	Type      livestock.Type
	Status    livestock.Status
	Latitude  float64
	Longitude float64
}

// Marker es un punto ya ubicado y con estilo, listo para dibujar.
type Marker struct {
	ID     string
	Name   string
	Type   livestock.Type
	Status livestock.Status
	X      float64
	Y      float64
	Style  Style
}

type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth int
	Radius      int
}

const MarkerRadius = 8

// StyleFor: relleno por especie, borde por estado.
func StyleFor(t livestock.Type, s livestock.Status) Style {
	st := Style{Radius: MarkerRadius, StrokeWidth: 1}

	switch t {
	case livestock.TypeCow:
		st.Fill = "#795548"
	case livestock.TypeSheep:
		st.Fill = "#9e9e9e"
	default:
		st.Fill = "#8BC34A"
	}

	switch s {
	case livestock.StatusAlert:
		st.Stroke = "#ff4444"
	case livestock.StatusOutside:
		st.Stroke = "#ff9800"
	default:
		st.Stroke = "#ffffff"
	}
	if s != livestock.StatusNormal {
		st.StrokeWidth = 2
	}
	return st
}

// LocationsOf descarta los animales sin posición.
func LocationsOf(animals []livestock.Animal) []Location {
	out := make([]Location, 0, len(animals))
	for _, a := range animals {
		if a.Position == nil {
			continue
		}
		out = append(out, Location{
			ID:        a.ID,
			Name:      a.Name,
			Type:      a.Type,
			Status:    a.Status,
			Latitude:  a.Position.Latitude,
			Longitude: a.Position.Longitude,
		})
	}
	return out
}

package livestock

import "time"

// LastSeenJustNow es la etiqueta con la que nace un animal recién registrado.
const LastSeenJustNow = "Just now"

// Position es opcional: solo hace falta para mostrar el animal en el mapa.
type Position struct {
	Latitude  float64
	Longitude float64
}

func (p Position) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// Animal es un registro del rebaño.
type Animal struct {
	ID string

	Name  string
	Type  Type
	Age   string // texto libre ("3 years"), sin validación
	TagID string // id del tag/tracker; requerido al alta, no se valida unicidad

	Status   Status
	LastSeen string // etiqueta relativa ("10 minutes ago")

	Position *Position

	CreatedAt time.Time
}

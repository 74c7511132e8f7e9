package livestock

import (
	"fmt"
	"strings"
)

// Type define las especies soportadas (conjunto cerrado).
// @Enum cow, sheep, goat
type Type string

const (
	TypeCow   Type = "cow"
	TypeSheep Type = "sheep"
	TypeGoat  Type = "goat"
)

// Types en el orden en que se muestran los filtros.
var Types = []Type{TypeCow, TypeSheep, TypeGoat}

func (t Type) Valid() bool {
	switch t {
	case TypeCow, TypeSheep, TypeGoat:
		return true
	default:
		return false
	}
}

func (t Type) Label() string {
	switch t {
	case TypeCow:
		return "Cow"
	case TypeSheep:
		return "Sheep"
	case TypeGoat:
		return "Goat"
	default:
		return string(t)
	}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Status lo fija un evento externo (tracker / alerta); el core no lo calcula.
// @Enum normal, alert, outside
type Status string

const (
	StatusNormal  Status = "normal"
	StatusAlert   Status = "alert"
	StatusOutside Status = "outside"
)

var Statuses = []Status{StatusNormal, StatusAlert, StatusOutside}

func (s Status) Valid() bool {
	switch s {
	case StatusNormal, StatusAlert, StatusOutside:
		return true
	default:
		return false
	}
}

func (s Status) Label() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusAlert:
		return "Alert"
	case StatusOutside:
		return "Outside Boundary"
	default:
		return string(s)
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

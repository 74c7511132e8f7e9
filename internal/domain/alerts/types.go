package alerts

import (
	"fmt"
	"strings"
)

// Type de alerta (conjunto cerrado).
// @Enum boundary, movement, battery, offline
type Type string

const (
	TypeBoundary Type = "boundary"
	TypeMovement Type = "movement"
	TypeBattery  Type = "battery"
	TypeOffline  Type = "offline"
)

var Types = []Type{TypeBoundary, TypeMovement, TypeBattery, TypeOffline}

func (t Type) Valid() bool {
	switch t {
	case TypeBoundary, TypeMovement, TypeBattery, TypeOffline:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// View es la pestaña de estado de lectura. No modifica la colección.
// @Enum all, unread, read
type View string

const (
	ViewAll    View = "all"
	ViewUnread View = "unread"
	ViewRead   View = "read"
)

func (v View) Valid() bool {
	switch v {
	case ViewAll, ViewUnread, ViewRead:
		return true
	default:
		return false
	}
}

func (v View) Matches(a Alert) bool {
	switch v {
	case ViewUnread:
		return !a.Read
	case ViewRead:
		return a.Read
	default:
		return true
	}
}

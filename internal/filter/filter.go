// Package filter contiene el predicado de búsqueda compartido por las vistas:
// texto libre (case-insensitive) + filtros categóricos con centinela "all".
package filter

import "strings"

// All es el valor centinela que acepta cualquier categoría.
const All = "all"

// MatchText responde si query aparece (sin distinguir mayúsculas) en alguno de los campos.
// Query vacía acepta todo.
func MatchText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// MatchCategory compara por igualdad exacta, salvo que want sea vacío o All.
func MatchCategory[T ~string](want string, got T) bool {
	if IsAll(want) {
		return true
	}
	return strings.TrimSpace(want) == string(got)
}

// IsAll indica si el filtro categórico está inactivo.
func IsAll(want string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, All)
}

// Apply devuelve los elementos que cumplen keep, en el mismo orden.
// Nunca modifica items.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

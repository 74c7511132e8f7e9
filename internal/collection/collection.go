// Package collection implementa las mutaciones por reemplazo de lista completa
// que usan los repositorios in-memory: nunca se modifica el slice recibido.
package collection

// Append devuelve una copia de items con rec al final.
func Append[T any](items []T, rec T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, rec)
}

// UpdateWhere devuelve una copia donde los elementos que cumplen match se reemplazan por fn(elem).
// El resto se copia tal cual. Retorna también cuántos elementos cambiaron (0 = no-op).
func UpdateWhere[T any](items []T, match func(T) bool, fn func(T) T) ([]T, int) {
	out := make([]T, len(items))
	n := 0
	for i, it := range items {
		if match(it) {
			out[i] = fn(it)
			n++
			continue
		}
		out[i] = it
	}
	return out, n
}

// UpdateAll aplica fn a todos los elementos sobre una copia.
func UpdateAll[T any](items []T, fn func(T) T) []T {
	out, _ := UpdateWhere(items, func(T) bool { return true }, fn)
	return out
}

// Find devuelve el primer elemento que cumple match.
func Find[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

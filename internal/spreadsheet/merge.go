package spreadsheet

// Merge appends incoming after existing. It does not look for duplicate
// phones or IDs; the single-record create path is the only place patients
// are deduplicated.
func Merge[T any](existing, incoming []T) []T {
	out := make([]T, 0, len(existing)+len(incoming))
	out = append(out, existing...)
	return append(out, incoming...)
}

// Package seqs provides small generic sequence helpers driven by caller
// supplied closures. They are the kind of functions a standard algorithms
// library ships; writing them out shows there is no magic — each one is a
// loop plus a predicate or transform.
package seqs

// CountIf returns how many elements of s satisfy pred. The scan always
// covers the whole slice; since only the count is returned, the result is
// the same for any permutation of s.
func CountIf[T any](s []T, pred func(T) bool) int {
	count := 0
	for _, v := range s {
		if pred(v) {
			count++
		}
	}
	return count
}

// Filter returns the elements of s for which pred returns true, in order.
func Filter[T any](s []T, pred func(T) bool) []T {
	var out []T
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map transforms every element of s using f.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Contains reports whether v appears in s.
func Contains[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

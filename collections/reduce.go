package collections

// Reduce folds the values into a single result, left to right, starting
// from initial.
func Reduce[T any, R any](values []T, initial R, f func(acc R, value T) R) R {
	acc := initial
	for _, v := range values {
		acc = f(acc, v)
	}
	return acc
}

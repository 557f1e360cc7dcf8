package solver

type void struct{}

type set[T comparable] map[T]void

func Intersect[T comparable](a, b []T) (result []T) {
	var hash = make(set[T])
	for _, v := range a {
		hash[v] = void{}

	}
	for _, v := range b {
		if _, ok := hash[v]; ok {
			result = append(result, v)
		}
	}
	return
}

// Complement returns the elements of b missing from a.
func Complement[T comparable](a, b []T) (result []T) {
	var hash = make(set[T])
	for _, v := range a {
		hash[v] = void{}
	}
	for _, v := range b {
		if _, ok := hash[v]; !ok {
			result = append(result, v)
		}
	}
	return
}

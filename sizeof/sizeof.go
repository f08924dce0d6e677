package sizeof

import "unsafe"

// Slice is the footprint of a slice header plus its backing elements.
func Slice[T any](v []T) uint64 {
	return 24 + uint64(unsafe.Sizeof(*new(T)))*uint64(cap(v))
}

// Of is the in-place size of a value of type T.
func Of[T any]() uint64 {
	return uint64(unsafe.Sizeof(*new(T)))
}

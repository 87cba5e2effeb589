package arith

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Max returns the largest value representable by T.
func Max[T constraints.Integer]() T {
	var zero T
	if ^zero < zero {
		// signed: the maximum is every bit but the sign bit.
		return ^Min[T]()
	}
	return ^zero
}

// Min returns the smallest value representable by T.
func Min[T constraints.Integer]() T {
	var zero T
	if ^zero > zero {
		return zero
	}
	width := unsafe.Sizeof(zero) * 8
	return T(1) << (width - 1)
}

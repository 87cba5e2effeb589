package arith

import "golang.org/x/exp/constraints"

// Step describes one value visited by SafeAddFunc.
type Step[T constraints.Integer] struct {
	// Index is the position of the value in the argument list.
	Index int
	Value T

	// Accumulator before and after the value was visited. On Overflow,
	// After is the clamped maximum.
	Before T
	After  T

	Result Result
}

// SafeAdd adds values into sum, visiting them from the last argument to
// the first.
//
// If adding a value would exceed the maximum of T, sum is set to that
// maximum, the remaining (leftward) values are skipped and Overflow is
// returned. With no values, sum is left untouched and Success is returned.
//
// sum must not be nil.
func SafeAdd[T constraints.Integer](sum *T, values ...T) Result {
	return SafeAddFunc(sum, nil, values...)
}

// SafeAddFunc is SafeAdd with an observer called once for every visited
// value, in visit order. observe may be nil.
func SafeAddFunc[T constraints.Integer](sum *T, observe func(Step[T]), values ...T) Result {
	upper := Max[T]()

	for i := len(values) - 1; i >= 0; i-- {
		value := values[i]
		step := Step[T]{Index: i, Value: value, Before: *sum}

		// value > 0 keeps upper-value from wrapping for negative signed values.
		if value > 0 && *sum > upper-value {
			*sum = upper
			step.After, step.Result = upper, Overflow
			if observe != nil {
				observe(step)
			}
			return Overflow
		}

		*sum += value
		step.After, step.Result = *sum, Success
		if observe != nil {
			observe(step)
		}
	}

	return Success
}

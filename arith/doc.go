// Package arith provides overflow-aware integer accumulation.
//
// SafeAdd folds a list of values of one integer type into a caller-owned
// accumulator. Values are visited from the last to the first. The first
// value that would push the accumulator past the type's maximum clamps the
// accumulator to that maximum and stops the fold with an Overflow result.
//
// Only the upper bound is checked. Adding negative values never reports
// overflow, and an accumulator driven below the type's minimum wraps the
// way Go integer arithmetic does.
package arith

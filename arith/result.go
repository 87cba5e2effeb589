package arith

import "errors"

// ErrOverflow is returned by Result.Err for an Overflow result.
var ErrOverflow = errors.New("data overflow")

// Result is the outcome of a SafeAdd call.
type Result int

const (
	Success Result = iota
	Overflow
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Overflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Err converts the result into an error value, nil on Success.
func (r Result) Err() error {
	if r == Overflow {
		return ErrOverflow
	}
	return nil
}

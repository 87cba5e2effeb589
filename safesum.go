// Package safesum sums a fixed number of integers read from a stream with
// overflow detection.
package safesum

import (
	"errors"
	"io"

	"github.com/hnimtadd/safesum/arith"
	"github.com/hnimtadd/safesum/input"
	"github.com/hnimtadd/safesum/logger"
)

// DefaultOperands is the number of values read when Options.Operands is
// not set.
const DefaultOperands = 3

// Calculator reads a fixed number of int32 operands from a stream and folds
// them with arith.SafeAdd.
type Calculator struct {
	operands int
	observer func(arith.Step[int32])
	logger   logger.Logger
}

// Options configures a Calculator.
type Options struct {
	// Operands is the number of values to read. Zero or less means
	// DefaultOperands.
	Operands int

	// Observer, when set, sees every step of the fold.
	Observer func(arith.Step[int32])

	// Logger defaults to logger.DefaultLogger.
	Logger logger.Logger
}

// Outcome of one Run.
type Outcome struct {
	// Operands as extracted, in input order.
	Operands []int32
	// Sum is the accumulator after the fold, clamped on overflow.
	Sum    int32
	Result arith.Result
}

// New returns a Calculator for opts, filling in defaults.
func New(opts Options) *Calculator {
	operands := opts.Operands
	if operands <= 0 {
		operands = DefaultOperands
	}

	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}

	return &Calculator{
		operands: operands,
		observer: opts.Observer,
		logger:   log,
	}
}

// Run reads the operands from r and sums them starting from 0.
//
// Operands that cannot be extracted read as 0 (see input.Reader) and are
// only logged. The returned error is non-nil only when r itself fails.
func (c *Calculator) Run(r io.Reader) (Outcome, error) {
	values, err := input.NewReader(r).ReadInt32(c.operands)
	if err != nil {
		var extractErr *input.ExtractError
		if !errors.As(err, &extractErr) {
			c.logger.Error("reading operands failed", "error", err)
			return Outcome{Operands: values}, err
		}
		c.logger.Warn(
			"operand extraction failed, remaining operands read as 0",
			"index", extractErr.Index,
			"token", extractErr.Token,
			"error", extractErr.Err,
		)
	}

	return c.Sum(values...), nil
}

// Sum folds values starting from 0.
func (c *Calculator) Sum(values ...int32) Outcome {
	var sum int32
	result := arith.SafeAddFunc(&sum, c.observe, values...)

	if result == arith.Overflow {
		c.logger.Warn("sum overflowed, clamped to maximum", "operands", values, "sum", sum)
	} else {
		c.logger.Debug("sum computed", "operands", values, "sum", sum)
	}

	return Outcome{
		Operands: values,
		Sum:      sum,
		Result:   result,
	}
}

func (c *Calculator) observe(step arith.Step[int32]) {
	c.logger.Debug(
		"fold step",
		"index", step.Index,
		"value", step.Value,
		"before", step.Before,
		"after", step.After,
		"result", step.Result,
	)
	if c.observer != nil {
		c.observer(step)
	}
}

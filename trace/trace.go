// Package trace records the steps of a safe-add fold and renders them as a
// plain text table.
package trace

import (
	"fmt"
	"io"
	"strings"

	dw "github.com/mattn/go-runewidth"
	"golang.org/x/exp/constraints"

	"github.com/hnimtadd/safesum/arith"
)

var header = []string{"#", "value", "before", "after", "result"}

// columnGap is the number of spaces between columns.
const columnGap = 2

// Recorder collects steps. The zero value is ready to use.
type Recorder[T constraints.Integer] struct {
	steps []arith.Step[T]
}

// Observe appends step. Its signature matches the observer taken by
// arith.SafeAddFunc.
func (r *Recorder[T]) Observe(step arith.Step[T]) {
	r.steps = append(r.steps, step)
}

// Steps returns the recorded steps in visit order.
func (r *Recorder[T]) Steps() []arith.Step[T] {
	return r.steps
}

func (r *Recorder[T]) Reset() {
	r.steps = r.steps[:0]
}

// Render writes the recorded steps as a table with a header row. Numeric
// columns are right aligned.
func (r *Recorder[T]) Render(w io.Writer) error {
	rows := make([][]string, 0, len(r.steps)+1)
	rows = append(rows, header)
	for _, step := range r.steps {
		rows = append(rows, []string{
			fmt.Sprint(step.Index),
			fmt.Sprint(step.Value),
			fmt.Sprint(step.Before),
			fmt.Sprint(step.After),
			step.Result.String(),
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], dw.StringWidth(cell))
		}
	}

	var sb strings.Builder
	last := len(header) - 1
	for _, row := range rows {
		for col, cell := range row {
			switch {
			case col == last:
				// no trailing padding on the last column
				sb.WriteString(cell)
			case col == 0:
				sb.WriteString(dw.FillRight(cell, widths[col]))
			default:
				sb.WriteString(dw.FillLeft(cell, widths[col]))
			}
			if col != last {
				sb.WriteString(strings.Repeat(" ", columnGap))
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

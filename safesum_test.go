package safesum

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/safesum/arith"
	"github.com/hnimtadd/safesum/logger"
)

func TestCalculator_Run(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSum    int32
		wantResult arith.Result
	}{
		{name: "small", input: "1 2 3", wantSum: 6, wantResult: arith.Success},
		{name: "zeros", input: "0 0 0", wantSum: 0, wantResult: arith.Success},
		{name: "overflow", input: "2147483647 1 0", wantSum: math.MaxInt32, wantResult: arith.Overflow},
		{name: "negative", input: "-4 1 1", wantSum: -2, wantResult: arith.Success},
		{name: "malformed reads as zero", input: "5 x 9", wantSum: 5, wantResult: arith.Success},
		{name: "short input", input: "8", wantSum: 8, wantResult: arith.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New(Options{})
			outcome, err := calc.Run(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSum, outcome.Sum)
			assert.Equal(t, tt.wantResult, outcome.Result)
			assert.Len(t, outcome.Operands, DefaultOperands)
		})
	}
}

func TestCalculator_RunReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(Options{}).Run(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestNew_Defaults(t *testing.T) {
	calc := New(Options{})
	assert.Equal(t, DefaultOperands, calc.operands)
	assert.Same(t, logger.DefaultLogger, calc.logger)
}

func TestCalculator_Operands(t *testing.T) {
	calc := New(Options{Operands: 5})
	outcome, err := calc.Run(strings.NewReader("1 1 1 1 1 1"))
	require.NoError(t, err)
	assert.Equal(t, int32(5), outcome.Sum)
	assert.Equal(t, []int32{1, 1, 1, 1, 1}, outcome.Operands)
}

func TestCalculator_Observer(t *testing.T) {
	var indexes []int
	calc := New(Options{
		Observer: func(step arith.Step[int32]) {
			indexes = append(indexes, step.Index)
		},
	})

	outcome := calc.Sum(1, 2, 3)
	assert.Equal(t, int32(6), outcome.Sum)
	assert.Equal(t, []int{2, 1, 0}, indexes)
}

func TestCalculator_LogsExtractionFailure(t *testing.T) {
	var buf bytes.Buffer
	calc := New(Options{
		Logger: logger.New(logger.Options{Buffer: &buf, Level: logger.WarnLevel}),
	})

	_, err := calc.Run(strings.NewReader("1 oops"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "operand extraction failed")
	assert.Contains(t, buf.String(), "token=oops")
}

func TestCalculator_LogsOverflow(t *testing.T) {
	var buf bytes.Buffer
	calc := New(Options{
		Logger: logger.New(logger.Options{Buffer: &buf, Level: logger.WarnLevel}),
	})

	outcome := calc.Sum(math.MaxInt32, 1, 0)
	assert.Equal(t, arith.Overflow, outcome.Result)
	assert.Contains(t, buf.String(), "sum overflowed")
	assert.NotContains(t, buf.String(), "fold step", "debug records filtered at warn level")
}

// Package input extracts whitespace-separated integers from a byte stream.
//
// Extraction mirrors a chain of C++ "istream >> int" reads: a token that
// starts with an integer yields that integer and leaves the rest of the
// token for the next read, an out-of-range integer saturates to the type's
// bounds, and the first failure is sticky so every later value reads as 0.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxTokenLen bounds the part of a token kept for extraction. Longer tokens
// are truncated, which is enough for an oversized integer to saturate.
const maxTokenLen = 1024

var (
	ErrMalformed = errors.New("not a decimal integer")
	ErrRange     = errors.New("integer out of range")
)

// ExtractError reports the first value that could not be extracted.
type ExtractError struct {
	// Index of the value being read.
	Index int
	// Token is empty when the input ended.
	Token string
	// Err is ErrMalformed, ErrRange or io.EOF.
	Err error
}

func (e *ExtractError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("extract value %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("extract value %d from %q: %v", e.Index, e.Token, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

type Reader struct {
	scanner *bufio.Scanner

	// Unconsumed tail of the last token, e.g. "abc" after reading "12abc".
	pending string

	// First failure. Once set, every extraction yields 0.
	err error

	// Set while dropping the rest of a truncated token.
	skipping bool
}

// NewReader returns a Reader over r. A leading UTF-8 or UTF-16 byte order
// mark selects the decoding and is stripped; otherwise r is read as UTF-8.
func NewReader(r io.Reader) *Reader {
	decoded := transform.NewReader(r, textunicode.BOMOverride(textunicode.UTF8.NewDecoder()))

	reader := &Reader{scanner: bufio.NewScanner(decoded)}
	reader.scanner.Split(reader.scanWords)
	return reader
}

// scanWords is bufio.ScanWords except that a token longer than maxTokenLen
// is cut to its first maxTokenLen bytes and the remainder is discarded, so
// the scanner never fails with bufio.ErrTooLong.
func (r *Reader) scanWords(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	if r.skipping {
		i := bytes.IndexFunc(data, unicode.IsSpace)
		if i < 0 {
			return len(data), nil, nil
		}
		r.skipping = false
		start = i
	}

	advance, token, err := bufio.ScanWords(data[start:], atEOF)
	advance += start
	if err != nil || token != nil || atEOF {
		if len(token) > maxTokenLen {
			token = token[:maxTokenLen]
		}
		return advance, token, err
	}

	// ScanWords wants more data; advance is where the pending token starts.
	if len(data)-advance > maxTokenLen {
		r.skipping = true
		return len(data), data[advance : advance+maxTokenLen], nil
	}
	return advance, nil, nil
}

// ReadInt32 extracts n values. On failure the failing value and all values
// after it are 0, except that an out-of-range value is saturated. The
// returned error is an *ExtractError for extraction failures and a wrapped
// read error otherwise; values are returned in both cases.
func (r *Reader) ReadInt32(n int) ([]int32, error) {
	values := make([]int32, n)
	if r.err != nil {
		return values, r.err
	}

	for i := range values {
		value, err := r.extract(i)
		values[i] = value
		if err != nil {
			r.err = err
			return values, err
		}
	}
	return values, nil
}

func (r *Reader) extract(index int) (int32, error) {
	token := r.pending
	if token == "" {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return 0, fmt.Errorf("read value %d: %w", index, err)
			}
			return 0, &ExtractError{Index: index, Err: io.EOF}
		}
		token = r.scanner.Text()
	}

	digits := integerPrefix(token)
	if digits == "" {
		r.pending = ""
		return 0, &ExtractError{Index: index, Token: token, Err: ErrMalformed}
	}
	r.pending = token[len(digits):]

	value, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// ParseInt saturates to the int32 bounds.
			return int32(value), &ExtractError{Index: index, Token: digits, Err: ErrRange}
		}
		return 0, &ExtractError{Index: index, Token: digits, Err: ErrMalformed}
	}
	return int32(value), nil
}

// integerPrefix returns the leading [+-]?[0-9]+ of token, or "".
func integerPrefix(token string) string {
	end := 0
	if end < len(token) && (token[end] == '+' || token[end] == '-') {
		end++
	}

	start := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == start {
		return ""
	}
	return token[:end]
}

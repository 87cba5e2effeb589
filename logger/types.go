package logger

import (
	"fmt"
	"strings"
)

// Type selects the slog handler used for output.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

func (t Type) String() string {
	switch t {
	case TypeJSON:
		return "json"
	default:
		return "text"
	}
}

// ParseType maps "text" or "json" to its Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	default:
		return TypeText, fmt.Errorf("unknown log format %q", name)
	}
}

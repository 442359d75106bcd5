package localfile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MatchAll is the pattern stored for a directory location configured without one.
const MatchAll = ".*"

// Pattern is an optional regular expression restricting which directory
// entries belong to a DataLocation. The zero value is the absent pattern,
// which is distinct from an explicit MatchAll.
type Pattern struct {
	expr    string
	present bool
}

// NoPattern returns the absent pattern.
func NoPattern() Pattern {
	return Pattern{}
}

// PatternOf returns a present pattern holding expr. An empty expr is still
// present; it matches only empty names.
func PatternOf(expr string) Pattern {
	return Pattern{expr: expr, present: true}
}

// Get returns the expression and whether it is present.
func (p Pattern) Get() (string, bool) {
	return p.expr, p.present
}

// IsPresent reports whether an expression was supplied.
func (p Pattern) IsPresent() bool {
	return p.present
}

// OrElse returns the expression, or def when absent.
func (p Pattern) OrElse(def string) string {
	if !p.present {
		return def
	}
	return p.expr
}

// IsZero reports whether p is absent.
func (p Pattern) IsZero() bool {
	return !p.present
}

func (p Pattern) String() string {
	if !p.present {
		return "<none>"
	}
	return p.expr
}

// MarshalJSON encodes an absent pattern as null.
func (p Pattern) MarshalJSON() ([]byte, error) {
	if !p.present {
		return []byte("null"), nil
	}
	return json.Marshal(p.expr)
}

// UnmarshalJSON decodes null as the absent pattern.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = NoPattern()
		return nil
	}
	var expr string
	if err := json.Unmarshal(data, &expr); err != nil {
		return fmt.Errorf("decoding pattern: %w", err)
	}
	*p = PatternOf(expr)
	return nil
}

// MarshalText is used by text formats such as TOML. Absent patterns must be
// omitted by the caller (omitempty), text has no null.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.expr), nil
}

// UnmarshalText always yields a present pattern.
func (p *Pattern) UnmarshalText(text []byte) error {
	*p = PatternOf(string(text))
	return nil
}

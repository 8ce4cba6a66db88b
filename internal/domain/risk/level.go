package risk

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the categorical risk bucket stored on a record.
type Level string

// Risk levels
const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Levels lists every risk level, highest first
var Levels = []Level{LevelHigh, LevelMedium, LevelLow}

// IsValid reports whether l is a known risk level
func (l Level) IsValid() bool {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// Filter selects records by risk level. FilterAll matches everything.
type Filter string

// Risk filters
const (
	FilterAll    Filter = "all"
	FilterHigh   Filter = Filter(LevelHigh)
	FilterMedium Filter = Filter(LevelMedium)
	FilterLow    Filter = Filter(LevelLow)
)

// ErrInvalidFilter is returned for risk filters outside {all, high, medium, low}
var ErrInvalidFilter = errors.New("invalid risk filter")

// ParseFilter parses a risk filter. The empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FilterAll, nil
	}
	switch f {
	case FilterAll, FilterHigh, FilterMedium, FilterLow:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Matches uses exact categorical equality, never a threshold.
func (f Filter) Matches(l Level) bool {
	return f == FilterAll || f == "" || Level(f) == l
}

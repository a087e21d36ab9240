package utils

import (
    "strconv"
    "strings"
)

// ParseCount reads a count column value. Missing or non-numeric values
// become 0, fractional values are truncated, negatives are floored at 0.
func ParseCount(value string) int {
    value = strings.TrimSpace(value)
    if value == "" {
        return 0
    }

    if n, err := strconv.Atoi(value); err == nil {
        if n < 0 {
            return 0
        }
        return n
    }

    // Some sources export counts as floats ("3.0")
    f, err := strconv.ParseFloat(value, 64)
    if err != nil || f < 0 {
        return 0
    }
    return int(f)
}

// ParseHours reads an electricity-hours column value. Missing or
// non-numeric values become 0; negatives are floored at 0.
func ParseHours(value string) float64 {
    value = strings.TrimSpace(value)

    f, err := strconv.ParseFloat(value, 64)
    if err != nil || f < 0 {
        return 0
    }
    return f
}

// ParseCoordinate reads a lat/lon column value. Returns nil when the value
// does not parse, so callers can tell "absent" apart from zero.
func ParseCoordinate(value string) *float64 {
    value = strings.TrimSpace(value)
    if value == "" {
        return nil
    }

    f, err := strconv.ParseFloat(value, 64)
    if err != nil {
        return nil
    }
    return &f
}

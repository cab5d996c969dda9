package util

import (
	"fmt"
	"math"
	"strings"
)

// FormatValueFactor prints value with an SI prefix applied to unit, e.g. "3.900 nm".
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e6:
		return fmt.Sprintf("%.3e %s", value, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatMagnitude(value float64) string {
	abs := math.Abs(value)
	if abs >= 1000 || (abs < 0.001 && value != 0) {
		return fmt.Sprintf("%10.3e", value) // " 3.900e-14"
	}
	return fmt.Sprintf("%10.4g", value) // "     0.508"
}

// UnitOf returns the bracketed unit at the end of a parameter name,
// e.g. "m2.s-1" for "Electrolyte diffusivity [m2.s-1]", or "" if there is none.
func UnitOf(key string) string {
	key = strings.TrimSpace(key)
	if !strings.HasSuffix(key, "]") {
		return ""
	}
	open := strings.LastIndex(key, "[")
	if open < 0 {
		return ""
	}
	return key[open+1 : len(key)-1]
}

// FormatParameter prints a value with the unit taken from its parameter name.
// Compound units are not given a prefix.
func FormatParameter(key string, value float64) string {
	unit := UnitOf(key)
	if unit == "" {
		return strings.TrimSpace(FormatMagnitude(value))
	}
	if strings.ContainsAny(unit, ".-0123456789") {
		return strings.TrimSpace(FormatMagnitude(value)) + " " + unit
	}
	return FormatValueFactor(value, unit)
}

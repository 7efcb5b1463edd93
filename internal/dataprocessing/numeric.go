package dataprocessing

import (
	"strconv"
	"strings"

	"battpulse/pkg/contracts/domain"
)

// CoerceReal converts a heterogeneous metadata or measurement field into
// an optional real number. The switch is exhaustive over the shapes the
// source data takes: absent (nil), already-numeric, string-encoded
// (plain float or complex literal, optionally parenthesized), and
// anything else. Complex values are rectified: the real part is carried,
// the imaginary part discarded.
func CoerceReal(v any) domain.Float {
	switch x := v.(type) {
	case nil:
		return domain.Float{}
	case float64:
		return domain.NewFloat(x)
	case float32:
		return domain.NewFloat(float64(x))
	case int:
		return domain.NewFloat(float64(x))
	case int64:
		return domain.NewFloat(float64(x))
	case complex128:
		return domain.NewFloat(real(x))
	case string:
		return coerceString(x)
	default:
		return domain.Float{}
	}
}

func coerceString(s string) domain.Float {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "()")
	if s == "" {
		return domain.Float{}
	}

	// The dataset writes complex literals with a Python-style j suffix;
	// strconv wants i.
	lit := strings.ReplaceAll(strings.ReplaceAll(s, "j", "i"), "J", "i")
	c, err := strconv.ParseComplex(lit, 128)
	if err != nil {
		return domain.Float{}
	}
	return domain.NewFloat(real(c))
}

package dataprocessing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"battpulse/pkg/contracts/domain"
)

// ParseVectorTime parses a MATLAB-style datevec string of exactly six
// numeric fields, "[year month day hour minute second]", into an instant
// with microsecond resolution. The brackets are optional and the seconds
// field may carry a fractional part, which is rounded to the nearest
// microsecond. Anything else (wrong token count, unparseable field,
// calendar-invalid combination) yields a missing Time, never an error.
func ParseVectorTime(raw string) domain.Time {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "[]")
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return domain.Time{}
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return domain.Time{}
		}
		vals[i] = v
	}

	year := int(vals[0])
	month := int(vals[1])
	day := int(vals[2])
	hour := int(vals[3])
	minute := int(vals[4])
	sec := int(vals[5])
	micros := int(math.Round((vals[5] - float64(sec)) * 1e6))
	if micros == 1e6 {
		// A fractional part that rounds up to a full second carries over.
		sec++
		micros = 0
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, micros*1000, time.UTC)

	// time.Date normalizes out-of-range fields (month 13, Feb 30) instead
	// of failing; a component mismatch after construction means the input
	// was not a real calendar instant.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != sec {
		return domain.Time{}
	}
	return domain.NewTime(t)
}

package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	birth := time.Date(1960, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		atDate   time.Time
		expected int
	}{
		{"day before birthday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 64},
		{"on birthday", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 65},
		{"end of year", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), 65},
		{"start of year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Age(birth, tt.atDate))
		})
	}
}

func TestYearsUntil(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 10.0, YearsUntil(from, to), 0.02)
}

func TestYearBoundaries(t *testing.T) {
	d := time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 2025, EndOfYear(d).Year())
	assert.Equal(t, time.December, EndOfYear(d).Month())
	assert.Equal(t, 31, EndOfYear(d).Day())
	assert.Equal(t, time.January, BeginningOfYear(d).Month())
	assert.Equal(t, 1, BeginningOfYear(d).Day())
}

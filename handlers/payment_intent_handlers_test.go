package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  int64
	}{
		{"whole dollars", 25.00, 2500},
		{"fractional cents truncate", 10.999, 1099},
		{"zero falls back to minimum", 0, 50},
		{"negative falls back to minimum", -3, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, minorUnits(tc.price))
		})
	}
}

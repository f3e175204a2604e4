package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatARS(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{5, "$5"},
		{999, "$999"},
		{1000, "$1.000"},
		{1800, "$1.800"},
		{12500, "$12.500"},
		{300, "$300"},
		{1234567, "$1.234.567"},
		{-1500, "-$1.500"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatARS(tc.amount), "amount=%d", tc.amount)
	}
}

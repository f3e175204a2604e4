package utils

import (
	"strconv"
	"strings"
)

// FormatARS formats a whole-peso amount as a string like "$1.800".
// Uses dot as thousands separator and no decimals, matching how prices
// are shown in Argentina.
func FormatARS(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	// Group digits in threes from the right.
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

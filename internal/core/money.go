package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBaht renders an amount the way the chat replies always have:
// currency glyph, thousands-grouped integer part, fractional part kept only
// when non-zero (25000 → "฿25,000", 1733.4 → "฿1,733.4"). Report golden
// tests depend on this exact shape.
func FormatBaht(amount decimal.Decimal) string {
	s := amount.Round(2).String()

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if hasFrac {
		fracPart = strings.TrimRight(fracPart, "0")
		if fracPart != "" {
			b.WriteByte('.')
			b.WriteString(fracPart)
		}
	}
	return "฿" + b.String()
}

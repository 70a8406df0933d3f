package core_test

import (
	"testing"

	"backoffice-bot/internal/core"

	"github.com/shopspring/decimal"
)

func TestFormatBaht(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "฿0"},
		{in: "850", want: "฿850"},
		{in: "25000", want: "฿25,000"},
		{in: "113.4", want: "฿113.4"},
		{in: "1733.4", want: "฿1,733.4"},
		{in: "1733.40", want: "฿1,733.4"},
		{in: "1234567.89", want: "฿1,234,567.89"},
		{in: "1000000", want: "฿1,000,000"},
		{in: "-2500.5", want: "฿-2,500.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			if err != nil {
				t.Fatalf("bad test input %q: %v", tt.in, err)
			}
			if got := core.FormatBaht(d); got != tt.want {
				t.Errorf("FormatBaht(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

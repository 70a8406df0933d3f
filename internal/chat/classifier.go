// Package chat turns free-form staff messages (Thai/English mixed) into
// operations against the inventory and purchase collections, and renders the
// reply text. Classification is pure rule ordering, first match wins; there
// is no scoring and no model.
package chat

import (
	"regexp"
	"strings"

	"backoffice-bot/internal/core"
)

// Intent is the operation a message resolves to.
type Intent int

const (
	// IntentUnknown falls through every rule; the reply is the command help.
	IntentUnknown Intent = iota
	IntentPurchaseOrder
	IntentUnpaidBalance
	IntentSalesReport
	IntentLowStock
	IntentStockSearch
)

const (
	orderPrefix    = "ซื้อ"   // line 2 of a structured order: "buy <product>"
	quantityPrefix = "จำนวน" // line 3: "quantity <n>"
)

var (
	salesWindowWords = []string{"วันนี้", "สัปดาห์", "เดือน", "ปี"}
	searchPrefixes   = []string{"สต็อก", "check"}
	explicitDateRe   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// SalesCommand selects a report window. A nil SalesCommand on the parent
// Command means the user asked for sales without a window and gets the menu.
type SalesCommand struct {
	Period core.SalesPeriod
	// Day is set only when the message carried an explicit YYYY-MM-DD;
	// empty means "today", resolved by the interpreter at handling time.
	Day core.Date
}

// Command is the classified message with its extracted parameters.
type Command struct {
	Intent Intent

	// Structured purchase order (IntentPurchaseOrder).
	Buyer       string
	Product     string
	QuantityRaw string // validated by fulfillment, not here

	// Sales report (IntentSalesReport); nil → reply with the period menu.
	Sales *SalesCommand

	// Fuzzy search (IntentStockSearch); empty → reply with search guidance.
	Query string
}

// Classify applies the ordered rules from most to least specific. Later
// rules are unreachable once an earlier one matches.
func Classify(text string) Command {
	// Rule 1: structured purchase order — at least three non-empty lines,
	// second line starting with the buy prefix.
	lines := nonEmptyLines(text)
	if len(lines) >= 3 && strings.HasPrefix(lines[1], orderPrefix) {
		return Command{
			Intent:      IntentPurchaseOrder,
			Buyer:       lines[0],
			Product:     strings.TrimSpace(strings.TrimPrefix(lines[1], orderPrefix)),
			QuantityRaw: strings.TrimSpace(strings.TrimPrefix(lines[2], quantityPrefix)),
		}
	}

	// Rule 2: unpaid balance.
	if strings.Contains(text, "ยอดค้าง") {
		return Command{Intent: IntentUnpaidBalance}
	}

	// Rule 3: sales report.
	if cmd, ok := classifySales(text); ok {
		return cmd
	}

	// Rule 4: low-stock alert.
	if strings.Contains(text, "เช็คสินค้าใกล้หมด") || strings.Contains(text, "สินค้าใกล้หมด") {
		return Command{Intent: IntentLowStock}
	}

	return classifyFallback(text)
}

func classifySales(text string) (Command, bool) {
	trimmed := strings.TrimSpace(text)
	menuDigit := len(trimmed) == 1 && trimmed[0] >= '1' && trimmed[0] <= '4'
	hasSalesWord := strings.Contains(text, "ยอดขาย")
	hasWindowWord := false
	for _, w := range salesWindowWords {
		if strings.Contains(text, w) {
			hasWindowWord = true
			break
		}
	}
	if !hasSalesWord && !hasWindowWord && !menuDigit {
		return Command{}, false
	}

	// Explicit date anywhere in the message wins over menu words.
	if m := explicitDateRe.FindString(text); m != "" {
		if day, err := core.ParseDate(m); err == nil {
			return Command{Intent: IntentSalesReport, Sales: &SalesCommand{Period: core.PeriodDay, Day: day}}, true
		}
	}

	switch {
	case trimmed == "1" || strings.Contains(text, "วันนี้"):
		return Command{Intent: IntentSalesReport, Sales: &SalesCommand{Period: core.PeriodDay}}, true
	case trimmed == "2" || strings.Contains(text, "สัปดาห์"):
		return Command{Intent: IntentSalesReport, Sales: &SalesCommand{Period: core.PeriodLast7Days}}, true
	case trimmed == "3" || strings.Contains(text, "เดือน"):
		return Command{Intent: IntentSalesReport, Sales: &SalesCommand{Period: core.PeriodLast30Days}}, true
	case trimmed == "4" || strings.Contains(text, "ปี"):
		return Command{Intent: IntentSalesReport, Sales: &SalesCommand{Period: core.PeriodYearToDate}}, true
	}

	// Bare "ยอดขาย": reply with the period menu instead of guessing.
	return Command{Intent: IntentSalesReport, Sales: nil}, true
}

// classifyFallback treats everything else as a stock search, with two
// guards: a bare digit is ambiguous with menu selection and is rejected
// unless an explicit stock prefix was used, and an empty term after prefix
// stripping yields guidance instead of a full-catalog listing.
func classifyFallback(text string) Command {
	trimmed := strings.TrimSpace(text)
	query := trimmed
	prefixed := false
	for _, p := range searchPrefixes {
		if len(query) >= len(p) && strings.EqualFold(query[:len(p)], p) {
			query = strings.TrimSpace(query[len(p):])
			prefixed = true
			break
		}
	}

	if !prefixed && isBareDigit(trimmed) {
		return Command{Intent: IntentUnknown}
	}
	return Command{Intent: IntentStockSearch, Query: query}
}

func isBareDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"backoffice-bot/internal/app"
	"backoffice-bot/internal/core"

	"github.com/shopspring/decimal"
)

// handleNewQuotation runs an interactive quotation creation session.
func handleNewQuotation(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("Creating a quotation. Leave optional fields blank, type 'cancel' to abort.")

	buyer, ok := promptRequired(reader, "Buyer name")
	if !ok {
		return
	}
	taxID, ok := promptOptional(reader, "Buyer tax ID")
	if !ok {
		return
	}
	address, ok := promptOptional(reader, "Buyer address")
	if !ok {
		return
	}
	product, ok := promptRequired(reader, "Product name")
	if !ok {
		return
	}

	var quantity int
	for {
		raw, ok := promptRequired(reader, "Quantity")
		if !ok {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			fmt.Println("  Quantity must be a positive whole number.")
			continue
		}
		quantity = n
		break
	}

	price, ok := promptDecimal(reader, "Price per unit", false)
	if !ok {
		return
	}
	discount, ok := promptDecimal(reader, "Discount per unit", true)
	if !ok {
		return
	}
	special, ok := promptDecimal(reader, "Special discount % (0-100)", true)
	if !ok {
		return
	}

	seller, ok := promptOptional(reader, "Seller name")
	if !ok {
		return
	}
	salesPerson, ok := promptOptional(reader, "Sales person")
	if !ok {
		return
	}
	paymentTerm, ok := promptOptional(reader, "Payment term")
	if !ok {
		return
	}

	qt, err := svc.CreateQuotation(ctx, core.QuotationRequest{
		BuyerName:              buyer,
		BuyerTaxID:             taxID,
		BuyerAddress:           address,
		ProductName:            product,
		Quantity:               quantity,
		PricePerUnit:           price,
		DiscountPerUnit:        discount,
		SpecialDiscountPercent: special,
		SellerName:             seller,
		SalesPerson:            salesPerson,
		PaymentTerm:            paymentTerm,
	})
	if err != nil {
		fmt.Printf("Error creating quotation: %v\n", err)
		return
	}

	fmt.Printf("\nQuotation created (ID: %s, expires %s)\n", qt.ID, qt.ExpiryDate)
	fmt.Printf("  Subtotal:       %s\n", core.FormatBaht(qt.Subtotal))
	fmt.Printf("  After discount: %s\n", core.FormatBaht(qt.TotalAfterDiscount))
	fmt.Printf("  VAT 7%%:         %s\n", core.FormatBaht(qt.VatAmount))
	fmt.Printf("  Grand total:    %s\n", core.FormatBaht(qt.GrandTotal))
	fmt.Printf("Use '/convert %s' once the buyer accepts.\n", qt.ID)
}

// promptRequired re-asks until a non-empty value arrives. The second return
// is false when the user cancelled.
func promptRequired(reader *bufio.Reader, label string) (string, bool) {
	for {
		value, ok := promptOptional(reader, label)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		fmt.Printf("  %s is required.\n", label)
	}
}

func promptOptional(reader *bufio.Reader, label string) (string, bool) {
	fmt.Printf("  %s: ", label)
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if strings.ToLower(raw) == "cancel" {
		fmt.Println("Quotation creation cancelled.")
		return "", false
	}
	return raw, true
}

func promptDecimal(reader *bufio.Reader, label string, blankIsZero bool) (decimal.Decimal, bool) {
	for {
		raw, ok := promptOptional(reader, label)
		if !ok {
			return decimal.Zero, false
		}
		if raw == "" && blankIsZero {
			return decimal.Zero, true
		}
		value, err := decimal.NewFromString(raw)
		if err != nil || value.IsNegative() {
			fmt.Println("  Enter a non-negative number.")
			continue
		}
		return value, true
	}
}

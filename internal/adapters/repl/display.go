package repl

import (
	"fmt"
	"strings"

	"backoffice-bot/internal/core"
)

func printInventory(items []core.InventoryItem) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 76))
	fmt.Println("  INVENTORY")
	fmt.Println(strings.Repeat("=", 76))
	if len(items) == 0 {
		fmt.Println("  No items.")
		fmt.Println(strings.Repeat("=", 76))
		return
	}
	fmt.Printf("  %-14s %-28s %-10s %8s %12s\n", "SKU", "NAME", "BRAND", "QTY", "PRICE")
	fmt.Println(strings.Repeat("-", 76))
	for _, it := range items {
		fmt.Printf("  %-14s %-28s %-10s %8d %12s\n",
			it.SKU, it.ProductName, it.Brand, it.Quantity, it.Price.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 76))
}

func printPurchases(txs []core.PurchaseTransaction) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 86))
	fmt.Println("  PURCHASE TRANSACTIONS")
	fmt.Println(strings.Repeat("=", 86))
	if len(txs) == 0 {
		fmt.Println("  No transactions.")
		fmt.Println(strings.Repeat("=", 86))
		return
	}
	fmt.Printf("  %-18s %-18s %-24s %5s %12s  %-10s %s\n", "ID", "BUYER", "PRODUCT", "QTY", "NET", "DATE", "STATUS")
	fmt.Println(strings.Repeat("-", 86))
	for _, tx := range txs {
		fmt.Printf("  %-18s %-18s %-24s %5d %12s  %-10s %s\n",
			tx.ID, tx.BuyerName, tx.ProductName, tx.Quantity, tx.NetPrice.StringFixed(2), tx.OrderDate, tx.Status)
	}
	fmt.Println(strings.Repeat("=", 86))
}

func printQuotations(qts []core.Quotation) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 90))
	fmt.Println("  QUOTATIONS")
	fmt.Println(strings.Repeat("=", 90))
	if len(qts) == 0 {
		fmt.Println("  No quotations.")
		fmt.Println(strings.Repeat("=", 90))
		return
	}
	fmt.Printf("  %-12s %-18s %-24s %5s %12s  %-10s %s\n", "ID", "BUYER", "PRODUCT", "QTY", "GRAND", "EXPIRES", "STATUS")
	fmt.Println(strings.Repeat("-", 90))
	for _, qt := range qts {
		fmt.Printf("  %-12s %-18s %-24s %5d %12s  %-10s %s\n",
			qt.ID, qt.BuyerName, qt.ProductName, qt.Quantity, qt.Amount().StringFixed(2), qt.ExpiryDate, qt.Status)
	}
	fmt.Println(strings.Repeat("=", 90))
}

// Command seed resets the data files to a known demo state: the five-item
// inventory plus a handful of purchase transactions to report on.
package main

import (
	"context"
	"log"
	"path/filepath"

	"backoffice-bot/internal/config"
	"backoffice-bot/internal/core"
	"backoffice-bot/internal/store"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	inv := store.NewFile[core.InventoryItem](filepath.Join(cfg.DataDir, "inventory.json"), logger)
	poCol := store.NewFile[core.PurchaseTransaction](filepath.Join(cfg.DataDir, "purchases.json"), logger)
	qtCol := store.NewFile[core.Quotation](filepath.Join(cfg.DataDir, "quotations.json"), logger)

	if !inv.Replace(ctx, core.SeedInventory()) {
		logger.Fatal("seeding inventory failed")
	}
	if !poCol.Replace(ctx, seedPurchases()) {
		logger.Fatal("seeding purchases failed")
	}
	if !qtCol.Replace(ctx, nil) {
		logger.Fatal("resetting quotations failed")
	}

	logger.Info("seed complete", zap.String("dir", cfg.DataDir))
}

func seedPurchases() []core.PurchaseTransaction {
	return []core.PurchaseTransaction{
		{ID: "1", BuyerName: "John Doe", ProductName: "Wireless Headphones", Quantity: 2, NetPrice: decimal.NewFromInt(5990), OrderDate: "2025-12-12", Status: core.StatusPaid},
		{ID: "2", BuyerName: "Jane Smith", ProductName: "Mechanical Keyboard", Quantity: 1, NetPrice: decimal.NewFromInt(3500), OrderDate: "2025-12-13", Status: core.StatusUnpaid},
		{ID: "3", BuyerName: "Bob Johnson", ProductName: "Gaming Mouse", Quantity: 1, NetPrice: decimal.NewFromInt(1290), OrderDate: "2025-12-11", Status: core.StatusPaid},
		{ID: "4", BuyerName: "Alice Williams", ProductName: "27\" 4K Monitor", Quantity: 2, NetPrice: decimal.NewFromInt(25000), OrderDate: "2025-12-10", Status: core.StatusPaid},
		{ID: "5", BuyerName: "Charlie Brown", ProductName: "USB-C Hub", Quantity: 5, NetPrice: decimal.NewFromInt(4500), OrderDate: "2025-12-13", Status: core.StatusUnpaid},
	}
}

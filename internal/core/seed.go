package core

import "github.com/shopspring/decimal"

// SeedInventory is the demo stock the server writes the first time it runs
// against an empty inventory collection.
func SeedInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "1", SKU: "SNY-WH-001", ProductName: "Wireless Headphones", Brand: "Sony", Quantity: 50, InitialQuantity: 50, Price: decimal.NewFromInt(2995)},
		{ID: "2", SKU: "KYC-K2-002", ProductName: "Mechanical Keyboard", Brand: "Keychron", Quantity: 30, InitialQuantity: 30, Price: decimal.NewFromInt(3200)},
		{ID: "3", SKU: "LOG-G5-003", ProductName: "Gaming Mouse", Brand: "Logitech", Quantity: 100, InitialQuantity: 100, Price: decimal.NewFromInt(1150)},
		{ID: "4", SKU: "DEL-U27-004", ProductName: "27\" 4K Monitor", Brand: "Dell", Quantity: 15, InitialQuantity: 15, Price: decimal.NewFromInt(12500)},
		{ID: "5", SKU: "ANK-H7-005", ProductName: "USB-C Hub", Brand: "Anker", Quantity: 200, InitialQuantity: 200, Price: decimal.NewFromInt(850)},
	}
}

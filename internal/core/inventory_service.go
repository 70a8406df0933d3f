package core

import (
	"context"
	"strings"

	"backoffice-bot/internal/store"

	"go.uber.org/zap"
)

// FlatLowStockThreshold applies to items that never recorded a baseline
// quantity.
const FlatLowStockThreshold = 20

// InventoryService reads and searches the inventory collection. Every call
// re-reads the current collection; the service holds no state of its own.
type InventoryService struct {
	items  store.Collection[InventoryItem]
	logger *zap.Logger
}

func NewInventoryService(items store.Collection[InventoryItem], logger *zap.Logger) *InventoryService {
	return &InventoryService{items: items, logger: logger}
}

func (s *InventoryService) List(ctx context.Context) []InventoryItem {
	return s.items.Get(ctx)
}

func (s *InventoryService) Replace(ctx context.Context, items []InventoryItem) bool {
	return s.items.Replace(ctx, items)
}

// Search matches free text against each item's composite searchable string
// (name + brand + sku, lowercased). Every whitespace-separated token must be
// a substring for the item to match; there is no ranking.
func (s *InventoryService) Search(ctx context.Context, query string) []InventoryItem {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	var matches []InventoryItem
	for _, item := range s.items.Get(ctx) {
		composite := strings.ToLower(item.ProductName + " " + item.Brand + " " + item.SKU)
		ok := true
		for _, tok := range tokens {
			if !strings.Contains(composite, tok) {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, item)
		}
	}
	return matches
}

// LowStock returns items at or below their low-stock threshold: 20% of the
// recorded initial quantity, or the flat fallback when none was recorded.
func (s *InventoryService) LowStock(ctx context.Context) []InventoryItem {
	var low []InventoryItem
	for _, item := range s.items.Get(ctx) {
		if isLowStock(item) {
			low = append(low, item)
		}
	}
	return low
}

func isLowStock(item InventoryItem) bool {
	if item.InitialQuantity > 0 {
		// quantity <= initial*0.2, kept in integer arithmetic so the
		// boundary (100 → 20) is exact.
		return item.Quantity*5 <= item.InitialQuantity
	}
	return item.Quantity <= FlatLowStockThreshold
}

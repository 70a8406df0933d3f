package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice-bot/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidOrder is returned when the order request fails basic validation
// (empty product name or non-positive quantity).
var ErrInvalidOrder = errors.New("invalid order request")

// ErrProductNotFound is returned when no inventory item matches the ordered
// product name.
var ErrProductNotFound = errors.New("product not found")

// InsufficientStockError rejects an order that asks for more than is on hand.
type InsufficientStockError struct {
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d remaining", e.Remaining)
}

// SalesPeriod selects the window of a sales report.
type SalesPeriod int

const (
	PeriodDay SalesPeriod = iota
	PeriodLast7Days
	PeriodLast30Days
	PeriodYearToDate
)

// SalesQuery names a report window. Day is only consulted for PeriodDay.
type SalesQuery struct {
	Period SalesPeriod
	Day    Date
}

// UnpaidReport aggregates all transactions still marked Unpaid.
type UnpaidReport struct {
	Transactions []PurchaseTransaction
	Total        decimal.Decimal
}

// SalesReport aggregates transactions of any status inside a date window.
type SalesReport struct {
	Transactions []PurchaseTransaction
	Total        decimal.Decimal
}

// PurchaseService owns the purchase transaction collection and the
// stock-affecting operations against it. Order fulfillment touches two
// collections (inventory, then purchases) with no transaction spanning the
// two writes; the narrow inconsistency window is accepted for this
// single-operator, low-volume domain.
type PurchaseService struct {
	inventory *InventoryService
	purchases store.Collection[PurchaseTransaction]
	logger    *zap.Logger

	// Now is the clock used for order dates and generated ids. Tests
	// override it for deterministic windows.
	Now func() time.Time
}

func NewPurchaseService(inventory *InventoryService, purchases store.Collection[PurchaseTransaction], logger *zap.Logger) *PurchaseService {
	return &PurchaseService{
		inventory: inventory,
		purchases: purchases,
		logger:    logger,
		Now:       time.Now,
	}
}

func (s *PurchaseService) List(ctx context.Context) []PurchaseTransaction {
	return s.purchases.Get(ctx)
}

func (s *PurchaseService) Replace(ctx context.Context, txs []PurchaseTransaction) bool {
	return s.purchases.Replace(ctx, txs)
}

// CreateOrder fulfills a chat purchase order: it finds the product by
// case-insensitive exact name, decrements stock, and appends an Unpaid
// transaction priced at the current unit price × quantity. No mutation
// happens on any rejection path.
func (s *PurchaseService) CreateOrder(ctx context.Context, buyer, product string, quantity int) (*PurchaseTransaction, error) {
	if strings.TrimSpace(product) == "" || quantity <= 0 {
		return nil, ErrInvalidOrder
	}

	items := s.inventory.List(ctx)
	idx := -1
	want := strings.ToLower(strings.TrimSpace(product))
	for i, item := range items {
		if strings.ToLower(strings.TrimSpace(item.ProductName)) == want {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrProductNotFound
	}
	if items[idx].Quantity < quantity {
		return nil, &InsufficientStockError{Remaining: items[idx].Quantity}
	}

	items[idx].Quantity -= quantity
	if !s.inventory.Replace(ctx, items) {
		s.logger.Warn("inventory not persisted after order", zap.String("product", items[idx].ProductName))
	}

	now := s.Now()
	tx := PurchaseTransaction{
		ID:          fmt.Sprintf("PO-%d", now.UnixMilli()),
		BuyerName:   strings.TrimSpace(buyer),
		ProductName: items[idx].ProductName,
		Quantity:    quantity,
		NetPrice:    items[idx].Price.Mul(decimal.NewFromInt(int64(quantity))),
		OrderDate:   NewDate(now),
		Status:      StatusUnpaid,
	}

	txs := append(s.purchases.Get(ctx), tx)
	if !s.purchases.Replace(ctx, txs) {
		s.logger.Warn("purchase transaction not persisted", zap.String("id", tx.ID))
	}
	return &tx, nil
}

// Unpaid builds the outstanding-balance report.
func (s *PurchaseService) Unpaid(ctx context.Context) *UnpaidReport {
	report := &UnpaidReport{}
	for _, tx := range s.purchases.Get(ctx) {
		if tx.Status == StatusUnpaid {
			report.Transactions = append(report.Transactions, tx)
			report.Total = report.Total.Add(tx.NetPrice)
		}
	}
	return report
}

// Sales filters transactions of any status by order date. Ranges are
// inclusive of their boundary day; comparison is lexicographic, which is
// chronological for canonical dates.
func (s *PurchaseService) Sales(ctx context.Context, q SalesQuery, today Date) *SalesReport {
	var from Date
	switch q.Period {
	case PeriodLast7Days:
		from = today.AddDays(-7)
	case PeriodLast30Days:
		from = today.AddDays(-30)
	case PeriodYearToDate:
		from = today.StartOfYear()
	}

	report := &SalesReport{}
	for _, tx := range s.purchases.Get(ctx) {
		if q.Period == PeriodDay {
			if tx.OrderDate != q.Day {
				continue
			}
		} else if tx.OrderDate < from {
			continue
		}
		report.Transactions = append(report.Transactions, tx)
		report.Total = report.Total.Add(tx.NetPrice)
	}
	return report
}

// Import appends externally prepared transactions and decrements matching
// stock, returning one human-readable log line per input row. Stock is
// allowed to go negative — the mismatch is reported, not corrected.
func (s *PurchaseService) Import(ctx context.Context, txs []PurchaseTransaction) []string {
	items := s.inventory.List(ctx)
	logs := make([]string, 0, len(txs))

	for i := range txs {
		if txs[i].ID == "" {
			txs[i].ID = uuid.NewString()
		}
		idx := -1
		want := strings.ToLower(strings.TrimSpace(txs[i].ProductName))
		for j, item := range items {
			if strings.ToLower(strings.TrimSpace(item.ProductName)) == want {
				idx = j
				break
			}
		}
		if idx == -1 {
			logs = append(logs, fmt.Sprintf("Product not found in inventory: %s", txs[i].ProductName))
			continue
		}
		items[idx].Quantity -= txs[i].Quantity
		if items[idx].Quantity < 0 {
			s.logger.Warn("stock went negative on import",
				zap.String("product", items[idx].ProductName),
				zap.Int("quantity", items[idx].Quantity))
			logs = append(logs, fmt.Sprintf("Warning: Stock negative for %s", items[idx].ProductName))
		} else {
			logs = append(logs, fmt.Sprintf("Decreased stock for %s: -%d", items[idx].ProductName, txs[i].Quantity))
		}
	}

	s.inventory.Replace(ctx, items)
	s.purchases.Replace(ctx, append(s.purchases.Get(ctx), txs...))
	return logs
}

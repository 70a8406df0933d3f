package core_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"backoffice-bot/internal/core"
	"backoffice-bot/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func setupPurchaseTest(t *testing.T, items []core.InventoryItem, txs []core.PurchaseTransaction) (*core.PurchaseService, *store.Memory[core.InventoryItem], *store.Memory[core.PurchaseTransaction]) {
	t.Helper()
	invCol := store.NewMemory(items...)
	poCol := store.NewMemory(txs...)
	inventory := core.NewInventoryService(invCol, zap.NewNop())
	svc := core.NewPurchaseService(inventory, poCol, zap.NewNop())
	svc.Now = func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) }
	return svc, invCol, poCol
}

func TestCreateOrderDecrementsStockExactly(t *testing.T) {
	svc, invCol, poCol := setupPurchaseTest(t, []core.InventoryItem{
		{ID: "1", ProductName: "Monitor Dell", Quantity: 15, Price: decimal.NewFromInt(12500)},
	}, nil)
	ctx := context.Background()

	tx, err := svc.CreateOrder(ctx, "คุณนิรชา", "monitor dell", 2)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if got := invCol.Get(ctx)[0].Quantity; got != 13 {
		t.Errorf("stock after order = %d, want 13", got)
	}
	txs := poCol.Get(ctx)
	if len(txs) != 1 {
		t.Fatalf("expected exactly 1 transaction, got %d", len(txs))
	}
	if !tx.NetPrice.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("netPrice = %s, want 25000", tx.NetPrice)
	}
	if tx.Status != core.StatusUnpaid {
		t.Errorf("status = %s, want Unpaid", tx.Status)
	}
	if tx.OrderDate != "2026-08-29" {
		t.Errorf("orderDate = %s, want 2026-08-29", tx.OrderDate)
	}
	if tx.ProductName != "Monitor Dell" {
		t.Errorf("productName = %q, want canonical inventory name", tx.ProductName)
	}
}

func TestCreateOrderInsufficientStockLeavesStateUntouched(t *testing.T) {
	items := []core.InventoryItem{
		{ID: "1", ProductName: "Monitor Dell", Quantity: 3, Price: decimal.NewFromInt(12500)},
	}
	svc, invCol, poCol := setupPurchaseTest(t, items, nil)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, "somchai", "Monitor Dell", 5)
	var insufficient *core.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Remaining != 3 {
		t.Errorf("Remaining = %d, want 3", insufficient.Remaining)
	}
	if got := invCol.Get(ctx)[0].Quantity; got != 3 {
		t.Errorf("stock mutated on rejection: %d", got)
	}
	if got := len(poCol.Get(ctx)); got != 0 {
		t.Errorf("transactions appended on rejection: %d", got)
	}
}

func TestCreateOrderRejections(t *testing.T) {
	svc, _, _ := setupPurchaseTest(t, []core.InventoryItem{
		{ID: "1", ProductName: "Monitor Dell", Quantity: 3, Price: decimal.NewFromInt(12500)},
	}, nil)
	ctx := context.Background()

	if _, err := svc.CreateOrder(ctx, "somchai", "Projector", 1); !errors.Is(err, core.ErrProductNotFound) {
		t.Errorf("unknown product: got %v, want ErrProductNotFound", err)
	}
	if _, err := svc.CreateOrder(ctx, "somchai", "", 1); !errors.Is(err, core.ErrInvalidOrder) {
		t.Errorf("empty product: got %v, want ErrInvalidOrder", err)
	}
	if _, err := svc.CreateOrder(ctx, "somchai", "Monitor Dell", 0); !errors.Is(err, core.ErrInvalidOrder) {
		t.Errorf("zero quantity: got %v, want ErrInvalidOrder", err)
	}
	if _, err := svc.CreateOrder(ctx, "somchai", "Monitor Dell", -4); !errors.Is(err, core.ErrInvalidOrder) {
		t.Errorf("negative quantity: got %v, want ErrInvalidOrder", err)
	}
}

func TestUnpaidReportIsIdempotent(t *testing.T) {
	svc, _, _ := setupPurchaseTest(t, nil, []core.PurchaseTransaction{
		{ID: "1", ProductName: "A", BuyerName: "x", NetPrice: decimal.NewFromInt(100), Status: core.StatusUnpaid},
		{ID: "2", ProductName: "B", BuyerName: "y", NetPrice: decimal.NewFromInt(250), Status: core.StatusPaid},
		{ID: "3", ProductName: "C", BuyerName: "z", NetPrice: decimal.NewFromInt(50), Status: core.StatusUnpaid},
	})
	ctx := context.Background()

	first := svc.Unpaid(ctx)
	second := svc.Unpaid(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("unpaid report not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if len(first.Transactions) != 2 {
		t.Errorf("unpaid count = %d, want 2", len(first.Transactions))
	}
	if !first.Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("unpaid total = %s, want 150", first.Total)
	}
}

func TestSalesWindows(t *testing.T) {
	today := core.Date("2026-08-29")
	txs := []core.PurchaseTransaction{
		{ID: "1", ProductName: "today", NetPrice: decimal.NewFromInt(1), OrderDate: "2026-08-29", Status: core.StatusPaid},
		{ID: "2", ProductName: "exactly 7 days ago", NetPrice: decimal.NewFromInt(2), OrderDate: "2026-08-22", Status: core.StatusUnpaid},
		{ID: "3", ProductName: "8 days ago", NetPrice: decimal.NewFromInt(4), OrderDate: "2026-08-21", Status: core.StatusPaid},
		{ID: "4", ProductName: "30 days ago", NetPrice: decimal.NewFromInt(8), OrderDate: "2026-07-30", Status: core.StatusPaid},
		{ID: "5", ProductName: "new year's day", NetPrice: decimal.NewFromInt(16), OrderDate: "2026-01-01", Status: core.StatusPaid},
		{ID: "6", ProductName: "last year", NetPrice: decimal.NewFromInt(32), OrderDate: "2025-12-31", Status: core.StatusPaid},
	}

	tests := []struct {
		name      string
		query     core.SalesQuery
		wantCount int
		wantTotal int64
	}{
		{name: "single day", query: core.SalesQuery{Period: core.PeriodDay, Day: "2026-08-29"}, wantCount: 1, wantTotal: 1},
		{name: "explicit past day", query: core.SalesQuery{Period: core.PeriodDay, Day: "2026-08-21"}, wantCount: 1, wantTotal: 4},
		{name: "last 7 days includes boundary", query: core.SalesQuery{Period: core.PeriodLast7Days}, wantCount: 2, wantTotal: 3},
		{name: "last 30 days includes boundary", query: core.SalesQuery{Period: core.PeriodLast30Days}, wantCount: 4, wantTotal: 15},
		{name: "year to date", query: core.SalesQuery{Period: core.PeriodYearToDate}, wantCount: 5, wantTotal: 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := setupPurchaseTest(t, nil, txs)
			report := svc.Sales(context.Background(), tt.query, today)
			if len(report.Transactions) != tt.wantCount {
				t.Errorf("count = %d, want %d", len(report.Transactions), tt.wantCount)
			}
			if !report.Total.Equal(decimal.NewFromInt(tt.wantTotal)) {
				t.Errorf("total = %s, want %d", report.Total, tt.wantTotal)
			}
		})
	}
}

func TestImportDecrementsAndAllowsNegative(t *testing.T) {
	svc, invCol, poCol := setupPurchaseTest(t, []core.InventoryItem{
		{ID: "1", ProductName: "USB-C Hub", Quantity: 10, Price: decimal.NewFromInt(850)},
	}, nil)
	ctx := context.Background()

	logs := svc.Import(ctx, []core.PurchaseTransaction{
		{BuyerName: "a", ProductName: "USB-C Hub", Quantity: 4, NetPrice: decimal.NewFromInt(3400), OrderDate: "2026-08-29", Status: core.StatusUnpaid},
		{BuyerName: "b", ProductName: "usb-c hub", Quantity: 9, NetPrice: decimal.NewFromInt(7650), OrderDate: "2026-08-29", Status: core.StatusUnpaid},
		{BuyerName: "c", ProductName: "Projector", Quantity: 1, NetPrice: decimal.NewFromInt(900), OrderDate: "2026-08-29", Status: core.StatusUnpaid},
	})

	wantLogs := []string{
		"Decreased stock for USB-C Hub: -4",
		"Warning: Stock negative for USB-C Hub",
		"Product not found in inventory: Projector",
	}
	if !reflect.DeepEqual(logs, wantLogs) {
		t.Errorf("logs = %v, want %v", logs, wantLogs)
	}

	// Negative stock is allowed and preserved, not clamped.
	if got := invCol.Get(ctx)[0].Quantity; got != -3 {
		t.Errorf("stock after import = %d, want -3", got)
	}

	txs := poCol.Get(ctx)
	if len(txs) != 3 {
		t.Fatalf("expected all 3 rows appended, got %d", len(txs))
	}
	for _, tx := range txs {
		if tx.ID == "" {
			t.Errorf("imported row missing generated id: %+v", tx)
		}
	}
}

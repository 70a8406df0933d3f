package chat_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice-bot/internal/chat"
	"backoffice-bot/internal/core"
	"backoffice-bot/internal/store"
)

type interpreterFixture struct {
	interp    *chat.Interpreter
	inventory *store.Memory[core.InventoryItem]
	purchases *store.Memory[core.PurchaseTransaction]
}

func setupInterpreter(t *testing.T, items []core.InventoryItem, txs []core.PurchaseTransaction) *interpreterFixture {
	t.Helper()
	logger := zap.NewNop()
	invStore := store.NewMemory(items...)
	txStore := store.NewMemory(txs...)
	inv := core.NewInventoryService(invStore, logger)
	purch := core.NewPurchaseService(inv, txStore, logger)
	purch.Now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	interp := chat.NewInterpreter(inv, purch, logger)
	interp.Now = purch.Now
	return &interpreterFixture{interp: interp, inventory: invStore, purchases: txStore}
}

func TestHandleStructuredOrder(t *testing.T) {
	fx := setupInterpreter(t, []core.InventoryItem{
		{ID: "1", SKU: "MON-DELL-27", ProductName: "Monitor Dell", Brand: "Dell", Quantity: 15, Price: decimal.NewFromInt(12500)},
	}, nil)
	ctx := context.Background()

	reply := fx.interp.Handle(ctx, "คุณนิรชา\nซื้อ Monitor Dell\nจำนวน 2")

	if !strings.Contains(reply, "✅ รับออเดอร์เรียบร้อยครับ") {
		t.Fatalf("reply is not a confirmation:\n%s", reply)
	}
	if !strings.Contains(reply, "25,000") {
		t.Errorf("reply should quote the ฿25,000 total:\n%s", reply)
	}
	if !strings.Contains(reply, "คุณนิรชา") || !strings.Contains(reply, "Monitor Dell") {
		t.Errorf("reply should echo buyer and product:\n%s", reply)
	}

	items := fx.inventory.Get(ctx)
	if items[0].Quantity != 13 {
		t.Errorf("stock after order = %d, want 13", items[0].Quantity)
	}
	txs := fx.purchases.Get(ctx)
	if len(txs) != 1 {
		t.Fatalf("recorded %d transactions, want 1", len(txs))
	}
	if !txs[0].NetPrice.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("netPrice = %s, want 25000", txs[0].NetPrice)
	}
	if txs[0].Status != core.StatusUnpaid {
		t.Errorf("status = %q, want unpaid", txs[0].Status)
	}
}

func TestHandleOrderErrors(t *testing.T) {
	items := []core.InventoryItem{
		{ID: "1", ProductName: "Monitor Dell", Quantity: 3, Price: decimal.NewFromInt(12500)},
	}
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "non-numeric quantity", text: "สมชาย\nซื้อ Monitor Dell\nจำนวน มาก", want: "⚠️ รูปแบบคำสั่งซื้อไม่ถูกต้องครับ"},
		{name: "zero quantity", text: "สมชาย\nซื้อ Monitor Dell\nจำนวน 0", want: "⚠️ รูปแบบคำสั่งซื้อไม่ถูกต้องครับ"},
		{name: "unknown product", text: "สมชาย\nซื้อ Keyboard XYZ\nจำนวน 1", want: "❌ ไม่พบสินค้า \"Keyboard XYZ\" ในระบบครับ"},
		{name: "insufficient stock reports remaining", text: "สมชาย\nซื้อ Monitor Dell\nจำนวน 5", want: "❌ สต็อกไม่พอครับ (เหลือ 3 ชิ้น)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupInterpreter(t, items, nil)
			reply := fx.interp.Handle(context.Background(), tt.text)
			if !strings.Contains(reply, tt.want) {
				t.Errorf("reply = %q, want it to contain %q", reply, tt.want)
			}
			if got := len(fx.purchases.Get(context.Background())); got != 0 {
				t.Errorf("failed order recorded %d transactions", got)
			}
		})
	}
}

func TestHandleUnpaid(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		fx := setupInterpreter(t, nil, []core.PurchaseTransaction{
			{ID: "a", ProductName: "Hub", NetPrice: decimal.NewFromInt(850), Status: core.StatusPaid},
		})
		if reply := fx.interp.Handle(ctx, "ยอดค้าง"); reply != "ไม่มียอดค้างชำระครับ ✨" {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("listing with total", func(t *testing.T) {
		fx := setupInterpreter(t, nil, []core.PurchaseTransaction{
			{ID: "a", BuyerName: "John", ProductName: "Hub", NetPrice: decimal.NewFromInt(850), Status: core.StatusUnpaid},
			{ID: "b", BuyerName: "Jane", ProductName: "Monitor", NetPrice: decimal.NewFromInt(12500), Status: core.StatusUnpaid},
			{ID: "c", BuyerName: "Joe", ProductName: "Mouse", NetPrice: decimal.NewFromInt(1150), Status: core.StatusPaid},
		})
		reply := fx.interp.Handle(ctx, "ยอดค้าง")
		if !strings.Contains(reply, "📊 สรุปยอดค้างชำระ") {
			t.Fatalf("missing header:\n%s", reply)
		}
		for _, want := range []string{"1. Hub (฿850) - John", "2. Monitor (฿12,500) - Jane", "รวมทั้งหมด: ฿13,350"} {
			if !strings.Contains(reply, want) {
				t.Errorf("reply missing %q:\n%s", want, reply)
			}
		}
		if strings.Contains(reply, "Mouse") {
			t.Errorf("paid transaction leaked into unpaid report:\n%s", reply)
		}
	})
}

func TestHandleSales(t *testing.T) {
	ctx := context.Background()
	txs := []core.PurchaseTransaction{
		{ID: "a", ProductName: "Hub", NetPrice: decimal.NewFromInt(850), OrderDate: "2026-08-29", Status: core.StatusPaid},
		{ID: "b", ProductName: "Monitor", NetPrice: decimal.NewFromInt(12500), OrderDate: "2026-08-25", Status: core.StatusUnpaid},
		{ID: "c", ProductName: "Keyboard", NetPrice: decimal.NewFromInt(3200), OrderDate: "2026-01-10", Status: core.StatusPaid},
	}

	t.Run("bare keyword shows menu", func(t *testing.T) {
		fx := setupInterpreter(t, nil, txs)
		reply := fx.interp.Handle(ctx, "ยอดขาย")
		if !strings.Contains(reply, "📈 เลือกช่วงเวลายอดขาย") {
			t.Errorf("reply = %q, want the period menu", reply)
		}
	})

	t.Run("today", func(t *testing.T) {
		fx := setupInterpreter(t, nil, txs)
		reply := fx.interp.Handle(ctx, "ยอดขายวันนี้")
		if !strings.Contains(reply, "📅 ยอดขายวันที่ 2026-08-29") {
			t.Fatalf("missing header:\n%s", reply)
		}
		if !strings.Contains(reply, "รวมยอดขาย: ฿850") {
			t.Errorf("total should cover only today:\n%s", reply)
		}
		if strings.Contains(reply, "Monitor") {
			t.Errorf("older transaction leaked into day report:\n%s", reply)
		}
	})

	t.Run("last 7 days via menu digit", func(t *testing.T) {
		fx := setupInterpreter(t, nil, txs)
		reply := fx.interp.Handle(ctx, "2")
		if !strings.Contains(reply, "📅 ยอดขาย7 วันล่าสุด") {
			t.Fatalf("missing header:\n%s", reply)
		}
		if !strings.Contains(reply, "รวมยอดขาย: ฿13,350") {
			t.Errorf("7-day window should include Aug 25 and Aug 29:\n%s", reply)
		}
	})

	t.Run("year to date", func(t *testing.T) {
		fx := setupInterpreter(t, nil, txs)
		reply := fx.interp.Handle(ctx, "ยอดขายปีนี้")
		if !strings.Contains(reply, "รวมยอดขาย: ฿16,550") {
			t.Errorf("year-to-date should include all three:\n%s", reply)
		}
	})

	t.Run("explicit date with no sales", func(t *testing.T) {
		fx := setupInterpreter(t, nil, txs)
		reply := fx.interp.Handle(ctx, "ยอดขาย 2026-03-03")
		if reply != "ไม่พบยอดขายสำหรับวันที่ 2026-03-03 ครับ" {
			t.Errorf("reply = %q", reply)
		}
	})
}

func TestHandleLowStock(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing low", func(t *testing.T) {
		fx := setupInterpreter(t, []core.InventoryItem{
			{ID: "1", ProductName: "Hub", Quantity: 40, InitialQuantity: 50},
		}, nil)
		if reply := fx.interp.Handle(ctx, "เช็คสินค้าใกล้หมด"); reply != "✅ สต็อกสินค้ายังไม่ใกล้หมดครับ" {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("lists low items with baselines", func(t *testing.T) {
		fx := setupInterpreter(t, []core.InventoryItem{
			{ID: "1", ProductName: "Hub", Quantity: 10, InitialQuantity: 50},
			{ID: "2", ProductName: "Monitor", Quantity: 40, InitialQuantity: 50},
			{ID: "3", ProductName: "Cable", Quantity: 8},
		}, nil)
		reply := fx.interp.Handle(ctx, "สินค้าใกล้หมด")
		if !strings.Contains(reply, "⚠️ สินค้าใกล้หมด") {
			t.Fatalf("missing header:\n%s", reply)
		}
		if !strings.Contains(reply, "Hub เหลือ 10/50") {
			t.Errorf("missing ratio line:\n%s", reply)
		}
		if !strings.Contains(reply, "Cable เหลือ 8") {
			t.Errorf("missing flat-threshold line:\n%s", reply)
		}
		if strings.Contains(reply, "Monitor") {
			t.Errorf("healthy item listed:\n%s", reply)
		}
	})
}

func TestHandleSearch(t *testing.T) {
	ctx := context.Background()
	items := []core.InventoryItem{
		{ID: "1", SKU: "MON-DELL-27", ProductName: "Monitor Dell UltraSharp", Brand: "Dell", Quantity: 15, Price: decimal.NewFromInt(12500)},
		{ID: "2", SKU: "KB-KCHRON", ProductName: "Keychron K2 Keyboard", Brand: "Keychron", Quantity: 8, Price: decimal.NewFromInt(3200)},
	}

	t.Run("single match shows detail card", func(t *testing.T) {
		fx := setupInterpreter(t, items, nil)
		reply := fx.interp.Handle(ctx, "monitor dell")
		for _, want := range []string{"🔍 Monitor Dell UltraSharp", "SKU: MON-DELL-27", "คงเหลือ: 15 ชิ้น", "ราคา: ฿12,500"} {
			if !strings.Contains(reply, want) {
				t.Errorf("reply missing %q:\n%s", want, reply)
			}
		}
	})

	t.Run("prefix is stripped before matching", func(t *testing.T) {
		fx := setupInterpreter(t, items, nil)
		reply := fx.interp.Handle(ctx, "สต็อก keychron")
		if !strings.Contains(reply, "Keychron K2 Keyboard") {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("no match", func(t *testing.T) {
		fx := setupInterpreter(t, items, nil)
		if reply := fx.interp.Handle(ctx, "printer"); reply != "❌ ไม่พบสินค้า \"printer\" ครับ" {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("empty query gets guidance", func(t *testing.T) {
		fx := setupInterpreter(t, items, nil)
		reply := fx.interp.Handle(ctx, "สต็อก")
		if !strings.Contains(reply, "พิมพ์ชื่อสินค้าที่ต้องการค้นหา") {
			t.Errorf("reply = %q", reply)
		}
	})
}

func TestHandleUnknown(t *testing.T) {
	fx := setupInterpreter(t, nil, nil)
	reply := fx.interp.Handle(context.Background(), "9")
	if !strings.Contains(reply, "ผมไม่เข้าใจคำสั่งครับ") {
		t.Errorf("reply = %q, want the help text", reply)
	}
}

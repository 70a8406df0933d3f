package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"backoffice-bot/internal/core"

	"go.uber.org/zap"
)

const (
	maxSalesLines  = 10
	maxSearchLines = 5
)

// Interpreter routes classified commands to the core services and renders
// the Thai reply. Every input — recognized or not — yields a reply string;
// the interpreter never surfaces an error to the chat user.
type Interpreter struct {
	inventory *core.InventoryService
	purchases *core.PurchaseService
	logger    *zap.Logger

	// Now supplies "today" for the sales windows; tests pin it.
	Now func() time.Time
}

func NewInterpreter(inventory *core.InventoryService, purchases *core.PurchaseService, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		inventory: inventory,
		purchases: purchases,
		logger:    logger,
		Now:       time.Now,
	}
}

// Handle interprets one message and returns the reply text.
func (it *Interpreter) Handle(ctx context.Context, text string) string {
	cmd := Classify(text)

	switch cmd.Intent {
	case IntentPurchaseOrder:
		return it.handleOrder(ctx, cmd)
	case IntentUnpaidBalance:
		return renderUnpaid(it.purchases.Unpaid(ctx))
	case IntentSalesReport:
		return it.handleSales(ctx, cmd.Sales)
	case IntentLowStock:
		return renderLowStock(it.inventory.LowStock(ctx))
	case IntentStockSearch:
		if cmd.Query == "" {
			return msgSearchGuidance
		}
		return renderSearch(cmd.Query, it.inventory.Search(ctx, cmd.Query))
	default:
		return msgHelp
	}
}

func (it *Interpreter) handleOrder(ctx context.Context, cmd Command) string {
	qty, err := strconv.Atoi(cmd.QuantityRaw)
	if err != nil || qty <= 0 || cmd.Product == "" {
		return msgOrderFormat
	}

	tx, err := it.purchases.CreateOrder(ctx, cmd.Buyer, cmd.Product, qty)
	if err != nil {
		var insufficient *core.InsufficientStockError
		switch {
		case errors.Is(err, core.ErrInvalidOrder):
			return msgOrderFormat
		case errors.Is(err, core.ErrProductNotFound):
			return fmt.Sprintf("❌ ไม่พบสินค้า \"%s\" ในระบบครับ", cmd.Product)
		case errors.As(err, &insufficient):
			return fmt.Sprintf("❌ สต็อกไม่พอครับ (เหลือ %d ชิ้น)", insufficient.Remaining)
		default:
			it.logger.Error("order fulfillment failed", zap.Error(err))
			return msgOrderFormat
		}
	}

	return fmt.Sprintf("✅ รับออเดอร์เรียบร้อยครับ\nลูกค้า: %s\nสินค้า: %s\nจำนวน: %d\nยอดรวม: %s\nสถานะ: %s",
		tx.BuyerName, tx.ProductName, tx.Quantity, core.FormatBaht(tx.NetPrice), tx.Status)
}

func (it *Interpreter) handleSales(ctx context.Context, sales *SalesCommand) string {
	if sales == nil {
		return msgSalesMenu
	}

	today := core.NewDate(it.Now())
	q := core.SalesQuery{Period: sales.Period, Day: sales.Day}
	var label string
	switch sales.Period {
	case core.PeriodDay:
		if q.Day == "" {
			q.Day = today
		}
		label = "วันที่ " + q.Day.String()
	case core.PeriodLast7Days:
		label = "7 วันล่าสุด"
	case core.PeriodLast30Days:
		label = "30 วันล่าสุด"
	case core.PeriodYearToDate:
		label = "ตั้งแต่ต้นปี"
	}

	report := it.purchases.Sales(ctx, q, today)
	if len(report.Transactions) == 0 {
		return fmt.Sprintf("ไม่พบยอดขายสำหรับ%s ครับ", label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 ยอดขาย%s\n\n", label)
	for i, tx := range report.Transactions {
		if i == maxSalesLines {
			fmt.Fprintf(&b, "…และอีก %d รายการ\n", len(report.Transactions)-maxSalesLines)
			break
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, tx.ProductName, core.FormatBaht(tx.NetPrice))
	}
	fmt.Fprintf(&b, "\nรวมยอดขาย: %s", core.FormatBaht(report.Total))
	return b.String()
}

func renderUnpaid(report *core.UnpaidReport) string {
	if len(report.Transactions) == 0 {
		return "ไม่มียอดค้างชำระครับ ✨"
	}
	var b strings.Builder
	b.WriteString("📊 สรุปยอดค้างชำระ\n\n")
	for i, tx := range report.Transactions {
		fmt.Fprintf(&b, "%d. %s (%s) - %s\n", i+1, tx.ProductName, core.FormatBaht(tx.NetPrice), tx.BuyerName)
	}
	fmt.Fprintf(&b, "\nรวมทั้งหมด: %s", core.FormatBaht(report.Total))
	return b.String()
}

func renderLowStock(items []core.InventoryItem) string {
	if len(items) == 0 {
		return "✅ สต็อกสินค้ายังไม่ใกล้หมดครับ"
	}
	var b strings.Builder
	b.WriteString("⚠️ สินค้าใกล้หมด\n\n")
	for i, item := range items {
		if item.InitialQuantity > 0 {
			fmt.Fprintf(&b, "%d. %s เหลือ %d/%d\n", i+1, item.ProductName, item.Quantity, item.InitialQuantity)
		} else {
			fmt.Fprintf(&b, "%d. %s เหลือ %d\n", i+1, item.ProductName, item.Quantity)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSearch(query string, matches []core.InventoryItem) string {
	switch len(matches) {
	case 0:
		return fmt.Sprintf("❌ ไม่พบสินค้า \"%s\" ครับ", query)
	case 1:
		m := matches[0]
		return fmt.Sprintf("🔍 %s\nแบรนด์: %s\nSKU: %s\nคงเหลือ: %d ชิ้น\nราคา: %s",
			m.ProductName, m.Brand, m.SKU, m.Quantity, core.FormatBaht(m.Price))
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "🔍 พบสินค้า %d รายการ\n\n", len(matches))
		for i, m := range matches {
			if i == maxSearchLines {
				fmt.Fprintf(&b, "…และอีก %d รายการ", len(matches)-maxSearchLines)
				break
			}
			fmt.Fprintf(&b, "%d. %s (%s) เหลือ %d\n", i+1, m.ProductName, m.Brand, m.Quantity)
		}
		return strings.TrimRight(b.String(), "\n")
	}
}

const msgOrderFormat = "⚠️ รูปแบบคำสั่งซื้อไม่ถูกต้องครับ\nตัวอย่าง:\nคุณสมชาย\nซื้อ Monitor Dell\nจำนวน 2"

const msgSalesMenu = "📈 เลือกช่วงเวลายอดขาย\n1. วันนี้\n2. 7 วันล่าสุด\n3. 30 วันล่าสุด\n4. ตั้งแต่ต้นปี\nหรือพิมพ์วันที่ เช่น 2026-01-15"

const msgSearchGuidance = "🔍 พิมพ์ชื่อสินค้าที่ต้องการค้นหา เช่น \"สต็อก monitor\" ครับ"

const msgHelp = "ผมไม่เข้าใจคำสั่งครับ 😅\nลองพิมพ์คำว่า:\n- \"ยอดค้าง\" เพื่อดูรายการที่ยังไม่จ่าย\n- \"ยอดขาย\" เพื่อดูสรุปยอดขาย\n- \"สินค้าใกล้หมด\" เพื่อเช็คสต็อก\n- ชื่อสินค้า เพื่อค้นหาสต็อก"

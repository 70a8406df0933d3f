package app

import (
	"context"

	"backoffice-bot/internal/chat"
	"backoffice-bot/internal/core"
)

// ApplicationService is the single interface the adapters (web, terminal)
// call. It decouples presentation from business logic; implementations
// contain no display logic.
type ApplicationService interface {
	// Inventory collection.
	ListInventory(ctx context.Context) []core.InventoryItem
	ReplaceInventory(ctx context.Context, items []core.InventoryItem) bool
	SearchInventory(ctx context.Context, query string) []core.InventoryItem
	LowStock(ctx context.Context) []core.InventoryItem

	// Purchase transactions.
	ListPurchases(ctx context.Context) []core.PurchaseTransaction
	ReplacePurchases(ctx context.Context, txs []core.PurchaseTransaction) bool
	// ImportPurchases appends transactions, decrements stock, and returns
	// one log line per input row.
	ImportPurchases(ctx context.Context, txs []core.PurchaseTransaction) []string

	// Quotations.
	ListQuotations(ctx context.Context) []core.Quotation
	ReplaceQuotations(ctx context.Context, qts []core.Quotation) bool
	CreateQuotation(ctx context.Context, req core.QuotationRequest) (*core.Quotation, error)
	// ConvertQuotation turns a Pending quotation into an Unpaid purchase
	// transaction exactly once.
	ConvertQuotation(ctx context.Context, id, evidence string) (*core.PurchaseTransaction, error)

	// HandleMessage runs one chat message through the interpreter and
	// returns the reply text. It never fails.
	HandleMessage(ctx context.Context, text string) string
}

type service struct {
	inventory   *core.InventoryService
	purchases   *core.PurchaseService
	quotations  *core.QuotationService
	interpreter *chat.Interpreter
}

func NewService(inventory *core.InventoryService, purchases *core.PurchaseService, quotations *core.QuotationService, interpreter *chat.Interpreter) ApplicationService {
	return &service{
		inventory:   inventory,
		purchases:   purchases,
		quotations:  quotations,
		interpreter: interpreter,
	}
}

func (s *service) ListInventory(ctx context.Context) []core.InventoryItem {
	return s.inventory.List(ctx)
}

func (s *service) ReplaceInventory(ctx context.Context, items []core.InventoryItem) bool {
	return s.inventory.Replace(ctx, items)
}

func (s *service) SearchInventory(ctx context.Context, query string) []core.InventoryItem {
	return s.inventory.Search(ctx, query)
}

func (s *service) LowStock(ctx context.Context) []core.InventoryItem {
	return s.inventory.LowStock(ctx)
}

func (s *service) ListPurchases(ctx context.Context) []core.PurchaseTransaction {
	return s.purchases.List(ctx)
}

func (s *service) ReplacePurchases(ctx context.Context, txs []core.PurchaseTransaction) bool {
	return s.purchases.Replace(ctx, txs)
}

func (s *service) ImportPurchases(ctx context.Context, txs []core.PurchaseTransaction) []string {
	return s.purchases.Import(ctx, txs)
}

func (s *service) ListQuotations(ctx context.Context) []core.Quotation {
	return s.quotations.List(ctx)
}

func (s *service) ReplaceQuotations(ctx context.Context, qts []core.Quotation) bool {
	return s.quotations.Replace(ctx, qts)
}

func (s *service) CreateQuotation(ctx context.Context, req core.QuotationRequest) (*core.Quotation, error) {
	return s.quotations.Create(ctx, req)
}

func (s *service) ConvertQuotation(ctx context.Context, id, evidence string) (*core.PurchaseTransaction, error) {
	return s.quotations.ConvertToPO(ctx, id, evidence)
}

func (s *service) HandleMessage(ctx context.Context, text string) string {
	return s.interpreter.Handle(ctx, text)
}

package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice-bot/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrQuotationNotFound is returned when no quotation matches the given id.
var ErrQuotationNotFound = errors.New("quotation not found")

// ErrAlreadyConverted rejects a second conversion of the same quotation.
// Conversion is one-way; there is no operation that reverts a quotation to
// Pending once its PO exists.
var ErrAlreadyConverted = errors.New("quotation already converted to PO")

var vatRate = decimal.NewFromFloat(0.07) // fixed 7% VAT, not configurable

// Pricing is the computed chain for one quotation line.
type Pricing struct {
	Subtotal           decimal.Decimal
	TotalAfterDiscount decimal.Decimal
	VatAmount          decimal.Decimal
	GrandTotal         decimal.Decimal
}

// ComputePricing applies the discount chain:
//
//	subtotal  = (pricePerUnit - discountPerUnit) × quantity
//	afterDisc = subtotal × (1 - specialDiscountPercent/100)
//	vat       = afterDisc × 0.07
//	grand     = afterDisc + vat
func ComputePricing(pricePerUnit, discountPerUnit decimal.Decimal, quantity int, specialDiscountPercent decimal.Decimal) Pricing {
	qty := decimal.NewFromInt(int64(quantity))
	subtotal := pricePerUnit.Sub(discountPerUnit).Mul(qty)
	afterDisc := subtotal.Mul(decimal.NewFromInt(1).Sub(specialDiscountPercent.Div(decimal.NewFromInt(100))))
	vat := afterDisc.Mul(vatRate)
	return Pricing{
		Subtotal:           subtotal,
		TotalAfterDiscount: afterDisc,
		VatAmount:          vat,
		GrandTotal:         afterDisc.Add(vat),
	}
}

// QuotationRequest carries the fields needed to price and issue a quotation.
type QuotationRequest struct {
	BuyerName              string
	BuyerTaxID             string
	BuyerAddress           string
	ProductName            string
	Quantity               int
	PricePerUnit           decimal.Decimal
	DiscountPerUnit        decimal.Decimal
	SpecialDiscountPercent decimal.Decimal
	SellerName             string
	SellerAddress          string
	SellerPhone            string
	SalesPerson            string
	PaymentTerm            string
}

// QuotationService issues quotations and converts accepted ones into
// purchase transactions.
type QuotationService struct {
	quotations store.Collection[Quotation]
	purchases  store.Collection[PurchaseTransaction]
	logger     *zap.Logger

	Now func() time.Time
}

func NewQuotationService(quotations store.Collection[Quotation], purchases store.Collection[PurchaseTransaction], logger *zap.Logger) *QuotationService {
	return &QuotationService{
		quotations: quotations,
		purchases:  purchases,
		logger:     logger,
		Now:        time.Now,
	}
}

func (s *QuotationService) List(ctx context.Context) []Quotation {
	return s.quotations.Get(ctx)
}

func (s *QuotationService) Replace(ctx context.Context, qts []Quotation) bool {
	return s.quotations.Replace(ctx, qts)
}

// Create prices and stores a new Pending quotation. The offer expires three
// months after the order date.
func (s *QuotationService) Create(ctx context.Context, req QuotationRequest) (*Quotation, error) {
	if strings.TrimSpace(req.BuyerName) == "" || strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("buyer and product are required")
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", req.Quantity)
	}

	now := s.Now()
	pricing := ComputePricing(req.PricePerUnit, req.DiscountPerUnit, req.Quantity, req.SpecialDiscountPercent)
	qt := Quotation{
		ID:                     fmt.Sprintf("QT-%06d", now.UnixMilli()%1000000),
		BuyerName:              req.BuyerName,
		BuyerTaxID:             req.BuyerTaxID,
		BuyerAddress:           req.BuyerAddress,
		ProductName:            req.ProductName,
		Quantity:               req.Quantity,
		PricePerUnit:           req.PricePerUnit,
		DiscountPerUnit:        req.DiscountPerUnit,
		Subtotal:               pricing.Subtotal,
		SpecialDiscountPercent: req.SpecialDiscountPercent,
		TotalAfterDiscount:     pricing.TotalAfterDiscount,
		VatAmount:              pricing.VatAmount,
		GrandTotal:             pricing.GrandTotal,
		OrderDate:              NewDate(now),
		ExpiryDate:             NewDate(now).AddMonths(3),
		Status:                 QuotationPending,
		SellerName:             req.SellerName,
		SellerAddress:          req.SellerAddress,
		SellerPhone:            req.SellerPhone,
		SalesPerson:            req.SalesPerson,
		PaymentTerm:            req.PaymentTerm,
	}

	qts := append([]Quotation{qt}, s.quotations.Get(ctx)...)
	if !s.quotations.Replace(ctx, qts) {
		return nil, fmt.Errorf("failed to persist quotation %s", qt.ID)
	}
	return &qt, nil
}

// ConvertToPO turns a Pending quotation into an Unpaid purchase transaction
// carrying the quotation's grand total, dated at conversion time, and flips
// the quotation to "PO Created". evidence, if non-empty, is stored as the
// transaction's payment slip reference.
func (s *QuotationService) ConvertToPO(ctx context.Context, quotationID, evidence string) (*PurchaseTransaction, error) {
	qts := s.quotations.Get(ctx)
	idx := -1
	for i, qt := range qts {
		if qt.ID == quotationID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrQuotationNotFound
	}
	if qts[idx].Status != QuotationPending {
		return nil, ErrAlreadyConverted
	}

	now := s.Now()
	tx := PurchaseTransaction{
		ID:          fmt.Sprintf("PO-%d", now.UnixMilli()),
		BuyerName:   qts[idx].BuyerName,
		ProductName: qts[idx].ProductName,
		Quantity:    qts[idx].Quantity,
		NetPrice:    qts[idx].Amount(),
		OrderDate:   NewDate(now),
		Status:      StatusUnpaid,
		PaymentSlip: evidence,
	}

	if !s.purchases.Replace(ctx, append(s.purchases.Get(ctx), tx)) {
		return nil, fmt.Errorf("failed to persist PO for quotation %s", quotationID)
	}

	qts[idx].Status = QuotationPOCreated
	if !s.quotations.Replace(ctx, qts) {
		// The PO exists but the status flip was lost; the next convert
		// attempt will duplicate the PO. Recorded loudly, not rolled back.
		s.logger.Error("quotation status flip not persisted", zap.String("id", quotationID))
	}
	return &tx, nil
}

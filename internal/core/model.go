// Package core holds the domain model and the business services: inventory
// lookups, purchase-order fulfillment, report aggregation, and quotation
// pricing. Services read whole collections through store accessors, mutate a
// copy, and write the whole collection back; they keep no state between calls.
package core

import "github.com/shopspring/decimal"

func init() {
	// The data files store amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// PaymentStatus of a purchase transaction.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "Paid"
	StatusUnpaid PaymentStatus = "Unpaid"
)

// QuotationStatus tracks whether a quotation has been turned into a PO.
type QuotationStatus string

const (
	QuotationPending   QuotationStatus = "Pending"
	QuotationPOCreated QuotationStatus = "PO Created"
)

// InventoryItem is one stocked product. Quantity can go negative after an
// import that oversells on-hand stock; that is tolerated, not prevented.
type InventoryItem struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"productName"`
	Brand       string          `json:"brand"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	// InitialQuantity is the baseline for the low-stock percentage check.
	// Zero means it was never recorded and the flat threshold applies.
	InitialQuantity int `json:"initialQuantity,omitempty"`
}

// PurchaseTransaction is a confirmed, stock-affecting sale. NetPrice is the
// line total snapshot taken at creation time; it is never recomputed from the
// current inventory price.
type PurchaseTransaction struct {
	ID          string          `json:"id"`
	BuyerName   string          `json:"buyerName"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	NetPrice    decimal.Decimal `json:"netPrice"`
	OrderDate   Date            `json:"orderDate"`
	Status      PaymentStatus   `json:"status"`
	PaymentSlip string          `json:"paymentSlip,omitempty"`
}

// Quotation is a priced offer to a buyer. Once Status flips to "PO Created"
// exactly one PurchaseTransaction carries its grand total; the quotation is
// immutable from then on and there is no reversal path.
type Quotation struct {
	ID                     string          `json:"id"`
	BuyerName              string          `json:"buyerName"`
	BuyerTaxID             string          `json:"buyerTaxId"`
	BuyerAddress           string          `json:"buyerAddress,omitempty"`
	ProductName            string          `json:"productName"`
	Quantity               int             `json:"quantity"`
	PricePerUnit           decimal.Decimal `json:"pricePerUnit"`
	DiscountPerUnit        decimal.Decimal `json:"discountPerUnit"`
	Subtotal               decimal.Decimal `json:"subtotal"`
	SpecialDiscountPercent decimal.Decimal `json:"specialDiscountPercent"`
	TotalAfterDiscount     decimal.Decimal `json:"totalAfterDiscount"`
	VatAmount              decimal.Decimal `json:"vatAmount"`
	GrandTotal             decimal.Decimal `json:"grandTotal"`
	OrderDate              Date            `json:"orderDate"`
	ExpiryDate             Date            `json:"expiryDate"`
	Status                 QuotationStatus `json:"status"`
	SellerName             string          `json:"sellerName"`
	SellerAddress          string          `json:"sellerAddress,omitempty"`
	SellerPhone            string          `json:"sellerPhone,omitempty"`
	SalesPerson            string          `json:"salesPerson,omitempty"`
	PaymentTerm            string          `json:"paymentTerm,omitempty"`
	// TotalPrice is the pre-pricing-chain schema; kept so old quotation
	// files still convert.
	TotalPrice *decimal.Decimal `json:"totalPrice,omitempty"`
}

// Amount returns the quotation's billable total, falling back to the legacy
// TotalPrice field for records written before the pricing chain existed.
func (q Quotation) Amount() decimal.Decimal {
	if q.GrandTotal.IsZero() && q.TotalPrice != nil {
		return *q.TotalPrice
	}
	return q.GrandTotal
}

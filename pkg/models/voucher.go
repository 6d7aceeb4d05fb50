package models

import "github.com/shopspring/decimal"

// AccountingType is the booking account (Buchungskonto) of a voucher position.
type AccountingType struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// VoucherPosition is a line item of a voucher.
type VoucherPosition struct {
	ID             ID              `json:"id"`
	Comment        string          `json:"comment"`
	Sum            decimal.Decimal `json:"sum"`
	AccountingType *AccountingType `json:"accountingType"`
}

// Voucher is an incoming document (Beleg) as returned by GET /Voucher.
type Voucher struct {
	ID                 ID              `json:"id"`
	VoucherDate        *Timestamp      `json:"voucherDate"`
	PayDate            *Timestamp      `json:"payDate"`
	Description        string          `json:"description"`
	PaidAmount         decimal.Decimal `json:"paidAmount"`
	SupplierName       string          `json:"supplierName"`
	SupplierNameAtSave string          `json:"supplierNameAtSave"`
	Supplier           *Contact        `json:"supplier"`
	Document           *DocumentRef    `json:"document"`

	// Positions is filled from GET /VoucherPos, it is not part of the
	// voucher payload.
	Positions []VoucherPosition `json:"-"`
}

// Categories returns the accounting type names of all positions in order.
// Positions without an accounting type contribute an empty name.
func (v *Voucher) Categories() []string {
	categories := make([]string, 0, len(v.Positions))
	for _, pos := range v.Positions {
		name := ""
		if pos.AccountingType != nil {
			name = pos.AccountingType.Name
		}
		categories = append(categories, name)
	}
	return categories
}

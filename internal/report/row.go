// Package report builds the journal of an export run and writes it as CSV.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"sevdesk-export/internal/record"
	"sevdesk-export/pkg/models"
)

// Journal row types.
const (
	TypeVoucher = "AR"
	TypeInvoice = "ER"
)

// Row is one journal line.
type Row struct {
	Type       string
	Date       *time.Time
	Number     string
	Contact    string
	PayDate    *time.Time
	PaidAmount decimal.Decimal
	Categories []string
	Filename   string
}

// BuildVoucherRows returns one row per voucher. The filename is derived the
// same way as for the saved document.
func BuildVoucherRows(vouchers []models.Voucher, withCategories bool) []Row {
	rows := make([]Row, 0, len(vouchers))
	for _, v := range vouchers {
		rows = append(rows, fromRecord(TypeVoucher, record.FromVoucher(v), withCategories))
	}
	return rows
}

// BuildInvoiceRows returns one row per invoice. Invoices have no categories.
func BuildInvoiceRows(invoices []models.Invoice, withCategories bool) []Row {
	rows := make([]Row, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, fromRecord(TypeInvoice, record.FromInvoice(inv), withCategories))
	}
	return rows
}

func fromRecord(rowType string, r record.Record, withCategories bool) Row {
	return Row{
		Type:       rowType,
		Date:       r.Date,
		Number:     r.Number,
		Contact:    r.Contact,
		PayDate:    r.PayDate,
		PaidAmount: r.PaidAmount,
		Categories: r.Categories,
		Filename:   r.FileName(withCategories),
	}
}

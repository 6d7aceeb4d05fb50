// Package record projects vouchers and invoices onto one shape, so
// downloading, naming and reporting do not need to know which kind of
// sevDesk object they handle.
package record

import (
	"time"

	"github.com/shopspring/decimal"

	"sevdesk-export/internal/filename"
	"sevdesk-export/pkg/models"
)

// Kind tells vouchers and invoices apart.
type Kind string

const (
	Vouchers Kind = "vouchers"
	Invoices Kind = "invoices"
)

// Record is the common projection of a voucher or an invoice.
type Record struct {
	Kind Kind
	ID   string

	// Date is the voucher or invoice date.
	Date    *time.Time
	PayDate *time.Time

	// Number is the voucher description or the invoice number.
	Number string

	// Contact is the supplier or customer shown in the journal.
	Contact string

	// FileContact is the name used in the filename. It can differ from
	// Contact, vouchers prefer the current supplier name there.
	FileContact string

	PaidAmount decimal.Decimal

	// Categories are the accounting types of the voucher positions, in
	// position order. Always empty for invoices.
	Categories []string

	Document *models.DocumentRef
}

// FromVoucher projects a voucher.
func FromVoucher(v models.Voucher) Record {
	supplierName := ""
	if v.Supplier != nil {
		supplierName = v.Supplier.DisplayName()
	}
	return Record{
		Kind:        Vouchers,
		ID:          v.ID.String(),
		Date:        v.VoucherDate.Ptr(),
		PayDate:     v.PayDate.Ptr(),
		Number:      v.Description,
		Contact:     firstNonEmpty(v.SupplierNameAtSave, v.SupplierName, supplierName),
		FileContact: firstNonEmpty(v.SupplierName, v.SupplierNameAtSave),
		PaidAmount:  v.PaidAmount,
		Categories:  v.Categories(),
		Document:    v.Document,
	}
}

// FromInvoice projects an invoice.
func FromInvoice(inv models.Invoice) Record {
	return Record{
		Kind:        Invoices,
		ID:          inv.ID.String(),
		Date:        inv.InvoiceDate.Ptr(),
		PayDate:     inv.PayDate.Ptr(),
		Number:      inv.InvoiceNumber,
		Contact:     firstNonEmpty(inv.AddressName, inv.Contact.DisplayName()),
		FileContact: inv.AddressName,
		PaidAmount:  inv.PaidAmount,
		Categories:  []string{},
		Document:    inv.Document,
	}
}

// FromVouchers projects a batch of vouchers.
func FromVouchers(vouchers []models.Voucher) []Record {
	records := make([]Record, len(vouchers))
	for i, v := range vouchers {
		records[i] = FromVoucher(v)
	}
	return records
}

// FromInvoices projects a batch of invoices.
func FromInvoices(invoices []models.Invoice) []Record {
	records := make([]Record, len(invoices))
	for i, inv := range invoices {
		records[i] = FromInvoice(inv)
	}
	return records
}

// Extension returns the file extension of the attached document.
func (r Record) Extension() string {
	if r.Document == nil {
		return filename.DefaultExtension
	}
	return filename.Extension(r.Document.Extension, r.Document.Filename)
}

// FileName returns the sanitized name the document of r is stored under.
// With withCategories the voucher categories are appended.
func (r Record) FileName(withCategories bool) string {
	var extra []string
	if withCategories {
		extra = r.Categories
	}
	return filename.Sanitize(filename.Build(r.PayDate, r.FileContact, r.ID, extra, r.Extension()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

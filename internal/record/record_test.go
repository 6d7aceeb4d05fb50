package record

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"sevdesk-export/pkg/models"
)

func ts(year int, month time.Month, day int) *models.Timestamp {
	return models.NewTimestamp(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

func TestFromVoucher(t *testing.T) {
	v := models.Voucher{
		ID:                 "42",
		VoucherDate:        ts(2022, time.February, 1),
		PayDate:            ts(2022, time.February, 15),
		Description:        "RE-2022-17",
		PaidAmount:         decimal.RequireFromString("119.00"),
		SupplierName:       "Acme GmbH",
		SupplierNameAtSave: "ACME",
		Document:           &models.DocumentRef{Filename: "scan.png"},
		Positions: []models.VoucherPosition{
			{AccountingType: &models.AccountingType{Name: "Bürobedarf"}},
			{AccountingType: &models.AccountingType{Name: "Porto"}},
		},
	}

	r := FromVoucher(v)

	assert.Equal(t, Vouchers, r.Kind)
	assert.Equal(t, "42", r.ID)
	assert.Equal(t, "RE-2022-17", r.Number)
	assert.Equal(t, "ACME", r.Contact)
	assert.Equal(t, "Acme GmbH", r.FileContact)
	assert.Equal(t, []string{"Bürobedarf", "Porto"}, r.Categories)
	assert.Equal(t, "png", r.Extension())
	assert.Equal(t, "2022-02-15-Acme GmbH-42.png", r.FileName(false))
	assert.Equal(t, "2022-02-15-Acme GmbH-42-Bürobedarf,Porto.png", r.FileName(true))
}

func TestFromVoucher_SupplierFallback(t *testing.T) {
	v := models.Voucher{ID: "1", Supplier: &models.Contact{Name: "Telekom"}}

	r := FromVoucher(v)

	assert.Equal(t, "Telekom", r.Contact)
	assert.Equal(t, "", r.FileContact)
	assert.Nil(t, r.PayDate)
	assert.Empty(t, r.Categories)
	assert.Equal(t, "1.pdf", r.FileName(true))
}

func TestFromInvoice(t *testing.T) {
	inv := models.Invoice{
		ID:            "9001",
		InvoiceNumber: "RE-1000",
		InvoiceDate:   ts(2022, time.January, 20),
		PayDate:       ts(2022, time.February, 3),
		Contact:       &models.Contact{Surename: "Erika", Familyname: "Mustermann"},
		PaidAmount:    decimal.RequireFromString("1234.5"),
	}

	r := FromInvoice(inv)

	assert.Equal(t, Invoices, r.Kind)
	assert.Equal(t, "Erika Mustermann", r.Contact)
	assert.Equal(t, "", r.FileContact)
	assert.Empty(t, r.Categories)
	assert.Equal(t, "pdf", r.Extension())
	assert.Equal(t, "2022-02-03-9001.pdf", r.FileName(true))
}

func TestFileName_IsSanitized(t *testing.T) {
	r := Record{ID: "5", FileContact: "A/B: Consulting", Document: &models.DocumentRef{Extension: "pdf"}}

	assert.Equal(t, "AB Consulting-5.pdf", r.FileName(false))
}

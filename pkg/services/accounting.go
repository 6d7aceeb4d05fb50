package services

import (
	"context"
	"time"

	"sevdesk-export/pkg/models"
)

// AccountingAPI is the part of the bookkeeping backend the export needs.
type AccountingAPI interface {
	// FetchVouchers returns the vouchers paid between start and end,
	// including their positions.
	FetchVouchers(ctx context.Context, start, end time.Time) ([]models.Voucher, error)

	// FetchInvoices returns the invoices paid between start and end.
	FetchInvoices(ctx context.Context, start, end time.Time) ([]models.Invoice, error)

	// DownloadVoucherDocument returns the attachment of a voucher, or nil
	// if there is none.
	DownloadVoucherDocument(ctx context.Context, id string) (*models.DocumentContent, error)

	// DownloadInvoicePDF returns the PDF of an invoice, or nil if there
	// is none.
	DownloadInvoicePDF(ctx context.Context, id string) (*models.DocumentContent, error)
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sevdesk-export/pkg/models"
)

type AccountingAPI struct {
	mock.Mock
}

func (m *AccountingAPI) FetchVouchers(ctx context.Context, start, end time.Time) ([]models.Voucher, error) {
	args := m.Called(ctx, start, end)
	vouchers, _ := args.Get(0).([]models.Voucher)
	return vouchers, args.Error(1)
}

func (m *AccountingAPI) FetchInvoices(ctx context.Context, start, end time.Time) ([]models.Invoice, error) {
	args := m.Called(ctx, start, end)
	invoices, _ := args.Get(0).([]models.Invoice)
	return invoices, args.Error(1)
}

func (m *AccountingAPI) DownloadVoucherDocument(ctx context.Context, id string) (*models.DocumentContent, error) {
	args := m.Called(ctx, id)
	content, _ := args.Get(0).(*models.DocumentContent)
	return content, args.Error(1)
}

func (m *AccountingAPI) DownloadInvoicePDF(ctx context.Context, id string) (*models.DocumentContent, error) {
	args := m.Called(ctx, id)
	content, _ := args.Get(0).(*models.DocumentContent)
	return content, args.Error(1)
}

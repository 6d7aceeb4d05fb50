package sevdesk

import (
	"context"
	"time"

	"sevdesk-export/pkg/models"
)

// InvoiceLookbackFactor widens the invoice query window. sevDesk cannot
// filter invoices by pay date, so invoices created up to this many range
// lengths before start are fetched and filtered locally. Invoices paid later
// than that after their creation are not found.
const InvoiceLookbackFactor = 2

type invoiceList struct {
	Objects []models.Invoice `json:"objects"`
}

// InvoiceQueryWindow returns the creation-date window used to find invoices
// paid between start and end: [start - 2*(end-start), end].
func InvoiceQueryWindow(start, end time.Time) (time.Time, time.Time) {
	length := end.Sub(start)
	return start.Add(-InvoiceLookbackFactor * length), end
}

// FetchInvoices returns all invoices paid between start and end, with
// contact and document data embedded.
func (c *Client) FetchInvoices(ctx context.Context, start, end time.Time) ([]models.Invoice, error) {
	const op = "FetchInvoices"

	queryStart, queryEnd := InvoiceQueryWindow(start, end)

	var list invoiceList
	err := c.get(ctx, request{
		op:   op,
		path: "Invoice",
		query: map[string]string{
			"startDate": epoch(queryStart),
			"endDate":   epoch(queryEnd),
			"embed":     "contact,document",
		},
	}, &list)
	if err != nil {
		return nil, err
	}

	invoices := FilterByPayDate(list.Objects, start, end)

	c.log.Info().
		Int("fetched", len(list.Objects)).
		Int("paid_in_range", len(invoices)).
		Time("query_start", queryStart).
		Time("query_end", queryEnd).
		Msg("Fetched invoices")

	return invoices, nil
}

// FilterByPayDate keeps the invoices with a pay date within [start, end].
// Unpaid invoices are dropped.
func FilterByPayDate(invoices []models.Invoice, start, end time.Time) []models.Invoice {
	filtered := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		payDate := inv.PayDate.Ptr()
		if payDate == nil {
			continue
		}
		if payDate.Before(start) || payDate.After(end) {
			continue
		}
		filtered = append(filtered, inv)
	}
	return filtered
}

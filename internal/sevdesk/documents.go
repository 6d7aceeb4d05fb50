package sevdesk

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"sevdesk-export/pkg/models"
)

type documentEnvelope struct {
	Objects json.RawMessage `json:"objects"`
}

// DownloadVoucherDocument fetches the attachment of a voucher. It returns
// nil without error when the voucher has no document, e.g. transaction
// costs sevDesk books automatically.
func (c *Client) DownloadVoucherDocument(ctx context.Context, id string) (*models.DocumentContent, error) {
	return c.download(ctx, "DownloadVoucherDocument", "Voucher/{id}/downloadDocument", id)
}

// DownloadInvoicePDF fetches the rendered PDF of an invoice. It returns nil
// without error when sevDesk sends no document.
func (c *Client) DownloadInvoicePDF(ctx context.Context, id string) (*models.DocumentContent, error) {
	return c.download(ctx, "DownloadInvoicePDF", "Invoice/{id}/getPdf", id)
}

func (c *Client) download(ctx context.Context, op, path, id string) (*models.DocumentContent, error) {
	var envelope documentEnvelope
	err := c.get(ctx, request{
		op:         op,
		path:       path,
		pathParams: map[string]string{"id": id},
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return decodeDocument(op, envelope.Objects)
}

var emptyObjects = [][]byte{
	[]byte("null"),
	[]byte("false"),
	[]byte("[]"),
	[]byte("{}"),
	[]byte(`""`),
}

func decodeDocument(op string, raw json.RawMessage) (*models.DocumentContent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	for _, empty := range emptyObjects {
		if bytes.Equal(trimmed, empty) {
			return nil, nil
		}
	}

	var doc models.DocumentContent
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &APIError{Op: op, Err: fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)}
	}
	if doc.Content == "" {
		return nil, nil
	}
	return &doc, nil
}

package sevdesk

import (
	"context"
	"time"

	"sevdesk-export/internal/fanout"
	"sevdesk-export/pkg/models"
)

type voucherList struct {
	Objects []models.Voucher `json:"objects"`
}

type voucherPositionList struct {
	Objects []models.VoucherPosition `json:"objects"`
}

// FetchVouchers returns all vouchers paid between start and end, with
// supplier and document data embedded and positions attached.
//
// A failing voucher list call fails the whole fetch. A failing position call
// only leaves that voucher without positions.
func (c *Client) FetchVouchers(ctx context.Context, start, end time.Time) ([]models.Voucher, error) {
	const op = "FetchVouchers"

	var list voucherList
	err := c.get(ctx, request{
		op:   op,
		path: "Voucher",
		query: map[string]string{
			"startPayDate": epoch(start),
			"endPayDate":   epoch(end),
			"embed":        "supplier,document",
		},
	}, &list)
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Int("count", len(list.Objects)).
		Time("start", start).
		Time("end", end).
		Msg("Fetched vouchers")

	if len(list.Objects) == 0 {
		return []models.Voucher{}, nil
	}

	positions := fanout.Map(ctx, list.Objects, c.concurrency, func(ctx context.Context, v models.Voucher) []models.VoucherPosition {
		return c.fetchVoucherPositions(ctx, v.ID)
	})

	vouchers := make([]models.Voucher, len(list.Objects))
	for i, v := range list.Objects {
		v.Positions = positions[i]
		vouchers[i] = v
	}
	return vouchers, nil
}

// fetchVoucherPositions returns the positions of a voucher with their
// accounting types. Errors yield an empty slice.
func (c *Client) fetchVoucherPositions(ctx context.Context, voucherID models.ID) []models.VoucherPosition {
	var list voucherPositionList
	err := c.get(ctx, request{
		op:   "FetchVoucherPositions",
		path: "VoucherPos",
		query: map[string]string{
			"voucher[id]":         voucherID.String(),
			"voucher[objectName]": "Voucher",
			"embed":               "accountingType",
		},
	}, &list)
	if err != nil {
		c.log.Debug().
			Err(err).
			Str("voucher_id", voucherID.String()).
			Msg("Voucher positions unavailable, continuing without categories")
		return []models.VoucherPosition{}
	}
	if list.Objects == nil {
		return []models.VoucherPosition{}
	}
	return list.Objects
}

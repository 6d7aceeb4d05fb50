package models

import "github.com/shopspring/decimal"

// Contact is the embedded customer or supplier of an invoice or voucher.
type Contact struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Surename   string `json:"surename"`
	Familyname string `json:"familyname"`
}

// DisplayName returns the organisation name, or the person name for
// contacts without one.
func (c *Contact) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Name != "" {
		return c.Name
	}
	switch {
	case c.Surename != "" && c.Familyname != "":
		return c.Surename + " " + c.Familyname
	case c.Familyname != "":
		return c.Familyname
	default:
		return c.Surename
	}
}

// Invoice is an outgoing invoice (Ausgangsrechnung) as returned by GET /Invoice.
type Invoice struct {
	ID            ID              `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   *Timestamp      `json:"invoiceDate"`
	PayDate       *Timestamp      `json:"payDate"`
	AddressName   string          `json:"addressName"`
	Contact       *Contact        `json:"contact"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Document      *DocumentRef    `json:"document"`
}

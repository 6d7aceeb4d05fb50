package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ID is a sevDesk object identifier. The API sends ids as strings, but some
// endpoints and older payloads use plain numbers.
type ID string

// UnmarshalJSON accepts string, number and null ids.
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*id = ""
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id %s: %w", raw, err)
		}
		*id = ID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("invalid id %s: %w", raw, err)
	}
	*id = ID(raw)
	return nil
}

func (id ID) String() string {
	return string(id)
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a date as delivered by the sevDesk API, either a full
// RFC3339 timestamp ("2022-02-15T00:00:00+01:00") or a plain date.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses the supported layouts. Empty strings and null leave
// the zero value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", raw, err)
	}
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format: %q", s)
}

// Ptr returns the wrapped time, or nil for a missing or zero timestamp.
func (t *Timestamp) Ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// NewTimestamp wraps a time value.
func NewTimestamp(v time.Time) *Timestamp {
	return &Timestamp{Time: v}
}

// DocumentRef is the embedded "document" object of vouchers and invoices.
// It only describes the attachment; the content is fetched separately.
type DocumentRef struct {
	ID        ID     `json:"id"`
	Filename  string `json:"filename"`
	Extension string `json:"extension"`
	MimeType  string `json:"mimeType"`
}

// DocumentContent is the payload of the voucher and invoice download endpoints.
type DocumentContent struct {
	Filename      string `json:"filename"`
	MimeType      string `json:"mimeType"`
	Content       string `json:"content"`
	Base64Encoded bool   `json:"base64Encoded"`
}

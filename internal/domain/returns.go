package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ReturnItem is one returned line: quantity at the originally invoiced price.
type ReturnItem struct {
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ReturnItems tolerates the loose shapes the upstream systems produce:
// a JSON array, a JSON-string-encoded array, null, or garbage. Anything
// that fails to parse decodes to an empty collection rather than an error,
// so one bad return can never abort statement generation.
type ReturnItems []ReturnItem

// returnItemAliases accepts the key-naming variance seen in return payloads
// (unitPrice vs price) and normalizes it at the boundary.
type returnItemAliases struct {
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Price     decimal.Decimal `json:"price"`
}

// UnmarshalJSON never returns an error by design of the statement pipeline:
// malformed line items contribute zero to the return offset.
func (items *ReturnItems) UnmarshalJSON(data []byte) error {
	*items = nil

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	// Some producers double-encode the items as a JSON string.
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}

		raw = bytes.TrimSpace([]byte(s))
	}

	var rows []returnItemAliases
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}

	out := make(ReturnItems, 0, len(rows))
	for _, row := range rows {
		price := row.UnitPrice
		if price.IsZero() {
			price = row.Price
		}

		out = append(out, ReturnItem{Quantity: row.Quantity, UnitPrice: price})
	}

	*items = out

	return nil
}

// ReturnRecord references an originating invoice and carries the returned lines.
type ReturnRecord struct {
	ID        string
	InvoiceID string
	Date      time.Time
	Items     ReturnItems
	CreatedAt time.Time
}

// Value is the effective value of the return: sum of quantity times unit price.
func (r *ReturnRecord) Value() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Quantity.Mul(item.UnitPrice))
	}

	return total
}

// ReturnOffset totals the returned value recorded against an invoice across
// potentially multiple partial returns. Always non-negative; returns with
// unparsable items contribute zero.
func ReturnOffset(invoiceID string, returns []*ReturnRecord) decimal.Decimal {
	total := decimal.Zero
	for _, ret := range returns {
		if ret.InvoiceID != invoiceID {
			continue
		}

		total = total.Add(ret.Value())
	}

	return total
}

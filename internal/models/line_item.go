package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ItemKindExpense = "expense"
	ItemKindRefund  = "refund"
)

var (
	ErrInvalidItemKind = errors.New("invalid line item kind")
)

// RawRow is one parsed CSV row before flow classification. Amount keeps
// the original sign: positive for money in, negative for money out.
type RawRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// LineItem is one normalized, categorizable transaction fact. Amount is
// an unsigned magnitude; the original sign is captured once in Kind and
// never changes afterwards.
type LineItem struct {
	ID       int             `json:"id"`
	Date     time.Time       `json:"-"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     string          `json:"kind"`
}

// DateString returns the item date in the YYYY-MM-DD form used in
// prompts and responses.
func (li LineItem) DateString() string {
	return li.Date.Format("2006-01-02")
}

// IsValidItemKind checks if a kind string is valid
func IsValidItemKind(kind string) bool {
	return kind == ItemKindExpense || kind == ItemKindRefund
}

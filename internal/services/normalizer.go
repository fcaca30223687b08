package services

import (
	"log/slog"

	"spendlens/internal/models"
)

// Normalizer converts signed raw rows into unsigned line items with
// dense ids. Sign decides the kind: negative amounts become expenses,
// positive amounts become refunds, zero rows are dropped.
type Normalizer struct {
	maxItems int
	logger   *slog.Logger
}

func NewNormalizer(maxItems int, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		maxItems: maxItems,
		logger:   logger,
	}
}

func (n *Normalizer) Normalize(rows []models.RawRow) []models.LineItem {
	items := make([]models.LineItem, 0, len(rows))
	for _, row := range rows {
		if row.Amount.IsZero() {
			continue
		}
		if len(items) >= n.maxItems {
			n.logger.Warn("line item cap reached, truncating input",
				"cap", n.maxItems,
				"rows", len(rows))
			break
		}
		kind := models.ItemKindRefund
		if row.Amount.IsNegative() {
			kind = models.ItemKindExpense
		}
		items = append(items, models.LineItem{
			ID:       len(items) + 1,
			Date:     row.Date,
			Merchant: models.NormalizeMerchant(row.Description),
			Amount:   row.Amount.Abs(),
			Kind:     kind,
		})
	}
	return items
}

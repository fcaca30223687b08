package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendlens/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// AggregationService rebuilds every figure from line items and the
// reconciled assignment. Model output never contributes a number.
// Output ordering is fully deterministic: categories by total
// descending then name, merchants by amount descending then name, so
// the same input always serializes to the same bytes.
type AggregationService struct {
	topMerchants  int
	topCategories int
	summaryLimit  int
}

func NewAggregationService(topMerchants int) AggregationServiceInterface {
	return &AggregationService{
		topMerchants:  topMerchants,
		topCategories: 10,
		summaryLimit:  10,
	}
}

func (s *AggregationService) Aggregate(items []models.LineItem, assignment map[int]string, flows models.FlowTotals) *models.AggregateSnapshot {
	type categoryAccum struct {
		total     decimal.Decimal
		txnIDs    []int
		merchants map[string]decimal.Decimal
	}

	accums := make(map[string]*categoryAccum)
	order := make([]string, 0)

	grossSpend := decimal.Zero
	refundsTotal := decimal.Zero
	var periodStart, periodEnd *time.Time

	for _, item := range items {
		if item.Kind == models.ItemKindRefund {
			refundsTotal = refundsTotal.Add(item.Amount)
		} else {
			grossSpend = grossSpend.Add(item.Amount)
		}

		d := item.Date
		if periodStart == nil || d.Before(*periodStart) {
			periodStart = &d
		}
		if periodEnd == nil || d.After(*periodEnd) {
			periodEnd = &d
		}

		category := assignment[item.ID]
		if category == "" {
			category = models.CategoryOther
		}
		accum, ok := accums[category]
		if !ok {
			accum = &categoryAccum{
				total:     decimal.Zero,
				merchants: make(map[string]decimal.Decimal),
			}
			accums[category] = accum
			order = append(order, category)
		}
		accum.total = accum.total.Add(item.Amount)
		accum.txnIDs = append(accum.txnIDs, item.ID)
		accum.merchants[item.Merchant] = accum.merchants[item.Merchant].Add(item.Amount)
	}

	categories := make([]models.CategoryAggregate, 0, len(order))
	for _, name := range order {
		accum := accums[name]
		sort.Ints(accum.txnIDs)
		categories = append(categories, models.CategoryAggregate{
			Category:  name,
			Total:     accum.total,
			TxnIDs:    accum.txnIDs,
			Merchants: topMerchantTotals(accum.merchants, s.topMerchants),
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})

	totalExpenses := grossSpend.Sub(refundsTotal)

	return &models.AggregateSnapshot{
		Categories:        categories,
		TotalExpenses:     totalExpenses,
		GrossSpend:        grossSpend,
		RefundsTotal:      refundsTotal,
		BillPaymentsTotal: flows.BillPayments,
		PayrollTotal:      flows.Payroll,
		TransfersTotal:    flows.Transfers,
		InvestmentsTotal:  flows.Investments,
		NetCashFlow:       flows.Payroll.Sub(totalExpenses),
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
	}
}

func (s *AggregationService) BuildInsightsSummary(items []models.LineItem, snapshot *models.AggregateSnapshot) models.InsightsSummary {
	type merchantAccum struct {
		total decimal.Decimal
		count int
	}
	merchants := make(map[string]*merchantAccum)
	for _, item := range items {
		if item.Kind != models.ItemKindExpense {
			continue
		}
		accum, ok := merchants[item.Merchant]
		if !ok {
			accum = &merchantAccum{total: decimal.Zero}
			merchants[item.Merchant] = accum
		}
		accum.total = accum.total.Add(item.Amount)
		accum.count++
	}

	topMerchants := make([]models.MerchantActivity, 0, len(merchants))
	for name, accum := range merchants {
		topMerchants = append(topMerchants, models.MerchantActivity{
			Merchant: name,
			Total:    accum.total,
			Count:    accum.count,
		})
	}
	sort.SliceStable(topMerchants, func(i, j int) bool {
		if !topMerchants[i].Total.Equal(topMerchants[j].Total) {
			return topMerchants[i].Total.GreaterThan(topMerchants[j].Total)
		}
		return topMerchants[i].Merchant < topMerchants[j].Merchant
	})
	if len(topMerchants) > s.summaryLimit {
		topMerchants = topMerchants[:s.summaryLimit]
	}

	topCategories := make([]models.CategoryShare, 0, s.topCategories)
	for _, cat := range snapshot.Categories {
		if cat.Category == models.CategoryRefunds || !cat.Total.IsPositive() {
			continue
		}
		share := decimal.Zero
		if snapshot.GrossSpend.IsPositive() {
			share = cat.Total.Mul(oneHundred).Div(snapshot.GrossSpend).Round(1)
		}
		topCategories = append(topCategories, models.CategoryShare{
			Category:               cat.Category,
			Total:                  cat.Total,
			PercentageOfGrossSpend: share,
			TopMerchants:           cat.Merchants,
		})
		if len(topCategories) == s.topCategories {
			break
		}
	}

	top3Total := decimal.Zero
	for i, cat := range topCategories {
		if i == 3 {
			break
		}
		top3Total = top3Total.Add(cat.Total)
	}
	top3Pct := decimal.Zero
	if snapshot.GrossSpend.IsPositive() {
		top3Pct = top3Total.Mul(oneHundred).Div(snapshot.GrossSpend).Round(1)
	}

	summary := models.InsightsSummary{
		TransactionCount:              len(items),
		GrossSpend:                    snapshot.GrossSpend,
		RefundsTotal:                  snapshot.RefundsTotal,
		NetSpend:                      snapshot.TotalExpenses,
		BillPaymentsTotal:             snapshot.BillPaymentsTotal,
		PayrollTotal:                  snapshot.PayrollTotal,
		NetCashFlow:                   snapshot.NetCashFlow,
		TopMerchants:                  topMerchants,
		TopCategories:                 topCategories,
		Top3CategoriesTotal:           top3Total,
		Top3CategoriesPctOfGrossSpend: top3Pct,
	}
	if snapshot.PeriodStart != nil {
		summary.PeriodStart = snapshot.PeriodStart.Format("2006-01-02")
	}
	if snapshot.PeriodEnd != nil {
		summary.PeriodEnd = snapshot.PeriodEnd.Format("2006-01-02")
	}
	return summary
}

// MoveMerchant reassigns every line item of one merchant from one
// category to another and recomputes the snapshot from scratch. The
// input assignment is left untouched.
func (s *AggregationService) MoveMerchant(items []models.LineItem, assignment map[int]string, flows models.FlowTotals, merchant, fromCategory, toCategory string) (*models.AggregateSnapshot, map[int]string) {
	next := make(map[int]string, len(assignment))
	for id, category := range assignment {
		next[id] = category
	}
	for _, item := range items {
		if item.Merchant == merchant && next[item.ID] == fromCategory {
			next[item.ID] = toCategory
		}
	}
	return s.Aggregate(items, next, flows), next
}

func topMerchantTotals(totals map[string]decimal.Decimal, limit int) []models.MerchantTotal {
	out := make([]models.MerchantTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, models.MerchantTotal{Merchant: name, Amount: total})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Merchant < out[j].Merchant
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

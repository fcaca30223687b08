package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MerchantTotal is one merchant subtotal inside a category aggregate.
type MerchantTotal struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryAggregate is the derived breakdown for one category. It is
// always recomputed from line items plus the reconciled assignment,
// never taken from model output.
type CategoryAggregate struct {
	Category  string          `json:"category"`
	Total     decimal.Decimal `json:"total"`
	TxnIDs    []int           `json:"txnIds"`
	Merchants []MerchantTotal `json:"merchants"`
}

// AggregateSnapshot is the full deterministic aggregation result for
// one analysis request. Snapshots are immutable; the merchant
// reassignment reducer returns a new snapshot rather than mutating one.
type AggregateSnapshot struct {
	Categories        []CategoryAggregate `json:"categories"`
	TotalExpenses     decimal.Decimal     `json:"totalExpenses"`
	GrossSpend        decimal.Decimal     `json:"grossSpend"`
	RefundsTotal      decimal.Decimal     `json:"refundsTotal"`
	BillPaymentsTotal decimal.Decimal     `json:"billPaymentsTotal"`
	PayrollTotal      decimal.Decimal     `json:"payrollTotal"`
	TransfersTotal    decimal.Decimal     `json:"transfersTotal"`
	InvestmentsTotal  decimal.Decimal     `json:"investmentsTotal"`
	NetCashFlow       decimal.Decimal     `json:"netCashFlow"`
	PeriodStart       *time.Time          `json:"-"`
	PeriodEnd         *time.Time          `json:"-"`
}

// FlowTotals accumulates the non-spend flows removed from the
// categorization set by the flow classifier.
type FlowTotals struct {
	Payroll      decimal.Decimal
	BillPayments decimal.Decimal
	Transfers    decimal.Decimal
	Investments  decimal.Decimal
}

// MerchantActivity is one merchant row in the insights summary.
type MerchantActivity struct {
	Merchant string          `json:"merchant"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// CategoryShare is one category row in the insights summary, with its
// share of gross spend.
type CategoryShare struct {
	Category               string          `json:"category"`
	Total                  decimal.Decimal `json:"total"`
	PercentageOfGrossSpend decimal.Decimal `json:"percentageOfGrossSpend"`
	TopMerchants           []MerchantTotal `json:"topMerchants"`
}

// InsightsSummary is the only data ever shown to the insights model:
// aggregates, never raw transactions.
type InsightsSummary struct {
	PeriodStart                   string             `json:"periodStart,omitempty"`
	PeriodEnd                     string             `json:"periodEnd,omitempty"`
	TransactionCount              int                `json:"transactionCount"`
	GrossSpend                    decimal.Decimal    `json:"grossSpend"`
	RefundsTotal                  decimal.Decimal    `json:"refundsTotal"`
	NetSpend                      decimal.Decimal    `json:"netSpend"`
	BillPaymentsTotal             decimal.Decimal    `json:"billPaymentsTotal"`
	PayrollTotal                  decimal.Decimal    `json:"payrollTotal"`
	NetCashFlow                   decimal.Decimal    `json:"netCashFlow"`
	TopMerchants                  []MerchantActivity `json:"topMerchants"`
	TopCategories                 []CategoryShare    `json:"topCategories"`
	Top3CategoriesTotal           decimal.Decimal    `json:"top3CategoriesTotal"`
	Top3CategoriesPctOfGrossSpend decimal.Decimal    `json:"top3CategoriesPctOfGrossSpend"`
}

// Insights is the narrative block produced by the insights model.
type Insights struct {
	Highlights          []string `json:"highlights"`
	TopSpendingCategory string   `json:"topSpendingCategory"`
	TopMerchant         string   `json:"topMerchant"`
	ConcentrationNotes  []string `json:"concentrationNotes"`
	OptimizationIdeas   []string `json:"optimizationIdeas"`
	Anomalies           []string `json:"anomalies"`
}

package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"spendlens/internal/models"
)

// flowRule pairs a predicate with the flow it assigns. Rules are
// evaluated in order and the first match wins.
type flowRule struct {
	flow  string
	match func(desc string, amount decimal.Decimal) bool
}

var payrollKeywords = []string{
	"payroll",
	"salary",
	"direct deposit",
	"paycheck",
	"ach credit",
	"employer",
}

var transferKeywords = []string{
	"transfer to",
	"transfer from",
	"online transfer",
	"wire transfer",
	"ach transfer",
	"credit card payment",
	"crcardpmt",
	"epayment",
	"e-payment",
}

var investmentKeywords = []string{
	"vanguard",
	"fidelity",
	"schwab",
	"robinhood",
	"etrade",
	"brokerage",
	"401k",
	"401(k)",
	"ira contribution",
	"roth ira",
}

var billPaymentKeywords = []string{
	"payment",
	"thank you",
	"autopay",
	"bill pay",
	"billpay",
}

// FlowClassifier implements the ordered keyword rule table. Payroll is
// checked first and only matches credits, so a description carrying
// both payroll and transfer language still lands on payroll. Transfers
// are checked before bill payments, which routes card-issuer ACH
// settlement strings to the transfer bucket rather than bill payments.
type FlowClassifier struct {
	rules []flowRule
}

func NewFlowClassifier() *FlowClassifier {
	return &FlowClassifier{
		rules: []flowRule{
			{
				flow: models.FlowPayroll,
				match: func(desc string, amount decimal.Decimal) bool {
					return amount.IsPositive() && containsAny(desc, payrollKeywords)
				},
			},
			{
				flow: models.FlowTransfer,
				match: func(desc string, _ decimal.Decimal) bool {
					return containsAny(desc, transferKeywords)
				},
			},
			{
				flow: models.FlowInvestment,
				match: func(desc string, _ decimal.Decimal) bool {
					return containsAny(desc, investmentKeywords)
				},
			},
			{
				flow: models.FlowBillPayment,
				match: func(desc string, _ decimal.Decimal) bool {
					return containsAny(desc, billPaymentKeywords)
				},
			},
		},
	}
}

func (fc *FlowClassifier) Classify(description string, amount decimal.Decimal) string {
	desc := strings.ToLower(description)
	for _, rule := range fc.rules {
		if rule.match(desc, amount) {
			return rule.flow
		}
	}
	return models.FlowOrdinary
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

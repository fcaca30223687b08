package models

// Flow types assigned to raw rows before line item normalization.
// Only FlowOrdinary rows become categorizable line items; the other
// flows are tracked as standalone totals.
const (
	FlowPayroll     = "payroll"
	FlowTransfer    = "transfer"
	FlowInvestment  = "investment"
	FlowBillPayment = "bill_payment"
	FlowOrdinary    = "ordinary"
)

// AllFlows returns all valid flow constants
func AllFlows() []string {
	return []string{
		FlowPayroll,
		FlowTransfer,
		FlowInvestment,
		FlowBillPayment,
		FlowOrdinary,
	}
}

// IsValidFlow checks if a flow string is valid
func IsValidFlow(flow string) bool {
	for _, validFlow := range AllFlows() {
		if flow == validFlow {
			return true
		}
	}
	return false
}

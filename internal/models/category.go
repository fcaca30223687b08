package models

// Closed category vocabulary offered to the model. The strings must
// match the prompt vocabulary exactly; ad hoc labels only ever enter
// through the client-side reassignment feature, never from the model.
const (
	CategorySubscriptions = "Subscriptions"
	CategoryBills         = "Bills"
	CategoryDining        = "Dining"
	CategoryGroceries     = "Groceries"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryHealth        = "Health"
	CategoryTravel        = "Travel"
	CategoryEntertainment = "Entertainment"
	CategoryFees          = "Fees"
	CategoryRefunds       = "Refunds"
	CategoryOther         = "Other"
)

// AllCategories returns the closed category vocabulary in prompt order
func AllCategories() []string {
	return []string{
		CategorySubscriptions,
		CategoryBills,
		CategoryDining,
		CategoryGroceries,
		CategoryTransport,
		CategoryShopping,
		CategoryHealth,
		CategoryTravel,
		CategoryEntertainment,
		CategoryFees,
		CategoryRefunds,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string belongs to the closed vocabulary
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

package domain

import "github.com/shopspring/decimal"

// RevenueSources maps a revenue channel name (e.g. worker fees, tool fees) to
// the amount collected from it. Amounts are non-negative by convention.
type RevenueSources map[string]decimal.Decimal

// Total returns the exact decimal sum of all amounts. An empty map totals zero.
func (r RevenueSources) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range r {
		total = total.Add(amount)
	}
	return total
}

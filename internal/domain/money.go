package domain

import "fmt"

// Money is an amount in the currency's minor unit (cents for USD)
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// Display formats the amount as a dollar string such as "$12.50"
func (m Money) Display() string {
	amount := m.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s$%d.%02d", sign, amount/100, amount%100)
}

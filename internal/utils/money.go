package utils

import "fmt"

// FormatMoney keeps consistent decimal formatting for fare fields. Fares are
// denominated in a single implied currency unit; no conversion happens here.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

package view

import (
	"fmt"
	"time"
)

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatQuantity renders a quantity with its unit, e.g. "12 box".
func FormatQuantity(qty int64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%d", qty)
	}

	return fmt.Sprintf("%d %s", qty, unit)
}

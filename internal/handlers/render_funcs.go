package handlers

import (
	"fmt"
	"strings"

	"phonetech/internal/models"
	"phonetech/internal/pricing"
	"phonetech/internal/reports"
)

func currencyFunc(amount float64) string {
	return pricing.Currency(amount)
}

// stockLabelFunc renders the stock badge text, including the low-stock
// countdown.
func stockLabelFunc(p models.Phone) string {
	if p.Status() == models.StockLow {
		return fmt.Sprintf("Only %d left", p.StockQuantity)
	}
	return reports.StockLabel(p)
}

func statusTitleFunc(status string) string {
	if status == "" {
		return status
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

func hasFeatureFunc(list models.FeatureList, feature string) bool {
	for _, f := range list {
		if f == feature {
			return true
		}
	}
	return false
}

func shortDateFunc(o models.Order) string {
	t := o.CreatedTime()
	if t.IsZero() {
		return o.CreatedAt
	}
	return t.Format("Jan 2, 2006")
}

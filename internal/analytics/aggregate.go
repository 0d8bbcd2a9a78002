package analytics

import "github.com/sachin6736/crmproject-sub002/models"

// TotalOrders is the synthetic pseudo-status summing every real status
// count within one window. It is computed per window, never copied.
const TotalOrders = "TotalOrders"

// Summary is the flat analytics payload returned to dashboards.
type Summary struct {
	// StatusComparison maps window name -> status -> count.
	StatusComparison map[string]map[string]int `json:"statusComparison"`
	// OrderAmountTotals sums order amounts per window.
	OrderAmountTotals map[string]float64 `json:"orderAmountTotals"`
	// POSentCount / POSentTotalAmount cover orders with at least one
	// POSent vendor line. The total sums those vendor lines' costs, a
	// deliberately different basis from OrderAmountTotals.
	POSentCount       int     `json:"poSentCount"`
	POSentTotalAmount float64 `json:"poSentTotalAmount"`
}

// Aggregate computes per-window, per-status counts and dollar totals over
// the given orders. Read-only and deterministic: the same inputs always
// produce the same output regardless of slice order.
func Aggregate(orders []models.Order, windows []Window) Summary {
	s := Summary{
		StatusComparison:  make(map[string]map[string]int, len(windows)),
		OrderAmountTotals: make(map[string]float64, len(windows)),
	}

	for _, w := range windows {
		counts := map[string]int{}
		total := 0.0
		for i := range orders {
			o := &orders[i]
			if !w.Contains(o.CreatedAt) {
				continue
			}
			counts[o.Status]++
			counts[TotalOrders]++
			total += o.Amount
		}
		s.StatusComparison[w.Name] = counts
		s.OrderAmountTotals[w.Name] = total
	}

	for i := range orders {
		sent, found := poSentCost(&orders[i])
		if found {
			s.POSentCount++
			s.POSentTotalAmount += sent
		}
	}

	return s
}

// poSentCost sums the cost of an order's POSent vendor lines. The second
// return is false when no line is in POSent, which is what keeps the order
// out of the PO-Sent aggregate entirely.
func poSentCost(o *models.Order) (float64, bool) {
	total := 0.0
	found := false
	for _, v := range o.Vendors {
		if v.PoStatus == models.PoStatusSent {
			total += v.TotalCost
			found = true
		}
	}
	return total, found
}

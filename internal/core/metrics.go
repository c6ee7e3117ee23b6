package core

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TotalInventoryValue is the exact valuation of the catalog:
// the sum of unit price times stock level over every product.
func TotalInventoryValue(catalog []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range catalog {
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.StockLevel))))
	}
	return total
}

// LowStockCount counts products at or below their reorder point. It
// evaluates the live quantities, not the stored Status field, so a badge
// left stale by an update can never desynchronize the KPI.
func LowStockCount(catalog []Product) int {
	n := 0
	for _, p := range catalog {
		if p.StockLevel <= p.ReorderPoint {
			n++
		}
	}
	return n
}

// PendingOperationsCount counts operations that are still open, i.e.
// neither Done nor Cancelled.
func PendingOperationsCount(ops []Operation) int {
	n := 0
	for _, op := range ops {
		if op.Status != OpDone && op.Status != OpCancelled {
			n++
		}
	}
	return n
}

// kpiRecompute maps the ids of the dynamic KPI rows to their recompute
// functions. Rows without an entry pass through the template unchanged,
// which keeps the decision of which KPIs are live in one place.
var kpiRecompute = map[string]func(kpi KPI, catalog []Product, ops []Operation) KPI{
	"2": func(kpi KPI, catalog []Product, _ []Operation) KPI {
		n := LowStockCount(catalog)
		kpi.Value = strconv.Itoa(n)
		kpi.IsLowStock = n > 0
		return kpi
	},
	"4": func(kpi KPI, catalog []Product, _ []Operation) KPI {
		kpi.Value = FormatRupees(TotalInventoryValue(catalog))
		return kpi
	},
}

// ComputeKPIs substitutes the dynamic rows of the ordered KPI template
// with values derived from the live catalog and operation ledger.
func ComputeKPIs(template []KPI, catalog []Product, ops []Operation) []KPI {
	out := make([]KPI, len(template))
	for i, kpi := range template {
		if recompute, ok := kpiRecompute[kpi.ID]; ok {
			kpi = recompute(kpi, catalog, ops)
		}
		out[i] = kpi
	}
	return out
}

// FormatRupees renders a money value with the rupee symbol and Indian
// digit grouping: the last three digits form one group, the rest pair off
// (452000 -> ₹4,52,000). A fractional part is kept at two places.
func FormatRupees(v decimal.Decimal) string {
	frac := ""
	if !v.Equal(v.Truncate(0)) {
		fixed := v.StringFixed(2)
		if i := strings.IndexByte(fixed, '.'); i >= 0 {
			frac = fixed[i:]
		}
	}

	intPart := v.Truncate(0).String()
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	return "₹" + sign + groupIndian(intPart) + frac
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	groups := []string{digits[len(digits)-3:]}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",")
}

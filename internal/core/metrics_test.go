package core_test

import (
	"testing"

	"stockmaster/internal/core"

	"github.com/shopspring/decimal"
)

func TestLowStockCount(t *testing.T) {
	tests := []struct {
		name    string
		catalog []core.Product
		want    int
	}{
		{"empty catalog", nil, 0},
		{
			"one of two products at reorder point",
			[]core.Product{
				{ID: "1", StockLevel: 5, ReorderPoint: 10},
				{ID: "2", StockLevel: 50, ReorderPoint: 10},
			},
			1,
		},
		{
			"all-zero reorder points count zero stock",
			[]core.Product{
				{ID: "1", StockLevel: 0, ReorderPoint: 0},
				{ID: "2", StockLevel: 1, ReorderPoint: 0},
			},
			1,
		},
		{
			"ignores the stored status field",
			[]core.Product{
				{ID: "1", StockLevel: 2, ReorderPoint: 10, Status: core.InStock},
			},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.LowStockCount(tt.catalog); got != tt.want {
				t.Errorf("LowStockCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalInventoryValue(t *testing.T) {
	catalog := []core.Product{
		{ID: "1", StockLevel: 3, UnitPrice: decimal.RequireFromString("10.50")},
		{ID: "2", StockLevel: 0, UnitPrice: decimal.RequireFromString("999.99")},
		{ID: "3", StockLevel: 2, UnitPrice: decimal.RequireFromString("0.01")},
	}
	want := decimal.RequireFromString("31.52")
	if got := core.TotalInventoryValue(catalog); !got.Equal(want) {
		t.Errorf("TotalInventoryValue = %s, want %s", got, want)
	}

	if got := core.TotalInventoryValue(nil); !got.IsZero() {
		t.Errorf("TotalInventoryValue(empty) = %s, want 0", got)
	}
}

func TestPendingOperationsCount(t *testing.T) {
	ops := []core.Operation{
		{ID: "a", Status: core.OpDone},
		{ID: "b", Status: core.OpWaiting},
		{ID: "c", Status: core.OpCancelled},
	}
	if got := core.PendingOperationsCount(ops); got != 1 {
		t.Errorf("PendingOperationsCount = %d, want 1", got)
	}
}

func TestComputeKPIs_SubstitutesDynamicRows(t *testing.T) {
	catalog := []core.Product{
		{ID: "1", StockLevel: 5, ReorderPoint: 10, UnitPrice: decimal.NewFromInt(100)},
		{ID: "2", StockLevel: 50, ReorderPoint: 10, UnitPrice: decimal.NewFromInt(9000)},
	}
	template := core.SeedKPIs()
	kpis := core.ComputeKPIs(template, catalog, core.SeedOperations())

	if len(kpis) != len(template) {
		t.Fatalf("len = %d, want %d", len(kpis), len(template))
	}
	for i, kpi := range kpis {
		if kpi.ID != template[i].ID {
			t.Errorf("row %d has id %q, want %q (order must be preserved)", i, kpi.ID, template[i].ID)
		}
	}

	if kpis[1].Value != "1" {
		t.Errorf("low-stock KPI = %q, want %q", kpis[1].Value, "1")
	}
	if !kpis[1].IsLowStock {
		t.Errorf("low-stock KPI should flag IsLowStock")
	}
	// 5*100 + 50*9000 = 450500
	if kpis[3].Value != "₹4,50,500" {
		t.Errorf("valuation KPI = %q, want %q", kpis[3].Value, "₹4,50,500")
	}

	// Static rows pass through untouched.
	if kpis[0] != template[0] || kpis[2] != template[2] {
		t.Errorf("static KPI rows were modified: %+v", kpis)
	}
}

func TestComputeKPIs_NoLowStock(t *testing.T) {
	catalog := []core.Product{{ID: "1", StockLevel: 99, ReorderPoint: 1}}
	kpis := core.ComputeKPIs(core.SeedKPIs(), catalog, nil)
	if kpis[1].Value != "0" || kpis[1].IsLowStock {
		t.Errorf("low-stock KPI = %q isLowStock=%v, want 0/false", kpis[1].Value, kpis[1].IsLowStock)
	}
}

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"999", "₹999"},
		{"1000", "₹1,000"},
		{"45000", "₹45,000"},
		{"452000", "₹4,52,000"},
		{"1234567", "₹12,34,567"},
		{"123456789", "₹12,34,56,789"},
		{"1234.5", "₹1,234.50"},
		{"89.99", "₹89.99"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := core.FormatRupees(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("FormatRupees(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

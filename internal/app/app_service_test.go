package app_test

import (
	"context"
	"errors"
	"testing"

	"stockmaster/internal/app"
	"stockmaster/internal/core"

	"github.com/shopspring/decimal"
)

func newSeededService() app.ApplicationService {
	return app.NewAppService(
		core.NewCatalogService(core.SeedProducts()),
		core.SeedOperations(),
		core.SeedMoveHistory(),
		core.SeedKPIs(),
		core.SeedStockTrend(),
		core.SeedUser(),
		nil,
	)
}

func strField(s string) *string { return &s }

func TestGetDashboard(t *testing.T) {
	svc := newSeededService()
	dash := svc.GetDashboard()

	if len(dash.KPIs) != 4 {
		t.Fatalf("kpi rows = %d, want 4", len(dash.KPIs))
	}
	// Two seed products sit at or below their reorder points: the office
	// chair (12 <= 15) and the docking station (0 <= 5).
	if dash.KPIs[1].Value != "2" || !dash.KPIs[1].IsLowStock {
		t.Errorf("low-stock KPI = %q isLowStock=%v, want 2/true", dash.KPIs[1].Value, dash.KPIs[1].IsLowStock)
	}
	if len(dash.RecentProducts) != 5 {
		t.Errorf("recent products = %d, want 5", len(dash.RecentProducts))
	}
	if len(dash.RecentOperations) != 4 {
		t.Errorf("recent operations = %d, want 4", len(dash.RecentOperations))
	}
	// Three of the four seed operations are neither Done nor Cancelled.
	if dash.PendingOrdersCount != 3 {
		t.Errorf("pending orders = %d, want 3", dash.PendingOrdersCount)
	}
	if dash.TotalInventoryValue.IsZero() {
		t.Errorf("total inventory value should be non-zero for the seed catalog")
	}

	want := core.TotalInventoryValue(core.SeedProducts())
	if !dash.TotalInventoryValue.Equal(want) {
		t.Errorf("total inventory value = %s, want %s", dash.TotalInventoryValue, want)
	}
}

func TestSaveProduct_CreateCoercesNumericFields(t *testing.T) {
	svc := app.NewAppService(
		core.NewCatalogService(nil),
		nil, nil, core.SeedKPIs(), nil, core.SeedUser(), nil,
	)

	result, err := svc.SaveProduct(app.SaveProductRequest{
		Name:         strField("Widget"),
		Category:     strField("Tools"),
		StockLevel:   strField("not-a-number"),
		ReorderPoint: strField("5"),
		UnitPrice:    strField("10"),
	})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}
	if !result.Created {
		t.Errorf("Created = false, want true")
	}
	if result.Product.ID != "1" {
		t.Errorf("id = %q, want %q", result.Product.ID, "1")
	}
	if result.Product.StockLevel != 0 {
		t.Errorf("malformed stockLevel coerced to %d, want 0", result.Product.StockLevel)
	}
	if result.Product.Status != core.OutOfStock {
		t.Errorf("status = %q, want %q", result.Product.Status, core.OutOfStock)
	}
	if !result.Product.UnitPrice.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unitPrice = %s, want 10", result.Product.UnitPrice)
	}
}

func TestSaveProduct_UpdateThroughFacade(t *testing.T) {
	svc := newSeededService()

	result, err := svc.SaveProduct(app.SaveProductRequest{
		ID:         "3",
		StockLevel: strField("5"),
	})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}
	if result.Created {
		t.Errorf("Created = true, want false")
	}
	if result.Product.StockLevel != 5 {
		t.Errorf("stockLevel = %d, want 5", result.Product.StockLevel)
	}
	// The dashboard KPI reads live quantities, so the update lifts the
	// keyboard into the low-stock count alongside the two seed rows even
	// though the stored status badge was not reclassified.
	dash := svc.GetDashboard()
	if dash.KPIs[1].Value != "3" {
		t.Errorf("low-stock KPI after update = %q, want 3", dash.KPIs[1].Value)
	}
	if result.Product.Status != core.InStock {
		t.Errorf("update path reclassified the badge to %q", result.Product.Status)
	}
}

func TestSaveProduct_UpdateMissingID(t *testing.T) {
	svc := newSeededService()
	_, err := svc.SaveProduct(app.SaveProductRequest{ID: "404", Name: strField("ghost")})
	var notFound *core.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want *core.NotFoundError", err)
	}
}

func TestExecuteWriteTool_SaveProduct(t *testing.T) {
	// Tool arguments arrive as a generic JSON object, so quantities are
	// float64 values that must survive the trip into the catalog.
	tests := []struct {
		name        string
		args        map[string]any
		wantCreated bool
		wantID      string
		wantStock   int
		wantPrice   string
		wantStatus  core.StockStatus
	}{
		{
			name: "create with defaulted reorder point",
			args: map[string]any{
				"name":       "Cable Organizer",
				"category":   "Accessories",
				"stockLevel": float64(3),
				"unitPrice":  float64(45.5),
			},
			wantCreated: true,
			wantID:      "8",
			wantStock:   3,
			wantPrice:   "45.5",
			wantStatus:  core.LowStock,
		},
		{
			name:        "update keeps the stored badge",
			args:        map[string]any{"id": "3", "stockLevel": float64(5)},
			wantCreated: false,
			wantID:      "3",
			wantStock:   5,
			wantPrice:   "129.50",
			wantStatus:  core.InStock,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newSeededService()
			result, err := svc.ExecuteWriteTool(context.Background(), "save_product", tc.args)
			if err != nil {
				t.Fatalf("ExecuteWriteTool: %v", err)
			}
			if result.Created != tc.wantCreated {
				t.Errorf("Created = %v, want %v", result.Created, tc.wantCreated)
			}
			if result.Product.ID != tc.wantID {
				t.Errorf("id = %q, want %q", result.Product.ID, tc.wantID)
			}
			if result.Product.StockLevel != tc.wantStock {
				t.Errorf("stockLevel = %d, want %d", result.Product.StockLevel, tc.wantStock)
			}
			if !result.Product.UnitPrice.Equal(decimal.RequireFromString(tc.wantPrice)) {
				t.Errorf("unitPrice = %s, want %s", result.Product.UnitPrice, tc.wantPrice)
			}
			if result.Product.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", result.Product.Status, tc.wantStatus)
			}
		})
	}
}

func TestExecuteWriteTool_UnknownTool(t *testing.T) {
	svc := newSeededService()
	if _, err := svc.ExecuteWriteTool(context.Background(), "delete_everything", nil); err == nil {
		t.Fatalf("expected an error for an unregistered write tool")
	}
}

func TestListProducts_FilterComposition(t *testing.T) {
	svc := newSeededService()

	result := svc.ListProducts("stand", "Furniture")
	if len(result.Products) != 1 || result.Products[0].ID != "6" {
		t.Fatalf("filtered products = %+v, want only the desk frame", result.Products)
	}
	if len(result.Categories) != 4 || result.Categories[0] != core.CategoryAll {
		t.Errorf("categories = %v, want All-prefixed seed categories", result.Categories)
	}
}

func TestListPendingOrders(t *testing.T) {
	svc := newSeededService()
	result := svc.ListPendingOrders()
	if len(result.Operations) != 3 {
		t.Fatalf("pending operations = %d, want 3", len(result.Operations))
	}
	for _, op := range result.Operations {
		if op.Status == core.OpDone || op.Status == core.OpCancelled {
			t.Errorf("operation %s with status %q should not be pending", op.Reference, op.Status)
		}
	}
}

func TestMoveHistoryBoard(t *testing.T) {
	svc := newSeededService()
	board := svc.MoveHistoryBoard("")
	if len(board.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(board.Stages))
	}

	filtered := svc.MoveHistoryBoard("keyboard")
	if len(filtered.Stages) != 1 || filtered.Stages[0].Stage != "Done" {
		t.Errorf("filtered board = %+v, want single Done column", filtered.Stages)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newSeededService()

	updated := svc.UpdateProfile(app.UpdateProfileRequest{Name: "Jo Doe", Email: "jo@stockmaster.com"})
	if updated.Name != "Jo Doe" || updated.Email != "jo@stockmaster.com" {
		t.Errorf("profile = %+v, want updated name and email", updated)
	}
	if svc.GetUser().Name != "Jo Doe" {
		t.Errorf("GetUser did not observe the profile update")
	}
	// Blank fields keep their current values.
	kept := svc.UpdateProfile(app.UpdateProfileRequest{Email: "new@stockmaster.com"})
	if kept.Name != "Jo Doe" {
		t.Errorf("blank name overwrote the profile: %+v", kept)
	}
}

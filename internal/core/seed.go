package core

import "github.com/shopspring/decimal"

// Built-in demo dataset. The operation ledger and move history are the
// engine's read-only reference data; the product seed is only the starting
// catalog and is owned by the CatalogService after construction. Every
// function returns a fresh copy so callers can mutate freely.

// SeedUser returns the default signed-in profile.
func SeedUser() User {
	return User{
		ID:        "u-1",
		Name:      "Alex Sterling",
		Email:     "alex@stockmaster.com",
		Role:      "Manager",
		AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
	}
}

// SeedKPIs returns the ordered dashboard KPI template. Rows "2" and "4"
// are placeholders overwritten by ComputeKPIs.
func SeedKPIs() []KPI {
	return []KPI{
		{ID: "1", Label: "Total Products", Value: "1,234", Trend: 12, TrendDirection: TrendUp, Icon: "box"},
		{ID: "2", Label: "Low Stock Items", Value: "23", Trend: 5, TrendDirection: TrendDown, Icon: "alert", IsLowStock: true},
		{ID: "3", Label: "Pending Receipts", Value: "4", Icon: "truck"},
		{ID: "4", Label: "Total Valuation", Value: "₹4,52,000", Trend: 2.4, TrendDirection: TrendUp, Icon: "dollar"},
	}
}

// SeedProducts returns the demo starting catalog.
func SeedProducts() []Product {
	return []Product{
		{ID: "1", SKU: "SM-1001", Name: "Wireless Noise-Canceling Headphones", Category: "Electronics", StockLevel: 142, Available: 130, ReorderPoint: 20, UnitPrice: decimal.RequireFromString("299.00"), Status: InStock, LastUpdated: "2023-10-25"},
		{ID: "2", SKU: "SM-1002", Name: "Ergonomic Office Chair Pro", Category: "Furniture", StockLevel: 12, Available: 10, ReorderPoint: 15, UnitPrice: decimal.RequireFromString("450.00"), Status: LowStock, LastUpdated: "2023-10-24"},
		{ID: "3", SKU: "SM-1003", Name: "Mechanical Keyboard RGB", Category: "Electronics", StockLevel: 85, Available: 85, ReorderPoint: 10, UnitPrice: decimal.RequireFromString("129.50"), Status: InStock, LastUpdated: "2023-10-26"},
		{ID: "4", SKU: "SM-1004", Name: "USB-C Docking Station", Category: "Accessories", StockLevel: 0, Available: 0, ReorderPoint: 5, UnitPrice: decimal.RequireFromString("89.99"), Status: OutOfStock, LastUpdated: "2023-10-20"},
		{ID: "5", SKU: "SM-1005", Name: "27-inch 4K Monitor", Category: "Electronics", StockLevel: 45, Available: 43, ReorderPoint: 10, UnitPrice: decimal.RequireFromString("349.00"), Status: InStock, LastUpdated: "2023-10-25"},
		{ID: "6", SKU: "SM-1006", Name: "Standing Desk Frame", Category: "Furniture", StockLevel: 33, Available: 33, ReorderPoint: 8, UnitPrice: decimal.RequireFromString("299.00"), Status: InStock, LastUpdated: "2023-10-22"},
		{ID: "7", SKU: "SM-1007", Name: "Laptop Stand Aluminum", Category: "Accessories", StockLevel: 210, Available: 200, ReorderPoint: 30, UnitPrice: decimal.RequireFromString("45.00"), Status: InStock, LastUpdated: "2023-10-26"},
	}
}

// SeedOperations returns the fixed warehouse operation ledger.
func SeedOperations() []Operation {
	return []Operation{
		{
			ID:           "op-1",
			Reference:    "WH/IN/0001",
			Contact:      "Azure Interior",
			ScheduleDate: "2023-10-27 10:00 AM",
			Status:       OpReady,
			Type:         Receipt,
			Lines: []OperationLine{
				{ID: "l-1", ProductID: "1", ProductName: "Wireless Noise-Canceling Headphones", Demand: 50, Done: 0},
				{ID: "l-2", ProductID: "3", ProductName: "Mechanical Keyboard RGB", Demand: 20, Done: 0},
			},
		},
		{
			ID:           "op-2",
			Reference:    "WH/IN/0002",
			Contact:      "Deco Addict",
			ScheduleDate: "2023-10-28 02:30 PM",
			Status:       OpWaiting,
			Type:         Receipt,
			Lines: []OperationLine{
				{ID: "l-3", ProductID: "6", ProductName: "Standing Desk Frame", Demand: 10, Done: 0},
			},
		},
		{
			ID:           "op-3",
			Reference:    "WH/OUT/0001",
			Contact:      "Gemini Solutions",
			ScheduleDate: "2023-10-26 09:15 AM",
			Status:       OpDone,
			Type:         Delivery,
			Lines: []OperationLine{
				{ID: "l-4", ProductID: "5", ProductName: "27-inch 4K Monitor", Demand: 2, Done: 2},
			},
		},
		{
			ID:           "op-4",
			Reference:    "WH/IN/0003",
			Contact:      "Lumber Inc",
			ScheduleDate: "2023-10-29 11:00 AM",
			Status:       OpDraft,
			Type:         Receipt,
		},
	}
}

// SeedMoveHistory returns the fixed historical transfer records.
func SeedMoveHistory() []MoveHistoryItem {
	return []MoveHistoryItem{
		{ID: "mh-1", Date: "12/1/2023", Product: "Wireless Headphones", Reference: "WH/IN/0001", From: "Vendor", To: "WH/Stock1", Quantity: 50, Type: MoveIn, Contact: "Azure Interior", Status: "Ready"},
		{ID: "mh-2", Date: "12/1/2023", Product: "4K Monitor", Reference: "WH/OUT/0002", From: "WH/Stock1", To: "Vendor", Quantity: 2, Type: MoveOut, Contact: "Azure Interior", Status: "Ready"},
		{ID: "mh-3", Date: "12/1/2023", Product: "Office Chair", Reference: "WH/OUT/0002", From: "WH/Stock2", To: "Vendor", Quantity: 1, Type: MoveOut, Contact: "Azure Interior", Status: "Ready"},
		{ID: "mh-4", Date: "12/1/2023", Product: "Docking Station", Reference: "WH/INT/0005", From: "Stock Zone A", To: "Stock Zone B", Quantity: 15, Type: MoveInternal, Contact: "Internal", Status: "Done"},
		{ID: "mh-5", Date: "11/1/2023", Product: "Mechanical Keyboard", Reference: "WH/IN/0002", From: "Vendor", To: "Stock", Quantity: 100, Type: MoveIn, Contact: "Deco Addict", Status: "Done"},
	}
}

// SeedStockTrend returns the weekly total-stock samples for the dashboard
// chart.
func SeedStockTrend() []StockTrendPoint {
	return []StockTrendPoint{
		{Name: "Mon", Stock: 1180},
		{Name: "Tue", Stock: 1200},
		{Name: "Wed", Stock: 1150},
		{Name: "Thu", Stock: 1220},
		{Name: "Fri", Stock: 1234},
		{Name: "Sat", Stock: 1230},
		{Name: "Sun", Stock: 1234},
	}
}

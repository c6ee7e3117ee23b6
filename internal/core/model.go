package core

import "github.com/shopspring/decimal"

// StockStatus is the derived stock health of a product.
type StockStatus string

const (
	InStock    StockStatus = "In Stock"
	LowStock   StockStatus = "Low Stock"
	OutOfStock StockStatus = "Out of Stock"
)

// OperationStatus is the lifecycle stage of a warehouse operation.
type OperationStatus string

const (
	OpDraft     OperationStatus = "Draft"
	OpWaiting   OperationStatus = "Waiting"
	OpReady     OperationStatus = "Ready"
	OpDone      OperationStatus = "Done"
	OpCancelled OperationStatus = "Cancelled"
)

// OperationType distinguishes inbound, outbound and internal operations.
type OperationType string

const (
	Receipt  OperationType = "Receipt"
	Delivery OperationType = "Delivery"
	Internal OperationType = "Internal"
)

// MoveType is the direction of a historical stock transfer.
type MoveType string

const (
	MoveIn       MoveType = "In"
	MoveOut      MoveType = "Out"
	MoveInternal MoveType = "Internal"
)

// CategoryAll is the sentinel category offered by the filter UI.
// It disables category filtering and must never be stored on a product.
const CategoryAll = "All"

// Product is a single stock-keeping unit in the catalog.
// An empty ID marks a draft that has not been committed yet; the save
// transaction allocates the real identity.
type Product struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	StockLevel   int             `json:"stockLevel"`
	Available    int             `json:"available"`
	ReorderPoint int             `json:"reorderPoint"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Status       StockStatus     `json:"status"`
	LastUpdated  string          `json:"lastUpdated"` // YYYY-MM-DD
}

// OperationLine is one requested product quantity on an operation.
type OperationLine struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"` // snapshot at creation time
	Demand      int    `json:"demand"`
	Done        int    `json:"done"`
}

// Operation is a warehouse receipt, delivery or internal transfer document.
// Operations are reference data: the engine reads them for KPIs and search
// but never mutates them.
type Operation struct {
	ID             string          `json:"id"`
	Reference      string          `json:"reference"` // e.g. WH/IN/0001
	Contact        string          `json:"contact"`
	ScheduleDate   string          `json:"scheduleDate"`
	SourceDocument string          `json:"sourceDocument,omitempty"`
	Status         OperationStatus `json:"status"`
	Type           OperationType   `json:"type"`
	Lines          []OperationLine `json:"lines"`
}

// MoveHistoryItem is a flattened record of a completed or staged transfer
// between two locations.
type MoveHistoryItem struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Product   string   `json:"product"` // name snapshot
	Reference string   `json:"reference"`
	Contact   string   `json:"contact"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Quantity  int      `json:"quantity"`
	Type      MoveType `json:"type"`
	Status    string   `json:"status"` // free-text stage label, used for grouping
}

// TrendDirection indicates which way a KPI has moved.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// KPI is a single dashboard metric. Most rows are static display values;
// the low-stock and valuation rows are recomputed from the live catalog.
type KPI struct {
	ID             string         `json:"id"`
	Label          string         `json:"label"`
	Value          string         `json:"value"`
	Trend          float64        `json:"trend,omitempty"` // percentage
	TrendDirection TrendDirection `json:"trendDirection,omitempty"`
	Icon           string         `json:"icon"` // box | alert | truck | dollar
	IsLowStock     bool           `json:"isLowStock,omitempty"`
}

// StockTrendPoint is one sample of the dashboard stock-over-time chart.
type StockTrendPoint struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// User is the signed-in profile shown in the navbar and settings view.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"` // Admin | Manager | Staff
	AvatarURL string `json:"avatarUrl,omitempty"`
}

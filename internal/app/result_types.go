package app

import (
	"stockmaster/internal/core"

	"github.com/shopspring/decimal"
)

// DashboardResult is returned by GetDashboard.
type DashboardResult struct {
	User                core.User
	KPIs                []core.KPI
	RecentProducts      []core.Product
	RecentOperations    []core.Operation
	StockTrend          []core.StockTrendPoint
	TotalInventoryValue decimal.Decimal // raw figure for the navbar and profile panel
	PendingOrdersCount  int
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Products   []core.Product
	Categories []string
}

// ProductResult is returned by SaveProduct and ExecuteWriteTool.
type ProductResult struct {
	Product core.Product
	Created bool
}

// OperationListResult is returned by ListOperations and ListPendingOrders.
type OperationListResult struct {
	Operations []core.Operation
}

// MoveHistoryResult is returned by ListMoveHistory.
type MoveHistoryResult struct {
	Items []core.MoveHistoryItem
}

// MoveHistoryBoardResult is returned by MoveHistoryBoard.
type MoveHistoryBoardResult struct {
	Stages []core.HistoryStage
}

// AssistantActionResult is returned by InterpretAction. Either Answer is
// set, or a write tool is proposed and awaits confirmation.
type AssistantActionResult struct {
	Answer       string
	IsProposal   bool
	ProposedTool string
	ProposedArgs map[string]any
	Summary      string
}

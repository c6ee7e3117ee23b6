package app

import (
	"context"

	"stockmaster/internal/core"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI)
// call. It decouples presentation from the engine. Implementations must
// contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// GetDashboard returns the derived dashboard: KPIs, recent products and
	// operations, the stock trend, and the navbar figures.
	GetDashboard() *DashboardResult

	// ListProducts applies the search term and category constraint to the
	// live catalog. An empty term and the "All" category return everything.
	ListProducts(term, category string) *ProductListResult

	// ListCategories returns the category options for the filter dropdown:
	// "All" followed by the distinct categories in first-seen order.
	ListCategories() []string

	// ListOperations applies the search term and the type filter
	// (all | receipt | delivery) to the operation ledger.
	ListOperations(term string, typeFilter core.OperationTypeFilter) *OperationListResult

	// ListPendingOrders returns the operations that are neither Done nor
	// Cancelled.
	ListPendingOrders() *OperationListResult

	// ListMoveHistory applies the search term to the historical transfers.
	ListMoveHistory(term string) *MoveHistoryResult

	// MoveHistoryBoard returns the filtered history grouped into kanban
	// columns by stage label.
	MoveHistoryBoard(term string) *MoveHistoryBoardResult

	// NewProductDraft seeds a blank product draft for the add form.
	NewProductDraft() core.Product

	// SaveProduct commits a create or update through the stock mutation
	// transaction. Numeric form fields that fail to parse are coerced to
	// zero rather than rejected.
	SaveProduct(req SaveProductRequest) (*ProductResult, error)

	// GetUser returns the signed-in profile.
	GetUser() core.User

	// UpdateProfile applies the settings form to the profile.
	UpdateProfile(req UpdateProfileRequest) core.User

	// AskAssistant answers a natural language question over a snapshot of
	// the current inventory state.
	AskAssistant(ctx context.Context, question string) (string, error)

	// InterpretAction routes a natural language input through the agentic
	// tool loop. Read tools run autonomously; a proposed product save is
	// returned for human confirmation instead of being applied.
	InterpretAction(ctx context.Context, input string) (*AssistantActionResult, error)

	// ExecuteWriteTool applies a previously proposed write tool after the
	// user confirmed it.
	ExecuteWriteTool(ctx context.Context, toolName string, args map[string]any) (*ProductResult, error)
}

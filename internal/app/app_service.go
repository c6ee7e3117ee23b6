package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"stockmaster/internal/ai"
	"stockmaster/internal/core"

	"github.com/shopspring/decimal"
)

type appService struct {
	catalog     core.CatalogService
	operations  []core.Operation
	history     []core.MoveHistoryItem
	kpiTemplate []core.KPI
	stockTrend  []core.StockTrendPoint
	user        core.User
	agent       *ai.Agent
}

// NewAppService constructs an appService that satisfies ApplicationService.
// The operation ledger and move history are read-only reference data; the
// catalog is the single mutable collection and agent may be nil when no
// API key is configured.
func NewAppService(
	catalog core.CatalogService,
	operations []core.Operation,
	history []core.MoveHistoryItem,
	kpiTemplate []core.KPI,
	stockTrend []core.StockTrendPoint,
	user core.User,
	agent *ai.Agent,
) ApplicationService {
	return &appService{
		catalog:     catalog,
		operations:  operations,
		history:     history,
		kpiTemplate: kpiTemplate,
		stockTrend:  stockTrend,
		user:        user,
		agent:       agent,
	}
}

// GetDashboard returns the derived dashboard view.
func (s *appService) GetDashboard() *DashboardResult {
	catalog := s.catalog.Snapshot()

	recentProducts := catalog
	if len(recentProducts) > 5 {
		recentProducts = recentProducts[:5]
	}
	recentOps := s.operations
	if len(recentOps) > 4 {
		recentOps = recentOps[:4]
	}

	return &DashboardResult{
		User:                s.user,
		KPIs:                core.ComputeKPIs(s.kpiTemplate, catalog, s.operations),
		RecentProducts:      recentProducts,
		RecentOperations:    recentOps,
		StockTrend:          s.stockTrend,
		TotalInventoryValue: core.TotalInventoryValue(catalog),
		PendingOrdersCount:  core.PendingOperationsCount(s.operations),
	}
}

// ListProducts applies the search term and category constraint to the catalog.
func (s *appService) ListProducts(term, category string) *ProductListResult {
	return &ProductListResult{
		Products:   core.FilterProducts(s.catalog.Snapshot(), term, category),
		Categories: s.catalog.Categories(),
	}
}

// ListCategories returns the category filter options.
func (s *appService) ListCategories() []string {
	return s.catalog.Categories()
}

// ListOperations applies the search term and type filter to the ledger.
func (s *appService) ListOperations(term string, typeFilter core.OperationTypeFilter) *OperationListResult {
	return &OperationListResult{Operations: core.FilterOperations(s.operations, term, typeFilter)}
}

// ListPendingOrders returns the operations still open.
func (s *appService) ListPendingOrders() *OperationListResult {
	pending := make([]core.Operation, 0, len(s.operations))
	for _, op := range s.operations {
		if op.Status != core.OpDone && op.Status != core.OpCancelled {
			pending = append(pending, op)
		}
	}
	return &OperationListResult{Operations: pending}
}

// ListMoveHistory applies the search term to the historical transfers.
func (s *appService) ListMoveHistory(term string) *MoveHistoryResult {
	return &MoveHistoryResult{Items: core.FilterHistory(s.history, term)}
}

// MoveHistoryBoard returns the filtered history grouped by stage.
func (s *appService) MoveHistoryBoard(term string) *MoveHistoryBoardResult {
	return &MoveHistoryBoardResult{
		Stages: core.GroupHistoryByStage(core.FilterHistory(s.history, term)),
	}
}

// NewProductDraft seeds a blank draft for the add form.
func (s *appService) NewProductDraft() core.Product {
	return s.catalog.NewProductDraft()
}

// SaveProduct commits a create or update through the mutation transaction.
func (s *appService) SaveProduct(req SaveProductRequest) (*ProductResult, error) {
	var draft core.Product
	created := req.ID == ""
	if created {
		draft = s.catalog.NewProductDraft()
	} else {
		draft = core.Product{ID: req.ID}
	}

	patch := core.ProductPatch{
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		StockLevel:   intField(req.StockLevel),
		Available:    intField(req.Available),
		ReorderPoint: intField(req.ReorderPoint),
		UnitPrice:    decimalField(req.UnitPrice),
		Status:       statusField(req.Status),
	}

	product, err := s.catalog.SaveProduct(&draft, patch)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: product, Created: created}, nil
}

// GetUser returns the signed-in profile.
func (s *appService) GetUser() core.User {
	return s.user
}

// UpdateProfile applies the settings form to the profile.
func (s *appService) UpdateProfile(req UpdateProfileRequest) core.User {
	if req.Name != "" {
		s.user.Name = req.Name
	}
	if req.Email != "" {
		s.user.Email = req.Email
	}
	if req.AvatarURL != "" {
		s.user.AvatarURL = req.AvatarURL
	}
	return s.user
}

// AskAssistant answers a question over a snapshot of the current state.
func (s *appService) AskAssistant(ctx context.Context, question string) (string, error) {
	if s.agent == nil {
		return "", fmt.Errorf("assistant is not configured; set OPENAI_API_KEY")
	}
	snapshot, err := s.assistantContext()
	if err != nil {
		return "", fmt.Errorf("failed to build assistant context: %w", err)
	}
	return s.agent.Answer(ctx, question, snapshot)
}

// InterpretAction routes a natural language input through the tool loop.
func (s *appService) InterpretAction(ctx context.Context, input string) (*AssistantActionResult, error) {
	if s.agent == nil {
		return nil, fmt.Errorf("assistant is not configured; set OPENAI_API_KEY")
	}

	outcome, err := s.agent.Run(ctx, input, s.toolRegistry())
	if err != nil {
		return nil, err
	}

	if outcome.WriteTool != "" {
		return &AssistantActionResult{
			IsProposal:   true,
			ProposedTool: outcome.WriteTool,
			ProposedArgs: outcome.WriteArgs,
			Summary:      outcome.Summary,
		}, nil
	}
	return &AssistantActionResult{Answer: outcome.Answer}, nil
}

// ExecuteWriteTool applies a confirmed write tool proposal.
func (s *appService) ExecuteWriteTool(ctx context.Context, toolName string, args map[string]any) (*ProductResult, error) {
	if toolName != "save_product" {
		return nil, fmt.Errorf("unknown write tool %s", toolName)
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool arguments: %w", err)
	}
	var parsed ai.SaveProductArgs
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse save_product arguments: %w", err)
	}

	req := SaveProductRequest{ID: parsed.ID}
	if parsed.SKU != "" {
		req.SKU = &parsed.SKU
	}
	if parsed.Name != "" {
		req.Name = &parsed.Name
	}
	if parsed.Category != "" {
		req.Category = &parsed.Category
	}
	if parsed.StockLevel != nil {
		v := strconv.Itoa(*parsed.StockLevel)
		req.StockLevel = &v
	}
	if parsed.Available != nil {
		v := strconv.Itoa(*parsed.Available)
		req.Available = &v
	}
	if parsed.ReorderPoint != nil {
		v := strconv.Itoa(*parsed.ReorderPoint)
		req.ReorderPoint = &v
	}
	if parsed.UnitPrice != nil {
		v := strconv.FormatFloat(*parsed.UnitPrice, 'f', -1, 64)
		req.UnitPrice = &v
	}

	return s.SaveProduct(req)
}

// ── private helpers ───────────────────────────────────────────────────────────

// assistantContext builds the JSON snapshot handed to the assistant:
// inventory, KPIs, operations, the first ten history rows, and the user.
func (s *appService) assistantContext() (string, error) {
	catalog := s.catalog.Snapshot()
	history := s.history
	if len(history) > 10 {
		history = history[:10]
	}

	snapshot := map[string]any{
		"inventory":        catalog,
		"kpis":             core.ComputeKPIs(s.kpiTemplate, catalog, s.operations),
		"recentOperations": s.operations,
		"moveHistory":      history,
		"currentUser":      s.user,
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// toolRegistry exposes the engine's read views plus the save_product write
// tool to the agentic loop.
func (s *appService) toolRegistry() *ai.ToolRegistry {
	registry := ai.NewToolRegistry()

	registry.Register(ai.ToolDefinition{
		Name:        "get_products",
		Description: "List every product in the catalog with stock levels, prices and status.",
		InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
		IsReadTool:  true,
		Handler: func(ctx context.Context, params map[string]any) (string, error) {
			return toolJSON(s.catalog.Snapshot())
		},
	})

	registry.Register(ai.ToolDefinition{
		Name:        "search_products",
		Description: "Search products by name, SKU or category, optionally constrained to one category.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"term":     map[string]any{"type": "string", "description": "Case-insensitive search term"},
				"category": map[string]any{"type": "string", "description": "Category constraint; 'All' or empty disables it"},
			},
		},
		IsReadTool: true,
		Handler: func(ctx context.Context, params map[string]any) (string, error) {
			term, _ := params["term"].(string)
			category, _ := params["category"].(string)
			return toolJSON(core.FilterProducts(s.catalog.Snapshot(), term, category))
		},
	})

	registry.Register(ai.ToolDefinition{
		Name:        "get_kpis",
		Description: "Return the dashboard KPIs including low-stock count and total valuation.",
		InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
		IsReadTool:  true,
		Handler: func(ctx context.Context, params map[string]any) (string, error) {
			return toolJSON(core.ComputeKPIs(s.kpiTemplate, s.catalog.Snapshot(), s.operations))
		},
	})

	registry.Register(ai.ToolDefinition{
		Name:        "get_operations",
		Description: "List warehouse operations, optionally filtered by type: all, receipt or delivery.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"typeFilter": map[string]any{"type": "string", "enum": []string{"all", "receipt", "delivery"}},
			},
		},
		IsReadTool: true,
		Handler: func(ctx context.Context, params map[string]any) (string, error) {
			typeFilter, _ := params["typeFilter"].(string)
			if typeFilter == "" {
				typeFilter = string(core.FilterAllOps)
			}
			return toolJSON(core.FilterOperations(s.operations, "", core.OperationTypeFilter(typeFilter)))
		},
	})

	registry.Register(ai.ToolDefinition{
		Name:        "get_move_history",
		Description: "List historical stock transfers between locations.",
		InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
		IsReadTool:  true,
		Handler: func(ctx context.Context, params map[string]any) (string, error) {
			return toolJSON(s.history)
		},
	})

	registry.Register(ai.ToolDefinition{
		Name:        "save_product",
		Description: "Create a new product or update an existing one. Proposed to the user for confirmation before it is applied.",
		InputSchema: ai.SaveProductSchema(),
		IsReadTool:  false,
	})

	return registry
}

func toolJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Numeric form fields are free text; anything unparseable is coerced to
// zero rather than rejected.
func intField(s *string) *int {
	if s == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		n = 0
	}
	return &n
}

func decimalField(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		d = decimal.Zero
	}
	return &d
}

func statusField(s *string) *core.StockStatus {
	if s == nil {
		return nil
	}
	status := core.StockStatus(*s)
	return &status
}

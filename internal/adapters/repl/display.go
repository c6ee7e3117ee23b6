package repl

import (
	"encoding/json"
	"fmt"
	"strings"

	"stockmaster/internal/app"
	"stockmaster/internal/core"
)

func printDashboard(dash *app.DashboardResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  DASHBOARD — Hello, %s\n", dash.User.Name)
	fmt.Println(strings.Repeat("=", 72))
	for _, kpi := range dash.KPIs {
		marker := " "
		if kpi.IsLowStock {
			marker = "!"
		}
		trend := ""
		if kpi.TrendDirection != "" {
			trend = fmt.Sprintf(" (%s %.1f%%)", kpi.TrendDirection, kpi.Trend)
		}
		fmt.Printf("  %s %-20s %12s%s\n", marker, kpi.Label, kpi.Value, trend)
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  Inventory value: %s   Pending orders: %d\n",
		core.FormatRupees(dash.TotalInventoryValue), dash.PendingOrdersCount)

	if len(dash.StockTrend) > 0 {
		var parts []string
		for _, pt := range dash.StockTrend {
			parts = append(parts, fmt.Sprintf("%s %d", pt.Name, pt.Stock))
		}
		fmt.Printf("  Stock trend: %s\n", strings.Join(parts, " | "))
	}

	fmt.Println(strings.Repeat("-", 72))
	fmt.Println("  Recent products:")
	printProductRows(dash.RecentProducts)
	fmt.Println(strings.Repeat("-", 72))
	fmt.Println("  Recent operations:")
	for _, op := range dash.RecentOperations {
		fmt.Printf("  %-12s %-20s %-10s %s\n", op.Reference, op.Contact, op.Status, op.ScheduleDate)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printProducts(products []core.Product, term, category string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 96))
	header := "  STOCK"
	if category != "" && category != core.CategoryAll {
		header += " — " + category
	}
	if term != "" {
		header += fmt.Sprintf(" — search %q", term)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("=", 96))
	if len(products) == 0 {
		fmt.Println("  No products found.")
		fmt.Println(strings.Repeat("=", 96))
		return
	}
	printProductRows(products)
	fmt.Println(strings.Repeat("=", 96))
}

func printProductRows(products []core.Product) {
	fmt.Printf("  %-4s %-9s %-36s %-12s %6s %6s %10s  %-12s\n",
		"ID", "SKU", "NAME", "CATEGORY", "STOCK", "AVAIL", "PRICE", "STATUS")
	fmt.Println("  " + strings.Repeat("-", 92))
	for _, p := range products {
		name := p.Name
		if len(name) > 36 {
			name = name[:33] + "..."
		}
		fmt.Printf("  %-4s %-9s %-36s %-12s %6d %6d %10s  %-12s\n",
			p.ID, p.SKU, name, p.Category, p.StockLevel, p.Available,
			p.UnitPrice.StringFixed(2), p.Status)
	}
}

func printOperations(ops []core.Operation, term string, typeFilter core.OperationTypeFilter) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 84))
	header := "  OPERATIONS"
	if typeFilter != "" && typeFilter != core.FilterAllOps {
		header += " — " + strings.ToUpper(string(typeFilter))
	}
	if term != "" {
		header += fmt.Sprintf(" — search %q", term)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("=", 84))
	if len(ops) == 0 {
		fmt.Println("  No operations found.")
		fmt.Println(strings.Repeat("=", 84))
		return
	}
	fmt.Printf("  %-12s %-20s %-20s %-10s %-9s %5s\n",
		"REFERENCE", "CONTACT", "SCHEDULE", "STATUS", "TYPE", "LINES")
	fmt.Println("  " + strings.Repeat("-", 80))
	for _, op := range ops {
		fmt.Printf("  %-12s %-20s %-20s %-10s %-9s %5d\n",
			op.Reference, op.Contact, op.ScheduleDate, op.Status, op.Type, len(op.Lines))
	}
	fmt.Println(strings.Repeat("=", 84))
}

func printPendingOrders(ops []core.Operation) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 84))
	fmt.Println("  PENDING ORDERS")
	fmt.Println(strings.Repeat("=", 84))
	if len(ops) == 0 {
		fmt.Println("  Nothing pending.")
		fmt.Println(strings.Repeat("=", 84))
		return
	}
	for _, op := range ops {
		fmt.Printf("  %-12s %-20s %-10s %s\n", op.Reference, op.Contact, op.Status, op.ScheduleDate)
		for _, line := range op.Lines {
			fmt.Printf("      %-40s demand %4d  done %4d\n", line.ProductName, line.Demand, line.Done)
		}
	}
	fmt.Println(strings.Repeat("=", 84))
}

func printHistory(items []core.MoveHistoryItem, term string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 96))
	header := "  MOVE HISTORY"
	if term != "" {
		header += fmt.Sprintf(" — search %q", term)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("=", 96))
	if len(items) == 0 {
		fmt.Println("  No transfers found.")
		fmt.Println(strings.Repeat("=", 96))
		return
	}
	fmt.Printf("  %-10s %-22s %-12s %-14s %-14s %4s %-9s %-8s\n",
		"DATE", "PRODUCT", "REFERENCE", "FROM", "TO", "QTY", "TYPE", "STATUS")
	fmt.Println("  " + strings.Repeat("-", 92))
	for _, h := range items {
		fmt.Printf("  %-10s %-22s %-12s %-14s %-14s %4d %-9s %-8s\n",
			h.Date, h.Product, h.Reference, h.From, h.To, h.Quantity, h.Type, h.Status)
	}
	fmt.Println(strings.Repeat("=", 96))
}

func printHistoryBoard(stages []core.HistoryStage) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  MOVE HISTORY — KANBAN")
	fmt.Println(strings.Repeat("=", 72))
	if len(stages) == 0 {
		fmt.Println("  No transfers found.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	for _, stage := range stages {
		fmt.Printf("  [%s] (%d)\n", stage.Stage, len(stage.Items))
		for _, h := range stage.Items {
			fmt.Printf("      %-22s %-12s %4d %-9s %s -> %s\n",
				h.Product, h.Reference, h.Quantity, h.Type, h.From, h.To)
		}
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printProposedWrite(result *app.AssistantActionResult) {
	fmt.Println()
	fmt.Println("The assistant proposes:", result.ProposedTool)
	if result.Summary != "" {
		fmt.Println(result.Summary)
	}
	raw, err := json.MarshalIndent(result.ProposedArgs, "", "  ")
	if err == nil {
		fmt.Println(string(raw))
	}
}

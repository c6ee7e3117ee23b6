package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"stockmaster/internal/app"
	"stockmaster/internal/core"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "products", "stock":
		term := strings.Join(args[1:], " ")
		result := svc.ListProducts(term, core.CategoryAll)
		printProducts(result.Products)

	case "kpis", "dashboard":
		dash := svc.GetDashboard()
		printKPIs(dash.KPIs)
		fmt.Printf("Inventory value: %s  Pending orders: %d\n",
			core.FormatRupees(dash.TotalInventoryValue), dash.PendingOrdersCount)

	case "ops", "operations":
		typeFilter := core.FilterAllOps
		rest := args[1:]
		if len(rest) > 0 {
			switch strings.ToLower(rest[0]) {
			case "all", "receipt", "delivery":
				typeFilter = core.OperationTypeFilter(strings.ToLower(rest[0]))
				rest = rest[1:]
			}
		}
		result := svc.ListOperations(strings.Join(rest, " "), typeFilter)
		printOperations(result.Operations)

	case "pending":
		result := svc.ListPendingOrders()
		printOperations(result.Operations)

	case "history":
		term := strings.Join(args[1:], " ")
		result := svc.ListMoveHistory(term)
		printHistory(result.Items)

	case "save":
		var req app.SaveProductRequest
		if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		result, err := svc.SaveProduct(req)
		if err != nil {
			log.Fatalf("Save failed: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result.Product)

	case "ask":
		if len(args) < 2 {
			log.Fatal("Usage: app ask \"<question>\"")
		}
		answer, err := svc.AskAssistant(ctx, strings.Join(args[1:], " "))
		if err != nil {
			log.Fatalf("Assistant error: %v", err)
		}
		fmt.Println(answer)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: products, kpis, ops, pending, history, save, ask", args[0])
	}
}

func printProducts(products []core.Product) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 92))
	fmt.Printf("  %-4s %-9s %-36s %-12s %6s %10s  %s\n", "ID", "SKU", "NAME", "CATEGORY", "STOCK", "PRICE", "STATUS")
	fmt.Println(strings.Repeat("-", 92))
	for _, p := range products {
		name := p.Name
		if len(name) > 36 {
			name = name[:33] + "..."
		}
		fmt.Printf("  %-4s %-9s %-36s %-12s %6d %10s  %s\n",
			p.ID, p.SKU, name, p.Category, p.StockLevel, p.UnitPrice.StringFixed(2), p.Status)
	}
	fmt.Println(strings.Repeat("=", 92))
}

func printKPIs(kpis []core.KPI) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 48))
	for _, kpi := range kpis {
		fmt.Printf("  %-20s %12s\n", kpi.Label, kpi.Value)
	}
	fmt.Println(strings.Repeat("=", 48))
}

func printOperations(ops []core.Operation) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("  %-12s %-20s %-20s %-10s %s\n", "REFERENCE", "CONTACT", "SCHEDULE", "STATUS", "TYPE")
	fmt.Println(strings.Repeat("-", 80))
	for _, op := range ops {
		fmt.Printf("  %-12s %-20s %-20s %-10s %s\n", op.Reference, op.Contact, op.ScheduleDate, op.Status, op.Type)
	}
	fmt.Println(strings.Repeat("=", 80))
}

func printHistory(items []core.MoveHistoryItem) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 92))
	fmt.Printf("  %-10s %-22s %-12s %-14s %-14s %4s %s\n", "DATE", "PRODUCT", "REFERENCE", "FROM", "TO", "QTY", "TYPE")
	fmt.Println(strings.Repeat("-", 92))
	for _, h := range items {
		fmt.Printf("  %-10s %-22s %-12s %-14s %-14s %4d %s\n",
			h.Date, h.Product, h.Reference, h.From, h.To, h.Quantity, h.Type)
	}
	fmt.Println(strings.Repeat("=", 92))
}

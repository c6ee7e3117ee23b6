package repl

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"stockmaster/internal/app"
	"stockmaster/internal/core"
)

// Run starts the interactive REPL loop.
// It reads commands from reader, dispatches slash commands deterministically,
// and routes natural language input through the AI assistant.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	user := svc.GetUser()

	fmt.Println("StockMaster")
	fmt.Printf("Signed in: %s — %s (%s)\n", user.Name, user.Email, user.Role)
	fmt.Println("Ask about your inventory in plain language, or use /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	// Sticky view state, like the SPA's search box and dropdowns.
	selectedCategory := core.CategoryAll

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "dashboard", "kpis":
			printDashboard(svc.GetDashboard())

		case "stock", "products":
			term := strings.Join(args, " ")
			result := svc.ListProducts(term, selectedCategory)
			printProducts(result.Products, term, selectedCategory)

		case "categories":
			fmt.Println("Categories:", strings.Join(svc.ListCategories(), ", "))
			fmt.Printf("Selected: %s\n", selectedCategory)

		case "category":
			if len(args) < 1 {
				fmt.Println("Usage: /category <name|All>")
				return nil
			}
			selectedCategory = strings.Join(args, " ")
			fmt.Printf("Category filter set to %s.\n", selectedCategory)

		case "ops", "operations":
			typeFilter := core.FilterAllOps
			term := ""
			if len(args) > 0 {
				switch strings.ToLower(args[0]) {
				case "all", "receipt", "delivery":
					typeFilter = core.OperationTypeFilter(strings.ToLower(args[0]))
					term = strings.Join(args[1:], " ")
				default:
					term = strings.Join(args, " ")
				}
			}
			result := svc.ListOperations(term, typeFilter)
			printOperations(result.Operations, term, typeFilter)

		case "pending":
			result := svc.ListPendingOrders()
			printPendingOrders(result.Operations)

		case "history":
			term := strings.Join(args, " ")
			result := svc.ListMoveHistory(term)
			printHistory(result.Items, term)

		case "kanban":
			term := strings.Join(args, " ")
			result := svc.MoveHistoryBoard(term)
			printHistoryBoard(result.Stages)

		case "add":
			handleAddProduct(reader, svc)

		case "edit":
			if len(args) < 1 {
				fmt.Println("Usage: /edit <product-id>")
				return nil
			}
			handleEditProduct(reader, svc, args[0])

		case "profile":
			handleProfile(reader, svc)

		case "help":
			printHelp()

		case "exit", "quit", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s (try /help)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if err := dispatchSlash(input); err != nil {
				if err == errExit {
					fmt.Println("Bye.")
					return
				}
				fmt.Printf("[REPL] Error: %v\n", err)
			}
			continue
		}

		handleAssistant(ctx, reader, svc, input)
	}
}

// handleAssistant routes natural language input through the agentic tool
// loop and asks for confirmation before any proposed write is applied.
func handleAssistant(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, input string) {
	result, err := svc.InterpretAction(ctx, input)
	if err != nil {
		fmt.Printf("[Assistant] Error: %v\n", err)
		return
	}

	if !result.IsProposal {
		fmt.Println()
		fmt.Println(result.Answer)
		return
	}

	printProposedWrite(result)
	fmt.Print("Apply this change? (y/N): ")
	confirm, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(confirm)) != "y" {
		fmt.Println("Discarded.")
		return
	}

	saved, err := svc.ExecuteWriteTool(ctx, result.ProposedTool, result.ProposedArgs)
	if err != nil {
		fmt.Printf("[Assistant] Error applying change: %v\n", err)
		return
	}
	if saved.Created {
		fmt.Printf("Product created (ID: %s, Status: %s).\n", saved.Product.ID, saved.Product.Status)
	} else {
		fmt.Printf("Product %s updated.\n", saved.Product.ID)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  /dashboard            KPIs, recent products and operations
  /stock [term]         product list, searched by name, SKU or category
  /category <name>      set the category filter (All disables it)
  /categories           list category options
  /ops [type] [term]    operations; type is all, receipt or delivery
  /pending              operations that are not Done or Cancelled
  /history [term]       move history list
  /kanban [term]        move history grouped by stage
  /add                  add a new product
  /edit <id>            edit an existing product
  /profile              view or update your profile
  /exit                 leave

Anything else is sent to the assistant.`)
}

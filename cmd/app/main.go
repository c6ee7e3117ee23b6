package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"stockmaster/internal/adapters/cli"
	"stockmaster/internal/adapters/repl"
	"stockmaster/internal/ai"
	"stockmaster/internal/app"
	"stockmaster/internal/core"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var agent *ai.Agent
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	} else {
		log.Println("Warning: OPENAI_API_KEY is not set; assistant commands are disabled")
	}

	catalog := core.NewCatalogService(core.SeedProducts())
	svc := app.NewAppService(
		catalog,
		core.SeedOperations(),
		core.SeedMoveHistory(),
		core.SeedKPIs(),
		core.SeedStockTrend(),
		core.SeedUser(),
		agent,
	)

	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}

	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}

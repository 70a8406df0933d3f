package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"backoffice-bot/internal/adapters/repl"
	"backoffice-bot/internal/app"
	"backoffice-bot/internal/chat"
	"backoffice-bot/internal/config"
	"backoffice-bot/internal/core"
	"backoffice-bot/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	inv := store.NewFile[core.InventoryItem](filepath.Join(cfg.DataDir, "inventory.json"), logger)
	inv.EnsureSeed(ctx, core.SeedInventory())
	poCol := store.NewFile[core.PurchaseTransaction](filepath.Join(cfg.DataDir, "purchases.json"), logger)
	qtCol := store.NewFile[core.Quotation](filepath.Join(cfg.DataDir, "quotations.json"), logger)

	inventory := core.NewInventoryService(inv, logger)
	purchases := core.NewPurchaseService(inventory, poCol, logger)
	quotations := core.NewQuotationService(qtCol, poCol, logger)
	interpreter := chat.NewInterpreter(inventory, purchases, logger)
	svc := app.NewService(inventory, purchases, quotations, interpreter)

	// One-shot mode: `app msg "<chat message>"` prints a single reply.
	if len(os.Args) > 2 && os.Args[1] == "msg" {
		text := strings.ReplaceAll(os.Args[2], "\\n", "\n")
		fmt.Println(svc.HandleMessage(ctx, text))
		return
	}

	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}

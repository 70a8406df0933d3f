package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	lineAdapter "backoffice-bot/internal/adapters/line"
	webAdapter "backoffice-bot/internal/adapters/web"
	"backoffice-bot/internal/app"
	"backoffice-bot/internal/chat"
	"backoffice-bot/internal/config"
	"backoffice-bot/internal/core"
	"backoffice-bot/internal/db"
	"backoffice-bot/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var (
		invCol store.Collection[core.InventoryItem]
		poCol  store.Collection[core.PurchaseTransaction]
		qtCol  store.Collection[core.Quotation]
	)

	switch cfg.DataBackend {
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database", zap.Error(err))
		}
		defer pool.Close()
		if err := store.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("schema", zap.Error(err))
		}
		invCol = store.NewPostgres[core.InventoryItem](pool, "inventory", logger)
		poCol = store.NewPostgres[core.PurchaseTransaction](pool, "purchases", logger)
		qtCol = store.NewPostgres[core.Quotation](pool, "quotations", logger)

	default:
		inv := store.NewFile[core.InventoryItem](filepath.Join(cfg.DataDir, "inventory.json"), logger)
		inv.EnsureSeed(ctx, core.SeedInventory())
		invCol = inv
		poCol = store.NewFile[core.PurchaseTransaction](filepath.Join(cfg.DataDir, "purchases.json"), logger)
		qtCol = store.NewFile[core.Quotation](filepath.Join(cfg.DataDir, "quotations.json"), logger)
	}

	inventory := core.NewInventoryService(invCol, logger)
	purchases := core.NewPurchaseService(inventory, poCol, logger)
	quotations := core.NewQuotationService(qtCol, poCol, logger)
	interpreter := chat.NewInterpreter(inventory, purchases, logger)
	svc := app.NewService(inventory, purchases, quotations, interpreter)

	var webhook http.Handler
	if cfg.LineChannelSecret == "" {
		logger.Warn("LINE_CHANNEL_SECRET not set; webhook endpoint disabled")
	} else {
		var replier lineAdapter.Replier
		if cfg.LineChannelToken == "" {
			logger.Warn("LINE_CHANNEL_ACCESS_TOKEN not set; replies will be logged, not delivered")
			replier = &lineAdapter.LogReplier{Logger: logger}
		} else {
			replier, err = lineAdapter.NewAPIReplier(cfg.LineChannelToken)
			if err != nil {
				logger.Fatal("line client", zap.Error(err))
			}
		}
		webhook = lineAdapter.NewWebhook(cfg.LineChannelSecret, interpreter, replier, logger)
	}

	handler := webAdapter.NewHandler(svc, webhook, cfg.AllowedOrigins, logger)

	logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("backend", cfg.DataBackend))
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hjkwon/stockroom/internal/cache"
	"github.com/hjkwon/stockroom/internal/config"
	"github.com/hjkwon/stockroom/internal/database"
	stockroomHttp "github.com/hjkwon/stockroom/internal/http"
	importHandler "github.com/hjkwon/stockroom/internal/http/importcsv"
	itemHandler "github.com/hjkwon/stockroom/internal/http/item"
	reportHandler "github.com/hjkwon/stockroom/internal/http/report"
	stockHandler "github.com/hjkwon/stockroom/internal/http/stock"
	suggestionHandler "github.com/hjkwon/stockroom/internal/http/suggestion"
	uploadHandler "github.com/hjkwon/stockroom/internal/http/upload"
	"github.com/hjkwon/stockroom/internal/importer"
	"github.com/hjkwon/stockroom/internal/importer/stockcsv"
	"github.com/hjkwon/stockroom/internal/item"
	itemStore "github.com/hjkwon/stockroom/internal/item/store"
	"github.com/hjkwon/stockroom/internal/ledger"
	ledgerStore "github.com/hjkwon/stockroom/internal/ledger/store"
	"github.com/hjkwon/stockroom/internal/report"
	reportStore "github.com/hjkwon/stockroom/internal/report/store"
	"github.com/hjkwon/stockroom/internal/suggest"
	suggestStore "github.com/hjkwon/stockroom/internal/suggest/store"
	"github.com/hjkwon/stockroom/internal/upload"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Without redis the engine runs uncached; reports hit Postgres
	// directly.
	var (
		reportCache       report.Cache
		ledgerInvalidator ledger.Invalidator
	)

	if cfg.Redis.Addr != "" {
		c, err := cache.New(cfg.Redis.Addr, cfg.Redis.TTL)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer c.Close()

		reportCache = c
		ledgerInvalidator = c
	}

	uploadService, err := upload.NewService(cfg.Uploads.Dir)
	if err != nil {
		slog.Error("failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	var (
		itemService    = item.NewService(itemStore.New(db))
		ledgerService  = ledger.NewService(ledgerStore.New(db), ledgerInvalidator)
		reportService  = report.NewService(reportStore.New(db), reportCache)
		suggestService = suggest.NewService(suggestStore.New(db))
		importService  = importer.NewService(
			map[importer.Format]importer.Parser{
				importer.FormatStockCSV: stockcsv.New(),
			},
			itemService,
			ledgerService,
		)
	)

	var (
		itemH       = itemHandler.NewHandler(itemService)
		stockH      = stockHandler.NewHandler(ledgerService)
		reportH     = reportHandler.NewHandler(reportService)
		importH     = importHandler.NewHandler(importService)
		uploadH     = uploadHandler.NewHandler(uploadService)
		suggestionH = suggestionHandler.NewHandler(suggestService)
	)

	router := stockroomHttp.New(
		itemH,
		stockH,
		reportH,
		importH,
		uploadH,
		suggestionH,
		stockroomHttp.WriteLimit(cfg.Server.WriteRate),
		cfg.Uploads.Dir,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

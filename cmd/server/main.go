// Package main runs the full subsidy/quote service: nameplate
// assessment, model selection quotes, account prefill and customer
// record persistence.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"aircon-subsidy-engine/internal/config"
	"aircon-subsidy-engine/internal/handlers"
	"aircon-subsidy-engine/internal/services/accounts"
	"aircon-subsidy-engine/internal/services/catalog"
	"aircon-subsidy-engine/internal/services/database"
	"aircon-subsidy-engine/internal/services/extractor"
	"aircon-subsidy-engine/internal/services/postal"
	"aircon-subsidy-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel, cfg.Stage); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	cat, err := catalog.LoadFromFile(cfg.CatalogPath)
	if err != nil {
		utils.Logger.Fatal("Failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	utils.Logger.Info("Catalog loaded", zap.String("path", cfg.CatalogPath), zap.Int("entries", cat.Len()))

	db, err := database.New(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to open customer store", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	// Prefill is optional; the form still works without an accounts file.
	accountStore, err := accounts.Load(cfg.AccountsPath)
	if err != nil {
		utils.Logger.Warn("Accounts file not loaded, prefill disabled",
			zap.String("path", cfg.AccountsPath), zap.Error(err))
		accountStore = nil
	}

	api := &handlers.API{
		Catalog:   cat,
		Extractor: extractor.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		Postal:    postal.NewClient(cfg.PostalAPIURL),
		Accounts:  accountStore,
		DB:        db,
		Customers: database.NewCustomerRepository(db),
	}

	mux := http.NewServeMux()
	api.Register(mux)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	utils.Logger.Info("Aircon subsidy engine listening",
		zap.String("addr", addr),
		zap.String("stage", cfg.Stage),
	)

	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		utils.Logger.Fatal("Server failed", zap.Error(err))
	}
}

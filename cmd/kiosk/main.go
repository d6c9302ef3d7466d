// Package main runs the stateless kiosk adapter: the same assessment
// and quote flow as the full server, with no account prefill and no
// customer record persistence.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"aircon-subsidy-engine/internal/config"
	"aircon-subsidy-engine/internal/handlers"
	"aircon-subsidy-engine/internal/services/catalog"
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

	api := &handlers.API{
		Catalog:   cat,
		Extractor: extractor.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		Postal:    postal.NewClient(cfg.PostalAPIURL),
	}

	mux := http.NewServeMux()
	api.Register(mux)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	utils.Logger.Info("Aircon subsidy kiosk listening", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		utils.Logger.Fatal("Server failed", zap.Error(err))
	}
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/domzi1231/fb-ads-generator/internal/config"
	"github.com/domzi1231/fb-ads-generator/internal/db"
	"github.com/domzi1231/fb-ads-generator/internal/handler"
	transport "github.com/domzi1231/fb-ads-generator/internal/http"
	"github.com/domzi1231/fb-ads-generator/internal/logger"
	"github.com/domzi1231/fb-ads-generator/internal/network"
	"github.com/domzi1231/fb-ads-generator/internal/repository"
	"github.com/domzi1231/fb-ads-generator/internal/service"
	"github.com/domzi1231/fb-ads-generator/internal/service/ai"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if cfg.AI.APIKey == "" {
		logger.Warn("completion API key is not set, generation requests will fail",
			"module", "main", "action", "startup", "resource", "config", "result", "failed",
			"provider", cfg.AI.Provider)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	historyRepo := repository.NewHistoryRepository(dbConn)

	clients := network.NewClientFactory(cfg.ProxyURL)

	scrapeService := service.NewScrapeService(clients)
	adsService := service.NewAdsService(scrapeService, ai.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
	})
	historyService := service.NewHistoryService(historyRepo)

	adsHandler := handler.NewAdsHandler(adsService)
	historyHandler := handler.NewHistoryHandler(historyService)

	router := transport.NewRouter(adsHandler, historyHandler, cfg.StaticDir)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		os.Exit(0)
	}()

	logger.Info("server starting",
		"module", "main", "action", "startup", "resource", "http", "result", "ok",
		"addr", cfg.Addr, "provider", cfg.AI.Provider, "model", cfg.AI.Model)

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"thriftstore/internal/client"
	"thriftstore/internal/config"
	"thriftstore/internal/repository"
	"thriftstore/internal/server"
	"thriftstore/internal/service"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitPostgresClient(cfg.DatabaseURL)
	razorpayClient := client.NewRazorpayClient(&cfg.Razorpay)
	googleClient := client.NewGoogleClient(&cfg.Google, cfg.BaseURL)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewCartRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	if cfg.Environment.Name == "development" {
		if err := productRepo.Seed(context.Background()); err != nil {
			log.Fatal("seed products:", err)
		}
	}

	if err := sessionRepo.DeleteExpired(context.Background()); err != nil {
		log.Println("sweep expired sessions:", err)
	}

	authService := service.NewAuthService(googleClient, userRepo, sessionRepo, cfg.Session.TTL)
	catalogService := service.NewCatalogService(productRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(
		cartRepo, productRepo,
		razorpayClient,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.Currency,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		authService,
		catalogService,
		favoriteService,
		cartService,
		checkoutService,
		cfg.Session.CookieName,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}

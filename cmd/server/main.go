package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"house_rent/internal/api"
	"house_rent/internal/app/service"
	"house_rent/internal/common/security"
	"house_rent/internal/domain/repository"
	"house_rent/internal/platform/config"
	"house_rent/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize Token Signing
	secret := cfg.JWTSecret
	if len(secret) == 0 {
		// New secret every start: outstanding tokens die with the process.
		secret = security.NewRandomSecret()
		fmt.Println("Generated in-memory signing secret.")
	}
	tokens := security.NewTokens(secret, cfg.JWTExp)

	// 3. Initialize Database
	db, closeDB := database.Connect(cfg)
	defer closeDB()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		cancelIndex()
		log.Fatalf("Could not create indexes: %v", err)
	}
	cancelIndex()
	fmt.Println("Indexes ensured.")

	// 4. Initialize Repositories
	accountRepo := repository.NewMongoAccountRepository(db)
	ownerRepo := repository.NewMongoOwnerRepository(db)
	tenantRepo := repository.NewMongoTenantRepository(db)
	propertyRepo := repository.NewMongoPropertyRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(accountRepo, ownerRepo, tenantRepo, tokens, cfg.BcryptCost)
	ownerService := service.NewOwnerService(ownerRepo, propertyRepo, tokens, cfg.BcryptCost)
	tenantService := service.NewTenantService(tenantRepo, tokens, cfg.BcryptCost)
	propertyService := service.NewPropertyService(propertyRepo, ownerRepo)
	contactService := service.NewContactService(ownerRepo, tenantRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(tokens, authService, ownerService, tenantService, propertyService, contactService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}

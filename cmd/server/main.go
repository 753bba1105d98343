package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"familydirectory/internal/config"
	"familydirectory/internal/database"
	"familydirectory/internal/handlers"
	"familydirectory/internal/location"
	"familydirectory/internal/repository"
	"familydirectory/internal/security"
	"familydirectory/internal/service"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	locations, err := location.Load(cfg.LocationsPath)
	if err != nil {
		log.Fatalf("Failed to load locations: %v", err)
	}

	log.Printf("Loaded %d states from %s", len(locations.States()), cfg.LocationsPath)

	verifier, err := security.NewTokenVerifier(cfg.TokenSecret)
	if err != nil {
		log.Fatalf("Failed to configure token verification: %v", err)
	}
	limiter := security.NewRateLimiter(ctx, cfg.WriteRateLimit, time.Minute)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Initialize services
	directoryService := service.NewDirectoryService(memberRepo, locations, cfg.DefaultCommunity, cfg.FetchTimeout)
	memberService := service.NewMemberService(memberRepo, profileRepo)
	profileService := service.NewProfileService(profileRepo)

	mux := http.NewServeMux()
	handlers.Routes{
		Directory:  handlers.NewDirectoryHandler(directoryService),
		Members:    handlers.NewMemberHandler(memberService),
		Profiles:   handlers.NewProfileHandler(profileService),
		Middleware: handlers.NewMiddleware(verifier, limiter),
		Store:      db,
	}.Register(mux)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", handlers.HeaderRequestID},
		ExposedHeaders:   []string{handlers.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	})

	// Wrap with logging middleware
	handler := handlers.Logging(corsHandler.Handler(mux))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

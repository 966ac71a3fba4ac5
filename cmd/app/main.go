package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/skillink/skillink/pkg/booking"
	"github.com/skillink/skillink/pkg/config"
	"github.com/skillink/skillink/pkg/credits"
	"github.com/skillink/skillink/pkg/directory"
	"github.com/skillink/skillink/pkg/handlers"
	"github.com/skillink/skillink/pkg/middleware"
	"github.com/skillink/skillink/pkg/storage/memory"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Create our storage implementation.
	store := memory.New()

	// Wire the ledgers and the user directory on top of it.
	creditLedger := credits.NewLedger(store, store)
	bookingLedger := booking.NewLedger(store, store, creditLedger)
	dir := directory.NewService(store, store, store, store)

	secret := []byte(cfg.JWTSecret)
	handler := handlers.NewApiHandler(store, bookingLedger, creditLedger, dir, secret, cfg.JWTTTL)

	// Create a new Chi router.
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	router.Mount("/", handler.Router(middleware.Authenticator(secret)))

	log.Printf("Starting server on port %s", cfg.HTTPPort)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

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

	"github.com/bursteinalan/fooder/internal/database"
	"github.com/bursteinalan/fooder/internal/grocery"
	"github.com/bursteinalan/fooder/internal/logging"
	"github.com/bursteinalan/fooder/internal/server"
	"github.com/bursteinalan/fooder/internal/store"
)

func main() {
	logger := logging.Setup(os.Getenv("FOODER_LOG_LEVEL"))

	port := os.Getenv("FOODER_PORT")
	if port == "" {
		port = "8080"
	}

	st, err := openStore()
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	cfg := server.Config{
		// Seeding is on unless explicitly disabled; new accounts start
		// with an editable copy of the common category mapping.
		SeedSignupOverrides: os.Getenv("FOODER_SIGNUP_SEED") != "empty",
	}
	srv := server.New(st, cfg, logger)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Fooder running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

// openStore picks the storage backend from FOODER_STORAGE: "sqlite"
// (default) or "file".
func openStore() (store.Store, error) {
	switch os.Getenv("FOODER_STORAGE") {
	case "file":
		dataPath := os.Getenv("FOODER_DATA_PATH")
		if dataPath == "" {
			dataPath = "fooder.json"
		}
		return store.NewFileStore(dataPath, grocery.DefaultRules())
	default:
		dbPath := os.Getenv("FOODER_DB_PATH")
		if dbPath == "" {
			dbPath = "fooder.db"
		}
		db, err := database.Open(dbPath)
		if err != nil {
			return nil, err
		}
		return store.NewSQLiteStore(db, grocery.DefaultRules())
	}
}

package main

import (
	"fmt"
	"os"
	"strconv"

	auction "market-simulator/internal/auctionService"
	"market-simulator/internal/ledger"
	negotiation "market-simulator/internal/negotiationService"
	"market-simulator/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	db, err := ledger.OpenSQLite(getDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Seed(ledger.DefaultSeed()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed ledger: %v\n", err)
		os.Exit(1)
	}

	seed := getInt64("SIM_SEED", 0)
	maxRounds := int(getInt64("SIM_MAX_ROUNDS", 0))

	auctionSvc := auction.NewService(db, auction.Config{Seed: seed, MaxRounds: maxRounds})
	negotiationSvc := negotiation.NewService(db, negotiation.Config{Seed: seed, MaxRounds: maxRounds})

	router := server.SetupRouter(auctionSvc, negotiationSvc)

	port := getPort()
	fmt.Printf("Starting market simulator on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getDBPath returns the SQLite path from env or a local default
func getDBPath() string {
	if p := os.Getenv("DB_PATH"); p != "" {
		return p
	}
	return "market.db"
}

// getInt64 reads an integer env var, falling back on absent or bad values
func getInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

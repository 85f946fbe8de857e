package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/CodeAdityaP/Pixel/internal/catalog"
	"github.com/CodeAdityaP/Pixel/internal/database"
	"github.com/CodeAdityaP/Pixel/internal/events"
	"github.com/CodeAdityaP/Pixel/internal/handlers"
	"github.com/CodeAdityaP/Pixel/internal/routes"
	"github.com/CodeAdityaP/Pixel/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	client, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(database.Name())

	// 2. --- Stores ---
	// The collection handles are constructed once here and injected
	// everywhere; nothing opens its own.
	users := store.NewUserStore(db)
	products := store.NewProductStore(db)
	orders := store.NewOrderStore(db)

	if err := users.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// 3. --- Catalog Seeding ---
	if err := catalog.EnsureSeeded(context.Background(), products); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// 4. --- Order Event Publishing (optional) ---
	publisher := events.NewPublisherFromEnv()
	defer publisher.Close()

	// 5. --- Stock Policy ---
	stockPolicy := os.Getenv("STOCK_POLICY")
	if stockPolicy == "" {
		stockPolicy = handlers.StockPolicyBestEffort
	}
	if stockPolicy != handlers.StockPolicyBestEffort && stockPolicy != handlers.StockPolicyChecked {
		log.Fatalf("Unknown STOCK_POLICY %q (want %q or %q)", stockPolicy, handlers.StockPolicyBestEffort, handlers.StockPolicyChecked)
	}
	log.Printf("Stock policy: %s", stockPolicy)

	// --- Application Setup ---
	app := &handlers.Handlers{
		Users:       users,
		Products:    products,
		Orders:      orders,
		Events:      publisher,
		StockPolicy: stockPolicy,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("Starting Pixel storefront API on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

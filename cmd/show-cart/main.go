package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/catalog"
	"github.com/shettigarlolith/LittoralWEB/internal/config"
	"github.com/shettigarlolith/LittoralWEB/internal/repository/file"
)

// Prints the persisted cart with computed totals. Reads the file store only;
// for redis/postgres deployments inspect the slot directly.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat := catalog.NewService()
	store := file.NewStore(cfg.Cart.FilePath)
	engine := cart.NewEngine(store, cat, cfg.Cart, logger)

	snap := engine.Snapshot()
	fmt.Printf("🛒 Cart (%s)\n", cfg.Cart.FilePath)
	if len(snap.Items) == 0 {
		fmt.Println("  empty")
	}
	for _, item := range snap.Items {
		fmt.Printf("  %s (%s) x%d @ %s\n",
			item.Product.Name, item.SelectedWeight.Value, item.Quantity,
			item.SelectedWeight.Price.String())
	}

	totals := engine.Totals()
	out, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode totals: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Totals:\n%s\n", out)
}

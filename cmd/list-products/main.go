package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shettigarlolith/LittoralWEB/internal/catalog"
)

func main() {
	// .env is optional for this tool
	_ = godotenv.Load()

	cat := catalog.NewService()
	products := cat.List()

	fmt.Printf("📦 Catalog: %d products\n", len(products))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, p := range products {
		if err := enc.Encode(p); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode product %s: %v\n", p.ID, err)
			os.Exit(1)
		}
	}

	fmt.Println("\n🎟  Promo codes:")
	for code, pct := range cat.PromoTable() {
		fmt.Printf("  %s → %d%% off\n", code, pct)
	}
}

// Command seedcheck prints the default catalogs as JSON so operators can
// inspect what a fresh deployment will serve.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/allersafe/backend/internal/seed"
)

func main() {
	out := map[string]interface{}{
		"allergens":   seed.Allergens(),
		"ingredients": seed.Ingredients(),
		"meals":       seed.Meals(),
		"preferences": seed.DietaryPreferences(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode seed data: %v", err)
	}
}

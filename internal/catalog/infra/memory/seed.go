package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rocketshoes/cart-service/internal/catalog/domain"
)

// DefaultSeed is the built-in catalog used when no seed file is configured.
func DefaultSeed() []Item {
	return []Item{
		{Product: domain.Product{ID: 1, Name: "Trail Running Sneakers", Price: 179.9, Image: "/images/trail-running.jpg"}, Stock: 3},
		{Product: domain.Product{ID: 2, Name: "Daily Knit Sneakers", Price: 139.9, Image: "/images/daily-knit.jpg"}, Stock: 5},
		{Product: domain.Product{ID: 3, Name: "Court Classic Sneakers", Price: 149.9, Image: "/images/court-classic.jpg"}, Stock: 2},
		{Product: domain.Product{ID: 4, Name: "Street Canvas Sneakers", Price: 99.9, Image: "/images/street-canvas.jpg"}, Stock: 1},
	}
}

// LoadSeed reads seed items from a JSON file.
func LoadSeed(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return items, nil
}

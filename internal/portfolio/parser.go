package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a portfolio JSON file (an array of items) and validates it.
func Load(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("portfolio: read %s: %w", path, err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("portfolio: parse %s: %w", path, err)
	}

	if err := Validate(items); err != nil {
		return nil, fmt.Errorf("portfolio: %s: %w", path, err)
	}
	return items, nil
}

// Validate checks id uniqueness and category values.
// An empty list is valid.
func Validate(items []Item) error {
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("item %d: empty id", i)
		}
		if prev, dup := seen[it.ID]; dup {
			return fmt.Errorf("item %d: duplicate id %q (first at %d)", i, it.ID, prev)
		}
		seen[it.ID] = i
		if it.Category != "" && !validCategory(it.Category) {
			return fmt.Errorf("item %q: unknown category %q", it.ID, it.Category)
		}
	}
	return nil
}

func validCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Featured returns the featured items in list order.
func Featured(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.Featured {
			out = append(out, it)
		}
	}
	return out
}

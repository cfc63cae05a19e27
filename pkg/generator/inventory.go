package generator

import (
	"fmt"
	"strings"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/request"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// InventoryGenerator builds inventory reports. It requires an "items"
// list (name + category + quantity per item); the total is the sum of
// quantities, and the category count is the number of distinct
// category strings (case-sensitive).
type InventoryGenerator struct {
	clock clock.Clock
}

// NewInventoryGenerator creates an inventory report generator.
func NewInventoryGenerator(clk clock.Clock) *InventoryGenerator {
	if clk == nil {
		clk = clock.System()
	}
	return &InventoryGenerator{clock: clk}
}

// Kind returns "inventory".
func (g *InventoryGenerator) Kind() string { return KindInventory }

// Generate produces the inventory report content.
func (g *InventoryGenerator) Generate(payload request.Payload) (*content.Content, error) {
	items, err := itemList(payload, "items")
	if err != nil {
		return nil, err
	}

	type line struct {
		name     string
		category string
		quantity int
	}
	lines := make([]line, len(items))
	total := 0
	categories := make(map[string]struct{})
	for i, item := range items {
		name, err := itemString(item, "items", "name", i)
		if err != nil {
			return nil, err
		}
		category, err := itemString(item, "items", "category", i)
		if err != nil {
			return nil, err
		}
		quantity, err := itemInt(item, "items", "quantity", i)
		if err != nil {
			return nil, err
		}
		lines[i] = line{name: name, category: category, quantity: quantity}
		total += quantity
		categories[category] = struct{}{}
	}

	now := g.clock.Now()

	var b strings.Builder
	b.WriteString(headerRule + "\n")
	b.WriteString("           INVENTORY REPORT\n")
	b.WriteString(headerRule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total units: %d\n", total)
	fmt.Fprintf(&b, "Categories: %d\n\n", len(categories))
	b.WriteString("Current inventory:\n")
	b.WriteString(detailRule + "\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "  - %s (%s): %d units\n", l.name, l.category, l.quantity)
	}

	return content.New(KindInventory, b.String(), map[string]any{
		"total_items": total,
		"categories":  len(categories),
	}, now), nil
}

package generator

import (
	"fmt"
	"strings"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/request"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

const headerRule = "============================================================"
const detailRule = "------------------------------------------------------------"

// SalesGenerator builds sales reports. It requires a "sales" item list
// (product + amount per item) and a "period" string; the total is the
// sum of item amounts rounded to two decimals.
type SalesGenerator struct {
	clock clock.Clock
}

// NewSalesGenerator creates a sales report generator.
func NewSalesGenerator(clk clock.Clock) *SalesGenerator {
	if clk == nil {
		clk = clock.System()
	}
	return &SalesGenerator{clock: clk}
}

// Kind returns "sales".
func (g *SalesGenerator) Kind() string { return KindSales }

// Generate produces the sales report content.
func (g *SalesGenerator) Generate(payload request.Payload) (*content.Content, error) {
	items, err := itemList(payload, "sales")
	if err != nil {
		return nil, err
	}
	period, err := stringField(payload, "period")
	if err != nil {
		return nil, err
	}

	type line struct {
		product string
		amount  float64
	}
	lines := make([]line, len(items))
	total := 0.0
	for i, item := range items {
		product, err := itemString(item, "sales", "product", i)
		if err != nil {
			return nil, err
		}
		amount, err := itemNumber(item, "sales", "amount", i)
		if err != nil {
			return nil, err
		}
		lines[i] = line{product: product, amount: amount}
		total += amount
	}
	total = round2(total)

	now := g.clock.Now()

	var b strings.Builder
	b.WriteString(headerRule + "\n")
	b.WriteString("           SALES REPORT\n")
	b.WriteString(headerRule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total sales: $%.2f\n", total)
	fmt.Fprintf(&b, "Transactions: %d\n", len(items))
	fmt.Fprintf(&b, "Period: %s\n\n", period)
	b.WriteString("Sales detail:\n")
	b.WriteString(detailRule + "\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "  - %s: $%.2f\n", l.product, l.amount)
	}

	return content.New(KindSales, b.String(), map[string]any{
		"total":  total,
		"count":  len(items),
		"period": period,
	}, now), nil
}

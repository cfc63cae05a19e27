package generator

import (
	"fmt"
	"strings"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/request"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// FinancialGenerator builds financial reports. It requires numeric
// "income" and "expenses" fields; the balance is income minus
// expenses and may be negative.
type FinancialGenerator struct {
	clock clock.Clock
}

// NewFinancialGenerator creates a financial report generator.
func NewFinancialGenerator(clk clock.Clock) *FinancialGenerator {
	if clk == nil {
		clk = clock.System()
	}
	return &FinancialGenerator{clock: clk}
}

// Kind returns "financial".
func (g *FinancialGenerator) Kind() string { return KindFinancial }

// Generate produces the financial report content.
func (g *FinancialGenerator) Generate(payload request.Payload) (*content.Content, error) {
	income, err := numberField(payload, "income")
	if err != nil {
		return nil, err
	}
	expenses, err := numberField(payload, "expenses")
	if err != nil {
		return nil, err
	}
	balance := round2(income - expenses)

	now := g.clock.Now()

	var b strings.Builder
	b.WriteString(headerRule + "\n")
	b.WriteString("           FINANCIAL REPORT\n")
	b.WriteString(headerRule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Income: $%.2f\n", income)
	fmt.Fprintf(&b, "Expenses: $%.2f\n", expenses)
	fmt.Fprintf(&b, "Balance: $%.2f\n", balance)

	return content.New(KindFinancial, b.String(), map[string]any{
		"income":   round2(income),
		"expenses": round2(expenses),
		"balance":  balance,
	}, now), nil
}

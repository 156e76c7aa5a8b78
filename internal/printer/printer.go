package printer

import (
	"fmt"
	"strconv"
	"strings"

	"supermarket/internal/model"
	"supermarket/internal/receipt"
)

// DefaultColumns is the receipt width used when none is configured.
const DefaultColumns = 35

// Printer renders receipts as fixed-width text.
type Printer struct {
	columns int
}

// New creates a printer for the given line width. Non-positive widths
// fall back to DefaultColumns.
func New(columns int) *Printer {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return &Printer{columns: columns}
}

// Columns returns the line width.
func (p *Printer) Columns() int {
	return p.columns
}

// PrintReceipt renders items, then discounts, then a blank line and the total.
func (p *Printer) PrintReceipt(r *receipt.Receipt) string {
	var b strings.Builder
	for _, item := range r.Items() {
		b.WriteString(p.PrintReceiptItem(item))
	}
	for _, discount := range r.Discounts() {
		b.WriteString(p.PrintDiscount(discount))
	}
	b.WriteString("\n")
	b.WriteString(p.PresentTotal(r))
	return b.String()
}

// PrintReceiptItem renders a line with the item total and, when more or
// less than one unit was bought, a second line with price and quantity.
func (p *Printer) PrintReceiptItem(item receipt.Item) string {
	line := p.formatLine(item.Product().Name(), PrintPrice(item.TotalPrice()))
	if item.Quantity() != 1 {
		line += "  " + PrintPrice(item.Price()) + " * " + PrintQuantity(item) + "\n"
	}
	return line
}

// PrintDiscount renders "<description> (<product>)" and the amount.
func (p *Printer) PrintDiscount(d model.Discount) string {
	name := d.Description() + " (" + d.Product().Name() + ")"
	return p.formatLine(name, PrintPrice(d.Amount()))
}

// PresentTotal renders the total line.
func (p *Printer) PresentTotal(r interface{ TotalPrice() float64 }) string {
	return p.formatLine("Total:", PrintPrice(r.TotalPrice()))
}

// formatLine right-aligns value so the line is p.columns wide, keeping at
// least one space after name.
func (p *Printer) formatLine(name, value string) string {
	pad := p.columns - len([]rune(name)) - len(value)
	if pad < 1 {
		pad = 1
	}
	return name + strings.Repeat(" ", pad) + value + "\n"
}

// PrintPrice formats a price with two decimals.
func PrintPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// PrintQuantity renders EACH quantities as integers and KILO quantities
// with three decimals.
func PrintQuantity(item receipt.Item) string {
	if item.Product().Unit() == model.ProductUnitEach {
		return strconv.FormatInt(int64(item.Quantity()), 10)
	}
	return fmt.Sprintf("%.3f", item.Quantity())
}

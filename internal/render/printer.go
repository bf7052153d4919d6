// Package render formats finished receipts as fixed-width register tape.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grocerly/checkout-api/internal/pricing"
)

const defaultColumns = 40

// Printer renders receipts into columnar text: item lines with right-aligned
// totals, discount lines, an optional loyalty payment line, and the final
// total.
type Printer struct {
	columns int
}

// NewPrinter returns a printer producing lines of the given width. Widths
// below one fall back to the classic 40-column tape.
func NewPrinter(columns int) *Printer {
	if columns < 1 {
		columns = defaultColumns
	}
	return &Printer{columns: columns}
}

// Print renders the whole receipt.
func (p *Printer) Print(receipt *pricing.Receipt) string {
	var b strings.Builder
	for _, item := range receipt.Items() {
		p.writeItem(&b, item)
	}
	for _, d := range receipt.Discounts() {
		p.writeDiscount(&b, d)
	}
	if points := receipt.PointsUsed(); points > 0 {
		p.writePoints(&b, points)
	}
	p.writeTotal(&b, receipt.Total())
	return b.String()
}

func (p *Printer) writeItem(b *strings.Builder, item pricing.ReceiptItem) {
	price := formatAmount(item.TotalPrice)
	b.WriteString(item.Product.Name)
	b.WriteString(pad(p.columns - len(item.Product.Name) - len(price)))
	b.WriteString(price)
	b.WriteByte('\n')
	if item.Quantity != 1 {
		fmt.Fprintf(b, "  %s * %s\n", formatAmount(item.Price), presentQuantity(item))
	}
}

func (p *Printer) writeDiscount(b *strings.Builder, d pricing.Discount) {
	amount := formatAmount(d.Amount)
	// Three non-content characters on the line: the parentheses and the minus.
	space := pad(p.columns - 3 - len(d.Product.Name) - len(d.Description) - len(amount))
	fmt.Fprintf(b, "%s(%s)%s-%s\n", d.Description, d.Product.Name, space, amount)
}

func (p *Printer) writePoints(b *strings.Builder, points float64) {
	const label = "loyalty points"
	amount := formatAmount(points)
	fmt.Fprintf(b, "%s%s-%s\n", label, pad(p.columns-1-len(label)-len(amount)), amount)
}

func (p *Printer) writeTotal(b *strings.Builder, total float64) {
	const label = "Total: "
	amount := formatAmount(total)
	fmt.Fprintf(b, "\n%s%s%s", label, pad(p.columns-len(label)-len(amount)), amount)
}

// presentQuantity renders counted quantities as whole numbers and weighed ones
// with three decimals.
func presentQuantity(item pricing.ReceiptItem) string {
	if item.Product.Unit == pricing.Each {
		return groupThousands(strconv.FormatFloat(item.Quantity, 'f', 0, 64))
	}
	return strconv.FormatFloat(item.Quantity, 'f', 3, 64)
}

// formatAmount renders a monetary value with two decimals and thousands
// grouping.
func formatAmount(v float64) string {
	return groupThousands(strconv.FormatFloat(v, 'f', 2, 64))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

func pad(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

package pricing

import "slices"

// ReceiptItem is an immutable snapshot of one cart add-event priced at
// checkout time.
type ReceiptItem struct {
	Product    Product
	Quantity   float64
	Price      float64
	TotalPrice float64
}

// Discount records a positive reduction applied to the receipt. The amount is
// never negative; surcharges do not exist in this model.
type Discount struct {
	Product     Product
	Description string
	Amount      float64
}

// Receipt aggregates priced line items, itemised discounts, and the monetary
// value of loyalty points used as payment. It is populated during checkout and
// read-only once returned; accessors hand out independent copies.
type Receipt struct {
	items      []ReceiptItem
	discounts  []Discount
	pointsUsed float64
}

// Items returns a copy of the line items in add order.
func (r *Receipt) Items() []ReceiptItem {
	return slices.Clone(r.items)
}

// Discounts returns a copy of the discounts in application order.
func (r *Receipt) Discounts() []Discount {
	return slices.Clone(r.discounts)
}

// PointsUsed returns the monetary value of points applied as payment.
func (r *Receipt) PointsUsed() float64 {
	return r.pointsUsed
}

// Total returns the sum of line totals minus discounts minus points used.
func (r *Receipt) Total() float64 {
	total := 0.0
	for _, item := range r.items {
		total += item.TotalPrice
	}
	for _, d := range r.discounts {
		total -= d.Amount
	}
	return total - r.pointsUsed
}

func (r *Receipt) addProduct(product Product, quantity, price, totalPrice float64) {
	r.items = append(r.items, ReceiptItem{Product: product, Quantity: quantity, Price: price, TotalPrice: totalPrice})
}

func (r *Receipt) addDiscount(d Discount) {
	r.discounts = append(r.discounts, d)
}

func (r *Receipt) usePoints(amount float64) {
	r.pointsUsed += amount
}

package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OfferType enumerates the supported per-product offer formulas. The set is
// closed; discount dispatch switches exhaustively over it.
type OfferType int

const (
	// ThreeForTwo charges two units for every three bought.
	ThreeForTwo OfferType = iota
	// TwoForAmount charges a fixed amount for every pair.
	TwoForAmount
	// FiveForAmount charges a fixed amount for every five.
	FiveForAmount
	// TenPercentDiscount takes the argument off as a percentage.
	TenPercentDiscount
)

var offerTypeNames = map[OfferType]string{
	ThreeForTwo:        "three_for_two",
	TwoForAmount:       "two_for_amount",
	FiveForAmount:      "five_for_amount",
	TenPercentDiscount: "percent_discount",
}

// String returns the wire name of the offer type.
func (t OfferType) String() string {
	if name, ok := offerTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseOfferType maps a wire name onto an OfferType.
func ParseOfferType(value string) (OfferType, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for t, name := range offerTypeNames {
		if name == needle {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown offer type %q", value)
}

// Offer attaches a discount formula to a single product. A product carries at
// most one offer; registering a new one replaces the previous.
type Offer struct {
	Type     OfferType
	Product  Product
	Argument float64
}

// discount evaluates the offer against the aggregate quantity. It reports
// false when the quantity is below the offer threshold or the amount would not
// be a positive reduction.
func (o Offer) discount(quantity, unitPrice float64) (Discount, bool) {
	var amount float64
	var description string

	switch o.Type {
	case ThreeForTwo:
		if quantity <= 2 {
			return Discount{}, false
		}
		sets := math.Floor(quantity / 3)
		remainder := math.Mod(quantity, 3)
		amount = quantity*unitPrice - (sets*2*unitPrice + remainder*unitPrice)
		description = "3 for 2"
	case TwoForAmount:
		if quantity < 2 {
			return Discount{}, false
		}
		pairs := math.Floor(quantity / 2)
		remainder := math.Mod(quantity, 2)
		amount = quantity*unitPrice - (pairs*o.Argument + remainder*unitPrice)
		description = "2 for " + formatNumber(o.Argument)
	case FiveForAmount:
		if quantity < 5 {
			return Discount{}, false
		}
		sets := math.Floor(quantity / 5)
		remainder := math.Mod(quantity, 5)
		amount = quantity*unitPrice - (sets*o.Argument + remainder*unitPrice)
		description = "5 for " + formatNumber(o.Argument)
	case TenPercentDiscount:
		amount = quantity * unitPrice * o.Argument / 100
		description = formatNumber(o.Argument) + "% off"
	default:
		return Discount{}, false
	}

	if amount <= 0 {
		return Discount{}, false
	}
	return Discount{Product: o.Product, Description: description, Amount: amount}, true
}

// formatNumber renders an argument without trailing zeros, matching the
// description strings consumed by the receipt renderer: 2 -> "2", 0.99 -> "0.99".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

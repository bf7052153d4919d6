package pricing

import "strings"

// bundlePercent is the discount taken on every complete bundle.
const bundlePercent = 10.0

// Bundle groups distinct products; buying the whole group earns ten percent
// off the bundle value. Bundles are independent of each other and a product
// may appear in several.
type Bundle struct {
	Products []Product
}

// Description enumerates the member product names, e.g. "bundle(a + b)".
func (b Bundle) Description() string {
	names := make([]string, 0, len(b.Products))
	for _, p := range b.Products {
		names = append(names, p.Name)
	}
	return "bundle(" + strings.Join(names, " + ") + ")"
}

package catalog

import (
	"errors"
	"fmt"

	radix "github.com/armon/go-radix"
)

// ErrDuplicateSlug is returned when two content files share a slug.
var ErrDuplicateSlug = errors.New("duplicate product slug")

// Catalog is the canonical, immutable product sequence of a build.
type Catalog struct {
	products []*Product

	// slug => position in products.
	index *radix.Tree
}

type indexEntry struct {
	pos      int
	filename string
}

// New sorts a copy of entries by recency and indexes the result by slug.
func New(entries []Entry) (*Catalog, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	SortByRecency(sorted)

	c := &Catalog{
		products: make([]*Product, len(sorted)),
		index:    radix.New(),
	}

	for i, e := range sorted {
		if v, found := c.index.Get(e.Product.Slug); found {
			return nil, fmt.Errorf("%w %q in %q and %q", ErrDuplicateSlug, e.Product.Slug, v.(indexEntry).filename, e.Filename)
		}
		c.index.Insert(e.Product.Slug, indexEntry{pos: i, filename: e.Filename})
		c.products[i] = e.Product
	}

	return c, nil
}

// Products returns the products in canonical order.
func (c *Catalog) Products() []*Product {
	return c.products
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Index returns the position of slug in the canonical order, or -1.
func (c *Catalog) Index(slug string) int {
	v, found := c.index.Get(slug)
	if !found {
		return -1
	}
	return v.(indexEntry).pos
}

// Get looks up a product by slug.
func (c *Catalog) Get(slug string) (*Product, bool) {
	i := c.Index(slug)
	if i == -1 {
		return nil, false
	}
	return c.products[i], true
}

// Related returns the k products following slug in the canonical order,
// wrapping around at the end. If slug is unknown, it returns the first k
// products (or all of them if there are fewer).
//
// The selection does not skip products already picked: when the catalog
// has k or fewer products the result repeats products, and with a single
// product it is that product k times.
func (c *Catalog) Related(slug string, k int) []*Product {
	if k <= 0 || len(c.products) == 0 {
		return nil
	}

	i := c.Index(slug)
	if i == -1 {
		if k > len(c.products) {
			k = len(c.products)
		}
		return c.products[:k:k]
	}

	related := make([]*Product, k)
	for n := 1; n <= k; n++ {
		related[n-1] = c.products[(i+n)%len(c.products)]
	}
	return related
}

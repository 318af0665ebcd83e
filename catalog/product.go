// Package catalog holds the product model and the canonical product order.
package catalog

import (
	"time"

	"github.com/sunwei/aurum-atelier/types"
)

// Spec is a label/value pair, used both for highlight cards and for
// spec table rows.
type Spec struct {
	Label string
	Value string
}

// Localized holds the product fields that exist once per language.
type Localized struct {
	Name        string
	Subtitle    string
	Description string
	Tags        []string

	// Rendered as cards and as table rows respectively. The two lists are
	// authored independently.
	HighlightSpecs []Spec
	SpecTable      []Spec
}

// Images references the product imagery.
type Images struct {
	Main    string
	Gallery []string
}

// Product is one watch as authored in the content store.
type Product struct {
	Slug string

	// Numeric or opaque, see types.Value.
	Price        types.Value
	ComparePrice types.Value

	Images Images

	localized map[string]Localized
}

// NewProduct creates a product with the given per-language fields.
func NewProduct(slug string, price, comparePrice types.Value, images Images, localized map[string]Localized) *Product {
	l := make(map[string]Localized, len(localized))
	for k, v := range localized {
		l[k] = v
	}
	return &Product{
		Slug:         slug,
		Price:        price,
		ComparePrice: comparePrice,
		Images:       images,
		localized:    l,
	}
}

// In returns the fields for lang. There is no fallback to another
// language: a language without content gives the zero Localized.
func (p *Product) In(lang string) Localized {
	return p.localized[lang]
}

// ImageList is the gallery, or the main image alone when the gallery is
// empty.
func (p *Product) ImageList() []string {
	if len(p.Images.Gallery) > 0 {
		return p.Images.Gallery
	}
	return []string{p.Images.Main}
}

// Entry is a product paired with where it was read from.
type Entry struct {
	Product *Product

	// Source file, for diagnostics.
	Filename string

	// Last modification time of the source file. Used for ordering only.
	ModTime time.Time
}

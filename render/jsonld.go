package render

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sunwei/aurum-atelier/catalog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// schema.org Product, field order as written.
type productLD struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Image       []string `json:"image"`
	Description string   `json:"description"`
	Brand       brandLD  `json:"brand"`
	SKU         string   `json:"sku"`
	Offers      offerLD  `json:"offers"`
}

type brandLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type offerLD struct {
	Type          string `json:"@type"`
	PriceCurrency string `json:"priceCurrency"`
	Price         string `json:"price"`
	Availability  string `json:"availability"`
	URL           string `json:"url"`
}

// SKU returns the stock keeping unit of p, e.g. AA-SOLACE-AUTOMATIC-128.
func SKU(p *catalog.Product) string {
	return "AA-" + strings.ToUpper(p.Slug) + "-" + p.Price.String()
}

// productJSONLD returns the structured data of p in lang, indented by two
// spaces. <, > and & are written as \u003c, \u003e and \u0026, so the
// result is safe inside a script element.
func (r *Renderer) productJSONLD(p *catalog.Product, lang string, canonical string) (string, error) {
	l := p.In(lang)
	ld := productLD{
		Context:     "https://schema.org",
		Type:        "Product",
		Name:        l.Name,
		Image:       p.ImageList(),
		Description: l.Subtitle,
		Brand:       brandLD{Type: "Brand", Name: r.cfg.Brand},
		SKU:         SKU(p),
		Offers: offerLD{
			Type:          "Offer",
			PriceCurrency: "USD",
			Price:         p.Price.String(),
			Availability:  "https://schema.org/InStock",
			URL:           canonical,
		},
	}
	b, err := json.MarshalIndent(ld, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

package render

import (
	"fmt"
	"strings"

	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/langs"
	"github.com/sunwei/aurum-atelier/types"
)

// Product renders the detail page of p in lang.
func (r *Renderer) Product(lang *langs.Language, p *catalog.Product) (string, error) {
	l := p.In(lang.Lang)
	canonical := r.permalink(ProductPath(lang, p.Slug))

	ld, err := r.productJSONLD(p, lang.Lang, canonical)
	if err != nil {
		return "", fmt.Errorf("structured data for %q: %w", p.Slug, err)
	}

	h := head{
		title:       l.Name + " | " + r.cfg.Brand,
		description: l.Subtitle,
		robots:      "index,follow",
		canonical:   canonical,
		alternates: r.alternates(func(l *langs.Language) string {
			return ProductPath(l, p.Slug)
		}),
		lang: lang,
	}

	var b strings.Builder
	r.writeDocument(&b, lang.HTMLLang(), h, "aurum-page aurum-product", func(b *strings.Builder) {
		r.writeHeader(b, lang)
		b.WriteString("<main class=\"container product-detail\">\n")
		r.writeBreadcrumb(b, lang, l)
		r.writeProductHero(b, lang, p)
		r.writeSpecs(b, lang, l)
		r.writeCards(b, lang, "product.craftTitle", "product.craft")
		r.writeCards(b, lang, "product.boxTitle", "product.box")
		r.writeProductReviews(b, lang)
		r.writeProductFAQ(b, lang)
		r.writeRelated(b, lang, p)
		r.writeConsultation(b, lang)
		b.WriteString("</main>\n")
		fmt.Fprintf(b, "\n<script type=\"application/ld+json\">\n%s\n</script>\n", ld)
	})

	return b.String(), nil
}

// comparePrice is the struck through price. Absent, empty, zero and
// false values use the configured fallback.
func (r *Renderer) comparePrice(p *catalog.Product) types.Value {
	if p.ComparePrice.Truthy() {
		return p.ComparePrice
	}
	return types.NewValue(r.cfg.FallbackComparePrice)
}

func (r *Renderer) writeBreadcrumb(b *strings.Builder, lang *langs.Language, l catalog.Localized) {
	t := r.t.Func(lang.Lang)
	home := lang.HomePath()
	fmt.Fprintf(b, `  <div class="breadcrumb">
    <a href="%s">%s</a> / <a href="%s#collections">%s</a> / %s
  </div>
`, home, t("product.breadcrumbHome"), home, t("product.breadcrumbCollections"), Escape(l.Name))
}

func (r *Renderer) writeProductHero(b *strings.Builder, lang *langs.Language, p *catalog.Product) {
	t := r.t.Func(lang.Lang)
	l := p.In(lang.Lang)
	name := Escape(l.Name)

	fmt.Fprintf(b, `
  <section class="product-hero">
    <div class="gallery">
      <div class="gallery-main">
        <img src="%s" alt="%s" />
      </div>
      <div class="gallery-thumbs">
        `, Escape(p.Images.Main), name)
	for _, image := range p.Images.Gallery {
		fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\" />", Escape(image), name)
	}
	fmt.Fprintf(b, `
      </div>
    </div>

    <div class="product-summary">
      <h1>%s</h1>
      <p class="subtitle">%s</p>
      <div class="tagline-row">
        `, name, Escape(l.Subtitle))
	for _, tag := range l.Tags {
		fmt.Fprintf(b, "<span class=\"tagline\">%s</span>", Escape(tag))
	}
	fmt.Fprintf(b, `
      </div>

      <div class="sticky-panel">
        <div class="price-card">
          <div class="price-row">
            <span class="price">%s</span>
            <span class="compare">%s</span>
          </div>
          <p class="subtitle">%s</p>
          <div class="cta-stack">
            <a class="btn primary" href="#contact">%s</a>
            <a class="btn secondary" href="#specs">%s</a>
          </div>
        </div>

        <div class="shipping-box">
          <strong>%s</strong>
          <p>%s</p>
        </div>
      </div>
    </div>
  </section>
`,
		Escape(FormatPrice(p.Price)), Escape(FormatPrice(r.comparePrice(p))),
		t("product.compareLabel"), t("product.inquireBtn"), t("product.specsBtn"),
		t("product.deliveryTitle"), t("product.deliveryCopy"),
	)
}

func (r *Renderer) writeSpecs(b *strings.Builder, lang *langs.Language, l catalog.Localized) {
	fmt.Fprintf(b, `
  <section id="specs" class="detail-section">
    <h2>%s</h2>
    <div class="spec-grid">
      `, r.t.T(lang.Lang, "product.highlights"))
	for _, s := range l.HighlightSpecs {
		fmt.Fprintf(b, "<div class=\"spec\"><span>%s</span><strong>%s</strong></div>", Escape(s.Label), Escape(s.Value))
	}
	b.WriteString("\n    </div>\n\n    <table class=\"spec-table\">\n      ")
	for _, row := range l.SpecTable {
		fmt.Fprintf(b, "<tr><th>%s</th><td>%s</td></tr>", Escape(row.Label), Escape(row.Value))
	}
	b.WriteString("\n    </table>\n  </section>\n")
}

// writeCards writes a titled section of three detail cards.
func (r *Renderer) writeCards(b *strings.Builder, lang *langs.Language, titleKey, prefix string) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, `
  <section class="detail-section">
    <h2>%s</h2>
    <div class="detail-grid">
`, t(titleKey))
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(b, `      <div class="detail-card">
        <h3>%s</h3>
        <p>%s</p>
      </div>
`, t(fmt.Sprintf("%s.card%dTitle", prefix, i)), t(fmt.Sprintf("%s.card%dCopy", prefix, i)))
	}
	b.WriteString("    </div>\n  </section>\n")
}

func (r *Renderer) writeProductReviews(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, "\n  <section class=\"detail-section\">\n    <h2>%s</h2>\n", t("product.reviewsTitle"))
	writeTestimonials(b, t, "product.reviews", "    ")
	b.WriteString("  </section>\n")
}

func (r *Renderer) writeProductFAQ(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, "\n  <section class=\"detail-section\">\n    <h2>%s</h2>\n", t("product.faqTitle"))
	writeFAQ(b, t, "product.faq", "    ")
	b.WriteString("  </section>\n")
}

func (r *Renderer) writeRelated(b *strings.Builder, lang *langs.Language, p *catalog.Product) {
	fmt.Fprintf(b, `
  <section class="detail-section">
    <h2>%s</h2>
    <div class="related-grid">
      `, r.t.T(lang.Lang, "product.relatedTitle"))
	for _, item := range r.cat.Related(p.Slug, r.cfg.RelatedCount) {
		l := item.In(lang.Lang)
		name := Escape(l.Name)
		fmt.Fprintf(b, `
          <article class="related-card">
            <a href="%s"><img src="%s" alt="%s" /></a>
            <h3>%s</h3>
            <p>%s</p>
            <span class="price">%s</span>
          </article>
        `, Escape(ProductPath(lang, item.Slug)), Escape(item.Images.Main), name, name, Escape(l.Description), Escape(FormatPrice(item.Price)))
	}
	b.WriteString("\n    </div>\n  </section>\n")
}

func (r *Renderer) writeConsultation(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, `
  <section id="contact" class="detail-section">
    <div class="newsletter">
      <h2>%s</h2>
      <p>%s</p>
      <form>
        <input type="email" name="email" autocomplete="email" placeholder="%s" required />
        <button class="btn primary" type="submit">%s</button>
      </form>
    </div>
  </section>
`, t("product.consultTitle"), t("product.consultCopy"), t("newsletter.placeholder"), t("product.consultBtn"))
}

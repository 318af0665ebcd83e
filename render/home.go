package render

import (
	"fmt"
	"strings"

	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/langs"
)

// Home renders the home page of lang.
func (r *Renderer) Home(lang *langs.Language) string {
	settings := r.settings[lang.Lang]

	h := head{
		title:       settings.MetaTitle,
		description: settings.MetaDescription,
		robots:      "index,follow",
		canonical:   r.permalink(lang.HomePath()),
		alternates:  r.alternates((*langs.Language).HomePath),
		lang:        lang,
	}

	var b strings.Builder
	r.writeDocument(&b, lang.HTMLLang(), h, "aurum-page aurum-"+lang.Lang, func(b *strings.Builder) {
		r.writeHeader(b, lang)
		b.WriteString("<main>\n")
		r.writeHero(b, lang)
		r.writeCollections(b, lang)
		r.writeCraft(b, lang)
		r.writeReviews(b, lang)
		r.writeService(b, lang)
		r.writeNewsletter(b, lang)
		b.WriteString("</main>\n")
		r.writeFooter(b, lang)
	})

	return b.String()
}

func (r *Renderer) writeHero(b *strings.Builder, lang *langs.Language) {
	s := r.settings[lang.Lang]
	t := r.t.Func(lang.Lang)

	fmt.Fprintf(b, `
  <section class="hero container">
    <div>
      <p class="pill">%s</p>
      <h1>%s</h1>
      <p>%s</p>
      <div class="cta-row">
        <a class="btn primary" href="#collections">%s</a>
        <a class="btn secondary" href="#service">%s</a>
      </div>
    </div>
    <div class="hero-card">
      <img src="%s" alt="%s" loading="lazy" />
      <div class="stat-grid">
`,
		Escape(s.HeroPill), Escape(s.HeroTitle), Escape(s.HeroSubtitle),
		Escape(s.CTAPrimary), Escape(s.CTASecondary),
		Escape(r.cfg.HeroImage), t("hero.imageAlt"),
	)
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(b, `        <div class="stat">
          <strong>%s</strong>
          <span>%s</span>
        </div>
`, t(fmt.Sprintf("hero.stat%dValue", i)), t(fmt.Sprintf("hero.stat%dLabel", i)))
	}
	b.WriteString("      </div>\n    </div>\n  </section>\n")
}

func (r *Renderer) writeProductCard(b *strings.Builder, lang *langs.Language, p *catalog.Product) {
	l := p.In(lang.Lang)
	url := Escape(ProductPath(lang, p.Slug))
	name := Escape(l.Name)

	visible := l.Tags
	if len(visible) > r.cfg.CardTagLimit {
		visible = visible[:r.cfg.CardTagLimit]
	}
	extra := len(l.Tags) - len(visible)

	fmt.Fprintf(b, `
  <article class="product">
    <a href="%s">
      <img src="%s" alt="%s" loading="lazy" />
    </a>
    <h3>%s</h3>
    <p>%s</p>
    <div class="pill-row">
      `, url, Escape(p.Images.Main), name, name, Escape(l.Description))
	for _, tag := range visible {
		fmt.Fprintf(b, "<span class=\"pill\">%s</span>", Escape(tag))
	}
	b.WriteString("\n      ")
	if extra > 0 {
		fmt.Fprintf(b, "<span class=\"pill\">+%d</span>", extra)
	}
	fmt.Fprintf(b, `
    </div>
    <span class="price">%s</span>
    <a class="btn secondary" href="%s">%s</a>
  </article>
`, Escape(FormatPrice(p.Price)), url, r.t.T(lang.Lang, "card.viewDetails"))
}

func (r *Renderer) writeCollections(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, `
  <section id="collections" class="section container">
    <h2>%s</h2>
    <p class="lead">%s</p>
    <div class="grid products">
      `, t("sections.collections"), t("sections.collectionsLead"))
	for _, p := range r.cat.Products() {
		r.writeProductCard(b, lang, p)
	}
	b.WriteString("\n    </div>\n  </section>\n")
}

func (r *Renderer) writeCraft(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, `
  <section id="craft" class="section container">
    <div class="split">
      <div>
        <h2>%s</h2>
        <p class="lead">%s</p>
        <div class="grid feature-grid">
`, t("sections.craft"), t("sections.craftLead"))
	writeFeatures(b, t, "craft")
	fmt.Fprintf(b, `        </div>
      </div>
      <div class="hero-card">
        <h3>%s</h3>
        <p>%s</p>
        <div class="badge-row">
          <span class="badge">%s</span>
          <span class="badge">%s</span>
          <span class="badge">%s</span>
        </div>
      </div>
    </div>
  </section>
`, t("craft.receiveTitle"), t("craft.receiveCopy"), t("craft.badge1"), t("craft.badge2"), t("craft.badge3"))
}

func (r *Renderer) writeReviews(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, `
  <section id="reviews" class="section container">
    <h2>%s</h2>
    <p class="lead">%s</p>
`, t("sections.reviews"), t("sections.reviewsLead"))
	writeTestimonials(b, t, "reviews", "    ")
	b.WriteString("  </section>\n")
}

func (r *Renderer) writeService(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, `
  <section id="service" class="section container">
    <div class="split">
      <div>
        <h2>%s</h2>
        <p class="lead">%s</p>
        <div class="grid feature-grid">
`, t("sections.service"), t("sections.serviceLead"))
	writeFeatures(b, t, "service")
	fmt.Fprintf(b, `        </div>
      </div>
      <div class="hero-card">
        <h3>%s</h3>
`, t("service.faqTitle"))
	writeFAQ(b, t, "service", "        ")
	b.WriteString("      </div>\n    </div>\n  </section>\n")
}

func (r *Renderer) writeNewsletter(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	fmt.Fprintf(b, `
  <section class="section container">
    <div class="newsletter">
      <h2>%s</h2>
      <p>%s</p>
      <form>
        <input type="email" name="email" autocomplete="email" placeholder="%s" required />
        <button class="btn primary" type="submit">%s</button>
      </form>
    </div>
  </section>
`, t("newsletter.title"), t("newsletter.copy"), t("newsletter.placeholder"), t("newsletter.subscribe"))
}

// writeFeatures writes the three feature blocks under prefix.
func writeFeatures(b *strings.Builder, t func(string) string, prefix string) {
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(b, `          <div class="feature">
            <h3>%s</h3>
            <p>%s</p>
          </div>
`, t(fmt.Sprintf("%s.feature%dTitle", prefix, i)), t(fmt.Sprintf("%s.feature%dCopy", prefix, i)))
	}
}

func writeTestimonials(b *strings.Builder, t func(string) string, prefix, indent string) {
	fmt.Fprintf(b, "%s<div class=\"grid feature-grid\">\n", indent)
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(b, "%s  <div class=\"testimonial\">\n", indent)
		fmt.Fprintf(b, "%s    <p>%s</p>\n", indent, t(fmt.Sprintf("%s.quote%d", prefix, i)))
		fmt.Fprintf(b, "%s    <strong>%s</strong>\n", indent, t(fmt.Sprintf("%s.author%d", prefix, i)))
		fmt.Fprintf(b, "%s  </div>\n", indent)
	}
	fmt.Fprintf(b, "%s</div>\n", indent)
}

// writeFAQ writes three question/answer pairs, the first one expanded.
func writeFAQ(b *strings.Builder, t func(string) string, prefix, indent string) {
	fmt.Fprintf(b, "%s<div class=\"faq\">\n", indent)
	for i := 1; i <= 3; i++ {
		open := ""
		if i == 1 {
			open = " open"
		}
		fmt.Fprintf(b, "%s  <details%s>\n", indent, open)
		fmt.Fprintf(b, "%s    <summary>%s</summary>\n", indent, t(fmt.Sprintf("%s.question%d", prefix, i)))
		fmt.Fprintf(b, "%s    <p>%s</p>\n", indent, t(fmt.Sprintf("%s.answer%d", prefix, i)))
		fmt.Fprintf(b, "%s  </details>\n", indent)
	}
	fmt.Fprintf(b, "%s</div>\n", indent)
}

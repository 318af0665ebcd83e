package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sunwei/aurum-atelier/langs"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// sections are the home page anchors linked from the navigation.
var sections = []string{"collections", "craft", "reviews", "service"}

func (r *Renderer) writeBrand(b *strings.Builder, indent string, label bool) {
	if label {
		fmt.Fprintf(b, "%s<div class=\"brand\" aria-label=\"%s\">\n", indent, Escape(r.cfg.Brand))
	} else {
		fmt.Fprintf(b, "%s<div class=\"brand\">\n", indent)
	}
	fmt.Fprintf(b, "%s  <div class=\"brand-badge\">%s</div>\n", indent, Escape(r.cfg.BrandMark))
	fmt.Fprintf(b, "%s  <span>%s</span>\n", indent, Escape(r.cfg.Brand))
	fmt.Fprintf(b, "%s</div>\n", indent)
}

func (r *Renderer) writeHeader(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	home := lang.HomePath()

	b.WriteString("\n  <header>\n    <div class=\"container nav\">\n")
	r.writeBrand(b, "      ", true)

	b.WriteString("      <nav aria-label=\"Primary\">\n        <ul>\n")
	for _, s := range sections {
		fmt.Fprintf(b, "          <li><a href=\"%s#%s\">%s</a></li>\n", home, s, t("nav."+s))
	}
	b.WriteString("        </ul>\n      </nav>\n")

	b.WriteString("      <div class=\"lang-switch\" role=\"navigation\" aria-label=\"Language\">\n")
	for _, l := range r.langs.Languages {
		class, current := "", "false"
		if l == lang {
			class, current = "active", "page"
		}
		fmt.Fprintf(b, "        <a class=\"%s\" href=\"%s\" lang=\"%s\" aria-current=\"%s\">%s</a>\n",
			class, l.HomePath(), l.HTMLLang(), current, Escape(l.Label))
	}
	b.WriteString("      </div>\n    </div>\n  </header>\n")
}

func (r *Renderer) writeFooter(b *strings.Builder, lang *langs.Language) {
	t := r.t.Func(lang.Lang)
	phone := t("footer.phone")

	b.WriteString("\n<footer>\n  <div class=\"container footer-grid\">\n    <div>\n")
	r.writeBrand(b, "      ", false)
	fmt.Fprintf(b, `      <p>%s</p>
    </div>
    <div>
      <strong>%s</strong>
      <a href="#collections">%s</a>
      <a href="#collections">%s</a>
      <a href="#service">%s</a>
    </div>
    <div>
      <strong>%s</strong>
      <a href="#craft">%s</a>
      <a href="#reviews">%s</a>
      <a href="#service">%s</a>
    </div>
    <div>
      <strong>%s</strong>
      <a href="mailto:%s">%s</a>
      <a href="tel:%s">%s</a>
      <span>%s</span>
    </div>
  </div>
</footer>
`,
		t("footer.tagline"),
		t("footer.shop"), t("footer.all"), t("footer.limited"), t("footer.concierge"),
		t("footer.company"), t("footer.craft"), t("footer.reviews"), t("footer.warranty"),
		t("footer.contact"), t("footer.email"), t("footer.email"),
		whitespaceRe.ReplaceAllString(phone, ""), phone,
		t("footer.address"),
	)
}

// writeDocument writes the html element around a body.
func (r *Renderer) writeDocument(b *strings.Builder, htmlLang string, h head, bodyClass string, body func(b *strings.Builder)) {
	fmt.Fprintf(b, "<!doctype html>\n<html lang=\"%s\">\n<head>", htmlLang)
	r.writeHead(b, h)
	fmt.Fprintf(b, "</head>\n<body class=\"%s\">\n", bodyClass)
	body(b)
	b.WriteString("</body>\n</html>")
}

package render

import (
	"fmt"
	"strings"

	"github.com/sunwei/aurum-atelier/langs"
)

type alternate struct {
	hreflang string
	href     string
}

// head is the document metadata shared by all pages.
type head struct {
	title       string
	description string
	robots      string
	canonical   string
	alternates  []alternate

	// Open Graph and Twitter cards are only written for pages in a
	// language.
	lang *langs.Language
}

func (r *Renderer) writeHead(b *strings.Builder, h head) {
	title, description := Escape(h.title), Escape(h.description)

	b.WriteString(`
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
`)
	fmt.Fprintf(b, "  <title>%s</title>\n", title)
	fmt.Fprintf(b, "  <meta name=\"description\" content=\"%s\" />\n", description)
	fmt.Fprintf(b, "  <meta name=\"robots\" content=\"%s\" />\n", h.robots)
	fmt.Fprintf(b, "  <link rel=\"canonical\" href=\"%s\" />\n", Escape(h.canonical))
	for _, alt := range h.alternates {
		fmt.Fprintf(b, "  <link rel=\"alternate\" hreflang=\"%s\" href=\"%s\" />\n", alt.hreflang, Escape(alt.href))
	}

	if h.lang != nil {
		b.WriteString("  <meta property=\"og:type\" content=\"website\" />\n")
		fmt.Fprintf(b, "  <meta property=\"og:title\" content=\"%s\" />\n", title)
		fmt.Fprintf(b, "  <meta property=\"og:description\" content=\"%s\" />\n", description)
		fmt.Fprintf(b, "  <meta property=\"og:url\" content=\"%s\" />\n", Escape(h.canonical))
		fmt.Fprintf(b, "  <meta property=\"og:site_name\" content=\"%s\" />\n", Escape(r.cfg.Brand))
		fmt.Fprintf(b, "  <meta property=\"og:locale\" content=\"%s\" />\n", h.lang.Locale())
		for _, l := range r.langs.Languages {
			if l != h.lang {
				fmt.Fprintf(b, "  <meta property=\"og:locale:alternate\" content=\"%s\" />\n", l.Locale())
			}
		}
		b.WriteString("  <meta name=\"twitter:card\" content=\"summary_large_image\" />\n")
		fmt.Fprintf(b, "  <meta name=\"twitter:title\" content=\"%s\" />\n", title)
		fmt.Fprintf(b, "  <meta name=\"twitter:description\" content=\"%s\" />\n", description)
	}

	b.WriteString(stylesheets)
}

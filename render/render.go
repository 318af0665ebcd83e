// Package render turns the catalog and the site copy into HTML documents.
// Renderers are pure: they read nothing from disk and return the
// complete document as a string.
package render

import (
	"fmt"
	"strings"

	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/i18n"
	"github.com/sunwei/aurum-atelier/langs"
	"github.com/sunwei/aurum-atelier/source"
)

const stylesheets = `  <link rel="stylesheet" href="/assets/style.css" />
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Playfair+Display:wght@500;600;700&family=Source+Sans+3:wght@300;400;500;600;700&display=swap" />
`

// Options holds everything a Renderer reads from.
type Options struct {
	Config     config.SiteConfig
	Languages  langs.LanguagesConfig
	Translator *i18n.Translator
	Catalog    *catalog.Catalog
	Settings   map[string]source.SiteSettings
}

// Renderer renders the pages of one build.
type Renderer struct {
	cfg      config.SiteConfig
	langs    langs.LanguagesConfig
	t        *i18n.Translator
	cat      *catalog.Catalog
	settings map[string]source.SiteSettings

	baseURL string
}

// New creates a Renderer. Every configured language must have site
// settings.
func New(opts Options) (*Renderer, error) {
	if opts.Translator == nil {
		return nil, fmt.Errorf("render: no translator")
	}
	if opts.Catalog == nil {
		return nil, fmt.Errorf("render: no catalog")
	}
	if opts.Languages.DefaultLanguage == nil {
		return nil, fmt.Errorf("render: no default language")
	}
	for _, l := range opts.Languages.Languages {
		if _, found := opts.Settings[l.Lang]; !found {
			return nil, fmt.Errorf("render: no site settings for language %q", l.Lang)
		}
	}

	return &Renderer{
		cfg:      opts.Config,
		langs:    opts.Languages,
		t:        opts.Translator,
		cat:      opts.Catalog,
		settings: opts.Settings,
		baseURL:  strings.TrimSuffix(opts.Config.BaseURL, "/"),
	}, nil
}

// Languages returns the languages pages are rendered in.
func (r *Renderer) Languages() langs.Languages {
	return r.langs.Languages
}

// ProductPath is the site relative path of a product page.
func ProductPath(l *langs.Language, slug string) string {
	return l.HomePath() + slug + "/"
}

// permalink turns a site relative path into an absolute URL.
func (r *Renderer) permalink(path string) string {
	return r.baseURL + path
}

// alternates returns the hreflang links for a page that exists in every
// language, given its path in each.
func (r *Renderer) alternates(path func(l *langs.Language) string) []alternate {
	alts := make([]alternate, 0, len(r.langs.Languages)+1)
	for _, l := range r.langs.Languages {
		alts = append(alts, alternate{hreflang: l.HTMLLang(), href: r.permalink(path(l))})
	}
	return append(alts, alternate{hreflang: "x-default", href: r.permalink("/")})
}

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/i18n"
	"github.com/sunwei/aurum-atelier/langs"
	"github.com/sunwei/aurum-atelier/source"
	"github.com/sunwei/aurum-atelier/types"
)

func testSiteConfig(t *testing.T) config.SiteConfig {
	t.Helper()
	cfg, err := config.LoadConfig(config.SourceDescriptor{Fs: afero.NewMemMapFs(), WorkingDir: "/site"})
	require.NoError(t, err)
	sc, err := config.DecodeSiteConfig(cfg)
	require.NoError(t, err)
	return sc
}

func product(slug string, price, compare types.Value, tags []string, gallery ...string) *catalog.Product {
	return catalog.NewProduct(slug, price, compare,
		catalog.Images{Main: "/assets/uploads/" + slug + ".jpg", Gallery: gallery},
		map[string]catalog.Localized{
			"en": {
				Name:           strings.Title(strings.ReplaceAll(slug, "-", " ")),
				Subtitle:       "Subtitle of " + slug,
				Description:    "About " + slug,
				Tags:           tags,
				HighlightSpecs: []catalog.Spec{{Label: "Case", Value: "40mm"}},
				SpecTable:      []catalog.Spec{{Label: "Water resistance", Value: "100m"}},
			},
			"zh": {
				Name:     slug + " 中文",
				Subtitle: "副标题",
			},
		})
}

func newTestRenderer(t *testing.T, products ...*catalog.Product) *Renderer {
	t.Helper()
	sc := testSiteConfig(t)
	lc, err := langs.LoadLanguageSettings(sc)
	require.NoError(t, err)

	entries := make([]catalog.Entry, len(products))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range products {
		// First product is the newest.
		entries[i] = catalog.Entry{Product: p, Filename: p.Slug + ".json", ModTime: base.Add(-time.Duration(i) * time.Hour)}
	}
	cat, err := catalog.New(entries)
	require.NoError(t, err)

	r, err := New(Options{
		Config:     sc,
		Languages:  lc,
		Translator: i18n.MustBundled(lc.Languages.Codes()...),
		Catalog:    cat,
		Settings: map[string]source.SiteSettings{
			"en": {HeroTitle: "Time, Refined", MetaTitle: "Aurum Atelier | Watches", MetaDescription: "Watches & more"},
			"zh": {HeroTitle: "时间之美", MetaTitle: "Aurum Atelier 腕表", MetaDescription: "奢华腕表"},
		},
	})
	require.NoError(t, err)
	return r
}

func TestEscape(t *testing.T) {
	require.Equal(t, "&lt;b&gt;Tom &amp; Jerry&#39;s &quot;best&quot;&lt;/b&gt;", Escape(`<b>Tom & Jerry's "best"</b>`))
	require.Equal(t, "plain", Escape("plain"))
}

func TestFormatPrice(t *testing.T) {
	for _, test := range []struct {
		in     types.Value
		expect string
	}{
		{types.NewValue(float64(128)), "$128"},
		{types.NewValue("128.5"), "$128.5"},
		{types.NewValue(" 42 "), "$42"},
		{types.NewValue("TBD"), "$TBD"},
		{types.NewValue(""), "$0"},
		{types.NewValue(nil), "$0"},
		{types.NewValue(true), "$1"},
		{types.Value{}, "$undefined"},
		{types.NewValue(1299.99), "$1299.99"},
	} {
		require.Equal(t, test.expect, FormatPrice(test.in), "%#v", test.in.Raw())
	}
}

func TestNewRequiresSettings(t *testing.T) {
	sc := testSiteConfig(t)
	lc, err := langs.LoadLanguageSettings(sc)
	require.NoError(t, err)
	cat, err := catalog.New(nil)
	require.NoError(t, err)

	_, err = New(Options{
		Config:     sc,
		Languages:  lc,
		Translator: i18n.MustBundled("en", "zh"),
		Catalog:    cat,
		Settings:   map[string]source.SiteSettings{"en": {}},
	})
	require.ErrorContains(t, err, `"zh"`)
}

func TestLanguageSelector(t *testing.T) {
	r := newTestRenderer(t)
	html := r.LanguageSelector()

	require.True(t, strings.HasPrefix(html, "<!doctype html>\n<html lang=\"en\">"))
	require.True(t, strings.HasSuffix(html, "</body>\n</html>"))
	require.Contains(t, html, `<title>Choose Language | 选择语言</title>`)
	require.Contains(t, html, `<meta name="robots" content="noindex,follow" />`)
	require.Contains(t, html, `<link rel="canonical" href="https://aurum-atelier-decap.pages.dev/" />`)
	require.Contains(t, html, `<link rel="alternate" hreflang="en" href="https://aurum-atelier-decap.pages.dev/en/" />`)
	require.Contains(t, html, `<link rel="alternate" hreflang="zh-CN" href="https://aurum-atelier-decap.pages.dev/zh/" />`)
	require.Contains(t, html, `<link rel="alternate" hreflang="x-default" href="https://aurum-atelier-decap.pages.dev/" />`)
	require.Contains(t, html, `<a class="btn primary" href="/en/" lang="en">English</a>`)
	require.Contains(t, html, `<a class="btn" href="/zh/" lang="zh-CN">中文</a>`)
	require.Contains(t, html, `Redirecting in <span id="countdown-en">3</span>s… / 正在跳转，剩余 <span id="countdown-zh">3</span> 秒…`)
	require.Contains(t, html, `var target = lang.indexOf("zh") !== -1 ? "/zh/" : "/en/";`)
	require.Contains(t, html, `if (window.location.pathname === "/") {`)
	require.NotContains(t, html, "og:title")
}

func TestHome(t *testing.T) {
	r := newTestRenderer(t,
		product("solace-automatic", types.NewValue(float64(128)), types.Value{}, []string{"Automatic", "Sapphire", "Steel", "40mm", "Leather", "Blue"}),
		product("solstice-chrono", types.NewValue("TBD"), types.Value{}, nil),
	)
	en := r.Languages().Get("en")
	zh := r.Languages().Get("zh")

	html := r.Home(en)
	require.Contains(t, html, `<html lang="en">`)
	require.Contains(t, html, `<body class="aurum-page aurum-en">`)
	require.Contains(t, html, `<title>Aurum Atelier | Watches</title>`)
	require.Contains(t, html, `<meta name="description" content="Watches &amp; more" />`)
	require.Contains(t, html, `<link rel="canonical" href="https://aurum-atelier-decap.pages.dev/en/" />`)
	require.Contains(t, html, `<meta property="og:url" content="https://aurum-atelier-decap.pages.dev/en/" />`)
	require.NotContains(t, html, "https://aurum-atelier.pages.dev/")
	require.Contains(t, html, `<meta property="og:locale" content="en_US" />`)
	require.Contains(t, html, `<meta property="og:locale:alternate" content="zh_CN" />`)
	require.Contains(t, html, `<meta property="og:site_name" content="Aurum Atelier" />`)
	require.Contains(t, html, `<li><a href="/en/#craft">Craft</a></li>`)
	require.Contains(t, html, `<a class="active" href="/en/" lang="en" aria-current="page">English</a>`)
	require.Contains(t, html, `<a class="" href="/zh/" lang="zh-CN" aria-current="false">中文</a>`)
	require.Contains(t, html, `<h1>Time, Refined</h1>`)
	require.Contains(t, html, `<span class="pill">Steel</span><span class="pill">40mm</span>`)
	require.Contains(t, html, `<span class="pill">+2</span>`)
	require.NotContains(t, html, `<span class="pill">Leather</span>`)
	require.Contains(t, html, `<span class="price">$128</span>`)
	require.Contains(t, html, `<span class="price">$TBD</span>`)
	require.Contains(t, html, `<a href="tel:+1(888)555-2188">+1 (888) 555-2188</a>`)

	// Canonical order: newest first.
	require.Less(t, strings.Index(html, `href="/en/solace-automatic/"`), strings.Index(html, `href="/en/solstice-chrono/"`))

	html = r.Home(zh)
	require.Contains(t, html, `<html lang="zh-CN">`)
	require.Contains(t, html, `<a class="active" href="/zh/" lang="zh-CN" aria-current="page">中文</a>`)
	require.Contains(t, html, `<a class="" href="/en/" lang="en" aria-current="false">English</a>`)
	require.Contains(t, html, `<meta property="og:locale" content="zh_CN" />`)
	require.Contains(t, html, `<h3>solace-automatic 中文</h3>`)
}

func TestHomeEscapesContent(t *testing.T) {
	p := catalog.NewProduct("evil", types.NewValue("<b>"), types.Value{}, catalog.Images{Main: `/x.jpg" onerror="alert(1)`},
		map[string]catalog.Localized{"en": {Name: `<script>alert("x")</script>`, Tags: []string{"a&b"}}})
	r := newTestRenderer(t, p)

	html := r.Home(r.Languages().Get("en"))
	require.NotContains(t, html, "<script>alert")
	require.Contains(t, html, `<h3>&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;</h3>`)
	require.Contains(t, html, `src="/x.jpg&quot; onerror=&quot;alert(1)"`)
	require.Contains(t, html, `<span class="pill">a&amp;b</span>`)
	require.Contains(t, html, `<span class="price">$&lt;b&gt;</span>`)

	// Copy from the locale table is written as is.
	require.Contains(t, html, `<span class="badge">Live Chat & Phone Support</span>`)
	require.NotContains(t, html, "Live Chat &amp; Phone Support")
}

func TestProduct(t *testing.T) {
	solace := product("solace-automatic", types.NewValue(float64(128)), types.Value{}, []string{"Automatic"}, "/assets/uploads/solace-1.jpg", "/assets/uploads/solace-2.jpg")
	r := newTestRenderer(t,
		solace,
		product("solstice-chrono", types.NewValue(float64(240)), types.NewValue("320"), nil),
		product("meridian-gmt", types.NewValue(float64(310)), types.NewValue(float64(0)), nil),
	)
	en := r.Languages().Get("en")

	html, err := r.Product(en, solace)
	require.NoError(t, err)
	require.Contains(t, html, `<title>Solace Automatic | Aurum Atelier</title>`)
	require.Contains(t, html, `<meta name="description" content="Subtitle of solace-automatic" />`)
	require.Contains(t, html, `<body class="aurum-page aurum-product">`)
	require.Contains(t, html, `<link rel="canonical" href="https://aurum-atelier-decap.pages.dev/en/solace-automatic/" />`)
	require.Contains(t, html, `<link rel="alternate" hreflang="zh-CN" href="https://aurum-atelier-decap.pages.dev/zh/solace-automatic/" />`)
	require.Contains(t, html, `<link rel="alternate" hreflang="x-default" href="https://aurum-atelier-decap.pages.dev/" />`)
	require.Contains(t, html, `<a href="/en/">Home</a> / <a href="/en/#collections">Collections</a> / Solace Automatic`)
	require.Contains(t, html, `<img src="/assets/uploads/solace-1.jpg" alt="Solace Automatic" /><img src="/assets/uploads/solace-2.jpg" alt="Solace Automatic" />`)
	require.Contains(t, html, `<span class="tagline">Automatic</span>`)
	require.Contains(t, html, `<span class="price">$128</span>`)
	require.Contains(t, html, `<span class="compare">$398</span>`)
	require.Contains(t, html, `<div class="spec"><span>Case</span><strong>40mm</strong></div>`)
	require.Contains(t, html, `<tr><th>Water resistance</th><td>100m</td></tr>`)
	require.Contains(t, html, `<h2>Craft & Finish</h2>`)
	require.Contains(t, html, `<h3>Mirror-Grade Casework</h3>`)
	require.Contains(t, html, `<h3>Serialized Certificate</h3>`)
	require.Contains(t, html, `<strong>Chris / Singapore</strong>`)
	require.Contains(t, html, `<summary>Is the watch covered by warranty?</summary>`)
	require.Contains(t, html, `<section id="contact" class="detail-section">`)
	require.Contains(t, html, `"sku": "AA-SOLACE-AUTOMATIC-128"`)
	require.True(t, strings.HasSuffix(html, "</script>\n</body>\n</html>"))

	// Related: the next three in canonical order, wrapping around.
	related := html[strings.Index(html, "related-grid"):]
	require.Less(t, strings.Index(related, "/en/solstice-chrono/"), strings.Index(related, "/en/meridian-gmt/"))
	require.Equal(t, 2, strings.Count(related, "/en/solace-automatic/"))

	solstice, _ := r.cat.Get("solstice-chrono")
	html, err = r.Product(en, solstice)
	require.NoError(t, err)
	require.Contains(t, html, `<span class="compare">$320</span>`)

	meridian, _ := r.cat.Get("meridian-gmt")
	html, err = r.Product(en, meridian)
	require.NoError(t, err)
	require.Contains(t, html, `<span class="compare">$398</span>`)
}

package source

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const siteJSON = `{
  "en": {"hero_pill": "New Season", "hero_title": "Time, Refined", "hero_subtitle": "Modern watches",
         "cta_primary": "Shop", "cta_secondary": "Talk to us", "meta_title": "Aurum Atelier", "meta_description": "Luxury watches"},
  "zh": {"hero_pill": "新季", "hero_title": "时间之美", "hero_subtitle": "现代腕表",
         "cta_primary": "选购", "cta_secondary": "咨询", "meta_title": "Aurum Atelier 腕表", "meta_description": "奢华腕表"}
}`

const solaceJSON = `{
  "slug": "solace-automatic",
  "name_en": "Solace Automatic", "name_zh": "Solace 自动款",
  "subtitle_en": "40mm steel", "subtitle_zh": "40mm 精钢",
  "desc_en": "Everyday automatic.", "desc_zh": "日常自动表。",
  "tags_en": ["Automatic", "Sapphire"], "tags_zh": ["自动", "蓝宝石"],
  "specs_en": [{"label": "Case", "value": "40mm"}], "specs_zh": [{"label": "表壳", "value": "40mm"}],
  "spec_table_en": [{"label": "Water resistance", "value": 100}], "spec_table_zh": [{"label": "防水", "value": 100}],
  "price": 128,
  "images": {"main": "/assets/uploads/solace.jpg", "gallery": ["/assets/uploads/solace-1.jpg"]}
}`

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	write(t, fs, "/site/content/site.json", siteJSON)
	write(t, fs, "/site/content/products/solace-automatic.json", solaceJSON)
	write(t, fs, "/site/content/products/solstice-chrono.json", "\xef\xbb\xbf"+`{"slug": "solstice-chrono", "name_en": "Solstice Chrono", "price": "TBD"}`)
	write(t, fs, "/site/content/products/README.md", "not a product")
	require.NoError(t, fs.MkdirAll("/site/content/products/drafts.json", 0o755))
	require.NoError(t, fs.Chtimes("/site/content/products/solace-automatic.json", epoch, epoch))
	require.NoError(t, fs.Chtimes("/site/content/products/solstice-chrono.json", epoch, epoch.Add(time.Hour)))
	return fs
}

func write(t *testing.T, fs afero.Fs, filename, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, filename, []byte(content), 0o644))
}

func options(fs afero.Fs) Options {
	return Options{
		Fs:          fs,
		Dir:         "/site/content",
		SiteFile:    "site.json",
		ProductsDir: "products",
		Languages:   []string{"en", "zh"},
	}
}

func TestLoad(t *testing.T) {
	store, err := Load(options(newFs(t)))
	require.NoError(t, err)

	require.Equal(t, "Time, Refined", store.Settings["en"].HeroTitle)
	require.Equal(t, "奢华腕表", store.Settings["zh"].MetaDescription)

	require.Len(t, store.Products, 2)
	solace, solstice := store.Products[0], store.Products[1]

	require.Equal(t, "solace-automatic", solace.Product.Slug)
	require.Equal(t, "/site/content/products/solace-automatic.json", solace.Filename)
	require.True(t, solace.ModTime.Equal(epoch))
	require.True(t, solstice.ModTime.Equal(epoch.Add(time.Hour)))

	en := solace.Product.In("en")
	require.Equal(t, "Solace Automatic", en.Name)
	require.Equal(t, "Everyday automatic.", en.Description)
	require.Equal(t, []string{"Automatic", "Sapphire"}, en.Tags)
	require.Equal(t, "40mm", en.HighlightSpecs[0].Value)
	require.Equal(t, "100", en.SpecTable[0].Value)
	require.Equal(t, "Solace 自动款", solace.Product.In("zh").Name)
	require.Equal(t, "128", solace.Product.Price.String())
	require.False(t, solace.Product.ComparePrice.IsSet())
	require.Equal(t, []string{"/assets/uploads/solace-1.jpg"}, solace.Product.Images.Gallery)

	// BOM prefixed, sparse.
	require.Equal(t, "solstice-chrono", solstice.Product.Slug)
	require.Equal(t, "TBD", solstice.Product.Price.String())
	require.Equal(t, "", solstice.Product.In("zh").Name)
	require.Empty(t, solstice.Product.In("en").Tags)
}

func TestLoadProductPattern(t *testing.T) {
	opts := options(newFs(t))
	opts.ProductFiles = "solace-*.json"

	store, err := Load(opts)
	require.NoError(t, err)
	require.Len(t, store.Products, 1)
}

func TestLoadMissingContentDir(t *testing.T) {
	opts := options(afero.NewMemMapFs())
	_, err := Load(opts)
	require.True(t, errors.Is(err, ErrNoContent))
}

func TestLoadMalformedJSON(t *testing.T) {
	fs := newFs(t)
	write(t, fs, "/site/content/products/broken.json", `{"slug": "broken",`)

	_, err := Load(options(fs))
	require.ErrorContains(t, err, "broken.json")
}

func TestLoadMissingSlug(t *testing.T) {
	fs := newFs(t)
	write(t, fs, "/site/content/products/anon.json", `{"name_en": "Anon"}`)

	_, err := Load(options(fs))
	require.ErrorContains(t, err, "no slug")
}

func TestLoadMissingLanguageSettings(t *testing.T) {
	opts := options(newFs(t))
	opts.Languages = []string{"en", "fr"}

	_, err := Load(opts)
	require.ErrorContains(t, err, `"fr"`)
}

func TestLoadWrongFieldType(t *testing.T) {
	fs := newFs(t)
	write(t, fs, "/site/content/products/odd.json", `{"slug": "odd", "tags_en": "not a list"}`)

	_, err := Load(options(fs))
	require.ErrorContains(t, err, "tags_en")
}

func TestLoadSlugMustBePathSegment(t *testing.T) {
	for _, slug := range []string{"..", "a/b", `a\b`, "a?b"} {
		fs := newFs(t)
		write(t, fs, "/site/content/products/bad.json", `{"slug": `+strconv.Quote(slug)+`}`)

		_, err := Load(options(fs))
		require.ErrorContains(t, err, "single path segment", slug)
	}
}

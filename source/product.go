package source

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/types"
)

// productFile is the on-disk shape of a product. Localized fields carry a
// language suffix, e.g. name_en, spec_table_zh, and are picked out of the
// raw document per configured language.
type productFile struct {
	Slug         string      `json:"slug"`
	Price        types.Value `json:"price"`
	ComparePrice types.Value `json:"compare_price"`
	Images       struct {
		Main    string   `json:"main"`
		Gallery []string `json:"gallery"`
	} `json:"images"`
}

type specFile struct {
	Label types.Value `json:"label"`
	Value types.Value `json:"value"`
}

func loadProduct(fs afero.Fs, filename string, langs []string) (*catalog.Product, error) {
	b, err := readFile(fs, filename)
	if err != nil {
		return nil, err
	}
	var raw map[string]jsoniter.RawMessage
	if err := unmarshal(filename, b, &raw); err != nil {
		return nil, err
	}
	var pf productFile
	if err := unmarshal(filename, b, &pf); err != nil {
		return nil, err
	}
	if pf.Slug == "" {
		return nil, fmt.Errorf("%q: product has no slug", filename)
	}
	if !isPathSegment(pf.Slug) {
		return nil, fmt.Errorf("%q: slug %q is not a single path segment", filename, pf.Slug)
	}

	localized := make(map[string]catalog.Localized, len(langs))
	for _, lang := range langs {
		l, err := decodeLocalized(raw, lang)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", filename, err)
		}
		localized[lang] = l
	}

	images := catalog.Images{Main: pf.Images.Main, Gallery: pf.Images.Gallery}

	return catalog.NewProduct(pf.Slug, pf.Price, pf.ComparePrice, images, localized), nil
}

func decodeLocalized(raw map[string]jsoniter.RawMessage, lang string) (l catalog.Localized, err error) {
	field := func(name string) string {
		return name + "_" + lang
	}

	if l.Name, err = decodeText(raw, field("name")); err != nil {
		return
	}
	if l.Subtitle, err = decodeText(raw, field("subtitle")); err != nil {
		return
	}
	if l.Description, err = decodeText(raw, field("desc")); err != nil {
		return
	}
	if l.Tags, err = decodeTexts(raw, field("tags")); err != nil {
		return
	}
	if l.HighlightSpecs, err = decodeSpecs(raw, field("specs")); err != nil {
		return
	}
	if l.SpecTable, err = decodeSpecs(raw, field("spec_table")); err != nil {
		return
	}
	return
}

// isPathSegment reports whether s can be used as one URL path segment and
// one directory name.
func isPathSegment(s string) bool {
	if s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\?#`)
}

// text renders a scalar the way it appears on the page. Absent and null
// values are empty.
func text(v types.Value) string {
	if !v.IsSet() || v.Raw() == nil {
		return ""
	}
	return v.String()
}

func decodeText(raw map[string]jsoniter.RawMessage, key string) (string, error) {
	b, found := raw[key]
	if !found {
		return "", nil
	}
	var v types.Value
	if err := json.Unmarshal(b, &v); err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return text(v), nil
}

func decodeTexts(raw map[string]jsoniter.RawMessage, key string) ([]string, error) {
	b, found := raw[key]
	if !found {
		return nil, nil
	}
	var vs []types.Value
	if err := json.Unmarshal(b, &vs); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	texts := make([]string, len(vs))
	for i, v := range vs {
		texts[i] = text(v)
	}
	return texts, nil
}

func decodeSpecs(raw map[string]jsoniter.RawMessage, key string) ([]catalog.Spec, error) {
	b, found := raw[key]
	if !found {
		return nil, nil
	}
	var sfs []specFile
	if err := json.Unmarshal(b, &sfs); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	specs := make([]catalog.Spec, len(sfs))
	for i, sf := range sfs {
		specs[i] = catalog.Spec{Label: text(sf.Label), Value: text(sf.Value)}
	}
	return specs, nil
}

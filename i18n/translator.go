// Package i18n holds the UI strings of every supported language.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

//go:embed locales/*.toml
var bundled embed.FS

// Translator resolves UI strings by language and dotted key,
// e.g. T("zh", "nav.craft").
// A Translator is immutable once loaded.
type Translator struct {
	tables map[string]map[string]string
}

// Load builds a Translator for langs from the bundled locale files. Keys
// in <dir>/<lang>.toml on fs, if present, override the bundled ones.
// Every language must end up with the same set of keys as the first.
func Load(fs afero.Fs, dir string, langs []string) (*Translator, error) {
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages to load translations for")
	}
	t := &Translator{tables: make(map[string]map[string]string)}

	for _, lang := range langs {
		table := make(map[string]string)
		found := false

		b, err := bundled.ReadFile(path.Join("locales", lang+".toml"))
		if err == nil {
			found = true
			if err := decodeInto(table, b); err != nil {
				return nil, fmt.Errorf("bundled translations for %q: %w", lang, err)
			}
		}

		if fs != nil && dir != "" {
			filename := filepath.Join(dir, lang+".toml")
			ok, err := afero.Exists(fs, filename)
			if err != nil {
				return nil, fmt.Errorf("translations %q: %w", filename, err)
			}
			if ok {
				b, err := afero.ReadFile(fs, filename)
				if err != nil {
					return nil, err
				}
				found = true
				if err := decodeInto(table, b); err != nil {
					return nil, fmt.Errorf("translations %q: %w", filename, err)
				}
			}
		}

		if !found {
			return nil, fmt.Errorf("no translations found for language %q", lang)
		}
		t.tables[lang] = table
	}

	if err := t.checkComplete(langs); err != nil {
		return nil, err
	}

	return t, nil
}

// MustBundled is Load without overrides. It panics on error.
func MustBundled(langs ...string) *Translator {
	t, err := Load(nil, "", langs)
	if err != nil {
		panic(err)
	}
	return t
}

// T returns the string for key in lang. Unknown keys come back as the
// key itself so they stand out in the rendered page.
func (t *Translator) T(lang, key string) string {
	if m, ok := t.tables[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Func returns a lookup bound to lang.
func (t *Translator) Func(lang string) func(key string) string {
	return func(key string) string {
		return t.T(lang, key)
	}
}

// Keys returns the sorted keys known for lang.
func (t *Translator) Keys(lang string) []string {
	m := t.tables[lang]
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t *Translator) checkComplete(langs []string) error {
	ref := langs[0]
	for _, lang := range langs[1:] {
		for _, k := range t.Keys(ref) {
			if _, ok := t.tables[lang][k]; !ok {
				return fmt.Errorf("translation %q missing for language %q", k, lang)
			}
		}
		for _, k := range t.Keys(lang) {
			if _, ok := t.tables[ref][k]; !ok {
				return fmt.Errorf("translation %q missing for language %q", k, ref)
			}
		}
	}
	return nil
}

func decodeInto(table map[string]string, b []byte) error {
	m := make(map[string]any)
	if err := toml.Unmarshal(b, &m); err != nil {
		return err
	}
	flatten(table, "", m)
	return nil
}

func flatten(table map[string]string, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if mm, ok := v.(map[string]any); ok {
			flatten(table, key, mm)
			continue
		}
		table[key] = strings.TrimSpace(cast.ToString(v))
	}
}

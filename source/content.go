// Package source reads the site settings and the product records from
// the content store.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"github.com/sunwei/aurum-atelier/catalog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var utf8BOM = []byte("\xef\xbb\xbf")

// ErrNoContent is returned when the content root does not exist.
var ErrNoContent = errors.New("content dir not found")

// SiteSettings is the per-language copy of the home page.
type SiteSettings struct {
	HeroPill        string `json:"hero_pill"`
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
	CTAPrimary      string `json:"cta_primary"`
	CTASecondary    string `json:"cta_secondary"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// Store is everything read from the content dir.
type Store struct {
	// Keyed by language code.
	Settings map[string]SiteSettings

	// In discovery order, i.e. the lexical order of the file names.
	Products []catalog.Entry
}

// Options configures Load.
type Options struct {
	Fs afero.Fs

	// The content root.
	Dir string

	// The site settings file, relative to Dir.
	SiteFile string

	// The product dir, relative to Dir.
	ProductsDir string

	// Glob matched against the file names in ProductsDir.
	ProductFiles string

	// Languages to read localized fields for.
	Languages []string
}

// Load reads the content store. Any error is fatal to the build: the
// store is either read completely or not at all.
func Load(opts Options) (*Store, error) {
	if opts.ProductFiles == "" {
		opts.ProductFiles = "*.json"
	}
	matcher, err := glob.Compile(opts.ProductFiles)
	if err != nil {
		return nil, fmt.Errorf("invalid product file pattern %q: %w", opts.ProductFiles, err)
	}

	if ok, err := afero.DirExists(opts.Fs, opts.Dir); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoContent, opts.Dir)
	}

	settings, err := loadSettings(opts.Fs, filepath.Join(opts.Dir, opts.SiteFile), opts.Languages)
	if err != nil {
		return nil, err
	}

	productsDir := filepath.Join(opts.Dir, opts.ProductsDir)
	fis, err := afero.ReadDir(opts.Fs, productsDir)
	if err != nil {
		return nil, fmt.Errorf("read products dir: %w", err)
	}

	store := &Store{Settings: settings}
	for _, fi := range fis {
		if fi.IsDir() || !matcher.Match(fi.Name()) {
			continue
		}
		filename := filepath.Join(productsDir, fi.Name())
		p, err := loadProduct(opts.Fs, filename, opts.Languages)
		if err != nil {
			return nil, err
		}
		store.Products = append(store.Products, catalog.Entry{
			Product:  p,
			Filename: filename,
			ModTime:  fi.ModTime(),
		})
	}

	return store, nil
}

func loadSettings(fs afero.Fs, filename string, langs []string) (map[string]SiteSettings, error) {
	var all map[string]SiteSettings
	if err := readJSON(fs, filename, &all); err != nil {
		return nil, err
	}
	settings := make(map[string]SiteSettings, len(langs))
	for _, lang := range langs {
		s, found := all[lang]
		if !found {
			return nil, fmt.Errorf("%q: no settings for language %q", filename, lang)
		}
		settings[lang] = s
	}
	return settings, nil
}

// readJSON decodes the JSON document in filename into v.
func readJSON(fs afero.Fs, filename string, v any) error {
	b, err := readFile(fs, filename)
	if err != nil {
		return err
	}
	return unmarshal(filename, b, v)
}

// readFile reads a content file. A leading byte order mark is dropped.
func readFile(fs afero.Fs, filename string) ([]byte, error) {
	b, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", filename, err)
	}
	return bytes.TrimPrefix(b, utf8BOM), nil
}

func unmarshal(filename string, b []byte, v any) error {
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %q: %w", filename, err)
	}
	return nil
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/sunwei/aurum-atelier/common/maps"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFilename is looked up in the working dir.
const DefaultConfigFilename = "config.toml"

// DefaultConfigFilenames are tried in order when no filename is given.
var DefaultConfigFilenames = []string{DefaultConfigFilename, "config.yaml", "config.yml"}

// SourceDescriptor describes where to find the config.
type SourceDescriptor struct {
	Fs afero.Fs

	// The project's working dir. The content, static and publish dirs
	// are resolved relative to it.
	WorkingDir string

	// Config filename relative to WorkingDir. Defaults to the first of
	// DefaultConfigFilenames found. A missing file is not an error, the
	// built-in defaults apply.
	Filename string
}

// FromFileToMap reads the config file as a simple map. The format
// follows from the file extension.
func FromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	b, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &m)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &m)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", filename, err)
	}
	return m, nil
}

// LoadConfig loads the optional config file into a new Provider and then
// adds the defaults for everything it does not set.
func LoadConfig(d SourceDescriptor) (Provider, error) {
	cfg := New()

	names := DefaultConfigFilenames
	if d.Filename != "" {
		names = []string{d.Filename}
	}

	filename, err := findConfigFile(d.Fs, d.WorkingDir, names)
	if err != nil {
		return nil, err
	}
	if filename != "" {
		m, err := FromFileToMap(d.Fs, filename)
		if err != nil {
			return nil, err
		}
		cfg = NewFrom(m)
	}

	cfg.SetDefaults(DefaultSettings())
	cfg.Set("workingDir", d.WorkingDir)

	return cfg, nil
}

// findConfigFile returns the first of names that exists in dir, or "".
func findConfigFile(fs afero.Fs, dir string, names []string) (string, error) {
	for _, name := range names {
		filename := filepath.Join(dir, name)
		exists, err := afero.Exists(fs, filename)
		if err != nil {
			return "", err
		}
		if exists {
			return filename, nil
		}
	}
	return "", nil
}

// DefaultSettings returns the settings used for anything not in the
// config file.
func DefaultSettings() maps.Params {
	return maps.Params{
		"baseURL":                "https://aurum-atelier-decap.pages.dev/",
		"brand":                  "Aurum Atelier",
		"brandMark":              "AA",
		"contentDir":             "content",
		"productsDir":            "products",
		"siteFile":               "site.json",
		"i18nDir":                "i18n",
		"productFiles":           "*.json",
		"publishDir":             "dist",
		"staticDirs":             []any{"assets", "admin", "functions"},
		"defaultContentLanguage": "en",
		"languages": maps.Params{
			"en": maps.Params{"htmlLang": "en", "label": "English", "weight": 1},
			"zh": maps.Params{"htmlLang": "zh-CN", "label": "中文", "weight": 2},
		},
		"relatedCount":         3,
		"cardTagLimit":         4,
		"fallbackComparePrice": 398,
		"heroImage":            "/assets/uploads/solace-automatic.jpg",
		"minifyOutput":         false,
		"canonifyURLs":         false,
		"logLevel":             "warn",
	}
}

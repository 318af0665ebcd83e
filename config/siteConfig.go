package config

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// LanguageConfig is the per-language part of SiteConfig.
type LanguageConfig struct {
	// The value of the html lang attribute and the hreflang code,
	// e.g. zh-CN.
	HTMLLang string

	// Shown in the language switcher.
	Label string

	Weight int
}

// SiteConfig is the typed view of the build configuration.
type SiteConfig struct {
	WorkingDir string

	BaseURL   string
	Brand     string
	BrandMark string

	ContentDir   string
	ProductsDir  string
	SiteFile     string
	ProductFiles string
	I18nDir      string
	PublishDir   string
	StaticDirs   []string

	DefaultContentLanguage string
	Languages              map[string]LanguageConfig

	RelatedCount         int
	CardTagLimit         int
	FallbackComparePrice float64
	HeroImage            string

	MinifyOutput bool
	CanonifyURLs bool
	LogLevel     string
}

// DecodeSiteConfig decodes cfg into a SiteConfig.
func DecodeSiteConfig(cfg Provider) (SiteConfig, error) {
	var c SiteConfig
	if err := mapstructure.WeakDecode(cfg.Get(""), &c); err != nil {
		return c, fmt.Errorf("failed to decode site config: %w", err)
	}
	// WeakDecode turns a single string into a one element slice already,
	// but make the intent explicit for "staticDirs = 'assets'".
	c.StaticDirs = GetStringSlicePreserveString(cfg, "staticDirs")

	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c SiteConfig) validate() error {
	if len(c.Languages) == 0 {
		return errors.New("no languages configured")
	}
	if _, found := c.Languages[c.DefaultContentLanguage]; !found {
		return fmt.Errorf("site config value %q for defaultContentLanguage does not match any language definition", c.DefaultContentLanguage)
	}
	if c.RelatedCount < 0 {
		return fmt.Errorf("relatedCount must not be negative, got %d", c.RelatedCount)
	}
	if c.CardTagLimit < 0 {
		return fmt.Errorf("cardTagLimit must not be negative, got %d", c.CardTagLimit)
	}
	return nil
}

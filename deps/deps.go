// Package deps holds the shared dependencies of a build.
package deps

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bep/clocks"
	"github.com/sunwei/aurum-atelier/common/loggers"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/i18n"
	"github.com/sunwei/aurum-atelier/langs"
	"github.com/sunwei/aurum-atelier/output"
	"github.com/sunwei/aurum-atelier/publisher"
	"github.com/sunwei/aurum-atelier/sitefs"
)

// Deps holds dependencies used by many.
// There will be normally only one instance of deps in play
// at a given time, i.e. one per build.
type Deps struct {
	// The logger to use.
	Log loggers.Logger `json:"-"`

	// The file systems to use.
	Fs *sitefs.Fs `json:"-"`

	// The configuration to use
	Cfg config.Provider `json:"-"`

	// Cfg decoded.
	Site config.SiteConfig

	// The languages to build, sorted.
	Languages langs.LanguagesConfig

	// The UI strings.
	Translator *i18n.Translator `json:"-"`

	// All the output formats available for the build.
	OutputFormatsConfig output.Formats

	// Writes to the publish dir.
	Publisher publisher.DestinationPublisher `json:"-"`

	// Times the build.
	Clock clocks.Clock `json:"-"`
}

// DepsCfg contains configuration options that can be used to configure
// a build on a global level, i.e. logging etc.
// Nil values will be given default values.
type DepsCfg struct {
	// The Logger to use.
	Logger loggers.Logger

	// The file systems to use. If nil, the OS file system is used,
	// rooted at the working dir in Cfg.
	Fs *sitefs.Fs

	// The configuration to use.
	Cfg config.Provider

	// The output formats configured.
	OutputFormats output.Formats

	// The clock to time the build with. Defaults to the system clock.
	Clock clocks.Clock
}

// New initializes a Dep struct.
// Defaults are set for nil values, but Cfg is always required.
func New(cfg DepsCfg) (*Deps, error) {
	if cfg.Cfg == nil {
		return nil, errors.New("deps: no config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = loggers.NewDiscard()
	}

	if cfg.OutputFormats == nil {
		cfg.OutputFormats = output.DefaultFormats
	}

	if cfg.Clock == nil {
		cfg.Clock = clocks.System()
	}

	logger.Process("Decode site config", "typed view of the merged config")
	sc, err := config.DecodeSiteConfig(cfg.Cfg)
	if err != nil {
		return nil, err
	}

	fs := cfg.Fs
	if fs == nil {
		fs = sitefs.NewDefault(sc.WorkingDir, sc.PublishDir)
	}

	logger.Process("Load languages", "sorted by weight")
	lc, err := langs.LoadLanguageSettings(sc)
	if err != nil {
		return nil, err
	}

	logger.Process("Load translations", "bundled locales with overrides from the i18n dir")
	var i18nDir string
	if sc.I18nDir != "" {
		i18nDir = filepath.Join(fs.WorkingDir(), sc.I18nDir)
	}
	translator, err := i18n.Load(fs.Source, i18nDir, lc.Languages.Codes())
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	logger.Process("New publisher", "writes to the publish dir, minifier inside")
	pub, err := publisher.NewDestinationPublisher(fs.PublishDir, cfg.OutputFormats, cfg.Cfg)
	if err != nil {
		return nil, fmt.Errorf("create publisher: %w", err)
	}

	return &Deps{
		Log:                 logger,
		Fs:                  fs,
		Cfg:                 cfg.Cfg,
		Site:                sc,
		Languages:           lc,
		Translator:          translator,
		OutputFormatsConfig: cfg.OutputFormats,
		Publisher:           pub,
		Clock:               cfg.Clock,
	}, nil
}

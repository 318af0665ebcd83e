// Package site builds the whole site: it reads the content store, renders
// every page and writes the result to the publish dir.
package site

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/deps"
	"github.com/sunwei/aurum-atelier/helpers"
	"github.com/sunwei/aurum-atelier/output"
	"github.com/sunwei/aurum-atelier/publisher"
	"github.com/sunwei/aurum-atelier/render"
	"github.com/sunwei/aurum-atelier/sitefs"
	"github.com/sunwei/aurum-atelier/source"
)

// Site is one build of the site.
type Site struct {
	*deps.Deps

	store    *source.Store
	catalog  *catalog.Catalog
	renderer *render.Renderer

	stats BuildStats
}

// BuildStats counts what a build published.
type BuildStats struct {
	Pages       int
	Redirects   int
	StaticFiles int
}

// New creates a Site for d.
func New(d *deps.Deps) *Site {
	return &Site{Deps: d}
}

// Catalog returns the products of the last build, in canonical order.
func (s *Site) Catalog() *catalog.Catalog {
	return s.catalog
}

// Stats returns the counts of the last build.
func (s *Site) Stats() BuildStats {
	return s.stats
}

// Build does a full rebuild. The content is read completely before the
// publish dir is touched, so a content error leaves the previous output in
// place. Any error aborts the build.
func (s *Site) Build() error {
	start := s.Clock.Now()
	s.stats = BuildStats{}

	if err := s.process(); err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	s.Log.Process("Reset publish dir", s.Fs.AbsPublishDir())
	if err := s.Fs.ResetPublishDir(); err != nil {
		return err
	}

	if err := s.render(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := s.copyStaticDirs(); err != nil {
		return fmt.Errorf("copy static files: %w", err)
	}

	s.Log.Infof("Built %d pages, %d redirects and %d static files in %s",
		s.stats.Pages, s.stats.Redirects, s.stats.StaticFiles, s.Clock.Now().Sub(start))

	return nil
}

// process reads the content store and orders the products.
func (s *Site) process() (err error) {
	contentDir, err := s.Fs.RelWorkingDir(s.Site.ContentDir)
	if err != nil {
		return err
	}

	s.Log.Process("Load content", "site settings and products")
	s.store, err = source.Load(source.Options{
		Fs:           s.Fs.WorkingDirReadOnly,
		Dir:          contentDir,
		SiteFile:     s.Site.SiteFile,
		ProductsDir:  s.Site.ProductsDir,
		ProductFiles: s.Site.ProductFiles,
		Languages:    s.Languages.Languages.Codes(),
	})
	if err != nil {
		return err
	}

	s.Log.Process("Order products", "newest content first")
	s.catalog, err = catalog.New(s.store.Products)
	if err != nil {
		return err
	}
	s.Log.Infof("Read %d products", s.catalog.Len())

	s.renderer, err = render.New(render.Options{
		Config:     s.Site,
		Languages:  s.Languages,
		Translator: s.Translator,
		Catalog:    s.catalog,
		Settings:   s.store.Settings,
	})
	return
}

func (s *Site) render() error {
	formats, err := s.OutputFormatsConfig.GetByNames(output.HTMLFormat.Name, output.RedirectsFormat.Name)
	if err != nil {
		return err
	}
	of, rf := formats[0], formats[1]

	s.Log.Process("Render language selector", "site root")
	if err := s.renderAndWritePage("language selector", of.Filename(), s.renderer.LanguageSelector()); err != nil {
		return err
	}

	for _, lang := range s.renderer.Languages() {
		s.Log.Process("Render pages", lang.Lang)

		if err := s.renderAndWritePage("home "+lang.Lang, filepath.Join(lang.Lang, of.Filename()), s.renderer.Home(lang)); err != nil {
			return err
		}

		for _, p := range s.catalog.Products() {
			html, err := s.renderer.Product(lang, p)
			if err != nil {
				return err
			}
			if err := s.renderAndWritePage("product "+p.Slug, filepath.Join(lang.Lang, p.Slug, of.Filename()), html); err != nil {
				return err
			}
		}
	}

	s.Log.Process("Write redirects", rf.Filename())
	rules := redirects(s.catalog.Products(), s.Languages)
	if err := s.publish(rf.Filename(), strings.Join(rules, "\n")); err != nil {
		return err
	}
	s.stats.Redirects = len(rules)

	return nil
}

func (s *Site) renderAndWritePage(name, targetPath, content string) error {
	if err := s.publish(targetPath, content); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	s.stats.Pages++
	return nil
}

// publish writes content to targetPath in the publish dir, in the output
// format its file name belongs to.
func (s *Site) publish(targetPath, content string) error {
	of, found := s.OutputFormatsConfig.FromFilename(filepath.Base(targetPath))
	if !found {
		return fmt.Errorf("no output format for %q", targetPath)
	}

	pd := publisher.Descriptor{
		Src:          strings.NewReader(content),
		TargetPath:   targetPath,
		OutputFormat: of,
		Minify:       s.Publisher.MinifyOutput(),
	}

	if of.IsHTML && s.Site.CanonifyURLs {
		pd.AbsURLPath = helpers.AddTrailingSlash(s.Site.BaseURL)
	}

	return s.Publisher.Publish(pd)
}

// copyStaticDirs copies the static dirs that exist into the publish dir,
// unchanged.
func (s *Site) copyStaticDirs() error {
	for _, dir := range s.Site.StaticDirs {
		from := sitefs.AbsPathify(s.Fs.WorkingDir(), dir)
		exists, err := helpers.DirExists(from, s.Fs.Source)
		if err != nil {
			return err
		}
		if !exists {
			s.Log.Infof("Static dir %q not found, skipping", dir)
			continue
		}

		to := dir
		if filepath.IsAbs(to) {
			to = filepath.Base(to)
		}

		s.Log.Process("Copy static dir", dir)
		n, err := helpers.CopyDir(s.Fs.Source, from, s.Fs.PublishDir, to)
		if err != nil {
			return err
		}
		s.stats.StaticFiles += n
	}
	return nil
}

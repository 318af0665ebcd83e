// Package output describes the kinds of files a build publishes.
package output

import (
	"fmt"
	"sort"
	"strings"
)

// Format represents an output representation, usually to a file on disk.
type Format struct {
	// The Name is used as an identifier.
	Name string

	// The MIME type, e.g. text/html. Used to pick a minifier.
	MediaType string

	// The base output file name, e.g. "index".
	BaseName string

	// The file name suffix without the dot. Empty for extensionless files
	// like _redirects.
	Suffix string

	// IsPlainText is set for formats that are never minified.
	IsPlainText bool

	// IsHTML returns whether this format is in the HTML family.
	IsHTML bool

	// Setting this to a non-zero value will be used as the first sort criteria.
	Weight int
}

// Filename returns the file name of a published file of this format.
func (f Format) Filename() string {
	if f.Suffix == "" {
		return f.BaseName
	}
	return f.BaseName + "." + f.Suffix
}

// Formats is a slice of Format.
type Formats []Format

func (formats Formats) Len() int      { return len(formats) }
func (formats Formats) Swap(i, j int) { formats[i], formats[j] = formats[j], formats[i] }
func (formats Formats) Less(i, j int) bool {
	fi, fj := formats[i], formats[j]
	if fi.Weight == fj.Weight {
		return fi.Name < fj.Name
	}

	if fj.Weight == 0 {
		return true
	}

	return fi.Weight > 0 && fi.Weight < fj.Weight
}

// GetByName gets a format by its identifier name.
func (formats Formats) GetByName(name string) (f Format, found bool) {
	for _, ff := range formats {
		if strings.EqualFold(name, ff.Name) {
			f = ff
			found = true
			return
		}
	}
	return
}

// GetByNames gets a list of formats given a list of identifiers.
func (formats Formats) GetByNames(names ...string) (Formats, error) {
	var types []Format

	for _, name := range names {
		tpe, ok := formats.GetByName(name)
		if !ok {
			return types, fmt.Errorf("OutputFormat with key %q not found", name)
		}
		types = append(types, tpe)
	}
	return types, nil
}

// FromFilename gets a Format given a filename, e.g. index.html or
// _redirects.
func (formats Formats) FromFilename(filename string) (f Format, found bool) {
	for _, ff := range formats {
		if ff.Filename() == filename {
			return ff, true
		}
	}
	return
}

// An ordered list of built-in output formats.
var (
	HTMLFormat = Format{
		Name:      "HTML",
		MediaType: "text/html",
		BaseName:  "index",
		Suffix:    "html",
		IsHTML:    true,

		// Weight will be used as first sort criteria. HTML will, by default,
		// be rendered first, but set it to 10 so it's easy to put one above it.
		Weight: 10,
	}

	// RedirectsFormat is the Netlify style redirect rules file, also read
	// by Cloudflare Pages.
	RedirectsFormat = Format{
		Name:        "REDIRECTS",
		MediaType:   "text/plain",
		BaseName:    "_redirects",
		IsPlainText: true,
		Weight:      20,
	}
)

// DefaultFormats contains the output formats of a build, sorted.
var DefaultFormats = Formats{
	HTMLFormat,
	RedirectsFormat,
}

func init() {
	sort.Sort(DefaultFormats)
}

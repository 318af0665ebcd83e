// Package minifiers minifies published output by MIME type.
package minifiers

import (
	"io"
	"regexp"

	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/output"
	"github.com/sunwei/aurum-atelier/transform"
	"github.com/tdewolff/minify/v2"
)

// Client wraps a minifier.
type Client struct {
	m *minify.M

	// Whether the published output should be minified.
	MinifyOutput bool
}

// New creates a new Client. The HTML minifier is registered for every
// HTML format in outputFormats, the others for their common MIME types.
// Inline scripts, including JSON-LD, and styles go through the JS, JSON
// and CSS minifiers.
func New(outputFormats output.Formats, cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)

	m := minify.New()
	if err != nil {
		return Client{}, err
	}

	m.Add("text/css", getMinifier(conf, "css"))

	m.AddRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), getMinifier(conf, "js"))

	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))

	m.Add("image/svg+xml", getMinifier(conf, "svg"))

	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-)?xml$`), getMinifier(conf, "xml"))

	// HTML
	m.Add("text/html", getMinifier(conf, "html"))
	for _, of := range outputFormats {
		if of.IsHTML {
			m.Add(of.MediaType, getMinifier(conf, "html"))
		}
	}

	return Client{m: m, MinifyOutput: conf.MinifyOutput}, nil
}

// getMinifier returns the appropriate minify.MinifierFunc for the MIME
// type suffix s, given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "css" && !c.DisableCSS:
		return &c.Tdewolff.CSS
	case s == "js" && !c.DisableJS:
		return &c.Tdewolff.JS
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	case s == "svg" && !c.DisableSVG:
		return &c.Tdewolff.SVG
	case s == "xml" && !c.DisableXML:
		return &c.Tdewolff.XML
	case s == "html" && !c.DisableHTML:
		return &c.Tdewolff.HTML
	default:
		return noopMinifier{}
	}
}

// noopMinifier implements minify.Minifier [1], but doesn't minify content. This means
// that we can avoid missing minifiers for any MIME types in our minify.M, which
// causes minify to return errors, while still allowing minification to be
// disabled for specific types.
//
// [1]: https://pkg.go.dev/github.com/tdewolff/minify#Minifier
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}

// Transformer returns a func that can be used in the transformer
// publishing chain, or nil if there is no minifier for mediaType.
func (m Client) Transformer(mediaType string) transform.Transformer {
	_, params, min := m.m.Match(mediaType)
	if min == nil {
		// No minifier for this MIME type
		return nil
	}

	return func(ft transform.FromTo) error {
		// Note that the source io.Reader will already be buffered, but it implements
		// the Bytes() method, which is recognized by the Minify library.
		return min.Minify(m.m, ft.To(), ft.From(), params)
	}
}

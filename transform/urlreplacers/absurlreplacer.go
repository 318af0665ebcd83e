package urlreplacers

import (
	"bytes"
	"io"
	"strings"

	"github.com/sunwei/aurum-atelier/transform"
)

// absURLReplacer rewrites the root relative values of URL attributes,
// e.g. href="/en/" to href="https://example.org/en/". Protocol relative
// URLs (//host/) are left alone.
type absURLReplacer struct {
	attrs [][]byte
}

func newAbsURLReplacer() *absURLReplacer {
	var attrs [][]byte
	for _, name := range []string{"src", "href", "action", "srcset"} {
		for _, quote := range []string{`"`, `'`} {
			attrs = append(attrs, []byte(name+"="+quote+"/"))
		}
	}
	return &absURLReplacer{attrs: attrs}
}

// replaceInHTML writes the content of ft.From() to ft.To() with every
// matched URL prefixed by path. path is expected to end with a slash,
// which then replaces the leading slash of the URL.
func (ar *absURLReplacer) replaceInHTML(path string, ft transform.FromTo) error {
	prefix := []byte(strings.TrimSuffix(path, "/"))
	content := ft.From().Bytes()
	w := ft.To()

	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != 's' && content[i] != 'h' && content[i] != 'a' {
			continue
		}
		if i > 0 && !isSpace(content[i-1]) {
			continue
		}
		attr := ar.match(content[i:])
		if attr == nil {
			continue
		}
		end := i + len(attr)
		if end < len(content) && content[end] == '/' {
			// Protocol relative.
			continue
		}

		// Keep the slash, insert the prefix in front of it.
		if err := write(w, content[start:end-1], prefix); err != nil {
			return err
		}
		start = end - 1
		i = end - 1
	}

	_, err := w.Write(content[start:])
	return err
}

func (ar *absURLReplacer) match(b []byte) []byte {
	for _, attr := range ar.attrs {
		if bytes.HasPrefix(b, attr) {
			return attr
		}
	}
	return nil
}

func write(w io.Writer, chunks ...[]byte) error {
	for _, c := range chunks {
		if _, err := w.Write(c); err != nil {
			return err
		}
	}
	return nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

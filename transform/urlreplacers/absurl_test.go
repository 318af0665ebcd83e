package urlreplacers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwei/aurum-atelier/transform"
)

func TestAbsURLTransformer(t *testing.T) {
	for _, test := range []struct {
		name   string
		in     string
		expect string
	}{
		{"href", `<a href="/en/">x</a>`, `<a href="https://example.org/en/">x</a>`},
		{"src single quote", `<img src='/a.jpg' />`, `<img src='https://example.org/a.jpg' />`},
		{"several", `<link href="/a.css" />
<img
  src="/b.jpg" alt="/c">`, `<link href="https://example.org/a.css" />
<img
  src="https://example.org/b.jpg" alt="/c">`},
		{"protocol relative", `<img src="//cdn.example.org/a.jpg" />`, `<img src="//cdn.example.org/a.jpg" />`},
		{"absolute", `<a href="https://other.org/">x</a>`, `<a href="https://other.org/">x</a>`},
		{"fragment", `<a href="#craft">x</a>`, `<a href="#craft">x</a>`},
		{"inside text", `<p>use href="/x" here</p>`, `<p>use href="https://example.org/x" here</p>`},
		{"data attribute", `<a data-href="/x">`, `<a data-href="/x">`},
		{"end of input", `<a href="/`, `<a href="https://example.org/`},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := transform.New(NewAbsURLTransformer("https://example.org/"))
			var out bytes.Buffer
			require.NoError(t, c.Apply(&out, strings.NewReader(test.in)))
			require.Equal(t, test.expect, out.String())
		})
	}
}

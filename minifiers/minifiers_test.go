package minifiers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/output"
	"github.com/sunwei/aurum-atelier/transform"
)

const page = `<!doctype html>
<html lang="en">
<head>
  <title>Solace</title>
</head>
<body class="aurum-page">
  <main>
    <!-- collections -->
    <h1>Solace   Automatic</h1>
  </main>
<script type="application/ld+json">
{
  "@type": "Product",
  "name": "Solace"
}
</script>
</body>
</html>`

func runMinify(t *testing.T, c Client, mediaType, s string) string {
	t.Helper()
	tr := c.Transformer(mediaType)
	require.NotNil(t, tr)
	var out bytes.Buffer
	chain := transform.New(tr)
	require.NoError(t, chain.Apply(&out, strings.NewReader(s)))
	return out.String()
}

func TestMinifyHTML(t *testing.T) {
	cfg := config.New()
	cfg.Set("minifyOutput", true)

	c, err := New(output.DefaultFormats, cfg)
	require.NoError(t, err)
	require.True(t, c.MinifyOutput)

	min := runMinify(t, c, "text/html", page)
	require.Less(t, len(min), len(page))
	require.Contains(t, min, "<h1>Solace Automatic</h1>")
	require.Contains(t, min, `{"@type":"Product","name":"Solace"}`)
	require.Contains(t, min, "</html>")
	require.NotContains(t, min, "collections")
}

func TestMinifyDisabledByType(t *testing.T) {
	cfg := config.New()
	cfg.Set("minify", map[string]any{"disableHTML": true})

	c, err := New(output.DefaultFormats, cfg)
	require.NoError(t, err)
	require.False(t, c.MinifyOutput)
	require.Equal(t, page, runMinify(t, c, "text/html", page))
}

func TestMinifyTdewolffOptions(t *testing.T) {
	cfg := config.New()
	cfg.Set("minify", map[string]any{
		"tdewolff": map[string]any{"html": map[string]any{"keepComments": true}},
	})

	c, err := New(output.DefaultFormats, cfg)
	require.NoError(t, err)
	require.Contains(t, runMinify(t, c, "text/html", page), "<!-- collections -->")
}

func TestNoMinifierForPlainText(t *testing.T) {
	c, err := New(output.DefaultFormats, config.New())
	require.NoError(t, err)
	require.Nil(t, c.Transformer(output.RedirectsFormat.MediaType))
}

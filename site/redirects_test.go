package site

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/langs"
	"github.com/sunwei/aurum-atelier/types"
)

func TestRedirects(t *testing.T) {
	lc, err := langs.LoadLanguageSettings(config.SiteConfig{
		DefaultContentLanguage: "en",
		Languages: map[string]config.LanguageConfig{
			"en": {Weight: 1},
			"zh": {HTMLLang: "zh-CN", Weight: 2},
			"fr": {Weight: 3},
		},
	})
	require.NoError(t, err)

	p := catalog.NewProduct("solace-automatic", types.NewValue(float64(128)), types.Value{}, catalog.Images{}, nil)

	require.Equal(t, []string{
		"/solace-automatic/ /en/solace-automatic/ 301",
		"/zh/solace-automatic-zh/ /zh/solace-automatic/ 301",
		"/solace-automatic-zh/ /zh/solace-automatic/ 301",
		"/fr/solace-automatic-fr/ /fr/solace-automatic/ 301",
		"/solace-automatic-fr/ /fr/solace-automatic/ 301",
	}, redirects([]*catalog.Product{p}, lc))

	require.Empty(t, redirects(nil, lc))
}

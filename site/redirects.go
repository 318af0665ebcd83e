package site

import (
	"fmt"

	"github.com/sunwei/aurum-atelier/catalog"
	"github.com/sunwei/aurum-atelier/langs"
)

// redirects returns the permanent redirect rules, one per line in the
// _redirects format:
//
//	/solace-automatic/ /en/solace-automatic/ 301
//
// Bare product paths go to the default language. For every other
// language L the legacy /L/<slug>-L/ and /<slug>-L/ paths go to
// /L/<slug>/, in that order of blocks.
func redirects(products []*catalog.Product, lc langs.LanguagesConfig) []string {
	rule := func(from, to string) string {
		return fmt.Sprintf("%s %s 301", from, to)
	}

	var rules []string
	def := lc.DefaultLanguage
	for _, p := range products {
		rules = append(rules, rule("/"+p.Slug+"/", def.HomePath()+p.Slug+"/"))
	}

	for _, l := range lc.Others() {
		suffix := "-" + l.Lang
		for _, p := range products {
			rules = append(rules, rule(l.HomePath()+p.Slug+suffix+"/", l.HomePath()+p.Slug+"/"))
		}
		for _, p := range products {
			rules = append(rules, rule("/"+p.Slug+suffix+"/", l.HomePath()+p.Slug+"/"))
		}
	}

	return rules
}

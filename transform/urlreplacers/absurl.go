// Package urlreplacers rewrites root relative URLs in published HTML.
package urlreplacers

import "github.com/sunwei/aurum-atelier/transform"

var ar = newAbsURLReplacer()

// NewAbsURLTransformer replaces relative URLs with absolute ones
// in HTML files, using the baseURL setting.
func NewAbsURLTransformer(path string) transform.Transformer {
	return func(ft transform.FromTo) error {
		return ar.replaceInHTML(path, ft)
	}
}

package render

import (
	"strings"

	"github.com/sunwei/aurum-atelier/types"
)

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// Escape escapes s for use in HTML text and quoted attribute values.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// FormatPrice formats a price as shown on the page: a value with a finite
// numeric reading becomes "$" and the shortest text of that number, e.g.
// 128 and "128.5" give $128 and $128.5. Anything else is shown as is,
// "TBD" gives $TBD.
//
// The result is not escaped.
func FormatPrice(v types.Value) string {
	if f, ok := v.Number(); ok {
		return "$" + types.FormatNumber(f)
	}
	return "$" + v.String()
}

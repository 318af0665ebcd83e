package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sunwei/aurum-atelier/langs"
)

// redirectSeconds is the countdown before the selector redirects.
const redirectSeconds = 3

// LanguageSelector renders the site root: a page in all languages that
// links to every home page and, when served at /, redirects to the home
// page matching the browser language after a short countdown.
func (r *Renderer) LanguageSelector() string {
	all := r.langs.Languages
	each := func(key, sep string) string {
		texts := make([]string, len(all))
		for i, l := range all {
			texts[i] = r.t.T(l.Lang, key)
		}
		return strings.Join(texts, sep)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<!doctype html>\n<html lang=\"%s\">\n<head>", r.langs.DefaultLanguage.HTMLLang())
	r.writeHead(&b, head{
		title:       each("selector.title", " | "),
		description: each("selector.description", " "),
		robots:      "noindex,follow",
		canonical:   r.permalink("/"),
		alternates:  r.alternates((*langs.Language).HomePath),
	})
	b.WriteString("</head>\n<body class=\"lang-page\">\n  <main class=\"lang-panel\">\n")
	fmt.Fprintf(&b, "    <h1>%s</h1>\n", Escape(each("selector.heading", " / ")))
	fmt.Fprintf(&b, "    <p>%s</p>\n", Escape(each("selector.prompt", " ")))

	b.WriteString("    <div class=\"btn-row\">\n")
	for _, l := range all {
		class := "btn"
		if l == r.langs.DefaultLanguage {
			class = "btn primary"
		}
		fmt.Fprintf(&b, "      <a class=\"%s\" href=\"%s\" lang=\"%s\">%s</a>\n", class, l.HomePath(), l.HTMLLang(), Escape(l.Label))
	}
	b.WriteString("    </div>\n")

	countdowns := make([]string, len(all))
	for i, l := range all {
		span := fmt.Sprintf(`<span id="%s">%d</span>`, countdownID(l), redirectSeconds)
		countdowns[i] = strings.Replace(Escape(r.t.T(l.Lang, "selector.redirecting")), "%s", span, 1)
	}
	fmt.Fprintf(&b, "    <p class=\"note\">%s</p>\n", strings.Join(countdowns, " / "))
	fmt.Fprintf(&b, "    <noscript>\n      <p class=\"note\">%s</p>\n    </noscript>\n", Escape(each("selector.noscript", " / ")))
	b.WriteString("  </main>\n\n")

	r.writeSelectorScript(&b)
	b.WriteString("</body>\n</html>")

	return b.String()
}

func countdownID(l *langs.Language) string {
	return "countdown-" + l.Lang
}

// writeSelectorScript writes the redirect script. The browser language is
// matched against the non-default languages in order, the default
// language home is the fallback.
func (r *Renderer) writeSelectorScript(b *strings.Builder) {
	target := strconv.Quote(r.langs.DefaultLanguage.HomePath())
	others := r.langs.Others()
	for i := len(others) - 1; i >= 0; i-- {
		l := others[i]
		target = fmt.Sprintf("lang.indexOf(%s) !== -1 ? %s : %s", strconv.Quote(l.Lang), strconv.Quote(l.HomePath()), target)
	}

	ids := make([]string, len(r.langs.Languages))
	for i, l := range r.langs.Languages {
		ids[i] = fmt.Sprintf("document.getElementById(%s)", strconv.Quote(countdownID(l)))
	}

	fmt.Fprintf(b, `  <script>
    (function () {
      var lang = (navigator.language || %s).toLowerCase();
      var target = %s;
      var seconds = %d;
      var counters = [%s];

      function tick() {
        counters.forEach(function (counter) {
          if (counter) counter.textContent = seconds;
        });
        if (seconds <= 0) {
          window.location.replace(target);
          return;
        }
        seconds -= 1;
        setTimeout(tick, 1000);
      }

      if (window.location.pathname === "/") {
        tick();
      }
    })();
  </script>
`, strconv.Quote(r.langs.DefaultLanguage.Lang), target, redirectSeconds, strings.Join(ids, ", "))
}

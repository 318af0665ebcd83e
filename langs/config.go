// Copyright 2018 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sunwei/aurum-atelier/config"
)

// LanguagesConfig holds the configured languages.
type LanguagesConfig struct {
	// Sorted by weight, then code.
	Languages Languages

	// The language of bare, unprefixed URLs.
	DefaultLanguage *Language
}

// Others returns all languages but the default one, in order.
func (c LanguagesConfig) Others() Languages {
	var others Languages
	for _, l := range c.Languages {
		if l != c.DefaultLanguage {
			others = append(others, l)
		}
	}
	return others
}

// LoadLanguageSettings builds the language list from the site config.
func LoadLanguageSettings(sc config.SiteConfig) (c LanguagesConfig, err error) {
	defaultLang := strings.ToLower(sc.DefaultContentLanguage)
	if defaultLang == "" {
		defaultLang = "en"
	}

	for code, lc := range sc.Languages {
		l, err := NewLanguage(code, lc.HTMLLang, lc.Label, lc.Weight)
		if err != nil {
			return c, err
		}
		c.Languages = append(c.Languages, l)
	}
	sort.Sort(c.Languages)

	c.DefaultLanguage = c.Languages.Get(defaultLang)
	if c.DefaultLanguage == nil {
		return c, fmt.Errorf("site config value %q for defaultContentLanguage does not match any language definition", defaultLang)
	}

	return c, nil
}

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
	"strings"

	"golang.org/x/text/language"
)

// Language manages specific-language configuration.
type Language struct {
	// The language code used in paths and content keys, e.g. zh.
	Lang string

	// Parsed from the configured htmlLang, e.g. zh-CN.
	Tag language.Tag

	// Shown in the language switcher.
	Label string

	Weight int // for sort
}

// For internal use.
func (l *Language) String() string {
	return l.Lang
}

// NewLanguage creates a new language. An empty htmlLang means the
// language code itself.
func NewLanguage(lang, htmlLang, label string, weight int) (*Language, error) {
	lang = strings.ToLower(lang)
	if htmlLang == "" {
		htmlLang = lang
	}
	tag, err := language.Parse(htmlLang)
	if err != nil {
		return nil, fmt.Errorf("invalid htmlLang %q for language %q: %w", htmlLang, lang, err)
	}
	if label == "" {
		label = lang
	}
	return &Language{
		Lang:   lang,
		Tag:    tag,
		Label:  label,
		Weight: weight,
	}, nil
}

// HTMLLang is the BCP 47 tag used in the html lang and hreflang attributes.
func (l *Language) HTMLLang() string {
	return l.Tag.String()
}

// Locale is the Open Graph locale, e.g. en_US. A region is inferred
// when the tag does not carry one.
func (l *Language) Locale() string {
	base, _ := l.Tag.Base()
	region, _ := l.Tag.Region()
	return base.String() + "_" + region.String()
}

// HomePath is the site relative path of the home page in this language.
func (l *Language) HomePath() string {
	return "/" + l.Lang + "/"
}

// Languages is a sortable list of languages.
type Languages []*Language

func (l Languages) Len() int { return len(l) }
func (l Languages) Less(i, j int) bool {
	wi, wj := l[i].Weight, l[j].Weight

	if wi == wj {
		return l[i].Lang < l[j].Lang
	}

	return wj == 0 || wi < wj
}

func (l Languages) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Get returns the language with the given code, or nil.
func (l Languages) Get(lang string) *Language {
	for _, ll := range l {
		if ll.Lang == lang {
			return ll
		}
	}
	return nil
}

// Codes returns the language codes in order.
func (l Languages) Codes() []string {
	codes := make([]string, len(l))
	for i, ll := range l {
		codes[i] = ll.Lang
	}
	return codes
}

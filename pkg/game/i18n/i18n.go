// Package i18n holds the translated user-facing strings.
// Strings are looked up by UPPER_SNAKE keys; a missing key is returned unchanged.
// Translations keep their printf verbs; callers format them.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when a requested language has no catalog
const DefaultLanguage = "en"

const domain = "default"

//go:embed locales/*/default.po
var locales embed.FS

// Catalog is a loaded set of translations for one language.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load returns the catalog for lang, falling back to DefaultLanguage
func Load(lang string) (*Catalog, error) {
	data, err := locales.ReadFile(catalogPath(lang))
	if err != nil {
		lang = DefaultLanguage
		data, err = locales.ReadFile(catalogPath(lang))
		if err != nil {
			return nil, fmt.Errorf("reading %s catalog: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)

	return &Catalog{lang: lang, po: po}, nil
}

// MustLoad is Load for callers that only use embedded languages
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Lang returns the language the catalog was loaded for
func (c *Catalog) Lang() string {
	return c.lang
}

// Get returns the translation for key. Translations with verbs are
// formatted by the caller with fmt.Sprintf.
func (c *Catalog) Get(key string) string {
	// keys are never format strings, so gotext's printf path is bypassed
	get := c.po.Get
	return get(key)
}

// Languages lists the embedded languages in sorted order
func Languages() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return []string{DefaultLanguage}
	}

	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

func catalogPath(lang string) string {
	return path.Join("locales", lang, domain+".po")
}

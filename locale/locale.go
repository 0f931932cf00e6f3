// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides translations of event titles. Translations
// are keyed by their untranslated English text and are stored as
// per-locale YAML files that are registered with golang.org/x/text.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is a set of translations for one or more locales.
type Bundle struct {
	builder *catalog.Builder
	names   []string
	tags    []language.Tag
	matcher language.Matcher
}

var defaultBundle = mustLoad()

func mustLoad() *Bundle {
	b, err := LoadFromFS(embedded)
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns the bundle of translations embedded in this package.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS loads all locales/*.yaml files from fsys. Each file
// must be named for the locale it contains, eg. locales/he.yaml.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)
	b := &Bundle{
		builder: catalog.NewBuilder(),
		names:   []string{"en"},
		tags:    []language.Tag{language.English},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, err
		}
		if err := b.add(p, data); err != nil {
			return nil, err
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(filename string, data []byte) error {
	var lf localeFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	name := strings.TrimSpace(lf.Locale)
	if want := strings.TrimSuffix(path.Base(filename), ".yaml"); name != want {
		return fmt.Errorf("%v: locale %q does not match file name", filename, name)
	}
	tag, err := language.Parse(name)
	if err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	for k, v := range lf.Messages {
		if err := b.builder.SetString(tag, escape(k), escape(v)); err != nil {
			return fmt.Errorf("%v: %q: %w", filename, k, err)
		}
	}
	b.names = append(b.names, name)
	b.tags = append(b.tags, tag)
	return nil
}

// Locales returns the names of the locales in the bundle.
func (b *Bundle) Locales() []string {
	out := append([]string(nil), b.names...)
	sort.Strings(out)
	return out
}

// Gettext returns the translation of key for the specified locale. The
// key itself is returned if the locale is empty, unknown or has no
// translation for the key.
func (b *Bundle) Gettext(key, locale string) string {
	if len(locale) == 0 {
		return key
	}
	_, idx, conf := b.matcher.Match(language.Make(locale))
	if conf == language.No {
		return key
	}
	p := message.NewPrinter(b.tags[idx], message.Catalog(b.builder))
	return p.Sprintf(escape(key))
}

// escape quotes % so that keys and translations are never interpreted
// as format verbs by the message printer.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// Gettext calls Default().Gettext.
func Gettext(key, locale string) string {
	return defaultBundle.Gettext(key, locale)
}

// Locales calls Default().Locales.
func Locales() []string {
	return defaultBundle.Locales()
}

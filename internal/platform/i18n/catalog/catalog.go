// Package catalog loads the embedded message catalogs and registers them with
// x/text so printers resolve message keys to localized format strings.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Bundle holds every locale's messages, grouped by namespace.
type Bundle struct {
	// locale -> namespace -> key -> message
	locales map[string]map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file in catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		locale := path.Base(path.Dir(p))
		namespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
		messages, err := parseMessages(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(locale, namespace, messages); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) add(locale, namespace string, messages map[string]string) error {
	namespaces, ok := b.locales[locale]
	if !ok {
		namespaces = map[string]map[string]string{}
		b.locales[locale] = namespaces
	}
	for key := range messages {
		for other, existing := range namespaces {
			if _, dup := existing[key]; dup {
				return fmt.Errorf("key %q already defined in namespace %q", key, other)
			}
		}
	}
	namespaces[namespace] = messages
	return nil
}

// Register registers all catalog messages with x/text/message. Messages are
// registered for the exact tag and, when different, its base language.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		for _, namespace := range b.locales[locale] {
			for key, value := range namespace {
				for _, registerTag := range tags {
					if err := message.SetString(registerTag, key, value); err != nil {
						return fmt.Errorf("register %s %q: %w", locale, key, err)
					}
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// NamespaceMessages returns a copy of one namespace for a locale.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	for key, value := range b.locales[strings.TrimSpace(locale)][strings.TrimSpace(namespace)] {
		out[key] = value
	}
	return out
}

// NamespaceMessagesWithFallback returns namespace messages and the locale that satisfied the lookup.
func (b *Bundle) NamespaceMessagesWithFallback(locale, namespace string) (string, map[string]string) {
	trimmed := strings.TrimSpace(locale)
	if messages := b.NamespaceMessages(trimmed, namespace); len(messages) > 0 {
		return trimmed, messages
	}
	return BaseLocale, b.NamespaceMessages(BaseLocale, namespace)
}

// Tag resolves a locale string to a registered language tag, falling back to
// the base locale for unknown or malformed input.
func (b *Bundle) Tag(locale string) language.Tag {
	trimmed := strings.TrimSpace(locale)
	if b.HasLocale(trimmed) {
		if tag, err := language.Parse(trimmed); err == nil {
			return tag
		}
	}
	return language.MustParse(BaseLocale)
}

// Printer returns an x/text printer for the locale.
func (b *Bundle) Printer(locale string) *message.Printer {
	return message.NewPrinter(b.Tag(locale))
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

// parseMessages reads the restricted catalog format:
//
//	messages:
//	  "key": "value"
//
// Keys and values are Go-quoted strings; blank lines and # comments are skipped.
func parseMessages(data []byte) (map[string]string, error) {
	out := map[string]string{}
	inMessages := false
	for n, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "messages:" {
			inMessages = true
			continue
		}
		if !inMessages {
			return nil, fmt.Errorf("line %d: unexpected %q before messages", n+1, line)
		}
		key, value, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %q", n+1, key)
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("missing messages")
	}
	return out, nil
}

func parseEntry(line string) (string, string, error) {
	keyToken, err := strconv.QuotedPrefix(line)
	if err != nil {
		return "", "", fmt.Errorf("expected quoted key: %w", err)
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("invalid key %s", keyToken)
	}
	rest := strings.TrimSpace(line[len(keyToken):])
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(rest, ":")))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}

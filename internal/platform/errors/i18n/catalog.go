// Package i18n renders coded errors as localized user-facing messages. The
// templates live in the "errors" namespace of the embedded message catalog
// and are keyed by error code.
package i18n

import (
	stderrors "errors"
	"strings"
	"sync"
	"text/template"

	apperrors "github.com/louisbranch/octicons-sprite/internal/platform/errors"
	i18ncatalog "github.com/louisbranch/octicons-sprite/internal/platform/i18n/catalog"
)

const namespace = "errors"

// Catalog holds the compiled message templates of one locale.
type Catalog struct {
	locale    string
	raw       map[apperrors.Code]string
	templates map[apperrors.Code]*template.Template
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*Catalog{}
)

// GetCatalog returns the catalog for locale, falling back to the base locale
// when the locale has no error messages. Catalogs are built once per locale.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cat, ok := cache[requested]; ok {
		return cat
	}
	resolved, messages := i18ncatalog.Default().NamespaceMessagesWithFallback(requested, namespace)
	cat, ok := cache[resolved]
	if !ok {
		templates := make(map[apperrors.Code]string, len(messages))
		for code, text := range messages {
			templates[apperrors.Code(code)] = text
		}
		cat = NewCatalog(resolved, templates)
		cache[resolved] = cat
	}
	cache[requested] = cat
	return cat
}

// NewCatalog compiles messages for locale. Templates that fail to parse are
// kept as literal text.
func NewCatalog(locale string, messages map[apperrors.Code]string) *Catalog {
	cat := &Catalog{
		locale:    locale,
		raw:       make(map[apperrors.Code]string, len(messages)),
		templates: make(map[apperrors.Code]*template.Template, len(messages)),
	}
	for code, text := range messages {
		cat.raw[code] = text
		tmpl, err := template.New(string(code)).Option("missingkey=zero").Parse(text)
		if err == nil {
			cat.templates[code] = tmpl
		}
	}
	return cat
}

// Locale returns the locale that supplied the messages.
func (c *Catalog) Locale() string {
	return c.locale
}

// Has reports whether the catalog defines a message for code.
func (c *Catalog) Has(code apperrors.Code) bool {
	_, ok := c.raw[code]
	return ok
}

// Format renders the message for code with metadata. Unknown codes render as
// the code itself; broken templates render as their raw text.
func (c *Catalog) Format(code apperrors.Code, metadata map[string]string) string {
	raw, ok := c.raw[code]
	if !ok {
		return string(code)
	}
	tmpl, ok := c.templates[code]
	if !ok {
		return raw
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var builder strings.Builder
	if err := tmpl.Execute(&builder, metadata); err != nil {
		return raw
	}
	return builder.String()
}

// Render formats the first coded error in err's chain. It reports false when
// err carries no code this catalog knows.
func (c *Catalog) Render(err error) (string, bool) {
	var domainErr *apperrors.Error
	if !stderrors.As(err, &domainErr) || !c.Has(domainErr.Code) {
		return "", false
	}
	return c.Format(domainErr.Code, domainErr.Metadata), true
}

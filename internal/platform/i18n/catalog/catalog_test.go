package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got := len(bundle.NamespaceMessages("en-US", "errors")); got == 0 {
		t.Fatalf("expected en-US errors namespace messages")
	}
	if got := len(bundle.NamespaceMessages("en-US", "cli")); got == 0 {
		t.Fatalf("expected en-US cli namespace messages")
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle := Default()
	for _, namespace := range []string{"cli", "errors"} {
		base := bundle.NamespaceMessages(BaseLocale, namespace)
		for _, locale := range bundle.Locales() {
			messages := bundle.NamespaceMessages(locale, namespace)
			for key := range base {
				if _, ok := messages[key]; !ok {
					t.Errorf("%s/%s missing key %q", locale, namespace, key)
				}
			}
		}
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/cli.yaml"), `messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/errors.yaml"), `messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/cli.yaml"), `messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), "base locale") {
		t.Fatalf("expected base locale error, got %v", err)
	}
}

func TestParseMessagesRejectsMalformedEntries(t *testing.T) {
	tests := map[string]string{
		"before messages": "\"a\": \"b\"\n",
		"unquoted key":    "messages:\n  a: \"b\"\n",
		"missing colon":   "messages:\n  \"a\" \"b\"\n",
		"unquoted value":  "messages:\n  \"a\": b\n",
		"duplicate key":   "messages:\n  \"a\": \"b\"\n  \"a\": \"c\"\n",
		"empty":           "# nothing\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseMessages([]byte(input)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestParseMessagesUnquotesEscapes(t *testing.T) {
	messages, err := parseMessages([]byte("# comment\nmessages:\n  \"k\": \"line one\\nline two\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if messages["k"] != "line one\nline two" {
		t.Fatalf("value = %q", messages["k"])
	}
}

func TestNamespaceMessagesWithFallback(t *testing.T) {
	resolved, messages := Default().NamespaceMessagesWithFallback("fr-FR", "errors")
	if resolved != BaseLocale {
		t.Fatalf("resolved locale = %q, want en-US", resolved)
	}
	if len(messages) == 0 {
		t.Fatal("expected fallback errors namespace messages")
	}
}

func TestTagFallsBackToBaseLocale(t *testing.T) {
	if got := Default().Tag("pt-BR").String(); got != "pt-BR" {
		t.Fatalf("Tag(pt-BR) = %q", got)
	}
	if got := Default().Tag("not a locale").String(); got != BaseLocale {
		t.Fatalf("Tag(invalid) = %q", got)
	}
}

func TestRegisteredMessagesResolveThroughPrinter(t *testing.T) {
	p := message.NewPrinter(language.MustParse(BaseLocale))
	if got := p.Sprintf("cli.found", 3); got != "Found 3 24px SVG files" {
		t.Fatalf("cli.found = %q", got)
	}
	if got := Default().Printer("pt-BR").Sprintf("cli.found", 3); got != "Encontrados 3 arquivos SVG de 24px" {
		t.Fatalf("pt-BR cli.found = %q", got)
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

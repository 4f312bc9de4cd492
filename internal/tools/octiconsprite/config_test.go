package octiconsprite

import (
	"errors"
	"flag"
	"io"
	"testing"

	apperrors "github.com/louisbranch/octicons-sprite/internal/platform/errors"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("octicons-sprite", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigPositionals(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"octicons/icons", "out/icons.svg"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.InputDir != "octicons/icons" || cfg.OutputFile != "out/icons.svg" {
		t.Fatalf("positionals = %q %q", cfg.InputDir, cfg.OutputFile)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("Locale = %q, want en-US", cfg.Locale)
	}
	if cfg.DryRun || cfg.CatalogPath != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"-dry-run", "-catalog", "docs/symbols.md", "-locale", "pt-BR", "in", "out.svg"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.DryRun || cfg.CatalogPath != "docs/symbols.md" || cfg.Locale != "pt-BR" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseConfigEnvDefaultsAndOverride(t *testing.T) {
	t.Setenv("OCTICONS_SPRITE_CATALOG_PATH", "env-catalog.md")
	t.Setenv("OCTICONS_SPRITE_DRY_RUN", "true")

	cfg, err := ParseConfig(newFlagSet(), []string{"in", "out.svg"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.CatalogPath != "env-catalog.md" || !cfg.DryRun {
		t.Fatalf("env defaults not applied: %+v", cfg)
	}

	cfg, err = ParseConfig(newFlagSet(), []string{"-catalog", "flag-catalog.md", "-dry-run=false", "in", "out.svg"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.CatalogPath != "flag-catalog.md" || cfg.DryRun {
		t.Fatalf("flags did not override env: %+v", cfg)
	}
}

func TestParseConfigMissingArguments(t *testing.T) {
	tests := map[string][]string{
		"none":          nil,
		"one":           {"in"},
		"three":         {"in", "out.svg", "extra"},
		"trailing flag": {"in", "out.svg", "-dry-run"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig(newFlagSet(), args)
			if !apperrors.IsCode(err, apperrors.CodeInvalidArguments) {
				t.Fatalf("err = %v, want %s", err, apperrors.CodeInvalidArguments)
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := ParseConfig(newFlagSet(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestParseConfigRequiresFlagSet(t *testing.T) {
	if _, err := ParseConfig(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

package octiconsprite

import (
	"flag"
	"fmt"
	"strconv"

	platformcmd "github.com/louisbranch/octicons-sprite/internal/platform/cmd"
	apperrors "github.com/louisbranch/octicons-sprite/internal/platform/errors"
)

// Usage is printed for -h and for a wrong positional argument count.
const Usage = `Convert Octicons SVG files to a Frappe icons.svg sprite.
Only 24px icons (files ending in -24.svg, with and without fill variants) are converted.

Usage:
	octicons-sprite [flags] <input_directory> <output_file>

Flags must come before the paths.

Example:
	octicons-sprite /path/to/octicons/icons ./frappe/public/icons/octicons/icons.svg

Flags:
`

// Config holds configuration for the sprite generator. Flags override the
// OCTICONS_SPRITE_* environment defaults.
type Config struct {
	InputDir    string
	OutputFile  string
	CatalogPath string `env:"CATALOG_PATH"`
	Locale      string `env:"LOCALE" envDefault:"en-US"`
	DryRun      bool   `env:"DRY_RUN"`
}

// ParseConfig parses env defaults, flags, and exactly two positional
// arguments.
// On missing arguments the partially parsed Config is returned with an
// INVALID_ARGUMENTS error so callers can still localize the message.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), Usage)
		fs.PrintDefaults()
	}

	var cfg Config
	bind := func(c *Config) {
		fs.StringVar(&c.CatalogPath, "catalog", c.CatalogPath, "also write a markdown catalog of the generated symbols to this path")
		fs.BoolVar(&c.DryRun, "dry-run", c.DryRun, "convert and report without writing any file")
		fs.StringVar(&c.Locale, "locale", c.Locale, "locale for progress and error messages")
	}
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args, bind); err != nil {
		return cfg, err
	}

	// Flags must precede the paths; flag parsing stops at the first
	// positional, so a trailing flag shows up here as a third argument.
	positional := fs.Args()
	if len(positional) != 2 {
		return cfg, apperrors.WithMetadata(
			apperrors.CodeInvalidArguments,
			"input directory and output file are required",
			map[string]string{"Count": strconv.Itoa(len(positional))},
		)
	}
	cfg.InputDir = positional[0]
	cfg.OutputFile = positional[1]
	return cfg, nil
}

// Package main converts Octicons SVG files into a Frappe icon sprite.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	platformcmd "github.com/louisbranch/octicons-sprite/internal/platform/cmd"
	"github.com/louisbranch/octicons-sprite/internal/platform/config"
	apperrors "github.com/louisbranch/octicons-sprite/internal/platform/errors"
	"github.com/louisbranch/octicons-sprite/internal/tools/octiconsprite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		// Usage was already printed; -h counts as a missing-argument call.
		stop()
		os.Exit(1)
	}
	if err != nil {
		config.ExitfTo(os.Stdout, "%s", err)
	}
}

// renderedError carries the localized message for an error.
type renderedError struct {
	text  string
	cause error
}

func (e *renderedError) Error() string { return e.text }

func (e *renderedError) Unwrap() error { return e.cause }

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("octicons-sprite", flag.ContinueOnError)
	fs.SetOutput(stdout)

	cfg, err := octiconsprite.ParseConfig(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeInvalidArguments) {
			fs.Usage()
		}
		return describe(err, cfg.Locale)
	}

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceOcticonsSprite, func(ctx context.Context) error {
		_, err := octiconsprite.Run(ctx, cfg, afero.NewOsFs(), stdout)
		return err
	})
	if err != nil {
		return describe(err, cfg.Locale)
	}
	return nil
}

func describe(err error, locale string) error {
	return &renderedError{text: octiconsprite.Describe(err, locale), cause: err}
}

// Package octiconsprite converts a directory of Octicons SVG files into a
// single Frappe symbol sprite.
package octiconsprite

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/octicons-sprite/internal/platform/errors"
	errorsi18n "github.com/louisbranch/octicons-sprite/internal/platform/errors/i18n"
	"github.com/louisbranch/octicons-sprite/internal/platform/i18n/catalog"
	"github.com/louisbranch/octicons-sprite/internal/platform/icons"
	platformotel "github.com/louisbranch/octicons-sprite/internal/platform/otel"
	"github.com/louisbranch/octicons-sprite/internal/platform/svg"
)

const tracerName = "github.com/louisbranch/octicons-sprite/internal/tools/octiconsprite"

// Icon is one converted source file.
type Icon struct {
	File     string
	Name     string
	Fill     bool
	SymbolID string
	ViewBox  string
	Inner    string
}

// Skipped records a source file left out of the sprite.
type Skipped struct {
	File string
	Err  error
}

// Result summarizes a run.
type Result struct {
	Found     int
	Processed int
	Skipped   []Skipped
	Icons     []Icon
	Output    string
	Bytes     int
}

// Symbols returns catalog entries for the converted icons in sprite order.
func (r Result) Symbols() []icons.Symbol {
	symbols := make([]icons.Symbol, 0, len(r.Icons))
	for _, icon := range r.Icons {
		symbols = append(symbols, icons.Symbol{
			ID:     icon.SymbolID,
			Name:   icon.Name,
			Fill:   icon.Fill,
			Source: icon.File,
		})
	}
	return symbols
}

// Run converts every 24px icon in cfg.InputDir and writes the sprite to
// cfg.OutputFile. Files that fail to parse are reported on out and skipped.
// A nil fsys uses the OS filesystem.
func Run(ctx context.Context, cfg Config, fsys afero.Fs, out io.Writer) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if out == nil {
		out = io.Discard
	}
	if strings.TrimSpace(cfg.InputDir) == "" || strings.TrimSpace(cfg.OutputFile) == "" {
		return Result{}, apperrors.WithMetadata(
			apperrors.CodeInvalidArguments,
			"input directory and output file are required",
			map[string]string{"Count": "0"},
		)
	}

	ctx, span := platformotel.Tracer(tracerName).Start(ctx, "octiconsprite.Run", trace.WithAttributes(
		attribute.String("input_dir", cfg.InputDir),
		attribute.String("output_file", cfg.OutputFile),
		attribute.Bool("dry_run", cfg.DryRun),
	))
	defer span.End()

	result, err := run(ctx, cfg, fsys, newReporter(out, cfg.Locale))
	span.SetAttributes(
		attribute.Int("icons.found", result.Found),
		attribute.Int("icons.processed", result.Processed),
		attribute.Int("icons.skipped", len(result.Skipped)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	return result, err
}

func run(ctx context.Context, cfg Config, fsys afero.Fs, report *reporter) (Result, error) {
	files, err := ListIcons(fsys, cfg.InputDir)
	if err != nil {
		return Result{}, err
	}
	result := Result{Found: len(files), Output: cfg.OutputFile}
	report.say("cli.found", len(files))

	sprite := icons.NewSprite()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		icon, err := convertIcon(ctx, fsys, cfg.InputDir, file)
		if apperrors.IsFatal(err) {
			return result, err
		}
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{File: file, Err: err})
			report.line(Describe(err, cfg.Locale))
			continue
		}
		sprite.Add(icon.SymbolID, icon.ViewBox, icon.Inner)
		result.Icons = append(result.Icons, icon)
		report.say("cli.processed", file, icon.SymbolID)
	}
	sprite.Close()
	result.Processed = sprite.Len()

	if result.Processed == 0 {
		return result, apperrors.WithMetadata(
			apperrors.CodeNoIconsConverted,
			fmt.Sprintf("none of %d icons in %s converted", result.Found, cfg.InputDir),
			map[string]string{"Path": cfg.InputDir, "Found": fmt.Sprint(result.Found)},
		)
	}

	data := sprite.Bytes()
	result.Bytes = len(data)
	if cfg.DryRun {
		report.say("cli.dry_run", result.Processed, cfg.OutputFile)
		return result, nil
	}

	if err := WriteSprite(fsys, cfg.OutputFile, data); err != nil {
		return result, writeFailure(cfg.OutputFile, err)
	}
	report.say("cli.converted", result.Processed, cfg.OutputFile)
	report.say("cli.written", humanize.Bytes(uint64(len(data))), cfg.OutputFile)

	if cfg.CatalogPath != "" {
		markdown := icons.CatalogMarkdown(result.Symbols())
		if err := WriteSprite(fsys, cfg.CatalogPath, []byte(markdown)); err != nil {
			return result, writeFailure(cfg.CatalogPath, err)
		}
		report.say("cli.catalog_written", cfg.CatalogPath)
	}
	return result, nil
}

// convertIcon reads and parses one source file. Errors carry the
// ICON_PARSE_FAILURE code and wrap the underlying cause.
func convertIcon(ctx context.Context, fsys afero.Fs, dir, file string) (Icon, error) {
	_, span := platformotel.Tracer(tracerName).Start(ctx, "octiconsprite.convert", trace.WithAttributes(
		attribute.String("file", file),
	))
	defer span.End()

	path := filepath.Join(dir, file)
	doc, err := svg.ExtractFile(fsys, path)
	if err != nil {
		return Icon{}, parseFailure(span, path, err)
	}

	icon := Icon{
		File:     file,
		Name:     icons.IconName(file),
		Fill:     icons.IsFillVariant(file),
		SymbolID: icons.FileSymbolID(file),
		ViewBox:  doc.ViewBox,
		Inner:    doc.Inner,
	}
	span.SetAttributes(attribute.String("symbol_id", icon.SymbolID))
	return icon, nil
}

func parseFailure(span trace.Span, path string, cause error) error {
	span.RecordError(cause)
	span.SetStatus(otelcodes.Error, cause.Error())
	return apperrors.WrapWithMetadata(
		apperrors.CodeIconParseFailure,
		"parse "+path,
		map[string]string{"Path": path, "Cause": cause.Error()},
		cause,
	)
}

func writeFailure(path string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeOutputWriteFailed,
		"write "+path,
		map[string]string{"Path": path, "Cause": cause.Error()},
		cause,
	)
}

// Describe renders err as the user-facing message for locale. Coded errors
// use the catalog template; anything else is prefixed with "Error: ".
func Describe(err error, locale string) string {
	if err == nil {
		return ""
	}
	if text, ok := errorsi18n.GetCatalog(locale).Render(err); ok {
		return text
	}
	return "Error: " + err.Error()
}

// reporter prints catalog messages, one per line.
type reporter struct {
	out     io.Writer
	printer *message.Printer
}

func newReporter(out io.Writer, locale string) *reporter {
	return &reporter{out: out, printer: catalog.Default().Printer(locale)}
}

func (r *reporter) line(text string) {
	fmt.Fprintln(r.out, text)
}

func (r *reporter) say(key string, args ...any) {
	r.printer.Fprintf(r.out, key, args...)
	fmt.Fprintln(r.out)
}

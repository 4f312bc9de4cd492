// Package cmd holds the startup sequence shared by command entrypoints:
// environment defaults, flag parsing, and a telemetry-wrapped run.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/octicons-sprite/internal/platform/config"
	"github.com/louisbranch/octicons-sprite/internal/platform/otel"
)

// ServiceOcticonsSprite identifies the sprite generator in telemetry.
const ServiceOcticonsSprite = "octicons-sprite"

// shutdownTimeout bounds the span flush after a run.
const shutdownTimeout = 5 * time.Second

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. A nil args slice parses nothing.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	return fs.Parse(append([]string{}, args...))
}

// ParseConfigFromArgs loads env defaults into cfg, lets bind register flags
// whose defaults are the env values, then parses args.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*T)) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(cfg)
	}
	return ParseArgs(fs, args)
}

// RunWithTelemetry installs tracing for service, calls run, and flushes spans
// before returning run's error. Flush failures are logged, not returned.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}

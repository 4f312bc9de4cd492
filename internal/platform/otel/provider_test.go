package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/octicons-sprite/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("OCTICONS_SPRITE_OTEL_ENDPOINT", "")
	t.Setenv("OCTICONS_SPRITE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("OCTICONS_SPRITE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("OCTICONS_SPRITE_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	t.Setenv("OCTICONS_SPRITE_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("OCTICONS_SPRITE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestTracerStartsSpans(t *testing.T) {
	ctx, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	if ctx == nil {
		t.Fatal("expected span context")
	}
}

func TestConfigActive(t *testing.T) {
	tests := []struct {
		name string
		cfg  otel.Config
		want bool
	}{
		{name: "empty", cfg: otel.Config{}, want: false},
		{name: "endpoint", cfg: otel.Config{Endpoint: "http://localhost:4318"}, want: true},
		{name: "blank endpoint", cfg: otel.Config{Endpoint: "  "}, want: false},
		{name: "disabled", cfg: otel.Config{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
		{name: "enabled", cfg: otel.Config{Endpoint: "http://localhost:4318", Enabled: "true"}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Active(); got != tc.want {
				t.Fatalf("Active() = %v, want %v", got, tc.want)
			}
		})
	}
}

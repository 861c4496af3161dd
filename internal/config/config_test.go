package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mknier/gravis/internal/trajectory"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxAnimFrames != DefaultMaxAnimFrames {
		t.Errorf("max frames = %d, want %d", cfg.MaxAnimFrames, DefaultMaxAnimFrames)
	}
	if cfg.Sink.Mode != "local" {
		t.Errorf("sink mode = %q, want local", cfg.Sink.Mode)
	}
	if cfg.Sink.Port != DefaultSinkPort {
		t.Errorf("sink port = %d, want %d", cfg.Sink.Port, DefaultSinkPort)
	}

	// Rs has no default and must fail validation until set.
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for unset rs")
	}
	cfg.Rs = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestConversionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    trajectory.Conversion
		wantErr bool
	}{
		{"", trajectory.SphericalToCartesian, false},
		{"spherical", trajectory.SphericalToCartesian, false},
		{"identity", trajectory.Identity, false},
		{"polar", 0, true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Conversion = tt.in
		got, err := cfg.ConversionMode()
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rs = 1

	cfg.Sink.Mode = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown sink mode")
	}

	cfg = DefaultConfig()
	cfg.Rs = 1
	cfg.AttractorRadius = -2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative attractor radius")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gravis.yaml")

	cfg := DefaultConfig()
	cfg.Rs = 0.00887
	cfg.AnimationStepSize = 1e-6
	cfg.Sink.Mode = "remote"
	cfg.Sink.Host = "172.29.0.1"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Rs != cfg.Rs || got.Sink.Host != cfg.Sink.Host || got.Sink.Mode != "remote" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.AnimationStepSize != 1e-6 {
		t.Errorf("animation step = %g, want 1e-6", got.AnimationStepSize)
	}
}

func TestLoadPartialOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("rs: 2.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rs != 2.5 {
		t.Errorf("rs = %g, want 2.5", cfg.Rs)
	}
	if cfg.MaxAnimFrames != DefaultMaxAnimFrames {
		t.Errorf("max frames lost default: %d", cfg.MaxAnimFrames)
	}
	if cfg.Sink.Mode != "local" {
		t.Errorf("sink mode lost default: %q", cfg.Sink.Mode)
	}
}

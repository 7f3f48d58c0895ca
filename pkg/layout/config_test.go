package layout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gridlayout/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ZeroCellWidth", func(c *Config) { c.CellWidth = 0 }},
		{"NegativeMargin", func(c *Config) { c.Margin = -1 }},
		{"ZeroTierHeight", func(c *Config) { c.NodeSizes.Low.Height = 0 }},
		{"MaxWidthBelowTier", func(c *Config) { c.MaxNodeWidth = 100 }},
		{"NoCharsPerLine", func(c *Config) { c.NoteCharsPerLine = 0 }},
		{"FanSpreadAboveOne", func(c *Config) { c.FanSpread = 1.5 }},
		{"ElbowRatioZero", func(c *Config) { c.ElbowRatio = 0 }},
		{"CoverageZero", func(c *Config) { c.SnakeMinCoverage = 0 }},
		{"NoSnakeColumns", func(c *Config) { c.SnakeMaxCols = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	doc := `
cell_width = 300.0
snake_max_cols = 5

[node_sizes.high]
width = 190.0
`
	cfg, err := DecodeConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}

	want := DefaultConfig()
	want.CellWidth = 300
	want.SnakeMaxCols = 5
	want.NodeSizes.High.Width = 190
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Malformed", "cell_width = = 3"},
		{"UnknownKey", "cell_wdth = 300.0"},
		{"Invalid", "fan_spread = 2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tt.doc))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("DecodeConfig() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestEncodeConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Margin = 12
	cfg.NoteIconChars = 2

	var buf bytes.Buffer
	if err := EncodeConfig(&buf, cfg); err != nil {
		t.Fatalf("EncodeConfig: %v", err)
	}
	if !strings.Contains(buf.String(), "[node_sizes.medium]") {
		t.Errorf("encoded config missing node_sizes table:\n%s", buf.String())
	}

	got, err := DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte("margin = 8.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Margin != 8 {
		t.Errorf("Margin = %v, want 8", cfg.Margin)
	}

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(missing) = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFingerprint(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	if !bytes.Equal(a.Fingerprint(), b.Fingerprint()) {
		t.Error("equal configs should have equal fingerprints")
	}
	b.CellHeight++
	if bytes.Equal(a.Fingerprint(), b.Fingerprint()) {
		t.Error("different configs should have different fingerprints")
	}
}

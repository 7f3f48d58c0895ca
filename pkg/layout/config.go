package layout

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
)

// Size is a box extent in canvas units.
type Size struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// NodeSizes holds the base box size of each importance tier.
type NodeSizes struct {
	High   Size `toml:"high" json:"high"`
	Medium Size `toml:"medium" json:"medium"`
	Low    Size `toml:"low" json:"low"`
}

// For returns the base size of the given tier. Unknown tiers use Medium.
func (s NodeSizes) For(imp diagram.Importance) Size {
	switch imp {
	case diagram.ImportanceHigh:
		return s.High
	case diagram.ImportanceLow:
		return s.Low
	default:
		return s.Medium
	}
}

// Config is the geometry used by [Build]. It is a plain value: copy it,
// change fields and pass it with [WithConfig]. Build never modifies it.
type Config struct {
	// Grid pitch and outer padding.
	CellWidth    float64 `toml:"cell_width" json:"cell_width"`
	CellHeight   float64 `toml:"cell_height" json:"cell_height"`
	Margin       float64 `toml:"margin" json:"margin"`
	HeaderOffset float64 `toml:"header_offset" json:"header_offset"` // reserved above row 0 when a title exists
	TitleOffset  float64 `toml:"title_offset" json:"title_offset"`   // title baseline below the top margin

	// Node boxes. Width grows with the label estimate up to MaxNodeWidth.
	NodeSizes    NodeSizes `toml:"node_sizes" json:"node_sizes"`
	CharWidth    float64   `toml:"char_width" json:"char_width"`
	LabelPadding float64   `toml:"label_padding" json:"label_padding"`
	MaxNodeWidth float64   `toml:"max_node_width" json:"max_node_width"`

	// Notes.
	NoteWidth        float64 `toml:"note_width" json:"note_width"`
	NoteHeight       float64 `toml:"note_height" json:"note_height"` // minimum height
	NoteOffset       float64 `toml:"note_offset" json:"note_offset"`
	NoteStackStep    float64 `toml:"note_stack_step" json:"note_stack_step"`
	NoteCharsPerLine int     `toml:"note_chars_per_line" json:"note_chars_per_line"`
	NoteLineHeight   float64 `toml:"note_line_height" json:"note_line_height"`
	NoteIconChars    int     `toml:"note_icon_chars" json:"note_icon_chars"`

	// Groups.
	GroupPadding     float64 `toml:"group_padding" json:"group_padding"`
	GroupLabelHeight float64 `toml:"group_label_height" json:"group_label_height"`

	// Routing. FanSpread is the share of a box side used to spread endpoints;
	// ElbowRatio places the turn of top-to-bottom vertical elbows.
	FanSpread  float64 `toml:"fan_spread" json:"fan_spread"`
	ElbowRatio float64 `toml:"elbow_ratio" json:"elbow_ratio"`

	// Snake wrapping of left-to-right chains.
	SnakeMinCoverage float64 `toml:"snake_min_coverage" json:"snake_min_coverage"`
	SnakeShortChain  int     `toml:"snake_short_chain" json:"snake_short_chain"`
	SnakeShortCols   int     `toml:"snake_short_cols" json:"snake_short_cols"`
	SnakeMaxCols     int     `toml:"snake_max_cols" json:"snake_max_cols"`
}

// DefaultConfig returns the built-in geometry.
func DefaultConfig() Config {
	return Config{
		CellWidth:    220,
		CellHeight:   140,
		Margin:       40,
		HeaderOffset: 60,
		TitleOffset:  24,

		NodeSizes: NodeSizes{
			High:   Size{Width: 180, Height: 80},
			Medium: Size{Width: 150, Height: 64},
			Low:    Size{Width: 120, Height: 52},
		},
		CharWidth:    8,
		LabelPadding: 32,
		MaxNodeWidth: 200,

		NoteWidth:        180,
		NoteHeight:       60,
		NoteOffset:       20,
		NoteStackStep:    80,
		NoteCharsPerLine: 24,
		NoteLineHeight:   16,
		NoteIconChars:    3,

		GroupPadding:     20,
		GroupLabelHeight: 24,

		FanSpread:  0.6,
		ElbowRatio: 0.25,

		SnakeMinCoverage: 0.8,
		SnakeShortChain:  6,
		SnakeShortCols:   3,
		SnakeMaxCols:     4,
	}
}

// Validate checks that the geometry can produce a layout.
// The returned error carries [errors.ErrCodeInvalidConfig].
func (c Config) Validate() error {
	switch {
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return invalidConfig("cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight)
	case c.Margin < 0 || c.HeaderOffset < 0 || c.TitleOffset < 0:
		return invalidConfig("margin and offsets must not be negative")
	case !c.NodeSizes.positive():
		return invalidConfig("node sizes must be positive")
	case c.MaxNodeWidth < c.NodeSizes.smallestWidth():
		return invalidConfig("max_node_width %v is below the smallest tier width %v", c.MaxNodeWidth, c.NodeSizes.smallestWidth())
	case c.CharWidth < 0 || c.LabelPadding < 0:
		return invalidConfig("char_width and label_padding must not be negative")
	case c.NoteWidth <= 0 || c.NoteHeight <= 0 || c.NoteLineHeight <= 0:
		return invalidConfig("note geometry must be positive")
	case c.NoteCharsPerLine < 1:
		return invalidConfig("note_chars_per_line must be at least 1, got %d", c.NoteCharsPerLine)
	case c.NoteIconChars < 0 || c.NoteOffset < 0 || c.NoteStackStep < 0:
		return invalidConfig("note offsets must not be negative")
	case c.GroupPadding < 0 || c.GroupLabelHeight < 0:
		return invalidConfig("group padding must not be negative")
	case c.FanSpread < 0 || c.FanSpread > 1:
		return invalidConfig("fan_spread must be in [0,1], got %v", c.FanSpread)
	case c.ElbowRatio <= 0 || c.ElbowRatio >= 1:
		return invalidConfig("elbow_ratio must be in (0,1), got %v", c.ElbowRatio)
	case c.SnakeMinCoverage <= 0 || c.SnakeMinCoverage > 1:
		return invalidConfig("snake_min_coverage must be in (0,1], got %v", c.SnakeMinCoverage)
	case c.SnakeShortCols < 1 || c.SnakeMaxCols < 1:
		return invalidConfig("snake column counts must be at least 1")
	case c.SnakeShortChain < 0:
		return invalidConfig("snake_short_chain must not be negative")
	}
	return nil
}

func (s NodeSizes) positive() bool {
	for _, sz := range []Size{s.High, s.Medium, s.Low} {
		if sz.Width <= 0 || sz.Height <= 0 {
			return false
		}
	}
	return true
}

func (s NodeSizes) smallestWidth() float64 {
	return min(s.High.Width, s.Medium.Width, s.Low.Width)
}

func invalidConfig(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

// =============================================================================
// TOML
// =============================================================================

// DecodeConfig reads a TOML document on top of [DefaultConfig] and validates
// the result. Keys missing from the document keep their default values;
// unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse layout config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, invalidConfig("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file. See [DecodeConfig].
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// EncodeConfig writes cfg as a TOML document.
func EncodeConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Fingerprint returns the TOML encoding of cfg. Equal configs produce equal
// fingerprints, which makes it usable as part of a cache key.
func (c Config) Fingerprint() []byte {
	var buf bytes.Buffer
	_ = toml.NewEncoder(&buf).Encode(c)
	return buf.Bytes()
}

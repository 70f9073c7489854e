// Package config loads editor settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/quill/attr"
	"github.com/iw2rmb/quill/ghost"
	"github.com/iw2rmb/quill/lists"
	"github.com/iw2rmb/quill/mdstyle"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither TOML nor
	// YAML by extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("invalid config")
)

type Config struct {
	// Theme maps color tags (base, dim, accent, keyword, ...) to terminal
	// colors: "#rrggbb" or an ANSI index.
	Theme map[string]string `toml:"theme" yaml:"theme"`

	Style  Style  `toml:"style" yaml:"style"`
	Indent Indent `toml:"indent" yaml:"indent"`
	Ghost  Ghost  `toml:"ghost" yaml:"ghost"`
	Editor Editor `toml:"editor" yaml:"editor"`
	Log    Log    `toml:"log" yaml:"log"`
}

type Style struct {
	BaseSize float64   `toml:"base_size" yaml:"base_size"`
	Zoom     float64   `toml:"zoom" yaml:"zoom"`
	Headings []Heading `toml:"headings" yaml:"headings"`
}

// Heading overrides one heading level, in order from level 1.
type Heading struct {
	Scale float64 `toml:"scale" yaml:"scale"`
	Bold  bool    `toml:"bold" yaml:"bold"`
}

type Indent struct {
	UseTabs bool `toml:"use_tabs" yaml:"use_tabs"`
	Width   int  `toml:"width" yaml:"width"`
}

type Ghost struct {
	Enabled   bool `toml:"enabled" yaml:"enabled"`
	MinPrefix int  `toml:"min_prefix" yaml:"min_prefix"`
}

type Editor struct {
	TabWidth     int  `toml:"tab_width" yaml:"tab_width"`
	HistoryLimit int  `toml:"history_limit" yaml:"history_limit"`
	Mouse        bool `toml:"mouse" yaml:"mouse"`

	// PinScroll ignores the mouse wheel so the view only follows the caret.
	PinScroll bool `toml:"pin_scroll" yaml:"pin_scroll"`
}

type Log struct {
	Level string `toml:"level" yaml:"level"`
	Path  string `toml:"path" yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: map[string]string{
			string(attr.ColorBase):         "252",
			string(attr.ColorDim):          "243",
			string(attr.ColorAccent):       "#7aa2f7",
			string(attr.ColorLink):         "#7dcfff",
			string(attr.ColorCode):         "#e0af68",
			string(attr.ColorCodeBg):       "236",
			string(attr.ColorQuote):        "250",
			string(attr.ColorMarker):       "#bb9af7",
			string(attr.ColorKeyword):      "#bb9af7",
			string(attr.ColorType):         "#2ac3de",
			string(attr.ColorString):       "#9ece6a",
			string(attr.ColorNumber):       "#ff9e64",
			string(attr.ColorComment):      "244",
			string(attr.ColorFunction):     "#7aa2f7",
			string(attr.ColorTag):          "#f7768e",
			string(attr.ColorAttribute):    "#e0af68",
			string(attr.ColorProperty):     "#73daca",
			string(attr.ColorSearchMatch):  "58",
			string(attr.ColorSearchActive): "136",
		},
		Style:  Style{BaseSize: 14, Zoom: 1},
		Indent: Indent{Width: 4},
		Ghost:  Ghost{Enabled: true, MinPrefix: 2},
		Editor: Editor{TabWidth: 4, HistoryLimit: 1000, Mouse: true},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		unmarshal = toml.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return cfg, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	theme := cfg.Theme
	cfg.Theme = nil
	if err := unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	// File entries override individual tags; the rest keep their defaults.
	for k, v := range cfg.Theme {
		theme[k] = v
	}
	cfg.Theme = theme

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Style.BaseSize <= 0:
		return fmt.Errorf("%w: style.base_size must be positive", ErrInvalid)
	case c.Style.Zoom <= 0:
		return fmt.Errorf("%w: style.zoom must be positive", ErrInvalid)
	case len(c.Style.Headings) > 6:
		return fmt.Errorf("%w: style.headings has %d levels, at most 6", ErrInvalid, len(c.Style.Headings))
	case c.Indent.Width < 1 || c.Indent.Width > 16:
		return fmt.Errorf("%w: indent.width must be within 1..16", ErrInvalid)
	case c.Ghost.MinPrefix < 1:
		return fmt.Errorf("%w: ghost.min_prefix must be at least 1", ErrInvalid)
	case c.Editor.TabWidth < 1:
		return fmt.Errorf("%w: editor.tab_width must be positive", ErrInvalid)
	case c.Editor.HistoryLimit < 0:
		return fmt.Errorf("%w: editor.history_limit must not be negative", ErrInvalid)
	}
	for tag := range c.Theme {
		if !knownColor(attr.Color(tag)) {
			return fmt.Errorf("%w: unknown theme color %q", ErrInvalid, tag)
		}
	}
	return nil
}

func knownColor(c attr.Color) bool {
	_, ok := Default().Theme[string(c)]
	return ok
}

// StyleOptions converts the style section for the styler.
func (c Config) StyleOptions() mdstyle.Options {
	opt := mdstyle.Options{BaseSize: c.Style.BaseSize}
	for i, h := range c.Style.Headings {
		w := attr.WeightRegular
		if h.Bold {
			w = attr.WeightBold
		}
		opt.Headings[i] = mdstyle.Heading{Scale: h.Scale, Weight: w}
	}
	return opt
}

// ListOptions converts the indent section for the list engine.
func (c Config) ListOptions() lists.Options {
	return lists.Options{UseTabs: c.Indent.UseTabs, IndentWidth: c.Indent.Width}
}

// GhostOptions converts the ghost section. ok is false when suggestions are
// disabled.
func (c Config) GhostOptions() (opt ghost.Options, ok bool) {
	return ghost.Options{MinPrefix: c.Ghost.MinPrefix}, c.Ghost.Enabled
}

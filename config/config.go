// Package config loads printer settings from TOML files and the
// environment.
//
// Example file:
//
//	max_depth = 6
//	max_object_length = 50
//	skip_adjacent = true
//	filter = 'Exported && Kind != "func"'
//	color = "auto"
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/signadot/yamprint"
	"github.com/signadot/yamprint/encode"
	"github.com/signadot/yamprint/filter"
	"github.com/signadot/yamprint/gomap"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func (m *ColorMode) UnmarshalText(d []byte) error {
	switch v := ColorMode(d); v {
	case ColorAuto, ColorAlways, ColorNever:
		*m = v
		return nil
	case "":
		*m = ColorAuto
		return nil
	}
	return fmt.Errorf("bad color mode %q: want auto, always or never", d)
}

type Config struct {
	MaxDepth        int       `toml:"max_depth"`
	MaxObjectLength int       `toml:"max_object_length"`
	ResolveGetters  bool      `toml:"resolve_getters"`
	SkipAdjacent    bool      `toml:"skip_adjacent"`
	Methods         bool      `toml:"methods"`
	NumericBinary   bool      `toml:"numeric_binary"`
	Filter          string    `toml:"filter"`
	Color           ColorMode `toml:"color"`
	Indent          string    `toml:"indent"`
	ArrayPrefix     string    `toml:"array_prefix"`
}

func Default() *Config {
	return &Config{
		MaxDepth:        gomap.DefaultMaxDepth,
		MaxObjectLength: gomap.DefaultMaxObjectLength,
		ResolveGetters:  true,
		Color:           ColorAuto,
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(d []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(d), c)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return c, nil
}

const (
	EnvMaxDepth        = "YAMPRINT_MAX_DEPTH"
	EnvMaxObjectLength = "YAMPRINT_MAX_OBJECT_LENGTH"
	EnvSkipAdjacent    = "YAMPRINT_SKIP_ADJACENT"
)

// FromEnv overlays the YAMPRINT_* environment variables onto c.
func FromEnv(c *Config) error {
	if v, ok := os.LookupEnv(EnvMaxDepth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDepth, err)
		}
		c.MaxDepth = n
	}
	if v, ok := os.LookupEnv(EnvMaxObjectLength); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxObjectLength, err)
		}
		c.MaxObjectLength = n
	}
	if v, ok := os.LookupEnv(EnvSkipAdjacent); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSkipAdjacent, err)
		}
		c.SkipAdjacent = b
	}
	return nil
}

// Options returns the printer options for c. With color mode auto, colors
// are enabled when w is a terminal.
func (c *Config) Options(w io.Writer) ([]yamprint.Option, error) {
	res := []yamprint.Option{
		yamprint.MaxDepth(c.MaxDepth),
		yamprint.MaxObjectLength(c.MaxObjectLength),
		yamprint.ResolveGetters(c.ResolveGetters),
		yamprint.SkipAdjacent(c.SkipAdjacent),
		yamprint.Methods(c.Methods),
		yamprint.NumericSlicesAsBinary(c.NumericBinary),
	}
	if c.Filter != "" {
		f, err := filter.Compile(c.Filter)
		if err != nil {
			return nil, err
		}
		res = append(res, yamprint.PropertyFilter(f))
	}
	if c.Indent != "" || c.ArrayPrefix != "" {
		f := encode.DefaultFormatter()
		if c.Indent != "" {
			f.Indent = c.Indent
		}
		if c.ArrayPrefix != "" {
			f.ArrayPrefix = c.ArrayPrefix
		}
		res = append(res, yamprint.WithFormatter(f))
	}
	res = append(res, yamprint.WithColor(c.UseColor(w)))
	return res, nil
}

// UseColor reports whether output to w should be colored.
func (c *Config) UseColor(w io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

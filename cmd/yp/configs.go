package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yamprint"
	"github.com/signadot/yamprint/config"
	"github.com/signadot/yamprint/format"
)

type MainConfig struct {
	Depth    int    `cli:"name=d aliases=depth desc='max nesting depth'"`
	Len      int    `cli:"name=n aliases=len desc='max entries per object or array'"`
	Adjacent bool   `cli:"name=adjacent desc='mark repeated non-circular values as references'"`
	Methods  bool   `cli:"name=methods desc='show zero-argument methods as properties'"`
	Filter   string `cli:"name=filter desc='expr property filter, e.g. Exported && Kind != \"func\"'"`
	Color    bool   `cli:"name=color desc='print with color'"`
	Verbose  bool   `cli:"name=v desc='debug logging on stderr'"`

	ConfigPath string
	InFormat   *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) configOpt(_ *cli.Context, v string) (any, error) {
	if _, err := os.Stat(v); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.ConfigPath = v
	return v, nil
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// settings merges, lowest first, the defaults, the config file, the
// environment and the command line.
func (cfg *MainConfig) settings() (*config.Config, error) {
	c := config.Default()
	if cfg.ConfigPath != "" {
		var err error
		c, err = config.Load(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
	}
	if err := config.FromEnv(c); err != nil {
		return nil, err
	}
	if cfg.Depth > 0 {
		c.MaxDepth = cfg.Depth
	}
	if cfg.Len > 0 {
		c.MaxObjectLength = cfg.Len
	}
	if cfg.Adjacent {
		c.SkipAdjacent = true
	}
	if cfg.Methods {
		c.Methods = true
	}
	if cfg.Filter != "" {
		c.Filter = cfg.Filter
	}
	if cfg.colorSet() {
		c.Color = config.ColorNever
		if cfg.Color {
			c.Color = config.ColorAlways
		}
	}
	if c.Color == config.ColorAlways {
		color.NoColor = false
	}
	return c, nil
}

func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) printer(w io.Writer, extra ...yamprint.Option) (*yamprint.Printer, error) {
	c, err := cfg.settings()
	if err != nil {
		return nil, err
	}
	opts, err := c.Options(w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts = append(opts, yamprint.WithSource(format.MapSliceSource{}))
	return yamprint.New(append(opts, extra...)...), nil
}

// inFormat is the -I format, else the one named by the suffix of path,
// else YAML.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, err := format.FromPath(path); err == nil {
		return f
	}
	return format.YAMLFormat
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is the patch itself, not a file'"`

	Patch *cli.Command
}

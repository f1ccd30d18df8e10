package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/tdewolff/jsscan/js"
)

const defaultConfigName = "jsscan.toml"

// config is the layout of jsscan.toml.
type config struct {
	Scanner scannerConfig `toml:"scanner"`
	Input   inputConfig   `toml:"input"`
	Output  outputConfig  `toml:"output"`
}

type scannerConfig struct {
	Exponentiation  bool `toml:"exponentiation"`
	Module          bool `toml:"module"`
	ManualTemplates bool `toml:"manual_templates"`
}

type inputConfig struct {
	Encoding string `toml:"encoding"`
	Stream   bool   `toml:"stream"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Jobs   int64  `toml:"jobs"`
	Width  int64  `toml:"width"` // maximum columns of a literal in pretty output
}

func defaultConfig() config {
	return config{
		Input:  inputConfig{Encoding: "utf-8"},
		Output: outputConfig{Format: "pretty", Width: 40},
	}
}

// loadConfig reads the configuration file at path on top of the defaults. Without a path, ./jsscan.toml is read if it exists.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = defaultConfigName
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); 0 < len(undecoded) {
		return config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("input", "encoding") && strings.TrimSpace(cfg.Input.Encoding) == "" {
		return config{}, fmt.Errorf("%s: empty [input].encoding", path)
	}
	if meta.IsDefined("output", "jobs") && cfg.Output.Jobs < 0 {
		return config{}, fmt.Errorf("%s: negative [output].jobs", path)
	}
	return cfg, nil
}

////////////////////////////////////////////////////////////////

// scanSettings are the scanner and input settings of a run.
type scanSettings struct {
	options  js.Options
	encoding encoding.Encoding
	stream   bool
}

type runSettings struct {
	scan   scanSettings
	format string
	jobs   int
	width  int
	quiet  bool
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("encoding", "", "input encoding, any WHATWG label such as utf-8, utf-16le or latin1")
	cmd.Flags().Bool("exponentiation", false, "scan ** and **= as operators")
	cmd.Flags().Bool("module", false, "scan as module code, without HTML-like comments")
	cmd.Flags().Bool("manual-templates", false, "continue templates from the driver instead of the scanner")
	cmd.Flags().IntP("jobs", "j", 0, "number of files scanned in parallel (default GOMAXPROCS)")
	cmd.Flags().String("format", "", "output format (pretty|json)")
}

// resolveSettings loads the configuration file and applies the command-line flags on top of it.
func resolveSettings(cmd *cobra.Command) (runSettings, error) {
	root := cmd.Root().PersistentFlags()
	configPath, err := root.GetString("config")
	if err != nil {
		return runSettings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return runSettings{}, err
	}

	flags := cmd.Flags()
	boolFlag := func(name string, dst *bool) {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	stringFlag := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	boolFlag("exponentiation", &cfg.Scanner.Exponentiation)
	boolFlag("module", &cfg.Scanner.Module)
	boolFlag("manual-templates", &cfg.Scanner.ManualTemplates)
	boolFlag("stream", &cfg.Input.Stream)
	stringFlag("encoding", &cfg.Input.Encoding)
	stringFlag("format", &cfg.Output.Format)
	if flags.Changed("width") {
		width, _ := flags.GetInt("width")
		cfg.Output.Width = int64(width)
	}

	jobs, err := safecast.Conv[int](cfg.Output.Jobs)
	if err != nil {
		return runSettings{}, fmt.Errorf("invalid number of jobs: %w", err)
	}
	if flags.Changed("jobs") {
		jobs, _ = flags.GetInt("jobs")
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	width, err := safecast.Conv[int](cfg.Output.Width)
	if err != nil {
		return runSettings{}, fmt.Errorf("invalid width: %w", err)
	}

	enc, err := htmlindex.Get(cfg.Input.Encoding)
	if err != nil {
		return runSettings{}, fmt.Errorf("unknown encoding %q: %w", cfg.Input.Encoding, err)
	}

	colorMode, err := root.GetString("color")
	if err != nil {
		return runSettings{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	if err := configureColor(colorMode, os.Stdout); err != nil {
		return runSettings{}, err
	}
	quiet, err := root.GetBool("quiet")
	if err != nil {
		return runSettings{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	return runSettings{
		scan: scanSettings{
			options: js.Options{
				Exponentiation:  cfg.Scanner.Exponentiation,
				Module:          cfg.Scanner.Module,
				ManualTemplates: cfg.Scanner.ManualTemplates,
			},
			encoding: enc,
			stream:   cfg.Input.Stream,
		},
		format: strings.ToLower(cfg.Output.Format),
		jobs:   jobs,
		width:  width,
		quiet:  quiet,
	}, nil
}

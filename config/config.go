// Package config loads the driver configuration from defaults, an
// optional YAML file, REWIND_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. REWIND_ORACLE_MAXN.
const EnvPrefix = "REWIND"

// Schemes understood by the driver.
const (
	SchemeHierarchical = "hierarchical"
	SchemeLogTree      = "logtree"
	SchemeStack        = "stack"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config stores the driver configuration.
type Config struct {
	Oracle OracleConfig `mapstructure:"oracle"`
	Walk   WalkConfig   `mapstructure:"walk"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OracleConfig sizes the cost tables.
type OracleConfig struct {
	MaxN      int `mapstructure:"maxN"`
	MaxK      int `mapstructure:"maxK"`
	DiagonalN int `mapstructure:"diagonalN"`
	LogKN     int `mapstructure:"logKN"`
	GainMinK  int `mapstructure:"gainMinK"`
}

// WalkConfig selects the enumerator runs: every scheme over every size,
// and for the hierarchical scheme over every budget in Ks.
type WalkConfig struct {
	Sizes   []int    `mapstructure:"sizes"`
	Ks      []int    `mapstructure:"ks"`
	Schemes []string `mapstructure:"schemes"`
}

// OutputConfig stores where CSV files go.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig stores the logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"max-n":      "oracle.maxN",
	"max-k":      "oracle.maxK",
	"diagonal-n": "oracle.diagonalN",
	"logk-n":     "oracle.logKN",
	"gain-min-k": "oracle.gainMinK",
	"sizes":      "walk.sizes",
	"ks":         "walk.ks",
	"schemes":    "walk.schemes",
	"out":        "output.dir",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Flags returns the driver flag set. Only flags set on the command line
// override the file and environment.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "path to a YAML config file")
	fs.Int("max-n", 1024, "largest n tabulated by the oracle")
	fs.Int("max-k", 5, "largest k tabulated by the oracle")
	fs.Int("diagonal-n", 500, "largest n of the T(n,n) table")
	fs.Int("logk-n", 1024, "largest n of the T(n,log2 n) table")
	fs.Int("gain-min-k", 2, "smallest k of the slot gain table")
	fs.IntSlice("sizes", []int{32, 128, 512, 2048}, "range lengths walked by every scheme")
	fs.IntSlice("ks", []int{2, 3, 4, 10}, "slot budgets of the hierarchical scheme")
	fs.StringSlice("schemes", []string{SchemeHierarchical, SchemeLogTree, SchemeStack}, "schemes to run")
	fs.StringP("out", "o", "out", "directory for CSV files")
	fs.String("log-level", "info", "zerolog level")
	fs.String("log-format", "console", "console or json")

	return fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("oracle.maxN", 1024)
	v.SetDefault("oracle.maxK", 5)
	v.SetDefault("oracle.diagonalN", 500)
	v.SetDefault("oracle.logKN", 1024)
	v.SetDefault("oracle.gainMinK", 2)
	v.SetDefault("walk.sizes", []int{32, 128, 512, 2048})
	v.SetDefault("walk.ks", []int{2, 3, 4, 10})
	v.SetDefault("walk.schemes", []string{SchemeHierarchical, SchemeLogTree, SchemeStack})
	v.SetDefault("output.dir", "out")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads the configuration. With an empty path, rewind.yaml is looked
// up in the working directory and its absence is not an error. fs may be
// nil; otherwise it must come from Flags.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("rewind")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Oracle.MaxN < 0 || c.Oracle.DiagonalN < 0 || c.Oracle.LogKN < 0:
		return fmt.Errorf("%w: oracle sizes must be non-negative", ErrInvalidConfig)
	case c.Oracle.MaxK < 1:
		return fmt.Errorf("%w: oracle.maxK=%d must be at least 1", ErrInvalidConfig, c.Oracle.MaxK)
	case c.Oracle.GainMinK < 1 || c.Oracle.GainMinK > c.Oracle.MaxK:
		return fmt.Errorf("%w: oracle.gainMinK=%d outside [1, %d]", ErrInvalidConfig, c.Oracle.GainMinK, c.Oracle.MaxK)
	case c.Output.Dir == "":
		return fmt.Errorf("%w: output.dir is empty", ErrInvalidConfig)
	case c.Log.Format != "console" && c.Log.Format != "json":
		return fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, c.Log.Format)
	}
	for _, n := range c.Walk.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: walk size %d", ErrInvalidConfig, n)
		}
	}
	for _, k := range c.Walk.Ks {
		if k < 1 {
			return fmt.Errorf("%w: walk budget %d", ErrInvalidConfig, k)
		}
	}
	for _, s := range c.Walk.Schemes {
		switch s {
		case SchemeHierarchical, SchemeLogTree, SchemeStack:
		default:
			return fmt.Errorf("%w: unknown scheme %q", ErrInvalidConfig, s)
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NewLogger builds the driver logger writing to w.
func NewLogger(c LogConfig, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

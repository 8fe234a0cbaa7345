package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pamlerror "github.com/msto63/paml/foundation/core/error"
	pamllog "github.com/msto63/paml/foundation/core/log"
	"github.com/msto63/paml/foundation/paml/codec"
	"github.com/msto63/paml/foundation/utils/filex"
)

// EnvConfig names the environment variable pointing at the config file
const EnvConfig = "PAML_CONFIG"

// Config holds the complete CLI configuration
type Config struct {
	Parser  ParserConfig  `toml:"parser" yaml:"parser" paml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output" paml:"output"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" paml:"logging"`

	// Path is the file the configuration was loaded from, empty for defaults
	Path string `toml:"-" yaml:"-" paml:"-"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth     int  `toml:"max_depth" yaml:"max_depth" paml:"max_depth"`
	MaxInputSize Size `toml:"max_input_size" yaml:"max_input_size" paml:"max_input_size"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Color  string `toml:"color" yaml:"color" paml:"color"`
	Format string `toml:"format" yaml:"format" paml:"format"`
	Indent string `toml:"indent" yaml:"indent" paml:"indent"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" paml:"level"`
	Format string `toml:"format" yaml:"format" paml:"format"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// OutputFormats are the accepted values of output.format
var OutputFormats = []string{"tree", "paml", "json", "yaml", "toml", "proto", "protojson"}

// Size is a byte count written as a plain number or with a KB, MB or GB
// suffix (powers of 1024)
type Size int64

var sizeUnits = []struct {
	suffix string
	factor int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// UnmarshalText parses a size string
func (s *Size) UnmarshalText(text []byte) error {
	str := strings.ToUpper(strings.TrimSpace(string(text)))
	factor := int64(1)
	for _, u := range sizeUnits {
		if strings.HasSuffix(str, u.suffix) {
			str = strings.TrimSpace(strings.TrimSuffix(str, u.suffix))
			factor = u.factor
			break
		}
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid size %q", string(text))
	}
	*s = Size(n * factor)
	return nil
}

// MarshalText formats the size with the largest exact unit
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// String formats the size with the largest exact unit
func (s Size) String() string {
	n := int64(s)
	for _, u := range sizeUnits {
		if n != 0 && n%u.factor == 0 {
			return strconv.FormatInt(n/u.factor, 10) + u.suffix
		}
	}
	return "0"
}

// DefaultConfig returns the configuration used when no file is found
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML, YAML or PAML file, chosen by
// extension (TOML when unknown)
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pamlerror.Newf("config file not found: %s", path).
				WithCode(pamlerror.CodeConfigError).
				WithSource(path)
		}
		return nil, pamlerror.Wrap(err, "read config").
			WithCode(pamlerror.CodeIOError).
			WithSource(path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".paml":
		err = codec.UnmarshalStrict(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, pamlerror.Wrap(err, "failed to parse config").
			WithCode(pamlerror.CodeConfigError).
			WithSource(path)
	}

	cfg.applyDefaults()
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, pamlerror.Wrap(err, "invalid config").WithSource(path)
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the PAML_CONFIG environment
// variable, then from the default locations. Without any file it returns
// DefaultConfig.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if filex.Exists(p) && !filex.IsDir(p) {
			return Load(p)
		}
	}
	return DefaultConfig(), nil
}

// DefaultPaths lists the locations LoadFromEnv tries, in order
func DefaultPaths() []string {
	paths := []string{
		"./paml.toml",
		"./paml.yaml",
		"./.paml.paml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "paml", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Parser
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 256
	}
	if c.Parser.MaxInputSize == 0 {
		c.Parser.MaxInputSize = 64 << 20
	}

	// Output
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}
	if c.Output.Indent == "" {
		c.Output.Indent = "  "
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return invalid("parser.max_depth must not be negative: %d", c.Parser.MaxDepth)
	}
	if c.Parser.MaxInputSize < 0 {
		return invalid("parser.max_input_size must not be negative: %d", c.Parser.MaxInputSize)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("output.color must be auto, always or never: %q", c.Output.Color)
	}
	if !contains(OutputFormats, c.Output.Format) {
		return invalid("output.format %q is not one of %s", c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	if strings.Trim(c.Output.Indent, " \t") != "" {
		return invalid("output.indent may only contain spaces and tabs")
	}

	if _, err := pamllog.ParseLevel(c.Logging.Level); err != nil {
		return pamlerror.Wrap(err, "logging.level").WithCode(pamlerror.CodeInvalidConfig)
	}
	if _, err := pamllog.ParseFormat(c.Logging.Format); err != nil {
		return pamlerror.Wrap(err, "logging.format").WithCode(pamlerror.CodeInvalidConfig)
	}
	return nil
}

// UseColor resolves output.color against whether the output is a terminal
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Output.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal && os.Getenv("NO_COLOR") == ""
	}
}

func invalid(format string, args ...interface{}) error {
	return pamlerror.Newf(format, args...).WithCode(pamlerror.CodeInvalidConfig)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

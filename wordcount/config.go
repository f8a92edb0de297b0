package wordcount

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// DefaultPollInterval is how often the watcher polls when fsnotify is
// unavailable.
const DefaultPollInterval = 500 * time.Millisecond

// Config holds settings for counting and reporting words.
// The hash table's bucket and load factor constants are not configurable.
type Config struct {
	// --- Counting ---

	// Delimiters lists the characters that separate words; each rune is one
	// delimiter. Empty means DefaultDelimiters.
	Delimiters string `json:"delimiters,omitempty" yaml:"delimiters" toml:"delimiters" jsonschema:"description=Characters that separate words; empty uses the built-in set"`

	// FoldCase lowercases words before counting.
	FoldCase bool `json:"fold_case,omitempty" yaml:"fold_case" toml:"fold_case" jsonschema:"description=Count words case-insensitively"`

	// --- Output ---

	// Format is the report format.
	// Values: "text" (default), "yaml"
	Format string `json:"format,omitempty" yaml:"format" toml:"format" jsonschema:"enum=text,enum=yaml,default=text"`

	// --- Watching ---

	// Watch keeps running and re-reports whenever the input changes.
	Watch bool `json:"watch,omitempty" yaml:"watch" toml:"watch"`

	// PollInterval is used when file system events are unavailable.
	// 0 uses DefaultPollInterval.
	PollInterval time.Duration `json:"poll_interval,omitempty" yaml:"poll_interval" toml:"poll_interval"`

	// --- Logging ---

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level,omitempty" yaml:"log_level" toml:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=warn"`

	// LogFormat is "console" or "json".
	LogFormat string `json:"log_format,omitempty" yaml:"log_format" toml:"log_format" jsonschema:"enum=console,enum=json,default=console"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:       string(FormatText),
		PollInterval: DefaultPollInterval,
		LogLevel:     "warn",
		LogFormat:    "console",
	}
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	if !utf8.ValidString(c.Delimiters) {
		return fmt.Errorf("%w: delimiters are not valid UTF-8", ErrInvalidConfig)
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("%w: poll_interval must not be negative", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// ReportFormat returns the parsed report format. An unknown value is
// reported as an error matching ErrUnknownFormat.
func (c *Config) ReportFormat() (Format, error) {
	return ParseFormat(c.Format)
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of
// DefaultConfig and validates the result. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Op: "load config", Path: path, Err: fmt.Errorf("%w: %w", ErrInputNotFound, err)}
		}
		return nil, &Error{Op: "load config", Path: path, Err: err}
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	case ".toml":
		err = decodeTOML(data, cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedConfig, ext)
	}
	if err != nil {
		return nil, &Error{Op: "load config", Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Op: "load config", Path: path, Err: err}
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty document leaves the defaults in place.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return nil
}

// ConfigSchema returns the JSON schema describing Config.
func ConfigSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "wordcount config"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config schema: %w", err)
	}
	return data, nil
}

package contract

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/readiness/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 3
	DefaultMinScore  = 3.0
	DefaultColor     = "yes"
	DefaultEmoji     = "yes"
	StdinPath        = "-"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	RubricPath   string // empty means the embedded default rubric
	InputPaths   []string
	Jurisdiction string
	Overrides    []string // raw Category.metric=value assignments
	Output       schema.OutputMode
	OutputFile   string
	Precision    int
	Detail       bool
	Width        int // Terminal width override (0 = auto-detect)
	Workers      int
	MinScore     float64

	UseEmojis bool // Enable emojis in status lines
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually by the command, so no tag
	InputPaths    []string
	LenientInputs bool // batch reports unreadable inputs per file instead of failing up front

	// --- Fields from rootCmd.PersistentFlags() ---
	Rubric       string   `mapstructure:"rubric"`
	Jurisdiction string   `mapstructure:"jurisdiction"`
	Set          []string `mapstructure:"set"`
	Output       string   `mapstructure:"output"`
	OutputFile   string   `mapstructure:"output-file"`
	Precision    int      `mapstructure:"precision"`
	Detail       bool     `mapstructure:"detail"`
	Width        int      `mapstructure:"width"`
	Workers      int      `mapstructure:"workers"`
	Emoji        string   `mapstructure:"emoji"`
	Color        string   `mapstructure:"color"`

	// --- Fields from checkCmd.Flags() ---
	MinScore float64 `mapstructure:"min-score"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.InputPaths != nil {
		clone.InputPaths = make([]string, len(c.InputPaths))
		copy(clone.InputPaths, c.InputPaths)
	}
	if c.Overrides != nil {
		clone.Overrides = make([]string, len(c.Overrides))
		copy(clone.Overrides, c.Overrides)
	}
	return &clone
}

// CloneWithInput creates a copy of the Config scoped to a single input file.
func (c *Config) CloneWithInput(path string) *Config {
	clone := c.Clone()
	clone.InputPaths = []string{path}
	return clone
}

// InputPath returns the single input file, or empty when none was given.
func (c *Config) InputPath() string {
	if len(c.InputPaths) == 0 {
		return ""
	}
	return c.InputPaths[0]
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processOverrides(cfg, input); err != nil {
		return err
	}
	if err := resolvePaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Jurisdiction = strings.TrimSpace(input.Jurisdiction)
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(orDefault(input.Emoji, DefaultEmoji))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(orDefault(input.Color, DefaultColor))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(orDefault(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, markdown, html, xlsx, parquet", input.Output)
	}

	// --- 3. Gate Validation ---
	if input.MinScore < 0 || input.MinScore > schema.MaxScore {
		return fmt.Errorf("min-score must be between 0 and %d (received %.2f)", schema.MaxScore, input.MinScore)
	}
	cfg.MinScore = input.MinScore

	return nil
}

// processOverrides checks that every --set assignment has the Category.metric=value shape.
func processOverrides(cfg *Config, input *ConfigRawInput) error {
	cfg.Overrides = nil
	for _, raw := range input.Set {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		key, _, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid --set value '%s', expected 'Category.metric=value'", raw)
		}
		dot := strings.LastIndex(key, ".")
		if dot <= 0 || dot == len(key)-1 {
			return fmt.Errorf("invalid --set key '%s', expected 'Category.metric'", key)
		}
		cfg.Overrides = append(cfg.Overrides, raw)
	}
	return nil
}

// resolvePaths checks that the rubric and input files exist.
func resolvePaths(cfg *Config, input *ConfigRawInput) error {
	cfg.RubricPath = strings.TrimSpace(input.Rubric)
	if cfg.RubricPath != "" {
		if err := checkFile(cfg.RubricPath); err != nil {
			return fmt.Errorf("invalid rubric path: %w", err)
		}
	}

	cfg.InputPaths = nil
	for _, p := range input.InputPaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p != StdinPath && !input.LenientInputs {
			if err := checkFile(p); err != nil {
				return fmt.Errorf("invalid input path: %w", err)
			}
		}
		cfg.InputPaths = append(cfg.InputPaths, p)
	}
	return nil
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

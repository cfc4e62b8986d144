package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Default number of sheets between two progress lines.
const DefaultProgressEvery = 500

// Example configuration file content (all keys are optional).
const SampleConfig = `
[export]
# Create directories for each Ulysses group
keep_groups = false
# Do not append keywords, attachments, create date and modify date to files
skip_meta = false
# Number of sheets exported concurrently (0 = number of CPUs)
parallel = 0
# Print a progress line every N sheets
progress_every = 500
# Drop text inside unsupported markup instead of failing the sheet
ignore_unknown_tags = false
`

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Export ConfigExport `toml:"export"`
}

// ConfigExport uses pointers for switches to distinguish unset values from false.
type ConfigExport struct {
	KeepGroups        *bool `toml:"keep_groups"`
	SkipMeta          *bool `toml:"skip_meta"`
	Parallel          *int  `toml:"parallel"`
	ProgressEvery     *int  `toml:"progress_every"`
	IgnoreUnknownTags *bool `toml:"ignore_unknown_tags"`
}

// Config gathers every setting of an export run.
type Config struct {
	InputDir  string
	OutputDir string

	// Mirror Ulysses groups as directories
	KeepGroups bool
	// Omit the metadata footer
	SkipMeta bool
	// Number of workers (0 = runtime.NumCPU())
	Parallel int
	// Print "Exported N sheets." every N sheets
	ProgressEvery int
	// Downgrade unknown markup from an error to a debug message
	IgnoreUnknownTags bool
}

func NewConfig(inputDir, outputDir string) *Config {
	return &Config{
		InputDir:      inputDir,
		OutputDir:     outputDir,
		ProgressEvery: DefaultProgressEvery,
	}
}

// ReadConfigFile loads a TOML configuration file.
func ReadConfigFile(path string) (*ConfigFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	configFile, err := parseConfigFile(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return configFile, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	var result ConfigFile
	err := d.Decode(&result)
	return &result, err
}

// Apply overrides settings with the ones defined in the configuration file.
func (c *Config) Apply(f *ConfigFile) *Config {
	if f == nil {
		return c
	}
	e := f.Export
	if e.KeepGroups != nil {
		c.KeepGroups = *e.KeepGroups
	}
	if e.SkipMeta != nil {
		c.SkipMeta = *e.SkipMeta
	}
	if e.Parallel != nil {
		c.Parallel = *e.Parallel
	}
	if e.ProgressEvery != nil {
		c.ProgressEvery = *e.ProgressEvery
	}
	if e.IgnoreUnknownTags != nil {
		c.IgnoreUnknownTags = *e.IgnoreUnknownTags
	}
	return c
}

// SetParallel overrides the number of workers.
func (c *Config) SetParallel(parallel int) *Config {
	c.Parallel = parallel
	return c
}

// Workers returns the effective number of workers.
func (c *Config) Workers() int {
	if c.Parallel <= 0 {
		return runtime.NumCPU()
	}
	return c.Parallel
}

// AppendMeta returns if the metadata footer must be written.
func (c *Config) AppendMeta() bool {
	return !c.SkipMeta
}

// Check validates the configuration before starting an export.
func (c *Config) Check() error {
	if c.InputDir == "" {
		return errors.New("missing input directory")
	}
	if c.OutputDir == "" {
		return errors.New("missing output directory")
	}
	if c.Parallel < 0 {
		return fmt.Errorf("invalid parallel value %d: must be positive", c.Parallel)
	}
	if c.ProgressEvery <= 0 {
		return fmt.Errorf("invalid progress_every value %d: must be strictly positive", c.ProgressEvery)
	}

	stat, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("invalid input directory: %w", err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("invalid input directory: %q is not a directory", c.InputDir)
	}

	// Exported files must not be crawled again
	input, err := filepath.Abs(c.InputDir)
	if err != nil {
		return err
	}
	output, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(input, output)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output directory %q must not be inside input directory %q", c.OutputDir, c.InputDir)
	}

	return nil
}

package model

import "time"

// Config holds the complete gostcite configuration
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// InputConfig controls how source files are read
type InputConfig struct {
	// Sheets maps a kind name to the workbook sheet holding records of that kind
	Sheets map[string]string `yaml:"sheets" mapstructure:"sheets"`

	// NormalizeUnicode applies NFC normalization to every loaded string
	NormalizeUnicode bool `yaml:"normalize_unicode" mapstructure:"normalize_unicode"`
}

// SheetFor returns the sheet name configured for a kind, falling back to the kind name
func (c InputConfig) SheetFor(k Kind) string {
	if name, ok := c.Sheets[k.String()]; ok && name != "" {
		return name
	}
	return k.String()
}

// OutputConfig controls how the citation list is written
type OutputConfig struct {
	Format   string `yaml:"format" mapstructure:"format"`     // text, markdown, json, yaml, xlsx
	Numbered bool   `yaml:"numbered" mapstructure:"numbered"` // Prefix entries with their position
	Sheet    string `yaml:"sheet" mapstructure:"sheet"`       // Sheet name for xlsx output
}

// CacheConfig controls memoization of formatted citations
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"` // Empty keeps the cache in memory only
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// LoggingConfig controls the diagnostic log
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // console or json
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	sheets := make(map[string]string, len(Kinds))
	for _, k := range Kinds {
		sheets[k.String()] = k.String()
	}

	return &Config{
		Input: InputConfig{
			Sheets:           sheets,
			NormalizeUnicode: true,
		},
		Output: OutputConfig{
			Format:   "text",
			Numbered: true,
			Sheet:    "Список литературы",
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "",
			TTL:     24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

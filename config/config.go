package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the lint tool.
type Config struct {
	Scan       ScanConfig       `yaml:"scan"`
	Properties PropertiesConfig `yaml:"properties"`
	Checks     ChecksConfig     `yaml:"checks"`
	Duplicates DuplicatesConfig `yaml:"duplicates"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ScanConfig controls which documents a scan sees.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	// Directories is an allow-list of directory prefixes. Empty means the
	// whole vault is in scope.
	Directories []string `yaml:"directories"`
	// IgnoreUnderscore drops documents whose basename starts with "_".
	IgnoreUnderscore bool `yaml:"ignore_underscore"`
}

// PropertiesConfig names the frontmatter properties the checks read.
type PropertiesConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keyword     string `yaml:"keyword"`
}

// ChecksConfig toggles the independent per-document check families and holds
// their thresholds.
type ChecksConfig struct {
	AltText           bool `yaml:"alt_text"`
	NakedLinks        bool `yaml:"naked_links"`
	HeadingOrder      bool `yaml:"heading_order"`
	TitleLength       bool `yaml:"title_length"`
	DescriptionLength bool `yaml:"description_length"`
	ContentLength     bool `yaml:"content_length"`
	ReadingLevel      bool `yaml:"reading_level"`
	KeywordPlacement  bool `yaml:"keyword_placement"`
	ImageNaming       bool `yaml:"image_naming"`
	Duplicates        bool `yaml:"duplicates"`

	TitleMin          int     `yaml:"title_min"`
	TitleMax          int     `yaml:"title_max"`
	DescriptionMin    int     `yaml:"description_min"`
	DescriptionMax    int     `yaml:"description_max"`
	MinWordCount      int     `yaml:"min_word_count"`
	MaxGrade          float64 `yaml:"max_grade"`
	MaxKeywordDensity float64 `yaml:"max_keyword_density"`
}

// DuplicatesConfig holds duplicate-detection configuration.
type DuplicatesConfig struct {
	// Threshold is the Jaccard similarity percentage (0-100) at or above
	// which two paragraphs count as near-duplicates.
	Threshold int `yaml:"threshold"`
}

// CacheConfig holds result-cache configuration.
type CacheConfig struct {
	TTLHours   int  `yaml:"ttl_hours"`
	MaxEntries int  `yaml:"max_entries"`
	Persist    bool `yaml:"persist"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Includes:         []string{"**/*.md", "**/*.markdown"},
			Excludes:         []string{"**/.git/**", "**/.obsidian/**", "**/.notelint/**", "**/node_modules/**"},
			Directories:      nil,
			IgnoreUnderscore: false,
		},
		Properties: PropertiesConfig{
			Title:       "title",
			Description: "description",
			Keyword:     "",
		},
		Checks: ChecksConfig{
			AltText:           true,
			NakedLinks:        true,
			HeadingOrder:      true,
			TitleLength:       true,
			DescriptionLength: true,
			ContentLength:     true,
			ReadingLevel:      true,
			KeywordPlacement:  true,
			ImageNaming:       true,
			Duplicates:        true,
			TitleMin:          30,
			TitleMax:          60,
			DescriptionMin:    120,
			DescriptionMax:    160,
			MinWordCount:      300,
			MaxGrade:          12,
			MaxKeywordDensity: 3.0,
		},
		Duplicates: DuplicatesConfig{
			Threshold: 80,
		},
		Cache: CacheConfig{
			TTLHours:   24,
			MaxEntries: 4096,
			Persist:    true,
		},
		Logging: LoggingConfig{
			Verbose: false,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a vault directory (looks for
// notelint.yaml, then .notelint/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "notelint.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".notelint", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// fingerprintView is the subset of configuration that influences check
// outcomes. Fields outside this struct (cache sizing, logging) must never
// perturb the fingerprint, or unrelated settings edits would invalidate every
// cached result.
type fingerprintView struct {
	Includes           []string         `json:"includes"`
	Excludes           []string         `json:"excludes"`
	Directories        []string         `json:"directories"`
	IgnoreUnderscore   bool             `json:"ignore_underscore"`
	Properties         PropertiesConfig `json:"properties"`
	Checks             ChecksConfig     `json:"checks"`
	DuplicateThreshold int              `json:"duplicate_threshold"`
}

// Fingerprint returns a deterministic digest of the outcome-affecting
// configuration, used to gate result-cache hits.
func (c *Config) Fingerprint() string {
	view := fingerprintView{
		Includes:           c.Scan.Includes,
		Excludes:           c.Scan.Excludes,
		Directories:        c.Scan.Directories,
		IgnoreUnderscore:   c.Scan.IgnoreUnderscore,
		Properties:         c.Properties,
		Checks:             c.Checks,
		DuplicateThreshold: c.Duplicates.Threshold,
	}
	data, err := json.Marshal(view)
	if err != nil {
		// Marshal of a plain struct cannot fail; keep a stable sentinel
		// anyway so a hit is never granted on a broken fingerprint.
		return "unfingerprintable"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// CacheTTL returns the configured cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

// CacheDBPath returns the path to the persistent result-cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, ".notelint", "cache.db")
}

// EnsureStateDir ensures the .notelint directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".notelint"), 0755)
}

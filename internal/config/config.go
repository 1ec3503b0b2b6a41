package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
	Mode string `toml:"mode"` // gin mode: debug, release, test
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type BioGRIDConfig struct {
	BaseURL   string `toml:"base_url"`
	AccessKey string `toml:"access_key"`
	Organism  int    `toml:"organism"`
}

type StringConfig struct {
	BaseURL        string `toml:"base_url"`
	Species        int    `toml:"species"`
	CallerIdentity string `toml:"caller_identity"`
}

type HTTPConfig struct {
	// Timeout of zero leaves requests bounded only by the caller's context.
	Timeout Duration `toml:"timeout"`
}

type AnalysisConfig struct {
	TopN                 int     `toml:"top_n"`
	EigenvectorMaxIter   int     `toml:"eigenvector_max_iter"`
	EigenvectorTolerance float64 `toml:"eigenvector_tolerance"`
	PageRankDamping      float64 `toml:"pagerank_damping"`
	PageRankTolerance    float64 `toml:"pagerank_tolerance"`
}

type LayoutConfig struct {
	Seed       *int64  `toml:"seed"` // nil means unset; 0 is a valid seed
	K          float64 `toml:"k"`
	Iterations int     `toml:"iterations"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type SummaryPrompts struct {
	Hubs string `toml:"hubs"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	BioGRID  BioGRIDConfig  `toml:"biogrid"`
	String   StringConfig   `toml:"string"`
	HTTP     HTTPConfig     `toml:"http"`
	Analysis AnalysisConfig `toml:"analysis"`
	Layout   LayoutConfig   `toml:"layout"`
	LLM      LLMConfig      `toml:"llm"`
	Summary  SummaryPrompts `toml:"summary"`
}

// Duration reads TOML strings such as "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

const DefaultHubsPrompt = `You are a molecular biologist. The protein-protein interaction network around %s was retrieved from %s.
The most central proteins per metric are:
%s
Write two or three sentences on which proteins act as hubs or bridges and what that suggests biologically.
Respond with a JSON object: {"summary": "..."}`

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads path when it exists, falls back to an empty config when
// it does not, then applies environment overrides and defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}
	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Mode, "GIN_MODE")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.BioGRID.BaseURL, "PPI_BIOGRID_URL")
	setString(&c.BioGRID.AccessKey, "PPI_BIOGRID_ACCESS_KEY")
	setString(&c.String.BaseURL, "PPI_STRING_URL")
	setString(&c.String.CallerIdentity, "PPI_STRING_CALLER_IDENTITY")
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.LLM.APIKey, "LLM_API_KEY")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")

	if v := os.Getenv("PPI_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTP.Timeout = Duration{d}
		}
	}
	if v := os.Getenv("PPI_ORGANISM"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			c.BioGRID.Organism = id
			c.String.Species = id
		}
	}
}

// ApplyDefaults fills every unset field except secrets. The BioGRID access
// key has no default.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.BioGRID.BaseURL == "" {
		c.BioGRID.BaseURL = "https://webservice.thebiogrid.org/interactions"
	}
	if c.BioGRID.Organism == 0 {
		c.BioGRID.Organism = 9606
	}
	if c.String.BaseURL == "" {
		c.String.BaseURL = "https://string-db.org/api/json/network"
	}
	if c.String.Species == 0 {
		c.String.Species = 9606
	}
	if c.Analysis.TopN == 0 {
		c.Analysis.TopN = 5
	}
	if c.Analysis.EigenvectorMaxIter == 0 {
		c.Analysis.EigenvectorMaxIter = 1000
	}
	if c.Analysis.EigenvectorTolerance == 0 {
		c.Analysis.EigenvectorTolerance = 1e-6
	}
	if c.Analysis.PageRankDamping == 0 {
		c.Analysis.PageRankDamping = 0.85
	}
	if c.Analysis.PageRankTolerance == 0 {
		c.Analysis.PageRankTolerance = 1e-6
	}
	if c.Layout.Seed == nil {
		seed := int64(42)
		c.Layout.Seed = &seed
	}
	if c.Layout.K == 0 {
		c.Layout.K = 0.15
	}
	if c.Layout.Iterations == 0 {
		c.Layout.Iterations = 50
	}
	if c.Layout.Width == 0 {
		c.Layout.Width = 640
	}
	if c.Layout.Height == 0 {
		c.Layout.Height = 640
	}
	if c.Summary.Hubs == "" {
		c.Summary.Hubs = DefaultHubsPrompt
	}
}

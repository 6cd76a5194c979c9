package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Atlas/internal/boundary"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Boundary BoundaryConfig `yaml:"boundary"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type BoundaryConfig struct {
	URL       string `yaml:"url"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type DatasetConfig struct {
	RegionsPath string `yaml:"regions_path"`
	ZipsPath    string `yaml:"zips_path"`
}

type ScoringConfig struct {
	Weights          ScoringWeights `yaml:"weights"`
	ProximityDecayKm float64        `yaml:"proximity_decay_km"`
}

type ScoringWeights struct {
	Income           float64 `yaml:"income"`
	CostOfLiving     float64 `yaml:"cost_of_living"`
	CrimeRate        float64 `yaml:"crime_rate"`
	JobOpportunities float64 `yaml:"job_opportunities"`
	Climate          float64 `yaml:"climate"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) BoundaryTimeout() time.Duration {
	return time.Duration(c.Boundary.TimeoutMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Boundary: BoundaryConfig{
			URL:       boundary.DefaultURL,
			TimeoutMs: 10000,
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Income:           0.2,
				CostOfLiving:     0.2,
				CrimeRate:        0.2,
				JobOpportunities: 0.2,
				Climate:          0.2,
			},
			ProximityDecayKm: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ATLAS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ATLAS_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ATLAS_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("ATLAS_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("ATLAS_BOUNDARY_URL"); v != "" {
		cfg.Boundary.URL = v
	}
	if v := os.Getenv("ATLAS_REGIONS_PATH"); v != "" {
		cfg.Dataset.RegionsPath = v
	}
	if v := os.Getenv("ATLAS_ZIPS_PATH"); v != "" {
		cfg.Dataset.ZipsPath = v
	}
	if v := os.Getenv("ATLAS_PROXIMITY_DECAY_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.ProximityDecayKm = f
		}
	}
	if v := os.Getenv("ATLAS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

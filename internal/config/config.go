// Package config loads the optional HCL configuration file for the server
// and scheduler. Command-line flags override whatever is set here.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is the full file model.
type Config struct {
	ListenAddr      string    `hcl:"listen_addr,optional"`
	DataDir         string    `hcl:"data_dir,optional"`
	DailyDifficulty string    `hcl:"daily_difficulty,optional"`
	Schedule        *Schedule `hcl:"schedule,block"`
	Social          []Social  `hcl:"social,block"`
}

// Schedule configures the daily posting loop.
type Schedule struct {
	PostTimes []string `hcl:"post_times"`
	Language  string   `hcl:"language,optional"`
}

// Social configures one posting endpoint. Platform is a free-form label; the
// poster adapter treats every platform as a bot-style JSON endpoint.
type Social struct {
	Platform string `hcl:"platform,label"`
	Endpoint string `hcl:"endpoint"`
	ChatID   string `hcl:"chat_id,optional"`
	Token    string `hcl:"token,optional"`
	Enabled  bool   `hcl:"enabled,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ListenAddr:      ":8080",
		DataDir:         "./data",
		DailyDifficulty: "medium",
	}
}

// Load reads and decodes path, layering it over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.DailyDifficulty == "" {
		cfg.DailyDifficulty = "medium"
	}
	return cfg, nil
}

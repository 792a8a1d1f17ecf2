package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Fetch struct {
		RenderDelayMS int     `yaml:"render_delay_ms"`
		TimeoutS      int     `yaml:"timeout_s"`
		ReqPerSec     float64 `yaml:"req_per_sec"`
		Burst         int     `yaml:"burst"`
	} `yaml:"fetch"`

	Email struct {
		Enabled     bool   `yaml:"enabled"`
		IMAPHost    string `yaml:"imap_host"`
		IMAPPort    int    `yaml:"imap_port"`
		Username    string `yaml:"username"`
		Mailbox     string `yaml:"mailbox"`
		PollSeconds int    `yaml:"poll_seconds"`
		MaxBatch    int    `yaml:"max_batch"`
	} `yaml:"email"`

	// SitesPath points at an optional YAML overlay of extra site adapters.
	SitesPath string `yaml:"sites_path"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

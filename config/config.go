package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings. Values come from an optional YAML file
// (CONFIG_FILE), with environment variables taking precedence over both the
// file and the defaults.
type Config struct {
	ServerPort        string `yaml:"server_port"`
	TesseractDataPath string `yaml:"tesseract_data_path"`
	PortalBaseURL     string `yaml:"portal_base_url"`
	SessionPath       string `yaml:"session_path"`
	DataDir           string `yaml:"data_dir"`
	MaxFileSize       int64  `yaml:"max_file_size"`
}

func defaults() *Config {
	return &Config{
		ServerPort:        "8080",
		TesseractDataPath: "/usr/share/tesseract-ocr/5/tessdata/",
		PortalBaseURL:     "https://tps.logiqs.com",
		SessionPath:       "data/session.json",
		DataDir:           "data",
		MaxFileSize:       10 * 1024 * 1024,
	}
}

// LoadConfig assembles the configuration: defaults, then the YAML file named
// by CONFIG_FILE when set, then environment overrides.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	overlayEnv(&cfg.ServerPort, "SERVER_PORT")
	overlayEnv(&cfg.TesseractDataPath, "TESSDATA_PREFIX")
	overlayEnv(&cfg.PortalBaseURL, "PORTAL_BASE_URL")
	overlayEnv(&cfg.SessionPath, "SESSION_PATH")
	overlayEnv(&cfg.DataDir, "DATA_DIR")

	return cfg, nil
}

func overlayEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

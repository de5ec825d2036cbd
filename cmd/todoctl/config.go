package main

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"os"
	"time"
)

const (
	defaultURL     = "http://localhost:3000"
	defaultTimeout = 10 * time.Second
	urlEnv         = "TODO_API_URL"
)

var configFileNames = []string{"todoctl.toml", ".todoctl.toml"}

// config holds the client settings. Precedence: defaults, config file, environment, flags.
type config struct {
	URL     string   `toml:"url"`
	Timeout duration `toml:"timeout"`
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func loadConfig(path string) (*config, error) {
	cfg := &config{URL: defaultURL, Timeout: duration{defaultTimeout}}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(urlEnv); v != "" {
		cfg.URL = v
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds settings read from the TOML config file. Flags override it.
//
//	token = "ghp_..."
//	api_url = "https://github.example.com/api/v3"
//	cache_dir = "/var/cache/github-social-graph"
//	parallelism = 10
//	timeout = "30s"
//	retries = 2
//	requests_per_second = 5
//	background = "#ffffff"
type Config struct {
	Token             string        `toml:"token"`
	APIURL            string        `toml:"api_url"`
	CacheDir          string        `toml:"cache_dir"`
	Parallelism       int           `toml:"parallelism"`
	Timeout           time.Duration `toml:"timeout"`
	Retries           int           `toml:"retries"`
	RequestsPerSecond float64       `toml:"requests_per_second"`
	Background        string        `toml:"background"`
}

// loadConfig reads the config file at path. An empty path selects the
// default location, which may be missing; an explicit path must exist.
// Unknown keys are logged and ignored.
func loadConfig(path string, logger *log.Logger) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("unknown config keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	if cfg.Parallelism < 0 || cfg.Retries < 0 || cfg.Timeout < 0 || cfg.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("load config %s: negative values are not allowed", path)
	}
	logger.Debug("loaded config", "file", path)
	return &cfg, nil
}

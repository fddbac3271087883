package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/LdDl/roadnet"
)

const defaultAddr = ":8080"

// Config is the optional TOML configuration file:
//
//	[server]
//	addr = ":8080"
//
//	[osm]
//	highways = ["primary", "secondary", "residential"]
//	end_caps = true
//
//	[[template]]
//	name = "primary"
//	road_width = 7.0
type Config struct {
	Server    ServerConfig           `toml:"server"`
	OSM       OSMConfig              `toml:"osm"`
	Templates []roadnet.TemplateTOML `toml:"template"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type OSMConfig struct {
	Highways []string `toml:"highways"`
	EndCaps  bool     `toml:"end_caps"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: defaultAddr},
		OSM:    OSMConfig{EndCaps: true},
	}
}

// loadConfig reads config file. Empty path gives defaults
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read config")
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, errors.Wrapf(err, "Can't decode config '%s'", path)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	return cfg, nil
}

func (cfg *Config) osmImportConfig() *roadnet.OSMImportConfig {
	templates := make([]*roadnet.Template, 0, len(cfg.Templates))
	for _, t := range cfg.Templates {
		templates = append(templates, t.Template())
	}
	return &roadnet.OSMImportConfig{
		Highways:  cfg.OSM.Highways,
		Templates: templates,
		EndCaps:   cfg.OSM.EndCaps,
	}
}

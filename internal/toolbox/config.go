package toolbox

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the top-level toolbox configuration supplied via --config.
// Registry is the legacy single-registry field kept for older toolboxes;
// Registries is the ordered list of all target registries.
type Config struct {
	Name       string   `mapstructure:"name"`
	Registry   string   `mapstructure:"registry"`
	Registries []string `mapstructure:"registries"`
}

// LoadConfig reads and decodes the toolbox configuration file. Any failure
// here is fatal to the run: without the toolbox identity and registry list
// there is nothing meaningful to aggregate.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType(path))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("loading toolbox config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding toolbox config %s: %w", path, err)
	}

	return &cfg, nil
}

// configType maps a config file extension to a viper config type. TOML is
// the canonical toolbox config format and the fallback for unknown extensions.
func configType(path string) string {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "toml"
	}
}

// EffectiveRegistries returns the registry list used for tag construction:
// Registries in declared order, with the legacy Registry appended when set
// and not already a member. Empty entries are dropped.
func (c *Config) EffectiveRegistries() []string {
	out := make([]string, 0, len(c.Registries)+1)
	seen := make(map[string]bool)
	for _, r := range c.Registries {
		if r == "" {
			continue
		}
		if !seen[r] {
			seen[r] = true
		}
		out = append(out, r)
	}
	if c.Registry != "" && !seen[c.Registry] {
		out = append(out, c.Registry)
	}
	return out
}

package input

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nzipper/root-plotting/src/plot"
)

// EnvPrefix prefixes environment overrides, e.g. ROOTPLOT_LOG_LEVEL.
const EnvPrefix = "ROOTPLOT"

// FileConfig is the content of a plot configuration file. Each section
// overrides the defaults of one orchestrator.
type FileConfig struct {
	LogLevel   string         `mapstructure:"log_level"`
	Workers    int            `mapstructure:"workers"`
	Efficiency plot.Overrides `mapstructure:"efficiency"`
	Hist       plot.Overrides `mapstructure:"hist"`
	Multi      plot.Overrides `mapstructure:"multi"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("workers", 4)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads a configuration file (yaml, toml or json, chosen by
// extension). An empty path yields the defaults plus environment overrides.
func LoadConfig(path string) (*FileConfig, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	var cfg FileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}

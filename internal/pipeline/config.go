package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. LAMBDA_LOG_LEVEL.
const EnvPrefix = "LAMBDA"

type LogConfig struct {
	Level       string
	Development bool
}

// StepConfig names a registered step and carries its arguments.
type StepConfig struct {
	Step string         `yaml:"step" mapstructure:"step"`
	Args map[string]any `yaml:"args" mapstructure:"args"`
}

type Config struct {
	Log       LogConfig
	Pipelines map[string][]StepConfig
}

// LoadConfig reads the YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return ReadConfig(f)
}

// ReadConfig reads a YAML config. Settings are resolved through viper, so
// LAMBDA_* environment variables override them. Pipeline definitions are
// decoded directly because viper folds key case and step arguments often
// name record fields.
func ReadConfig(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var file struct {
		Pipelines map[string][]StepConfig `yaml:"pipelines"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse pipelines: %w", err)
	}

	return &Config{
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
		Pipelines: file.Pipelines,
	}, nil
}

// Package config loads sheetlit settings from defaults, an optional YAML
// file, SHEETLIT_ environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/ukaji3/sheetlit-go/pkg/sheetlit"
)

// Defaults match the paths the converter has always used.
const (
	DefaultInput  = "experiment.xlsx"
	DefaultOutput = "data.js"

	envPrefix = "SHEETLIT_"
)

// configFileNames are searched in the working directory when no file is given.
var configFileNames = []string{"sheetlit.yaml", "sheetlit.yml"}

// Config holds all converter settings.
type Config struct {
	Input     string `koanf:"input"`
	Output    string `koanf:"output"`
	Sheet     string `koanf:"sheet"`
	Range     string `koanf:"range"`
	PrintArea bool   `koanf:"print_area"`
	RawDates  bool   `koanf:"raw_dates"`
	Keyword   string `koanf:"keyword"`
	VarName   string `koanf:"var_name"`
	Pretty    bool   `koanf:"pretty"`
	Verbose   bool   `koanf:"verbose"`
	LogFile   string `koanf:"log_file"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

// findConfigFile returns explicit, or the first default name that exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"input":    DefaultInput,
		"output":   DefaultOutput,
		"keyword":  sheetlit.DefaultKeyword,
		"var_name": sheetlit.DefaultVarName,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	fileUsed := findConfigFile(cfgFile)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// SHEETLIT_VAR_NAME -> var_name
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = fileUsed

	return &cfg, nil
}

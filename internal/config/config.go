package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec        string         `koanf:"spec"`
	OutputDir   string         `koanf:"output-dir"`
	DryRun      bool           `koanf:"dry-run"`
	Templates   TemplateConfig `koanf:"templates"`
	IncludeTags []string       `koanf:"include-tags"`
	Python      PythonConfig   `koanf:"python"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type PythonConfig struct {
	Package string `koanf:"package"`
	Version string `koanf:"version"`
	BaseURL string `koanf:"base-url"`
}

// BindCommonFlags binds language-agnostic flags to the generate command
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: pygmalion.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path or URL")
	flags.StringP("output-dir", "o", "", "Output directory")
	flags.String("templates", "", "Custom templates directory")
	flags.StringSlice("include-tags", nil, "Tags to include (exclusive)")
	flags.Bool("dry-run", false, "Print output without writing files")
}

// Load layers the config file (pygmalion.yaml by default) under any flags set
// on the command. Flags always win.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("pygmalion.yaml"); err == nil {
			configFile = "pygmalion.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["output-dir"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if v := getStringSlice("include-tags"); len(v) > 0 {
		m["include-tags"] = v
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}
	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}
	if flagChanged("dry-run") {
		m["dry-run"] = getBool("dry-run")
	}

	// Python-specific flags (under python. namespace)
	if v := getString("package"); v != "" {
		m["python.package"] = v
	}
	if v := getString("package-version"); v != "" {
		m["python.version"] = v
	}
	if v := getString("base-url"); v != "" {
		m["python.base-url"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	// A dry run prints to stdout and never touches the output directory.
	if c.OutputDir == "" && !c.DryRun {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

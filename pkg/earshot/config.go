package earshot

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/viper"

	"github.com/earshot/earshot/pkg/server"
)

type Config struct {
	Server        server.Config       `mapstructure:"server"`
	Recognizer    VendorConfig        `mapstructure:"recognizer"`
	Notifier      NotifierConfig      `mapstructure:"notifier"`
	Languages     LanguageConfig      `mapstructure:"languages"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Environment   string              `mapstructure:"environment"`
	LogLevel      string              `mapstructure:"log_level"`
	LogFormat     string              `mapstructure:"log_format"`
}

// VendorConfig names a provider implementation plus its free-form
// settings block, decoded per provider with configutil.
type VendorConfig struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}

type NotifierConfig struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}

type LanguageEntry struct {
	Code string `mapstructure:"code"`
	Name string `mapstructure:"name"`
}

type LanguageConfig struct {
	Default   string          `mapstructure:"default"`
	Supported []LanguageEntry `mapstructure:"supported"`
}

type ObservabilityConfig struct {
	ArtifactsDir string `mapstructure:"artifacts_dir"`
}

func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.allow_any_origin", false)
	v.SetDefault("recognizer.provider", "mock")
	v.SetDefault("notifier.provider", "nop")
	v.SetDefault("languages.default", "vi-VN")
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("observability.artifacts_dir", "")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}

	if len(cfg.Languages.Supported) == 0 {
		cfg.Languages.Supported = []LanguageEntry{
			{Code: "vi-VN", Name: "Tiếng Việt"},
			{Code: "en-US", Name: "English"},
		}
	}

	expandEnvStrings(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Recognizer.Provider == "" {
		return fmt.Errorf("recognizer.provider is required")
	}
	return nil
}

// ServerLanguages maps the config onto the wire shape.
func (c *Config) ServerLanguages() []server.Language {
	out := make([]server.Language, 0, len(c.Languages.Supported))
	for _, entry := range c.Languages.Supported {
		out = append(out, server.Language{
			Code:    entry.Code,
			Name:    entry.Name,
			Default: entry.Code == c.Languages.Default,
		})
	}
	return out
}

func expandEnvStrings(cfg *Config) {
	expandValue(reflect.ValueOf(cfg))
	cfg.Recognizer.Settings = expandSettings(cfg.Recognizer.Settings)
	cfg.Notifier.Settings = expandSettings(cfg.Notifier.Settings)
}

func expandSettings(settings map[string]any) map[string]any {
	if settings == nil {
		return nil
	}
	for k, v := range settings {
		settings[k] = expandAny(v)
	}
	return settings
}

func expandAny(v any) any {
	switch val := v.(type) {
	case string:
		return os.ExpandEnv(val)
	case []any:
		for i := range val {
			val[i] = expandAny(val[i])
		}
		return val
	case map[string]any:
		for k, v := range val {
			val[k] = expandAny(v)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = expandAny(v)
		}
		return out
	default:
		return v
	}
}

func expandValue(v reflect.Value) {
	if !v.IsValid() {
		return
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		expandValue(v.Elem())
		return
	}
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			expandValue(v.Field(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(os.ExpandEnv(v.String()))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			expandValue(v.Index(i))
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds defaults the flags start from.
type Config struct {
	Catalog CatalogConfig
	Output  OutputConfig
	OpenAPI OpenAPIConfig
}

// CatalogConfig locates the formatter catalog.
type CatalogConfig struct {
	Dir   string
	Watch bool
}

// OutputConfig controls result printing.
type OutputConfig struct {
	Format string
}

// OpenAPIConfig controls document loading.
type OpenAPIConfig struct {
	ExtensionKey string
	Infer        bool
	AllowHTTP    bool
}

// loadConfig reads configuration from file and env. Env var overrides use
// prefix FORMATTER_, e.g. FORMATTER_CATALOG_DIR.
func loadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("catalog.dir", "")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("output.format", "pretty")
	v.SetDefault("openapi.extension_key", "x-formatter")
	v.SetDefault("openapi.infer", true)
	v.SetDefault("openapi.allow_http", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FORMATTER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "formatter"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FORMATTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Catalog: CatalogConfig{
			Dir:   v.GetString("catalog.dir"),
			Watch: v.GetBool("catalog.watch"),
		},
		Output: OutputConfig{
			Format: v.GetString("output.format"),
		},
		OpenAPI: OpenAPIConfig{
			ExtensionKey: v.GetString("openapi.extension_key"),
			Infer:        v.GetBool("openapi.infer"),
			AllowHTTP:    v.GetBool("openapi.allow_http"),
		},
	}, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// InitConfig reads in config file and ENV variables if set.
// It initializes Viper with the provided config file path or uses default locations.
func InitConfig(cfgFile string) error {
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("config: home directory: %w", err)
		}

		// ".flapper.yaml" in the working directory wins over the home one.
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".flapper")
	}

	viper.SetEnvPrefix("FLAPPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	return nil
}

// SetDefaults registers every key so env overrides work without a file.
func SetDefaults() {
	viper.SetDefault("window.width", 960)
	viper.SetDefault("window.height", 540)
	viper.SetDefault("window.title", "flapper")
	viper.SetDefault("tps", 60)
	viper.SetDefault("controller", "kinematic")
	viper.SetDefault("physics.gravity", 9.8)
	viper.SetDefault("prefabs.dir", "prefabs")
	viper.SetDefault("prefabs.hot_reload", true)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.development", false)
}

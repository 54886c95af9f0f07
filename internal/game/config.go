package game

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the frontend knobs loaded from an optional JSON config
// file in the working directory. Everything has a sensible default, so
// shipping without a config file is the normal case.
type Settings struct {
	WindowWidth      int
	WindowHeight     int
	TargetDiameterCm float64
	SwayEnabled      bool
	SwayAmplitudeMil float64
	LogLevel         string
}

const settingsFileName = "marksman.cfg.json"

// LoadSettings reads marksman.cfg.json from configDir, falling back to
// defaults when the file is absent. Any other read error is reported.
func LoadSettings(configDir string) (Settings, error) {
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 800)
	viper.SetDefault("target.diameterCm", DefaultTargetDiameterCm)
	viper.SetDefault("sway.enabled", true)
	viper.SetDefault("sway.amplitudeMil", swayDefaultAmplitudeMil)
	viper.SetDefault("logLevel", "info")

	viper.SetConfigName(settingsFileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return Settings{
		WindowWidth:      viper.GetInt("window.width"),
		WindowHeight:     viper.GetInt("window.height"),
		TargetDiameterCm: viper.GetFloat64("target.diameterCm"),
		SwayEnabled:      viper.GetBool("sway.enabled"),
		SwayAmplitudeMil: viper.GetFloat64("sway.amplitudeMil"),
		LogLevel:         viper.GetString("logLevel"),
	}, nil
}

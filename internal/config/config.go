// Package config loads zspecimen settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/zarlcorp/zspecimen/internal/synth"
)

// Config is the full runtime configuration.
type Config struct {
	GenAI     GenAIConfig
	Log       LogConfig
	ExportDir string
}

// GenAIConfig holds generative service settings.
type GenAIConfig struct {
	APIKey          string
	TextModel       string
	ImageModel      string
	ThinkingBudget  int
	PlaceholderBase string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// Load reads configuration from envFile (when present) and the environment.
// Environment variables win over the file.
func Load(envFile string) (*Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	apiKey := v.GetString("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = v.GetString("API_KEY")
	}

	cfg := &Config{
		GenAI: GenAIConfig{
			APIKey:          apiKey,
			TextModel:       v.GetString("ZSPECIMEN_TEXT_MODEL"),
			ImageModel:      v.GetString("ZSPECIMEN_IMAGE_MODEL"),
			ThinkingBudget:  v.GetInt("ZSPECIMEN_THINKING_BUDGET"),
			PlaceholderBase: v.GetString("ZSPECIMEN_PLACEHOLDER_BASE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		ExportDir: v.GetString("ZSPECIMEN_EXPORT_DIR"),
	}

	return cfg, nil
}

// Synth converts settings to a synth.Config.
func (c GenAIConfig) Synth() synth.Config {
	return synth.Config{
		APIKey:          c.APIKey,
		TextModel:       c.TextModel,
		ImageModel:      c.ImageModel,
		ThinkingBudget:  int32(c.ThinkingBudget),
		PlaceholderBase: c.PlaceholderBase,
	}
}

// Configured reports whether an API key is available.
func (c GenAIConfig) Configured() bool {
	return c.APIKey != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ZSPECIMEN_TEXT_MODEL", "gemini-3-pro-preview")
	v.SetDefault("ZSPECIMEN_IMAGE_MODEL", "gemini-2.5-flash-image")
	v.SetDefault("ZSPECIMEN_THINKING_BUDGET", 4000)
	v.SetDefault("ZSPECIMEN_PLACEHOLDER_BASE", "https://picsum.photos")
	v.SetDefault("ZSPECIMEN_EXPORT_DIR", defaultExportDir())
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stderr")
}

// defaultExportDir returns $XDG_DATA_HOME/zspecimen or ~/.local/share/zspecimen.
func defaultExportDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "zspecimen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zspecimen"
	}
	return filepath.Join(home, ".local", "share", "zspecimen")
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the app. Everything has a
// working default; a config file and QUIZDRILL_* environment variables
// can override it.
type Config struct {
	// BankPath is the question bank file (.json or .db/.sqlite).
	BankPath string `mapstructure:"bank_path"`

	// QuestionCap bounds random-subset attempts.
	QuestionCap int `mapstructure:"question_cap"`

	// AutoAdvanceDelay is the pause before moving on after a correct
	// answer.
	AutoAdvanceDelay time.Duration `mapstructure:"auto_advance_delay"`

	// DebugLog enables file logging when set to a path.
	DebugLog string `mapstructure:"debug_log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BankPath:         "bank.json",
		QuestionCap:      40,
		AutoAdvanceDelay: time.Second,
	}
}

// Load reads configuration in priority order: defaults, then a config
// file (the given path, or quizdrill.yaml in the working directory and
// $HOME/.config/quizdrill), then QUIZDRILL_* environment variables. A
// missing config file is fine unless a path was given explicitly.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("bank_path", def.BankPath)
	v.SetDefault("question_cap", def.QuestionCap)
	v.SetDefault("auto_advance_delay", def.AutoAdvanceDelay)
	v.SetDefault("debug_log", def.DebugLog)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("quizdrill")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/quizdrill")
	}

	v.SetEnvPrefix("QUIZDRILL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.QuestionCap <= 0 {
		return Config{}, fmt.Errorf("question_cap must be positive, got %d", cfg.QuestionCap)
	}
	if cfg.AutoAdvanceDelay <= 0 {
		return Config{}, fmt.Errorf("auto_advance_delay must be positive, got %s", cfg.AutoAdvanceDelay)
	}
	return cfg, nil
}

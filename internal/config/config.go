package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Makepad-fr/budget/internal/logger"
	"github.com/Makepad-fr/budget/internal/ui"
)

type Config struct {
	// Persistence
	DataFile string

	// Diagnostics
	LogFile  string
	LogLevel string

	// Display
	Theme string
	// Force the line-by-line menu even on a terminal.
	Plain bool
}

// LoadEnvFile loads a .env file from the working directory if there is one.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		DataFile: getEnv("BUDGET_FILE", "budget.json"),
		LogFile:  getEnv("BUDGET_LOG_FILE", "budget.log"),
		LogLevel: getEnv("BUDGET_LOG_LEVEL", "info"),
		Theme:    getEnv("BUDGET_THEME", "classic"),
		Plain:    getEnvBool("BUDGET_PLAIN", false),
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.DataFile) == "" {
		problems = append(problems, "data file path cannot be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if !ui.ValidTheme(c.Theme) {
		problems = append(problems, fmt.Sprintf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.Themes, ", ")))
	}
	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("data=%s log=%s level=%s theme=%s plain=%t", c.DataFile, c.LogFile, c.LogLevel, c.Theme, c.Plain)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

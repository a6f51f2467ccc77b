package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every app of the module.
type Config struct {
	Env          string
	AppName      string
	Build        string
	Debug        bool
	TestMode     bool
	DataFile     string // JSON roster file
	LogLevel     string
	RollbarToken string
}

// NewConfig reads the configuration of the current environment.
// The environment is picked from ENV: DEV (local; default), TEST, QA, PROD.
// Values are read from `<ENV>_<KEY>` env vars, optionally seeded from config/.env.<env>.
func NewConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", false)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Gradebook")
	conf.SetDefault("build", "dev")
	conf.SetDefault("dataFile", "students.json")
	conf.SetDefault("logLevel", "warn")
	conf.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		DataFile:     conf.GetString("dataFile"),
		LogLevel:     conf.GetString("logLevel"),
		RollbarToken: conf.GetString("rollbarToken"),
	}, nil
}

package tinvest

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultAppName identifies this SDK to the API when the caller does
// not set its own application name.
const DefaultAppName = "artemevsevev.t-invest-sdk"

// Env variable names read by ConfigFromEnv.
const (
	EnvToken   = "TINVEST_TOKEN"
	EnvAppName = "TINVEST_APP_NAME"
)

// Config carries everything needed to open a client connection.
type Config struct {
	// Token is the API token. Required.
	Token string `yaml:"token"`
	// AppName is sent as x-app-name metadata. Defaults to DefaultAppName.
	AppName string `yaml:"app_name"`
	// Environment picks the production or sandbox deployment.
	Environment Environment `yaml:"-"`
	// Endpoint overrides the environment's gRPC target when non-empty.
	Endpoint string `yaml:"endpoint"`
}

type yamlConfig struct {
	Token       string `yaml:"token"`
	AppName     string `yaml:"app_name"`
	Environment string `yaml:"environment"`
	Endpoint    string `yaml:"endpoint"`
}

// LoadConfig reads a YAML config file.
//
// Recognized keys: token, app_name, environment (production|sandbox),
// endpoint.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(raw, &yc); err != nil {
		return Config{}, errors.Wrap(err, "parse config file")
	}
	cfg := Config{
		Token:    yc.Token,
		AppName:  yc.AppName,
		Endpoint: yc.Endpoint,
	}
	switch yc.Environment {
	case "", "production":
		cfg.Environment = Production
	case "sandbox":
		cfg.Environment = Sandbox
	default:
		return Config{}, errors.Errorf("unknown environment %q", yc.Environment)
	}
	return cfg, cfg.validate()
}

// ConfigFromEnv builds a Config from TINVEST_TOKEN and TINVEST_APP_NAME.
// A .env file in the working directory is loaded first when present.
func ConfigFromEnv() (Config, error) {
	// Missing .env is fine; explicit environment variables win anyway.
	_ = godotenv.Load()

	cfg := Config{
		Token:   os.Getenv(EnvToken),
		AppName: os.Getenv(EnvAppName),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Token == "" {
		return errors.New("api token is required")
	}
	return nil
}

func (c Config) appName() string {
	if c.AppName != "" {
		return c.AppName
	}
	return DefaultAppName
}

func (c Config) target() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return c.Environment.Endpoint()
}

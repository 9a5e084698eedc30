package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/spf13/viper"
)

// config structure
type Config struct {
	API     APIConfig     `mapstructure:"API"`
	Github  GithubConfig  `mapstructure:"GITHUB"`
	Email   EmailConfig   `mapstructure:"EMAIL"`
	Contact ContactConfig `mapstructure:"CONTACT"`
	Logs    LogsConfig    `mapstructure:"LOGS"`
}

type APIConfig struct {
	ListenPort string `mapstructure:"ListenPort"`
}

type GithubConfig struct {
	Account string `mapstructure:"Account"`
	Token   string `mapstructure:"Token"`   // optional, raises the github rate limit
	BaseURL string `mapstructure:"BaseURL"` // empty means api.github.com
}

type EmailConfig struct {
	Endpoint   string `mapstructure:"Endpoint"`
	ServiceID  string `mapstructure:"ServiceID"`
	TemplateID string `mapstructure:"TemplateID"`
	PublicKey  string `mapstructure:"PublicKey"`
	PrivateKey string `mapstructure:"PrivateKey"` // optional, sent as accessToken
}

// Configured is false when one of the identifiers required by the email service is missing
func (e EmailConfig) Configured() bool {
	return e.ServiceID != "" && e.TemplateID != "" && e.PublicKey != ""
}

type ContactConfig struct {
	MaxSubmissionsPerHour int `mapstructure:"MaxSubmissionsPerHour"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson"`
}

// Load defaults, then the optional config file, then the environment
func Load() (*Config, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return nil, err
	}

	// the config file is optional, the site can run from the environment only
	configFilePath := dir + "/config/config.toml"

	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		configFilePath = "config/config.toml"

		if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
			configFilePath = ""
		}
	}

	return LoadFrom(configFilePath)
}

// LoadFrom is Load with an explicit config file path, empty to skip the file
func LoadFrom(configFilePath string) (*Config, error) {
	cfg := GetDefault()

	if configFilePath != "" {
		if _, err := snakelet.InitAndLoad(cfg, configFilePath); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

// applyEnv overrides the config with the recognized environment variables
// unset or empty variables keep the current value
func applyEnv(cfg *Config) {
	v := viper.New()

	overrides := map[string]*string{
		"LISTEN_PORT":         &cfg.API.ListenPort,
		"GITHUB_USERNAME":     &cfg.Github.Account,
		"GITHUB_TOKEN":        &cfg.Github.Token,
		"GITHUB_API_URL":      &cfg.Github.BaseURL,
		"EMAILJS_ENDPOINT":    &cfg.Email.Endpoint,
		"EMAILJS_SERVICE_ID":  &cfg.Email.ServiceID,
		"EMAILJS_TEMPLATE_ID": &cfg.Email.TemplateID,
		"EMAILJS_PUBLIC_KEY":  &cfg.Email.PublicKey,
		"EMAILJS_PRIVATE_KEY": &cfg.Email.PrivateKey,
		"LOG_LEVEL":           &cfg.Logs.Level,
	}

	for name, target := range overrides {
		_ = v.BindEnv(name)

		if v.IsSet(name) {
			*target = v.GetString(name)
		}
	}

	_ = v.BindEnv("LOG_JSON")
	if v.IsSet("LOG_JSON") {
		cfg.Logs.OutputLogsAsJSON = v.GetBool("LOG_JSON")
	}

	_ = v.BindEnv("CONTACT_MAX_PER_HOUR")
	if v.IsSet("CONTACT_MAX_PER_HOUR") {
		cfg.Contact.MaxSubmissionsPerHour = v.GetInt("CONTACT_MAX_PER_HOUR")
	}
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort: "5000",
		},
		Github: GithubConfig{
			Account: "1240589",
		},
		Email: EmailConfig{
			Endpoint: "https://api.emailjs.com",
		},
		Contact: ContactConfig{
			MaxSubmissionsPerHour: 20,
		},
		Logs: LogsConfig{
			Level:            "info",
			OutputLogsAsJSON: false,
		},
	}
}

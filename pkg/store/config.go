package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings the scheduler reads at startup.
type Config interface {
	BasePath() string
	VerifyURL() string
	Notify() bool
}

const defaultVerifyURL = "https://script.google.com/macros/s/AKfycbxgqSuVElhn3DNsqxG2I-GXZbjUgMFrqtUzKFlqVk-jeON6wjv6LLhswk8a5u2SnUFakQ/exec"

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.sked.db")
	viper.SetDefault("verify_url", defaultVerifyURL)
	viper.SetDefault("notify", false)
	viper.SetConfigName(".sked") // .yaml is implicit
	viper.SetEnvPrefix("SKED")
	viper.AutomaticEnv()

	if override := os.Getenv("SKED_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path, URL: viper.GetString("verify_url"), Notifications: viper.GetBool("notify")}, nil
}

type fileConfig struct {
	Path          string `json:"path"`
	URL           string `json:"verify_url"`
	Notifications bool   `json:"notify"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) VerifyURL() string {
	return f.URL
}

func (f *fileConfig) Notify() bool {
	return f.Notifications
}

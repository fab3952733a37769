package stripeclient

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// fileConfig is the YAML shape of a client configuration file.
type fileConfig struct {
	APIKey             string `yaml:"api_key"`
	Endpoint           string `yaml:"endpoint"`
	APIVersion         string `yaml:"api_version"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	RetryMax           int    `yaml:"retry_max"`
	RetryWaitMinMillis int    `yaml:"retry_wait_min_millis"`
	RetryWaitMaxMillis int    `yaml:"retry_wait_max_millis"`
	NoRetries          bool   `yaml:"no_retries"`
	Debug              bool   `yaml:"debug"`
	UserAgent          string `yaml:"user_agent"`
}

// LoadConfig reads a client configuration from a YAML file. The API key may
// also come from the STRIPE_API_KEY environment variable, which takes
// precedence over the file.
func LoadConfig(path string) (*stripe.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file fileConfig

	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if key := os.Getenv("STRIPE_API_KEY"); key != "" {
		file.APIKey = key
	}

	return &stripe.Config{
		APIKey:       file.APIKey,
		Endpoint:     file.Endpoint,
		APIVersion:   file.APIVersion,
		HTTPTimeout:  time.Duration(file.HTTPTimeoutSeconds) * time.Second,
		RetryMax:     file.RetryMax,
		RetryWaitMin: time.Duration(file.RetryWaitMinMillis) * time.Millisecond,
		RetryWaitMax: time.Duration(file.RetryWaitMaxMillis) * time.Millisecond,
		NoRetries:    file.NoRetries,
		Debug:        file.Debug,
		UserAgent:    file.UserAgent,
	}, nil
}

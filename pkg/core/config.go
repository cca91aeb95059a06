package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production REST endpoint.
const DefaultBaseURL = "https://api.upbit.com"

// Credentials holds API authentication credentials.
type Credentials struct {
	// AccessKey identifies the API key; it travels inside every token.
	AccessKey string `json:"access_key" validate:"required"`
	// SecretKey signs tokens and is never transmitted.
	SecretKey string `json:"secret_key" validate:"required"`
}

// Config contains the client configuration.
type Config struct {
	// BaseURL is the scheme and host requests are sent to.
	BaseURL string `json:"base_url" validate:"required,url"`
	// Credentials are optional; quotation endpoints work without them.
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config with the production base URL, a 10s timeout
// and info logging.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL sets the base URL and returns the config for chaining.
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

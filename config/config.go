package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultDbURI is used when none of the datastore URI variables are set
const DefaultDbURI = "mongodb://localhost/3000"

// Config holds application configuration
type Config struct {
	// Port is the HTTP server's listening port. Also read from PORT.
	Port int `envconfig:"PORT" default:"3000"`

	// HTTPHost is the host the HTTP server binds to, empty binds all interfaces
	HTTPHost string `split_words:"true"`

	// DbURI is the MongoDB connection string. Takes priority over the hosting
	// provider variables below.
	DbURI string `split_words:"true"`

	// MongolabURI is the MongoDB connection string set by the MongoLab add-on.
	// Also read from MONGOLAB_URI.
	MongolabURI string `envconfig:"MONGOLAB_URI"`

	// MongohqURL is the MongoDB connection string set by the MongoHQ add-on.
	// Also read from MONGOHQ_URL.
	MongohqURL string `envconfig:"MONGOHQ_URL"`

	// DbName is the database to use when the connection string does not name one
	DbName string `default:"credential-intake" split_words:"true" required:"true"`

	// DbConnectTimeout bounds the single connection attempt made at startup
	DbConnectTimeout time.Duration `default:"10s" split_words:"true"`

	// DbWaitTimeout is how long a request waits for a pending connection
	// attempt before it is answered with 503
	DbWaitTimeout time.Duration `default:"5s" split_words:"true"`

	// StaticDir is the directory holding the landing page
	StaticDir string `default:"public" split_words:"true" required:"true"`

	// IndexFile is the landing page file name inside StaticDir
	IndexFile string `default:"index.html" split_words:"true" required:"true"`

	// MaxBodyBytes is the largest request body accepted by the registration endpoint
	MaxBodyBytes int64 `default:"1048576" split_words:"true"`
}

// NewConfig loads configuration values from environment variables
func NewConfig() (*Config, error) {
	var config Config

	if err := envconfig.Process("app", &config); err != nil {
		return nil, fmt.Errorf("error loading values from environment variables: %s",
			err.Error())
	}

	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, was: %d", config.Port)
	}

	if config.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("max body bytes must be positive, was: %d",
			config.MaxBodyBytes)
	}

	return &config, nil
}

// HTTPAddr returns the address the HTTP server listens on
func (c Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.Port)
}

// ResolveDbURI returns the first non-empty datastore connection string in
// priority order: DbURI, MongolabURI, MongohqURL, then DefaultDbURI.
func (c Config) ResolveDbURI() string {
	for _, uri := range []string{c.DbURI, c.MongolabURI, c.MongohqURL} {
		if uri != "" {
			return uri
		}
	}

	return DefaultDbURI
}

// String returns a log safe version of Config in string form. Redacts any sensative fields.
func (c Config) String() (string, error) {
	// Connection strings can carry user info
	for _, uri := range []*string{&c.DbURI, &c.MongolabURI, &c.MongohqURL} {
		if *uri != "" {
			*uri = "REDACTED_NOT_EMPTY"
		}
	}

	configBytes, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to convert configuration into JSON: %s", err.Error())
	}

	return string(configBytes), nil
}

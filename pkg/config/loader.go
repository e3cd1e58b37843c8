package config

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Liftss/cbadv-go/pkg/envvar"
)

// Config carries the credentials and endpoint settings for building clients.
// After Load, Secret holds the decoded secret bytes, not the base64 form.
type Config struct {
	Key    string `yaml:"key"`
	Secret string `yaml:"secret"`

	BaseURL      string   `yaml:"baseUrl"`
	WebsocketURL string   `yaml:"websocketUrl"`
	Timeout      Duration `yaml:"timeout"`
}

// Duration accepts Go duration strings in YAML, e.g. "15s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	du, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(du)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads the YAML config file, applies environment overrides and decodes
// the base64 secret. An empty path configures from the environment alone;
// unknown YAML keys and malformed secrets fail the load.
func Load(configFile string) (*Config, error) {
	var config Config

	if configFile != "" {
		content, err := os.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}

		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&config); err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "failed to parse config file %s", configFile)
		}
	}

	applyEnv(&config)

	if len(config.Key) == 0 {
		return nil, errors.New("api key is not set")
	}
	if len(config.Secret) == 0 {
		return nil, errors.New("api secret is not set")
	}

	secret, err := base64.StdEncoding.DecodeString(config.Secret)
	if err != nil {
		return nil, errors.Wrap(err, "api secret is not valid base64")
	}
	// pragma: allowlist nextline secret
	config.Secret = string(secret)

	return &config, nil
}

// applyEnv lets the environment override the file values.
func applyEnv(config *Config) {
	if v, ok := envvar.String("CBADV_API_KEY"); ok {
		config.Key = v
	}
	if v, ok := envvar.String("CBADV_API_SECRET"); ok {
		config.Secret = v
	}
	if v, ok := envvar.String("CBADV_API_BASE_URL"); ok {
		config.BaseURL = v
	}
	if v, ok := envvar.String("CBADV_WS_URL"); ok {
		config.WebsocketURL = v
	}
	if v, ok := envvar.Duration("CBADV_TIMEOUT"); ok {
		config.Timeout = Duration(v)
	}
}

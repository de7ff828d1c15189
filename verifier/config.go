package verifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	goruntime "runtime"
	"strings"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/0xPolygon/rsa-verifier/crypto/rsaverify"
	"github.com/0xPolygon/rsa-verifier/state/runtime/precompiled"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownBackend  = errors.New("unknown verification backend")
	ErrInvalidWorkers  = errors.New("workers must be greater than zero")
	ErrZeroGasLimit    = errors.New("gas limit must be greater than zero")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

const (
	// DefaultGasLimit is the gas handed to every modexp precompile call
	DefaultGasLimit uint64 = 10_000_000

	// DefaultFork is the fork whose gas schedule prices the precompile backend
	DefaultFork = chain.Berlin
)

// Config defines the verifier configuration params
type Config struct {
	Backend  string `json:"backend" yaml:"backend" hcl:"backend"`
	Fork     string `json:"fork" yaml:"fork" hcl:"fork"`
	GasLimit uint64 `json:"gas_limit" yaml:"gas_limit" hcl:"gas_limit"`
	Workers  int    `json:"workers" yaml:"workers" hcl:"workers"`
	LogLevel string `json:"log_level" yaml:"log_level" hcl:"log_level"`
	Fixtures string `json:"fixtures" yaml:"fixtures" hcl:"fixtures"`
}

// DefaultConfig returns the default verifier configuration
func DefaultConfig() *Config {
	return &Config{
		Backend:  rsaverify.LibraryBackendName,
		Fork:     DefaultFork,
		GasLimit: DefaultGasLimit,
		Workers:  goruntime.NumCPU(),
		LogLevel: "INFO",
		Fixtures: "",
	}
}

// Backends lists the supported backend names
func Backends() []string {
	return []string{rsaverify.LibraryBackendName, precompiled.ModExpBackendName}
}

func isBackendSupported(name string) bool {
	for _, b := range Backends() {
		if b == name {
			return true
		}
	}

	return false
}

// Validate checks the configuration and reports every problem found
func (c *Config) Validate() error {
	var errs error

	if !isBackendSupported(c.Backend) {
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend))
	}

	if !chain.IsForkAvailable(c.Fork) {
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", chain.ErrUnknownFork, c.Fork))
	}

	if c.Workers < 1 {
		errs = multierror.Append(errs, ErrInvalidWorkers)
	}

	if c.GasLimit == 0 {
		errs = multierror.Append(errs, ErrZeroGasLimit)
	}

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}

	return errs
}

// ReadConfigFile reads the config file from the specified path, builds a Config object
// and returns it. Fields missing from the file keep their default value.
//
// Supported file types: .json, .hcl, .yaml, .yml
func ReadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()

	if err := readFile(path, config); err != nil {
		return nil, err
	}

	return config, nil
}

func readFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var unmarshalFunc func([]byte, interface{}) error

	switch {
	case strings.HasSuffix(path, ".hcl"):
		unmarshalFunc = hcl.Unmarshal
	case strings.HasSuffix(path, ".json"):
		unmarshalFunc = json.Unmarshal
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		unmarshalFunc = yaml.Unmarshal
	default:
		return fmt.Errorf("suffix of %s is neither hcl, json, yaml nor yml", path)
	}

	return unmarshalFunc(data, out)
}

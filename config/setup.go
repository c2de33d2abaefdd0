package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Load resolves options from Default, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (*Options, error) {
	opts := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, opts); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", opts); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return opts, nil
}

// Validate reports why the integration cannot run, or nil. Checks run in a
// fixed order and the first failure is returned.
func (o *Options) Validate() error {
	if !o.Enable {
		return ErrDisabled
	}

	switch o.Backend {
	case BackendSentry:
		if o.DSN == "" {
			return ErrMissingDSN
		}
	case BackendOTel:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, o.Backend)
	}

	if o.SourceMap.Enable {
		switch {
		case o.AuthToken == "":
			return ErrMissingAuthToken
		case o.SourceMap.Org == "":
			return ErrMissingOrg
		case o.SourceMap.Project == "":
			return ErrMissingProject
		}
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dario.cat/mergo"
)

// Default values applied beneath every other source.
const (
	defaultLogLevel         = "info"
	defaultPasswordHashCost = 5
	defaultHTTPAddress      = ":8080"
	defaultRegion           = "us-east-1"
	defaultUsersTable       = "beyond-users"
	defaultUsernamesTable   = "beyond-usernames"
	defaultObjectsTable     = "beyond-objects"
	defaultTokenInfoURL     = "https://oauth2.googleapis.com/tokeninfo"
	defaultAdapterTimeout   = 5 * time.Second
)

// configBuilder collects configs in increasing priority order. JSON is
// inserted at jsonIndex, right above the defaults and below env and flags.
type configBuilder struct {
	configs   []*StructuredConfig
	jsonIndex int
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	b.jsonIndex = len(b.configs)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = slices.Insert(b.configs, b.jsonIndex, jsonCfg)

	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:         defaultLogLevel,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Storage: Storage{
			Backend: BackendDynamoDB,
			DynamoDB: DynamoDB{
				Region:         defaultRegion,
				UsersTable:     defaultUsersTable,
				UsernamesTable: defaultUsernamesTable,
				ObjectsTable:   defaultObjectsTable,
			},
		},
		Adapter: Adapter{
			TokenInfoURL:   defaultTokenInfoURL,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}

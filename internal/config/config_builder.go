package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// Default values applied before any other source.
const (
	DefaultAdapterAddress   = "http://api.exoexplorer.local/api"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultDBDriver         = "sqlite3"
	DefaultDBDSN            = "exoexplorer.db"
	DefaultLanguage         = "en"
	DefaultTheme            = "light"
	DefaultNotFoundRedirect = 10 * time.Second
	DefaultServerAddress    = "localhost:8080"
	DefaultTokenIssuer      = "exo-explorer-stub"
	DefaultTokenDuration    = 24 * time.Hour
)

var dotEnvFile = ".env"

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			Language:         DefaultLanguage,
			Theme:            DefaultTheme,
			NotFoundRedirect: DefaultNotFoundRedirect,
		},
		Storage: Storage{DB: DB{Driver: DefaultDBDriver, DSN: DefaultDBDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
		},
	})
	return b
}

// withDotEnv exports the variables of a local .env file into the process
// environment so that withEnv picks them up. Variables already set in the
// environment win. A missing file is not an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	if _, err := os.Stat(dotEnvFile); err != nil {
		return b
	}

	if err := godotenv.Load(dotEnvFile); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", dotEnvFile, err))
	}
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
	flags, err := ParseFlags(args)
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
	b.configs = append(b.configs, jsonCfg)

	return b
}

package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docmodel/pkg/docid"
	"github.com/hashicorp-forge/docmodel/pkg/document"
)

// Config is the docmodel configuration.
type Config struct {
	// LogLevel is the log level (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`

	// Document configures how payloads are turned into documents.
	Document *Document `hcl:"document,block"`
}

// Document configures document construction.
type Document struct {
	// HiddenAttributes are excluded from the default attribute view of every
	// loaded document.
	HiddenAttributes []string `hcl:"hidden_attributes,optional"`

	// GenerateKeys assigns a client-generated key to cloned documents that
	// have none.
	GenerateKeys bool `hcl:"generate_keys,optional"`

	// DefaultCollection is used to build a handle for cloned documents that
	// get a new key.
	DefaultCollection string `hcl:"default_collection,optional"`
}

var logLevels = []interface{}{"trace", "debug", "info", "warn", "error"}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Document: &Document{},
	}
}

// NewConfig parses an HCL configuration file read from fs. An empty filename
// returns the default configuration.
func NewConfig(fs afero.Fs, filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}

	exists, err := afero.Exists(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("error checking configuration file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	cfg := Default()
	if err := hclsimple.Decode(filename, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Document == nil {
		cfg.Document = &Document{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.By(lowercase),
			validation.In(logLevels...)),
	); err != nil {
		return err
	}

	if c.Document == nil {
		return nil
	}
	return validation.ValidateStruct(c.Document,
		validation.Field(&c.Document.DefaultCollection,
			validation.By(collectionName)),
		validation.Field(&c.Document.HiddenAttributes,
			validation.Each(validation.Required)),
	)
}

// Level returns the hclog level for LogLevel.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// DocumentOptions returns the options used to construct documents.
func (c *Config) DocumentOptions() document.Options {
	if c.Document == nil {
		return document.Options{}
	}
	return document.Options{HiddenAttributes: c.Document.HiddenAttributes}
}

func lowercase(value interface{}) error {
	s, _ := value.(string)
	if s != strings.ToLower(s) {
		return fmt.Errorf("must be lowercase")
	}
	return nil
}

func collectionName(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return docid.ValidateCollection(s)
}

package base

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docmodel/internal/config"
	"github.com/hashicorp-forge/docmodel/internal/loader"
)

// Command holds what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is the filesystem configuration and payload files are read from.
	FS afero.Fs
}

// NewCommand returns a base command.
func NewCommand(log hclog.Logger, ui cli.Ui, fs afero.Fs) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		FS:  fs,
	}
}

// LoadConfig parses the configuration file at path (or returns the default
// configuration when path is empty) and applies its log level.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.NewConfig(c.FS, path)
	if err != nil {
		return nil, err
	}
	c.Log.SetLevel(cfg.Level())
	return cfg, nil
}

// NewLoader returns a payload loader configured by cfg.
func (c *Command) NewLoader(cfg *config.Config) (*loader.Loader, error) {
	return loader.New(loader.Config{
		FS:      c.FS,
		Options: cfg.DocumentOptions(),
		Logger:  c.Log,
	})
}

// FlagSet wraps flag.FlagSet to render help text for the cli package.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet wrapping f. Errors are returned from Parse
// instead of exiting, and nothing is printed by the flag package itself.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Init(f.Name(), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the usage of every flag in the set.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n    %s\n", fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}

package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docmodel/internal/cmd/base"
	"github.com/hashicorp-forge/docmodel/internal/cmd/commands/clone"
	"github.com/hashicorp-forge/docmodel/internal/cmd/commands/inspect"
	"github.com/hashicorp-forge/docmodel/internal/cmd/commands/validate"
	"github.com/hashicorp-forge/docmodel/internal/cmd/commands/version"
)

// Commands is the mapping of all available docmodel commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui, fs afero.Fs) {
	b := base.NewCommand(log, ui, fs)

	Commands = map[string]cli.CommandFactory{
		"clone": func() (cli.Command, error) {
			return &clone.Command{Command: b}, nil
		},
		"inspect": func() (cli.Command, error) {
			return &inspect.Command{Command: b}, nil
		},
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}

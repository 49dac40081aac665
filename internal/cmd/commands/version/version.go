package version

import (
	"github.com/hashicorp-forge/docmodel/internal/cmd/base"
	"github.com/hashicorp-forge/docmodel/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of docmodel"
}

func (c *Command) Help() string {
	return `Usage: docmodel version

  This command prints the version of docmodel.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}

package validate

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docmodel/internal/cmd/base"
	"github.com/hashicorp-forge/docmodel/internal/loader"
)

type Command struct {
	*base.Command

	flagConfig string
	flagFormat string
}

func (c *Command) Synopsis() string {
	return "Validate document payload files"
}

func (c *Command) Help() string {
	return `Usage: docmodel validate [options] FILE...

  This command decodes every document in the given JSON or YAML payload
  files and reports the ones that cannot be built. The exit code is 1 if
  any document or file is invalid.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("validate", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to a docmodel config file.",
	)
	f.StringVar(
		&c.flagFormat, "format", "auto",
		"Payload format: json, yaml or auto to infer it from the file extension.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	paths := flags.Args()
	if len(paths) == 0 {
		ui.Error("at least one file is required")
		return 1
	}

	format, err := loader.ParseFormat(c.flagFormat)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing format flag: %v", err))
		return 1
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}

	l, err := c.NewLoader(cfg)
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing loader: %v", err))
		return 1
	}

	results, err := l.LoadAll(paths, format)
	for _, r := range results {
		ui.Output(fmt.Sprintf("%s: %d valid document(s)", r.Path, len(r.Documents)))
	}

	errs := loader.Errors(err)
	for _, e := range errs {
		ui.Error(e.Error())
	}
	if len(errs) > 0 {
		ui.Error(fmt.Sprintf("%d error(s) found", len(errs)))
		return 1
	}

	return 0
}

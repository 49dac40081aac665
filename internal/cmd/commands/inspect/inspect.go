package inspect

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docmodel/internal/cmd/base"
	"github.com/hashicorp-forge/docmodel/internal/loader"
	"github.com/hashicorp-forge/docmodel/pkg/document"
)

type Command struct {
	*base.Command

	flagConfig    string
	flagFormat    string
	flagInternals bool
	flagAll       bool
}

func (c *Command) Synopsis() string {
	return "Print the attributes of documents in a payload file"
}

func (c *Command) Help() string {
	return `Usage: docmodel inspect [options] FILE

  This command loads the documents in a JSON or YAML payload file and prints
  the attribute view of each one. Hidden attributes and the _id, _key and
  _rev entries are left out unless requested.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("inspect", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to a docmodel config file.",
	)
	f.StringVar(
		&c.flagFormat, "format", "auto",
		"Payload format: json, yaml or auto to infer it from the file extension.",
	)
	f.BoolVar(
		&c.flagInternals, "internals", false,
		"Include the _id, _key and _rev entries.",
	)
	f.BoolVar(
		&c.flagAll, "all", false,
		"Include hidden attributes.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if flags.NArg() != 1 {
		ui.Error("exactly one file is required")
		return 1
	}
	path := flags.Arg(0)

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

	docs, err := l.Load(path, format)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading %s: %v", path, err))
		return 1
	}

	opts := document.AllOptions{
		IncludeInternals:       c.flagInternals,
		IgnoreHiddenAttributes: c.flagAll,
	}
	for _, d := range docs {
		out, err := json.MarshalIndent(d.All(opts), "", "  ")
		if err != nil {
			ui.Error(fmt.Sprintf("error encoding document %q: %v", d.Handle(), err))
			return 1
		}
		logger.Debug("inspecting document",
			"handle", d.Handle(),
			"hidden", d.HiddenAttributes(),
		)
		ui.Output(string(out))
	}

	return 0
}

package clone

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docmodel/internal/cmd/base"
	"github.com/hashicorp-forge/docmodel/internal/config"
	"github.com/hashicorp-forge/docmodel/internal/loader"
	"github.com/hashicorp-forge/docmodel/pkg/docid"
	"github.com/hashicorp-forge/docmodel/pkg/document"
)

type Command struct {
	*base.Command

	flagConfig      string
	flagFormat      string
	flagKey         string
	flagGenerateKey bool
}

func (c *Command) Synopsis() string {
	return "Clone the documents in a payload file"
}

func (c *Command) Help() string {
	return `Usage: docmodel clone [options] FILE

  This command loads the documents in a JSON or YAML payload file, clones
  them and prints the clones as JSON. Clones carry the attributes and hidden
  attributes of their source but no _id, _key or _rev.

  A clone can be given a new key with -key (single document only) or
  -generate-key. When the configuration sets document.default_collection,
  clones with a new key also get a handle in that collection.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("clone", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to a docmodel config file.",
	)
	f.StringVar(
		&c.flagFormat, "format", "auto",
		"Payload format: json, yaml or auto to infer it from the file extension.",
	)
	f.StringVar(
		&c.flagKey, "key", "",
		"Key to assign to the clone. The file must hold exactly one document.",
	)
	f.BoolVar(
		&c.flagGenerateKey, "generate-key", false,
		"Assign a generated key to every clone.",
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

	if c.flagKey != "" && c.flagGenerateKey {
		ui.Error("-key and -generate-key cannot be used together")
		return 1
	}
	if c.flagKey != "" {
		if err := docid.ValidateKey(c.flagKey); err != nil {
			ui.Error(fmt.Sprintf("invalid key flag: %v", err))
			return 1
		}
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

	docs, err := l.Load(path, format)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading %s: %v", path, err))
		return 1
	}
	if c.flagKey != "" && len(docs) != 1 {
		ui.Error(fmt.Sprintf("-key requires exactly one document, %s has %d", path, len(docs)))
		return 1
	}

	generate := c.flagGenerateKey || cfg.Document.GenerateKeys

	clones := make([]*document.Document, 0, len(docs))
	for _, d := range docs {
		clone := d.Clone()

		key := c.flagKey
		if key == "" && generate {
			key = docid.NewKey()
		}
		if key != "" {
			if err := assignIdentity(clone, cfg.Document, key); err != nil {
				ui.Error(fmt.Sprintf("error assigning key to clone of %q: %v", d.Handle(), err))
				return 1
			}
		}

		logger.Debug("cloned document",
			"source", d.Handle(),
			"handle", clone.Handle(),
			"key", clone.Key(),
		)
		clones = append(clones, clone)
	}

	var out []byte
	if len(clones) == 1 {
		out, err = json.MarshalIndent(clones[0], "", "  ")
	} else {
		out, err = json.MarshalIndent(clones, "", "  ")
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error encoding clones: %v", err))
		return 1
	}
	ui.Output(string(out))

	return 0
}

// assignIdentity sets the key of a clone and, when a default collection is
// configured, its handle.
func assignIdentity(d *document.Document, cfg *config.Document, key string) error {
	if err := d.SetInternalKey(key); err != nil {
		return err
	}
	if cfg.DefaultCollection == "" {
		return nil
	}

	h, err := docid.NewHandle(cfg.DefaultCollection, key)
	if err != nil {
		return err
	}
	return d.SetInternalID(h.String())
}

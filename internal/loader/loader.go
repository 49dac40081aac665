package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docmodel/pkg/document"
)

// Format is a payload file format.
type Format string

const (
	// FormatAuto infers the format from the file extension.
	FormatAuto Format = ""

	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned when a payload format cannot be determined.
var ErrUnknownFormat = errors.New("unknown payload format")

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the payload format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: cannot infer from %q", ErrUnknownFormat, path)
	}
}

// Config contains the configuration for a Loader.
type Config struct {
	// FS is the filesystem payload files are read from.
	FS afero.Fs

	// Options are applied to every loaded document.
	Options document.Options

	// Logger is the logger. Defaults to a null logger.
	Logger hclog.Logger
}

// Loader turns payload files into documents.
type Loader struct {
	fs      afero.Fs
	options document.Options
	logger  hclog.Logger
}

// New creates a new Loader.
func New(cfg Config) (*Loader, error) {
	if cfg.FS == nil {
		return nil, fmt.Errorf("filesystem is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	return &Loader{
		fs:      cfg.FS,
		options: cfg.Options,
		logger:  cfg.Logger.Named("loader"),
	}, nil
}

// Result holds the documents loaded from one file.
type Result struct {
	Path      string
	Documents []*document.Document
}

// Load reads one payload file holding a single object or a list of
// objects. Documents that decode cleanly are returned along with an error
// describing the ones that did not.
func (l *Loader) Load(path string, format Format) ([]*document.Document, error) {
	if format == FormatAuto {
		var err error
		format, err = FormatFromPath(path)
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading payload file: %w", err)
	}

	l.logger.Debug("decoding payload file", "path", path, "format", format, "bytes", len(data))

	var docs []*document.Document
	switch format {
	case FormatJSON:
		docs, err = document.DecodeJSONList(data, l.options)
	case FormatYAML:
		docs, err = document.DecodeYAMLList(data, l.options)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	for _, d := range docs {
		l.logger.Trace("loaded document",
			"path", path,
			"handle", d.Handle(),
			"key", d.Key(),
			"attributes", len(d.All(document.AllOptions{IgnoreHiddenAttributes: true})),
		)
	}
	if err != nil {
		l.logger.Warn("payload file has invalid documents", "path", path, "error", err)
	}

	return docs, err
}

// LoadAll loads every file in paths. Every file is attempted; failures are
// collected into one error, each prefixed by its path.
func (l *Loader) LoadAll(paths []string, format Format) ([]Result, error) {
	var (
		results []Result
		result  *multierror.Error
	)

	for _, path := range paths {
		docs, err := l.Load(path, format)
		for _, e := range Errors(err) {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, e))
		}
		results = append(results, Result{Path: path, Documents: docs})
	}

	l.logger.Debug("loaded payload files", "files", len(paths), "errors", len(errorList(result)))
	return results, result.ErrorOrNil()
}

// Errors flattens an aggregated error into its individual errors. Errors
// that wrap an aggregate are kept whole.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	merr, ok := err.(*multierror.Error)
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range merr.Errors {
		out = append(out, Errors(e)...)
	}
	return out
}

func errorList(merr *multierror.Error) []error {
	if merr == nil {
		return nil
	}
	return merr.Errors
}

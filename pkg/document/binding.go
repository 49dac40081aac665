package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
)

// Assign sets every field of v on the document, as if Set had been called
// once per field. v is a struct, a pointer to a struct or a map with string
// keys; struct fields are named by their `mapstructure` tag, or by the Go
// field name when untagged.
//
// Assign is all-or-nothing: if any field fails, the document is left
// unchanged and every failure is reported.
func (d *Document) Assign(v any) error {
	var fields map[string]any
	if err := mapstructure.Decode(v, &fields); err != nil {
		return clientError("assign", "", fmt.Errorf("%w: %v", ErrInvalidArgument, err))
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	scratch := d.copyAll()
	var result *multierror.Error
	for _, name := range names {
		if err := scratch.Set(name, fields[name]); err != nil {
			result = appendError(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	*d = *scratch
	return nil
}

// Bind decodes the document into out, which must be a pointer to a struct or
// map. Attributes, hidden ones included, and the "_id", "_key" and "_rev"
// entries are matched to struct fields by exact name, case-insensitively, or
// by the snake_case or kebab-case form of the field name.
func (d *Document) Bind(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		MatchName:        matchAttributeName,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return clientError("bind", "", fmt.Errorf("%w: %v", ErrInvalidArgument, err))
	}

	all := d.All(AllOptions{IncludeInternals: true, IgnoreHiddenAttributes: true})
	if err := decoder.Decode(all); err != nil {
		return fmt.Errorf("error binding document: %w", err)
	}
	return nil
}

func matchAttributeName(attribute, field string) bool {
	return strings.EqualFold(attribute, field) ||
		strcase.ToSnake(field) == attribute ||
		strcase.ToKebab(field) == attribute
}

// copyAll returns a full copy of d, identity included.
func (d *Document) copyAll() *Document {
	c := d.Clone()
	c.id = d.id
	c.key = d.key
	c.rev = d.rev
	return c
}

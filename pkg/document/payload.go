package document

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// FromMap builds a document from a stored record, as the transport layer
// does after decoding a response. Every entry is applied with Set, reserved
// entries included. See FromPayload.
func FromMap(values map[string]any, opts Options) (*Document, error) {
	return FromPayload(values, opts)
}

// FromPayload builds a document from a decoded key/value mapping, either a
// map[string]any or a map[any]any as produced by YAML decoders.
//
// Entries are applied in sorted order through SetEntry. Nested mappings are
// converted to map[string]any and must have string names too. All failures
// are collected into a single error and no document is returned in that case.
// The resulting document is marked as changed.
func FromPayload(payload any, opts Options) (*Document, error) {
	d := NewWithOptions(opts)

	var result *multierror.Error
	switch p := payload.(type) {
	case map[string]any:
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, err := normalizeValue(k, p[k])
			if err == nil {
				err = d.Set(k, v)
			}
			if err != nil {
				result = appendError(result, err)
			}
		}

	case map[any]any:
		keys := make([]any, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		for _, k := range keys {
			v, err := normalizeValue(fmt.Sprint(k), p[k])
			if err == nil {
				err = d.SetEntry(k, v)
			}
			if err != nil {
				result = appendError(result, err)
			}
		}

	default:
		return nil, clientError("decode", "",
			fmt.Errorf("%w: payload must be a mapping, got %T", ErrInvalidArgument, payload))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	d.SetChanged(true)
	return d, nil
}

// FromJSON builds a document from a JSON object.
func FromJSON(data []byte, opts Options) (*Document, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("error decoding JSON payload: %w", err)
	}
	return FromPayload(payload, opts)
}

// FromYAML builds a document from a YAML mapping.
func FromYAML(data []byte, opts Options) (*Document, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("error decoding YAML payload: %w", err)
	}
	return FromPayload(payload, opts)
}

// DecodeJSONList decodes a JSON object or array of objects into documents.
// See DecodeList.
func DecodeJSONList(data []byte, opts Options) ([]*Document, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("error decoding JSON payload: %w", err)
	}
	return DecodeList(payload, opts)
}

// DecodeYAMLList decodes a YAML mapping or sequence of mappings into
// documents. See DecodeList.
func DecodeYAMLList(data []byte, opts Options) ([]*Document, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("error decoding YAML payload: %w", err)
	}
	return DecodeList(payload, opts)
}

// DecodeList builds documents from a single mapping or a list of mappings.
// Documents that decode cleanly are returned even when others fail; the
// error then lists every failing element by index.
func DecodeList(payload any, opts Options) ([]*Document, error) {
	items, ok := payload.([]any)
	if !ok {
		d, err := FromPayload(payload, opts)
		if err != nil {
			return nil, err
		}
		return []*Document{d}, nil
	}

	var (
		docs   []*Document
		result *multierror.Error
	)
	for i, item := range items {
		d, err := FromPayload(item, opts)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("document %d: %w", i, err))
			continue
		}
		docs = append(docs, d)
	}

	return docs, result.ErrorOrNil()
}

// normalizeValue returns v with every nested map[any]any, as produced by YAML
// decoders, converted to map[string]any. path names v in errors, with nested
// names joined by ".".
func normalizeValue(path string, v any) (any, error) {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			name, ok := k.(string)
			if !ok {
				return nil, clientError("set", path+"."+fmt.Sprint(k),
					fmt.Errorf("%w: entry name must be a string, got %T", ErrInvalidArgument, k))
			}
			n, err := normalizeValue(path+"."+name, item)
			if err != nil {
				return nil, err
			}
			out[name] = n
		}
		return out, nil

	case map[string]any:
		out := make(map[string]any, len(t))
		for name, item := range t {
			n, err := normalizeValue(path+"."+name, item)
			if err != nil {
				return nil, err
			}
			out[name] = n
		}
		return out, nil

	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			n, err := normalizeValue(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil

	default:
		return v, nil
	}
}

// appendError collects per-entry failures of one document. They are printed
// on a single line so that list and file errors stay one line per document.
func appendError(result *multierror.Error, err error) *multierror.Error {
	result = multierror.Append(result, err)
	result.ErrorFormat = joinErrors
	return result
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

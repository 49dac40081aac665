package document

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Options configures a new Document.
type Options struct {
	// HiddenAttributes lists attribute names excluded from the default view.
	HiddenAttributes []string `mapstructure:"hiddenAttributes"`

	// UnderscoredHiddenAttributes is the "_hiddenAttributes" spelling of
	// HiddenAttributes. When both are set, this one wins.
	UnderscoredHiddenAttributes []string `mapstructure:"_hiddenAttributes"`

	// IsNew is the initial new-document flag.
	IsNew bool `mapstructure:"_isNew"`
}

func (o Options) hiddenAttributes() []string {
	if o.UnderscoredHiddenAttributes != nil {
		return o.UnderscoredHiddenAttributes
	}
	return o.HiddenAttributes
}

// ParseOptions decodes an options bag such as {"_isNew": true,
// "hiddenAttributes": ["password"]}. Unrecognized options are ignored.
//
// Hidden attributes may be given as a list of names or as a map whose values
// are the names (ordered by map key). The new flag accepts any value that
// converts to a bool.
func ParseOptions(bag map[string]any) (Options, error) {
	var opts Options
	if len(bag) == 0 {
		return opts, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			nameListHook,
			flagHook,
		),
		Result: &opts,
	})
	if err != nil {
		return Options{}, fmt.Errorf("error creating options decoder: %w", err)
	}

	if err := decoder.Decode(bag); err != nil {
		return Options{}, clientError("construct", "",
			fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	return opts, nil
}

var stringSliceType = reflect.TypeOf([]string(nil))

// nameListHook turns the accepted spellings of a name list into []string.
func nameListHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != stringSliceType || data == nil {
		return data, nil
	}
	return toNameList(data)
}

func flagHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Bool || from.Kind() == reflect.Bool {
		return data, nil
	}
	return toBool(data)
}

func toNameList(data any) ([]string, error) {
	switch v := data.(type) {
	case []string:
		return dedupe(v), nil
	case string:
		return []string{v}, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, fmt.Errorf("attribute name must be a string, got %T", item)
			}
			names = append(names, s)
		}
		return dedupe(names), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		values := make([]any, 0, len(keys))
		for _, k := range keys {
			values = append(values, v[k])
		}
		return toNameList(values)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return toNameList(m)
	default:
		return nil, fmt.Errorf("attribute names must be a list, got %T", data)
	}
}

// dedupe returns a copy of names without repeated entries, keeping the first
// occurrence of each.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

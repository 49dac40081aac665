package document

import (
	"encoding/json"
)

// AllOptions controls the attribute view returned by All.
type AllOptions struct {
	// IncludeInternals adds the "_id", "_key" and "_rev" entries when set.
	IncludeInternals bool

	// IgnoreHiddenAttributes returns hidden attributes as well.
	IgnoreHiddenAttributes bool
}

// All returns a new map holding the document attributes as selected by opts.
// The returned map can be modified freely; attribute values are shared.
func (d *Document) All(opts AllOptions) map[string]any {
	out := make(map[string]any, len(d.values)+3)
	for k, v := range d.values {
		out[k] = v
	}

	if !opts.IgnoreHiddenAttributes {
		for _, name := range d.hidden {
			delete(out, name)
		}
	}

	if opts.IncludeInternals {
		if !d.id.IsZero() {
			out[EntryID] = d.id.String()
		}
		if d.key != "" {
			out[EntryKey] = d.key
		}
		if d.rev != "" {
			out[EntryRev] = d.rev
		}
	}

	return out
}

// Attributes returns the default view: every attribute that is not hidden,
// without identity entries.
func (d *Document) Attributes() map[string]any {
	return d.All(AllOptions{})
}

// ForInsertUpdate returns the payload to send when storing the document:
// all attributes, hidden ones included, plus "_key" when a key is set.
// The handle and revision are never part of the payload.
func (d *Document) ForInsertUpdate() map[string]any {
	out := d.All(AllOptions{IgnoreHiddenAttributes: true})
	if d.key != "" {
		out[EntryKey] = d.key
	}
	return out
}

// String returns the default view encoded as JSON.
func (d *Document) String() string {
	data, err := json.Marshal(d.Attributes())
	if err != nil {
		return "{}"
	}
	return string(data)
}

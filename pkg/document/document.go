package document

import (
	"fmt"

	"github.com/hashicorp-forge/docmodel/pkg/docid"
)

// Document is an in-memory record of a document store: identity fields, a
// revision, a change flag and arbitrary user attributes.
//
// A Document is a plain value object. It performs no I/O and is not safe for
// concurrent mutation. The zero value is an empty document.
type Document struct {
	id      docid.Handle
	key     string
	rev     string
	isNew   bool
	changed bool
	hidden  []string
	values  map[string]any
}

// New returns an empty document.
func New() *Document {
	return NewWithOptions(Options{})
}

// NewWithOptions returns an empty document configured by opts.
func NewWithOptions(opts Options) *Document {
	return &Document{
		isNew:  opts.IsNew,
		hidden: dedupe(opts.hiddenAttributes()),
		values: make(map[string]any),
	}
}

// Get returns the attribute stored under key, or nil if there is none.
func (d *Document) Get(key string) any {
	return d.values[key]
}

// Lookup returns the attribute stored under key and whether it exists.
func (d *Document) Lookup(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether an attribute is stored under key.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Set stores value under key.
//
// The reserved entries EntryID, EntryKey, EntryRev and EntryIsNew update the
// identity fields instead of the attributes and follow the rules of
// SetInternalID, SetInternalKey, SetRevision and SetIsNew. Any other key is
// stored as an attribute and marks the document as changed.
//
// On error the document is left unchanged.
func (d *Document) Set(key string, value any) error {
	switch kindOf(key) {
	case entryID:
		s, ok := value.(string)
		if !ok {
			if d.id.IsZero() {
				return clientError("set", key,
					fmt.Errorf("%w: %T is not a document id", ErrInvalidID, value))
			}
			s = fmt.Sprint(value)
		}
		return d.SetInternalID(s)

	case entryKey:
		s, ok := value.(string)
		if !ok {
			if d.key == "" {
				return clientError("set", key,
					fmt.Errorf("%w: %T is not a document key", ErrInvalidKey, value))
			}
			s = fmt.Sprint(value)
		}
		return d.SetInternalKey(s)

	case entryRev:
		rev, err := toRevision(value)
		if err != nil {
			return clientError("set", key, err)
		}
		d.SetRevision(rev)
		return nil

	case entryIsNew:
		isNew, err := toBool(value)
		if err != nil {
			return clientError("set", key, err)
		}
		d.SetIsNew(isNew)
		return nil
	}

	if d.values == nil {
		d.values = make(map[string]any)
	}
	d.values[key] = value
	d.changed = true
	return nil
}

// SetEntry is Set for entries whose name comes from loosely-typed input,
// such as a decoded YAML mapping. A name that is not a string fails with a
// ClientError wrapping ErrInvalidArgument.
func (d *Document) SetEntry(key any, value any) error {
	name, ok := key.(string)
	if !ok {
		return clientError("set", fmt.Sprint(key),
			fmt.Errorf("%w: entry name must be a string, got %T", ErrInvalidArgument, key))
	}
	return d.Set(name, value)
}

// Unset removes the attribute stored under key. Removing an existing
// attribute marks the document as changed. Reserved entries are not
// attributes and are ignored.
func (d *Document) Unset(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	d.changed = true
}

// InternalID returns the document handle as "{collection}/{key}", or "" if
// it is not set.
func (d *Document) InternalID() string {
	return d.id.String()
}

// SetInternalID sets the document handle. The handle can only be set once
// and must have the form "{collection}/{key}".
func (d *Document) SetInternalID(id string) error {
	if !d.id.IsZero() {
		return clientError("setInternalId", EntryID,
			fmt.Errorf("%w: cannot replace %q with %q", ErrIDAlreadySet, d.id, id))
	}

	h, err := docid.ParseHandle(id)
	if err != nil {
		return clientError("setInternalId", EntryID, fmt.Errorf("%w: %w", ErrInvalidID, err))
	}
	d.id = h
	return nil
}

// InternalKey returns the document key, or "" if it is not set.
func (d *Document) InternalKey() string {
	return d.key
}

// SetInternalKey sets the document key. The key can only be set once and
// must not contain the "/" separator.
func (d *Document) SetInternalKey(key string) error {
	if d.key != "" {
		return clientError("setInternalKey", EntryKey,
			fmt.Errorf("%w: cannot replace %q with %q", ErrKeyAlreadySet, d.key, key))
	}

	if err := docid.ValidateKey(key); err != nil {
		return clientError("setInternalKey", EntryKey, fmt.Errorf("%w: %w", ErrInvalidKey, err))
	}
	d.key = key
	return nil
}

// Handle is an alias for InternalID.
func (d *Document) Handle() string {
	return d.InternalID()
}

// ID returns the key segment of the document handle, or "" if the handle is
// not set.
func (d *Document) ID() string {
	return d.id.Key()
}

// CollectionID returns the collection segment of the document handle, or ""
// if the handle is not set.
func (d *Document) CollectionID() string {
	return d.id.Collection()
}

// Key is an alias for InternalKey.
func (d *Document) Key() string {
	return d.InternalKey()
}

// Revision returns the opaque revision token.
func (d *Document) Revision() string {
	return d.rev
}

// SetRevision replaces the revision token.
func (d *Document) SetRevision(rev string) {
	d.rev = rev
}

// Changed reports whether attributes were modified since the flag was last
// cleared.
func (d *Document) Changed() bool {
	return d.changed
}

// SetChanged sets or clears the change flag.
func (d *Document) SetChanged(changed bool) {
	d.changed = changed
}

// IsNew reports whether the document has not been stored yet.
func (d *Document) IsNew() bool {
	return d.isNew
}

// SetIsNew sets the new-document flag.
func (d *Document) SetIsNew(isNew bool) {
	d.isNew = isNew
}

// HiddenAttributes returns a copy of the hidden attribute names.
func (d *Document) HiddenAttributes() []string {
	out := make([]string, len(d.hidden))
	copy(out, d.hidden)
	return out
}

// SetHiddenAttributes replaces the hidden attribute names.
func (d *Document) SetHiddenAttributes(names []string) {
	d.hidden = dedupe(names)
}

// Clone returns a detached copy of the document. The copy has no handle, key
// or revision; the change flag, new flag, hidden attributes and a shallow
// copy of the attributes are kept.
func (d *Document) Clone() *Document {
	values := make(map[string]any, len(d.values))
	for k, v := range d.values {
		values[k] = v
	}

	return &Document{
		isNew:   d.isNew,
		changed: d.changed,
		hidden:  d.HiddenAttributes(),
		values:  values,
	}
}

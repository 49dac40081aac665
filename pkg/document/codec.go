package document

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements json.Marshaler.
// The document is serialized as one object holding every attribute, hidden
// ones included, plus the "_id", "_key" and "_rev" entries that are set.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.All(AllOptions{
		IncludeInternals:       true,
		IgnoreHiddenAttributes: true,
	}))
}

// UnmarshalJSON implements json.Unmarshaler.
// The document is replaced by the decoded record. Hidden attribute names and
// the new flag are kept, and the decoded document is not marked as changed.
func (d *Document) UnmarshalJSON(data []byte) error {
	loaded, err := FromJSON(data, Options{HiddenAttributes: d.hidden, IsNew: d.isNew})
	if err != nil {
		return err
	}
	loaded.SetChanged(false)
	*d = *loaded
	return nil
}

// Scan implements sql.Scanner for reading a document from a JSON column.
func (d *Document) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = *NewWithOptions(Options{HiddenAttributes: d.hidden, IsNew: d.isNew})
		return nil
	case string:
		return d.UnmarshalJSON([]byte(v))
	case []byte:
		return d.UnmarshalJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into Document", value)
	}
}

// Value implements driver.Valuer for writing a document to a JSON column.
func (d *Document) Value() (driver.Value, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}
	return data, nil
}

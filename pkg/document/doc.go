// Package document implements the Document value object of a document store
// client.
//
// A Document carries identity fields (handle, key, revision), a new flag, a
// change flag and arbitrary attributes. Four reserved entry names route
// through Set to the identity fields:
//
//	"_id"    → SetInternalID  (set once, "{collection}/{key}")
//	"_key"   → SetInternalKey (set once, no "/")
//	"_rev"   → SetRevision
//	"_isNew" → SetIsNew
//
// Every other name is stored as an attribute and marks the document as
// changed.
//
// # Usage Examples
//
//	doc := document.New()
//	_ = doc.Set("title", "RFC-001")
//	doc.Changed() // true
//
//	// Load a stored record
//	doc, err := document.FromMap(map[string]any{
//	    "_id":   "rfcs/001",
//	    "_key":  "001",
//	    "_rev":  "_hV2oH--_",
//	    "title": "RFC-001",
//	}, document.Options{})
//
//	// Copy without identity
//	draft := doc.Clone()
//
// # Errors
//
// All validation failures are reported as *ClientError. The cause can be
// matched with errors.Is against ErrInvalidArgument, ErrIDAlreadySet,
// ErrKeyAlreadySet, ErrInvalidID, ErrInvalidKey and ErrInvalidValue.
package document

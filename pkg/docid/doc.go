// Package docid provides type-safe document identification for docmodel.
//
// A stored document is addressed by a handle made of two segments: the
// collection the document lives in and the document key, unique within that
// collection.
//
// # Core Concepts
//
//  1. Key: The document key (the "_key" entry). Keys use a restricted
//     alphabet and never contain the "/" separator.
//
//  2. Collection: The collection name. Letters, digits, "_" and "-".
//
//  3. Handle: Fully-qualified document reference, serialized as
//     "{collection}/{key}" (the "_id" entry).
//
// # Usage Examples
//
//	// Build a handle from its parts
//	h, err := docid.NewHandle("users", "alice")
//
//	// Parse from string
//	h, err := docid.ParseHandle("users/alice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h.Collection() // "users"
//	h.Key()        // "alice"
//
//	// Generate a key on the client
//	key := docid.NewKey()
//
// # Database Integration
//
// Handle implements sql.Scanner and driver.Valuer so it can be stored in a
// plain text column next to the JSON body of a document.
package docid

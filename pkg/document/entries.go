package document

// Reserved entry names. Setting one of these routes the value to an identity
// field instead of the attribute map.
const (
	// EntryID is the document handle ("{collection}/{key}").
	EntryID = "_id"

	// EntryKey is the document key.
	EntryKey = "_key"

	// EntryRev is the document revision.
	EntryRev = "_rev"

	// EntryIsNew is the new-document flag.
	EntryIsNew = "_isNew"

	// EntryHiddenAttributes names the hidden attributes in an options bag.
	EntryHiddenAttributes = "_hiddenAttributes"
)

// OptionHiddenAttributes is the plain (non-underscored) option name for
// hidden attributes.
const OptionHiddenAttributes = "hiddenAttributes"

type entryKind int

const (
	entryAttribute entryKind = iota
	entryID
	entryKey
	entryRev
	entryIsNew
)

var reservedEntries = map[string]entryKind{
	EntryID:    entryID,
	EntryKey:   entryKey,
	EntryRev:   entryRev,
	EntryIsNew: entryIsNew,
}

func kindOf(name string) entryKind {
	if k, ok := reservedEntries[name]; ok {
		return k
	}
	return entryAttribute
}

// IsReserved reports whether name is routed to an identity field by Set.
func IsReserved(name string) bool {
	return kindOf(name) != entryAttribute
}

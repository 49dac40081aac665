package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_JSON(t *testing.T) {
	t.Run("marshal includes internals and hidden attributes", func(t *testing.T) {
		doc := newStoredDocument(t)

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, map[string]any{
			EntryID:    "users/alice",
			EntryKey:   "alice",
			EntryRev:   "_hV2oH--_",
			"name":     "Alice",
			"password": "s3cret",
		}, decoded)
	})

	t.Run("round trip", func(t *testing.T) {
		doc := newStoredDocument(t)
		data, err := json.Marshal(doc)
		require.NoError(t, err)

		loaded := NewWithOptions(Options{HiddenAttributes: []string{"password"}})
		require.NoError(t, json.Unmarshal(data, loaded))

		assert.Equal(t, doc.InternalID(), loaded.InternalID())
		assert.Equal(t, doc.InternalKey(), loaded.InternalKey())
		assert.Equal(t, doc.Revision(), loaded.Revision())
		assert.Equal(t, doc.Attributes(), loaded.Attributes())
		assert.Equal(t, []string{"password"}, loaded.HiddenAttributes())
		assert.False(t, loaded.Changed())
	})

	t.Run("unmarshal replaces identity", func(t *testing.T) {
		doc := New()
		require.NoError(t, doc.SetInternalID("users/old"))

		require.NoError(t, json.Unmarshal([]byte(`{"_id":"users/new"}`), doc))
		assert.Equal(t, "users/new", doc.InternalID())
	})

	t.Run("unmarshal invalid record", func(t *testing.T) {
		doc := New()
		require.NoError(t, doc.Set("keep", true))

		err := json.Unmarshal([]byte(`{"_key":"a/b"}`), doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.Equal(t, true, doc.Get("keep"))
	})

	t.Run("embedded in another struct", func(t *testing.T) {
		type envelope struct {
			Doc *Document `json:"doc"`
		}
		var env envelope
		require.NoError(t, json.Unmarshal([]byte(`{"doc":{"_key":"k","a":"b"}}`), &env))
		require.NotNil(t, env.Doc)
		assert.Equal(t, "k", env.Doc.Key())
		assert.Equal(t, "b", env.Doc.Get("a"))
	})
}

func TestDocument_SQL(t *testing.T) {
	t.Run("value then scan", func(t *testing.T) {
		doc := newStoredDocument(t)

		v, err := doc.Value()
		require.NoError(t, err)

		loaded := New()
		require.NoError(t, loaded.Scan(v))
		assert.Equal(t, "users/alice", loaded.InternalID())
		assert.Equal(t, "s3cret", loaded.Get("password"))
	})

	t.Run("scan string", func(t *testing.T) {
		loaded := New()
		require.NoError(t, loaded.Scan(`{"a":"b"}`))
		assert.Equal(t, "b", loaded.Get("a"))
	})

	t.Run("scan nil resets", func(t *testing.T) {
		loaded := NewWithOptions(Options{HiddenAttributes: []string{"x"}})
		require.NoError(t, loaded.Set("a", 1))
		require.NoError(t, loaded.Scan(nil))
		assert.Empty(t, loaded.All(AllOptions{IgnoreHiddenAttributes: true}))
		assert.Equal(t, []string{"x"}, loaded.HiddenAttributes())
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		err := New().Scan(42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot scan int into Document")
	})
}

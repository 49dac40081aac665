package docid

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandle(t *testing.T) {
	t.Run("valid parts", func(t *testing.T) {
		h, err := NewHandle("users", "alice")
		require.NoError(t, err)
		assert.Equal(t, "users", h.Collection())
		assert.Equal(t, "alice", h.Key())
		assert.Equal(t, "users/alice", h.String())
	})

	t.Run("invalid collection", func(t *testing.T) {
		_, err := NewHandle("us ers", "alice")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidHandle)
		assert.ErrorIs(t, err, ErrInvalidCollection)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := NewHandle("users", "al ice")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidHandle)
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestParseHandle(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		collection string
		key        string
		wantErr    bool
	}{
		{"simple", "foo/bar", "foo", "bar", false},
		{"numeric key", "users/12345", "users", "12345", false},
		{"punctuated key", "users/a:b@c.d", "users", "a:b@c.d", false},
		{"empty", "", "", "", true},
		{"no separator", "foo", "", "", true},
		{"two separators", "foo/bar/baz", "", "", true},
		{"empty collection", "/bar", "", "", true},
		{"empty key", "foo/", "", "", true},
		{"only separator", "/", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHandle(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidHandle)
				assert.True(t, h.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.collection, h.Collection())
			assert.Equal(t, tt.key, h.Key())
			assert.Equal(t, tt.input, h.String())
		})
	}
}

func TestMustParseHandle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NotPanics(t, func() {
			h := MustParseHandle("foo/bar")
			assert.Equal(t, "bar", h.Key())
		})
	})

	t.Run("invalid panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParseHandle("foo")
		})
	})
}

func TestHandle_IsZeroAndEqual(t *testing.T) {
	var zero Handle
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	a := MustParseHandle("foo/bar")
	b := MustParseHandle("foo/bar")
	c := MustParseHandle("foo/baz")
	assert.False(t, a.IsZero())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestHandle_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(MustParseHandle("foo/bar"))
		require.NoError(t, err)
		assert.Equal(t, `"foo/bar"`, string(data))
	})

	t.Run("marshal zero", func(t *testing.T) {
		data, err := json.Marshal(Handle{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var h Handle
		require.NoError(t, json.Unmarshal([]byte(`"foo/bar"`), &h))
		assert.Equal(t, "foo", h.Collection())
	})

	t.Run("unmarshal null", func(t *testing.T) {
		h := MustParseHandle("foo/bar")
		require.NoError(t, json.Unmarshal([]byte(`null`), &h))
		assert.True(t, h.IsZero())
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var h Handle
		err := json.Unmarshal([]byte(`"foo"`), &h)
		assert.ErrorIs(t, err, ErrInvalidHandle)
	})

	t.Run("unmarshal non-string", func(t *testing.T) {
		var h Handle
		err := json.Unmarshal([]byte(`123`), &h)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "handle must be a string")
	})
}

func TestHandle_SQL(t *testing.T) {
	t.Run("scan string", func(t *testing.T) {
		var h Handle
		require.NoError(t, h.Scan("foo/bar"))
		assert.Equal(t, "foo/bar", h.String())
	})

	t.Run("scan bytes", func(t *testing.T) {
		var h Handle
		require.NoError(t, h.Scan([]byte("foo/bar")))
		assert.Equal(t, "bar", h.Key())
	})

	t.Run("scan nil", func(t *testing.T) {
		h := MustParseHandle("foo/bar")
		require.NoError(t, h.Scan(nil))
		assert.True(t, h.IsZero())
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var h Handle
		err := h.Scan(42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot scan int into Handle")
	})

	t.Run("value", func(t *testing.T) {
		v, err := MustParseHandle("foo/bar").Value()
		require.NoError(t, err)
		assert.Equal(t, "foo/bar", v)

		v, err = Handle{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"simple", "foo", false},
		{"digits", "123456", false},
		{"punctuation", "a_b-c:d.e@f(g)h+i,j=k;l$m!n*o'p%q", false},
		{"generated", NewKey(), false},
		{"max length", strings.Repeat("k", MaxKeyLength), false},
		{"empty", "", true},
		{"separator", "foo/bar", true},
		{"space", "foo bar", true},
		{"too long", strings.Repeat("k", MaxKeyLength+1), true},
		{"unicode", "schlüssel", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCollection(t *testing.T) {
	assert.NoError(t, ValidateCollection("users"))
	assert.NoError(t, ValidateCollection("_system_users-v2"))
	assert.ErrorIs(t, ValidateCollection(""), ErrInvalidCollection)
	assert.ErrorIs(t, ValidateCollection("foo.bar"), ErrInvalidCollection)
	assert.ErrorIs(t, ValidateCollection(strings.Repeat("c", MaxCollectionLength+1)), ErrInvalidCollection)
}

func TestNewKey(t *testing.T) {
	a := NewKey()
	b := NewKey()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
}

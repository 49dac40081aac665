package loader

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/docmodel/pkg/document"
)

func newTestLoader(t *testing.T, files map[string]string, opts document.Options) *Loader {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	l, err := New(Config{
		FS:      fs,
		Options: opts,
		Logger:  hclog.New(&hclog.LoggerOptions{Name: "test", Level: hclog.Off}),
	})
	require.NoError(t, err)
	return l
}

func TestNew(t *testing.T) {
	t.Run("requires filesystem", func(t *testing.T) {
		_, err := New(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filesystem is required")
	})

	t.Run("defaults logger", func(t *testing.T) {
		l, err := New(Config{FS: afero.NewMemMapFs()})
		require.NoError(t, err)
		assert.NotNil(t, l.logger)
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("docs/a.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = FormatFromPath("docs/a.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("docs/a.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoader_Load(t *testing.T) {
	files := map[string]string{
		"/docs/one.json":  `{"_id":"users/alice","_key":"alice","name":"Alice","password":"x"}`,
		"/docs/many.yaml": "- _key: a\n- _key: b\n",
		"/docs/bad.json":  `[{"_key":"ok"},{"_key":"a/b"}]`,
		"/docs/notes.txt": `{}`,
	}
	l := newTestLoader(t, files, document.Options{HiddenAttributes: []string{"password"}})

	t.Run("single json object", func(t *testing.T) {
		docs, err := l.Load("/docs/one.json", FormatAuto)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "users/alice", docs[0].Handle())
		assert.Equal(t, map[string]any{"name": "Alice"}, docs[0].Attributes())
	})

	t.Run("yaml list", func(t *testing.T) {
		docs, err := l.Load("/docs/many.yaml", FormatAuto)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "b", docs[1].Key())
	})

	t.Run("partial failure", func(t *testing.T) {
		docs, err := l.Load("/docs/bad.json", FormatAuto)
		require.Error(t, err)
		require.Len(t, docs, 1)
		assert.ErrorIs(t, err, document.ErrInvalidKey)
	})

	t.Run("explicit format overrides extension", func(t *testing.T) {
		docs, err := l.Load("/docs/notes.txt", FormatJSON)
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := l.Load("/docs/notes.txt", FormatAuto)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.Load("/docs/missing.json", FormatAuto)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading payload file")
	})
}

func TestLoader_LoadAll(t *testing.T) {
	files := map[string]string{
		"/a.json": `[{"_key":"k1"},{"_id":"nope"},{"_key":"a/b"}]`,
		"/b.yaml": "_key: k2\n",
	}
	l := newTestLoader(t, files, document.Options{})

	results, err := l.LoadAll([]string{"/a.json", "/b.yaml", "/c.json"}, FormatAuto)
	require.Error(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "/a.json", results[0].Path)
	assert.Len(t, results[0].Documents, 1)
	assert.Len(t, results[1].Documents, 1)
	assert.Empty(t, results[2].Documents)

	errs := Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "/a.json: document 1")
	assert.Contains(t, errs[1].Error(), "/a.json: document 2")
	assert.Contains(t, errs[2].Error(), "/c.json: error reading payload file")
}

func TestErrors(t *testing.T) {
	assert.Nil(t, Errors(nil))

	plain := errors.New("plain")
	assert.Equal(t, []error{plain}, Errors(plain))
}

package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
groups:
  - name: doc
    fields:
      - name: title
        type: text
        analyzer: standard
      - name: user
        properties:
          - name: name
            type: keyword
    aliases:
      heading: title
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Groups, 1)

	g := f.Groups[0]
	assert.Equal(t, "doc", g.Name)
	assert.Equal(t, []string{"title", "user"}, g.Fields.Names())

	// Field with analyzer
	assert.Equal(t, "text", g.Fields[0].Type)
	assert.Equal(t, "standard", g.Fields[0].Analyzer)

	// Object type is implied by properties
	assert.Equal(t, TypeObject, g.Fields[1].Type)
	require.Len(t, g.Fields[1].Properties, 1)
	assert.Equal(t, "keyword", g.Fields[1].Properties[0].Type)

	// Alias short form
	require.Len(t, g.Aliases, 1)
	assert.Equal(t, AliasDef{Name: "heading", Path: "title"}, g.Aliases[0])
	assert.True(t, g.Aliases.Contains("heading"))
	assert.False(t, g.Aliases.Contains("title"))
}

func TestParse_ShortFieldForm(t *testing.T) {
	yaml := `
groups:
  - name: doc
    fields:
      zeta: keyword
      alpha:
        type: text
        analyzer: english
      user:
        properties:
          name: keyword
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version, "version defaults to 1")

	fields := f.Groups[0].Fields
	assert.Equal(t, []string{"zeta", "alpha", "user"}, fields.Names(), "document order is kept")
	assert.Equal(t, "keyword", fields[0].Type)
	assert.Equal(t, "english", fields[1].Analyzer)
	assert.Equal(t, TypeObject, fields[2].Type)
	assert.Equal(t, "name", fields[2].Properties[0].Name)
}

func TestParse_AliasListForm(t *testing.T) {
	yaml := `
groups:
  - name: doc
    aliases:
      - name: heading
        path: title
      - name: caption
        path: title
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, AliasList{
		{Name: "heading", Path: "title"},
		{Name: "caption", Path: "title"},
	}, f.Groups[0].Aliases)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "empty type in short form",
			yaml: "groups:\n  - name: doc\n    fields:\n      title: \"\"\n",
			want: "empty type",
		},
		{
			name: "conflicting name",
			yaml: "groups:\n  - name: doc\n    fields:\n      title:\n        name: other\n        type: text\n",
			want: "conflicting name",
		},
		{
			name: "fields as scalar",
			yaml: "groups:\n  - name: doc\n    fields: title\n",
			want: "expected field list or mapping",
		},
		{
			name: "alias target as list",
			yaml: "groups:\n  - name: doc\n    aliases:\n      heading: [title]\n",
			want: "expected target path",
		},
		{
			name: "broken yaml",
			yaml: "groups: [\n",
			want: "failed to parse mapping YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "mapping.yaml"))
	require.NoError(t, err)

	require.Len(t, f.Groups, 2)
	assert.Equal(t, "doc", f.Groups[0].Name)
	assert.Equal(t, "metrics", f.Groups[1].Name)
	assert.Equal(t, []string{"took", "score", "internal", "attrs.extra"}, f.Groups[1].Fields.Names())

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}

func TestWriteFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "mapping.yaml"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "heading: title")

	again, err := LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestLoadGroups(t *testing.T) {
	groups, err := LoadGroups(filepath.Join("testdata", "mapping.yaml"))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	_, err = LoadGroups(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

package mapping

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-lookup/internal/fieldtype"
)

func TestCompile(t *testing.T) {
	groups, err := LoadGroups(filepath.Join("testdata", "mapping.yaml"))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	doc, metrics := groups[0], groups[1]

	assert.Equal(t, "doc", doc.Name)

	if diff := cmp.Diff(
		[]string{"title", "body", "labels", "user.name", "user.email", "created_at"},
		doc.FieldNames(),
	); diff != "" {
		t.Errorf("doc field names mismatch (-want +got):\n%s", diff)
	}

	wantAliases := []fieldtype.Alias{
		{Name: "user.login", Path: "user.name"},
		{Name: "heading", Path: "title"},
		{Name: "tags", Path: "labels"},
	}
	if diff := cmp.Diff(wantAliases, doc.Aliases); diff != "" {
		t.Errorf("doc aliases mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "metrics", metrics.Name)

	if diff := cmp.Diff([]string{"took", "score", "internal", "attrs.extra"}, metrics.FieldNames()); diff != "" {
		t.Errorf("metrics field names mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []fieldtype.Alias{{Name: "duration", Path: "took"}}, metrics.Aliases)
}

func TestCompile_FieldOptions(t *testing.T) {
	groups, err := LoadGroups(filepath.Join("testdata", "mapping.yaml"))
	require.NoError(t, err)

	byName := make(map[string]fieldtype.FieldType)
	for _, g := range groups {
		for _, ft := range g.Fields {
			byName[ft.Name()] = ft
		}
	}

	title, ok := byName["title"].(*fieldtype.Type)
	require.True(t, ok)
	assert.Equal(t, fieldtype.KindText, title.Kind())
	assert.Equal(t, "standard", title.Analyzer())

	email, ok := byName["user.email"].(*fieldtype.Type)
	require.True(t, ok)
	assert.False(t, email.HasDocValues())

	created, ok := byName["created_at"].(*fieldtype.Type)
	require.True(t, ok)
	unit, ok := created.Meta("unit")
	assert.True(t, ok)
	assert.Equal(t, "ms", unit)

	internal := byName["internal"]
	assert.False(t, internal.Searchable())

	labels, ok := byName["labels"].(*fieldtype.FlatObject)
	require.True(t, ok)
	assert.Equal(t, 10, labels.DepthLimit())

	extra, ok := byName["attrs.extra"].(*fieldtype.FlatObject)
	require.True(t, ok)
	assert.Equal(t, fieldtype.DefaultDepthLimit, extra.DepthLimit())

	var _ fieldtype.Container = labels
}

func TestCompile_Invalid(t *testing.T) {
	f := mustParse(t, `
groups:
  - name: doc
    fields: {title: txt}
    aliases: {heading: title}
`)

	groups, err := Compile(f)
	require.Error(t, err)
	assert.Nil(t, groups)
	require.ErrorIs(t, err, ErrInvalidMapping)
	assert.Contains(t, err.Error(), "unknown_field_type")
}

func TestNewFieldType(t *testing.T) {
	indexed := false

	ft, err := NewFieldType("a.b", &FieldDef{Type: "keyword", Index: &indexed})
	require.NoError(t, err)
	assert.Equal(t, "a.b", ft.Name())
	assert.Equal(t, fieldtype.KindKeyword, ft.Kind())
	assert.False(t, ft.Searchable())

	ft, err = NewFieldType("obj", &FieldDef{Type: "flat_object", SplitQueriesOnWhitespace: true})
	require.NoError(t, err)

	flat, ok := ft.(*fieldtype.FlatObject)
	require.True(t, ok)
	assert.True(t, flat.SplitQueriesOnWhitespace())

	_, err = NewFieldType("k", &FieldDef{Type: "keyed"})
	require.Error(t, err)

	_, err = NewFieldType("x", &FieldDef{Type: "nope"})
	require.Error(t, err)
}

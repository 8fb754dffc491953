package mapping

import (
	"errors"
	"slices"

	"field-lookup/internal/fieldtype"
)

// ErrInvalidMapping is returned when a mapping definition fails validation.
var ErrInvalidMapping = errors.New("invalid mapping")

// Mapping-only type names. Every other type name must parse as a
// fieldtype.Kind.
const (
	// TypeObject groups properties under a common dotted prefix.
	TypeObject = "object"
	// TypeAlias declares an alias in place; Path names its target.
	TypeAlias = "alias"
)

// File represents the root of a YAML mapping definition file.
type File struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Groups are applied in order, one lookup update per group.
	Groups []GroupDef `yaml:"groups"`
}

// GroupDef declares the fields and aliases of one type group.
type GroupDef struct {
	// Name is the type group identifier, e.g. "doc".
	Name string `yaml:"name"`

	// Fields are the top-level fields of the group.
	Fields FieldList `yaml:"fields,omitempty"`

	// Aliases maps alias names to concrete field paths.
	Aliases AliasList `yaml:"aliases,omitempty"`
}

// FieldDef declares a single field.
type FieldDef struct {
	// Name of the field relative to its parent object. May contain dots.
	Name string `yaml:"name"`

	// Type is a fieldtype.Kind name, "object" or "alias".
	Type string `yaml:"type,omitempty"`

	// Analyzer used for text analysis.
	Analyzer string `yaml:"analyzer,omitempty"`

	// Index controls searchability. Defaults to true.
	Index *bool `yaml:"index,omitempty"`

	// DocValues controls columnar storage. Defaults to true.
	DocValues *bool `yaml:"doc_values,omitempty"`

	// DepthLimit bounds key depth of a flat_object field.
	DepthLimit int `yaml:"depth_limit,omitempty"`

	// SplitQueriesOnWhitespace applies to flat_object fields.
	SplitQueriesOnWhitespace bool `yaml:"split_queries_on_whitespace,omitempty"`

	// Meta is free-form metadata attached to the field type.
	Meta map[string]string `yaml:"meta,omitempty"`

	// Path is the target of an alias field (full dotted name).
	Path string `yaml:"path,omitempty"`

	// Properties are the sub-fields of an object field.
	Properties FieldList `yaml:"properties,omitempty"`
}

// IsObject reports whether the field only groups properties.
func (f *FieldDef) IsObject() bool { return f.Type == TypeObject }

// IsAlias reports whether the field declares an alias.
func (f *FieldDef) IsAlias() bool { return f.Type == TypeAlias }

// FieldList is an ordered list of field definitions. See UnmarshalYAML for
// the accepted forms.
type FieldList []FieldDef

// Names returns the field names in order.
func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i := range l {
		names[i] = l[i].Name
	}

	return names
}

// AliasDef is one alias declaration.
type AliasDef struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// AliasList is an ordered list of alias declarations. See UnmarshalYAML for
// the accepted forms.
type AliasList []AliasDef

// Contains reports whether an alias called name is declared.
func (l AliasList) Contains(name string) bool {
	return slices.ContainsFunc(l, func(a AliasDef) bool { return a.Name == name })
}

// Group is a compiled type group: the input of one lookup update.
type Group struct {
	Name    string
	Fields  []fieldtype.FieldType
	Aliases []fieldtype.Alias
}

// FieldNames returns the concrete names of the group's fields in order.
func (g *Group) FieldNames() []string {
	names := make([]string, len(g.Fields))
	for i, ft := range g.Fields {
		names[i] = ft.Name()
	}

	return names
}

package fieldtype

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FieldType is an immutable descriptor of how a named field is indexed and
// searched.
type FieldType interface {
	// Name returns the concrete (non-aliased) field name, e.g. "user.name".
	Name() string
	// Kind returns the mapping type of the field.
	Kind() Kind
	// Searchable reports whether the field can be queried.
	Searchable() bool
	// Equal reports whether other describes the same field identically.
	Equal(other FieldType) bool
}

// Container is a FieldType that accepts arbitrary dynamic keys beneath it
// and synthesizes a descriptor for each of them on demand.
type Container interface {
	FieldType
	// KeyedFieldType returns the descriptor for key beneath the container.
	// The empty key yields the container's generic keyed descriptor.
	KeyedFieldType(key string) FieldType
}

// Option configures a descriptor at construction.
type Option func(*params)

// WithAnalyzer sets the analyzer used for text analysis.
func WithAnalyzer(name string) Option {
	return func(p *params) { p.analyzer = name }
}

// WithIndexed controls whether the field is searchable.
func WithIndexed(indexed bool) Option {
	return func(p *params) { p.indexed = indexed }
}

// WithDocValues controls whether the field keeps columnar doc values.
func WithDocValues(enabled bool) Option {
	return func(p *params) { p.docValues = enabled }
}

// WithMeta attaches free-form metadata. The map is copied.
func WithMeta(meta map[string]string) Option {
	return func(p *params) {
		if len(meta) == 0 {
			p.meta = nil
			return
		}
		p.meta = maps.Clone(meta)
	}
}

// WithDepthLimit sets the maximum key depth accepted by a flat object.
func WithDepthLimit(limit int) Option {
	return func(p *params) { p.depthLimit = limit }
}

// WithSplitQueriesOnWhitespace makes flat object queries split on whitespace.
func WithSplitQueriesOnWhitespace(split bool) Option {
	return func(p *params) { p.splitOnWhitespace = split }
}

// DefaultDepthLimit is the flat object depth limit when none is configured.
const DefaultDepthLimit = 20

type params struct {
	analyzer          string
	indexed           bool
	docValues         bool
	meta              map[string]string
	depthLimit        int
	splitOnWhitespace bool
}

func newParams(opts []Option) params {
	p := params{
		indexed:    true,
		docValues:  true,
		depthLimit: DefaultDepthLimit,
	}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

func (p params) equal(o params) bool {
	return p.analyzer == o.analyzer &&
		p.indexed == o.indexed &&
		p.docValues == o.docValues &&
		p.depthLimit == o.depthLimit &&
		p.splitOnWhitespace == o.splitOnWhitespace &&
		maps.Equal(p.meta, o.meta)
}

func (p params) describe(b *strings.Builder) {
	if p.analyzer != "" {
		fmt.Fprintf(b, " analyzer=%s", p.analyzer)
	}

	if !p.indexed {
		b.WriteString(" indexed=false")
	}

	if !p.docValues {
		b.WriteString(" doc_values=false")
	}

	for _, k := range slices.Sorted(maps.Keys(p.meta)) {
		fmt.Fprintf(b, " meta.%s=%s", k, p.meta[k])
	}
}

// Type is the descriptor of an ordinary (non-container) field.
type Type struct {
	name string
	kind Kind
	params
}

// New creates a descriptor for the field name of the given kind.
func New(name string, kind Kind, opts ...Option) *Type {
	return &Type{name: name, kind: kind, params: newParams(opts)}
}

// Name returns the concrete field name.
func (t *Type) Name() string { return t.name }

// Kind returns the field kind.
func (t *Type) Kind() Kind { return t.kind }

// Searchable reports whether the field is indexed.
func (t *Type) Searchable() bool { return t.indexed }

// Analyzer returns the configured analyzer, or "" when none is set.
func (t *Type) Analyzer() string { return t.analyzer }

// HasDocValues reports whether the field keeps doc values.
func (t *Type) HasDocValues() bool { return t.docValues }

// Meta returns the metadata value for key.
func (t *Type) Meta(key string) (string, bool) {
	v, ok := t.meta[key]
	return v, ok
}

// Equal reports whether other is a Type with the same name, kind and parameters.
func (t *Type) Equal(other FieldType) bool {
	o, ok := other.(*Type)
	if !ok || o == nil || t == nil {
		return false
	}

	if t == o {
		return true
	}

	return t.name == o.name && t.kind == o.kind && t.params.equal(o.params)
}

// String returns a short human-readable description.
func (t *Type) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s[%s", t.name, t.kind)
	t.describe(&b)
	b.WriteByte(']')

	return b.String()
}

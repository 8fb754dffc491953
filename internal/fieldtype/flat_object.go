package fieldtype

import (
	"fmt"
	"strings"
)

// KeyedSuffix is appended to a flat object's name to form the name of its
// keyed descriptors.
const KeyedSuffix = "._keyed"

// FlatObject is a container field: the whole JSON object below it is indexed
// as keyword values, and any dotted key beneath it can be queried.
type FlatObject struct {
	name string
	params
}

var _ Container = (*FlatObject)(nil)

// NewFlatObject creates a flat object descriptor for the field name.
func NewFlatObject(name string, opts ...Option) *FlatObject {
	return &FlatObject{name: name, params: newParams(opts)}
}

// Name returns the concrete field name.
func (f *FlatObject) Name() string { return f.name }

// Kind returns KindFlatObject.
func (f *FlatObject) Kind() Kind { return KindFlatObject }

// Searchable reports whether the field is indexed.
func (f *FlatObject) Searchable() bool { return f.indexed }

// DepthLimit returns the maximum accepted key depth.
func (f *FlatObject) DepthLimit() int { return f.depthLimit }

// SplitQueriesOnWhitespace reports whether full-text queries split on whitespace.
func (f *FlatObject) SplitQueriesOnWhitespace() bool { return f.splitOnWhitespace }

// KeyedFieldType synthesizes the descriptor for key beneath this field.
func (f *FlatObject) KeyedFieldType(key string) FieldType {
	return &Keyed{root: f.name, key: key, params: f.params}
}

// Equal reports whether other is a FlatObject with the same name and parameters.
func (f *FlatObject) Equal(other FieldType) bool {
	o, ok := other.(*FlatObject)
	if !ok || o == nil || f == nil {
		return false
	}

	if f == o {
		return true
	}

	return f.name == o.name && f.params.equal(o.params)
}

// String returns a short human-readable description.
func (f *FlatObject) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s[%s depth_limit=%d", f.name, KindFlatObject, f.depthLimit)
	f.describe(&b)
	b.WriteByte(']')

	return b.String()
}

// Keyed is the synthesized descriptor for one key beneath a flat object.
type Keyed struct {
	root string
	key  string
	params
}

// Name returns the keyed name of the parent flat object ("<root>._keyed").
func (k *Keyed) Name() string { return k.root + KeyedSuffix }

// Kind returns KindKeyed.
func (k *Keyed) Kind() Kind { return KindKeyed }

// Searchable reports whether the parent flat object is indexed.
func (k *Keyed) Searchable() bool { return k.indexed }

// RootName returns the name of the flat object the key belongs to.
func (k *Keyed) RootName() string { return k.root }

// Key returns the dotted key beneath the flat object, "" for the root.
func (k *Keyed) Key() string { return k.key }

// Equal reports whether other targets the same key of an identical flat object.
func (k *Keyed) Equal(other FieldType) bool {
	o, ok := other.(*Keyed)
	if !ok || o == nil || k == nil {
		return false
	}

	return k.root == o.root && k.key == o.key && k.params.equal(o.params)
}

// String returns a short human-readable description.
func (k *Keyed) String() string {
	if k.key == "" {
		return fmt.Sprintf("%s[%s]", k.Name(), KindKeyed)
	}

	return fmt.Sprintf("%s[%s key=%s]", k.Name(), KindKeyed, k.key)
}

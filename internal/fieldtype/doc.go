// Package fieldtype defines the immutable field-type descriptors that the
// lookup index resolves names to.
//
// Key types:
//   - FieldType: a descriptor identified by its concrete field name
//   - Container: a FieldType that synthesizes descriptors for arbitrary keys
//     beneath it (flat object fields)
//   - Type, FlatObject, Keyed: the concrete descriptor implementations
//   - Alias: an alternate name pointing at a concrete field path
//
// Descriptors are never mutated after construction. Equality is structural
// and is what the lookup uses to decide whether an update changes an entry.
package fieldtype

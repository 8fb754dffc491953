// Package lookup provides Lookup, the immutable per-version index that
// resolves field names to field-type descriptors.
//
// A Lookup holds three persistent maps: concrete name to descriptor, alias
// name to concrete path, and container (flat object) name to container
// descriptor. Every update returns a new Lookup that shares unchanged
// entries with its parent; the parent stays valid and keeps answering with
// its own contents.
//
// # Resolution
//
// Get first substitutes an alias, then looks the name up directly. When the
// name is unknown and containers exist, it is split at each '.' from the
// left, no deeper than the deepest registered container or container alias,
// and the first prefix naming a container wins; the rest of the name becomes
// the key the container synthesizes a descriptor for.
//
// # Thread Safety
//
// A Lookup is never mutated after construction, so any number of goroutines
// may read it. WithAdded does not modify its receiver; publishing one of
// several concurrently built results is the caller's concern.
package lookup

package lookup

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"

	"field-lookup/internal/fieldtype"
	"field-lookup/internal/match"
)

// Lookup is an immutable index of field types by name.
type Lookup struct {
	fullNameToFieldType *immutable.Map[string, fieldtype.FieldType]
	aliasToConcreteName *immutable.Map[string, string]
	containers          *immutable.Map[string, fieldtype.Container]
	maxContainerDepth   int
}

// New returns an empty lookup.
func New() *Lookup {
	return &Lookup{
		fullNameToFieldType: immutable.NewMap[string, fieldtype.FieldType](nil),
		aliasToConcreteName: immutable.NewMap[string, string](nil),
		containers:          immutable.NewMap[string, fieldtype.Container](nil),
	}
}

// WithAdded returns a new lookup holding the union of l and the given field
// types and aliases, declared together under group. An existing field type
// or alias of the same name is replaced unless the new one is equal to it,
// in which case the existing entry is kept as is.
//
// group must be non-empty and must not be DefaultGroup.
func (l *Lookup) WithAdded(
	group string,
	fields []fieldtype.FieldType,
	aliases []fieldtype.Alias,
) (*Lookup, error) {
	if group == "" {
		return nil, fmt.Errorf("%w: type group must not be empty", ErrInvalidArgument)
	}

	if group == DefaultGroup {
		return nil, fmt.Errorf("%w: default mappings should not be added to the lookup", ErrInvalidArgument)
	}

	fullName := l.fullNameToFieldType
	aliasMap := l.aliasToConcreteName
	containers := l.containers

	for _, ft := range fields {
		name := ft.Name()

		if existing, ok := fullName.Get(name); !ok || !ft.Equal(existing) {
			fullName = fullName.Set(name, ft)
		}

		if c, ok := ft.(fieldtype.Container); ok {
			containers = containers.Set(name, c)
		}
	}

	for _, a := range aliases {
		if existing, ok := aliasMap.Get(a.Name); !ok || existing != a.Path {
			aliasMap = aliasMap.Set(a.Name, a.Path)
		}
	}

	return &Lookup{
		fullNameToFieldType: fullName,
		aliasToConcreteName: aliasMap,
		containers:          containers,
		maxContainerDepth:   maxContainerDepth(aliasMap, containers),
	}, nil
}

// maxContainerDepth returns the deepest name, alias or concrete, under
// which a container can be addressed.
func maxContainerDepth(
	aliases *immutable.Map[string, string],
	containers *immutable.Map[string, fieldtype.Container],
) int {
	depth := 0

	for itr := aliases.Iterator(); !itr.Done(); {
		aliasName, path, _ := itr.Next()
		if _, ok := containers.Get(path); ok {
			depth = max(depth, fieldtype.Depth(aliasName))
		}
	}

	for itr := containers.Iterator(); !itr.Done(); {
		name, _, _ := itr.Next()
		depth = max(depth, fieldtype.Depth(name))
	}

	return depth
}

// Get returns the field type registered for name, following an alias if
// name is one. Keyed sub-fields of flat objects, such as "labels.priority"
// for a flat object "labels", resolve to a synthesized keyed field type.
func (l *Lookup) Get(name string) (fieldtype.FieldType, bool) {
	concrete := l.concreteName(name)
	if ft, ok := l.fullNameToFieldType.Get(concrete); ok {
		return ft, true
	}

	if l.containers.Len() == 0 {
		return nil, false
	}

	return l.keyedFieldType(name)
}

// keyedFieldType resolves a name of the form "<container>.<key>", where the
// container part may be an alias. Only splits up to the maximum container
// depth are tried; the shortest container prefix wins.
func (l *Lookup) keyedFieldType(name string) (fieldtype.FieldType, bool) {
	dotIndex := -1
	depth := 0

	for {
		depth++
		if depth > l.maxContainerDepth {
			return nil, false
		}

		next := strings.IndexByte(name[dotIndex+1:], fieldtype.Separator)
		if next < 0 {
			return nil, false
		}

		dotIndex += next + 1

		parent := l.concreteName(name[:dotIndex])
		if c, ok := l.containers.Get(parent); ok {
			return c.KeyedFieldType(name[dotIndex+1:]), true
		}
	}
}

// concreteName returns the alias target of name, or name itself.
func (l *Lookup) concreteName(name string) string {
	if path, ok := l.aliasToConcreteName.Get(name); ok {
		return path
	}

	return name
}

// Resolve returns the concrete name that name stands for and whether name
// is an alias.
func (l *Lookup) Resolve(name string) (string, bool) {
	path, ok := l.aliasToConcreteName.Get(name)
	if !ok {
		return name, false
	}

	return path, true
}

// MatchNames returns the names of all field types and aliases matching the
// simple wildcard pattern, without duplicates, in sorted order.
func (l *Lookup) MatchNames(pattern string) []string {
	return l.MatchAnyNames([]string{pattern})
}

// MatchAnyNames is MatchNames for the union of several patterns.
func (l *Lookup) MatchAnyNames(patterns []string) []string {
	set := make(map[string]struct{})

	for ft := range l.All() {
		if match.SimpleAny(patterns, ft.Name()) {
			set[ft.Name()] = struct{}{}
		}
	}

	for itr := l.aliasToConcreteName.Iterator(); !itr.Done(); {
		aliasName, _, _ := itr.Next()
		if match.SimpleAny(patterns, aliasName) {
			set[aliasName] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(set))
}

// All yields every registered field type, followed by the root keyed field
// type of every flat object. The sequence can be iterated repeatedly.
func (l *Lookup) All() iter.Seq[fieldtype.FieldType] {
	return func(yield func(fieldtype.FieldType) bool) {
		for itr := l.fullNameToFieldType.Iterator(); !itr.Done(); {
			_, ft, _ := itr.Next()
			if !yield(ft) {
				return
			}
		}

		for itr := l.containers.Iterator(); !itr.Done(); {
			_, c, _ := itr.Next()
			if !yield(c.KeyedFieldType("")) {
				return
			}
		}
	}
}

// Aliases yields every alias name with its target path.
func (l *Lookup) Aliases() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for itr := l.aliasToConcreteName.Iterator(); !itr.Done(); {
			aliasName, path, _ := itr.Next()
			if !yield(aliasName, path) {
				return
			}
		}
	}
}

// Names returns every concrete field name and alias name, sorted. It is the
// candidate set for suggestions on unknown names.
func (l *Lookup) Names() []string {
	names := make([]string, 0, l.Len()+l.AliasCount())

	for itr := l.fullNameToFieldType.Iterator(); !itr.Done(); {
		name, _, _ := itr.Next()
		names = append(names, name)
	}

	for itr := l.aliasToConcreteName.Iterator(); !itr.Done(); {
		name, _, _ := itr.Next()
		names = append(names, name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// Len returns the number of concrete field types.
func (l *Lookup) Len() int { return l.fullNameToFieldType.Len() }

// AliasCount returns the number of aliases.
func (l *Lookup) AliasCount() int { return l.aliasToConcreteName.Len() }

// ContainerCount returns the number of flat object fields.
func (l *Lookup) ContainerCount() int { return l.containers.Len() }

// MaxContainerDepth returns the depth of the deepest container name or
// alias to a container.
func (l *Lookup) MaxContainerDepth() int { return l.maxContainerDepth }

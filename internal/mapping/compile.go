package mapping

import (
	"fmt"

	"field-lookup/internal/fieldtype"
)

// Compile validates f and turns every group into the field types and
// aliases of one lookup update, in file order.
func Compile(f *File) ([]Group, error) {
	diags := Validate(f)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}

	groups := make([]Group, 0, len(f.Groups))

	for i := range f.Groups {
		gd := &f.Groups[i]
		g := Group{Name: gd.Name}

		if err := compileFields(&g, "", gd.Fields); err != nil {
			return nil, fmt.Errorf("%w: group %q: %w", ErrInvalidMapping, gd.Name, err)
		}

		for _, a := range gd.Aliases {
			g.Aliases = append(g.Aliases, fieldtype.Alias{Name: a.Name, Path: a.Path})
		}

		groups = append(groups, g)
	}

	return groups, nil
}

func compileFields(g *Group, prefix string, fields FieldList) error {
	for i := range fields {
		def := &fields[i]
		path := JoinPath(prefix, def.Name)

		switch {
		case def.IsObject():
			if err := compileFields(g, path, def.Properties); err != nil {
				return err
			}
		case def.IsAlias():
			g.Aliases = append(g.Aliases, fieldtype.Alias{Name: path, Path: def.Path})
		default:
			ft, err := NewFieldType(path, def)
			if err != nil {
				return err
			}

			g.Fields = append(g.Fields, ft)
		}
	}

	return nil
}

// NewFieldType builds the descriptor for a leaf field definition whose full
// dotted name is path.
func NewFieldType(path string, def *FieldDef) (fieldtype.FieldType, error) {
	kind, err := fieldtype.ParseKind(def.Type)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", path, err)
	}

	var opts []fieldtype.Option

	if def.Analyzer != "" {
		opts = append(opts, fieldtype.WithAnalyzer(def.Analyzer))
	}

	if def.Index != nil {
		opts = append(opts, fieldtype.WithIndexed(*def.Index))
	}

	if def.DocValues != nil {
		opts = append(opts, fieldtype.WithDocValues(*def.DocValues))
	}

	if len(def.Meta) > 0 {
		opts = append(opts, fieldtype.WithMeta(def.Meta))
	}

	switch kind {
	case fieldtype.KindFlatObject:
		if def.DepthLimit > 0 {
			opts = append(opts, fieldtype.WithDepthLimit(def.DepthLimit))
		}

		if def.SplitQueriesOnWhitespace {
			opts = append(opts, fieldtype.WithSplitQueriesOnWhitespace(true))
		}

		return fieldtype.NewFlatObject(path, opts...), nil
	case fieldtype.KindKeyed:
		return nil, fmt.Errorf("field %q: type %q cannot be declared", path, def.Type)
	default:
		return fieldtype.New(path, kind, opts...), nil
	}
}

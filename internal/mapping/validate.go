package mapping

import (
	"fmt"
	"maps"
	"slices"

	"field-lookup/internal/common"
	"field-lookup/internal/diagnostic"
	"field-lookup/internal/fieldtype"
	"field-lookup/internal/lookup"
	"field-lookup/internal/match"
)

// maxSuggestions bounds the "did you mean" list of a diagnostic.
const maxSuggestions = 3

// aliasRef is an alias declaration located in the file.
type aliasRef struct {
	group string
	name  string
	path  string
}

// validator carries the names declared so far across the whole file.
type validator struct {
	res *diagnostic.Diagnostics

	fields  map[string]string // full field name -> group of last declaration
	objects map[string]struct{}
	aliases []aliasRef
}

// Validate checks a mapping definition and reports every problem found.
// Aliases are checked against the whole file, so a group may alias fields
// declared by an earlier or later group.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if common.IsEmpty(f.Groups) {
		res.AddWarning("no_groups", "mapping declares no groups", "", "")
		return res
	}

	v := &validator{
		res:     res,
		fields:  make(map[string]string),
		objects: make(map[string]struct{}),
	}

	seenGroups := make(map[string]struct{}, len(f.Groups))

	for i := range f.Groups {
		g := &f.Groups[i]

		switch g.Name {
		case "":
			res.AddError("group_name_missing", fmt.Sprintf("group #%d has no name", i+1), "", "")
			continue
		case lookup.DefaultGroup:
			res.AddError("reserved_group", fmt.Sprintf("group name %q is reserved", g.Name), g.Name, "")
			continue
		}

		if _, dup := seenGroups[g.Name]; dup {
			res.AddError("duplicate_group", fmt.Sprintf("duplicate group %q", g.Name), g.Name, "")
			continue
		}

		seenGroups[g.Name] = struct{}{}

		v.group(g)
	}

	v.checkAliases()

	return res
}

func (v *validator) group(g *GroupDef) {
	inGroup := make(map[string]struct{})
	v.fieldList(g.Name, "", g.Fields, inGroup)

	for i, a := range g.Aliases {
		if _, err := ParsePath(a.Name); err != nil {
			v.res.AddError("invalid_alias_name", err.Error(), g.Name, a.Name)
			continue
		}

		if g.Aliases[:i].Contains(a.Name) {
			v.res.AddError("duplicate_alias", fmt.Sprintf("duplicate alias %q", a.Name), g.Name, a.Name)
			continue
		}

		v.aliases = append(v.aliases, aliasRef{group: g.Name, name: a.Name, path: a.Path})
	}
}

func (v *validator) fieldList(group, prefix string, fields FieldList, inGroup map[string]struct{}) {
	for i := range fields {
		def := &fields[i]
		path := JoinPath(prefix, def.Name)

		if _, err := ParsePath(path); err != nil {
			v.res.AddError("invalid_field_name", err.Error(), group, path)
			continue
		}

		if def.Type == "" {
			v.res.AddError("field_type_missing", "field has no type", group, path)
			continue
		}

		switch {
		case def.IsObject():
			v.object(group, path, def, inGroup)
		case def.IsAlias():
			v.aliasField(group, path, def)
		default:
			v.leaf(group, path, def, inGroup)
		}
	}
}

func (v *validator) object(group, path string, def *FieldDef, inGroup map[string]struct{}) {
	if _, clash := v.fields[path]; clash {
		v.res.AddError("object_field_conflict",
			fmt.Sprintf("%q is declared both as an object and as a field", path), group, path)
		return
	}

	v.objects[path] = struct{}{}

	if common.IsEmpty(def.Properties) {
		v.res.AddWarning("empty_object", "object declares no properties", group, path)
		return
	}

	v.fieldList(group, path, def.Properties, inGroup)
}

func (v *validator) aliasField(group, path string, def *FieldDef) {
	if len(def.Properties) > 0 {
		v.res.AddError("properties_not_allowed", "alias fields cannot declare properties", group, path)
	}

	if def.Path == "" {
		v.res.AddError("alias_path_missing", "alias field has no path", group, path)
		return
	}

	v.aliases = append(v.aliases, aliasRef{group: group, name: path, path: def.Path})
}

func (v *validator) leaf(group, path string, def *FieldDef, inGroup map[string]struct{}) {
	kind, err := fieldtype.ParseKind(def.Type)
	if err != nil {
		v.res.AddErrorWithSuggestions("unknown_field_type", err.Error(), group, path,
			match.Suggest(def.Type, typeNames(), maxSuggestions).Names())
		return
	}

	if kind == fieldtype.KindKeyed {
		v.res.AddError("synthetic_field_type",
			fmt.Sprintf("type %q is derived from flat_object fields and cannot be declared", def.Type), group, path)
		return
	}

	if len(def.Properties) > 0 {
		v.res.AddError("properties_not_allowed",
			fmt.Sprintf("fields of type %q cannot declare properties", def.Type), group, path)
	}

	if def.DepthLimit < 0 {
		v.res.AddError("invalid_depth_limit", fmt.Sprintf("depth_limit must not be negative, got %d", def.DepthLimit),
			group, path)
	} else if def.DepthLimit > 0 && kind != fieldtype.KindFlatObject {
		v.res.AddWarning("depth_limit_ignored", "depth_limit only applies to flat_object fields", group, path)
	}

	if _, clash := v.objects[path]; clash {
		v.res.AddError("object_field_conflict",
			fmt.Sprintf("%q is declared both as an object and as a field", path), group, path)
		return
	}

	if _, dup := inGroup[path]; dup {
		v.res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", path), group, path)
		return
	}

	if prev, ok := v.fields[path]; ok {
		v.res.AddInfo("field_redefined", fmt.Sprintf("redefines the field declared in group %q", prev), group, path)
	}

	inGroup[path] = struct{}{}
	v.fields[path] = group
}

func (v *validator) checkAliases() {
	aliasNames := make(map[string]struct{}, len(v.aliases))
	for _, a := range v.aliases {
		aliasNames[a.name] = struct{}{}
	}

	var known []string

	for _, a := range v.aliases {
		if _, clash := v.fields[a.name]; clash {
			v.res.AddError("alias_shadows_field", fmt.Sprintf("alias %q has the same name as a field", a.name),
				a.group, a.name)
			continue
		}

		if a.path == a.name {
			v.res.AddError("alias_to_self", fmt.Sprintf("alias %q points at itself", a.name), a.group, a.name)
			continue
		}

		if _, ok := aliasNames[a.path]; ok {
			v.res.AddError("alias_to_alias", fmt.Sprintf("alias %q points at alias %q", a.name, a.path),
				a.group, a.name)
			continue
		}

		if _, ok := v.objects[a.path]; ok {
			v.res.AddError("alias_to_object", fmt.Sprintf("alias %q points at object %q", a.name, a.path),
				a.group, a.name)
			continue
		}

		if _, ok := v.fields[a.path]; !ok {
			if known == nil {
				known = slices.Sorted(maps.Keys(v.fields))
			}

			v.res.AddErrorWithSuggestions("alias_target_not_found",
				fmt.Sprintf("alias %q points at unknown field %q", a.name, a.path), a.group, a.name,
				match.Suggest(a.path, known, maxSuggestions).Names())
		}
	}
}

// typeNames returns every type name a field definition may use.
func typeNames() []string {
	names := []string{TypeObject, TypeAlias}

	for k := fieldtype.Kind(1); int(k) < fieldtype.KindTotal; k++ {
		if k != fieldtype.KindKeyed {
			names = append(names, k.String())
		}
	}

	return names
}

package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- FieldList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for FieldList.
// Accepts:
//   - A list of definitions: [{name: title, type: text}]
//   - A mapping keyed by name, with a type or a definition as value:
//     {title: text, user: {properties: {name: keyword}}}
//
// The mapping form keeps document order.
func (l *FieldList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var defs []FieldDef

		err := node.Decode(&defs)
		if err != nil {
			return err
		}

		*l = defs

		return nil

	case yaml.MappingNode:
		defs := make(FieldList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			def, err := decodeNamedField(keyNode.Value, valNode)
			if err != nil {
				return err
			}

			defs = append(defs, def)
		}

		*l = defs

		return nil

	default:
		return fmt.Errorf("line %d: expected field list or mapping, got %v", node.Line, node.Kind)
	}
}

// decodeNamedField decodes the value of one entry of the short field form.
func decodeNamedField(name string, node *yaml.Node) (FieldDef, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var typ string

		err := node.Decode(&typ)
		if err != nil {
			return FieldDef{}, err
		}

		if typ == "" {
			return FieldDef{}, fmt.Errorf("line %d: field %q: empty type", node.Line, name)
		}

		return FieldDef{Name: name, Type: typ}, nil

	case yaml.MappingNode:
		var def FieldDef

		err := node.Decode(&def)
		if err != nil {
			return FieldDef{}, err
		}

		if def.Name == "" {
			def.Name = name
		} else if def.Name != name {
			return FieldDef{}, fmt.Errorf("line %d: field %q: conflicting name %q", node.Line, name, def.Name)
		}

		return def, nil

	default:
		return FieldDef{}, fmt.Errorf("line %d: field %q: expected type or definition, got %v",
			node.Line, name, node.Kind)
	}
}

// --- AliasList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for AliasList.
// Accepts:
//   - A mapping of alias name to path: {heading: title}
//   - A list of entries: [{name: heading, path: title}]
func (l *AliasList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		defs := make(AliasList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if valNode.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: alias %q: expected target path, got %v",
					valNode.Line, keyNode.Value, valNode.Kind)
			}

			defs = append(defs, AliasDef{Name: keyNode.Value, Path: valNode.Value})
		}

		*l = defs

		return nil

	case yaml.SequenceNode:
		var defs []AliasDef

		err := node.Decode(&defs)
		if err != nil {
			return err
		}

		*l = defs

		return nil

	default:
		return fmt.Errorf("line %d: expected alias mapping or list, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for AliasList.
// Outputs the short mapping form, in declaration order.
func (l AliasList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, a := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Path},
		)
	}

	return node, nil
}

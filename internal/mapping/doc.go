// Package mapping provides the YAML mapping definition format, its
// validation, and compilation into field types and aliases grouped by type
// group, ready to be added to a lookup.
//
// # Schema Overview
//
//	version: "1"
//	groups:
//	  - name: doc
//	    fields:
//	      - name: title
//	        type: text
//	        analyzer: standard
//	      - name: labels
//	        type: flat_object
//	        depth_limit: 10
//	      - name: user
//	        properties:            # type: object is implied
//	          - name: name
//	            type: keyword
//	          - name: login
//	            type: alias
//	            path: user.name
//	    aliases:
//	      heading: title
//
// The fields list also accepts the short mapping form
//
//	fields:
//	  title: text
//	  user:
//	    properties:
//	      name: keyword
//
// and aliases accept either a {name: path} mapping or a list of
// {name, path} entries.
//
// # Compilation
//
// Objects are not field types: their properties are flattened into dotted
// names ("user.name"). Fields of type alias, and entries of a group's
// aliases section, become aliases. Groups compile in file order; a later
// group redefining a field replaces it, as a later lookup update would.
//
// # Validation
//
// Validate collects every problem instead of stopping at the first one:
// missing or reserved group names, unknown types (with suggestions), bad
// field names, duplicate fields, and aliases that point nowhere, at other
// aliases or at objects.
package mapping

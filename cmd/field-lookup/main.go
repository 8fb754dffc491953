// Package main provides the CLI entrypoint for field-lookup.
//
// field-lookup loads a YAML field mapping into a lookup and answers
// questions about it:
//   - get: resolve field names, following aliases and flat object keys
//   - match: list the names matching a wildcard pattern
//   - list, stats, dump: inspect the compiled lookup
//   - validate: report problems in a mapping file
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

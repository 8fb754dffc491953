package main

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"field-lookup/internal/fieldtype"
	"field-lookup/internal/mapping"
)

// maxSuggestions bounds the "did you mean" list printed for unknown names.
const maxSuggestions = 3

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME...",
		Short: "Resolve field names to their field types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			l := reg.Current().Lookup
			missing := 0

			for _, name := range args {
				ft, ok := reg.Get(cmd.Context(), name)
				if ok {
					if target, isAlias := l.Resolve(name); isAlias {
						fmt.Fprintf(out, "%s (alias of %s) -> %v\n", name, target, ft)
					} else {
						fmt.Fprintf(out, "%s -> %v\n", name, ft)
					}

					continue
				}

				missing++

				suggestions := reg.Suggest(cmd.Context(), name, maxSuggestions).Names()
				if len(suggestions) > 0 {
					fmt.Fprintf(out, "%s: not found (did you mean %s?)\n", name, strings.Join(suggestions, ", "))
				} else {
					fmt.Fprintf(out, "%s: not found\n", name)
				}
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d names not found", missing, len(args))
			}

			return nil
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN...",
		Short: "List field and alias names matching any of the '*' wildcard patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			for _, name := range reg.MatchNames(cmd.Context(), args...) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var withAliases bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every field type of the mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			l := reg.Current().Lookup
			out := cmd.OutOrStdout()

			fields := slices.SortedFunc(l.All(), func(x, y fieldtype.FieldType) int {
				return cmp.Compare(x.Name(), y.Name())
			})

			for _, ft := range fields {
				fmt.Fprintf(out, "%s\t%s\n", ft.Name(), ft.Kind())
			}

			if withAliases {
				for _, alias := range sortedAliases(l.Aliases()) {
					fmt.Fprintf(out, "%s\talias\n", alias)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withAliases, "aliases", false, "also list aliases with their targets")

	return cmd
}

func sortedAliases(seq iter.Seq2[string, string]) []fieldtype.Alias {
	var aliases []fieldtype.Alias
	for name, path := range seq {
		aliases = append(aliases, fieldtype.Alias{Name: name, Path: path})
	}

	slices.SortFunc(aliases, func(x, y fieldtype.Alias) int {
		return cmp.Compare(x.Name, y.Name)
	})

	return aliases
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a mapping file and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.loadFile()
			if err != nil {
				return err
			}

			res := mapping.Validate(f)
			out := cmd.OutOrStdout()

			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if res.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", a.mappingPath, len(res.Errors))
			}

			fmt.Fprintf(out, "%s: ok (%d warning(s))\n", a.mappingPath, len(res.Warnings))

			return nil
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump NAME",
		Short: "Dump the resolved field type of a name in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			ft, ok := reg.Get(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("%s: not found", args[0])
			}

			cfg := spew.ConfigState{
				Indent:                  "  ",
				DisableMethods:          true,
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				SortKeys:                true,
			}
			cfg.Fdump(cmd.OutOrStdout(), ft)

			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print counts of the compiled lookup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			v := reg.Current()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "version:             %s\n", v.ID)
			fmt.Fprintf(out, "seq:                 %d\n", v.Seq)
			fmt.Fprintf(out, "fields:              %d\n", v.Lookup.Len())
			fmt.Fprintf(out, "aliases:             %d\n", v.Lookup.AliasCount())
			fmt.Fprintf(out, "containers:          %d\n", v.Lookup.ContainerCount())
			fmt.Fprintf(out, "max container depth: %d\n", v.Lookup.MaxContainerDepth())

			return nil
		},
	}
}

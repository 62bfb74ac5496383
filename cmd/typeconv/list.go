package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/typeconv/pkg/typeconv/builtin"
)

func listCmd(configPath *string) *cobra.Command {
	var (
		kind      string
		showTypes bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registries and their converters",
		Long:  `List each registry kind with its converters in registration order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if showTypes {
				types := builtin.Types()
				for _, name := range slices.Sorted(maps.Keys(types)) {
					fmt.Fprintf(out, "%-10s %s\n", name, types[name])
				}
				return nil
			}

			m, err := loadManager(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			kinds := m.Kinds()
			if kind != "" {
				if !slices.Contains(kinds, kind) {
					return fmt.Errorf("no registry for kind %q", kind)
				}
				kinds = []string{kind}
			}

			for _, k := range kinds {
				r := m.Registry(k)
				fmt.Fprintf(out, "%s (%d)\n", k, r.Len())
				for i, conv := range r.Converters() {
					fmt.Fprintf(out, "  %2d  %s\n", i, conv)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only list this registry kind")
	cmd.Flags().BoolVar(&showTypes, "types", false, "List the query types known to resolve")

	return cmd
}

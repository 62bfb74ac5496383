package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/typeconv/pkg/typeconv"
	"github.com/randalmurphal/typeconv/pkg/typeconv/builtin"
)

func resolveCmd(configPath *string) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "resolve [type...]",
		Short: "Show the converter selected for each query type",
		Long: `Resolve query types against a registry and print the selected converter.

Types are named as in "typeconv list --types". With no arguments every
known type is resolved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			types := builtin.Types()
			if len(args) == 0 {
				args = slices.Sorted(maps.Keys(types))
			}

			r := m.Registry(kind)
			out := cmd.OutOrStdout()
			var unknown []string
			for _, name := range args {
				t, ok := types[name]
				if !ok {
					unknown = append(unknown, name)
					continue
				}

				conv, err := r.Select(t)
				var ambiguous *typeconv.AmbiguousMatchError
				switch {
				case errors.As(err, &ambiguous):
					fmt.Fprintf(out, "%-10s %-22s ambiguous: %s\n", name, t, joinCandidates(ambiguous.Candidates))
				case err != nil:
					return err
				case conv == nil:
					fmt.Fprintf(out, "%-10s %-22s -\n", name, t)
				default:
					fmt.Fprintf(out, "%-10s %-22s %s\n", name, t, conv)
				}
			}
			if len(unknown) > 0 {
				return fmt.Errorf("unknown type(s): %s", strings.Join(unknown, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", defaultKind, "Registry kind to resolve against")

	return cmd
}

func joinCandidates(candidates []typeconv.Candidate) string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

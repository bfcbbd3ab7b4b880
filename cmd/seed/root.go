package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio/internal/auth"
	"portfolio/internal/content"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// cmdDeps are injected so tests can run the commands against the memory store.
type cmdDeps struct {
	Logger    *zap.Logger
	OpenStore func(ctx context.Context) (repository.DocumentStore, func(), error)
}

func newRootCmd(deps *cmdDeps) *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Portfolio content maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSeedCmd(deps), newHashPasswordCmd())
	return root
}

func newSeedCmd(deps *cmdDeps) *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Write the demo set into every empty content collection",
		Long: `Populates empty collections with the built-in demo entries.
Collections that already hold entries are left untouched, so running it twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := parseKinds(kinds)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, closeStore, err := deps.OpenStore(ctx)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer closeStore()

			set := content.NewSet(content.Deps{Store: store, Logger: deps.Logger})
			seeded, err := set.Seed(ctx, selected...)

			names := make([]string, 0, len(seeded))
			for k := range seeded {
				names = append(names, string(k))
			}
			sort.Strings(names)
			for _, n := range names {
				status := "already populated"
				if seeded[model.Kind(n)] {
					status = "seeded"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", n, status)
			}
			return err
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "content kinds to seed (experience, projects, certificates, reviews); default all")
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func parseKinds(raw []string) ([]model.Kind, error) {
	out := make([]model.Kind, 0, len(raw))
	for _, r := range raw {
		if r == "all" {
			return nil, nil
		}
		k, ok := model.ParseKind(r)
		if !ok {
			return nil, fmt.Errorf("unknown content kind %q", r)
		}
		out = append(out, k)
	}
	return out, nil
}

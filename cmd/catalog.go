package main

import (
	"github.com/spf13/cobra"

	"adsim/internal/core/domain"
	"adsim/internal/report"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [google|meta]",
		Short:     "List the options the wizard offers on a platform",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.PlatformGoogle), string(domain.PlatformMeta)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.RenderCatalog(cmd.OutOrStdout(), domain.Platform(args[0]))
		},
	}
}

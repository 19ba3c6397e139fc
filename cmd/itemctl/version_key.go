package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/PluginKit_Go/internal/updatecheck"
)

func newVersionKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version-key <version>...",
		Short: "Print the sortable key of one or more version strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range args {
				printf(cmd.OutOrStdout(), "%s\t%.3f\n", v, updatecheck.VersionKey(v))
			}
			return nil
		},
	}
}

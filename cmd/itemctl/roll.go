package main

import (
	"github.com/spf13/cobra"
)

func newRollCmd(root *rootOptions) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "roll <min-max>",
		Short: "Draw from a quantity range such as 2-5",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := root.newEngine()
			if err != nil {
				return err
			}
			for i := 0; i < times; i++ {
				printf(cmd.OutOrStdout(), "%d\n", engine.MinMaxRandom(args[0]))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of draws")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"
)

func newRunCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: extract, build corpus, analyze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFlag)
			if err != nil {
				return err
			}
			return a.processor.Run(cmd.Context())
		},
	}
}

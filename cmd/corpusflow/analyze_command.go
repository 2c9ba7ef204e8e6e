package main

import (
	"github.com/spf13/cobra"
)

func newAnalyzeCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compute and render corpus statistics for the corpus file or any text file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFlag)
			if err != nil {
				return err
			}

			textPath := a.cfg.Paths.Corpus
			if len(args) == 1 {
				textPath = args[0]
			}

			return a.processor.Analyze(cmd.Context(), textPath)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "corpusflow",
		Short:         "Subtitle corpus pipeline: extract, merge and analyze subtitle text",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.yaml", "Configuration file path")

	rootCmd.AddCommand(newExtractCommand(&configFlag))
	rootCmd.AddCommand(newBuildCommand(&configFlag))
	rootCmd.AddCommand(newAnalyzeCommand(&configFlag))
	rootCmd.AddCommand(newRunCommand(&configFlag))
	rootCmd.AddCommand(newWatchCommand(&configFlag))

	return rootCmd
}

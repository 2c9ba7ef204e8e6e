package main

import (
	"github.com/spf13/cobra"
)

func newBuildCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Merge the subtitle directory into a deduplicated corpus file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			result, err := a.builder.Build(ctx, a.cfg.Paths.Subtitles, a.cfg.Paths.Corpus)
			if err != nil {
				return err
			}

			if result.Written {
				a.log.Info(ctx, "Corpus build complete: %d files in, %d unique subtitles out", result.FilesFound, result.UniqueTexts)
			}
			return nil
		},
	}
}

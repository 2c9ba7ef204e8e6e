package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExtractCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Extract subtitle streams from the configured videos directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFlag)
			if err != nil {
				return err
			}
			if a.cfg.Paths.Videos == "" {
				return fmt.Errorf("paths.videos is not configured")
			}

			ctx := cmd.Context()
			written, err := a.extractor.ExtractDir(ctx, a.cfg.Paths.Videos, a.cfg.Paths.Subtitles)
			if err != nil {
				return err
			}

			a.log.Info(ctx, "Extraction complete: %d subtitle files written", written)
			return nil
		},
	}
}

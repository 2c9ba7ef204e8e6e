package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/corpus-flow/internal/watcher"
)

func newWatchCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the videos directory and rebuild the corpus for each new video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFlag)
			if err != nil {
				return err
			}
			if a.cfg.Paths.Videos == "" {
				return fmt.Errorf("paths.videos is not configured")
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			w, err := watcher.New(a.cfg.Paths.Videos, a.processor.ProcessVideo, a.log, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "Corpus pipeline is ready!")
			a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Videos)
			a.log.Info(ctx, "Corpus: %s", a.cfg.Paths.Corpus)
			a.log.Info(ctx, "Press Ctrl+C to stop")
			a.log.Info(ctx, "========================================")

			select {
			case <-sigChan:
				a.log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return fmt.Errorf("watcher: %w", err)
			}

			a.log.Info(ctx, "Shutting down gracefully...")
			cancel()
			return nil
		},
	}
}

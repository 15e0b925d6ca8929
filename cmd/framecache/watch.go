package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bft-labs/framecache/pkg/framecache"
	"github.com/bft-labs/framecache/pkg/log"
	"github.com/bft-labs/framecache/plugins/atlaswatcher"
	"github.com/bft-labs/framecache/plugins/memorypressure"
	"github.com/bft-labs/framecache/plugins/unusedsweeper"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <descriptor>...",
		Short: "Load descriptors and reload them as they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := a.newCache(
				framecache.WithEventHandler(&logHandler{logger: a.logger}),
				atlaswatcher.WithAtlasWatcher(atlaswatcher.Config{DebounceDelay: a.cfg.Debounce}),
				unusedsweeper.WithUnusedSweeper(unusedsweeper.Config{Interval: a.cfg.SweepInterval}),
				memorypressure.WithMemoryPressure(memorypressure.Config{
					HighWatermarkBytes: a.cfg.MemoryHighWatermark,
					PurgeAll:           a.cfg.PurgeOnPressure,
				}),
			)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			if _, err := a.loadAll(ctx, cache, args); err != nil {
				return err
			}
			if err := cache.Start(ctx); err != nil {
				return err
			}

			stats := cache.Stats()
			a.logger.Info("watching",
				log.Int("sources", stats.Sources),
				log.Int("frames", stats.Frames),
				log.String("memory_watermark", humanize.IBytes(a.cfg.MemoryHighWatermark)))

			<-sigCh
			a.logger.Info("received signal, stopping...")
			return cache.Stop()
		},
	}

	cmd.Flags().DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "quiet period before a changed descriptor is reloaded")
	cmd.Flags().DurationVar(&a.cfg.SweepInterval, "sweep-interval", a.cfg.SweepInterval, "how often unused frames are evicted")
	cmd.Flags().Uint64Var(&a.cfg.MemoryHighWatermark, "memory-watermark", a.cfg.MemoryHighWatermark, "heap size in bytes above which frames are evicted")
	cmd.Flags().BoolVar(&a.cfg.PurgeOnPressure, "purge", a.cfg.PurgeOnPressure, "empty the cache when evicting unused frames is not enough")
	return cmd
}

// logHandler writes cache events to the logger.
type logHandler struct {
	framecache.NopEventHandler
	logger log.Logger
}

func (h *logHandler) OnEvict(ev framecache.EvictEvent) {
	h.logger.Info("frames evicted",
		log.String("reason", string(ev.Reason)),
		log.Source(ev.Source),
		log.Int("count", ev.Count))
}

func (h *logHandler) OnStateChange(ev framecache.StateChangeEvent) {
	h.logger.Debug("cache state changed",
		log.String("from", ev.Previous.String()),
		log.String("to", ev.Current.String()),
		log.String("reason", ev.Reason))
}

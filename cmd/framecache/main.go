package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/framecache/internal/cliconfig"
	"github.com/bft-labs/framecache/pkg/framecache"
	"github.com/bft-labs/framecache/pkg/log"
)

const helpDescription = `
Load sprite atlas descriptors (plist, JSON, YAML, TOML) into a frame cache
and look frames up by name.

Configuration is read from $HOME/.framecache/config.toml, then FRAMECACHE_*
environment variables, then flags. Later sources win.
`

var exampleUsage = strings.TrimSpace(`
  framecache inspect assets/hero.plist
  framecache inspect --json --texture art/sheet.png assets/tiles.yaml
  framecache get assets/hero.plist hero_0 hero
  framecache watch --sweep-interval 1m assets/*.plist
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app is the state shared by every subcommand.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  *log.ZerologAdapter
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "framecache",
		Short:         "Inspect and serve sprite atlas frames",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.framecache/config.toml)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.cfg.ImageExtension, "image-ext", a.cfg.ImageExtension, "extension used to derive texture paths")
	flags.StringVar(&a.cfg.Texture, "texture", a.cfg.Texture, "texture path to bind instead of the one named in the descriptor")

	root.AddCommand(newInspectCmd(a), newGetCmd(a), newWatchCmd(a))

	if err := root.Execute(); err != nil {
		logger := a.logger
		if logger == nil {
			logger = log.NewConsoleLogger(os.Stderr, "info")
		}
		logger.Error("framecache", log.Err(err))
		os.Exit(1)
	}
}

// loadConfig applies file, env and flag configuration in that order of
// increasing precedence.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return err
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = a.cfg.Logger(os.Stderr)
	a.logger.Debug("configuration", log.Any("config", a.cfg))
	return nil
}

// newCache builds a cache over the local filesystem.
func (a *app) newCache(opts ...framecache.Option) (*framecache.Cache, error) {
	opts = append([]framecache.Option{framecache.WithLogger(a.logger)}, opts...)
	return framecache.New(framecache.Config{ImageExtension: a.cfg.ImageExtension}, opts...)
}

// texturePath returns the configured texture override as an absolute path.
func (a *app) texturePath() (string, error) {
	if a.cfg.Texture == "" {
		return "", nil
	}
	return filepath.Abs(a.cfg.Texture)
}

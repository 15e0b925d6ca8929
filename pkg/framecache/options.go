package framecache

import (
	"github.com/jmgilman/go/fs/core"

	"github.com/bft-labs/framecache/internal/ports"
	"github.com/bft-labs/framecache/pkg/log"
)

// DocumentLoader parses descriptors. *atlas.Loader is the default.
type DocumentLoader = ports.DocumentLoader

// ImageProvider resolves image paths. *texture.Cache is the default.
type ImageProvider = ports.ImageProvider

// Option configures optional behavior of a Cache.
type Option func(*options)

type options struct {
	logger       log.Logger
	fsys         core.ReadFS
	loader       DocumentLoader
	images       ImageProvider
	eventHandler EventHandler
	plugins      []Plugin
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFilesystem sets the filesystem descriptors and images are read from.
// The default is the local disk with relative paths resolved against the
// working directory.
func WithFilesystem(fsys core.ReadFS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithDocumentLoader replaces the descriptor parser.
func WithDocumentLoader(loader DocumentLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithImageProvider replaces the image resolver.
func WithImageProvider(images ImageProvider) Option {
	return func(o *options) {
		o.images = images
	}
}

// WithEventHandler sets a handler for load, evict and state events.
// Handlers are called synchronously after the registry lock is released.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin started by Cache.Start. Plugins are
// initialized in registration order and shut down in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

// Package log provides the logging abstraction used across framecache.
//
// The cache never logs through a global. Components receive a Logger,
// and the library default is NoopLogger so that embedding applications
// stay quiet unless they opt in.
//
// # Usage
//
// Console output through zerolog:
//
//	logger := log.NewConsoleLogger(os.Stderr, "debug")
//	cache, _ := framecache.New(cfg, framecache.WithLogger(logger))
//
// Wrapping an application's own zerolog.Logger:
//
//	logger := log.NewZerologAdapterWithLogger(appLogger)
//
// # Custom Loggers
//
// Implement the four-method Logger interface to route entries elsewhere.
//
// See version.go for version constants.
package log

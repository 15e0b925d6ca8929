package cliconfig

import (
	"io"

	"github.com/bft-labs/framecache/pkg/log"
)

// Logger returns a console logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *log.ZerologAdapter {
	return log.NewConsoleLogger(w, c.LogLevel)
}

package ports

import "github.com/bft-labs/framecache/pkg/log"

// Logger is the structured logger port.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

package domain

import (
	stderrors "errors"

	"github.com/jmgilman/go/errors"
)

// Error codes for the cache's failure taxonomy.
const (
	// CodeMalformedDocument means a descriptor could not be parsed at all.
	CodeMalformedDocument errors.ErrorCode = "MALFORMED_DOCUMENT"

	// CodeInvalidRecord means a single frame record was unusable.
	CodeInvalidRecord errors.ErrorCode = "INVALID_RECORD"

	// CodeImageLoadFailed means the image a source binds to could not be resolved.
	CodeImageLoadFailed errors.ErrorCode = "IMAGE_LOAD_FAILED"
)

// Lifecycle errors. These can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running cache.
	ErrAlreadyRunning = errors.New(errors.CodeConflict, "framecache: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped cache.
	ErrNotRunning = errors.New(errors.CodeConflict, "framecache: not running")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New(errors.CodeInvalidConfig, "framecache: invalid configuration")
)

// NewMalformedDocument reports an unparseable descriptor.
func NewMalformedDocument(source string, err error) error {
	return errors.WrapWithContext(err, CodeMalformedDocument, "malformed descriptor document",
		map[string]interface{}{"source": source})
}

// NewImageLoadError reports an image that could not be resolved.
func NewImageLoadError(path string, err error) error {
	return errors.WrapWithContext(err, CodeImageLoadFailed, "failed to load texture",
		map[string]interface{}{"path": path})
}

// NewInvalidRecord reports a record that failed validation.
func NewInvalidRecord(name, msg string) error {
	e := errors.New(CodeInvalidRecord, msg)
	if name == "" {
		return e
	}
	return errors.WithContext(e, "frame", name)
}

// WrapInvalidRecord wraps a conversion error for the named record.
func WrapInvalidRecord(err error, name string) error {
	if name == "" {
		return errors.Wrap(err, CodeInvalidRecord, "invalid frame record")
	}
	return errors.WrapWithContext(err, CodeInvalidRecord, "invalid frame record",
		map[string]interface{}{"frame": name})
}

// IsMalformedDocument reports whether err stems from an unparseable descriptor.
func IsMalformedDocument(err error) bool { return hasCode(err, CodeMalformedDocument) }

// IsImageLoadError reports whether err stems from an unresolved image.
func IsImageLoadError(err error) bool { return hasCode(err, CodeImageLoadFailed) }

// IsInvalidRecord reports whether err stems from a rejected record.
func IsInvalidRecord(err error) bool { return hasCode(err, CodeInvalidRecord) }

func hasCode(err error, code errors.ErrorCode) bool {
	for err != nil {
		var pe errors.PlatformError
		if !errors.As(err, &pe) {
			return false
		}
		if pe.Code() == code {
			return true
		}
		err = stderrors.Unwrap(pe)
	}
	return false
}

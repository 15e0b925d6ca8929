// Package domain contains the core entities of the frame cache.
//
// It has no dependencies on parsing, filesystems or logging.
//
// # Entities
//
//   - [Frame]: a texture region with trim offset, original size, rotation
//     and an external reference count
//   - [Texture]: a shared image handle compared by identity
//   - [FrameSpec], [Rect], [Point], [Size]: geometry values
//
// # Errors
//
// Failures are jmgilman/go/errors PlatformErrors carrying one of
// [CodeMalformedDocument], [CodeInvalidRecord] or [CodeImageLoadFailed].
package domain

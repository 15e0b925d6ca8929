// Package ports defines the interfaces that connect the cache core to its
// collaborators.
//
// # Port Interfaces
//
//   - [DocumentLoader]: parses descriptor files and content
//   - [ImageProvider]: resolves image paths to shared texture handles
//   - [Logger]: structured logging abstraction
//
// The cache depends only on these interfaces. pkg/atlas and pkg/texture
// provide the default implementations; tests and embedding applications
// can substitute their own.
package ports

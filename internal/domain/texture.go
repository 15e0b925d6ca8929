package domain

import "time"

// Texture is a shared handle to an atlas image. Frames compare textures by
// pointer identity, so two handles with the same path are still different
// images unless they are the same *Texture.
type Texture struct {
	key     string
	path    string
	size    int64
	modTime time.Time
}

// NewTexture creates a caller-owned texture handle identified by key.
func NewTexture(key string) *Texture {
	return &Texture{key: key}
}

// NewFileTexture creates a handle for an image resolved from a filesystem.
func NewFileTexture(path string, size int64, modTime time.Time) *Texture {
	return &Texture{key: path, path: path, size: size, modTime: modTime}
}

// Key returns the name the texture was created with.
func (t *Texture) Key() string { return t.key }

// Path returns the filesystem path, or "" for caller-made handles.
func (t *Texture) Path() string { return t.path }

// Bytes returns the encoded image size on disk.
func (t *Texture) Bytes() int64 { return t.size }

// ModTime returns the image modification time at resolution.
func (t *Texture) ModTime() time.Time { return t.modTime }

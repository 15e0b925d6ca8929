package atlas

// Descriptor formats understood by Record.Spec. They match the "format"
// value found in a descriptor's metadata block.
const (
	FormatFlat      = 0 // x, y, width, height, offsetX/Y, originalWidth/Height
	FormatRectStr   = 1 // frame "{{x,y},{w,h}}", offset, sourceSize
	FormatRotated   = 2 // format 1 plus rotated
	FormatTexturePK = 3 // textureRect, spriteOffset, spriteSourceSize, textureRotated, aliases
)

// Document is a parsed descriptor. Records keep the order they appear in
// the source whenever the syntax preserves it.
type Document struct {
	// Format is the metadata format number, 0 when absent.
	Format int

	// Texture is the image file named by the descriptor, relative to the
	// descriptor's directory. Empty when the descriptor does not name one.
	Texture string

	// Records are the frame entries in source order.
	Records []Record

	// Aliases maps alias names to canonical record names.
	Aliases map[string]string

	// Warnings collects document-level problems that did not stop parsing,
	// such as duplicate aliases.
	Warnings []Warning
}

// Record is one frame entry with its raw attributes.
type Record struct {
	Name  string
	Attrs map[string]any
}

// Warning is a non-fatal problem tied to a frame or alias name.
type Warning struct {
	Name string
	Err  error
}

func (w Warning) Error() string {
	if w.Name == "" {
		return w.Err.Error()
	}
	return w.Name + ": " + w.Err.Error()
}

func (w Warning) Unwrap() error { return w.Err }

// Names returns the record names in order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Records))
	for i, r := range d.Records {
		names[i] = r.Name
	}
	return names
}

package atlas

import (
	"fmt"

	"github.com/bft-labs/framecache/internal/domain"
)

// Spec converts the record's attributes into frame geometry for the given
// descriptor format. Object-style records, where "frame" is a map as
// written by TexturePacker's JSON exporter, are accepted in any format.
// Failures are InvalidRecord errors.
func (r Record) Spec(format int) (domain.FrameSpec, error) {
	if r.Attrs == nil {
		return domain.FrameSpec{}, domain.NewInvalidRecord(r.Name, "frame entry is not a dictionary")
	}

	var (
		spec domain.FrameSpec
		err  error
	)
	if _, ok := r.Attrs["frame"].(map[string]any); ok {
		spec, err = r.objectSpec()
	} else {
		switch format {
		case FormatFlat:
			spec, err = r.flatSpec()
		case FormatRectStr, FormatRotated:
			spec, err = r.rectStrSpec()
		case FormatTexturePK:
			spec, err = r.texturePackerSpec()
		default:
			err = fmt.Errorf("unsupported format %d", format)
		}
	}
	if err != nil {
		return domain.FrameSpec{}, domain.WrapInvalidRecord(err, r.Name)
	}
	if err := spec.Validate(); err != nil {
		return domain.FrameSpec{}, domain.WrapInvalidRecord(err, r.Name)
	}
	return spec, nil
}

// Aliases returns the alias names listed on a format 3 record.
func (r Record) Aliases() []string {
	raw, ok := r.Attrs["aliases"].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r Record) number(key string, required bool) (float64, error) {
	v, ok := r.Attrs[key]
	if !ok {
		if required {
			return 0, fmt.Errorf("missing %q", key)
		}
		return 0, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%q is not a number", key)
	}
	return f, nil
}

func (r Record) str(key string, required bool) (string, error) {
	v, ok := r.Attrs[key]
	if !ok {
		if required {
			return "", fmt.Errorf("missing %q", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string", key)
	}
	return s, nil
}

func (r Record) flatSpec() (domain.FrameSpec, error) {
	var spec domain.FrameSpec
	vals := make([]float64, 0, 8)
	for _, k := range []string{"x", "y", "width", "height"} {
		v, err := r.number(k, true)
		if err != nil {
			return spec, err
		}
		vals = append(vals, v)
	}
	for _, k := range []string{"offsetX", "offsetY", "originalWidth", "originalHeight"} {
		v, err := r.number(k, false)
		if err != nil {
			return spec, err
		}
		vals = append(vals, v)
	}
	spec.Rect = domain.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	spec.Offset = domain.Point{X: vals[4], Y: vals[5]}
	// some exporters write negative original sizes
	spec.OriginalSize = domain.Size{Width: abs(vals[6]), Height: abs(vals[7])}
	return spec, nil
}

func (r Record) rectStrSpec() (domain.FrameSpec, error) {
	var spec domain.FrameSpec
	frame, err := r.str("frame", true)
	if err != nil {
		return spec, err
	}
	if spec.Rect, err = ParseRect(frame); err != nil {
		return spec, err
	}
	if s, err := r.str("offset", false); err != nil {
		return spec, err
	} else if s != "" {
		if spec.Offset, err = ParsePoint(s); err != nil {
			return spec, err
		}
	}
	if s, err := r.str("sourceSize", false); err != nil {
		return spec, err
	} else if s != "" {
		if spec.OriginalSize, err = ParseSize(s); err != nil {
			return spec, err
		}
	}
	spec.Rotated = toBool(r.Attrs["rotated"])
	return spec, nil
}

func (r Record) texturePackerSpec() (domain.FrameSpec, error) {
	var spec domain.FrameSpec
	rect, err := r.str("textureRect", true)
	if err != nil {
		return spec, err
	}
	if spec.Rect, err = ParseRect(rect); err != nil {
		return spec, err
	}
	if s, err := r.str("spriteOffset", false); err != nil {
		return spec, err
	} else if s != "" {
		if spec.Offset, err = ParsePoint(s); err != nil {
			return spec, err
		}
	}
	if s, err := r.str("spriteSourceSize", false); err != nil {
		return spec, err
	} else if s != "" {
		if spec.OriginalSize, err = ParseSize(s); err != nil {
			return spec, err
		}
	}
	spec.Rotated = toBool(r.Attrs["textureRotated"])
	return spec, nil
}

func (r Record) objectSpec() (domain.FrameSpec, error) {
	var spec domain.FrameSpec
	frame := r.Attrs["frame"].(map[string]any)
	vals, err := numbersOf(frame, "frame", "x", "y", "w", "h")
	if err != nil {
		return spec, err
	}
	spec.Rect = domain.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if m, ok := r.Attrs["spriteSourceSize"].(map[string]any); ok {
		off, err := numbersOf(m, "spriteSourceSize", "x", "y")
		if err != nil {
			return spec, err
		}
		spec.Offset = domain.Point{X: off[0], Y: off[1]}
	}
	if m, ok := r.Attrs["sourceSize"].(map[string]any); ok {
		size, err := numbersOf(m, "sourceSize", "w", "h")
		if err != nil {
			return spec, err
		}
		spec.OriginalSize = domain.Size{Width: size[0], Height: size[1]}
	}
	spec.Rotated = toBool(r.Attrs["rotated"])
	return spec, nil
}

func numbersOf(m map[string]any, field string, keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		v, ok := m[k]
		if !ok {
			return nil, fmt.Errorf("missing %s.%s", field, k)
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%s.%s is not a number", field, k)
		}
		out[i] = f
	}
	return out, nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

package atlas

import (
	"fmt"
	"sort"

	"github.com/bft-labs/framecache/internal/domain"
)

// rawDocument is the syntax-independent shape every decoder produces.
type rawDocument struct {
	records []Record
	meta    map[string]any
}

type decoder func(content []byte) (*rawDocument, error)

var decoders = map[Kind]decoder{
	KindPlist: decodePlist,
	KindJSON:  decodeJSON,
	KindYAML:  decodeYAML,
	KindTOML:  decodeTOML,
}

// Parse decodes a descriptor. KindUnknown sniffs the content. The source
// name is used only for error context. A document that cannot be decoded,
// has no frames table, or declares an unsupported format is a
// MalformedDocument error.
func Parse(source string, content []byte, kind Kind) (*Document, error) {
	if kind == KindUnknown {
		kind = Sniff(content)
	}
	dec, ok := decoders[kind]
	if !ok {
		return nil, domain.NewMalformedDocument(source, fmt.Errorf("cannot detect descriptor syntax"))
	}
	raw, err := dec(content)
	if err != nil {
		return nil, domain.NewMalformedDocument(source, fmt.Errorf("%s: %w", kind, err))
	}
	doc, err := raw.finish()
	if err != nil {
		return nil, domain.NewMalformedDocument(source, err)
	}
	return doc, nil
}

func (raw *rawDocument) finish() (*Document, error) {
	doc := &Document{
		Records: raw.records,
		Aliases: make(map[string]string),
	}

	if v, ok := raw.meta["format"]; ok {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("metadata format %v is not a number", v)
		}
		doc.Format = int(f)
	}
	if doc.Format < FormatFlat || doc.Format > FormatTexturePK {
		return nil, fmt.Errorf("unsupported descriptor format %d", doc.Format)
	}

	for _, key := range []string{"textureFileName", "realTextureFileName", "image"} {
		if s, ok := raw.meta[key].(string); ok && s != "" {
			doc.Texture = s
			break
		}
	}

	names := make(map[string]struct{}, len(doc.Records))
	for _, r := range doc.Records {
		names[r.Name] = struct{}{}
	}
	for _, r := range doc.Records {
		for _, alias := range r.Aliases() {
			if prev, dup := doc.Aliases[alias]; dup {
				doc.Warnings = append(doc.Warnings, Warning{
					Name: alias,
					Err:  domain.NewInvalidRecord(r.Name, fmt.Sprintf("alias already points to %q", prev)),
				})
				continue
			}
			if _, clash := names[alias]; clash {
				doc.Warnings = append(doc.Warnings, Warning{
					Name: alias,
					Err:  domain.NewInvalidRecord(r.Name, "alias collides with a frame name"),
				})
				continue
			}
			doc.Aliases[alias] = r.Name
		}
	}
	return doc, nil
}

// recordsFromMap builds records from a decoded frames table whose syntax
// does not keep key order. Names are sorted for a stable result.
func recordsFromMap(frames map[string]any) []Record {
	names := make([]string, 0, len(frames))
	for n := range frames {
		names = append(names, n)
	}
	sort.Strings(names)
	records := make([]Record, 0, len(names))
	for _, n := range names {
		records = append(records, Record{Name: n, Attrs: asMap(frames[n])})
	}
	return records
}

// recordsFromList builds records from an array of frame objects that name
// themselves with a "filename" key.
func recordsFromList(frames []any) []Record {
	records := make([]Record, 0, len(frames))
	for i, item := range frames {
		attrs := asMap(item)
		name, _ := attrs["filename"].(string)
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			attrs = nil
		}
		records = append(records, Record{Name: name, Attrs: attrs})
	}
	return records
}

func framesFromTree(root map[string]any) (*rawDocument, error) {
	raw := &rawDocument{meta: metaOf(root)}
	switch frames := root["frames"].(type) {
	case map[string]any:
		raw.records = recordsFromMap(frames)
	case []any:
		raw.records = recordsFromList(frames)
	case nil:
		return nil, fmt.Errorf("missing frames table")
	default:
		return nil, fmt.Errorf("frames is %T, want a table", frames)
	}
	return raw, nil
}

func metaOf(root map[string]any) map[string]any {
	for _, key := range []string{"metadata", "meta"} {
		if m := asMap(root[key]); m != nil {
			return m
		}
	}
	return nil
}

// asMap normalizes decoded dictionaries to map[string]any.
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	}
	return nil
}

package atlas

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// decodeJSON walks the document with gjson so frames keep file order.
func decodeJSON(content []byte) (*rawDocument, error) {
	if !gjson.ValidBytes(content) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(content)
	if !root.IsObject() {
		return nil, errors.New("top level is not an object")
	}

	raw := &rawDocument{}
	for _, key := range []string{"metadata", "meta"} {
		if m := root.Get(key); m.IsObject() {
			raw.meta = asMap(m.Value())
			break
		}
	}

	frames := root.Get("frames")
	switch {
	case !frames.Exists():
		return nil, errors.New("missing frames table")
	case frames.IsObject():
		frames.ForEach(func(key, value gjson.Result) bool {
			raw.records = append(raw.records, Record{Name: key.String(), Attrs: asMap(value.Value())})
			return true
		})
	case frames.IsArray():
		items, _ := frames.Value().([]any)
		raw.records = recordsFromList(items)
	default:
		return nil, fmt.Errorf("frames is a %s, want a table", frames.Type)
	}
	return raw, nil
}

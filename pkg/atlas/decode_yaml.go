package atlas

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML uses the node API so frames keep file order.
func decodeYAML(content []byte) (*rawDocument, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("empty document")
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, errors.New("top level is not a mapping")
	}

	raw := &rawDocument{}
	var frames *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i].Value, top.Content[i+1]
		switch key {
		case "frames":
			frames = val
		case "metadata", "meta":
			if raw.meta != nil {
				continue
			}
			var m map[string]any
			if err := val.Decode(&m); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			raw.meta = m
		}
	}
	if frames == nil {
		return nil, errors.New("missing frames table")
	}

	switch frames.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(frames.Content); i += 2 {
			name, val := frames.Content[i].Value, frames.Content[i+1]
			var attrs map[string]any
			if val.Kind == yaml.MappingNode {
				if err := val.Decode(&attrs); err != nil {
					return nil, fmt.Errorf("frame %q: %w", name, err)
				}
			}
			raw.records = append(raw.records, Record{Name: name, Attrs: attrs})
		}
	case yaml.SequenceNode:
		var items []any
		if err := frames.Decode(&items); err != nil {
			return nil, err
		}
		raw.records = recordsFromList(items)
	default:
		return nil, errors.New("frames is not a table")
	}
	return raw, nil
}

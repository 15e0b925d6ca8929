package atlas

import "github.com/pelletier/go-toml/v2"

func decodeTOML(content []byte) (*rawDocument, error) {
	var root map[string]any
	if err := toml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	return framesFromTree(root)
}

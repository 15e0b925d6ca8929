package atlas

import "howett.net/plist"

// decodePlist reads XML, binary and OpenStep property lists, the format
// Zwoptex and TexturePacker write for cocos2d.
func decodePlist(content []byte) (*rawDocument, error) {
	var root map[string]any
	if _, err := plist.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	return framesFromTree(root)
}

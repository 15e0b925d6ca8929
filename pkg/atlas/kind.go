package atlas

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the syntax a descriptor is written in.
type Kind int

const (
	KindUnknown Kind = iota
	KindPlist
	KindJSON
	KindYAML
	KindTOML
)

func (k Kind) String() string {
	switch k {
	case KindPlist:
		return "plist"
	case KindJSON:
		return "json"
	case KindYAML:
		return "yaml"
	case KindTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseKind maps a name such as "plist" or "yml" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "auto":
		return KindUnknown, nil
	case "plist", "xml":
		return KindPlist, nil
	case "json":
		return KindJSON, nil
	case "yaml", "yml":
		return KindYAML, nil
	case "toml":
		return KindTOML, nil
	}
	return KindUnknown, fmt.Errorf("unknown descriptor kind %q", s)
}

// KindFromPath guesses the kind from a file extension.
func KindFromPath(path string) Kind {
	k, err := ParseKind(filepath.Ext(path))
	if err != nil {
		return KindUnknown
	}
	return k
}

// Sniff guesses the kind from the first bytes of content.
func Sniff(content []byte) Kind {
	if bytes.HasPrefix(content, []byte("bplist")) {
		return KindPlist
	}
	trimmed := bytes.TrimLeft(content, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return KindUnknown
	}
	switch trimmed[0] {
	case '<':
		return KindPlist
	case '{':
		return KindJSON
	case '[':
		return KindTOML
	}
	return KindYAML
}

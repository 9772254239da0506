// Package prompts holds the usage guides the MCP server hands to agents.
package prompts

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Version is incremented whenever the guides change incompatibly.
const Version = "v1"

//go:embed guides/*.md
var guidesFS embed.FS

// Guide is the JSON-serialisable structure returned to callers.
type Guide struct {
	Version string `json:"version"`
	Name    string `json:"name"`
	Text    string `json:"text"`
}

// Load returns the embedded guide called name (file name without .md).
func Load(name string) (*Guide, error) {
	if name == "" {
		return nil, fmt.Errorf("guide name cannot be empty")
	}
	b, err := fs.ReadFile(guidesFS, path.Join("guides", name+".md"))
	if err != nil {
		return nil, fmt.Errorf("unknown guide %q: %w", name, err)
	}
	return &Guide{Version: Version, Name: name, Text: string(b)}, nil
}

// List returns the names of all embedded guides, sorted.
func List() ([]string, error) {
	entries, err := fs.ReadDir(guidesFS, "guides")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			out = append(out, strings.TrimSuffix(e.Name(), ".md"))
		}
	}
	sort.Strings(out)
	return out, nil
}

package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk taxonomy document shape.
//
//	cores:
//	  - name: Joy
//	    color: "#FFD700"
//	    children:
//	      - name: Happiness
//	        color: "#FFE066"
//	        children:
//	          - {name: Cheerful, color: "#FFF0A3"}
type file struct {
	Cores []Node `yaml:"cores"`
}

// Parse decodes a YAML taxonomy document and validates it.
func Parse(data []byte) (*Tree, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("taxonomy: parse: %w", err)
	}
	return New(f.Cores)
}

// Load reads and parses a YAML taxonomy file.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}
	return Parse(data)
}

package setup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// ErrParse marks a setup file that was read but could not be decoded.
var ErrParse = errors.New("unparsable setup record")

// ErrRead marks a setup file that could not be read at all.
var ErrRead = errors.New("unreadable setup file")

// LoadFile reads and parses a single setup record. JSON by default, YAML
// for .yaml/.yml paths. Callers are expected to skip the file on any error.
func LoadFile(path string) (Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}

	doc := Document{}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(source, &doc); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrParse, path, err)
		}
		return doc, nil
	}

	if err := json.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrParse, path, err)
	}
	return doc, nil
}

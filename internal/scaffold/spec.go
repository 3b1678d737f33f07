package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Spec is a JSON skill specification driving generation, an alternative to
// passing flags on the command line.
type Spec struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Kind        Kind     `json:"kind,omitempty"`
}

// LoadSpec reads and validates a JSON spec file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file %s: %w", path, err)
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec file %s: %w", path, err)
	}

	if spec.Name == "" {
		return nil, fmt.Errorf("spec file %s missing required field: name", path)
	}
	if spec.Kind == "" {
		spec.Kind = KindSimple
	}
	if !ValidKind(spec.Kind) {
		return nil, fmt.Errorf("spec file %s has unknown kind %q (valid: %v)", path, spec.Kind, Kinds())
	}

	return &spec, nil
}

// Data converts the spec into template data with defaults applied.
func (s *Spec) Data() *Data {
	d := NewData(s.Name, s.Description)
	if s.Version != "" {
		d.Version = s.Version
	}
	d.Tags = s.Tags
	d.Year = time.Now().Year()
	return d
}

package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// MetadataFileName is the required metadata file at every bundle root.
const MetadataFileName = "SKILL.md"

// Bundle represents one packageable skill directory. The directory name is
// the bundle identifier.
type Bundle struct {
	// Root is the absolute or relative path to the bundle directory.
	Root string
}

// New returns a Bundle rooted at the given directory.
func New(root string) *Bundle {
	return &Bundle{Root: filepath.Clean(root)}
}

// Name returns the bundle identifier (the root directory's base name).
func (b *Bundle) Name() string {
	return filepath.Base(b.Root)
}

// SkillFile returns the path to the bundle's SKILL.md.
func (b *Bundle) SkillFile() string {
	return filepath.Join(b.Root, MetadataFileName)
}

// Exists reports whether the bundle root exists and is a directory.
func (b *Bundle) Exists() bool {
	info, err := os.Stat(b.Root)
	return err == nil && info.IsDir()
}

// ReadSkillFile reads the full contents of the bundle's SKILL.md.
func (b *Bundle) ReadSkillFile() ([]byte, error) {
	data, err := os.ReadFile(b.SkillFile())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.SkillFile(), err)
	}
	return data, nil
}

// Metadata holds the frontmatter fields of a SKILL.md file.
type Metadata struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Version     string   `yaml:"version,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// ParseMetadata unmarshals a frontmatter block into a Metadata struct.
func ParseMetadata(front []byte) (*Metadata, error) {
	var m Metadata
	if err := yaml.Unmarshal(front, &m); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return &m, nil
}

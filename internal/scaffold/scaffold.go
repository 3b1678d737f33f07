package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/skillpack-labs/skillpack/internal/bundle"
	"github.com/skillpack-labs/skillpack/internal/platform"
)

//go:embed all:templates
var scaffoldFS embed.FS

var (
	nonKebabRe       = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedHyphenRe = regexp.MustCompile(`-+`)
)

// Data holds all template variables available to scaffold templates.
type Data struct {
	Name        string   // Bundle identifier, kebab-case
	Description string   // Human-readable description
	Version     string   // Semver, e.g., "0.1.0"
	Tags        []string // Optional frontmatter tags
	Year        int      // Current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData creates a Data with the name normalized to kebab-case and
// defaults filled in.
func NewData(name, description string) *Data {
	name = ToKebabCase(name)
	if description == "" {
		description = fmt.Sprintf("A skill bundle that helps with %s tasks", name)
	}
	return &Data{
		Name:        name,
		Description: description,
		Version:     "0.1.0",
		Year:        time.Now().Year(),
	}
}

// ToKebabCase normalizes free-form text into a bundle identifier:
// lowercase, spaces and underscores become hyphens, other special
// characters are dropped, and hyphen runs collapse.
func ToKebabCase(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " ", "-")
	text = strings.ReplaceAll(text, "_", "-")
	text = nonKebabRe.ReplaceAllString(text, "")
	text = repeatedHyphenRe.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

var tmplFuncs = template.FuncMap{
	"join": strings.Join,
}

// Generate renders the template set for kind into outputDir. The output
// directory must be empty (or absent). Script files are marked executable.
// Returns the list of created files relative to outputDir.
func Generate(kind Kind, data *Data, outputDir string) (*Result, error) {
	if !ValidKind(kind) {
		return nil, fmt.Errorf("unknown template kind %q (valid: %v)", kind, Kinds())
	}

	templatesDir := "templates/" + string(kind)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	err = fs.WalkDir(scaffoldFS, templatesDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(templatesDir, path)
		if err != nil {
			return fmt.Errorf("relativizing template %s: %w", path, err)
		}
		outName := strings.TrimSuffix(rel, ".tmpl")
		outPath := filepath.Join(outputDir, outName)

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}

		tmplBytes, err := fs.ReadFile(scaffoldFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		tmpl, err := template.New(d.Name()).Funcs(tmplFuncs).Parse(string(tmplBytes))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", path, err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		// Scripts ship executable; the __init__.py placeholder does not.
		if filepath.Dir(outName) == "scripts" && filepath.Base(outName) != "__init__.py" {
			if err := platform.Chmod(outPath, 0755); err != nil {
				return fmt.Errorf("marking %s executable: %w", outPath, err)
			}
		}

		result.Files = append(result.Files, filepath.ToSlash(outName))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Validate the generated frontmatter against the JSON Schema.
	skillFile := filepath.Join(outputDir, bundle.MetadataFileName)
	if content, err := os.ReadFile(skillFile); err == nil {
		if front, _, ok := bundle.SplitFrontmatter(content); ok {
			valResult, valErr := bundle.ValidateMetadata(front)
			if valErr != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Could not validate generated frontmatter: %v", valErr))
			} else if !valResult.Valid {
				for _, issue := range valResult.Issues {
					msg := issue.Message
					if issue.Path != "" {
						msg = issue.Path + ": " + msg
					}
					result.Warnings = append(result.Warnings, msg)
				}
			}
		}
	}

	return result, nil
}

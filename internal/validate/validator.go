package validate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"

	"github.com/skillpack-labs/skillpack/internal/bundle"
	"github.com/skillpack-labs/skillpack/internal/platform"
)

// Metadata field bounds.
const (
	maxNameLength        = 64
	maxDescriptionLength = 200
	minDescriptionLength = 20
)

var (
	nameLineRe    = regexp.MustCompile(`name:\s*(.+)`)
	descLineRe    = regexp.MustCompile(`description:\s*(.+)`)
	versionLineRe = regexp.MustCompile(`version:\s*(.+)`)
	kebabCaseRe   = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// scriptExts are file extensions recognized as scripts inside scripts/.
var scriptExts = map[string]bool{
	".py": true,
	".sh": true,
	".js": true,
	".rb": true,
}

// unwantedPatterns are filesystem artifacts that should never ship in an
// archive. Any match is a warning, never an issue.
var unwantedPatterns = []string{".pyc", "__pycache__", ".DS_Store", ".git"}

// Validator runs the full check pipeline against one bundle. It is scoped
// to a single bundle and a single run; it is not reused concurrently.
type Validator struct {
	// Bundle is the bundle under validation.
	Bundle *bundle.Bundle
	// Out receives the itemized progress report.
	Out io.Writer
	// Strict additionally validates the frontmatter block against the
	// JSON Schema; schema findings surface as warnings only.
	Strict bool
}

// New returns a Validator for the given bundle, reporting to stdout.
func New(b *bundle.Bundle) *Validator {
	return &Validator{Bundle: b, Out: os.Stdout}
}

// Run executes every check category in fixed order and returns the report.
// Categories never short-circuit each other; only field-presence probes are
// skipped when the frontmatter block itself cannot be located.
func (v *Validator) Run() *Report {
	r := &Report{}

	fmt.Fprintf(v.Out, "Validating skill bundle: %s\n\n", v.Bundle.Name())

	v.checkStructure(r)
	v.checkFrontmatter(r)
	v.checkMetadata(r)
	v.checkScripts(r)
	v.checkHygiene(r)
	if v.Strict {
		v.checkSchema(r)
	}

	v.printResults(r)

	return r
}

// checkStructure verifies required files at the bundle root. README.md and
// LICENSE presence is informational only.
func (v *Validator) checkStructure(r *Report) {
	fmt.Fprintln(v.Out, "Checking structure...")

	if fileExists(v.Bundle.SkillFile()) {
		r.Passed++
		fmt.Fprintf(v.Out, "  ✓ Found %s\n", bundle.MetadataFileName)
	} else {
		r.issue("Missing required file: " + bundle.MetadataFileName)
		fmt.Fprintf(v.Out, "  ✗ Missing %s\n", bundle.MetadataFileName)
	}

	for _, name := range []string{"README.md", "LICENSE"} {
		if fileExists(filepath.Join(v.Bundle.Root, name)) {
			fmt.Fprintf(v.Out, "  ✓ Found %s (recommended)\n", name)
		}
	}
}

// checkFrontmatter verifies the delimited metadata block and the presence of
// required field names within it. The field probes are skipped when the
// block cannot be located; other categories still run.
func (v *Validator) checkFrontmatter(r *Report) {
	fmt.Fprintf(v.Out, "\nChecking %s...\n", bundle.MetadataFileName)

	content, err := v.Bundle.ReadSkillFile()
	if err != nil {
		return
	}

	if !bytes.HasPrefix(content, []byte("---")) {
		r.issue(bundle.MetadataFileName + " missing YAML frontmatter (must start with ---)")
		fmt.Fprintln(v.Out, "  ✗ Missing YAML frontmatter")
		return
	}
	fmt.Fprintln(v.Out, "  ✓ YAML frontmatter present")

	front, _, ok := bundle.SplitFrontmatter(content)
	if !ok {
		r.issue(bundle.MetadataFileName + " YAML frontmatter not closed (missing closing ---)")
		fmt.Fprintln(v.Out, "  ✗ Frontmatter not closed")
		return
	}

	for _, field := range []string{"name", "description"} {
		if bundle.HasField(front, field) {
			fmt.Fprintf(v.Out, "  ✓ Has %s field\n", field)
		} else {
			r.issue(bundle.MetadataFileName + " missing required field: " + field)
			fmt.Fprintf(v.Out, "  ✗ Missing %s field\n", field)
		}
	}
}

// checkMetadata extracts field values with line-based matching and validates
// them against the length and format rules.
func (v *Validator) checkMetadata(r *Report) {
	fmt.Fprintln(v.Out, "\nChecking metadata...")

	content, err := v.Bundle.ReadSkillFile()
	if err != nil {
		return
	}

	// Name: length is blocking, casing is advisory.
	if m := nameLineRe.FindSubmatch(content); m != nil {
		name := strings.TrimSpace(string(m[1]))
		length := utf8.RuneCountInString(name)
		if length <= maxNameLength {
			r.Passed++
			fmt.Fprintf(v.Out, "  ✓ Name length OK: %d/%d chars\n", length, maxNameLength)
		} else {
			r.issue(fmt.Sprintf("Name exceeds %d characters: %d", maxNameLength, length))
			fmt.Fprintf(v.Out, "  ✗ Name too long: %d/%d chars\n", length, maxNameLength)
		}

		if kebabCaseRe.MatchString(name) {
			r.Passed++
			fmt.Fprintln(v.Out, "  ✓ Name uses kebab-case")
		} else {
			r.warn("Name should use kebab-case (lowercase with hyphens)")
			fmt.Fprintln(v.Out, "  ⚠ Name should use kebab-case")
		}
	} else {
		r.issue("Name field not found in frontmatter")
		fmt.Fprintln(v.Out, "  ✗ Name field not found")
	}

	// Description: length is blocking, shortness is advisory.
	if m := descLineRe.FindSubmatch(content); m != nil {
		desc := strings.TrimSpace(string(m[1]))
		length := utf8.RuneCountInString(desc)
		if length <= maxDescriptionLength {
			r.Passed++
			fmt.Fprintf(v.Out, "  ✓ Description length OK: %d/%d chars\n", length, maxDescriptionLength)
		} else {
			r.issue(fmt.Sprintf("Description exceeds %d characters: %d", maxDescriptionLength, length))
			fmt.Fprintf(v.Out, "  ✗ Description too long: %d/%d chars\n", length, maxDescriptionLength)
		}

		if length >= minDescriptionLength {
			r.Passed++
			fmt.Fprintln(v.Out, "  ✓ Description descriptive enough")
		} else {
			r.warn(fmt.Sprintf("Description should be more descriptive (>%d chars)", minDescriptionLength))
			fmt.Fprintln(v.Out, "  ⚠ Description too short")
		}
	} else {
		r.issue("Description field not found in frontmatter")
		fmt.Fprintln(v.Out, "  ✗ Description field not found")
	}

	// Version is recommended; a present value should parse as semver.
	if m := versionLineRe.FindSubmatch(content); m != nil {
		version := strings.TrimSpace(string(m[1]))
		if _, err := semver.NewVersion(version); err != nil {
			r.warn(fmt.Sprintf("Version %q is not a semantic version", version))
			fmt.Fprintf(v.Out, "  ⚠ Version %q is not semver\n", version)
		} else {
			fmt.Fprintln(v.Out, "  ✓ Has version field")
		}
	} else {
		r.warn("Version field not found (recommended)")
		fmt.Fprintln(v.Out, "  ⚠ Missing version field (recommended)")
	}
}

// checkScripts inspects recognized script files directly inside scripts/.
// A missing scripts directory is fine for simple bundles.
func (v *Validator) checkScripts(r *Report) {
	fmt.Fprintln(v.Out, "\nChecking scripts...")

	scriptsDir := filepath.Join(v.Bundle.Root, "scripts")
	entries, err := os.ReadDir(scriptsDir)
	if err != nil {
		fmt.Fprintln(v.Out, "  (No scripts directory - OK for simple bundles)")
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !scriptExts[filepath.Ext(name)] || name == "__init__.py" {
			continue
		}

		fmt.Fprintf(v.Out, "  Checking %s...\n", name)
		path := filepath.Join(scriptsDir, name)

		if line, err := firstLine(path); err == nil {
			if strings.HasPrefix(line, "#!") {
				r.Passed++
				fmt.Fprintf(v.Out, "    ✓ Has shebang: %s\n", strings.TrimSpace(line))
			} else {
				r.warn(name + " missing shebang (recommended for executable scripts)")
				fmt.Fprintln(v.Out, "    ⚠ Missing shebang")
			}
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if platform.IsExecutable(info) {
			r.Passed++
			fmt.Fprintln(v.Out, "    ✓ Executable permission set")
		} else {
			r.warn(fmt.Sprintf("%s not executable (run: chmod +x %s)", name, name))
			fmt.Fprintln(v.Out, "    ⚠ Not executable")
		}
	}
}

// checkHygiene scans the whole bundle for artifacts that should never ship,
// and recommends a README.
func (v *Validator) checkHygiene(r *Report) {
	fmt.Fprintln(v.Out, "\nChecking packaging...")

	found := make(map[string]bool)
	_ = filepath.WalkDir(v.Bundle.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		base := d.Name()
		for _, pattern := range unwantedPatterns {
			if base == pattern || strings.HasSuffix(base, ".pyc") && pattern == ".pyc" {
				found[pattern] = true
			}
		}
		return nil
	})

	for _, pattern := range unwantedPatterns {
		if found[pattern] {
			r.warn(fmt.Sprintf("Found %s files (should be excluded from the archive)", pattern))
			fmt.Fprintf(v.Out, "  ⚠ Found %s files\n", pattern)
		} else {
			fmt.Fprintf(v.Out, "  ✓ No %s files\n", pattern)
		}
	}

	if fileExists(filepath.Join(v.Bundle.Root, "README.md")) {
		fmt.Fprintln(v.Out, "  ✓ Has README.md (recommended)")
	} else {
		r.warn("Missing README.md (recommended)")
		fmt.Fprintln(v.Out, "  ⚠ Missing README.md")
	}
}

// checkSchema validates the frontmatter block against the JSON Schema.
// Strict-mode findings are advisory; the line-based pipeline above remains
// the authoritative classification.
func (v *Validator) checkSchema(r *Report) {
	fmt.Fprintln(v.Out, "\nChecking schema (strict)...")

	content, err := v.Bundle.ReadSkillFile()
	if err != nil {
		return
	}
	front, _, ok := bundle.SplitFrontmatter(content)
	if !ok {
		fmt.Fprintln(v.Out, "  (No frontmatter block to validate)")
		return
	}

	result, err := bundle.ValidateMetadata(front)
	if err != nil {
		r.warn("Frontmatter is not parseable as YAML: " + err.Error())
		fmt.Fprintln(v.Out, "  ⚠ Frontmatter not parseable")
		return
	}

	if result.Valid {
		r.Passed++
		fmt.Fprintln(v.Out, "  ✓ Frontmatter matches schema")
		return
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		r.warn("schema: " + msg)
		fmt.Fprintf(v.Out, "  ⚠ %s\n", msg)
	}
}

// printResults writes the summary block after all checks have run.
func (v *Validator) printResults(r *Report) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(v.Out, "\n%s\nValidation Results\n%s\n", line, line)
	fmt.Fprintf(v.Out, "Passed: %d\n", r.Passed)
	fmt.Fprintf(v.Out, "Warnings: %d\n", len(r.Warnings))
	fmt.Fprintf(v.Out, "Errors: %d\n", len(r.Issues))

	if len(r.Warnings) > 0 {
		fmt.Fprintln(v.Out, "\n⚠ Warnings:")
		for _, w := range r.Warnings {
			fmt.Fprintf(v.Out, "  - %s\n", w)
		}
	}

	if len(r.Issues) > 0 {
		fmt.Fprintln(v.Out, "\n✗ Errors:")
		for _, issue := range r.Issues {
			fmt.Fprintf(v.Out, "  - %s\n", issue)
		}
		fmt.Fprintln(v.Out, "\nValidation FAILED")
		return
	}

	fmt.Fprintln(v.Out, "\nValidation PASSED")
	fmt.Fprintln(v.Out, "\nBundle is ready for packaging.")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// firstLine reads the first line of a file without loading the whole file.
func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}

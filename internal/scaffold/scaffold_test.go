package scaffold

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Skill", "my-skill"},
		{"data_extractor", "data-extractor"},
		{"Already-Kebab", "already-kebab"},
		{"weird!!chars##", "weirdchars"},
		{"--edges--", "edges"},
		{"a  b", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToKebabCase(tt.in); got != tt.want {
				t.Errorf("ToKebabCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewDataDefaults(t *testing.T) {
	d := NewData("My Skill", "")

	if d.Name != "my-skill" {
		t.Errorf("Name = %q, want my-skill", d.Name)
	}
	if d.Version != "0.1.0" {
		t.Errorf("Version = %q, want 0.1.0", d.Version)
	}
	if len(d.Description) < 20 {
		t.Errorf("default description %q too short to pass validation", d.Description)
	}
	if d.Year == 0 {
		t.Error("Year should not be zero")
	}
}

func TestRegistry(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 3 {
		t.Fatalf("Kinds() = %v, want 3 entries", kinds)
	}
	for _, k := range kinds {
		desc, useCases, ok := Describe(k)
		if !ok {
			t.Errorf("Describe(%s) not found", k)
		}
		if desc == "" || len(useCases) == 0 {
			t.Errorf("Describe(%s) = %q, %v: incomplete entry", k, desc, useCases)
		}
	}
	if ValidKind("fancy") {
		t.Error("ValidKind should reject unregistered kinds")
	}
}

func TestGenerateSimple(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "my-skill")
	data := NewData("my-skill", "A skill that summarizes long documents")

	result, err := Generate(KindSimple, data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	wantFiles := []string{"README.md", "SKILL.md"}
	assertFiles(t, result, wantFiles)

	content := readGenerated(t, outDir, "SKILL.md")
	assertContains(t, content, "name: my-skill")
	assertContains(t, content, "description: A skill that summarizes long documents")
	assertContains(t, content, "version: 0.1.0")
	if strings.Contains(content, "{{") {
		t.Error("unrendered template placeholders in SKILL.md")
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerateWithTags(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "tagged")
	data := NewData("tagged", "A skill that extracts entities from text")
	data.Tags = []string{"nlp", "extraction"}

	_, err := Generate(KindSimple, data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	content := readGenerated(t, outDir, "SKILL.md")
	assertContains(t, content, "tags: [nlp, extraction]")
}

func TestGenerateIntermediate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "converter")
	data := NewData("converter", "A skill that converts between file formats")

	result, err := Generate(KindIntermediate, data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	wantFiles := []string{
		"README.md",
		"SKILL.md",
		"reference/config.yaml",
		"scripts/__init__.py",
		"scripts/processor.py",
	}
	assertFiles(t, result, wantFiles)

	script := readGenerated(t, outDir, "scripts/processor.py")
	if !strings.HasPrefix(script, "#!/usr/bin/env python3") {
		t.Error("processor.py missing shebang")
	}
	assertContains(t, script, "converter processor")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(outDir, "scripts", "processor.py"))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode()&0111 == 0 {
			t.Error("processor.py not executable")
		}

		info, err = os.Stat(filepath.Join(outDir, "scripts", "__init__.py"))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode()&0111 != 0 {
			t.Error("__init__.py placeholder should not be executable")
		}
	}
}

func TestGenerateComplex(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "researcher")
	data := NewData("researcher", "A skill that runs multi-step research workflows")

	result, err := Generate(KindComplex, data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	wantFiles := []string{
		"README.md",
		"SKILL.md",
		"examples/example-usage.md",
		"reference/config.yaml",
		"reference/documentation.md",
		"scripts/__init__.py",
		"scripts/helpers.py",
		"scripts/processor.py",
	}
	assertFiles(t, result, wantFiles)
}

func TestGenerateRefusesNonEmptyDir(t *testing.T) {
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "existing.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(KindSimple, NewData("x-skill", "A skill that does nothing interesting"), outDir)
	if err == nil {
		t.Fatal("expected error for non-empty output directory")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("error = %v, want not-empty complaint", err)
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := Generate("fancy", NewData("x", ""), t.TempDir())
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestGenerateShortDescriptionWarns(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "terse")
	data := NewData("terse", "")
	data.Description = "too short"

	result, err := Generate(KindSimple, data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected schema warnings for short description")
	}
}

func TestLoadSpec(t *testing.T) {
	t.Run("full spec", func(t *testing.T) {
		path := writeSpec(t, `{
  "name": "Data Extractor",
  "description": "Extracts structured data from documents",
  "version": "2.1.0",
  "tags": ["data", "extraction"],
  "kind": "intermediate"
}`)
		spec, err := LoadSpec(path)
		if err != nil {
			t.Fatalf("LoadSpec() error: %v", err)
		}
		if spec.Kind != KindIntermediate {
			t.Errorf("Kind = %q, want intermediate", spec.Kind)
		}

		d := spec.Data()
		if d.Name != "data-extractor" {
			t.Errorf("Name = %q, want data-extractor", d.Name)
		}
		if d.Version != "2.1.0" {
			t.Errorf("Version = %q, want 2.1.0", d.Version)
		}
		if len(d.Tags) != 2 {
			t.Errorf("Tags = %v, want 2 entries", d.Tags)
		}
	})

	t.Run("kind defaults to simple", func(t *testing.T) {
		path := writeSpec(t, `{"name": "minimal"}`)
		spec, err := LoadSpec(path)
		if err != nil {
			t.Fatalf("LoadSpec() error: %v", err)
		}
		if spec.Kind != KindSimple {
			t.Errorf("Kind = %q, want simple", spec.Kind)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeSpec(t, `{"description": "no name"}`)
		if _, err := LoadSpec(path); err == nil {
			t.Fatal("expected error for missing name")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		path := writeSpec(t, `{"name": "x", "kind": "galactic"}`)
		if _, err := LoadSpec(path); err == nil {
			t.Fatal("expected error for unknown kind")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeSpec(t, `{not json`)
		if _, err := LoadSpec(path); err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertFiles(t *testing.T, result *Result, want []string) {
	t.Helper()
	got := append([]string(nil), result.Files...)
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Errorf("content missing %q", want)
	}
}

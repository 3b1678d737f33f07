package bundle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBundleIdentity(t *testing.T) {
	b := New("/tmp/skills/data-extractor")

	if b.Name() != "data-extractor" {
		t.Errorf("Name() = %q, want data-extractor", b.Name())
	}
	if b.SkillFile() != filepath.Join("/tmp/skills/data-extractor", "SKILL.md") {
		t.Errorf("SkillFile() = %q", b.SkillFile())
	}
}

func TestBundleExists(t *testing.T) {
	dir := t.TempDir()

	if !New(dir).Exists() {
		t.Error("Exists() = false for a real directory")
	}
	if New(filepath.Join(dir, "missing")).Exists() {
		t.Error("Exists() = true for a missing path")
	}

	// A regular file is not a bundle root.
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if New(file).Exists() {
		t.Error("Exists() = true for a regular file")
	}
}

func TestReadSkillFile(t *testing.T) {
	dir := t.TempDir()
	content := "---\nname: x\n---\nBody\n"
	if err := os.WriteFile(filepath.Join(dir, MetadataFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := New(dir).ReadSkillFile()
	if err != nil {
		t.Fatalf("ReadSkillFile() error: %v", err)
	}
	if string(data) != content {
		t.Errorf("content = %q, want %q", data, content)
	}

	if _, err := New(filepath.Join(dir, "missing")).ReadSkillFile(); err == nil {
		t.Error("expected error for missing bundle")
	}
}

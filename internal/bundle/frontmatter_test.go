package bundle

import (
	"strings"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantOK    bool
		wantFront string
		wantBody  string
	}{
		{
			name:      "well formed",
			content:   "---\nname: my-skill\ndescription: does things\n---\n# My Skill\n\nBody text.\n",
			wantOK:    true,
			wantFront: "name: my-skill\ndescription: does things\n",
			wantBody:  "# My Skill\n\nBody text.\n",
		},
		{
			name:    "no opening fence",
			content: "# Just a title\n\nname: my-skill\n",
			wantOK:  false,
		},
		{
			name:    "unclosed fence",
			content: "---\nname: my-skill\nno closing delimiter\n",
			wantOK:  false,
		},
		{
			name:    "empty content",
			content: "",
			wantOK:  false,
		},
		{
			name:      "empty body",
			content:   "---\nname: x\n---\n",
			wantOK:    true,
			wantFront: "name: x\n",
			wantBody:  "",
		},
		{
			name:      "closing fence without trailing newline",
			content:   "---\nname: x\n---",
			wantOK:    true,
			wantFront: "name: x\n",
			wantBody:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front, body, ok := SplitFrontmatter([]byte(tt.content))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if string(front) != tt.wantFront {
				t.Errorf("front = %q, want %q", front, tt.wantFront)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestHasField(t *testing.T) {
	front := []byte("Name: my-skill\ndescription: something useful\n")

	if !HasField(front, "name") {
		t.Error("expected name to be found case-insensitively")
	}
	if !HasField(front, "description") {
		t.Error("expected description to be found")
	}
	if HasField(front, "version") {
		t.Error("did not expect version to be found")
	}
}

func TestParseMetadata(t *testing.T) {
	front := []byte("name: my-skill\ndescription: something genuinely useful\nversion: 1.2.0\ntags: [docs, tooling]\n")

	m, err := ParseMetadata(front)
	if err != nil {
		t.Fatalf("ParseMetadata() error: %v", err)
	}
	if m.Name != "my-skill" {
		t.Errorf("Name = %q, want %q", m.Name, "my-skill")
	}
	if m.Description != "something genuinely useful" {
		t.Errorf("Description = %q", m.Description)
	}
	if m.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", m.Version, "1.2.0")
	}
	if len(m.Tags) != 2 || m.Tags[0] != "docs" || m.Tags[1] != "tooling" {
		t.Errorf("Tags = %v, want [docs tooling]", m.Tags)
	}
}

func TestParseMetadataInvalidYAML(t *testing.T) {
	_, err := ParseMetadata([]byte("name: [unclosed\n"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "parsing frontmatter") {
		t.Errorf("error = %v, want to mention frontmatter parsing", err)
	}
}

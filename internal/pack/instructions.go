package pack

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/install.md.tmpl
var instructionsFS embed.FS

var instructionsTmpl = template.Must(
	template.ParseFS(instructionsFS, "templates/install.md.tmpl"))

// PackageWithInstructions packages the bundle and then writes a
// <name>-INSTALL.md companion document next to the archive. Returns the
// archive path.
func (p *Packager) PackageWithInstructions(outputDir string) (string, error) {
	archivePath, err := p.Package(outputDir)
	if err != nil {
		return "", err
	}

	installPath := filepath.Join(filepath.Dir(archivePath), p.Bundle.Name()+"-INSTALL.md")

	var buf bytes.Buffer
	data := struct{ Name string }{Name: p.Bundle.Name()}
	if err := instructionsTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering install instructions: %w", err)
	}

	if err := os.WriteFile(installPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", installPath, err)
	}

	fmt.Fprintf(p.Out, "\n✓ Created: %s\n", installPath)
	return archivePath, nil
}

package pack

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skillpack-labs/skillpack/internal/bundle"
)

// ArchiveExt is the file extension of produced archives.
const ArchiveExt = ".zip"

// ValidationError reports a bundle that failed the pre-packaging integrity
// check. It is distinct from filesystem errors, which propagate unwrapped.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "bundle validation failed: " + e.Reason
}

// Packager archives one bundle. It is scoped to a single bundle and is not
// reused concurrently.
type Packager struct {
	// Bundle is the bundle to package.
	Bundle *bundle.Bundle
	// Out receives per-entry progress and the final artifact summary.
	Out io.Writer

	printer *message.Printer
}

// New returns a Packager for the given bundle, reporting to stdout.
func New(b *bundle.Bundle) *Packager {
	return &Packager{
		Bundle:  b,
		Out:     os.Stdout,
		printer: message.NewPrinter(language.English),
	}
}

// Validate performs the reduced integrity check required before packaging:
// the bundle root exists, SKILL.md exists, and its first line opens a
// frontmatter block. This is intentionally narrower than the full
// validation pipeline; packaging does not require full metadata compliance.
func (p *Packager) Validate() error {
	if !p.Bundle.Exists() {
		return &ValidationError{Reason: fmt.Sprintf("bundle path does not exist: %s", p.Bundle.Root)}
	}

	skillFile := p.Bundle.SkillFile()
	f, err := os.Open(skillFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &ValidationError{Reason: fmt.Sprintf("%s not found in %s", bundle.MetadataFileName, p.Bundle.Root)}
		}
		return fmt.Errorf("opening %s: %w", skillFile, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Scan()
	if !strings.HasPrefix(strings.TrimSpace(scanner.Text()), "---") {
		return &ValidationError{Reason: bundle.MetadataFileName + " missing YAML frontmatter"}
	}

	return nil
}

// Package validates the bundle and writes <name>.zip into outputDir,
// defaulting to the bundle's parent directory. Every regular file under the
// bundle root is stored at <name>/<relative-path>, skipping dotfiles and
// dot-directories at any depth. Returns the archive path.
func (p *Packager) Package(outputDir string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	fmt.Fprintln(p.Out, "✓ Bundle structure validated")

	if outputDir == "" {
		outputDir = filepath.Dir(p.Bundle.Root)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	name := p.Bundle.Name()
	archivePath := filepath.Join(outputDir, name+ArchiveExt)

	fmt.Fprintf(p.Out, "Packaging %s...\n", name)

	if err := p.writeArchive(archivePath); err != nil {
		return "", err
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		return "", fmt.Errorf("stat archive: %w", err)
	}

	fmt.Fprintf(p.Out, "\n✓ Created: %s\n", archivePath)
	p.printer.Fprintf(p.Out, "  Size: %d bytes\n", info.Size())

	return archivePath, nil
}

// writeArchive stores the bundle's files into a zip at archivePath. The
// archive is assembled in a sibling temp file and renamed into place; on
// any failure the temp file is removed.
func (p *Packager) writeArchive(archivePath string) (err error) {
	tmpPath := archivePath + ".tmp"

	zipFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating archive file: %w", err)
	}
	defer func() {
		if err != nil {
			zipFile.Close()
			os.Remove(tmpPath)
		}
	}()

	zw := zip.NewWriter(zipFile)
	name := p.Bundle.Name()

	err = filepath.WalkDir(p.Bundle.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if strings.HasPrefix(d.Name(), ".") && path != p.Bundle.Root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(p.Bundle.Root, path)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		entryName := filepath.ToSlash(filepath.Join(name, relPath))

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("building header for %s: %w", path, err)
		}
		header.Name = entryName
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("creating entry %s: %w", entryName, err)
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		if _, err := io.Copy(w, f); err != nil {
			return fmt.Errorf("writing entry %s: %w", entryName, err)
		}

		fmt.Fprintf(p.Out, "  + %s\n", entryName)
		return nil
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("archiving %s: %w", p.Bundle.Root, err)
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	if err = zipFile.Close(); err != nil {
		return fmt.Errorf("closing archive file: %w", err)
	}

	if err = os.Rename(tmpPath, archivePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving archive into place: %w", err)
	}
	return nil
}

package pack

import (
	"archive/zip"
	"fmt"
	"strings"
)

// Entry describes one file stored in a produced archive.
type Entry struct {
	// Name is the archive-internal path (forward slashes).
	Name string
	// Size is the uncompressed size in bytes.
	Size uint64
}

// List opens an archive and returns its file entries in stored order.
// Directory entries are omitted. This is a read-only inspection; nothing
// is extracted.
func List(archivePath string) ([]Entry, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", archivePath, err)
	}
	defer r.Close()

	var entries []Entry
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		entries = append(entries, Entry{
			Name: f.Name,
			Size: f.UncompressedSize64,
		})
	}
	return entries, nil
}

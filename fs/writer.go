// Package fs provides atomic file persistence for conversion artifacts.
package fs

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/taxagent/taxagent"
)

// Ensure Writer implements taxagent.ArtifactWriter at compile time.
var _ taxagent.ArtifactWriter = (*Writer)(nil)

// Writer writes files with atomic update semantics: content goes to a
// temporary file in the destination directory and is renamed into place
// only on success, so the destination is never observed partially written.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile atomically writes data to path.
func (w *Writer) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return taxagent.Errorf(taxagent.EIO, "create directory %s: %v", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return taxagent.Errorf(taxagent.EIO, "write %s: %v", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return taxagent.Errorf(taxagent.EIO, "rename %s: %v", tmp, err)
	}
	return nil
}

// WriteArtifact atomically writes the artifact with its frontmatter to path.
func (w *Writer) WriteArtifact(path string, a *taxagent.Artifact) error {
	return w.WriteFile(path, []byte(FormatArtifact(a)))
}

// FormatArtifact formats an artifact with YAML frontmatter.
func FormatArtifact(a *taxagent.Artifact) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(a.SourcePath)
	b.WriteString("\nhash: ")
	b.WriteString(a.SourceHash)
	b.WriteString("\nconverted: ")
	b.WriteString(a.ConvertedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(a.Content)
	return b.String()
}

// ReadArtifactHash reads the source hash from the frontmatter of a
// previously written artifact. Returns false if the file does not exist or
// carries no hash.
func ReadArtifactHash(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || scanner.Text() != "---" {
		return "", false
	}
	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			break
		}
		if hash, ok := strings.CutPrefix(line, "hash: "); ok {
			return strings.TrimSpace(hash), hash != ""
		}
	}
	return "", false
}

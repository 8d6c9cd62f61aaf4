package taxagent

import "time"

// Artifact is the Markdown document produced by the conversion pipeline,
// the only persisted output of a run.
type Artifact struct {
	// SourcePath is the XML file the artifact was converted from.
	SourcePath string

	// SourceHash identifies the source contents, so reruns on an unchanged
	// source can be skipped.
	SourceHash string

	ConvertedAt time.Time
	Content     string
}

// FileWriter writes a file atomically: the destination is never observed
// in a partially written state.
type FileWriter interface {
	WriteFile(path string, data []byte) error
}

// ArtifactWriter persists conversion artifacts atomically.
type ArtifactWriter interface {
	FileWriter

	// WriteArtifact writes the artifact with its frontmatter to path.
	WriteArtifact(path string, a *Artifact) error
}

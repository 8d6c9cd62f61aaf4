package mock

import "github.com/taxagent/taxagent"

var _ taxagent.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of taxagent.ArtifactWriter.
type ArtifactWriter struct {
	WriteFileFn     func(path string, data []byte) error
	WriteArtifactFn func(path string, a *taxagent.Artifact) error
}

func (w *ArtifactWriter) WriteFile(path string, data []byte) error {
	return w.WriteFileFn(path, data)
}

func (w *ArtifactWriter) WriteArtifact(path string, a *taxagent.Artifact) error {
	return w.WriteArtifactFn(path, a)
}

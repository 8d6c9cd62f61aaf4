// Package convert orchestrates the XML to Markdown conversion pipeline:
// parse, flatten, render, atomic write.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/taxagent/taxagent"
)

// Converter runs the conversion pipeline. Any stage failure aborts the run
// before output is persisted; data-quality warnings are logged and do not
// abort.
type Converter struct {
	Parser taxagent.Parser
	Writer taxagent.ArtifactWriter
	Logger *slog.Logger

	// HashLookup returns the source hash recorded in an existing artifact,
	// so unchanged sources can be skipped. May be nil.
	HashLookup func(path string) (string, bool)
}

// Result holds the outcome of a conversion run.
type Result struct {
	Records  int
	Warnings int
	Bytes    int
	Hash     string
	Skipped  bool
}

// Run converts the XML file at xmlPath into a Markdown artifact at outPath.
// When reprocess is false and the existing artifact was produced from an
// identical source, the run is skipped.
func (c *Converter) Run(ctx context.Context, xmlPath, outPath string, reprocess bool) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(xmlPath)
	if err != nil {
		return nil, taxagent.Errorf(taxagent.EIO, "read %s: %v", xmlPath, err)
	}
	hash := HashContent(data)
	logger.Info("loaded source", "path", xmlPath, "bytes", len(data), "hash", hash)

	if !reprocess && c.HashLookup != nil {
		if existing, ok := c.HashLookup(outPath); ok && existing == hash {
			logger.Info("destination up to date, skipping", "path", outPath)
			return &Result{Hash: hash, Skipped: true}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	begin := time.Now()
	root, err := c.Parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse stage: %w", err)
	}
	logger.Info("parsed source tree", "duration", time.Since(begin))

	records, warnings := taxagent.Flatten(root)
	for _, w := range warnings {
		logger.Warn("data-quality anomaly",
			"kind", w.Kind.String(),
			"path", w.Path,
			"detail", w.Message,
		)
	}
	logger.Info("flattened tree", "records", len(records), "warnings", len(warnings))

	markdown := taxagent.Render(records)

	artifact := &taxagent.Artifact{
		SourcePath:  xmlPath,
		SourceHash:  hash,
		ConvertedAt: time.Now(),
		Content:     markdown,
	}
	if err := c.Writer.WriteArtifact(outPath, artifact); err != nil {
		return nil, fmt.Errorf("write stage: %w", err)
	}
	logger.Info("wrote artifact", "path", outPath, "bytes", len(markdown))

	return &Result{
		Records:  len(records),
		Warnings: len(warnings),
		Bytes:    len(markdown),
		Hash:     hash,
	}, nil
}

// HashContent returns the xxhash digest of content as a hex string.
func HashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Package format reformats a converted Markdown document through an LLM,
// chunk by chunk, with resumable intermediate state.
package format

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/taxagent/taxagent"
)

// defaultMaxChunkSize bounds chunk size in characters.
const defaultMaxChunkSize = 5000

// checkpointEvery controls how often the joined output is checkpointed.
const checkpointEvery = 10

var chunkFileRe = regexp.MustCompile(`^formatted_(\d+)\.md$`)

// Runner drives the chunked reformatting job. Chunks are processed
// sequentially (one model call in flight); each formatted chunk is saved
// to the intermediate directory so an interrupted job can resume.
type Runner struct {
	Formatter taxagent.ChunkFormatter
	Writer    taxagent.FileWriter
	Logger    *slog.Logger

	// IntermediateDir holds per-chunk files (formatted_<n>.md). Defaults
	// to "<outPath>.chunks".
	IntermediateDir string

	// MaxChunkSize bounds chunk size in characters. Defaults to 5000.
	MaxChunkSize int

	// RetryDelays overrides the backoff delays, mainly for tests.
	RetryDelays []time.Duration
}

// Options configures a formatting run.
type Options struct {
	// Resume continues from the highest previously completed chunk.
	Resume bool

	// Clean removes intermediate files after a successful run.
	Clean bool
}

// Result holds the outcome of a formatting run.
type Result struct {
	Chunks    int
	Formatted int
	Failed    int
}

// Run reformats the Markdown file at inPath and writes the result to
// outPath. A chunk that fails all retries is replaced with an error
// placeholder so chunk order is preserved.
func (r *Runner) Run(ctx context.Context, inPath, outPath string, opts Options) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxSize := r.MaxChunkSize
	if maxSize <= 0 {
		maxSize = defaultMaxChunkSize
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	dir := r.IntermediateDir
	if dir == "" {
		dir = outPath + ".chunks"
	}

	content, err := os.ReadFile(inPath)
	if err != nil {
		return nil, taxagent.Errorf(taxagent.EIO, "read %s: %v", inPath, err)
	}

	chunks := taxagent.SplitByParagraphs(string(content), maxSize)
	total := len(chunks)
	logger.Info("split content", "chunks", total, "bytes", len(content))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, taxagent.Errorf(taxagent.EIO, "create intermediate directory %s: %v", dir, err)
	}

	formatted := make([]string, 0, total)
	start := 0
	if opts.Resume {
		start = r.resumePoint(dir)
		for i := 0; i < start; i++ {
			prior, err := os.ReadFile(r.chunkPath(dir, i))
			if err != nil {
				return nil, taxagent.Errorf(taxagent.EIO, "resume: missing intermediate chunk %d: %v", i, err)
			}
			formatted = append(formatted, string(prior))
		}
		logger.Info("resuming", "from_chunk", start)
	}

	result := &Result{Chunks: total}
	begin := time.Now()

	for i := start; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunkBegin := time.Now()
		req := taxagent.ChunkRequest{
			Index:   i,
			Total:   total,
			Current: chunks[i],
		}
		if i > 0 {
			req.Previous = chunks[i-1]
		}
		if i < total-1 {
			req.Next = chunks[i+1]
		}
		if existing, err := os.ReadFile(r.chunkPath(dir, i)); err == nil {
			req.Existing = string(existing)
		}

		text, err := formatWithRetry(ctx, r.Formatter, req, delays, logger)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Warn("all attempts failed, inserting placeholder", "chunk", i+1, "error", err)
			text = fmt.Sprintf("[ERROR: failed to format chunk %d]", i+1)
			result.Failed++
		} else {
			if err := os.WriteFile(r.chunkPath(dir, i), []byte(text), 0644); err != nil {
				return nil, taxagent.Errorf(taxagent.EIO, "save intermediate chunk %d: %v", i, err)
			}
			result.Formatted++
		}
		formatted = append(formatted, text)

		elapsed := time.Since(begin)
		done := i - start + 1
		remaining := time.Duration(0)
		if done > 0 {
			remaining = elapsed / time.Duration(done) * time.Duration(total-i-1)
		}
		logger.Info("chunk completed",
			"chunk", i+1,
			"total", total,
			"duration", time.Since(chunkBegin),
			"est_remaining", remaining,
		)

		if (i+1)%checkpointEvery == 0 && i != total-1 {
			checkpoint := outPath + ".checkpoint"
			if err := r.Writer.WriteFile(checkpoint, []byte(strings.Join(formatted, "\n\n"))); err != nil {
				return nil, err
			}
			logger.Info("saved checkpoint", "path", checkpoint)
		}
	}

	if err := r.Writer.WriteFile(outPath, []byte(strings.Join(formatted, "\n\n"))); err != nil {
		return nil, err
	}
	logger.Info("formatting complete", "path", outPath, "duration", time.Since(begin))

	if opts.Clean {
		r.clean(dir, outPath, total, logger)
	}

	return result, nil
}

// resumePoint returns the index after the highest completed chunk file.
func (r *Runner) resumePoint(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	next := 0
	for _, e := range entries {
		m := chunkFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n+1 > next {
			next = n + 1
		}
	}
	return next
}

func (r *Runner) chunkPath(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("formatted_%d.md", i))
}

// clean removes intermediate chunk files and the checkpoint.
func (r *Runner) clean(dir, outPath string, total int, logger *slog.Logger) {
	for i := 0; i < total; i++ {
		if err := os.Remove(r.chunkPath(dir, i)); err != nil && !os.IsNotExist(err) {
			logger.Warn("removing intermediate file", "chunk", i, "error", err)
		}
	}
	if err := os.Remove(outPath + ".checkpoint"); err != nil && !os.IsNotExist(err) {
		logger.Warn("removing checkpoint", "error", err)
	}
	_ = os.Remove(dir)
}

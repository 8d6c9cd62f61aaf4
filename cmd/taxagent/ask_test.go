package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxagent/taxagent"
	"github.com/taxagent/taxagent/bloom"
	main "github.com/taxagent/taxagent/cmd/taxagent"
	"github.com/taxagent/taxagent/goldmark"
	"github.com/taxagent/taxagent/mock"
)

const testCorpus = `## §63 Taxable income defined
Source: 26 USC §63

The term taxable income means gross income minus the deductions allowed.

### §63(c) Standard Deduction
Source: 26 USC §63(c)

The standard deduction reduces taxable income for taxpayers who do not itemize.
`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tax_code.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func askDeps(stdin string, stdout *bytes.Buffer, asker taxagent.Asker) *main.Dependencies {
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    strings.NewReader(stdin),
		Stdout:   stdout,
		Stderr:   &bytes.Buffer{},
		Logger:   discardLogger(),
		Splitter: goldmark.NewSplitter(),
		NewIndex: func(sections []taxagent.Section) taxagent.Index {
			return bloom.NewIndex(sections)
		},
		Asker: asker,
	}
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("one-shot question prints the answer", func(t *testing.T) {
		t.Parallel()

		corpus := writeCorpus(t, testCorpus)

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
				assert.NotEmpty(t, sections)
				return "The standard deduction is defined in §63(c).\n\nSource: 26 USC §63(c)", nil
			},
		}

		stdout := &bytes.Buffer{}
		cmd := &main.AskCmd{Corpus: corpus, Question: "What is the standard deduction?"}

		err := cmd.Run(askDeps("", stdout, asker))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "The standard deduction is defined in §63(c).")
		assert.Contains(t, stdout.String(), "Source:")
	})

	t.Run("interactive loop answers until exit", func(t *testing.T) {
		t.Parallel()

		corpus := writeCorpus(t, testCorpus)

		calls := 0
		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
				calls++
				return "answer " + question, nil
			},
		}

		stdout := &bytes.Buffer{}
		cmd := &main.AskCmd{Corpus: corpus}

		err := cmd.Run(askDeps("What is the standard deduction?\nexit\n", stdout, asker))

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Contains(t, stdout.String(), "answer What is the standard deduction?")
		assert.Contains(t, stdout.String(), "Goodbye!")
	})

	t.Run("interactive loop survives asker errors", func(t *testing.T) {
		t.Parallel()

		corpus := writeCorpus(t, testCorpus)

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
				return "", taxagent.Errorf(taxagent.EINTERNAL, "model unavailable")
			},
		}

		stdout := &bytes.Buffer{}
		deps := askDeps("What is the standard deduction?\nquit\n", stdout, asker)
		stderr := deps.Stderr.(*bytes.Buffer)
		cmd := &main.AskCmd{Corpus: corpus}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "model unavailable")
		assert.Contains(t, stdout.String(), "Goodbye!")
	})

	t.Run("blank interactive lines are ignored", func(t *testing.T) {
		t.Parallel()

		corpus := writeCorpus(t, testCorpus)

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
				t.Fatal("asker should not be called")
				return "", nil
			},
		}

		stdout := &bytes.Buffer{}
		cmd := &main.AskCmd{Corpus: corpus}

		err := cmd.Run(askDeps("\n   \nbye\n", stdout, asker))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Goodbye!")
	})

	t.Run("missing corpus file", func(t *testing.T) {
		t.Parallel()

		cmd := &main.AskCmd{Corpus: filepath.Join(t.TempDir(), "missing.md"), Question: "q"}

		err := cmd.Run(askDeps("", &bytes.Buffer{}, &mock.Asker{}))

		require.Error(t, err)
		assert.Equal(t, taxagent.EIO, taxagent.ErrorCode(err))
	})

	t.Run("corpus without sections", func(t *testing.T) {
		t.Parallel()

		corpus := writeCorpus(t, "no headings here\n\njust text")

		cmd := &main.AskCmd{Corpus: corpus, Question: "q"}

		err := cmd.Run(askDeps("", &bytes.Buffer{}, &mock.Asker{}))

		require.Error(t, err)
		assert.Equal(t, taxagent.ENOTFOUND, taxagent.ErrorCode(err))
	})
}

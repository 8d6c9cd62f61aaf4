package slog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxagent/taxagent"
	"github.com/taxagent/taxagent/mock"
	taxslog "github.com/taxagent/taxagent/slog"
)

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	sections := []taxagent.ScoredSection{
		{Section: taxagent.Section{Heading: "§63(c)", Citation: "26 USC §63(c)"}, Score: 1},
	}

	t.Run("logs success and passes the answer through", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		a := taxslog.NewLoggingAsker(&mock.Asker{
			AskFn: func(ctx context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
				return "the answer", nil
			},
		}, logger)

		got, err := a.Ask(context.Background(), "What is the standard deduction?", sections)

		require.NoError(t, err)
		assert.Equal(t, "the answer", got)
		assert.Contains(t, buf.String(), "answered question")
		assert.Contains(t, buf.String(), "sections=1")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		a := taxslog.NewLoggingAsker(&mock.Asker{
			AskFn: func(ctx context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
				return "", taxagent.Errorf(taxagent.EINTERNAL, "model unavailable")
			},
		}, logger)

		_, err := a.Ask(context.Background(), "question", sections)

		require.Error(t, err)
		assert.Equal(t, taxagent.EINTERNAL, taxagent.ErrorCode(err))
		assert.Contains(t, buf.String(), "ask failed")
	})
}

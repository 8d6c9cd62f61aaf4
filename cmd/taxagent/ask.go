package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/taxagent/taxagent"
)

// AskCmd answers questions about a converted Markdown corpus. With a
// question argument it answers once and exits; without one it starts an
// interactive loop.
type AskCmd struct {
	Corpus   string `arg:"" help:"Path to the Markdown corpus." type:"existingfile"`
	Question string `arg:"" optional:"" help:"Question to answer. Omit for interactive mode."`

	Backend string `help:"LLM backend to use." enum:"ollama,gemini" default:"ollama"`
	Model   string `help:"Model name. Defaults to the backend's default model."`
}

func (c *AskCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Corpus)
	if err != nil {
		return taxagent.Errorf(taxagent.EIO, "read corpus %s: %v", c.Corpus, err)
	}

	sections := deps.Splitter.Split(string(data))
	if len(sections) == 0 {
		return taxagent.Errorf(taxagent.ENOTFOUND, "no sections found in %s; run 'taxagent convert' first", c.Corpus)
	}

	agent := taxagent.NewAgent(deps.NewIndex(sections), deps.Asker)

	if c.Question != "" {
		answer, err := agent.Query(deps.Ctx, c.Question)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, answer)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d sections from %s.\n", len(sections), c.Corpus)
	fmt.Fprintln(deps.Stdout, "Ask a question about the US Tax Code (exit, quit, or bye to leave).")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "exit", "quit", "bye":
			fmt.Fprintln(deps.Stdout, "Goodbye!")
			return nil
		}

		answer, err := agent.Query(deps.Ctx, question)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", taxagent.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "\n%s\n\n", answer)
	}
	return scanner.Err()
}

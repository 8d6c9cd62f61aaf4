// Package goquery converts the source schema's HTML-like table elements to
// Markdown tables.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/taxagent/taxagent"
)

// Ensure TableConverter implements taxagent.TableConverter at compile time.
var _ taxagent.TableConverter = (*TableConverter)(nil)

// TableConverter extracts table cells with goquery and renders a Markdown
// table. Cell text is whitespace-normalized; pipe characters in cells are
// escaped so they cannot break the table syntax.
type TableConverter struct{}

// NewTableConverter creates a new TableConverter.
func NewTableConverter() *TableConverter {
	return &TableConverter{}
}

// Convert transforms a serialized table element into a Markdown table.
// Returns an empty string when the input contains no table element.
func (c *TableConverter) Convert(xml string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(xml))
	if err != nil {
		return "", taxagent.Errorf(taxagent.EINVALID, "parse table: %v", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return "", nil
	}

	var lines []string

	var headers []string
	table.Find("thead th").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, cellText(s))
	})
	if len(headers) > 0 {
		lines = append(lines, "| "+strings.Join(headers, " | ")+" |")
		seps := make([]string, len(headers))
		for i := range seps {
			seps[i] = "---"
		}
		lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		// Tables without an explicit tbody still carry rows.
		rows = table.Find("tr").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Find("td").Length() > 0
		})
	}
	rows.Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, cellText(td))
		})
		if len(cells) > 0 {
			lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
		}
	})

	return strings.Join(lines, "\n"), nil
}

func cellText(s *goquery.Selection) string {
	text := taxagent.NormalizeWhitespace(s.Text())
	return strings.ReplaceAll(text, "|", "\\|")
}

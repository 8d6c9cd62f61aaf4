package taxagent

import (
	"fmt"
	"strings"
)

// AskSystemInstruction is the system prompt shared by all Asker backends.
const AskSystemInstruction = "You are a tax expert assistant. Answer tax questions using only the provided sections of the US Tax Code. If the answer is not clear from these sections, say that you don't have enough information. Always cite the specific sections of the tax code that support your answer."

// BuildAskPrompt builds the user prompt containing the relevant tax code
// sections and the question.
func BuildAskPrompt(question string, sections []ScoredSection) string {
	var sb strings.Builder
	sb.WriteString("<sections>\n")
	for i, s := range sections {
		sb.WriteString("<section>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<heading>%s</heading>\n", s.Section.Heading)
		fmt.Fprintf(&sb, "<citation>%s</citation>\n", s.Section.Citation)
		fmt.Fprintf(&sb, "<content>%s</content>\n", s.Section.Content)
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</sections>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

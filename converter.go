package taxagent

// TableConverter converts an XML table element to a Markdown table.
type TableConverter interface {
	// Convert transforms a serialized table element into a Markdown table.
	// The input uses the HTML-like table vocabulary of the source schema
	// (thead/th, tbody/tr/td). Returns an empty string when the input
	// contains no table.
	Convert(xml string) (string, error)
}

// Package taxagent provides a local, CLI-based tax code assistant.
// It converts the US Tax Code (Title 26) from its XML encoding into
// normalized Markdown with per-section citations, and answers natural
// language tax questions against that corpus through an LLM.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, goldmark/, ollama/).
package taxagent

package taxagent

import "fmt"

// WarningKind categorizes a data-quality anomaly found during flattening.
type WarningKind int

// Data-quality warnings. Anomalies never abort a run.
const (
	WarnDuplicateIdentifier WarningKind = iota
	WarnEmptyBody
)

// String returns the snake_case name of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnDuplicateIdentifier:
		return "duplicate_identifier"
	case WarnEmptyBody:
		return "empty_body"
	default:
		return "unknown"
	}
}

// Warning is a data-quality anomaly detected in the source tree.
type Warning struct {
	Kind    WarningKind
	Path    []string // citation path of the offending node
	Message string
}

// Flatten walks the tree in pre-order and returns one SectionRecord per
// addressable unit, in source document order, together with any
// data-quality warnings.
//
// Nodes of kind section or deeper qualify when they carry a heading or body
// text. Titles and chapters qualify only when they carry body text of their
// own, but always contribute their identifier to descendants' citation
// paths. A parent's body text is never duplicated into its children's
// records. Records are never reordered or deduplicated: duplicate sibling
// identifiers pass through unchanged with a warning.
//
// The traversal uses an explicit stack so arbitrarily deep documents cannot
// exhaust the call stack.
func Flatten(root *Node) ([]SectionRecord, []Warning) {
	if root == nil {
		return nil, nil
	}

	type frame struct {
		node    *Node
		child   int
		entered bool
		pushed  bool
	}

	var (
		records  []SectionRecord
		warnings []Warning
		path     []string
		kinds    []Kind
	)

	stack := []*frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		n := f.node

		if !f.entered {
			f.entered = true

			if n.Identifier != "" {
				path = append(path, n.Identifier)
				kinds = append(kinds, n.Kind)
				f.pushed = true
			}

			if qualifies(n) {
				records = append(records, SectionRecord{
					CitationPath: append([]string(nil), path...),
					Kinds:        append([]Kind(nil), kinds...),
					Depth:        len(path),
					Heading:      n.Heading,
					Blocks:       append([]string(nil), n.Blocks...),
				})
			}

			if n.Kind.Sectional() && !n.HasBody() && len(n.Children) == 0 {
				warnings = append(warnings, Warning{
					Kind:    WarnEmptyBody,
					Path:    append([]string(nil), path...),
					Message: fmt.Sprintf("%s %s has no body text", n.Kind, n.Identifier),
				})
			}

			seen := make(map[string]bool, len(n.Children))
			for _, c := range n.Children {
				if c.Identifier == "" {
					continue
				}
				if seen[c.Identifier] {
					dupPath := append(append([]string(nil), path...), c.Identifier)
					warnings = append(warnings, Warning{
						Kind:    WarnDuplicateIdentifier,
						Path:    dupPath,
						Message: fmt.Sprintf("identifier %q is not unique among siblings", c.Identifier),
					})
				}
				seen[c.Identifier] = true
			}
		}

		if f.child < len(n.Children) {
			next := n.Children[f.child]
			f.child++
			stack = append(stack, &frame{node: next})
			continue
		}

		if f.pushed {
			path = path[:len(path)-1]
			kinds = kinds[:len(kinds)-1]
		}
		stack = stack[:len(stack)-1]
	}

	return records, warnings
}

// qualifies reports whether a node produces a SectionRecord of its own.
func qualifies(n *Node) bool {
	if n.Kind.Sectional() {
		return n.Heading != "" || n.HasBody()
	}
	if n.Kind == KindTitle || n.Kind == KindChapter {
		return n.HasBody()
	}
	return false
}

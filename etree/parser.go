// Package etree provides the XML parser for the legal-code conversion
// pipeline, built on beevik/etree.
package etree

import (
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/taxagent/taxagent"
)

// Ensure Parser implements taxagent.Parser at compile time.
var _ taxagent.Parser = (*Parser)(nil)

// Parser parses legal-code XML into a taxagent.Node tree.
//
// Elements are mapped through the fixed schema table. Unrecognized tags are
// opaque text containers: their text folds into the nearest enclosing
// structural node in reading order. Whitespace is normalized here so
// downstream stages work with clean text.
type Parser struct {
	tables taxagent.TableConverter
}

// NewParser creates a Parser using the given table converter.
func NewParser(tables taxagent.TableConverter) *Parser {
	return &Parser{tables: tables}
}

// ParseFile parses the XML file at path.
func (p *Parser) ParseFile(path string) (*taxagent.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, taxagent.Errorf(taxagent.EIO, "open %s: %v", path, err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse parses an XML document from r and returns the root node.
func (p *Parser) Parse(r io.Reader) (*taxagent.Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, taxagent.Errorf(taxagent.EMALFORMED, "not well-formed XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, taxagent.Errorf(taxagent.EMALFORMED, "document has no root element")
	}

	kind := taxagent.KindForTag(root.Tag)
	if kind == taxagent.KindUnknown {
		// An unrecognized root still acts as the document container so its
		// structural children parse normally.
		kind = taxagent.KindDocument
	}

	return p.convert(root, kind, nil)
}

// convert maps one structural element and its subtree to a Node.
func (p *Parser) convert(el *etree.Element, kind taxagent.Kind, path []string) (*taxagent.Node, error) {
	n := &taxagent.Node{Kind: kind}

	if kind != taxagent.KindDocument {
		n.Identifier = identifierOf(el)
		if n.Identifier == "" {
			return nil, taxagent.Errorf(taxagent.EMALFORMED, "%s element missing identifier (at %s)", kind, pathString(path))
		}
		n.Heading = taxagent.NormalizeWhitespace(childText(el, "heading"))
	}

	childPath := path
	if n.Identifier != "" {
		childPath = append(append([]string(nil), path...), n.Identifier)
	}

	var prose strings.Builder
	flush := func() {
		n.AddBlock(taxagent.NormalizeWhitespace(prose.String()))
		prose.Reset()
	}

	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			prose.WriteString(t.Data)

		case *etree.Element:
			if t.Tag == "num" || t.Tag == "heading" {
				continue
			}

			if k := taxagent.KindForTag(t.Tag); k != taxagent.KindUnknown {
				flush()
				child, err := p.convert(t, k, childPath)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, child)
				continue
			}

			switch t.Tag {
			case "table":
				flush()
				md, err := p.convertTable(t, childPath)
				if err != nil {
					return nil, err
				}
				n.AddBlock(md)
			case "list":
				flush()
				n.AddBlock(convertList(t))
			case "note", "notes":
				flush()
				n.AddBlock(convertNote(t))
			case "ref":
				prose.WriteString(" ")
				prose.WriteString(refMarkdown(t))
				prose.WriteString(" ")
			case "p":
				// Explicit paragraphs keep their own block so paragraph
				// breaks survive normalization.
				flush()
				n.AddBlock(taxagent.NormalizeWhitespace(inlineText(t)))
			default:
				// Opaque text container: fold its text into the enclosing
				// node, preserving reading order. A structural element
				// nested inside an opaque one cannot be flattened without
				// losing its citation.
				if s := findStructural(t); s != "" {
					return nil, taxagent.Errorf(taxagent.EUNSUPPORTED, "structural element <%s> nested inside opaque <%s> (at %s)", s, t.Tag, pathString(childPath))
				}
				prose.WriteString(" ")
				prose.WriteString(inlineText(t))
				prose.WriteString(" ")
			}
		}
	}
	flush()

	return n, nil
}

// convertTable serializes a table element and hands it to the table
// converter.
func (p *Parser) convertTable(el *etree.Element, path []string) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	xml, err := doc.WriteToString()
	if err != nil {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "serialize table (at %s): %v", pathString(path), err)
	}
	if p.tables == nil {
		return "", nil
	}
	md, err := p.tables.Convert(xml)
	if err != nil {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "convert table (at %s): %v", pathString(path), err)
	}
	return md, nil
}

// convertList renders a list element as Markdown bullet items.
func convertList(el *etree.Element) string {
	var lines []string
	for _, item := range el.FindElements(".//item") {
		if t := taxagent.NormalizeWhitespace(inlineText(item)); t != "" {
			lines = append(lines, "* "+t)
		}
	}
	return strings.Join(lines, "\n")
}

// convertNote renders a note element as a Markdown blockquote, with the
// note heading bolded.
func convertNote(el *etree.Element) string {
	var lines []string
	if heading := taxagent.NormalizeWhitespace(childText(el, "heading")); heading != "" {
		lines = append(lines, "> **"+heading+"**")
	}

	var body strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			body.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == "heading" || t.Tag == "num" {
				continue
			}
			body.WriteString(" ")
			body.WriteString(inlineText(t))
			body.WriteString(" ")
		}
	}
	if b := taxagent.NormalizeWhitespace(body.String()); b != "" {
		lines = append(lines, "> "+b)
	}

	return strings.Join(lines, "\n")
}

// refMarkdown renders a ref element as a Markdown link, or emphasis when
// it has no href.
func refMarkdown(el *etree.Element) string {
	text := taxagent.NormalizeWhitespace(inlineText(el))
	if text == "" {
		return ""
	}
	if href := el.SelectAttrValue("href", ""); href != "" {
		return "[" + text + "](" + href + ")"
	}
	return "*" + text + "*"
}

// inlineText collects the reading-order text of a subtree, rendering
// nested refs as links.
func inlineText(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == "ref" {
				sb.WriteString(" ")
				sb.WriteString(refMarkdown(t))
				sb.WriteString(" ")
				continue
			}
			sb.WriteString(inlineText(t))
		}
	}
	return sb.String()
}

// findStructural returns the tag of the first structural element in the
// subtree, or an empty string if there is none.
func findStructural(el *etree.Element) string {
	for _, c := range el.ChildElements() {
		if taxagent.KindForTag(c.Tag) != taxagent.KindUnknown {
			return c.Tag
		}
		if s := findStructural(c); s != "" {
			return s
		}
	}
	return ""
}

// identifierOf extracts the normalized identifier of a structural element:
// the value attribute or text of its num child, falling back to the id and
// identifier attributes.
func identifierOf(el *etree.Element) string {
	if num := el.SelectElement("num"); num != nil {
		if v := num.SelectAttrValue("value", ""); v != "" {
			return taxagent.NormalizeIdentifier(v)
		}
		if t := taxagent.NormalizeWhitespace(num.Text()); t != "" {
			return taxagent.NormalizeIdentifier(t)
		}
	}
	if v := el.SelectAttrValue("id", ""); v != "" {
		return taxagent.NormalizeIdentifier(v)
	}
	if v := el.SelectAttrValue("identifier", ""); v != "" {
		return taxagent.NormalizeIdentifier(v)
	}
	return ""
}

// childText returns the text of the first child element with the given tag.
func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return ""
}

// pathString formats a citation path for error messages.
func pathString(path []string) string {
	if len(path) == 0 {
		return "document root"
	}
	return strings.Join(path, "/")
}

package etree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxagent/taxagent"
	"github.com/taxagent/taxagent/etree"
	"github.com/taxagent/taxagent/goquery"
	"github.com/taxagent/taxagent/mock"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("full section hierarchy", func(t *testing.T) {
		t.Parallel()

		xml := `<uscDoc>
  <title>
    <num value="26">Title 26</num>
    <heading>Internal Revenue Code</heading>
    <section>
      <num value="63">&#167; 63.</num>
      <heading>Taxable income defined</heading>
      <content>
        <p>Except as provided in subsection (b), the term "taxable income" means gross income minus deductions.</p>
      </content>
      <subsection>
        <num value="c">(c)</num>
        <heading>Standard deduction</heading>
        <paragraph>
          <num value="7">(7)</num>
          <subparagraph>
            <num value="A">(A)</num>
            <content><p>In general.</p></content>
          </subparagraph>
        </paragraph>
      </subsection>
    </section>
  </title>
</uscDoc>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, taxagent.KindDocument, root.Kind)
		require.Len(t, root.Children, 1)

		title := root.Children[0]
		assert.Equal(t, taxagent.KindTitle, title.Kind)
		assert.Equal(t, "26", title.Identifier)
		assert.Equal(t, "Internal Revenue Code", title.Heading)
		require.Len(t, title.Children, 1)

		section := title.Children[0]
		assert.Equal(t, taxagent.KindSection, section.Kind)
		assert.Equal(t, "63", section.Identifier)
		assert.Equal(t, "Taxable income defined", section.Heading)
		assert.Contains(t, section.Body(), `the term "taxable income"`)
		require.Len(t, section.Children, 1)

		subsection := section.Children[0]
		assert.Equal(t, "c", subsection.Identifier)
		require.Len(t, subsection.Children, 1)

		paragraph := subsection.Children[0]
		assert.Equal(t, "7", paragraph.Identifier)
		require.Len(t, paragraph.Children, 1)

		subparagraph := paragraph.Children[0]
		assert.Equal(t, taxagent.KindSubparagraph, subparagraph.Kind)
		assert.Equal(t, "A", subparagraph.Identifier)
		assert.Equal(t, "In general.", subparagraph.Body())
	})

	t.Run("identifier from num text when value attribute is absent", func(t *testing.T) {
		t.Parallel()

		xml := `<section><num>&#167; 63.</num><content>body</content></section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "63", root.Identifier)
	})

	t.Run("identifier from id attribute", func(t *testing.T) {
		t.Parallel()

		xml := `<section id="63"><content>body</content></section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "63", root.Identifier)
	})

	t.Run("missing identifier is malformed", func(t *testing.T) {
		t.Parallel()

		xml := `<uscDoc><section><heading>No number</heading></section></uscDoc>`

		p := etree.NewParser(nil)

		_, err := p.Parse(strings.NewReader(xml))

		require.Error(t, err)
		assert.Equal(t, taxagent.EMALFORMED, taxagent.ErrorCode(err))
	})

	t.Run("not well-formed XML is malformed", func(t *testing.T) {
		t.Parallel()

		p := etree.NewParser(nil)

		_, err := p.Parse(strings.NewReader(`<uscDoc><section>`))

		require.Error(t, err)
		assert.Equal(t, taxagent.EMALFORMED, taxagent.ErrorCode(err))
	})

	t.Run("empty document is malformed", func(t *testing.T) {
		t.Parallel()

		p := etree.NewParser(nil)

		_, err := p.Parse(strings.NewReader(""))

		require.Error(t, err)
		assert.Equal(t, taxagent.EMALFORMED, taxagent.ErrorCode(err))
	})

	t.Run("unknown root acts as document container", func(t *testing.T) {
		t.Parallel()

		xml := `<lawDoc><section><num value="1"/><content>body</content></section></lawDoc>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, taxagent.KindDocument, root.Kind)
		require.Len(t, root.Children, 1)
		assert.Equal(t, "1", root.Children[0].Identifier)
	})

	t.Run("opaque containers fold text into the enclosing node", func(t *testing.T) {
		t.Parallel()

		xml := `<section>
  <num value="1"/>
  <chapeau>There is hereby imposed</chapeau>
  <content>a tax on taxable income.</content>
</section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "There is hereby imposed a tax on taxable income.", root.Body())
	})

	t.Run("structural element inside opaque container is unsupported", func(t *testing.T) {
		t.Parallel()

		xml := `<section>
  <num value="1"/>
  <quotedContent><paragraph><num value="1"/></paragraph></quotedContent>
</section>`

		p := etree.NewParser(nil)

		_, err := p.Parse(strings.NewReader(xml))

		require.Error(t, err)
		assert.Equal(t, taxagent.EUNSUPPORTED, taxagent.ErrorCode(err))
		assert.Contains(t, taxagent.ErrorMessage(err), "paragraph")
	})

	t.Run("explicit paragraphs keep their own blocks", func(t *testing.T) {
		t.Parallel()

		xml := `<section><num value="1"/><p>First paragraph.</p><p>Second paragraph.</p></section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, []string{"First paragraph.", "Second paragraph."}, root.Blocks)
	})

	t.Run("whitespace is normalized", func(t *testing.T) {
		t.Parallel()

		xml := "<section><num value=\"1\"/><content>spread\n   across\n   lines</content></section>"

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "spread across lines", root.Body())
	})

	t.Run("refs render as links", func(t *testing.T) {
		t.Parallel()

		xml := `<section><num value="1"/><content>see <ref href="/uscode/26/63">section 63</ref> for details</content></section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "see [section 63](/uscode/26/63) for details", root.Body())
	})

	t.Run("refs without href render as emphasis", func(t *testing.T) {
		t.Parallel()

		xml := `<section><num value="1"/><content>see <ref>section 63</ref> for details</content></section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "see *section 63* for details", root.Body())
	})

	t.Run("lists render as bullet items", func(t *testing.T) {
		t.Parallel()

		xml := `<section><num value="1"/><list><item>first item</item><item>second item</item></list></section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "* first item\n* second item", root.Body())
	})

	t.Run("notes render as blockquotes", func(t *testing.T) {
		t.Parallel()

		xml := `<section><num value="1"/><note><heading>Amendments</heading>Amended by Pub. L. 115-97.</note></section>`

		p := etree.NewParser(nil)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, "> **Amendments**\n> Amended by Pub. L. 115-97.", root.Body())
	})

	t.Run("tables go through the table converter", func(t *testing.T) {
		t.Parallel()

		var got string
		tables := &mock.TableConverter{
			ConvertFn: func(xml string) (string, error) {
				got = xml
				return "| a | b |", nil
			},
		}

		xml := `<section><num value="1"/><table><tr><td>a</td><td>b</td></tr></table></section>`

		p := etree.NewParser(tables)

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Contains(t, got, "<table>")
		assert.Equal(t, "| a | b |", root.Body())
	})

	t.Run("table converter errors are internal", func(t *testing.T) {
		t.Parallel()

		tables := &mock.TableConverter{
			ConvertFn: func(xml string) (string, error) {
				return "", taxagent.Errorf(taxagent.EINTERNAL, "bad table")
			},
		}

		xml := `<section><num value="1"/><table><tr><td>a</td></tr></table></section>`

		p := etree.NewParser(tables)

		_, err := p.Parse(strings.NewReader(xml))

		require.Error(t, err)
		assert.Equal(t, taxagent.EINTERNAL, taxagent.ErrorCode(err))
	})

	t.Run("html tables convert end to end", func(t *testing.T) {
		t.Parallel()

		xml := `<section><num value="1"/><table>
  <thead><tr><th>Filing status</th><th>Amount</th></tr></thead>
  <tbody><tr><td>Single</td><td>$13,850</td></tr></tbody>
</table></section>`

		p := etree.NewParser(goquery.NewTableConverter())

		root, err := p.Parse(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Contains(t, root.Body(), "| Filing status | Amount |")
		assert.Contains(t, root.Body(), "| Single | $13,850 |")
	})
}

func TestParser_ParseFile(t *testing.T) {
	t.Parallel()

	p := etree.NewParser(nil)

	_, err := p.ParseFile("testdata/does-not-exist.xml")

	require.Error(t, err)
	assert.Equal(t, taxagent.EIO, taxagent.ErrorCode(err))
}

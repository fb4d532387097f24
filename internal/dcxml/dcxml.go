package dcxml

import (
	"io"
	"os"
	"strings"

	"saf/internal/model"
)

// noneQualifier is written for statements without an explicit qualifier.
const noneQualifier = "none"

// Document is an in-memory dublin_core.xml document, ready to serialize.
type Document struct {
	Schema     string
	Statements []model.Statement
}

// Build creates a Document for a statement collection. Statement order is
// kept; it determines dcvalue order in the output.
func Build(dc model.DublinCore, schema string) *Document {
	return &Document{
		Schema:     schema,
		Statements: dc.Statements,
	}
}

// Bytes serializes the document. Attributes appear in declared order
// (element, qualifier, then language when present). A statement with an
// empty value serializes as a self-closing dcvalue: an empty string is
// treated as no text, not as empty text.
func (d *Document) Bytes() []byte {
	var b strings.Builder
	b.WriteString(`<dublin_core schema="`)
	b.WriteString(escapeAttr(d.Schema))
	b.WriteString(`"`)
	if len(d.Statements) == 0 {
		b.WriteString(" />")
		return []byte(b.String())
	}
	b.WriteString(">")

	for _, st := range d.Statements {
		b.WriteString(`<dcvalue element="`)
		b.WriteString(escapeAttr(st.Element))
		b.WriteString(`" qualifier="`)
		qualifier := st.Qualifier
		if qualifier == "" {
			qualifier = noneQualifier
		}
		b.WriteString(escapeAttr(qualifier))
		b.WriteString(`"`)
		if st.Language != "" {
			b.WriteString(` language="`)
			b.WriteString(escapeAttr(st.Language))
			b.WriteString(`"`)
		}
		if st.Value == "" {
			b.WriteString(" />")
		} else {
			b.WriteString(">")
			b.WriteString(escapeText(st.Value))
			b.WriteString("</dcvalue>")
		}
	}

	b.WriteString("</dublin_core>")
	return []byte(b.String())
}

// Write serializes the document to an open stream.
func (d *Document) Write(w io.Writer) error {
	_, err := w.Write(d.Bytes())
	return err
}

// WriteFile serializes the document to a file, creating or truncating it.
func (d *Document) WriteFile(path string) error {
	return os.WriteFile(path, d.Bytes(), 0644)
}

// escapeText escapes character data: & < >
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeAttr escapes attribute values: & < > "
func escapeAttr(s string) string {
	s = escapeText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

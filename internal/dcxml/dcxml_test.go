package dcxml

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saf/internal/model"
)

func TestDocument_Bytes(t *testing.T) {
	tests := []struct {
		name string
		dc   model.DublinCore
		want string
	}{
		{
			name: "empty collection is self-closing",
			dc:   model.DublinCore{},
			want: `<dublin_core schema="dc" />`,
		},
		{
			name: "unqualified statement gets the none qualifier",
			dc: model.NewDublinCore([]model.Statement{
				{Element: "title", Value: "Simple"},
			}),
			want: `<dublin_core schema="dc"><dcvalue element="title" qualifier="none">Simple</dcvalue></dublin_core>`,
		},
		{
			name: "language attribute comes last",
			dc: model.NewDublinCore([]model.Statement{
				{Element: "description", Value: "beskrivning", Language: "sv_SE"},
			}),
			want: `<dublin_core schema="dc"><dcvalue element="description" qualifier="none" language="sv_SE">beskrivning</dcvalue></dublin_core>`,
		},
		{
			name: "explicit qualifier",
			dc: model.NewDublinCore([]model.Statement{
				{Element: "date", Value: "2023-05-15", Qualifier: "issued"},
			}),
			want: `<dublin_core schema="dc"><dcvalue element="date" qualifier="issued">2023-05-15</dcvalue></dublin_core>`,
		},
		{
			name: "empty value is self-closing",
			dc: model.NewDublinCore([]model.Statement{
				{Element: "title", Value: ""},
			}),
			want: `<dublin_core schema="dc"><dcvalue element="title" qualifier="none" /></dublin_core>`,
		},
		{
			name: "statement order is preserved",
			dc: model.NewDublinCore([]model.Statement{
				{Element: "title", Value: "First"},
				{Element: "creator", Value: "Second"},
			}),
			want: `<dublin_core schema="dc"><dcvalue element="title" qualifier="none">First</dcvalue><dcvalue element="creator" qualifier="none">Second</dcvalue></dublin_core>`,
		},
		{
			name: "text and attributes are escaped",
			dc: model.NewDublinCore([]model.Statement{
				{Element: "title", Value: "Fish & <Chips>", Qualifier: `a"b`},
			}),
			want: `<dublin_core schema="dc"><dcvalue element="title" qualifier="a&quot;b">Fish &amp; &lt;Chips&gt;</dcvalue></dublin_core>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(tt.dc, model.SchemaDC)
			assert.Equal(t, tt.want, string(doc.Bytes()))
		})
	}
}

// The same document must serialize byte-for-byte identically no matter
// whether it goes to a stream or to a file.
func TestDocument_WriteTargetsAgree(t *testing.T) {
	doc := Build(model.NewDublinCore([]model.Statement{
		{Element: "description", Value: "beskrivning", Language: "sv_SE"},
	}), model.SchemaDC)

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))

	path := filepath.Join(t.TempDir(), "dublin_core.xml")
	require.NoError(t, doc.WriteFile(path))
	fromFile, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, buf.Bytes(), fromFile)
	assert.Equal(t,
		`<dublin_core schema="dc"><dcvalue element="description" qualifier="none" language="sv_SE">beskrivning</dcvalue></dublin_core>`,
		buf.String())
}

package render_test

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bslpack/internal/render"
)

const testUUID = "0A1B2C3D4E5F60718293A4B5C6D7E8F9"

// metaDataObject mirrors just enough of the document for assertions.
type metaDataObject struct {
	Version       string `xml:"version,attr"`
	DataProcessor struct {
		UUID   string `xml:"uuid"`
		Name   string `xml:"name"`
		Module struct {
			Text string `xml:"text"`
		} `xml:"module"`
		Forms struct {
			Form struct {
				Name   string `xml:"name"`
				Module struct {
					Text string `xml:"text"`
				} `xml:"module"`
			} `xml:"form"`
		} `xml:"forms"`
	} `xml:"DataProcessor"`
}

func TestDocumentWellFormed(t *testing.T) {
	doc, err := render.Document(testUUID, "Если А &lt; Б Тогда\nКонецЕсли;")
	require.NoError(t, err)

	d := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := d.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
}

func TestDocumentInterpolation(t *testing.T) {
	doc, err := render.Document(testUUID, "X")
	require.NoError(t, err)

	assert.Contains(t, doc, "<text><![CDATA[X]]></text>")
	assert.Contains(t, doc, "<uuid>"+testUUID+"</uuid>")

	var m metaDataObject
	require.NoError(t, xml.Unmarshal([]byte(doc), &m))
	assert.Equal(t, "2.12", m.Version)
	assert.Equal(t, testUUID, m.DataProcessor.UUID)
	assert.Equal(t, "ВыгрузкаДанныхВСервис", m.DataProcessor.Name)
	assert.Equal(t, "X", m.DataProcessor.Module.Text)
}

func TestDocumentModuleTextNotTransformed(t *testing.T) {
	// The renderer places the pre-escaped text into the CDATA block as-is.
	doc, err := render.Document(testUUID, "a &amp; b")
	require.NoError(t, err)
	assert.Contains(t, doc, "<![CDATA[a &amp; b]]>")
}

func TestDocumentFormDefaults(t *testing.T) {
	doc, err := render.Document(testUUID, "")
	require.NoError(t, err)

	var m metaDataObject
	require.NoError(t, xml.Unmarshal([]byte(doc), &m))

	form := m.DataProcessor.Forms.Form
	assert.Equal(t, "Форма", form.Name)
	assert.Contains(t, form.Module.Text, `Объект.АдресСервера = "http://localhost:9999"`)
	assert.Contains(t, form.Module.Text, "Объект.РазмерПакета = 50")
	assert.Contains(t, form.Module.Text, "Объект.ИспользоватьПакетнуюВыгрузку = Истина")
}

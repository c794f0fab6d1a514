package xmltext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bslpack/internal/xmltext"
)

func TestEscapeSpecials(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt; c &gt; d", xmltext.Escape("a & b < c > d"))
}

func TestEscapeLeavesQuotes(t *testing.T) {
	in := `Сообщить("Выгрузка 'завершена'");`
	assert.Equal(t, in, xmltext.Escape(in))
}

func TestEscapeAmpersandFirst(t *testing.T) {
	// An entity already present in the input is escaped once, at its
	// ampersand, and the < and > substitutions do not touch it again.
	assert.Equal(t, "&amp;lt;", xmltext.Escape("&lt;"))
	assert.Equal(t, "Если А &lt; Б И В &amp;&amp; Г", xmltext.Escape("Если А < Б И В && Г"))
}

func TestEscapeEmpty(t *testing.T) {
	assert.Equal(t, "", xmltext.Escape(""))
}

package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, PDF, MapExtToFormat("PDF"))
	assert.Equal(t, DOCX, MapExtToFormat("docx"))
	assert.Equal(t, TXT, MapExtToFormat("txt"))
	assert.Equal(t, TXT, MapExtToFormat("md"))
	assert.Empty(t, MapExtToFormat("png"))
	assert.Empty(t, MapExtToFormat(""))
}

func TestPrecisionMinBodyLen(t *testing.T) {
	assert.Equal(t, 10, PrecisionLoose.MinBodyLen())
	assert.Equal(t, 20, PrecisionMedium.MinBodyLen())
	assert.Equal(t, 40, PrecisionStrict.MinBodyLen())
	assert.Equal(t, 20, Precision("bogus").MinBodyLen())
}

func TestParsePrecision(t *testing.T) {
	assert.Equal(t, PrecisionLoose, ParsePrecision("LOOSE"))
	assert.Equal(t, PrecisionMedium, ParsePrecision(""))
	assert.Equal(t, PrecisionMedium, ParsePrecision("whatever"))
}

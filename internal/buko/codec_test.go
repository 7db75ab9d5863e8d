package buko

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLine is the sample diagnostic code encoded at the legacy offsets.
var sampleLine = "CLAIM" + strings.Repeat(" ", 15) +
	"CLAIM ERROR" + strings.Repeat(" ", 9) +
	"ERROR" + strings.Repeat(" ", 15) +
	"01BC" + "S" + " " + "UM" + "E " + "  " + "UM" + " " + "K" + "  " + " " + " " +
	"AM34   " + "LEIAUFGL  "

func TestEncodeLine(t *testing.T) {
	r := validRecord()
	c := Classify(r.KontobezSoll, r.KontobezHaben)

	line := EncodeLine(c, r)
	assert.Len(t, line, LineLength)
	assert.Equal(t, sampleLine, line)

	// Column offsets are fixed by the external consumer.
	assert.Equal(t, "CLAIM", strings.TrimSpace(line[0:20]))
	assert.Equal(t, "CLAIM ERROR", strings.TrimSpace(line[20:40]))
	assert.Equal(t, "ERROR", strings.TrimSpace(line[40:60]))
	assert.Equal(t, "01BC", line[60:64])
	assert.Equal(t, "S", line[64:65])
	assert.Equal(t, " ", line[65:66])
	assert.Equal(t, "UM", line[66:68])
	assert.Equal(t, "E ", line[68:70])
	assert.Equal(t, "  ", line[70:72])
	assert.Equal(t, "UM", line[72:74])
	assert.Equal(t, " ", line[74:75])
	assert.Equal(t, "K", line[75:76])
	assert.Equal(t, "  ", line[76:78])
	assert.Equal(t, " ", line[78:79])
	assert.Equal(t, " ", line[79:80])
	assert.Equal(t, "AM34   ", line[80:87])
	assert.Equal(t, "LEIAUFGL  ", line[87:97])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := validRecord()
	c := Classify(r.KontobezSoll, r.KontobezHaben)

	got, decoded, ok := DecodeLine(EncodeLine(c, r))
	require.True(t, ok)
	assert.Equal(t, c, got)

	want := r.Fields()
	have := decoded.Fields()
	for i, spec := range Schema {
		assert.Equal(t, strings.TrimSpace(want[i]), strings.TrimSpace(have[i]), "field %s", spec.Name)
	}
}

func TestDecodeLine(t *testing.T) {
	t.Run("short line is not a record", func(t *testing.T) {
		for _, line := range []string{
			"",
			"   ",
			strings.Repeat("X", 60),
			strings.Repeat(" ", 96), // long but blank after trimming
		} {
			_, _, ok := DecodeLine(line)
			assert.False(t, ok, "line %q", line)
		}
	})

	t.Run("historical line shorter than the layout", func(t *testing.T) {
		// Record part ends after BK; later columns were added to the layout
		// after this row was written.
		line := sampleLine[:64]

		c, r, ok := DecodeLine(line)
		require.True(t, ok)
		assert.Equal(t, "CLAIM", c.BEType)
		assert.Equal(t, "01BC", r.BK)
		assert.Equal(t, " ", r.KontobezSoll)
		assert.Equal(t, " ", r.KontobezHaben)
		assert.Equal(t, "", r.Buchart)
		assert.Equal(t, "", r.Lart)
		assert.Equal(t, "", r.Source)
	})

	t.Run("one character fields keep their raw byte", func(t *testing.T) {
		_, r, ok := DecodeLine(sampleLine)
		require.True(t, ok)
		assert.Equal(t, " ", r.KontobezHaben)
		assert.Equal(t, "K", r.GGKontobezHaben)
	})
}

func TestLoadConfigurations(t *testing.T) {
	// BE_TYPE present but BEC1 and BEC2 blank: decodes, yet is not usable.
	partialClassification := "CLAIM" + strings.Repeat(" ", 55) + "01BCS UME   UM K    AM34   LEIAUFGL  "

	lines := []string{
		sampleLine,
		"",                      // blank row
		strings.Repeat("X", 5),  // garbage too short to be a record
		partialClassification,
		sampleLine,
	}

	configs := LoadConfigurations(lines)
	require.Len(t, configs, 2)

	assert.Equal(t, 1, configs[0].Line)
	assert.Equal(t, 5, configs[1].Line)
	assert.Equal(t, "CLAIM", configs[0].Classification.BEType)
	assert.Equal(t, "01BC", configs[0].Record.BK)
	assert.Equal(t, sampleLine, configs[0].Raw)
}

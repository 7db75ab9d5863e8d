package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCSV(t *testing.T) {
	configs := testConfigurations(t)

	data, err := ExportCSV(configs)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"Line #", "BE_TYPE", "BEC1", "BEC2",
		"BK", "KONTOBEZ_SOLL", "KONTOBEZ_HABEN", "BUCHART", "BETRAGSART",
		"FORDART", "ZAHLART", "GG_KONTOBEZ_SOLL", "GG_KONTOBEZ_HABEN",
		"BBZBETRART", "KZVORRUECK", "FLREVERSED", "LART", "SOURCE",
	}, rows[0])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "CLAIM", rows[1][1])
	assert.Equal(t, "01BC", rows[1][4])
	assert.Equal(t, "AM34", rows[1][16])
	assert.Equal(t, "LEIAUFGL", rows[1][17])

	assert.Equal(t, "PAYMENT", rows[2][1])
	assert.Equal(t, "REBOOKING", rows[3][1])
}

func TestExportCSVEmpty(t *testing.T) {
	data, err := ExportCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestExportXLSX(t *testing.T) {
	configs := testConfigurations(t)

	data, err := ExportXLSX(configs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Line #", rows[0][0])
	assert.Equal(t, "SOURCE", rows[0][17])
	assert.Equal(t, "CLAIM", rows[1][1])
	assert.Equal(t, "01BC", rows[1][4])
	assert.Equal(t, "BUBASIS", rows[2][17])
}

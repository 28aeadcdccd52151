package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead(t *testing.T) {
	buf := workbook(t, [][]any{
		{" Categoria ", "Codigo", "Partidas de Materiales utilizadas por Mantenimiento PEXT", "Costo"},
		{"FIBRA", "A1", "CABLE DROP", "$ 14.55"},
		{"", "", "", ""},
		{"HERRAJES", "B2"},
	})

	tbl, err := Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Categoria", "Codigo", "Partidas de Materiales utilizadas por Mantenimiento PEXT", "Costo"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "$ 14.55", tbl.Rows[0][3])
	assert.Equal(t, []string{"HERRAJES", "B2", "", ""}, tbl.Rows[1])
}

func TestRead_EmptyWorkbook(t *testing.T) {
	tbl, err := Read(workbook(t, nil))
	require.NoError(t, err)
	assert.Nil(t, tbl.Header)
	assert.Empty(t, tbl.Rows)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile("does-not-exist.xlsx")
	assert.Error(t, err)
}

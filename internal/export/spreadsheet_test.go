package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"room-review-backend/internal/models"
)

func TestSpreadsheetRoundTrip(t *testing.T) {
	reviewed := time.Date(2026, 2, 3, 14, 30, 0, 0, time.UTC)
	rooms := []models.Room{
		{
			Office:         "MG",
			Floor:          "9",
			Number:         "9.1",
			Equipment:      models.Equipment{TV: true},
			LastReviewDate: &reviewed,
			LastNote:       "OK",
		},
		{Office: "FL", Floor: "T", Number: "T.2"},
	}

	data, err := Spreadsheet(rooms)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Revisão Salas", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Escritório", header)

	number, err := f.GetCellValue("Revisão Salas", "B2")
	require.NoError(t, err)
	assert.Equal(t, "9.1", number)

	tv, err := f.GetCellValue("Revisão Salas", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Sim", tv)

	floor, err := f.GetCellValue("Revisão Salas", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Térreo", floor)
}

func TestSpreadsheetEmptyRegistry(t *testing.T) {
	data, err := Spreadsheet(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Revisão Salas")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}

func TestSpreadsheetFilename(t *testing.T) {
	exportedAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "revisao_salas_2026-08-31.xlsx", SpreadsheetFilename(exportedAt))
}

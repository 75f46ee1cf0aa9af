package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"room-review-backend/internal/models"
)

const spreadsheetSheet = "Revisão Salas"

// SpreadsheetFilename names the downloaded workbook after the export date.
func SpreadsheetFilename(exportedAt time.Time) string {
	return fmt.Sprintf("revisao_salas_%s.xlsx", exportedAt.Format("2006-01-02"))
}

// Spreadsheet renders the current state of every room into an xlsx
// workbook: one styled header row, one row per room with office, number,
// floor, the equipment checklist and the last review date/note.
func Spreadsheet(rooms []models.Room) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(spreadsheetSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Escritório", "Sala", "Andar"}
	headers = append(headers, models.EquipmentLabels()...)
	headers = append(headers, "Última Revisão", "Observações")

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(spreadsheetSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(spreadsheetSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}
	if err := f.SetColWidth(spreadsheetSheet, "A", "C", 12); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, room := range rooms {
		values := []any{room.Office, room.Number, FloorLabel(room.Floor)}
		for _, flag := range room.Equipment.Flags() {
			values = append(values, yesNo(flag.Present))
		}
		lastReview := ""
		if room.LastReviewDate != nil {
			lastReview = room.LastReviewDate.Format(TimestampLayout)
		}
		values = append(values, lastReview, room.LastNote)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(spreadsheetSheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

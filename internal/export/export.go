// Package export renders selected review history into the artifacts the
// UI offers for download: JSON, semicolon-delimited CSV, a printable HTML
// report and an xlsx spreadsheet of the whole registry.
//
// All renderers are pure: they never mutate state and, for the same
// inputs (including the export timestamp), produce identical output.
package export

import (
	"encoding/json"
	"strings"
	"time"

	"room-review-backend/internal/config"
	"room-review-backend/internal/models"
)

// TimestampLayout is the locale-style layout used for review timestamps
// in CSV and report output (dd/mm/yyyy hh:mm:ss).
const TimestampLayout = "02/01/2006 15:04:05"

type roomMeta struct {
	Number string `json:"number"`
	Floor  string `json:"floor"`
	Office string `json:"office"`
}

type jsonDocument struct {
	Room       roomMeta        `json:"room"`
	Reviews    []models.Review `json:"reviews"`
	ExportedAt time.Time       `json:"exportedAt"`
}

// JSON serializes a room's selected reviews. An empty selection yields a
// valid document with "reviews": [].
func JSON(room models.Room, reviews []models.Review, exportedAt time.Time) ([]byte, error) {
	if reviews == nil {
		reviews = []models.Review{}
	}
	doc := jsonDocument{
		Room:       roomMeta{Number: room.Number, Floor: room.Floor, Office: room.Office},
		Reviews:    reviews,
		ExportedAt: exportedAt,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// CSV renders one header row plus one row per review, semicolon-delimited
// and prefixed with a UTF-8 byte-order mark so spreadsheet applications
// pick up the encoding.
func CSV(room models.Room, reviews []models.Review) []byte {
	var b strings.Builder
	b.WriteString("\uFEFF")

	header := []string{"Data/Hora", "Sala", "Andar", "Escritório"}
	header = append(header, models.EquipmentLabels()...)
	header = append(header, "Observações")
	b.WriteString(strings.Join(header, ";"))
	b.WriteString("\n")

	for _, rev := range reviews {
		fields := []string{
			rev.ReviewedAt.Format(TimestampLayout),
			room.Number,
			room.Floor,
			room.Office,
		}
		for _, flag := range rev.Equipment.Flags() {
			fields = append(fields, yesNo(flag.Present))
		}
		fields = append(fields, sanitizeNote(rev.Note))

		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		b.WriteString(strings.Join(quoted, ";"))
		b.WriteString("\n")
	}

	return []byte(b.String())
}

func yesNo(present bool) string {
	if present {
		return "Sim"
	}
	return "Não"
}

// sanitizeNote neutralizes the delimiter and line breaks so a free-text
// note can never split a row.
func sanitizeNote(note string) string {
	note = strings.ReplaceAll(note, ";", ",")
	note = strings.ReplaceAll(note, "\r\n", " ")
	note = strings.ReplaceAll(note, "\n", " ")
	note = strings.ReplaceAll(note, "\r", " ")
	return note
}

// FloorLabel renders a floor for display: "Térreo" for the ground floor,
// "9º" for numeric labels.
func FloorLabel(floor string) string {
	if floor == config.GroundFloor {
		return "Térreo"
	}
	return floor + "º"
}

package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"room-review-backend/internal/models"
)

// Report renders a self-contained HTML document of the selected reviews,
// suitable for printing or saving as PDF through the browser's print
// dialog. PDF encoding itself is delegated to the platform.
func Report(room models.Room, reviews []models.Review, exportedAt time.Time) ([]byte, error) {
	data := reportData{
		Number:     room.Number,
		FloorLabel: FloorLabel(room.Floor),
		Office:     room.Office,
		ExportedAt: exportedAt.Format(TimestampLayout),
	}
	for i, rev := range reviews {
		entry := reportEntry{
			Index:     i + 1,
			Date:      rev.ReviewedAt.Format(TimestampLayout),
			Flags:     rev.Equipment.Flags(),
			Note:      rev.Note,
			PhotoHREF: photoHREF(rev),
		}
		data.Reviews = append(data.Reviews, entry)
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

type reportData struct {
	Number     string
	FloorLabel string
	Office     string
	ExportedAt string
	Reviews    []reportEntry
}

type reportEntry struct {
	Index     int
	Date      string
	Flags     []models.EquipmentFlag
	Note      string
	PhotoHREF template.URL
}

// photoHREF embeds inline photo bytes as a data URL and falls back to the
// stored file reference.
func photoHREF(rev models.Review) template.URL {
	if len(rev.Photo) > 0 {
		return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(rev.Photo))
	}
	if rev.PhotoRef != "" {
		return template.URL("/" + rev.PhotoRef)
	}
	return ""
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Histórico - {{.Number}}</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; }
h1 { color: #333; border-bottom: 3px solid #FFD700; padding-bottom: 10px; }
.info { margin-bottom: 20px; font-size: 14px; color: #666; }
.revisao { border: 1px solid #ddd; padding: 15px; margin-bottom: 15px; page-break-inside: avoid; }
.revisao-header { font-weight: bold; margin-bottom: 10px; color: #333; }
.equipamentos { display: flex; flex-wrap: wrap; gap: 8px; margin: 10px 0; }
.equip-tag { padding: 4px 12px; border-radius: 12px; font-size: 12px; }
.equip-presente { background: #d4edda; color: #155724; }
.equip-ausente { background: #f8d7da; color: #721c24; }
.obs { background: #f8f9fa; padding: 10px; border-radius: 6px; margin-top: 10px; font-size: 13px; }
.foto { max-width: 300px; margin-top: 10px; }
@media print {
  body { padding: 0; }
  .no-print { display: none; }
}
</style>
</head>
<body>
<h1>Histórico de Revisões - Sala {{.Number}}</h1>
<div class="info">
<strong>Andar:</strong> {{.FloorLabel}} |
<strong>Escritório:</strong> {{.Office}} |
<strong>Total de revisões:</strong> {{len .Reviews}}
</div>
{{range .Reviews}}
<div class="revisao">
<div class="revisao-header">{{.Index}}. Revisão em {{.Date}}</div>
<div class="equipamentos">
{{range .Flags}}<span class="equip-tag {{if .Present}}equip-presente{{else}}equip-ausente{{end}}">{{.Label}}</span>{{end}}
</div>
{{if .Note}}<div class="obs"><strong>Observações:</strong><br>{{.Note}}</div>{{end}}
{{if .PhotoHREF}}<div><img src="{{.PhotoHREF}}" class="foto" alt="Foto da sala" /></div>{{end}}
</div>
{{end}}
<div class="info" style="margin-top:30px;border-top:1px solid #ddd;padding-top:10px;">
Exportado em: {{.ExportedAt}} | Sistema de Revisão de Salas
</div>
<div class="no-print" style="margin-top:20px;">
<button onclick="window.print()">Imprimir / Salvar PDF</button>
<button onclick="window.close()">Fechar</button>
</div>
</body>
</html>
`))

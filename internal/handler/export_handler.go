package handler

import (
	"fmt"
	"net/http"
	"time"

	"room-review-backend/internal/export"
	"room-review-backend/internal/registry"
	"room-review-backend/internal/service"
	"room-review-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	roomService *service.RoomService
}

func NewExportHandler(roomService *service.RoomService) *ExportHandler {
	return &ExportHandler{
		roomService: roomService,
	}
}

// ExportHistory serves a room's review history as a downloadable
// artifact. format selects json (default), csv or report (printable
// HTML); start/end narrow the selection. An empty selection is rejected,
// matching the UI which requires at least one review to be selected.
func (h *ExportHandler) ExportHistory(c *gin.Context) {
	id := c.Param("id")

	room, err := h.roomService.Room(id)
	if err != nil {
		respondError(c, err)
		return
	}

	dr, err := dateRangeFromQuery(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.roomService.History(id, dr)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(reviews) == 0 {
		respondError(c, service.ErrNothingSelected)
		return
	}

	now := time.Now()
	basename := fmt.Sprintf("historico-%s-%d", room.Number, now.Unix())

	switch c.DefaultQuery("format", "json") {
	case "json":
		data, err := export.JSON(room, reviews, now)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to render export: "+err.Error())
			return
		}
		c.Header("Content-Disposition", `attachment; filename=`+basename+`.json`)
		c.Data(http.StatusOK, "application/json", data)
	case "csv":
		c.Header("Content-Disposition", `attachment; filename=`+basename+`.csv`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", export.CSV(room, reviews))
	case "report":
		data, err := export.Report(room, reviews, now)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to render report: "+err.Error())
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "Unknown export format")
	}
}

// ExportSpreadsheet serves the full registry as an xlsx workbook.
func (h *ExportHandler) ExportSpreadsheet(c *gin.Context) {
	rooms := h.roomService.Rooms(registry.Filter{})

	data, err := export.Spreadsheet(rooms)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate spreadsheet: "+err.Error())
		return
	}

	now := time.Now()
	c.Header("Content-Disposition", `attachment; filename=`+export.SpreadsheetFilename(now))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

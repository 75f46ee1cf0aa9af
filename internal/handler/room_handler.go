package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"room-review-backend/internal/models"
	"room-review-backend/internal/registry"
	"room-review-backend/internal/service"
	"room-review-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
	uploadDir   string
}

func NewRoomHandler(roomService *service.RoomService, uploadDir string) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		uploadDir:   uploadDir,
	}
}

// ListRooms returns the filtered, sorted room list
func (h *RoomHandler) ListRooms(c *gin.Context) {
	filter := registry.Filter{
		Office: c.Query("office"),
		Floor:  c.Query("floor"),
		Text:   c.Query("q"),
	}

	rooms := h.roomService.Rooms(filter)

	utils.SuccessResponse(c, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// GetRoom retrieves a specific room by id
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomService.Room(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, room)
}

// CreateRoom registers a new room; the number is assigned first-fit
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req struct {
		Office string `json:"office" binding:"required"`
		Floor  string `json:"floor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	room, err := h.roomService.CreateRoom(req.Office, req.Floor)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Room created successfully",
		"room":    room,
	})
}

// RecordReview records a review for a room. Expects a multipart form with
// the six equipment checkboxes, a note and an optional photo file. The
// equipment snapshot fully replaces the previous one: an absent checkbox
// means the item is missing.
func (h *RoomHandler) RecordReview(c *gin.Context) {
	id := c.Param("id")

	room, err := h.roomService.Room(id)
	if err != nil {
		respondError(c, err)
		return
	}

	input := registry.ReviewInput{
		Equipment: equipmentFromForm(c),
		Note:      c.PostForm("note"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		src, err := file.Open()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read photo: "+err.Error())
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read photo: "+err.Error())
			return
		}

		ref, err := utils.SavePhoto(h.uploadDir, room.Number, data, time.Now())
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store photo: "+err.Error())
			return
		}
		input.PhotoRef = ref
	}

	review, err := h.roomService.RecordReview(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Review recorded successfully",
		"review":  review,
	})
}

// DeleteRoom removes a room. Deleting an unknown id succeeds (idempotent).
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.roomService.DeleteRoom(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Room deleted successfully")
}

// BulkDelete removes several rooms, reporting the aggregate outcome.
// Partial successes are not rolled back.
func (h *RoomHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.roomService.DeleteRooms(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetHistory returns a room's reviews within an optional date range,
// newest first. Dates are accepted as "2006-01-02" (end is end-of-day
// inclusive) or RFC 3339.
func (h *RoomHandler) GetHistory(c *gin.Context) {
	dr, err := dateRangeFromQuery(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.roomService.History(c.Param("id"), dr)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func equipmentFromForm(c *gin.Context) models.Equipment {
	return models.Equipment{
		TV:              checkboxValue(c.PostForm("tv")),
		RemoteControl:   checkboxValue(c.PostForm("remoteControl")),
		ExtensionLine:   checkboxValue(c.PostForm("extensionLine")),
		Videoconference: checkboxValue(c.PostForm("videoconference")),
		Manual:          checkboxValue(c.PostForm("manual")),
		Monitor:         checkboxValue(c.PostForm("monitor")),
	}
}

func checkboxValue(v string) bool {
	return v == "true" || v == "on" || v == "1"
}

func dateRangeFromQuery(c *gin.Context) (registry.DateRange, error) {
	var dr registry.DateRange

	start, err := parseDate(c.Query("start"))
	if err != nil {
		return dr, errors.New("invalid start date")
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		return dr, errors.New("invalid end date")
	}

	dr.Start = start
	dr.End = end
	return dr, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, errors.New("unparseable date")
}

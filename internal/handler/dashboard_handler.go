package handler

import (
	"fmt"

	"room-review-backend/internal/service"
	"room-review-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	roomService *service.RoomService
}

func NewDashboardHandler(roomService *service.RoomService) *DashboardHandler {
	return &DashboardHandler{
		roomService: roomService,
	}
}

// GetDashboard returns room totals and the most recent reviews
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	utils.SuccessResponse(c, h.roomService.Dashboard())
}

// InitSampleData seeds the registry with sample rooms for the MG office
func (h *DashboardHandler) InitSampleData(c *gin.Context) {
	created, err := h.roomService.InitSampleData()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, fmt.Sprintf("Sample data initialized: %d rooms created", created))
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkravets/gameroom-server/internal/core"
)

// RoomHandlers serves the REST mirror of the room list.
type RoomHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewRoomHandlers creates the room listing handlers.
func NewRoomHandlers(hub *core.Hub, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{hub: hub, log: logger}
}

// RoomResponse is one room in the REST listing.
type RoomResponse struct {
	core.RoomView
	IsPublic    bool `json:"isPublic"`
	PlayerCount int  `json:"playerCount"`
}

// ErrorResponse is the REST error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListRooms handles GET /api/rooms. The listing is a consistent snapshot
// taken on the hub goroutine.
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	listings, err := h.hub.Rooms(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list rooms")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]RoomResponse, 0, len(listings))
	for _, listing := range listings {
		response = append(response, RoomResponse{
			RoomView:    listing.RoomView,
			IsPublic:    listing.IsPublic,
			PlayerCount: listing.PlayerCount,
		})
	}
	c.JSON(http.StatusOK, response)
}

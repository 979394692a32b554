package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

// maxMoodBoardItems caps how many products one room setup asks for.
const maxMoodBoardItems = 5

type RoomHandler struct {
	sourcer StyleSourcer
}

func NewRoomHandler(sourcer StyleSourcer) *RoomHandler {
	return &RoomHandler{sourcer: sourcer}
}

// RoomSetup synthesizes a project for the requested room and asks the
// style-sourcing integration for a matching mood board. Input validation
// happens before any external call.
func (h *RoomHandler) RoomSetup(c *gin.Context) {
	var req models.RoomSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	roomType := strings.ToLower(strings.TrimSpace(req.RoomType))
	roomSize := strings.TrimSpace(req.RoomSize)
	style := strings.TrimSpace(req.Style)

	if roomType == "" || style == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "roomType and style are required"})
		return
	}

	if h.sourcer == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "style sourcing is not configured",
		})
		return
	}

	// Combine style and room for a richer query to the agent.
	styleQuery := style + " " + roomType + " furniture"

	board, err := h.sourcer.SourceStyle(c.Request.Context(), styleQuery, maxMoodBoardItems)
	if err != nil {
		log.Error().Err(err).Str("query", styleQuery).Msg("style sourcing failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "style sourcing failed",
			Message: err.Error(),
		})
		return
	}

	boardStyle := board.Style
	if boardStyle == "" {
		boardStyle = styleQuery
	}

	c.JSON(http.StatusOK, models.RoomSetupResponse{
		Project: models.Project{
			ID:         uuid.New().String(),
			RoomType:   roomType,
			RoomSize:   roomSize,
			Style:      style,
			StyleQuery: styleQuery,
		},
		MoodBoard: models.MoodBoard{
			Style:    boardStyle,
			Products: board.Products,
		},
	})
}

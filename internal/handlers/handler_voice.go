package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/gin-gonic/gin"
)

type voiceHandler struct {
	voiceService portssvc.VoiceSvc
}

// RegisterVoiceRoutes registers voice command routes.
func RegisterVoiceRoutes(rg *gin.RouterGroup, voiceService portssvc.VoiceSvc) {
	h := &voiceHandler{voiceService: voiceService}

	voice := rg.Group("/voice")
	{
		voice.POST("/process", h.processVoiceCommand)
		voice.GET("/logs", h.listVoiceLogs)
	}
}

// processVoiceCommand godoc
// @Summary Process a transcribed voice command
// @Description Parses Persian text such as "پرداخت پانصد هزار تومان به علی" and records the matching journal entry.
// @Description Unparseable text returns success=false with a usage hint.
// @Tags voice
// @Accept  json
// @Produce  json
// @Param   command body dto.VoiceCommandRequest true "Transcribed text"
// @Success 200 {object} dto.VoiceCommandResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 500 {object} ErrorResponse "Failed to process voice command"
// @Security BearerAuth
// @Router /voice/process [post]
func (h *voiceHandler) processVoiceCommand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VoiceCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	resp, err := h.voiceService.ProcessVoiceCommand(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err, "Failed to process voice command")
		return
	}

	logger.Info("Voice command processed", slog.Bool("success", resp.Success))
	c.JSON(http.StatusOK, resp)
}

// listVoiceLogs godoc
// @Summary List voice command logs
// @Tags voice
// @Produce  json
// @Param   limit query int false "Limit" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListVoiceLogsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to list voice logs"
// @Security BearerAuth
// @Router /voice/logs [get]
func (h *voiceHandler) listVoiceLogs(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	logs, err := h.voiceService.ListVoiceLogs(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list voice logs")
		return
	}
	c.JSON(http.StatusOK, dto.ListVoiceLogsResponse{Logs: logs})
}

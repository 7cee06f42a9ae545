package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// RegisterJournalRoutes registers journal entry routes.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.PUT("/:id", h.updateJournalEntry)
		entries.DELETE("/:id", h.deleteJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Record a journal entry
// @Description Creates a balanced journal entry and updates the balances of the touched accounts
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry with its lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} UnbalancedErrorResponse "Validation error or unbalanced entry"
// @Failure 404 {object} ErrorResponse "Referenced account not found"
// @Failure 409 {object} ErrorResponse "Concurrent modification"
// @Failure 500 {object} ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, domain.SourceManual)
	if err != nil {
		respondError(c, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created", slog.Int64("journal_entry_id", entry.JournalEntryID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid journal entry ID"
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid journal entry ID"})
		return
	}

	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first with token pagination
// @Tags journal-entries
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	resp, err := h.journalService.ListJournalEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateJournalEntry godoc
// @Summary Replace a journal entry
// @Description Replaces the header and every line of an entry. Balances are reversed and reapplied.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Param   entry body dto.UpdateJournalEntryRequest true "New header and lines"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} UnbalancedErrorResponse "Validation error or unbalanced entry"
// @Failure 404 {object} ErrorResponse "Journal entry or account not found"
// @Failure 409 {object} ErrorResponse "Concurrent modification"
// @Failure 500 {object} ErrorResponse "Failed to update journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id} [put]
func (h *journalHandler) updateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid journal entry ID"})
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	entry, err := h.journalService.UpdateJournalEntry(c.Request.Context(), entryID, req)
	if err != nil {
		respondError(c, err, "Failed to update journal entry")
		return
	}

	logger.Info("Journal entry updated", slog.Int64("journal_entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteJournalEntry godoc
// @Summary Delete a journal entry
// @Description Deletes an entry with its lines and reverses their effect on balances
// @Tags journal-entries
// @Param   id path int true "Journal entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid journal entry ID"
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 500 {object} ErrorResponse "Failed to delete journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id} [delete]
func (h *journalHandler) deleteJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid journal entry ID"})
		return
	}

	if err := h.journalService.DeleteJournalEntry(c.Request.Context(), entryID); err != nil {
		respondError(c, err, "Failed to delete journal entry")
		return
	}

	logger.Info("Journal entry deleted", slog.Int64("journal_entry_id", entryID))
	c.Status(http.StatusNoContent)
}

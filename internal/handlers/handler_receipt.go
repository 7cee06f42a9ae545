package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type receiptHandler struct {
	receiptService portssvc.ReceiptSvc
	uploadDir      string
	maxUploadSize  int64
}

// RegisterReceiptRoutes registers receipt upload and confirmation routes.
func RegisterReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvc, uploadDir string, maxUploadSize int64) {
	h := &receiptHandler{
		receiptService: receiptService,
		uploadDir:      filepath.Join(uploadDir, "receipts"),
		maxUploadSize:  maxUploadSize,
	}

	receipts := rg.Group("/ocr/receipts")
	{
		receipts.POST("", h.uploadReceipt)
		receipts.GET("", h.listReceipts)
		receipts.POST("/:id/create-entry", h.createEntryFromReceipt)
	}
}

// uploadReceipt godoc
// @Summary Upload a receipt
// @Description Stores the file and parses amount, date and vendor. PDF text is extracted server side;
// @Description for images the client sends the recognised text in the "text" field.
// @Tags ocr
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Receipt image or PDF"
// @Param   text formData string false "Recognised text of an image receipt"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse "Missing file or unreadable document"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "Failed to process receipt"
// @Security BearerAuth
// @Router /ocr/receipts [post]
func (h *receiptHandler) uploadReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
			return
		}
		badRequest(c, "Receipt file is required", err)
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		logger.Error("Failed to create upload directory", slog.String("dir", h.uploadDir), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store receipt"})
		return
	}
	storedPath := filepath.Join(h.uploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, storedPath); err != nil {
		logger.Error("Failed to save uploaded receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store receipt"})
		return
	}

	upload := dto.ReceiptUpload{
		StoredPath:   storedPath,
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Text:         c.PostForm("text"),
	}
	resp, err := h.receiptService.IngestReceipt(c.Request.Context(), upload)
	if err != nil {
		respondError(c, err, "Failed to process receipt")
		return
	}

	logger.Info("Receipt stored", slog.Int64("receipt_id", resp.ReceiptID), slog.Bool("parsed", resp.Success))
	c.JSON(http.StatusCreated, resp)
}

// listReceipts godoc
// @Summary List receipts
// @Tags ocr
// @Produce  json
// @Param   limit query int false "Limit" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to list receipts"
// @Security BearerAuth
// @Router /ocr/receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list receipts")
		return
	}
	c.JSON(http.StatusOK, dto.ListReceiptsResponse{Receipts: receipts})
}

// createEntryFromReceipt godoc
// @Summary Confirm a receipt into a journal entry
// @Description Records the entry with source "ocr" and marks the receipt processed in the same transaction
// @Tags ocr
// @Accept  json
// @Produce  json
// @Param   id path int true "Receipt ID"
// @Param   entry body dto.CreateJournalEntryRequest true "Confirmed journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} UnbalancedErrorResponse "Validation error, unbalanced entry or receipt already processed"
// @Failure 404 {object} ErrorResponse "Receipt or account not found"
// @Failure 500 {object} ErrorResponse "Failed to create entry from receipt"
// @Security BearerAuth
// @Router /ocr/receipts/{id}/create-entry [post]
func (h *receiptHandler) createEntryFromReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid receipt ID"})
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	entry, err := h.receiptService.ConfirmReceipt(c.Request.Context(), receiptID, req)
	if err != nil {
		respondError(c, err, "Failed to create entry from receipt")
		return
	}

	logger.Info("Receipt confirmed", slog.Int64("receipt_id", receiptID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

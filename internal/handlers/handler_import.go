package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles bulk CSV imports of exchange events.
type importHandler struct {
	importService portssvc.CSVImportSvcFacade
}

// newImportHandler creates a new importHandler.
func newImportHandler(is portssvc.CSVImportSvcFacade) *importHandler {
	return &importHandler{
		importService: is,
	}
}

// registerImportRoutes registers the import routes.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.CSVImportSvcFacade) {
	h := newImportHandler(importService)

	imports := rg.Group("/import")
	{
		imports.POST("/csv", h.importCSV)
	}
}

// importCSV godoc
// @Summary Import mutations from CSV
// @Description Uploads a CSV file of exchange events; rows are processed independently and failures are reported per row
// @Tags import
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV file"
// @Success 200 {object} dto.CSVImportSummary
// @Failure 400 {object} map[string]string "Missing file or malformed CSV"
// @Failure 500 {object} map[string]string "Failed to import file"
// @Security BearerAuth
// @Router /import/csv [post]
func (h *importHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("CSV import request without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A CSV file is required in the 'file' field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	logger = logger.With(slog.String("filename", fileHeader.Filename))
	logger.Info("Received CSV import request", slog.Int64("size_bytes", fileHeader.Size))

	summary, err := h.importService.ImportCSV(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("CSV file rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import CSV", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import file"})
		}
		return
	}

	logger.Info("CSV import finished",
		slog.Int("total_rows", summary.TotalRows),
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("failed", summary.Failed))
	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
	"github.com/fust64/fust_beheer_app/internal/middleware"
	"github.com/fust64/fust_beheer_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests for balance overviews and ledgers.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService: bs,
	}
}

// registerOverviewRoutes registers the balance overview routes.
func registerOverviewRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	overview := rg.Group("/overview")
	{
		overview.GET("", h.getOverview)
		overview.GET("/export", h.exportOverview)
	}
}

// getOverview godoc
// @Summary Balance overview for all partners
// @Description Lists lifetime totals and balances per partner, optionally filtered by kind and balance sign
// @Tags overview
// @Produce  json
// @Param   kind query string false "Partner kind filter" Enums(customer, supplier)
// @Param   balance query string false "Balance sign filter" Enums(positive, negative, none)
// @Success 200 {array} dto.OverviewRowResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to build overview"
// @Security BearerAuth
// @Router /overview [get]
func (h *balanceHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter dto.OverviewFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		logger.Warn("Invalid overview filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	logger.Info("Received request for balance overview",
		slog.String("kind", filter.Kind), slog.String("balance", filter.Balance))

	rows, err := h.balanceService.GetOverview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build overview"})
		return
	}

	filtered := dto.FilterOverviewRows(rows, filter)
	logger.Info("Overview built successfully", slog.Int("count", len(filtered)))
	c.JSON(http.StatusOK, dto.ToListOverviewRowResponse(filtered))
}

// exportOverview godoc
// @Summary Export the balance overview
// @Description Downloads the overview as an xlsx workbook or CSV file
// @Tags overview
// @Produce  application/octet-stream
// @Param   format query string false "File format, defaults to xlsx" Enums(xlsx, csv)
// @Param   kind query string false "Partner kind filter" Enums(customer, supplier)
// @Param   balance query string false "Balance sign filter" Enums(positive, negative, none)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid format or filter"
// @Failure 500 {object} map[string]string "Failed to export overview"
// @Security BearerAuth
// @Router /overview/export [get]
func (h *balanceHandler) exportOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be xlsx or csv"})
		return
	}

	var filter dto.OverviewFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	rows, err := h.balanceService.GetOverview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build overview for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export overview"})
		return
	}
	filtered := dto.FilterOverviewRows(rows, filter)

	filename := fmt.Sprintf("fust-overview-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		err = export.WriteOverviewCSV(c.Writer, filtered)
	default:
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.WriteOverviewXLSX(c.Writer, filtered)
	}
	if err != nil {
		// Headers are already out at this point, so only log.
		logger.Error("Failed to write overview export", slog.String("error", err.Error()), slog.String("format", format))
		return
	}

	logger.Info("Overview exported successfully", slog.String("format", format), slog.Int("count", len(filtered)))
}

// getPartnerLedger godoc
// @Summary Partner ledger
// @Description Retrieves a partner's full event history, oldest first, with running balances
// @Tags partners
// @Produce  json
// @Param   partnerID path int true "Partner ID"
// @Success 200 {object} dto.PartnerLedgerResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /partners/{partnerID}/mutations [get]
func (h *balanceHandler) getPartnerLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := parsePartnerID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("partner_id", partnerID))
	logger.Info("Received request for partner ledger")

	ledger, err := h.balanceService.GetPartnerLedger(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Partner not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to build partner ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build ledger"})
		}
		return
	}

	logger.Info("Partner ledger built successfully", slog.Int("entries", len(ledger.Entries)))
	c.JSON(http.StatusOK, dto.ToPartnerLedgerResponse(ledger))
}

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
	"github.com/fust64/fust_beheer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partnerHandler handles HTTP requests related to partners.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

// newPartnerHandler creates a new partnerHandler.
func newPartnerHandler(ps portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{
		partnerService: ps,
	}
}

// registerPartnerRoutes registers routes related to partners.
func registerPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newPartnerHandler(partnerService)
	bh := newBalanceHandler(balanceService)

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:partnerID", h.getPartnerByID)
		partners.GET("/:partnerID/mutations", bh.getPartnerLedger)
	}
}

// parsePartnerID reads the :partnerID path parameter.
func parsePartnerID(c *gin.Context) (int64, bool) {
	partnerID, err := strconv.ParseInt(c.Param("partnerID"), 10, 64)
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return 0, false
	}
	return partnerID, true
}

// createPartner godoc
// @Summary Create a new partner
// @Description Registers a new customer or supplier with a unique code
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Partner code already exists"
// @Failure 500 {object} map[string]string "Failed to create partner"
// @Security BearerAuth
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("partner_code", req.Code))
	logger.Info("Received request to create partner")

	createdPartner, err := h.partnerService.CreatePartner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate partner")
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Partner code '%s' already exists", req.Code)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating partner", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create partner in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		}
		return
	}

	logger.Info("Partner created successfully", slog.Int64("partner_id", createdPartner.ID))
	c.JSON(http.StatusCreated, dto.ToPartnerResponse(createdPartner))
}

// getPartnerByID godoc
// @Summary Get a partner by ID
// @Description Retrieves details for a specific partner
// @Tags partners
// @Produce  json
// @Param   partnerID path int true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 500 {object} map[string]string "Failed to retrieve partner"
// @Security BearerAuth
// @Router /partners/{partnerID} [get]
func (h *partnerHandler) getPartnerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := parsePartnerID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("partner_id", partnerID))
	logger.Info("Received request to get partner by ID")

	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Partner not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to get partner from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve partner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// listPartners godoc
// @Summary List all partners
// @Description Retrieves all partners ordered by kind then name
// @Tags partners
// @Produce  json
// @Success 200 {array} dto.PartnerResponse
// @Failure 500 {object} map[string]string "Failed to list partners"
// @Security BearerAuth
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list partners")

	partners, err := h.partnerService.ListPartners(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list partners from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list partners"})
		return
	}

	logger.Info("Partners listed successfully", slog.Int("count", len(partners)))
	c.JSON(http.StatusOK, dto.ToListPartnerResponse(partners))
}

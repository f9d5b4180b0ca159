package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
	"github.com/fust64/fust_beheer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mutationHandler handles HTTP requests related to exchange events.
type mutationHandler struct {
	mutationService portssvc.MutationSvcFacade
}

// newMutationHandler creates a new mutationHandler.
func newMutationHandler(ms portssvc.MutationSvcFacade) *mutationHandler {
	return &mutationHandler{
		mutationService: ms,
	}
}

// registerMutationRoutes registers routes related to mutations.
func registerMutationRoutes(rg *gin.RouterGroup, mutationService portssvc.MutationSvcFacade) {
	h := newMutationHandler(mutationService)

	mutations := rg.Group("/mutations")
	{
		mutations.POST("", h.createMutation)
		mutations.GET("", h.listMutations)
		mutations.DELETE("/:mutationID", h.deleteMutation)
	}
}

// createMutation godoc
// @Summary Record an exchange event
// @Description Records loaded and unloaded container counts for a partner, creating the partner on first use
// @Tags mutations
// @Accept  json
// @Produce  json
// @Param   mutation body dto.CreateMutationRequest true "Mutation details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record mutation"
// @Security BearerAuth
// @Router /mutations [post]
func (h *mutationHandler) createMutation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMutation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Manual entry may be backdated but never future-dated. Imports of
	// historical files skip this check on purpose.
	if eventDate, err := time.Parse(domain.EventDateFormat, req.EventDate); err == nil {
		today := time.Now().Format(domain.EventDateFormat)
		if eventDate.Format(domain.EventDateFormat) > today {
			logger.Warn("Rejected future-dated mutation", slog.String("event_date", req.EventDate))
			c.JSON(http.StatusBadRequest, gin.H{"error": "eventDate must not be in the future"})
			return
		}
	}

	logger = logger.With(slog.String("partner_code", req.PartnerCode))
	logger.Info("Received request to create mutation", slog.String("event_date", req.EventDate))

	createdMutation, err := h.mutationService.CreateMutation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating mutation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create mutation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record mutation"})
		}
		return
	}

	logger.Info("Mutation created successfully", slog.Int64("mutation_id", createdMutation.ID))
	c.JSON(http.StatusCreated, dto.ToMutationResponse(*createdMutation))
}

// listMutations godoc
// @Summary List all mutations
// @Description Retrieves all exchange events with partner identity, newest first
// @Tags mutations
// @Produce  json
// @Success 200 {array} dto.MutationDetailResponse
// @Failure 500 {object} map[string]string "Failed to list mutations"
// @Security BearerAuth
// @Router /mutations [get]
func (h *mutationHandler) listMutations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list mutations")

	mutations, err := h.mutationService.ListMutations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list mutations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list mutations"})
		return
	}

	logger.Info("Mutations listed successfully", slog.Int("count", len(mutations)))
	c.JSON(http.StatusOK, dto.ToListMutationDetailResponse(mutations))
}

// deleteMutation godoc
// @Summary Delete a mutation
// @Description Removes a single exchange event; balances recompute on the next read
// @Tags mutations
// @Produce  json
// @Param   mutationID path int true "Mutation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid mutation ID"
// @Failure 404 {object} map[string]string "Mutation not found"
// @Failure 500 {object} map[string]string "Failed to delete mutation"
// @Security BearerAuth
// @Router /mutations/{mutationID} [delete]
func (h *mutationHandler) deleteMutation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	mutationID, err := strconv.ParseInt(c.Param("mutationID"), 10, 64)
	if err != nil || mutationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mutation ID"})
		return
	}

	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("deleted_by", userID))
	}
	logger = logger.With(slog.Int64("mutation_id", mutationID))
	logger.Info("Received request to delete mutation")

	if err := h.mutationService.DeleteMutation(c.Request.Context(), mutationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Mutation not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Mutation not found"})
		} else {
			logger.Error("Failed to delete mutation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mutation"})
		}
		return
	}

	logger.Info("Mutation deleted successfully")
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"encore_backend/internal/middleware"
	"encore_backend/internal/models"
	"encore_backend/internal/services"
	"encore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService services.GigService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gigs := rg.Group("/gigs")
	gigs.Use(middleware.AuthMiddleware())
	{
		gigs.POST("", middleware.RequireRoles(models.UserRoleCustomer), h.Create)
		gigs.GET("", h.List)
		gigs.GET("/:id", h.Get)
		gigs.PUT("/:id/status", h.UpdateStatus)
	}
}

// Create godoc
// @Summary Book an artist
// @Description Creates a pending gig for the given artist
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGigRequest true "Booking details"
// @Success 201 {object} dto.GigResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /gigs [post]
func (h *GigHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.gigService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List own gigs
// @Description Customers see bookings they made, artists see bookings they received
// @Tags gigs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.GigListResponse
// @Router /gigs [get]
func (h *GigHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.gigService.ListForUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a gig
// @Description Participant-only view of a single gig
// @Tags gigs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gig ID"
// @Success 200 {object} dto.GigResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /gigs/{id} [get]
func (h *GigHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.gigService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary Update gig status
// @Description Artist confirms or completes, customer cancels
// @Tags gigs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gig ID"
// @Param request body dto.UpdateGigStatusRequest true "New status"
// @Success 200 {object} dto.GigResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /gigs/{id}/status [put]
func (h *GigHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGigStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.gigService.UpdateStatus(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

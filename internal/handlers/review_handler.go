package handlers

import (
	"net/http"

	"encore_backend/internal/middleware"
	"encore_backend/internal/models"
	"encore_backend/internal/services"
	"encore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	artists := rg.Group("/artists/:id/reviews")
	{
		artists.GET("", h.ListByArtist)
		artists.POST("",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(models.UserRoleCustomer),
			h.Create,
		)
	}
}

// Create godoc
// @Summary Review an artist
// @Description Creates a review and recomputes the artist's ranking from all reviews
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artist profile ID"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /artists/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.Create(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListByArtist godoc
// @Summary List an artist's reviews
// @Description Public listing with the artist's current ranking
// @Tags reviews
// @Produce json
// @Param id path string true "Artist profile ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ReviewListResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /artists/{id}/reviews [get]
func (h *ReviewHandler) ListByArtist(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.reviewService.ListByArtist(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

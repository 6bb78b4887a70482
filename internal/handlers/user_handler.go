package handlers

import (
	"net/http"

	"encore_backend/internal/middleware"
	"encore_backend/internal/services"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	kycService  services.KYCService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, kycService services.KYCService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		kycService:  kycService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:id", h.GetUserDetails)
		users.POST("/:id/kyc", h.CollectKYC)
	}
}

// GetUserDetails godoc
// @Summary Get user details
// @Description Returns a user together with its role profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserDetailResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUserDetails(c *gin.Context) {
	resp, err := h.userService.GetUserDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CollectKYC godoc
// @Summary Submit KYC information
// @Description Collects identity data for the caller's own account; BVN and NIN are stored encrypted
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.CollectKYCRequest true "KYC data"
// @Success 201 {object} dto.KYCAcknowledgement
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /users/{id}/kyc [post]
func (h *UserHandler) CollectKYC(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if callerID != c.Param("id") {
		apperrors.HandleError(c, apperrors.NewForbiddenError("KYC can only be submitted for your own account"))
		return
	}

	var req dto.CollectKYCRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ack, err := h.kycService.Collect(c.Request.Context(), callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ack)
}

package handlers

import (
	"net/http"

	"encore_backend/internal/middleware"
	"encore_backend/internal/models"
	"encore_backend/internal/services"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("/users/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/profile", h.GetMyProfile)
		me.PUT("/artist-profile", middleware.RequireRoles(models.UserRoleArtist), h.UpdateArtistProfile)
		me.POST("/artist-profile/document", middleware.RequireRoles(models.UserRoleArtist), h.UploadArtistDocument)
		me.PUT("/customer-profile", middleware.RequireRoles(models.UserRoleCustomer), h.UpdateCustomerProfile)
		me.POST("/customer-profile/photo", middleware.RequireRoles(models.UserRoleCustomer), h.UploadCustomerPhoto)
		me.PUT("/admin-profile", middleware.RequireRoles(models.UserRoleAdmin), h.UpdateAdminProfile)
	}
}

// GetMyProfile godoc
// @Summary Get own profile
// @Description Returns the profile matching the caller's role
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} interface{}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/me/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateArtistProfile godoc
// @Summary Update artist profile
// @Description Partially updates the caller's artist profile; omitted fields are left unchanged
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateArtistProfileRequest true "Fields to update"
// @Success 200 {object} models.ArtistProfile
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/me/artist-profile [put]
func (h *ProfileHandler) UpdateArtistProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateArtistProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateArtistProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateCustomerProfile godoc
// @Summary Update customer profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCustomerProfileRequest true "Fields to update"
// @Success 200 {object} models.CustomerProfile
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/me/customer-profile [put]
func (h *ProfileHandler) UpdateCustomerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateCustomerProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateAdminProfile godoc
// @Summary Update admin profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAdminProfileRequest true "Fields to update"
// @Success 200 {object} models.AdminProfile
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/me/admin-profile [put]
func (h *ProfileHandler) UpdateAdminProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAdminProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateAdminProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadArtistDocument godoc
// @Summary Upload artist verification document
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param document formData file true "Document file"
// @Success 200 {object} models.ArtistProfile
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users/me/artist-profile/document [post]
func (h *ProfileHandler) UploadArtistDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("document")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing document file"))
		return
	}
	defer file.Close()

	if !h.ValidateUpload(c, header) {
		return
	}

	profile, err := h.profileService.UploadArtistDocument(
		c.Request.Context(), userID, header.Filename, file, header.Header.Get("Content-Type"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadCustomerPhoto godoc
// @Summary Upload customer photo
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo file"
// @Success 200 {object} models.CustomerProfile
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users/me/customer-profile/photo [post]
func (h *ProfileHandler) UploadCustomerPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing photo file"))
		return
	}
	defer file.Close()

	if !h.ValidateUpload(c, header) {
		return
	}

	profile, err := h.profileService.UploadCustomerPhoto(
		c.Request.Context(), userID, header.Filename, file, header.Header.Get("Content-Type"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

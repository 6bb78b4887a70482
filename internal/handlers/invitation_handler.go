package handlers

import (
	"net/http"

	"encore_backend/internal/middleware"
	"encore_backend/internal/models"
	"encore_backend/internal/services"
	"encore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	*BaseHandler
	invitationService services.InvitationService
}

func NewInvitationHandler(base *BaseHandler, invitationService services.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		BaseHandler:       base,
		invitationService: invitationService,
	}
}

func (h *InvitationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invitations := rg.Group("/admin/invitations")
	{
		// token redemption happens before the invitee has an account
		invitations.POST("/accept", h.Accept)

		admin := invitations.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.POST("", h.Create)
			admin.GET("", h.List)
		}
	}
}

// Create godoc
// @Summary Invite an admin
// @Description Creates an invitation token and emails it to the invitee
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInvitationRequest true "Invitee"
// @Success 201 {object} dto.InvitationResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Failure 502 {object} apperrors.ErrorResponse
// @Router /admin/invitations [post]
func (h *InvitationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.invitationService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List admin invitations
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.InvitationListResponse
// @Router /admin/invitations [get]
func (h *InvitationHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.invitationService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Accept godoc
// @Summary Accept an admin invitation
// @Description Redeems an invitation token and creates the admin account
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body dto.AcceptInvitationRequest true "Token and credentials"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/invitations/accept [post]
func (h *InvitationHandler) Accept(c *gin.Context) {
	var req dto.AcceptInvitationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.invitationService.Accept(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

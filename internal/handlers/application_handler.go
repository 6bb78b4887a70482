package handlers

import (
	"io"
	"net/http"

	"encore_backend/internal/middleware"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services"
	"encore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	{
		// open endpoint, applicants have no account yet
		apps.POST("", h.Submit)

		admin := apps.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.GET("", h.List)
			admin.GET("/:id", h.Get)
			admin.PUT("/:id/decision", h.Decide)
		}
	}
}

// Submit godoc
// @Summary Submit an artist application
// @Description Accepts an application with an optional sample song and notifies the platform admin
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Applicant name"
// @Param email formData string true "Applicant email"
// @Param phone formData string false "Phone"
// @Param genre formData string true "Genre"
// @Param biography formData string true "Biography"
// @Param sample_song formData file false "Sample song"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 502 {object} apperrors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	var sample io.Reader
	var sampleName, sampleType string
	if file, header, err := c.Request.FormFile("sample_song"); err == nil {
		defer file.Close()
		if !h.ValidateUpload(c, header) {
			return
		}
		sample = file
		sampleName = header.Filename
		sampleType = header.Header.Get("Content-Type")
	}

	resp, err := h.applicationService.Submit(c.Request.Context(), &req, sample, sampleName, sampleType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List artist applications
// @Description Admin-only listing with optional status filter
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ApplicationListResponse
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.ApplicationFilter{
		Status:   models.ApplicationStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	resp, err := h.applicationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get an artist application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	resp, err := h.applicationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Decide godoc
// @Summary Decide an artist application
// @Description Moves a pending application to approved or rejected and emails the applicant
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.ApplicationDecisionRequest true "Decision"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/{id}/decision [put]
func (h *ApplicationHandler) Decide(c *gin.Context) {
	var req dto.ApplicationDecisionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Decide(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

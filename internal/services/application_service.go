package services

import (
	"context"
	"fmt"
	"io"

	"encore_backend/internal/email"
	"encore_backend/internal/logger"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/internal/storage"
	"encore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Submit(ctx context.Context, req *dto.SubmitApplicationRequest, sampleSong io.Reader, sampleFilename, sampleContentType string) (*dto.ApplicationResponse, error)
	List(ctx context.Context, filter repositories.ApplicationFilter) (*dto.ApplicationListResponse, error)
	Get(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	Decide(ctx context.Context, id string, req *dto.ApplicationDecisionRequest) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	db         *gorm.DB
	appRepo    repositories.ApplicationRepository
	mailer     email.Provider
	storage    storage.Storage
	adminEmail string
}

func NewApplicationService(
	db *gorm.DB,
	appRepo repositories.ApplicationRepository,
	mailer email.Provider,
	store storage.Storage,
	adminEmail string,
) ApplicationService {
	return &ApplicationServiceImpl{
		db:         db,
		appRepo:    appRepo,
		mailer:     mailer,
		storage:    store,
		adminEmail: adminEmail,
	}
}

// Submit stores a pending application and notifies the platform
// admin. The write survives a notification failure; the caller still
// sees the failure.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, req *dto.SubmitApplicationRequest, sampleSong io.Reader, sampleFilename, sampleContentType string) (*dto.ApplicationResponse, error) {
	app := &models.ArtistApplication{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Genre:     req.Genre,
		Biography: req.Biography,
		Status:    models.ApplicationStatusPending,
	}

	if sampleSong != nil {
		path := buildObjectPath("applications/samples", req.Email, sampleFilename)
		if err := s.storage.Save(ctx, path, sampleSong, sampleContentType); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "Failed to store sample song", 500)
		}
		app.SampleSongPath = path
	}

	if err := s.appRepo.Create(s.db.WithContext(ctx), app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "artist application submitted", "application_id", app.ID, "email", app.Email)

	err := s.mailer.SendTemplate(
		[]string{s.adminEmail},
		fmt.Sprintf("New artist application: %s", app.Name),
		"application_submitted",
		email.TemplateData{"Name": app.Name, "Genre": app.Genre, "Email": app.Email},
	)
	if err != nil {
		logger.CtxWithError(ctx, "admin notification failed", err, "application_id", app.ID)
		return nil, apperrors.ErrNotificationFailed.WithError(err)
	}

	return s.toResponse(ctx, app), nil
}

func (s *ApplicationServiceImpl) List(ctx context.Context, filter repositories.ApplicationFilter) (*dto.ApplicationListResponse, error) {
	apps, total, err := s.appRepo.FindWithFilter(s.db.WithContext(ctx), filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, s.toResponse(ctx, &apps[i]))
	}

	return &dto.ApplicationListResponse{
		Applications: responses,
		Total:        total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	}, nil
}

func (s *ApplicationServiceImpl) Get(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, app), nil
}

// Decide moves a pending application to approved or rejected. The
// transition happens at most once; a second decision is rejected.
func (s *ApplicationServiceImpl) Decide(ctx context.Context, id string, req *dto.ApplicationDecisionRequest) (*dto.ApplicationResponse, error) {
	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationDecided
	}

	app.Status = req.Status
	app.Feedback = req.Feedback
	if err := s.appRepo.Update(s.db.WithContext(ctx), app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "application decided", "application_id", app.ID, "status", app.Status)

	err = s.mailer.SendTemplate(
		[]string{app.Email},
		"Your artist application",
		"application_decision",
		email.TemplateData{"Name": app.Name, "Status": string(app.Status), "Feedback": app.Feedback},
	)
	if err != nil {
		logger.CtxWithError(ctx, "applicant notification failed", err, "application_id", app.ID)
		return nil, apperrors.ErrNotificationFailed.WithError(err)
	}

	return s.toResponse(ctx, app), nil
}

func (s *ApplicationServiceImpl) findApplication(ctx context.Context, id string) (*models.ArtistApplication, error) {
	app, err := s.appRepo.FindByID(s.db.WithContext(ctx), id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) toResponse(ctx context.Context, app *models.ArtistApplication) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:        app.ID,
		Name:      app.Name,
		Email:     app.Email,
		Phone:     app.Phone,
		Genre:     app.Genre,
		Biography: app.Biography,
		Status:    app.Status,
		Feedback:  app.Feedback,
		CreatedAt: app.CreatedAt,
	}
	if app.SampleSongPath != "" {
		if url, err := s.storage.GetURL(ctx, app.SampleSongPath); err == nil {
			resp.SampleSongURL = url
		}
	}
	return resp
}

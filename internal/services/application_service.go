package services

import (
	"context"
	"strconv"
	"time"

	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/repository"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
	"github.com/pixelforge/pixelforge-api/pkg/httpclient"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"github.com/pixelforge/pixelforge-api/pkg/recaptcha"
	"github.com/pixelforge/pixelforge-api/pkg/slug"
	"github.com/pixelforge/pixelforge-api/pkg/storage"
	"github.com/pixelforge/pixelforge-api/pkg/trigger"
	"go.uber.org/zap"
)

// ResumeStorage is the slice of the object storage client the application
// flow needs. Satisfied by *storage.Client.
type ResumeStorage interface {
	UploadResume(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// ApplicationService handles job applications for open positions
type ApplicationService struct {
	applicationRepo   repository.JobApplicationStore
	contentRepo       repository.ContentRepositoryInterface
	storageClient     ResumeStorage
	config            *config.Config
	httpClient        httpclient.Client
	recaptchaVerifier *recaptcha.Verifier
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applicationRepo repository.JobApplicationStore,
	contentRepo repository.ContentRepositoryInterface,
	storageClient ResumeStorage,
	cfg *config.Config,
	httpClient httpclient.Client,
) ApplicationServiceInterface {

	return &ApplicationService{
		applicationRepo:   applicationRepo,
		contentRepo:       contentRepo,
		storageClient:     storageClient,
		config:            cfg,
		httpClient:        httpClient,
		recaptchaVerifier: recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient),
	}
}

// SubmitApplication validates and stores a job application. The career must
// exist (either source), the resume must decode and be an accepted document
// type, and the resume bytes are uploaded to object storage before the
// record is written.
func (s *ApplicationService) SubmitApplication(ctx context.Context, careerSlug string, req *models.JobApplicationRequest) (*models.JobApplicationResponse, error) {
	// Object storage is optional at startup; without it applications cannot
	// be accepted, so reject before running any other checks.
	if s.storageClient == nil {
		metrics.JobApplications.WithLabelValues("storage_unavailable").Inc()
		logger.Error("Resume storage is not configured, rejecting application",
			zap.String("career_slug", careerSlug))
		return &models.JobApplicationResponse{
			Success: false,
			Error:   "Resume uploads are currently unavailable",
		}, nil
	}

	// Verify ReCAPTCHA
	if err := s.recaptchaVerifier.Verify(req.RecaptchaToken); err != nil {
		metrics.JobApplications.WithLabelValues("captcha_failed").Inc()
		logger.Warn("ReCAPTCHA verification failed", zap.Error(err))
		return &models.JobApplicationResponse{
			Success: false,
			Error:   "Captcha verification failed",
		}, nil
	}

	// The position must be open
	if _, err := s.contentRepo.GetCareerBySlug(ctx, careerSlug); err != nil {
		metrics.JobApplications.WithLabelValues("unknown_career").Inc()
		return nil, pkgerrors.NotFoundError("career")
	}

	if err := storage.ValidateResumeType(req.ResumeContentType); err != nil {
		metrics.JobApplications.WithLabelValues("invalid_resume").Inc()
		return &models.JobApplicationResponse{
			Success: false,
			Error:   "Unsupported resume file type",
		}, nil
	}

	resumeBytes, err := storage.DecodeResume(req.ResumeData)
	if err != nil {
		metrics.JobApplications.WithLabelValues("invalid_resume").Inc()
		logger.Warn("Failed to decode resume", zap.Error(err))
		return &models.JobApplicationResponse{
			Success: false,
			Error:   "Invalid resume data",
		}, nil
	}

	key := slug.ResumeObjectKey(careerSlug, req.ResumeFilename, time.Now())
	resumeURL, err := s.storageClient.UploadResume(ctx, resumeBytes, key, req.ResumeContentType)
	if err != nil {
		metrics.JobApplications.WithLabelValues("error").Inc()
		logger.Error("Failed to upload resume", zap.Error(err))
		return &models.JobApplicationResponse{
			Success: false,
			Error:   "Failed to store resume",
		}, nil
	}

	rec := &models.JobApplicationRecord{
		CareerSlug:  careerSlug,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		ResumeURL:   resumeURL,
	}

	applicationID, err := s.applicationRepo.Create(ctx, rec)
	if err != nil {
		metrics.JobApplications.WithLabelValues("error").Inc()
		logger.Error("Failed to create job application", zap.Error(err))
		return &models.JobApplicationResponse{
			Success: false,
			Error:   "Failed to save application",
		}, nil
	}

	// Trigger application created webhook (non-blocking)
	trigger.CallAsync(s.config.EventTriggers.ApplicationCreatedTriggerURL,
		strconv.FormatInt(applicationID, 10), s.httpClient)

	metrics.JobApplications.WithLabelValues("success").Inc()
	return &models.JobApplicationResponse{Success: true}, nil
}

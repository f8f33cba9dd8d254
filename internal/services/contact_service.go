package services

import (
	"context"
	"strconv"

	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/repository"
	"github.com/pixelforge/pixelforge-api/pkg/httpclient"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"github.com/pixelforge/pixelforge-api/pkg/recaptcha"
	"github.com/pixelforge/pixelforge-api/pkg/trigger"
	"go.uber.org/zap"
)

// ContactService handles contact form submissions
type ContactService struct {
	contactRepo       repository.ContactRequestStore
	config            *config.Config
	httpClient        httpclient.Client
	recaptchaVerifier *recaptcha.Verifier
}

// NewContactService creates a new contact service instance
func NewContactService(
	contactRepo repository.ContactRequestStore,
	cfg *config.Config,
	httpClient httpclient.Client,
) ContactServiceInterface {

	return &ContactService{
		contactRepo:       contactRepo,
		config:            cfg,
		httpClient:        httpClient,
		recaptchaVerifier: recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient),
	}
}

func (s *ContactService) SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	// Verify ReCAPTCHA
	if err := s.recaptchaVerifier.Verify(req.RecaptchaToken); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("captcha_failed").Inc()
		logger.Warn("ReCAPTCHA verification failed", zap.Error(err))
		return &models.ContactResponse{
			Success: false,
			Error:   "Captcha verification failed",
		}, nil
	}

	// Persist the request (skip in development)
	if !s.config.IsDevelopment() {
		rec := &models.ContactRecord{
			Name:    req.Name,
			Email:   req.Email,
			Company: req.Company,
			Phone:   req.Phone,
			Message: req.Message,
		}

		requestID, err := s.contactRepo.Create(ctx, rec)
		if err != nil {
			metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
			logger.Error("Failed to create contact request", zap.Error(err))
			return &models.ContactResponse{
				Success: false,
				Error:   "Failed to save contact request",
			}, nil
		}

		// Trigger contact created webhook (non-blocking)
		trigger.CallAsync(s.config.EventTriggers.ContactCreatedTriggerURL,
			strconv.FormatInt(requestID, 10), s.httpClient)
	} else {
		metrics.ContactFormSubmissions.WithLabelValues("success_dev").Inc()
		return &models.ContactResponse{Success: true}, nil
	}

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	return &models.ContactResponse{Success: true}, nil
}

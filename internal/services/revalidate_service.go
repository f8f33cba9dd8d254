package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/repository"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"go.uber.org/zap"
)

// ErrMissingDocumentType is returned when a webhook payload carries neither
// a documentType nor a _type field.
var ErrMissingDocumentType = fmt.Errorf("missing document type: %w", pkgerrors.ErrInvalidInput)

// RevalidateService reacts to CMS publish events: it drops the affected
// cache tags and asks the Next.js frontend to regenerate the affected pages.
type RevalidateService struct {
	contentRepo repository.ContentRepositoryInterface
	config      *config.Config
	HTTPClient  *http.Client
}

func NewRevalidateService(contentRepo repository.ContentRepositoryInterface, cfg *config.Config) RevalidateServiceInterface {
	return &RevalidateService{
		contentRepo: contentRepo,
		config:      cfg,
		HTTPClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

// HandleWebhook applies the revalidation rule for the payload's document
// type. Tag invalidation runs first, then page revalidation, so a failed
// frontend call can never leave stale data behind a fresh page. Steps are
// independently idempotent and there is no rollback: retrying the webhook
// simply repeats them.
//
// An unknown document type is not an error. The CMS fans out every publish
// event, so types without a rule are acknowledged and skipped.
func (s *RevalidateService) HandleWebhook(ctx context.Context, payload *models.WebhookPayload) (*models.RevalidateResponse, error) {
	docType := payload.DocType()
	if docType == "" {
		metrics.WebhookEvents.WithLabelValues("unknown", "missing_type").Inc()
		return nil, ErrMissingDocumentType
	}

	rule, ok := RuleForType(docType)
	if !ok {
		metrics.WebhookEvents.WithLabelValues(docType, "unconfigured").Inc()
		logger.Info("No revalidation configured for type",
			zap.String("document_type", docType))
		return &models.RevalidateResponse{
			Revalidated: false,
			Message:     fmt.Sprintf("No revalidation configured for type: %s", docType),
		}, nil
	}

	slug := payload.SlugValue()
	logger.Info("Processing CMS webhook",
		zap.String("document_type", docType),
		zap.String("slug", slug),
		zap.String("operation", payload.Operation))

	for _, tag := range rule.Tags {
		s.contentRepo.InvalidateTag(tag)
	}

	if rule.PathPrefix != "" {
		if slug != "" {
			if err := s.revalidatePath(ctx, rule.PathPrefix+"/"+slug); err != nil {
				logger.Warn("Failed to revalidate page", zap.Error(err))
				// Don't fail the webhook
			}
		}
		if err := s.revalidatePath(ctx, rule.PathPrefix); err != nil {
			logger.Warn("Failed to revalidate listing page", zap.Error(err))
			// Don't fail the webhook
		}
	}

	metrics.WebhookEvents.WithLabelValues(docType, "revalidated").Inc()
	return &models.RevalidateResponse{
		Revalidated: true,
		Type:        docType,
		Slug:        slug,
		Tags:        rule.Tags,
	}, nil
}

// SupportedTypes lists the document types this service acts on
func (s *RevalidateService) SupportedTypes() []string {
	return SupportedDocumentTypes()
}

func (s *RevalidateService) revalidatePath(ctx context.Context, path string) error {
	reqURL := fmt.Sprintf("%s/api/revalidate?secret=%s&path=%s",
		s.config.NextJS.BaseURL,
		url.QueryEscape(s.config.NextJS.RevalidateSecret),
		url.QueryEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		metrics.RevalidationCalls.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to create Next.js revalidate request: %w", err)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		metrics.RevalidationCalls.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to call Next.js revalidate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RevalidationCalls.WithLabelValues("error").Inc()
		return fmt.Errorf("Next.js revalidate returned status %d for %s", resp.StatusCode, path)
	}

	metrics.RevalidationCalls.WithLabelValues("success").Inc()
	logger.Info("Next.js revalidation triggered", zap.String("path", path))
	return nil
}

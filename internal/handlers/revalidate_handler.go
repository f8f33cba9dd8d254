package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/services"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/signature"
	"go.uber.org/zap"
)

// SignatureHeader is the webhook signature header sent by Sanity
const SignatureHeader = "sanity-webhook-signature"

type RevalidateHandler struct {
	service services.RevalidateServiceInterface
	config  *config.Config
}

func NewRevalidateHandler(service services.RevalidateServiceInterface, cfg *config.Config) *RevalidateHandler {
	return &RevalidateHandler{service: service, config: cfg}
}

// HandleWebhook processes a CMS publish webhook. The signature is verified
// against the raw body bytes before any parsing; re-serialized JSON is not
// guaranteed to be byte-identical to what was signed.
func (h *RevalidateHandler) HandleWebhook(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	if h.config.Auth.WebhookSecret != "" {
		sig := c.GetHeader(SignatureHeader)
		if !signature.Verify(rawBody, sig, h.config.Auth.WebhookSecret) {
			// Log the rejection without echoing the computed digest
			logger.Warn("Webhook signature verification failed",
				zap.String("remote_addr", c.ClientIP()),
				zap.Bool("header_present", sig != ""))
			respondError(c, http.StatusUnauthorized, "Invalid signature", nil)
			return
		}
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	resp, err := h.service.HandleWebhook(c.Request.Context(), &payload)
	if err != nil {
		if errors.Is(err, services.ErrMissingDocumentType) {
			respondError(c, http.StatusBadRequest, "Missing document type", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to process webhook", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Status reports webhook configuration without requiring auth. Exposes only
// whether a secret is set, never the secret itself.
func (h *RevalidateHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"secretConfigured": h.config.Auth.WebhookSecret != "",
		"supportedTypes":   h.service.SupportedTypes(),
	})
}

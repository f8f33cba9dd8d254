package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/services"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// mockRevalidateService is a mock implementation of RevalidateServiceInterface
type mockRevalidateService struct {
	mock.Mock
}

func (m *mockRevalidateService) HandleWebhook(ctx context.Context, payload *models.WebhookPayload) (*models.RevalidateResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RevalidateResponse), args.Error(1)
}

func (m *mockRevalidateService) SupportedTypes() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

const webhookSecret = "whsec_test"

func newRevalidateRouter(service services.RevalidateServiceInterface, secret string) *gin.Engine {
	cfg := &config.Config{
		Auth: config.AuthConfig{WebhookSecret: secret},
	}
	handler := NewRevalidateHandler(service, cfg)
	router := gin.New()
	router.POST("/api/revalidate", handler.HandleWebhook)
	router.GET("/api/revalidate", handler.Status)
	return router
}

func signedRequest(t *testing.T, body []byte, secret string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/revalidate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(SignatureHeader, signature.Sign(body, secret))
	}
	return req
}

func TestRevalidateHandler_ValidWebhook(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{"documentType":"post","slug":"my-post"}`)

	service.On("HandleWebhook", mock.Anything, mock.MatchedBy(func(p *models.WebhookPayload) bool {
		return p.DocType() == "post" && p.SlugValue() == "my-post"
	})).Return(&models.RevalidateResponse{
		Revalidated: true,
		Type:        "post",
		Slug:        "my-post",
		Tags:        []string{"posts"},
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, body, webhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"revalidated":true,"type":"post","slug":"my-post","tags":["posts"]}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestRevalidateHandler_InvalidSignature(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{"documentType":"post","slug":"my-post"}`)
	req := httptest.NewRequest("POST", "/api/revalidate", bytes.NewReader(body))
	req.Header.Set(SignatureHeader, signature.Sign(body, "wrong-secret"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid signature"}`, w.Body.String())
	service.AssertNotCalled(t, "HandleWebhook")
}

func TestRevalidateHandler_MissingSignature(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{"documentType":"post"}`)
	req := httptest.NewRequest("POST", "/api/revalidate", bytes.NewReader(body))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "HandleWebhook")
}

func TestRevalidateHandler_CompositeSignatureHeader(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{"documentType":"career","slug":{"current":"backend-engineer"}}`)

	service.On("HandleWebhook", mock.Anything, mock.Anything).Return(&models.RevalidateResponse{
		Revalidated: true,
		Type:        "career",
		Slug:        "backend-engineer",
		Tags:        []string{"careers"},
	}, nil).Once()

	req := httptest.NewRequest("POST", "/api/revalidate", bytes.NewReader(body))
	req.Header.Set(SignatureHeader, "t=1693399337,v1="+signature.Sign(body, webhookSecret))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestRevalidateHandler_UnknownType(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{"documentType":"unknownType"}`)

	service.On("HandleWebhook", mock.Anything, mock.Anything).Return(&models.RevalidateResponse{
		Revalidated: false,
		Message:     "No revalidation configured for type: unknownType",
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, body, webhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"revalidated":false,"message":"No revalidation configured for type: unknownType"}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestRevalidateHandler_InvalidJSON(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{not json`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, body, webhookSecret))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON payload"}`, w.Body.String())
	service.AssertNotCalled(t, "HandleWebhook")
}

func TestRevalidateHandler_MissingDocumentType(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{"slug":"orphan"}`)

	service.On("HandleWebhook", mock.Anything, mock.Anything).
		Return(nil, services.ErrMissingDocumentType).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, body, webhookSecret))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing document type"}`, w.Body.String())
}

func TestRevalidateHandler_ServiceError(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, webhookSecret)

	body := []byte(`{"documentType":"post","slug":"my-post"}`)

	service.On("HandleWebhook", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(t, body, webhookSecret))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to process webhook"}`, w.Body.String())
}

func TestRevalidateHandler_NoSecretConfigured(t *testing.T) {
	service := new(mockRevalidateService)
	router := newRevalidateRouter(service, "")

	body := []byte(`{"documentType":"post","slug":"my-post"}`)

	service.On("HandleWebhook", mock.Anything, mock.Anything).Return(&models.RevalidateResponse{
		Revalidated: true,
		Type:        "post",
		Slug:        "my-post",
		Tags:        []string{"posts"},
	}, nil).Once()

	// No signature header at all; verification is skipped without a secret
	req := httptest.NewRequest("POST", "/api/revalidate", bytes.NewReader(body))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestRevalidateHandler_Status(t *testing.T) {
	service := new(mockRevalidateService)
	service.On("SupportedTypes").Return([]string{"career", "post"}).Once()
	router := newRevalidateRouter(service, webhookSecret)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/revalidate", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SecretConfigured bool     `json:"secretConfigured"`
		SupportedTypes   []string `json:"supportedTypes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.SecretConfigured)
	assert.Equal(t, []string{"career", "post"}, resp.SupportedTypes)
}

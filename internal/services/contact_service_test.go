package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactService_SubmitContactForm(t *testing.T) {
	mockContactRepo := new(MockContactRequestStore)
	mockHTTPClient := new(MockHTTPClient)
	cfg := &config.Config{
		Server: config.ServerConfig{
			AppEnv: "production",
		},
		ReCAPTCHA: config.ReCAPTCHAConfig{
			SecretKey: "test-secret",
		},
	}
	service := services.NewContactService(mockContactRepo, cfg, mockHTTPClient)
	ctx := context.Background()

	contactReq := &models.ContactRequest{
		Name:           "Test User",
		Email:          "test@example.com",
		Company:        "Acme Inc",
		Message:        "We need a new website",
		RecaptchaToken: "test-token",
	}

	mockHTTPClient.On("Post", mock.Anything, mock.Anything, mock.Anything).
		Return(captchaResponse(true), nil).Once()
	mockContactRepo.On("Create", ctx, mock.MatchedBy(func(rec *models.ContactRecord) bool {
		return rec.Email == "test@example.com" && rec.Company == "Acme Inc"
	})).Return(int64(42), nil).Once()

	resp, err := service.SubmitContactForm(ctx, contactReq)
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.Success)

	mockContactRepo.AssertExpectations(t)
	mockHTTPClient.AssertExpectations(t)
}

func TestContactService_SubmitContactForm_CaptchaError(t *testing.T) {
	mockContactRepo := new(MockContactRequestStore)
	mockHTTPClient := new(MockHTTPClient)
	cfg := &config.Config{
		Server: config.ServerConfig{
			AppEnv: "production",
		},
		ReCAPTCHA: config.ReCAPTCHAConfig{
			SecretKey: "test-secret",
		},
	}
	service := services.NewContactService(mockContactRepo, cfg, mockHTTPClient)
	ctx := context.Background()

	contactReq := &models.ContactRequest{
		Name:           "Test User",
		Email:          "test@example.com",
		Message:        "hi",
		RecaptchaToken: "bad-token",
	}

	mockHTTPClient.On("Post", mock.Anything, mock.Anything, mock.Anything).
		Return(captchaResponse(false), nil).Once()

	resp, err := service.SubmitContactForm(ctx, contactReq)
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Captcha verification failed", resp.Error)

	mockContactRepo.AssertNotCalled(t, "Create")
}

func TestContactService_SubmitContactForm_CreateError(t *testing.T) {
	mockContactRepo := new(MockContactRequestStore)
	mockHTTPClient := new(MockHTTPClient)
	cfg := &config.Config{
		Server: config.ServerConfig{
			AppEnv: "production",
		},
		ReCAPTCHA: config.ReCAPTCHAConfig{
			SecretKey: "test-secret",
		},
	}
	service := services.NewContactService(mockContactRepo, cfg, mockHTTPClient)
	ctx := context.Background()

	contactReq := &models.ContactRequest{
		Name:           "Test User",
		Email:          "test@example.com",
		Message:        "hi",
		RecaptchaToken: "test-token",
	}

	mockHTTPClient.On("Post", mock.Anything, mock.Anything, mock.Anything).
		Return(captchaResponse(true), nil).Once()
	mockContactRepo.On("Create", ctx, mock.AnythingOfType("*models.ContactRecord")).
		Return(int64(0), errors.New("connection refused")).Once()

	resp, err := service.SubmitContactForm(ctx, contactReq)
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to save contact request", resp.Error)

	mockContactRepo.AssertExpectations(t)
}

func TestContactService_SubmitContactForm_DevelopmentSkipsPersistence(t *testing.T) {
	mockContactRepo := new(MockContactRequestStore)
	mockHTTPClient := new(MockHTTPClient)
	cfg := &config.Config{
		Server: config.ServerConfig{
			AppEnv: "development",
		},
		ReCAPTCHA: config.ReCAPTCHAConfig{
			SecretKey: "test-secret",
		},
	}
	service := services.NewContactService(mockContactRepo, cfg, mockHTTPClient)

	contactReq := &models.ContactRequest{
		Name:           "Test User",
		Email:          "test@example.com",
		Message:        "hi",
		RecaptchaToken: "test-token",
	}

	mockHTTPClient.On("Post", mock.Anything, mock.Anything, mock.Anything).
		Return(captchaResponse(true), nil).Once()

	resp, err := service.SubmitContactForm(context.Background(), contactReq)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	mockContactRepo.AssertNotCalled(t, "Create")
}

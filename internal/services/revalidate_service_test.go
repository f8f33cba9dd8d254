package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/pixelforge/pixelforge-api/config"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRevalidateService(contentRepo *MockContentRepository, transport *MockRoundTripper) services.RevalidateServiceInterface {
	cfg := &config.Config{
		NextJS: config.NextJSConfig{
			BaseURL:          "http://localhost:3000",
			RevalidateSecret: "test-secret",
		},
	}
	service := services.NewRevalidateService(contentRepo, cfg)
	service.(*services.RevalidateService).HTTPClient.Transport = transport
	return service
}

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}
}

func TestRevalidateService_HandleWebhook_Post(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockTransport := new(MockRoundTripper)
	service := newRevalidateService(mockContentRepo, mockTransport)
	ctx := context.Background()

	payload := &models.WebhookPayload{
		Type: models.TypePost,
		Slug: json.RawMessage(`{"_type":"slug","current":"our-design-process"}`),
	}

	mockContentRepo.On("InvalidateTag", models.TagPosts).Return().Once()
	// Detail page first, then the listing page
	mockTransport.On("RoundTrip", mock.AnythingOfType("*http.Request")).Return(okResponse(), nil).Twice()

	resp, err := service.HandleWebhook(ctx, payload)
	require.NoError(t, err)
	assert.True(t, resp.Revalidated)
	assert.Equal(t, models.TypePost, resp.Type)
	assert.Equal(t, "our-design-process", resp.Slug)
	assert.Equal(t, []string{models.TagPosts}, resp.Tags)

	mockContentRepo.AssertExpectations(t)
	mockTransport.AssertExpectations(t)
}

func TestRevalidateService_HandleWebhook_BareStringSlug(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockTransport := new(MockRoundTripper)
	service := newRevalidateService(mockContentRepo, mockTransport)

	payload := &models.WebhookPayload{
		DocumentType: models.TypeCareer,
		Slug:         json.RawMessage(`"senior-frontend-engineer"`),
	}

	mockContentRepo.On("InvalidateTag", models.TagCareers).Return().Once()
	mockTransport.On("RoundTrip", mock.AnythingOfType("*http.Request")).Return(okResponse(), nil).Twice()

	resp, err := service.HandleWebhook(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, resp.Revalidated)
	assert.Equal(t, "senior-frontend-engineer", resp.Slug)

	mockContentRepo.AssertExpectations(t)
	mockTransport.AssertExpectations(t)
}

func TestRevalidateService_HandleWebhook_NoSlug(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockTransport := new(MockRoundTripper)
	service := newRevalidateService(mockContentRepo, mockTransport)

	payload := &models.WebhookPayload{Type: models.TypePost}

	mockContentRepo.On("InvalidateTag", models.TagPosts).Return().Once()
	// Only the listing page is revalidated when there is no slug
	mockTransport.On("RoundTrip", mock.AnythingOfType("*http.Request")).Return(okResponse(), nil).Once()

	resp, err := service.HandleWebhook(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, resp.Revalidated)
	assert.Empty(t, resp.Slug)

	mockContentRepo.AssertExpectations(t)
	mockTransport.AssertExpectations(t)
}

func TestRevalidateService_HandleWebhook_TagOnlyType(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockTransport := new(MockRoundTripper)
	service := newRevalidateService(mockContentRepo, mockTransport)

	payload := &models.WebhookPayload{
		Type: models.TypeTeamMember,
		Slug: json.RawMessage(`"jane-doe"`),
	}

	mockContentRepo.On("InvalidateTag", models.TagTeam).Return().Once()

	resp, err := service.HandleWebhook(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, resp.Revalidated)

	// Team members have no routed detail page, so no frontend call is made
	mockTransport.AssertNotCalled(t, "RoundTrip")
	mockContentRepo.AssertExpectations(t)
}

func TestRevalidateService_HandleWebhook_UnknownType(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockTransport := new(MockRoundTripper)
	service := newRevalidateService(mockContentRepo, mockTransport)

	payload := &models.WebhookPayload{Type: "siteSettings"}

	resp, err := service.HandleWebhook(context.Background(), payload)
	require.NoError(t, err)
	assert.False(t, resp.Revalidated)
	assert.Equal(t, "No revalidation configured for type: siteSettings", resp.Message)

	mockContentRepo.AssertNotCalled(t, "InvalidateTag")
	mockTransport.AssertNotCalled(t, "RoundTrip")
}

func TestRevalidateService_HandleWebhook_MissingType(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockTransport := new(MockRoundTripper)
	service := newRevalidateService(mockContentRepo, mockTransport)

	payload := &models.WebhookPayload{
		Slug: json.RawMessage(`"orphan"`),
	}

	resp, err := service.HandleWebhook(context.Background(), payload)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrMissingDocumentType)

	mockContentRepo.AssertNotCalled(t, "InvalidateTag")
}

func TestRevalidateService_HandleWebhook_FrontendFailureTolerated(t *testing.T) {
	mockContentRepo := new(MockContentRepository)
	mockTransport := new(MockRoundTripper)
	service := newRevalidateService(mockContentRepo, mockTransport)

	payload := &models.WebhookPayload{
		Type: models.TypeSuccessStory,
		Slug: json.RawMessage(`{"current":"fintech-replatform"}`),
	}

	mockContentRepo.On("InvalidateTag", models.TagSuccessStories).Return().Once()
	mockTransport.On("RoundTrip", mock.AnythingOfType("*http.Request")).
		Return(nil, errors.New("connection refused")).Twice()

	// Cache tags are already dropped, so the webhook still reports success
	resp, err := service.HandleWebhook(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, resp.Revalidated)
	assert.Equal(t, "fintech-replatform", resp.Slug)

	mockContentRepo.AssertExpectations(t)
	mockTransport.AssertExpectations(t)
}

func TestRevalidateService_SupportedTypes(t *testing.T) {
	service := newRevalidateService(new(MockContentRepository), new(MockRoundTripper))

	types := service.SupportedTypes()
	assert.ElementsMatch(t, []string{
		models.TypePost,
		models.TypeCareer,
		models.TypeTeamMember,
		models.TypeService,
		models.TypeTestimonial,
		models.TypeSuccessStory,
	}, types)
}

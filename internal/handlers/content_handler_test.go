package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/pixelforge-api/internal/models"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockContentService is a mock implementation of ContentServiceInterface
type mockContentService struct {
	mock.Mock
}

func (m *mockContentService) GetPosts(ctx context.Context) ([]*models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *mockContentService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *mockContentService) GetCareers(ctx context.Context) ([]*models.Career, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Career), args.Error(1)
}

func (m *mockContentService) GetCareerBySlug(ctx context.Context, slug string) (*models.Career, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Career), args.Error(1)
}

func (m *mockContentService) GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TeamMember), args.Error(1)
}

func (m *mockContentService) GetServices(ctx context.Context) ([]*models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Service), args.Error(1)
}

func (m *mockContentService) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Testimonial), args.Error(1)
}

func (m *mockContentService) GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SuccessStory), args.Error(1)
}

func (m *mockContentService) GetSuccessStoryBySlug(ctx context.Context, slug string) (*models.SuccessStory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SuccessStory), args.Error(1)
}

func newContentRouter(service *mockContentService) *gin.Engine {
	handler := NewContentHandler(service)
	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/posts", handler.GetPosts)
		v1.GET("/posts/:slug", handler.GetPostBySlug)
		v1.GET("/careers", handler.GetCareers)
		v1.GET("/careers/:slug", handler.GetCareerBySlug)
		v1.GET("/team", handler.GetTeamMembers)
		v1.GET("/services", handler.GetServices)
		v1.GET("/testimonials", handler.GetTestimonials)
		v1.GET("/success-stories", handler.GetSuccessStories)
		v1.GET("/success-stories/:slug", handler.GetSuccessStoryBySlug)
	}
	return router
}

func TestContentHandler_GetPosts(t *testing.T) {
	service := new(mockContentService)
	service.On("GetPosts", mock.Anything).Return([]*models.Post{
		{Slug: "first-post", Title: "First Post"},
	}, nil).Once()

	w := httptest.NewRecorder()
	newContentRouter(service).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/posts", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "first-post")
	service.AssertExpectations(t)
}

func TestContentHandler_GetPosts_CategoryFilter(t *testing.T) {
	service := new(mockContentService)
	service.On("GetPosts", mock.Anything).Return([]*models.Post{
		{Slug: "design-systems", Title: "Design Systems", Category: "design"},
		{Slug: "go-profiling", Title: "Go Profiling", Category: "engineering"},
		{Slug: "uncategorized-note", Title: "A Note"},
	}, nil).Once()

	w := httptest.NewRecorder()
	newContentRouter(service).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/posts?category=engineering", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go-profiling")
	assert.NotContains(t, w.Body.String(), "design-systems")
	assert.NotContains(t, w.Body.String(), "uncategorized-note")
	service.AssertExpectations(t)
}

func TestContentHandler_GetPosts_UnmatchedCategoryIsEmpty(t *testing.T) {
	service := new(mockContentService)
	service.On("GetPosts", mock.Anything).Return([]*models.Post{
		{Slug: "design-systems", Title: "Design Systems", Category: "design"},
	}, nil).Once()

	w := httptest.NewRecorder()
	newContentRouter(service).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/posts?category=nope", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":[]}`, w.Body.String())
}

func TestContentHandler_GetPostBySlug_NotFound(t *testing.T) {
	service := new(mockContentService)
	service.On("GetPostBySlug", mock.Anything, "missing").
		Return(nil, pkgerrors.NotFoundError("post")).Once()

	w := httptest.NewRecorder()
	newContentRouter(service).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/posts/missing", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
}

func TestContentHandler_GetCareerBySlug(t *testing.T) {
	service := new(mockContentService)
	service.On("GetCareerBySlug", mock.Anything, "backend-engineer").
		Return(&models.Career{Slug: "backend-engineer", Title: "Backend Engineer"}, nil).Once()

	w := httptest.NewRecorder()
	newContentRouter(service).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/careers/backend-engineer", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backend Engineer")
	service.AssertExpectations(t)
}

func TestContentHandler_GetTeamMembers(t *testing.T) {
	service := new(mockContentService)
	service.On("GetTeamMembers", mock.Anything).Return([]*models.TeamMember{
		{Name: "Jane Doe", Role: "Engineering Lead"},
	}, nil).Once()

	w := httptest.NewRecorder()
	newContentRouter(service).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/team", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
}

func TestContentHandler_GetSuccessStoryBySlug_NotFound(t *testing.T) {
	service := new(mockContentService)
	service.On("GetSuccessStoryBySlug", mock.Anything, "missing").
		Return(nil, pkgerrors.NotFoundError("success story")).Once()

	w := httptest.NewRecorder()
	newContentRouter(service).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/success-stories/missing", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

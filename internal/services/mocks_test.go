package services_test

import (
	"context"
	"io"
	"net/http"

	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockContentRepository is a mock implementation of ContentRepositoryInterface
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetPosts(ctx context.Context) ([]*models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockContentRepository) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockContentRepository) GetCareers(ctx context.Context) ([]*models.Career, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Career), args.Error(1)
}

func (m *MockContentRepository) GetCareerBySlug(ctx context.Context, slug string) (*models.Career, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Career), args.Error(1)
}

func (m *MockContentRepository) GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TeamMember), args.Error(1)
}

func (m *MockContentRepository) GetServices(ctx context.Context) ([]*models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Service), args.Error(1)
}

func (m *MockContentRepository) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Testimonial), args.Error(1)
}

func (m *MockContentRepository) GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SuccessStory), args.Error(1)
}

func (m *MockContentRepository) GetSuccessStoryBySlug(ctx context.Context, slug string) (*models.SuccessStory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SuccessStory), args.Error(1)
}

func (m *MockContentRepository) InvalidateTag(tag string) {
	m.Called(tag)
}

// MockContactRequestStore is a mock implementation of ContactRequestStore
type MockContactRequestStore struct {
	mock.Mock
}

func (m *MockContactRequestStore) Create(ctx context.Context, rec *models.ContactRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

// MockJobApplicationStore is a mock implementation of JobApplicationStore
type MockJobApplicationStore struct {
	mock.Mock
}

func (m *MockJobApplicationStore) Create(ctx context.Context, rec *models.JobApplicationRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

// MockResumeStorage is a mock implementation of ResumeStorage
type MockResumeStorage struct {
	mock.Mock
}

func (m *MockResumeStorage) UploadResume(ctx context.Context, data []byte, key, contentType string) (string, error) {
	args := m.Called(ctx, data, key, contentType)
	return args.String(0), args.Error(1)
}

// MockHTTPClient is a mock implementation of httpclient.Client
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	args := m.Called(url, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Get(url string) (*http.Response, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// MockRoundTripper mocks transport-level HTTP calls made with *http.Client
type MockRoundTripper struct {
	mock.Mock
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

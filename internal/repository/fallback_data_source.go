package repository

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/fallback"
	"github.com/pixelforge/pixelforge-api/internal/models"
)

// FallbackDataSource implements ContentDataSource over the bundled static
// dataset. It never performs I/O and never fails, which is what makes it a
// safe last resort for the resolver.
type FallbackDataSource struct {
	dataset *fallback.Dataset
}

// NewFallbackDataSource creates a data source over the embedded dataset
func NewFallbackDataSource(dataset *fallback.Dataset) *FallbackDataSource {
	return &FallbackDataSource{dataset: dataset}
}

// Configured always reports true: the dataset is compiled into the binary
func (ds *FallbackDataSource) Configured() bool {
	return true
}

func (ds *FallbackDataSource) GetPosts(_ context.Context) ([]*models.Post, error) {
	return ds.dataset.Posts, nil
}

func (ds *FallbackDataSource) GetCareers(_ context.Context) ([]*models.Career, error) {
	return ds.dataset.Careers, nil
}

func (ds *FallbackDataSource) GetTeamMembers(_ context.Context) ([]*models.TeamMember, error) {
	return ds.dataset.TeamMembers, nil
}

func (ds *FallbackDataSource) GetServices(_ context.Context) ([]*models.Service, error) {
	return ds.dataset.Services, nil
}

func (ds *FallbackDataSource) GetTestimonials(_ context.Context) ([]*models.Testimonial, error) {
	return ds.dataset.Testimonials, nil
}

func (ds *FallbackDataSource) GetSuccessStories(_ context.Context) ([]*models.SuccessStory, error) {
	return ds.dataset.SuccessStories, nil
}

// Ensure FallbackDataSource implements ContentDataSource
var _ ContentDataSource = (*FallbackDataSource)(nil)

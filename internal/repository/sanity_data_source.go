package repository

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/pkg/sanity"
)

// SanityDataSource implements ContentDataSource against the Sanity CMS
type SanityDataSource struct {
	client *sanity.Client
}

// NewSanityDataSource creates a new Sanity-backed content data source
func NewSanityDataSource(client *sanity.Client) *SanityDataSource {
	return &SanityDataSource{client: client}
}

// Configured reports whether the underlying Sanity client has project and
// dataset identifiers
func (ds *SanityDataSource) Configured() bool {
	return ds.client.IsConfigured()
}

// GetPosts fetches all blog posts from Sanity
func (ds *SanityDataSource) GetPosts(ctx context.Context) ([]*models.Post, error) {
	return ds.client.GetPosts(ctx)
}

// GetCareers fetches all job postings from Sanity
func (ds *SanityDataSource) GetCareers(ctx context.Context) ([]*models.Career, error) {
	return ds.client.GetCareers(ctx)
}

// GetTeamMembers fetches the team roster from Sanity
func (ds *SanityDataSource) GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	return ds.client.GetTeamMembers(ctx)
}

// GetServices fetches the service offerings from Sanity
func (ds *SanityDataSource) GetServices(ctx context.Context) ([]*models.Service, error) {
	return ds.client.GetServices(ctx)
}

// GetTestimonials fetches all testimonials from Sanity
func (ds *SanityDataSource) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return ds.client.GetTestimonials(ctx)
}

// GetSuccessStories fetches all case studies from Sanity
func (ds *SanityDataSource) GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error) {
	return ds.client.GetSuccessStories(ctx)
}

// Ensure SanityDataSource implements ContentDataSource
var _ ContentDataSource = (*SanityDataSource)(nil)

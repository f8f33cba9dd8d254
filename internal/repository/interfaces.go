package repository

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/models"
)

// ContentDataSource is one source of site content. Two implementations
// exist: the Sanity CMS (primary) and the bundled fallback dataset. The
// resolver consults exactly one source per request and never merges results.
type ContentDataSource interface {
	// Configured reports whether the source can serve requests at all.
	// The fallback dataset is always configured; the CMS source is not
	// when project or dataset identifiers are missing.
	Configured() bool

	GetPosts(ctx context.Context) ([]*models.Post, error)
	GetCareers(ctx context.Context) ([]*models.Career, error)
	GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error)
	GetServices(ctx context.Context) ([]*models.Service, error)
	GetTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error)
}

// ContactRequestStore persists contact form submissions
type ContactRequestStore interface {
	Create(ctx context.Context, rec *models.ContactRecord) (int64, error)
}

// JobApplicationStore persists job applications
type JobApplicationStore interface {
	Create(ctx context.Context, rec *models.JobApplicationRecord) (int64, error)
}

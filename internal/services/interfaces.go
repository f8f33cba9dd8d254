package services

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/models"
)

// RevalidateServiceInterface defines webhook-driven cache revalidation
type RevalidateServiceInterface interface {
	HandleWebhook(ctx context.Context, payload *models.WebhookPayload) (*models.RevalidateResponse, error)
	SupportedTypes() []string
}

// ContentServiceInterface defines read operations for site content
type ContentServiceInterface interface {
	GetPosts(ctx context.Context) ([]*models.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetCareers(ctx context.Context) ([]*models.Career, error)
	GetCareerBySlug(ctx context.Context, slug string) (*models.Career, error)
	GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error)
	GetServices(ctx context.Context) ([]*models.Service, error)
	GetTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error)
	GetSuccessStoryBySlug(ctx context.Context, slug string) (*models.SuccessStory, error)
}

// ContactServiceInterface defines the interface for contact form operations
type ContactServiceInterface interface {
	SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
}

// ApplicationServiceInterface defines the interface for job application operations
type ApplicationServiceInterface interface {
	SubmitApplication(ctx context.Context, careerSlug string, req *models.JobApplicationRequest) (*models.JobApplicationResponse, error)
}

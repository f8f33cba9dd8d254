package services

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/repository"
)

// ContentService exposes site content to the HTTP layer. It is a thin pass
// through: all resolution logic (cache, CMS, fallback) lives in the
// repository.
type ContentService struct {
	contentRepo repository.ContentRepositoryInterface
}

func NewContentService(contentRepo repository.ContentRepositoryInterface) ContentServiceInterface {
	return &ContentService{contentRepo: contentRepo}
}

func (s *ContentService) GetPosts(ctx context.Context) ([]*models.Post, error) {
	return s.contentRepo.GetPosts(ctx)
}

func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.contentRepo.GetPostBySlug(ctx, slug)
}

func (s *ContentService) GetCareers(ctx context.Context) ([]*models.Career, error) {
	return s.contentRepo.GetCareers(ctx)
}

func (s *ContentService) GetCareerBySlug(ctx context.Context, slug string) (*models.Career, error) {
	return s.contentRepo.GetCareerBySlug(ctx, slug)
}

func (s *ContentService) GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	return s.contentRepo.GetTeamMembers(ctx)
}

func (s *ContentService) GetServices(ctx context.Context) ([]*models.Service, error) {
	return s.contentRepo.GetServices(ctx)
}

func (s *ContentService) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.contentRepo.GetTestimonials(ctx)
}

func (s *ContentService) GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error) {
	return s.contentRepo.GetSuccessStories(ctx)
}

func (s *ContentService) GetSuccessStoryBySlug(ctx context.Context, slug string) (*models.SuccessStory, error) {
	return s.contentRepo.GetSuccessStoryBySlug(ctx, slug)
}

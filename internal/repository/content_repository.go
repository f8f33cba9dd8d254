package repository

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/cache"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/pkg/circuitbreaker"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ContentRepositoryInterface defines content resolution operations.
// Listings never fail: when the CMS is unreachable or unconfigured, the
// bundled fallback dataset is served instead. By-slug lookups return
// pkg/errors.ErrNotFound when neither source has the item.
type ContentRepositoryInterface interface {
	GetPosts(ctx context.Context) ([]*models.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetCareers(ctx context.Context) ([]*models.Career, error)
	GetCareerBySlug(ctx context.Context, slug string) (*models.Career, error)
	GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error)
	GetServices(ctx context.Context) ([]*models.Service, error)
	GetTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error)
	GetSuccessStoryBySlug(ctx context.Context, slug string) (*models.SuccessStory, error)
	InvalidateTag(tag string)
}

// ContentRepository resolves content through a three-stage chain:
// cache, then primary (CMS), then fallback (bundled dataset).
//
// Primary failures are absorbed silently. Stale or sample content is
// preferable to a broken page on a marketing site, so no error from the CMS
// ever reaches a caller. The circuit breaker skips the CMS entirely once it
// has been failing, which keeps page renders fast during an outage.
type ContentRepository struct {
	primary      ContentDataSource
	fallback     ContentDataSource
	cache        *cache.ContentCache
	breaker      *gobreaker.CircuitBreaker
	disableCache bool
}

// NewContentRepository creates a content repository over the two sources.
// With disableCache set, every read goes to a source; used to diagnose
// stale-content reports without redeploying.
func NewContentRepository(primary, fallback ContentDataSource, contentCache *cache.ContentCache, disableCache bool) *ContentRepository {
	cb := circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("sanity"))

	return &ContentRepository{
		primary:      primary,
		fallback:     fallback,
		cache:        contentCache,
		breaker:      cb,
		disableCache: disableCache,
	}
}

// InvalidateTag drops all cached entries for a tag. Called by the webhook
// revalidation flow; safe to call repeatedly.
func (r *ContentRepository) InvalidateTag(tag string) {
	r.cache.InvalidateTag(tag)
}

// resolveList runs the resolution state machine for one listing:
// cache -> primary -> fallback. Exactly one source produces the result.
// Only primary results are cached, so a CMS recovery is picked up on the
// next request instead of after a fallback entry expires.
func resolveList[T any](ctx context.Context, r *ContentRepository, tag string,
	fromPrimary func(context.Context) ([]T, error),
	fromFallback func(context.Context) ([]T, error),
) ([]T, error) {
	if !r.disableCache {
		if data, found := r.cache.Get(tag, "all"); found {
			if items, ok := data.([]T); ok {
				return items, nil
			}
			// Wrong type under this key means the cache was poisoned somehow;
			// drop it and resolve fresh.
			logger.Error("Invalid cache data type", zap.String("tag", tag))
			r.cache.InvalidateTag(tag)
		}
	}

	if !r.primary.Configured() {
		metrics.ContentFallbacks.WithLabelValues(tag, "unconfigured").Inc()
		return fromFallback(ctx)
	}

	items, err := circuitbreaker.Execute(r.breaker, func() ([]T, error) {
		return fromPrimary(ctx)
	})
	if err != nil {
		reason := "fetch_error"
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			reason = "circuit_open"
		}
		metrics.ContentFallbacks.WithLabelValues(tag, reason).Inc()
		logger.Warn("Primary content source failed, serving fallback dataset",
			zap.String("tag", tag),
			zap.Error(err))
		return fromFallback(ctx)
	}

	if !r.disableCache {
		r.cache.Set(tag, "all", items)
	}
	return items, nil
}

// GetPosts returns all blog posts
func (r *ContentRepository) GetPosts(ctx context.Context) ([]*models.Post, error) {
	return resolveList(ctx, r, models.TagPosts, r.primary.GetPosts, r.fallback.GetPosts)
}

// GetPostBySlug returns one blog post, or ErrNotFound
func (r *ContentRepository) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	posts, err := r.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, pkgerrors.NotFoundError("post")
}

// GetCareers returns all job postings
func (r *ContentRepository) GetCareers(ctx context.Context) ([]*models.Career, error) {
	return resolveList(ctx, r, models.TagCareers, r.primary.GetCareers, r.fallback.GetCareers)
}

// GetCareerBySlug returns one job posting, or ErrNotFound
func (r *ContentRepository) GetCareerBySlug(ctx context.Context, slug string) (*models.Career, error) {
	careers, err := r.GetCareers(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range careers {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, pkgerrors.NotFoundError("career")
}

// GetTeamMembers returns the team roster
func (r *ContentRepository) GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	return resolveList(ctx, r, models.TagTeam, r.primary.GetTeamMembers, r.fallback.GetTeamMembers)
}

// GetServices returns the service offerings
func (r *ContentRepository) GetServices(ctx context.Context) ([]*models.Service, error) {
	return resolveList(ctx, r, models.TagServices, r.primary.GetServices, r.fallback.GetServices)
}

// GetTestimonials returns all testimonials
func (r *ContentRepository) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return resolveList(ctx, r, models.TagTestimonials, r.primary.GetTestimonials, r.fallback.GetTestimonials)
}

// GetSuccessStories returns all case studies
func (r *ContentRepository) GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error) {
	return resolveList(ctx, r, models.TagSuccessStories, r.primary.GetSuccessStories, r.fallback.GetSuccessStories)
}

// GetSuccessStoryBySlug returns one case study, or ErrNotFound
func (r *ContentRepository) GetSuccessStoryBySlug(ctx context.Context, slug string) (*models.SuccessStory, error) {
	stories, err := r.GetSuccessStories(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range stories {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, pkgerrors.NotFoundError("success story")
}

// Ensure ContentRepository implements ContentRepositoryInterface
var _ ContentRepositoryInterface = (*ContentRepository)(nil)

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/internal/services"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
)

// ContentHandler serves site content for the Next.js frontend. Listing
// endpoints never return an error status; the resolver falls back to the
// bundled dataset when the CMS is unreachable.
type ContentHandler struct {
	service services.ContentServiceInterface
}

func NewContentHandler(service services.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) GetPosts(c *gin.Context) {
	posts, err := h.service.GetPosts(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch posts", err)
		return
	}
	if category := c.Query("category"); category != "" {
		filtered := make([]*models.Post, 0, len(posts))
		for _, p := range posts {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *ContentHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.service.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Post not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch post", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) GetCareers(c *gin.Context) {
	careers, err := h.service.GetCareers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch careers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"careers": careers})
}

func (h *ContentHandler) GetCareerBySlug(c *gin.Context) {
	career, err := h.service.GetCareerBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Career not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch career", err)
		return
	}
	c.JSON(http.StatusOK, career)
}

func (h *ContentHandler) GetTeamMembers(c *gin.Context) {
	team, err := h.service.GetTeamMembers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch team", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

func (h *ContentHandler) GetServices(c *gin.Context) {
	svcs, err := h.service.GetServices(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": svcs})
}

func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.service.GetTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch testimonials", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (h *ContentHandler) GetSuccessStories(c *gin.Context) {
	stories, err := h.service.GetSuccessStories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch success stories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"successStories": stories})
}

func (h *ContentHandler) GetSuccessStoryBySlug(c *gin.Context) {
	story, err := h.service.GetSuccessStoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Success story not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch success story", err)
		return
	}
	c.JSON(http.StatusOK, story)
}

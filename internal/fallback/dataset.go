package fallback

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/pixelforge/pixelforge-api/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// Dataset is the bundled content snapshot served when the CMS is unreachable
// or unconfigured. It is an independently-owned static copy: it is never
// merged with CMS data, the resolver picks exactly one source per request.
type Dataset struct {
	Posts          []*models.Post
	Careers        []*models.Career
	TeamMembers    []*models.TeamMember
	Services       []*models.Service
	Testimonials   []*models.Testimonial
	SuccessStories []*models.SuccessStory
}

// Load parses the embedded dataset. Called once at startup; an error here is
// a build defect, not a runtime condition.
func Load() (*Dataset, error) {
	ds := &Dataset{}

	files := []struct {
		name string
		dest interface{}
	}{
		{"data/posts.json", &ds.Posts},
		{"data/careers.json", &ds.Careers},
		{"data/team.json", &ds.TeamMembers},
		{"data/services.json", &ds.Services},
		{"data/testimonials.json", &ds.Testimonials},
		{"data/success_stories.json", &ds.SuccessStories},
	}

	for _, f := range files {
		raw, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded dataset %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dest); err != nil {
			return nil, fmt.Errorf("failed to parse embedded dataset %s: %w", f.name, err)
		}
	}

	return ds, nil
}

// PostBySlug returns the fallback post with the given slug, or nil
func (d *Dataset) PostBySlug(slug string) *models.Post {
	for _, p := range d.Posts {
		if p.Slug == slug {
			return p
		}
	}
	return nil
}

// CareerBySlug returns the fallback career with the given slug, or nil
func (d *Dataset) CareerBySlug(slug string) *models.Career {
	for _, c := range d.Careers {
		if c.Slug == slug {
			return c
		}
	}
	return nil
}

// SuccessStoryBySlug returns the fallback case study with the given slug, or nil
func (d *Dataset) SuccessStoryBySlug(slug string) *models.SuccessStory {
	for _, s := range d.SuccessStories {
		if s.Slug == slug {
			return s
		}
	}
	return nil
}

package services

import (
	"sort"

	"github.com/pixelforge/pixelforge-api/internal/models"
)

// revalidationRules maps a CMS document type to the cache tags it
// invalidates and, for types with routed detail pages, the frontend path
// prefix to revalidate. Types absent from this table are acknowledged but
// not acted on.
var revalidationRules = map[string]models.RevalidationRule{
	models.TypePost: {
		Tags:       []string{models.TagPosts},
		PathPrefix: "/blog",
	},
	models.TypeCareer: {
		Tags:       []string{models.TagCareers},
		PathPrefix: "/career",
	},
	models.TypeTeamMember: {
		Tags: []string{models.TagTeam},
	},
	models.TypeService: {
		Tags: []string{models.TagServices},
	},
	models.TypeTestimonial: {
		Tags: []string{models.TagTestimonials},
	},
	models.TypeSuccessStory: {
		Tags:       []string{models.TagSuccessStories},
		PathPrefix: "/success-stories",
	},
}

// RuleForType looks up the revalidation rule for a document type
func RuleForType(docType string) (models.RevalidationRule, bool) {
	rule, ok := revalidationRules[docType]
	return rule, ok
}

// SupportedDocumentTypes returns the document types with a configured rule,
// sorted for stable output.
func SupportedDocumentTypes() []string {
	types := make([]string, 0, len(revalidationRules))
	for t := range revalidationRules {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

package models

import "time"

// Content type discriminators as emitted by the CMS.
const (
	TypePost         = "post"
	TypeCareer       = "career"
	TypeTeamMember   = "teamMember"
	TypeService      = "service"
	TypeTestimonial  = "testimonial"
	TypeSuccessStory = "successStory"
)

// Cache tags, the unit of invalidation for each content type.
const (
	TagPosts          = "posts"
	TagCareers        = "careers"
	TagTeam           = "team"
	TagServices       = "services"
	TagTestimonials   = "testimonials"
	TagSuccessStories = "success-stories"
)

// Post represents a blog post
type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	MainImage   string    `json:"mainImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Career represents an open position in the careers section
type Career struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Location     string    `json:"location,omitempty"`
	Type         string    `json:"type,omitempty"` // full-time, part-time, contract
	Department   string    `json:"department,omitempty"`
	Description  string    `json:"description,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	Active       bool      `json:"active"`
	PostedAt     time.Time `json:"postedAt"`
}

// TeamMember represents a person on the about/team page
type TeamMember struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Photo string `json:"photo,omitempty"`
	Order int    `json:"order,omitempty"`
}

// Service represents a service offering shown on the marketing site
type Service struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order,omitempty"`
}

// Testimonial represents a client quote
type Testimonial struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
	Quote   string `json:"quote"`
	Rating  int    `json:"rating,omitempty"`
}

// SuccessStory represents a published case study
type SuccessStory struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Client      string    `json:"client,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Body        string    `json:"body,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

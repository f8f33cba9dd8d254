package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/pkg/httpclient"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"go.uber.org/zap"
)

const defaultAPIVersion = "2023-08-01"

// Client queries the Sanity Content Lake over its GROQ HTTP API.
// A nil or unconfigured client is valid: IsConfigured reports false and the
// content repository falls back to the bundled dataset without network I/O.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	httpClient httpclient.Client
}

// NewClient creates a new Sanity client. Returns an unconfigured client when
// projectID or dataset are empty; callers must check IsConfigured.
func NewClient(projectID, dataset, apiVersion, token string, httpClient httpclient.Client) *Client {
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	c := &Client{
		projectID:  projectID,
		dataset:    dataset,
		apiVersion: apiVersion,
		token:      token,
		httpClient: httpClient,
	}

	if c.IsConfigured() {
		logger.Info("Sanity client initialized",
			zap.String("project_id", projectID),
			zap.String("dataset", dataset),
			zap.String("api_version", apiVersion))
	} else {
		logger.Warn("Sanity client not configured, content will be served from the fallback dataset")
	}

	return c
}

// IsConfigured reports whether the client has the identifiers required to
// reach the Content Lake.
func (c *Client) IsConfigured() bool {
	return c != nil && c.projectID != "" && c.dataset != ""
}

// queryResponse is the envelope returned by the GROQ query endpoint
type queryResponse struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

// query executes a GROQ query and decodes the result into out.
// A single attempt per call: resolution-level fallback handles failures, so
// retrying here would only delay the page render.
func (c *Client) query(ctx context.Context, operation, groq string, out interface{}) error {
	if !c.IsConfigured() {
		return fmt.Errorf("sanity client not configured")
	}

	start := time.Now()

	endpoint := fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s?query=%s",
		c.projectID, c.apiVersion, c.dataset, url.QueryEscape(groq))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build sanity query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	duration := metrics.MeasureDuration(start)
	if err != nil {
		c.recordFailure(operation, duration, err)
		return fmt.Errorf("sanity query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded chunk of the body for the log only
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("sanity query returned status %d", resp.StatusCode)
		c.recordFailure(operation, duration, err)
		logger.Warn("Sanity query rejected",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return err
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.recordFailure(operation, duration, err)
		return fmt.Errorf("failed to decode sanity response: %w", err)
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		c.recordFailure(operation, duration, err)
		return fmt.Errorf("failed to decode sanity result: %w", err)
	}

	metrics.SanityRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.SanityRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("sanity", operation, "success", duration)

	return nil
}

func (c *Client) recordFailure(operation string, duration float64, err error) {
	metrics.SanityRequestDuration.WithLabelValues(operation, "error").Observe(duration)
	metrics.SanityRequestTotal.WithLabelValues(operation, "error").Inc()
	logger.LogAPICall("sanity", operation, "error", duration, zap.Error(err))
}

// GetPosts fetches all published blog posts, newest first
func (c *Client) GetPosts(ctx context.Context) ([]*models.Post, error) {
	groq := `*[_type == "post" && defined(slug.current)] | order(publishedAt desc) {
		"id": _id, "slug": slug.current, title, excerpt, body,
		"author": author->name, "category": category->title,
		"tags": tags[]->title, "mainImage": mainImage.asset->url, publishedAt
	}`

	var posts []*models.Post
	if err := c.query(ctx, "getPosts", groq, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetCareers fetches all active job postings, newest first
func (c *Client) GetCareers(ctx context.Context) ([]*models.Career, error) {
	groq := `*[_type == "career" && defined(slug.current)] | order(postedAt desc) {
		"id": _id, "slug": slug.current, title, location, type, department,
		description, requirements, active, postedAt
	}`

	var careers []*models.Career
	if err := c.query(ctx, "getCareers", groq, &careers); err != nil {
		return nil, err
	}
	return careers, nil
}

// GetTeamMembers fetches the team roster in display order
func (c *Client) GetTeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	groq := `*[_type == "teamMember"] | order(order asc) {
		"id": _id, "slug": slug.current, name, role, bio,
		"photo": photo.asset->url, order
	}`

	var team []*models.TeamMember
	if err := c.query(ctx, "getTeamMembers", groq, &team); err != nil {
		return nil, err
	}
	return team, nil
}

// GetServices fetches the service offerings in display order
func (c *Client) GetServices(ctx context.Context) ([]*models.Service, error) {
	groq := `*[_type == "service"] | order(order asc) {
		"id": _id, "slug": slug.current, title, description, icon, order
	}`

	var services []*models.Service
	if err := c.query(ctx, "getServices", groq, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetTestimonials fetches all client testimonials
func (c *Client) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	groq := `*[_type == "testimonial"] {
		"id": _id, author, company, role, quote, rating
	}`

	var testimonials []*models.Testimonial
	if err := c.query(ctx, "getTestimonials", groq, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// GetSuccessStories fetches all published case studies, newest first
func (c *Client) GetSuccessStories(ctx context.Context) ([]*models.SuccessStory, error) {
	groq := `*[_type == "successStory" && defined(slug.current)] | order(publishedAt desc) {
		"id": _id, "slug": slug.current, title, client, summary, body, publishedAt
	}`

	var stories []*models.SuccessStory
	if err := c.query(ctx, "getSuccessStories", groq, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pixelforge/pixelforge-api/internal/models"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"go.uber.org/zap"
)

// CreateJobApplication persists a job application and returns its ID
func (c *Client) CreateJobApplication(ctx context.Context, rec *models.JobApplicationRecord) (int64, error) {
	start := time.Now()
	operation := "createJobApplication"

	query := `
		INSERT INTO job_applications (career_slug, name, email, phone, cover_letter, resume_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := c.pool.QueryRow(ctx, query,
		rec.CareerSlug, rec.Name, rec.Email, rec.Phone, rec.CoverLetter, rec.ResumeURL,
	).Scan(&id)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to insert job application: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.Info("Job application stored",
		zap.Int64("id", id),
		zap.String("career_slug", rec.CareerSlug))

	return id, nil
}

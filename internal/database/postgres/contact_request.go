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

// CreateContactRequest persists a contact form submission and returns its ID
func (c *Client) CreateContactRequest(ctx context.Context, rec *models.ContactRecord) (int64, error) {
	start := time.Now()
	operation := "createContactRequest"

	query := `
		INSERT INTO contact_requests (name, email, company, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := c.pool.QueryRow(ctx, query,
		rec.Name, rec.Email, rec.Company, rec.Phone, rec.Message,
	).Scan(&id)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to insert contact request: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.Info("Contact request stored",
		zap.Int64("id", id),
		zap.String("email", rec.Email))

	return id, nil
}

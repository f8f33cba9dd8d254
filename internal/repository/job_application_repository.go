package repository

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/database/postgres"
	"github.com/pixelforge/pixelforge-api/internal/models"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
)

// JobApplicationRepository handles job application persistence
type JobApplicationRepository struct {
	client *postgres.Client
}

// NewJobApplicationRepository creates a new job application repository
func NewJobApplicationRepository(client *postgres.Client) *JobApplicationRepository {
	return &JobApplicationRepository{client: client}
}

// Create persists a job application and returns its ID
func (r *JobApplicationRepository) Create(ctx context.Context, rec *models.JobApplicationRecord) (int64, error) {
	if r.client == nil {
		return 0, pkgerrors.InternalError("database unavailable")
	}
	return r.client.CreateJobApplication(ctx, rec)
}

// Ensure JobApplicationRepository implements JobApplicationStore
var _ JobApplicationStore = (*JobApplicationRepository)(nil)

package repository

import (
	"context"

	"github.com/pixelforge/pixelforge-api/internal/database/postgres"
	"github.com/pixelforge/pixelforge-api/internal/models"
	pkgerrors "github.com/pixelforge/pixelforge-api/pkg/errors"
)

// ContactRequestRepository handles contact request persistence
type ContactRequestRepository struct {
	client *postgres.Client
}

// NewContactRequestRepository creates a new contact request repository
func NewContactRequestRepository(client *postgres.Client) *ContactRequestRepository {
	return &ContactRequestRepository{client: client}
}

// Create persists a contact request and returns its ID
func (r *ContactRequestRepository) Create(ctx context.Context, rec *models.ContactRecord) (int64, error) {
	if r.client == nil {
		return 0, pkgerrors.InternalError("database unavailable")
	}
	return r.client.CreateContactRequest(ctx, rec)
}

// Ensure ContactRequestRepository implements ContactRequestStore
var _ ContactRequestStore = (*ContactRequestRepository)(nil)

package store

import (
	"context"

	"promohub/internal/talent/models"
)

// Stores are interface-driven to keep the domain logic testable and to allow
// swapping in-memory and Postgres persistence without rewiring business code.
// Implementations return pkg/platform/sentinel errors for infrastructure
// facts (ErrNotFound, ErrConflict); services translate them.

// TalentStore persists talent profiles.
type TalentStore interface {
	// Create assigns t.ID and persists the profile. Returns ErrConflict when
	// the unique id is already taken.
	Create(ctx context.Context, t *models.Talent) error
	List(ctx context.Context) ([]models.Talent, error)
	FindByID(ctx context.Context, id int64) (*models.Talent, error)
	UpdateStatus(ctx context.Context, id int64, status models.TalentStatus) error
	// Delete removes the talent. Owned documents cascade.
	Delete(ctx context.Context, id int64) error
}

// DocumentStore persists documents owned by talents.
type DocumentStore interface {
	Create(ctx context.Context, d *models.Document) error
	ListByTalent(ctx context.Context, talentID int64) ([]models.Document, error)
	DeleteByTalent(ctx context.Context, talentID int64) error
}

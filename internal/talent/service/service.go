package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"promohub/internal/talent/metrics"
	"promohub/internal/talent/models"
	"promohub/internal/talent/query"
	"promohub/internal/talent/store"
	"promohub/pkg/domainerrors"
	"promohub/pkg/platform/audit"
	"promohub/pkg/platform/sentinel"
)

// ListParams carries everything the admin listing accepts: free-text
// search, the active filter set, sort column and direction, and the
// 1-indexed page.
type ListParams struct {
	Search  string
	Filters query.Filters
	SortBy  query.SortField
	Dir     query.Direction
	Page    int
}

// Service implements the admin-facing talent operations. Filtering,
// search, sorting and pagination all run here against the full profile
// set; clients never see data the server has not already narrowed.
type Service struct {
	talents   store.TalentStore
	documents store.DocumentStore
	pageSize  int
	logger    *slog.Logger
	metrics   *metrics.Metrics
	auditor   *audit.Publisher
	now       func() time.Time
}

func New(talents store.TalentStore, documents store.DocumentStore, pageSize int, logger *slog.Logger, m *metrics.Metrics, auditor *audit.Publisher) *Service {
	return &Service{
		talents:   talents,
		documents: documents,
		pageSize:  pageSize,
		logger:    logger,
		metrics:   m,
		auditor:   auditor,
		now:       time.Now,
	}
}

// List returns one page of the filtered, sorted talent listing.
func (s *Service) List(ctx context.Context, p ListParams) (query.Page, error) {
	start := time.Now()

	talents, err := s.talents.List(ctx)
	if err != nil {
		return query.Page{}, fmt.Errorf("list talents: %w", err)
	}

	matched := query.Apply(talents, p.Search, p.Filters, s.now())
	page := query.SortAndPage(matched, p.SortBy, p.Dir, p.Page, s.pageSize)

	s.metrics.ObserveListing(float64(time.Since(start).Microseconds()) / 1000.0)
	return page, nil
}

// Get returns a single talent profile by database id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Talent, error) {
	t, err := s.talents.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, domainerrors.New(domainerrors.CodeNotFound, "talent not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find talent %d: %w", id, err)
	}
	return t, nil
}

// Documents returns the talent's uploaded documents.
func (s *Service) Documents(ctx context.Context, id int64) ([]models.Document, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	docs, err := s.documents.ListByTalent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list documents for talent %d: %w", id, err)
	}
	return docs, nil
}

// UpdateStatus moves a talent to the given review status and returns the
// updated profile.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status models.TalentStatus, actor, requestID string) (*models.Talent, error) {
	if !status.Valid() {
		return nil, domainerrors.NewValidation(map[string]string{
			"status": "must be one of pending, active, rejected",
		})
	}

	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.talents.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, domainerrors.New(domainerrors.CodeNotFound, "talent not found")
		}
		return nil, fmt.Errorf("update status for talent %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "talent status changed",
		"unique_id", t.UniqueID,
		"from", t.Status,
		"to", status,
		"actor", actor,
		"request_id", requestID,
	)
	s.metrics.IncrementStatusChange(string(status))
	s.auditor.Emit(ctx, audit.Event{
		Action:    audit.ActionTalentStatusChanged,
		Subject:   t.UniqueID,
		Actor:     actor,
		Reason:    string(t.Status) + " -> " + string(status),
		RequestID: requestID,
	})

	t.Status = status
	return t, nil
}

// Delete removes a talent profile and everything it owns.
func (s *Service) Delete(ctx context.Context, id int64, actor, requestID string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	// The talent row goes first: if that fails, nothing has changed.
	// Postgres then cascades documents through the FK; the memory store
	// needs the explicit sweep.
	if err := s.talents.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domainerrors.New(domainerrors.CodeNotFound, "talent not found")
		}
		return fmt.Errorf("delete talent %d: %w", id, err)
	}
	if err := s.documents.DeleteByTalent(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "document cleanup failed", "talent_id", id, "error", err)
	}

	s.logger.InfoContext(ctx, "talent deleted",
		"unique_id", t.UniqueID,
		"actor", actor,
		"request_id", requestID,
	)
	s.metrics.IncrementDeleted()
	s.auditor.Emit(ctx, audit.Event{
		Action:    audit.ActionTalentDeleted,
		Subject:   t.UniqueID,
		Actor:     actor,
		RequestID: requestID,
	})
	return nil
}

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"promohub/internal/notification"
	"promohub/internal/registration/draft"
	"promohub/internal/registration/metrics"
	"promohub/internal/registration/session"
	"promohub/internal/registration/wizard"
	"promohub/internal/talent/models"
	"promohub/internal/talent/store"
	"promohub/pkg/domainerrors"
	"promohub/pkg/platform/audit"
	"promohub/pkg/platform/sentinel"
	txcontext "promohub/pkg/platform/tx"
)

// State is the wizard view returned to the client after every operation:
// which step the session is on and everything accepted so far, so the
// front end can re-render without tracking state of its own.
type State struct {
	SessionID string           `json:"sessionId"`
	Step      string           `json:"step"`
	Submitted bool             `json:"submitted"`
	UniqueID  string           `json:"uniqueId,omitempty"`
	Data      wizard.Aggregate `json:"data"`
}

// Service drives registration wizard sessions end to end: step
// transitions, draft persistence, and the one-shot finalize that turns an
// aggregate into a persisted talent profile.
type Service struct {
	sessions  *session.Registry
	drafts    draft.Store
	talents   store.TalentStore
	documents store.DocumentStore
	// db is non-nil only with Postgres persistence; finalize then writes
	// talent and documents in one transaction.
	db       *sql.DB
	notifier *notification.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	auditor  *audit.Publisher

	now       func() time.Time
	randDigit func() int
	// notifyAsync is swapped out in tests to make delivery synchronous.
	notifyAsync func(func())
}

func New(
	sessions *session.Registry,
	drafts draft.Store,
	talents store.TalentStore,
	documents store.DocumentStore,
	db *sql.DB,
	notifier *notification.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
	auditor *audit.Publisher,
) *Service {
	return &Service{
		sessions:    sessions,
		drafts:      drafts,
		talents:     talents,
		documents:   documents,
		db:          db,
		notifier:    notifier,
		logger:      logger,
		metrics:     m,
		auditor:     auditor,
		now:         time.Now,
		randDigit:   func() int { return rand.IntN(10000) },
		notifyAsync: func(fn func()) { go fn() },
	}
}

// Start opens a new wizard session.
func (s *Service) Start(ctx context.Context) State {
	sess := s.sessions.Create()
	s.metrics.IncrementSessionStarted()
	s.logger.InfoContext(ctx, "registration session started", "session_id", sess.ID)

	var st State
	_ = sess.Do(func(w *wizard.Wizard) error {
		st = stateOf(sess.ID, w)
		return nil
	})
	return st
}

// State returns the current wizard state for a session.
func (s *Service) State(_ context.Context, sessionID string) (State, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return State{}, err
	}
	var st State
	_ = sess.Do(func(w *wizard.Wizard) error {
		st = stateOf(sess.ID, w)
		return nil
	})
	return st, nil
}

// SubmitPersonalInfo submits step 1 for the session.
func (s *Service) SubmitPersonalInfo(ctx context.Context, sessionID string, p wizard.PersonalInfo) (State, error) {
	return s.submitStep(ctx, sessionID, wizard.StepPersonalInfo, func(w *wizard.Wizard) error {
		return w.SubmitPersonalInfo(p)
	})
}

// SubmitProfessionalDetails submits step 2 for the session.
func (s *Service) SubmitProfessionalDetails(ctx context.Context, sessionID string, p wizard.ProfessionalDetails) (State, error) {
	return s.submitStep(ctx, sessionID, wizard.StepProfessionalDetails, func(w *wizard.Wizard) error {
		return w.SubmitProfessionalDetails(p)
	})
}

// SubmitDocuments submits step 3 for the session.
func (s *Service) SubmitDocuments(ctx context.Context, sessionID string, uploads []wizard.DocumentUpload) (State, error) {
	return s.submitStep(ctx, sessionID, wizard.StepDocuments, func(w *wizard.Wizard) error {
		return w.SubmitDocuments(uploads)
	})
}

func (s *Service) submitStep(ctx context.Context, sessionID string, step wizard.Step, apply func(*wizard.Wizard) error) (State, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return State{}, err
	}

	var st State
	err = sess.Do(func(w *wizard.Wizard) error {
		if err := apply(w); err != nil {
			s.metrics.IncrementStepSubmission(step.Key(), "rejected")
			return err
		}
		s.metrics.IncrementStepSubmission(step.Key(), "accepted")
		st = stateOf(sess.ID, w)
		return nil
	})
	if err != nil {
		return State{}, err
	}
	s.logger.InfoContext(ctx, "wizard step accepted", "session_id", sessionID, "step", step.Key())
	return st, nil
}

// Back moves the session one step backwards, keeping all entered data.
func (s *Service) Back(_ context.Context, sessionID string) (State, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return State{}, err
	}
	var st State
	err = sess.Do(func(w *wizard.Wizard) error {
		if err := w.Back(); err != nil {
			return err
		}
		st = stateOf(sess.ID, w)
		return nil
	})
	if err != nil {
		return State{}, err
	}
	return st, nil
}

// SaveDraft snapshots raw form data for one step. It never touches the
// live wizard state: an unsubmitted draft must not leak into the
// aggregate.
func (s *Service) SaveDraft(ctx context.Context, sessionID, stepKey string, data json.RawMessage) error {
	if !validStepKey(stepKey) {
		return domainerrors.New(domainerrors.CodeBadRequest, "unknown step")
	}
	if _, err := s.session(sessionID); err != nil {
		return err
	}
	if err := s.drafts.Save(ctx, sessionID, stepKey, data); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	s.metrics.IncrementDraftSaved()
	return nil
}

// LoadDraft returns the saved draft for one step, or CodeNotFound.
func (s *Service) LoadDraft(ctx context.Context, sessionID, stepKey string) (json.RawMessage, error) {
	if !validStepKey(stepKey) {
		return nil, domainerrors.New(domainerrors.CodeBadRequest, "unknown step")
	}
	if _, err := s.session(sessionID); err != nil {
		return nil, err
	}
	data, err := s.drafts.Load(ctx, sessionID, stepKey)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, domainerrors.New(domainerrors.CodeNotFound, "no draft saved for this step")
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return data, nil
}

// Submit finalizes the registration: assigns the unique id, persists the
// talent and its documents, clears drafts, and fans out notifications.
// Failure leaves the wizard at the review step with data intact so the
// user can retry.
func (s *Service) Submit(ctx context.Context, sessionID string) (State, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return State{}, err
	}

	start := time.Now()
	var st State
	err = sess.Do(func(w *wizard.Wizard) error {
		if err := w.BeginSubmit(); err != nil {
			return err
		}

		talent, err := s.persist(ctx, w.Aggregate())
		if err != nil {
			w.FailSubmit()
			s.metrics.ObserveSubmission("failed", float64(time.Since(start).Microseconds())/1000.0)
			s.logger.ErrorContext(ctx, "registration finalize failed",
				"session_id", sessionID,
				"error", err,
			)
			return err
		}

		w.CompleteSubmit(talent.UniqueID)
		st = stateOf(sess.ID, w)

		if err := s.drafts.Clear(ctx, sessionID, draftStepKeys()...); err != nil {
			// The registration is already durable; a leftover draft only
			// lingers until its TTL.
			s.logger.WarnContext(ctx, "draft cleanup failed", "session_id", sessionID, "error", err)
		}

		s.metrics.ObserveSubmission("completed", float64(time.Since(start).Microseconds())/1000.0)
		s.logger.InfoContext(ctx, "registration completed",
			"session_id", sessionID,
			"unique_id", talent.UniqueID,
		)
		s.notifyAsync(func() {
			s.notifier.RegistrationCompleted(context.WithoutCancel(ctx), *talent)
		})
		return nil
	})
	if err != nil {
		return State{}, err
	}
	// The wizard is finished; the registration record is the source of
	// truth from here on.
	s.sessions.Delete(sessionID)
	return st, nil
}

// persist writes the talent, its documents, and the registration audit
// event, atomically when a database handle is available.
func (s *Service) persist(ctx context.Context, agg wizard.Aggregate) (*models.Talent, error) {
	talent := talentFrom(agg, s.newUniqueID(), s.now())
	registered := audit.Event{
		Action:  audit.ActionTalentRegistered,
		Subject: talent.UniqueID,
	}

	if s.db == nil {
		if err := s.writeAll(ctx, talent, agg.Documents); err != nil {
			return nil, err
		}
		s.auditor.Emit(ctx, registered)
		return talent, nil
	}

	dbtx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin finalize tx: %w", err)
	}
	txCtx := txcontext.WithTx(ctx, dbtx)
	if err := s.writeAll(txCtx, talent, agg.Documents); err != nil {
		_ = dbtx.Rollback()
		return nil, err
	}
	// The audit row joins the same transaction as the talent insert.
	s.auditor.Emit(txCtx, registered)
	if err := dbtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit finalize tx: %w", err)
	}
	return talent, nil
}

func (s *Service) writeAll(ctx context.Context, talent *models.Talent, uploads []wizard.DocumentUpload) error {
	if err := s.talents.Create(ctx, talent); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return domainerrors.New(domainerrors.CodeConflict, "registration number collision, please retry")
		}
		return fmt.Errorf("create talent: %w", err)
	}
	for _, up := range uploads {
		doc := &models.Document{
			ID:         uuid.NewString(),
			TalentID:   talent.ID,
			Type:       up.Type,
			FileName:   up.FileName,
			FileData:   up.FileData,
			MimeType:   up.MimeType,
			ExpiryDate: up.ExpiryDate,
			CreatedAt:  talent.CreatedAt,
		}
		if err := s.documents.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document %s: %w", up.FileName, err)
		}
	}
	return nil
}

// newUniqueID builds the public registration number: PRO-<year>-<4 digits>.
// The id is generated exactly once per successful registration and never
// regenerated; a collision surfaces as a retryable conflict instead.
func (s *Service) newUniqueID() string {
	return fmt.Sprintf("PRO-%d-%04d", s.now().Year(), s.randDigit())
}

func (s *Service) session(sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, domainerrors.New(domainerrors.CodeNotFound, "session not found or expired")
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func talentFrom(agg wizard.Aggregate, uniqueID string, now time.Time) *models.Talent {
	return &models.Talent{
		UniqueID:    uniqueID,
		FirstName:   agg.Personal.FirstName,
		LastName:    agg.Personal.LastName,
		Email:       agg.Personal.Email,
		DateOfBirth: agg.Personal.DateOfBirth,
		Gender:      agg.Personal.Gender,
		Mobile:      agg.Personal.Mobile,
		Nationality: agg.Personal.Nationality,
		Area:        agg.Personal.Area,
		Height:      agg.Personal.Height,
		TShirtSize:  agg.Personal.TShirtSize,
		ShirtSize:   agg.Personal.ShirtSize,

		YearsExperience:        agg.Professional.YearsExperience,
		TalentType:             agg.Professional.TalentType,
		ArtistPerformerDetails: agg.Professional.ArtistPerformerDetails,
		PreviousExperience:     agg.Professional.PreviousExperience,
		BrandsWorkedFor:        agg.Professional.BrandsWorkedFor,

		Status:    models.StatusPending,
		CreatedAt: now,
	}
}

func stateOf(sessionID string, w *wizard.Wizard) State {
	uniqueID, submitted := w.Submitted()
	return State{
		SessionID: sessionID,
		Step:      w.Step().Key(),
		Submitted: submitted,
		UniqueID:  uniqueID,
		Data:      w.Aggregate(),
	}
}

// draftStepKeys lists the steps that carry a form. Review has nothing to
// draft.
func draftStepKeys() []string {
	return []string{
		wizard.StepPersonalInfo.Key(),
		wizard.StepProfessionalDetails.Key(),
		wizard.StepDocuments.Key(),
	}
}

func validStepKey(key string) bool {
	for _, k := range draftStepKeys() {
		if k == key {
			return true
		}
	}
	return false
}

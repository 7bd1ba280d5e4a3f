package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"promohub/internal/talent/models"
	"promohub/pkg/platform/sentinel"
	txcontext "promohub/pkg/platform/tx"
)

// TalentStore implements store.TalentStore on Postgres. The unique id carries
// a UNIQUE constraint; violations surface as sentinel.ErrConflict.
type TalentStore struct {
	db *sql.DB
}

func NewTalentStore(db *sql.DB) *TalentStore {
	return &TalentStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *TalentStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const talentColumns = `id, unique_id, first_name, last_name, email, date_of_birth,
	gender, mobile, nationality, area, height, tshirt_size, shirt_size,
	years_experience, talent_type, artist_performer_details,
	previous_experience, brands_worked_for, status, created_at`

func (s *TalentStore) Create(ctx context.Context, t *models.Talent) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO talents
			(unique_id, first_name, last_name, email, date_of_birth, gender,
			 mobile, nationality, area, height, tshirt_size, shirt_size,
			 years_experience, talent_type, artist_performer_details,
			 previous_experience, brands_worked_for, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		RETURNING id
	`, t.UniqueID, t.FirstName, t.LastName, t.Email, t.DateOfBirth, t.Gender,
		t.Mobile, t.Nationality, t.Area, t.Height, t.TShirtSize, t.ShirtSize,
		t.YearsExperience, t.TalentType, t.ArtistPerformerDetails,
		t.PreviousExperience, t.BrandsWorkedFor, t.Status, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("unique id %s: %w", t.UniqueID, sentinel.ErrConflict)
		}
		return fmt.Errorf("insert talent: %w", err)
	}
	return nil
}

func (s *TalentStore) List(ctx context.Context) ([]models.Talent, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+talentColumns+`
		FROM talents
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list talents: %w", err)
	}
	defer rows.Close()

	var talents []models.Talent
	for rows.Next() {
		var t models.Talent
		if err := scanTalent(rows, &t); err != nil {
			return nil, err
		}
		talents = append(talents, t)
	}
	return talents, rows.Err()
}

func (s *TalentStore) FindByID(ctx context.Context, id int64) (*models.Talent, error) {
	var t models.Talent
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT `+talentColumns+`
		FROM talents
		WHERE id = $1
	`, id)
	if err := scanTalent(row, &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *TalentStore) UpdateStatus(ctx context.Context, id int64, status models.TalentStatus) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE talents SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update talent status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *TalentStore) Delete(ctx context.Context, id int64) error {
	// Documents cascade via the documents.talent_id foreign key.
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM talents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete talent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTalent(row rowScanner, t *models.Talent) error {
	return row.Scan(
		&t.ID, &t.UniqueID, &t.FirstName, &t.LastName, &t.Email, &t.DateOfBirth,
		&t.Gender, &t.Mobile, &t.Nationality, &t.Area, &t.Height, &t.TShirtSize,
		&t.ShirtSize, &t.YearsExperience, &t.TalentType,
		&t.ArtistPerformerDetails, &t.PreviousExperience, &t.BrandsWorkedFor,
		&t.Status, &t.CreatedAt,
	)
}

// DocumentStore implements store.DocumentStore on Postgres.
type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *DocumentStore) Create(ctx context.Context, d *models.Document) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO documents
			(id, talent_id, type, file_name, file_data, mime_type, expiry_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, d.ID, d.TalentID, d.Type, d.FileName, d.FileData, d.MimeType,
		nullable(d.ExpiryDate), d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *DocumentStore) ListByTalent(ctx context.Context, talentID int64) ([]models.Document, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, talent_id, type, file_name, file_data, mime_type, expiry_date, created_at
		FROM documents
		WHERE talent_id = $1
		ORDER BY created_at, id
	`, talentID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		var expiry sql.NullString
		if err := rows.Scan(&d.ID, &d.TalentID, &d.Type, &d.FileName,
			&d.FileData, &d.MimeType, &expiry, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.ExpiryDate = expiry.String
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *DocumentStore) DeleteByTalent(ctx context.Context, talentID int64) error {
	_, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM documents WHERE talent_id = $1`, talentID)
	if err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

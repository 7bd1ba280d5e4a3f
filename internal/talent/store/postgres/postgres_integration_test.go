//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"promohub/internal/talent/models"
	"promohub/pkg/platform/sentinel"
	"promohub/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg        *containers.PostgresContainer
	talents   *TalentStore
	documents *DocumentStore
	ctx       context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.Require().NoError(EnsureSchema(s.ctx, s.pg.DB))
	s.talents = NewTalentStore(s.pg.DB)
	s.documents = NewDocumentStore(s.pg.DB)
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.pg != nil {
		_ = s.pg.DB.Close()
		_ = s.pg.Container.Terminate(s.ctx)
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(s.ctx, "documents", "talents"))
}

func (s *PostgresStoreSuite) sample(uniqueID string) *models.Talent {
	return &models.Talent{
		UniqueID:    uniqueID,
		FirstName:   "Amira",
		LastName:    "Hassan",
		Email:       "amira@example.com",
		DateOfBirth: "2000-06-15",
		Gender:      models.GenderFemale,
		Mobile:      "+971501234567",
		Nationality: "eg",
		Area:        "dubai",
		Height:      170,
		TShirtSize:  "m",
		ShirtSize:   "m",

		YearsExperience: 3,
		TalentType:      models.TypePromoter,

		Status: models.StatusPending,
	}
}

func (s *PostgresStoreSuite) TestCreateAssignsIDAndRoundTrips() {
	t := s.sample("PRO-2026-0001")
	s.Require().NoError(s.talents.Create(s.ctx, t))
	s.NotZero(t.ID)

	got, err := s.talents.FindByID(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Equal("PRO-2026-0001", got.UniqueID)
	s.Equal("Amira", got.FirstName)
	s.Equal(170, got.Height)
	s.Equal(models.StatusPending, got.Status)
	s.False(got.CreatedAt.IsZero())
}

func (s *PostgresStoreSuite) TestCreateDuplicateUniqueID() {
	s.Require().NoError(s.talents.Create(s.ctx, s.sample("PRO-2026-0001")))

	err := s.talents.Create(s.ctx, s.sample("PRO-2026-0001"))
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestListOrderedByID() {
	s.Require().NoError(s.talents.Create(s.ctx, s.sample("PRO-2026-0001")))
	s.Require().NoError(s.talents.Create(s.ctx, s.sample("PRO-2026-0002")))

	all, err := s.talents.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Less(all[0].ID, all[1].ID)
}

func (s *PostgresStoreSuite) TestUpdateStatus() {
	t := s.sample("PRO-2026-0001")
	s.Require().NoError(s.talents.Create(s.ctx, t))

	s.Require().NoError(s.talents.UpdateStatus(s.ctx, t.ID, models.StatusActive))

	got, err := s.talents.FindByID(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusActive, got.Status)

	s.ErrorIs(s.talents.UpdateStatus(s.ctx, 99999, models.StatusActive), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeleteCascadesDocuments() {
	t := s.sample("PRO-2026-0001")
	s.Require().NoError(s.talents.Create(s.ctx, t))
	s.Require().NoError(s.documents.Create(s.ctx, &models.Document{
		ID:       "doc-1",
		TalentID: t.ID,
		Type:     models.DocPassport,
		FileName: "passport.pdf",
		FileData: "cGFzcw==",
		MimeType: "application/pdf",
	}))

	s.Require().NoError(s.talents.Delete(s.ctx, t.ID))

	_, err := s.talents.FindByID(s.ctx, t.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	docs, err := s.documents.ListByTalent(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Empty(docs)

	s.ErrorIs(s.talents.Delete(s.ctx, t.ID), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDocumentsRoundTrip() {
	t := s.sample("PRO-2026-0001")
	s.Require().NoError(s.talents.Create(s.ctx, t))

	s.Require().NoError(s.documents.Create(s.ctx, &models.Document{
		ID:         "doc-1",
		TalentID:   t.ID,
		Type:       models.DocVisa,
		FileName:   "visa.pdf",
		FileData:   "dmlzYQ==",
		MimeType:   "application/pdf",
		ExpiryDate: "2027-01-31",
	}))
	s.Require().NoError(s.documents.Create(s.ctx, &models.Document{
		ID:       "doc-2",
		TalentID: t.ID,
		Type:     models.DocPhoto,
		FileName: "photo.jpg",
		FileData: "cGhvdG8=",
		MimeType: "image/jpeg",
	}))

	docs, err := s.documents.ListByTalent(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Require().Len(docs, 2)

	byID := map[string]models.Document{}
	for _, d := range docs {
		byID[d.ID] = d
	}
	s.Equal("2027-01-31", byID["doc-1"].ExpiryDate)
	s.Empty(byID["doc-2"].ExpiryDate)
}

package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"promohub/internal/talent/metrics"
	"promohub/internal/talent/models"
	"promohub/internal/talent/query"
	"promohub/internal/talent/service"
	"promohub/internal/talent/store/memory"
	"promohub/pkg/platform/audit"
)

var handlerMetrics = metrics.New()

type HandlerSuite struct {
	suite.Suite
	router    http.Handler
	talents   *memory.TalentStore
	documents *memory.DocumentStore
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.DiscardHandler)
	s.talents = memory.NewTalentStore()
	s.documents = memory.NewDocumentStore()

	svc := service.New(s.talents, s.documents, 2, logger, handlerMetrics,
		audit.NewPublisher(logger, audit.NewMemorySink()))

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	s.router = r
}

func (s *HandlerSuite) seed(firstName, lastName, uniqueID, nationality string) *models.Talent {
	t := &models.Talent{
		UniqueID:    uniqueID,
		FirstName:   firstName,
		LastName:    lastName,
		Nationality: nationality,
		Area:        "dubai",
		TalentType:  models.TypePromoter,
		Status:      models.StatusPending,
	}
	s.Require().NoError(s.talents.Create(s.T().Context(), t))
	return t
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestListDefaults() {
	s.seed("Amira", "Hassan", "PRO-2026-0001", "eg")
	s.seed("Lena", "Keller", "PRO-2026-0002", "uk")
	s.seed("Noor", "Ali", "PRO-2026-0003", "eg")

	rec := s.do(http.MethodGet, "/admin/talents", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var page query.Page
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&page))
	s.Equal(3, page.Total)
	s.Equal(2, page.TotalPages)
	s.Require().Len(page.Items, 2)
	s.Equal("Ali", page.Items[0].LastName)
	s.Equal("Hassan", page.Items[1].LastName)
}

func (s *HandlerSuite) TestListFiltersAndSort() {
	s.seed("Amira", "Hassan", "PRO-2026-0001", "eg")
	s.seed("Lena", "Keller", "PRO-2026-0002", "uk")
	s.seed("Noor", "Ali", "PRO-2026-0003", "eg")

	rec := s.do(http.MethodGet, "/admin/talents?nationality=eg&sortBy=firstName&sortDir=desc", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var page query.Page
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&page))
	s.Equal(2, page.Total)
	s.Require().Len(page.Items, 2)
	s.Equal("Noor", page.Items[0].FirstName)
	s.Equal("Amira", page.Items[1].FirstName)
}

func (s *HandlerSuite) TestListUnknownFilterIgnored() {
	s.seed("Amira", "Hassan", "PRO-2026-0001", "eg")

	rec := s.do(http.MethodGet, "/admin/talents?favoriteColor=blue", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var page query.Page
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&page))
	s.Equal(1, page.Total)
}

func (s *HandlerSuite) TestListBadPage() {
	rec := s.do(http.MethodGet, "/admin/talents?page=abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestGet() {
	created := s.seed("Amira", "Hassan", "PRO-2026-0001", "eg")

	rec := s.do(http.MethodGet, "/admin/talents/"+strconv.FormatInt(created.ID, 10), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var t models.Talent
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&t))
	s.Equal("PRO-2026-0001", t.UniqueID)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/admin/talents/999", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/admin/talents/abc", nil).Code)
}

func (s *HandlerSuite) TestDocuments() {
	created := s.seed("Amira", "Hassan", "PRO-2026-0001", "eg")
	s.Require().NoError(s.documents.Create(s.T().Context(), &models.Document{
		ID:       "doc-1",
		TalentID: created.ID,
		Type:     models.DocPassport,
		FileName: "passport.pdf",
	}))

	rec := s.do(http.MethodGet, "/admin/talents/"+strconv.FormatInt(created.ID, 10)+"/documents", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Documents []models.Document `json:"documents"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Require().Len(body.Documents, 1)
	s.Equal("passport.pdf", body.Documents[0].FileName)
}

func (s *HandlerSuite) TestUpdateStatus() {
	created := s.seed("Amira", "Hassan", "PRO-2026-0001", "eg")
	path := "/admin/talents/" + strconv.FormatInt(created.ID, 10) + "/status"

	rec := s.do(http.MethodPatch, path, map[string]string{"status": "active"})
	s.Require().Equal(http.StatusOK, rec.Code)

	var t models.Talent
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&t))
	s.Equal(models.StatusActive, t.Status)

	rec = s.do(http.MethodPatch, path, map[string]string{"status": "approved"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestDelete() {
	created := s.seed("Amira", "Hassan", "PRO-2026-0001", "eg")
	path := "/admin/talents/" + strconv.FormatInt(created.ID, 10)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, nil).Code)
}

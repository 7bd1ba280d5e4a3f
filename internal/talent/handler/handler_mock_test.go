package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promohub/internal/talent/handler/mocks"
	"promohub/internal/talent/models"
	"promohub/internal/talent/query"
	"promohub/pkg/domainerrors"
)

// MockHandlerSuite pins the handler's translation layer in isolation:
// URL parsing, body decoding, and error envelopes, with the service
// behavior scripted per test.
type MockHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  http.Handler
}

func TestMockHandlerSuite(t *testing.T) {
	suite.Run(t, new(MockHandlerSuite))
}

func (s *MockHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)

	r := chi.NewRouter()
	New(s.service, slog.New(slog.DiscardHandler)).Register(r)
	s.router = r
}

func (s *MockHandlerSuite) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *MockHandlerSuite) TestListFailureIsOpaque() {
	s.service.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(query.Page{}, errors.New("pq: connection reset by peer"))

	rec := s.request(http.MethodGet, "/admin/talents", "")
	s.Require().Equal(http.StatusInternalServerError, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("internal", body.Error)
	// Store detail never reaches the client.
	s.NotContains(body.Message, "pq:")
}

func (s *MockHandlerSuite) TestGetParsesID() {
	s.service.EXPECT().
		Get(gomock.Any(), int64(42)).
		Return(&models.Talent{ID: 42, UniqueID: "PRO-2026-0042"}, nil)

	rec := s.request(http.MethodGet, "/admin/talents/42", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	// A non-numeric id never reaches the service.
	rec = s.request(http.MethodGet, "/admin/talents/forty-two", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *MockHandlerSuite) TestUpdateStatusPassesParsedFields() {
	s.service.EXPECT().
		UpdateStatus(gomock.Any(), int64(7), models.StatusActive, gomock.Any(), gomock.Any()).
		Return(&models.Talent{ID: 7, Status: models.StatusActive}, nil)

	rec := s.request(http.MethodPatch, "/admin/talents/7/status", `{"status":"active"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *MockHandlerSuite) TestDeleteNotFoundEnvelope() {
	s.service.EXPECT().
		Delete(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).
		Return(domainerrors.New(domainerrors.CodeNotFound, "talent not found"))

	rec := s.request(http.MethodDelete, "/admin/talents/9", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("not_found", body.Error)
}

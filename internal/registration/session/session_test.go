package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"promohub/internal/registration/wizard"
	"promohub/pkg/platform/sentinel"
)

type RegistrySuite struct {
	suite.Suite
	registry *Registry
	now      time.Time
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.registry = NewRegistry(30 * time.Minute)
	s.now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.registry.now = func() time.Time { return s.now }
}

func (s *RegistrySuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *RegistrySuite) TestCreateAndGet() {
	created := s.registry.Create()
	s.NotEmpty(created.ID)

	got, err := s.registry.Get(created.ID)
	s.Require().NoError(err)
	s.Same(created, got)

	err = got.Do(func(w *wizard.Wizard) error {
		s.Equal(wizard.StepPersonalInfo, w.Step())
		return nil
	})
	s.NoError(err)
}

func (s *RegistrySuite) TestGetUnknownSession() {
	_, err := s.registry.Get("nope")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RegistrySuite) TestSessionExpires() {
	created := s.registry.Create()

	s.advance(31 * time.Minute)
	_, err := s.registry.Get(created.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.Zero(s.registry.Len())
}

func (s *RegistrySuite) TestGetSlidesExpiry() {
	created := s.registry.Create()

	s.advance(20 * time.Minute)
	_, err := s.registry.Get(created.ID)
	s.Require().NoError(err)

	// 40 minutes after creation but only 20 after last access.
	s.advance(20 * time.Minute)
	_, err = s.registry.Get(created.ID)
	s.NoError(err)
}

func (s *RegistrySuite) TestDelete() {
	created := s.registry.Create()
	s.registry.Delete(created.ID)

	_, err := s.registry.Get(created.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.NotPanics(func() { s.registry.Delete("already-gone") })
}

func (s *RegistrySuite) TestSweepExpired() {
	stale := s.registry.Create()
	s.advance(31 * time.Minute)
	fresh := s.registry.Create()

	s.registry.sweepExpired()

	s.Equal(1, s.registry.Len())
	_, err := s.registry.Get(stale.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.registry.Get(fresh.ID)
	s.NoError(err)
}

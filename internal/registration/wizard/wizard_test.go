package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"promohub/internal/talent/models"
	"promohub/pkg/domainerrors"
)

type WizardSuite struct {
	suite.Suite
	w *Wizard
}

func TestWizardSuite(t *testing.T) {
	suite.Run(t, new(WizardSuite))
}

func (s *WizardSuite) SetupTest() {
	s.w = New()
}

func validPersonal() PersonalInfo {
	return PersonalInfo{
		FirstName:   "Amira",
		LastName:    "Hassan",
		Email:       "amira@example.com",
		DateOfBirth: "1998-04-02",
		Gender:      models.GenderFemale,
		Mobile:      "+971501234567",
		Nationality: "ae",
		Area:        "dubai",
		Height:      168,
		TShirtSize:  "m",
		ShirtSize:   "m",
	}
}

func validProfessional() ProfessionalDetails {
	return ProfessionalDetails{
		YearsExperience: 3,
		TalentType:      models.TypePromoter,
	}
}

func (s *WizardSuite) advanceToReview() {
	s.Require().NoError(s.w.SubmitPersonalInfo(validPersonal()))
	s.Require().NoError(s.w.SubmitProfessionalDetails(validProfessional()))
	s.Require().NoError(s.w.SubmitDocuments(nil))
	s.Require().Equal(StepReview, s.w.Step())
}

func (s *WizardSuite) TestLinearFlow() {
	s.Equal(StepPersonalInfo, s.w.Step())

	s.Require().NoError(s.w.SubmitPersonalInfo(validPersonal()))
	s.Equal(StepProfessionalDetails, s.w.Step())

	s.Require().NoError(s.w.SubmitProfessionalDetails(validProfessional()))
	s.Equal(StepDocuments, s.w.Step())

	s.Require().NoError(s.w.SubmitDocuments(nil))
	s.Equal(StepReview, s.w.Step())
}

func (s *WizardSuite) TestStepSkippingIsRejected() {
	s.Run("professional details before personal info", func() {
		err := New().SubmitProfessionalDetails(validProfessional())
		s.Require().ErrorIs(err, ErrInvalidTransition)
	})

	s.Run("documents from step 1", func() {
		err := New().SubmitDocuments(nil)
		s.Require().ErrorIs(err, ErrInvalidTransition)
	})

	s.Run("submit before review", func() {
		err := New().BeginSubmit()
		s.Require().ErrorIs(err, ErrInvalidTransition)
	})

	s.Run("re-submitting an already passed step", func() {
		w := New()
		s.Require().NoError(w.SubmitPersonalInfo(validPersonal()))
		err := w.SubmitPersonalInfo(validPersonal())
		s.Require().ErrorIs(err, ErrInvalidTransition)
	})
}

func (s *WizardSuite) TestValidationKeepsStepAndData() {
	bad := validPersonal()
	bad.FirstName = "A"
	bad.Email = "not-an-email"
	bad.Height = 119

	err := s.w.SubmitPersonalInfo(bad)
	s.Require().Error(err)
	s.True(domainerrors.Is(err, domainerrors.CodeValidation))
	s.Equal(StepPersonalInfo, s.w.Step())

	fields := domainerrors.FieldsOf(err)
	s.Contains(fields, "firstName")
	s.Contains(fields, "email")
	s.Contains(fields, "height")
	s.NotContains(fields, "lastName")
}

func (s *WizardSuite) TestFieldShapeBounds() {
	s.Run("overlong name", func() {
		bad := validPersonal()
		bad.LastName = strings.Repeat("x", 101)
		err := New().SubmitPersonalInfo(bad)
		s.Require().Error(err)
		s.Contains(domainerrors.FieldsOf(err), "lastName")
	})

	s.Run("display-name email rejected", func() {
		bad := validPersonal()
		bad.Email = "Amira Hassan <amira@example.com>"
		err := New().SubmitPersonalInfo(bad)
		s.Require().Error(err)
		s.Contains(domainerrors.FieldsOf(err), "email")
	})

	s.Run("mobile too short", func() {
		bad := validPersonal()
		bad.Mobile = "123"
		err := New().SubmitPersonalInfo(bad)
		s.Require().Error(err)
		s.Contains(domainerrors.FieldsOf(err), "mobile")
	})
}

func (s *WizardSuite) TestArtistDetailsNeverBlock() {
	s.Require().NoError(s.w.SubmitPersonalInfo(validPersonal()))
	// Artist with empty details field still advances.
	err := s.w.SubmitProfessionalDetails(ProfessionalDetails{
		YearsExperience: 1,
		TalentType:      models.TypeArtist,
	})
	s.Require().NoError(err)
	s.Equal(StepDocuments, s.w.Step())
}

func (s *WizardSuite) TestBackPreservesData() {
	s.Require().NoError(s.w.SubmitPersonalInfo(validPersonal()))
	s.Require().Equal(StepProfessionalDetails, s.w.Step())

	s.Require().NoError(s.w.Back())
	s.Equal(StepPersonalInfo, s.w.Step())

	// Step 1 form is re-populated from the aggregate, not blanked.
	s.Equal("Amira", s.w.Aggregate().Personal.FirstName)

	s.Run("back at step 1 is a no-op", func() {
		s.Require().NoError(s.w.Back())
		s.Equal(StepPersonalInfo, s.w.Step())
	})

	s.Run("re-submitting after back advances again", func() {
		edited := validPersonal()
		edited.FirstName = "Amirah"
		s.Require().NoError(s.w.SubmitPersonalInfo(edited))
		s.Equal(StepProfessionalDetails, s.w.Step())
		s.Equal("Amirah", s.w.Aggregate().Personal.FirstName)
	})
}

func (s *WizardSuite) TestDocumentSupersession() {
	s.Require().NoError(s.w.SubmitPersonalInfo(validPersonal()))
	s.Require().NoError(s.w.SubmitProfessionalDetails(validProfessional()))

	uploads := []DocumentUpload{
		{Type: models.DocPassport, FileName: "old.pdf", FileData: "b2xk", MimeType: "application/pdf"},
		{Type: models.DocPhoto, FileName: "p1.jpg", FileData: "cDE=", MimeType: "image/jpeg"},
		{Type: models.DocPassport, FileName: "new.pdf", FileData: "bmV3", MimeType: "application/pdf"},
		{Type: models.DocPhoto, FileName: "p2.jpg", FileData: "cDI=", MimeType: "image/jpeg"},
	}
	s.Require().NoError(s.w.SubmitDocuments(uploads))

	docs := s.w.Aggregate().Documents
	s.Require().Len(docs, 3)

	var passports, photos []DocumentUpload
	for _, d := range docs {
		switch d.Type {
		case models.DocPassport:
			passports = append(passports, d)
		case models.DocPhoto:
			photos = append(photos, d)
		}
	}
	s.Require().Len(passports, 1, "second passport supersedes the first")
	s.Equal("new.pdf", passports[0].FileName)
	s.Len(photos, 2, "photos accumulate")
}

func (s *WizardSuite) TestEmptyDocumentsProceed() {
	s.Require().NoError(s.w.SubmitPersonalInfo(validPersonal()))
	s.Require().NoError(s.w.SubmitProfessionalDetails(validProfessional()))
	s.Require().NoError(s.w.SubmitDocuments([]DocumentUpload{}))
	s.Equal(StepReview, s.w.Step())
}

func (s *WizardSuite) TestSubmitLifecycle() {
	s.advanceToReview()

	s.Run("concurrent submit is rejected while in flight", func() {
		s.Require().NoError(s.w.BeginSubmit())
		s.Require().ErrorIs(s.w.BeginSubmit(), ErrSubmitInFlight)
		s.w.FailSubmit()
	})

	s.Run("failure keeps the wizard at review with data intact", func() {
		s.Equal(StepReview, s.w.Step())
		s.Equal("Amira", s.w.Aggregate().Personal.FirstName)
		_, done := s.w.Submitted()
		s.False(done)
	})

	s.Run("retry succeeds and reaches the terminal state", func() {
		s.Require().NoError(s.w.BeginSubmit())
		s.w.CompleteSubmit("PRO-2026-0042")

		uid, done := s.w.Submitted()
		s.True(done)
		s.Equal("PRO-2026-0042", uid)
	})

	s.Run("terminal state rejects further operations", func() {
		s.Require().ErrorIs(s.w.BeginSubmit(), ErrInvalidTransition)
		s.Require().ErrorIs(s.w.Back(), ErrInvalidTransition)
		s.Require().ErrorIs(s.w.SubmitDocuments(nil), ErrInvalidTransition)
	})
}

func (s *WizardSuite) TestStepKeys() {
	s.Equal("personal-info", StepPersonalInfo.Key())
	s.Equal("professional-details", StepProfessionalDetails.Key())
	s.Equal("documents", StepDocuments.Key())
	s.Equal("review", StepReview.Key())
}

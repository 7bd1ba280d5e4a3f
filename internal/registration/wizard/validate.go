package wizard

import (
	"time"

	"github.com/asaskevich/govalidator"

	"promohub/internal/talent/models"
	"promohub/pkg/domainerrors"
)

// Step-level validation gates every forward transition. Failures keep the
// wizard on the current step and carry per-field reasons for the form.

// ValidatePersonalInfo checks the step 1 field group.
func ValidatePersonalInfo(p PersonalInfo) error {
	fields := map[string]string{}

	if !govalidator.StringLength(p.FirstName, "2", "100") {
		fields["firstName"] = "must be between 2 and 100 characters"
	}
	if !govalidator.StringLength(p.LastName, "2", "100") {
		fields["lastName"] = "must be between 2 and 100 characters"
	}
	if !govalidator.StringLength(p.Email, "1", "255") || !govalidator.IsEmail(p.Email) {
		fields["email"] = "must be a valid email address"
	}
	if _, err := time.Parse("2006-01-02", p.DateOfBirth); err != nil {
		fields["dateOfBirth"] = "must be a date in YYYY-MM-DD format"
	}
	switch p.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther, models.GenderPreferNotToSay:
	default:
		fields["gender"] = "must be one of male, female, other, prefer-not-to-say"
	}
	if !govalidator.StringLength(p.Mobile, "5", "20") {
		fields["mobile"] = "must be between 5 and 20 characters"
	}
	if !models.Nationalities[p.Nationality] {
		fields["nationality"] = "is not a recognized nationality code"
	}
	if !models.Areas[p.Area] {
		fields["area"] = "is not a recognized area code"
	}
	if p.Height < models.HeightMin || p.Height > models.HeightMax {
		fields["height"] = "must be between 120 and 220 cm"
	}
	if !models.Sizes[p.TShirtSize] {
		fields["tshirtSize"] = "must be one of xs, s, m, l, xl, xxl"
	}
	if !models.Sizes[p.ShirtSize] {
		fields["shirtSize"] = "must be one of xs, s, m, l, xl, xxl"
	}

	if len(fields) > 0 {
		return domainerrors.NewValidation(fields)
	}
	return nil
}

// ValidateProfessionalDetails checks the step 2 field group. The
// artist/performer details field is optional even for those talent types.
func ValidateProfessionalDetails(p ProfessionalDetails) error {
	fields := map[string]string{}

	if p.YearsExperience < 0 {
		fields["yearsExperience"] = "must be zero or greater"
	}
	switch p.TalentType {
	case models.TypePromoter, models.TypeArtist, models.TypePerformer:
	default:
		fields["talentType"] = "must be one of promoter, artist, performer"
	}

	if len(fields) > 0 {
		return domainerrors.NewValidation(fields)
	}
	return nil
}

// ValidateDocuments checks upload shape only. An empty list proceeds; there
// are no required document types at this step.
func ValidateDocuments(uploads []DocumentUpload) error {
	fields := map[string]string{}

	for _, up := range uploads {
		if !models.DocumentTypes[up.Type] {
			fields["type"] = "unrecognized document type " + string(up.Type)
		}
		if up.FileName == "" {
			fields["fileName"] = "is required for every upload"
		}
		if up.FileData == "" {
			fields["fileData"] = "is required for every upload"
		}
	}

	if len(fields) > 0 {
		return domainerrors.NewValidation(fields)
	}
	return nil
}

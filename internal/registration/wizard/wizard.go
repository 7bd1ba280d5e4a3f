package wizard

import (
	"promohub/internal/talent/models"
	"promohub/pkg/domainerrors"
)

// Step identifies one of the four fixed wizard steps. Steps advance linearly;
// skipping is structurally impossible because each forward transition is a
// distinct method that checks the current step.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepProfessionalDetails
	StepDocuments
	StepReview
)

// Key returns the stable string name used for draft storage and API payloads.
func (s Step) Key() string {
	switch s {
	case StepPersonalInfo:
		return "personal-info"
	case StepProfessionalDetails:
		return "professional-details"
	case StepDocuments:
		return "documents"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// PersonalInfo is the step 1 field group.
type PersonalInfo struct {
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Email       string        `json:"email"`
	DateOfBirth string        `json:"dateOfBirth"`
	Gender      models.Gender `json:"gender"`
	Mobile      string        `json:"mobile"`
	Nationality string        `json:"nationality"`
	Area        string        `json:"area"`
	Height      int           `json:"height"`
	TShirtSize  string        `json:"tshirtSize"`
	ShirtSize   string        `json:"shirtSize"`
}

// ProfessionalDetails is the step 2 field group. ArtistPerformerDetails is
// presentation-conditional on TalentType and never blocks the transition.
type ProfessionalDetails struct {
	YearsExperience        int               `json:"yearsExperience"`
	TalentType             models.TalentType `json:"talentType"`
	ArtistPerformerDetails string            `json:"artistPerformerDetails,omitempty"`
	PreviousExperience     string            `json:"previousExperience,omitempty"`
	BrandsWorkedFor        string            `json:"brandsWorkedFor,omitempty"`
}

// DocumentUpload is one step 3 upload before it becomes a persisted Document.
type DocumentUpload struct {
	Type       models.DocumentType `json:"type"`
	FileName   string              `json:"fileName"`
	FileData   string              `json:"fileData"`
	MimeType   string              `json:"mimeType"`
	ExpiryDate string              `json:"expiryDate,omitempty"`
}

// Aggregate is the in-progress registration bundle the wizard accumulates.
type Aggregate struct {
	Personal     PersonalInfo        `json:"personalInfo"`
	Professional ProfessionalDetails `json:"professionalDetails"`
	Documents    []DocumentUpload    `json:"documents"`
}

// ErrInvalidTransition is returned when an operation is attempted from the
// wrong step (e.g. submitting professional details while on the documents
// step) or after the wizard reached a terminal state.
var ErrInvalidTransition = domainerrors.New(domainerrors.CodeConflict, "operation not allowed in current step")

// ErrSubmitInFlight rejects a second finalize while one is running.
var ErrSubmitInFlight = domainerrors.New(domainerrors.CodeConflict, "submission already in progress")

// Wizard is the registration state machine. It is not safe for concurrent
// use; callers serialize access per session.
type Wizard struct {
	step      Step
	agg       Aggregate
	submitted bool
	uniqueID  string
	inFlight  bool
}

// New starts a wizard at the personal info step.
func New() *Wizard {
	return &Wizard{step: StepPersonalInfo}
}

// Step reports the current step.
func (w *Wizard) Step() Step { return w.step }

// Submitted reports whether the wizard reached its terminal state, and the
// unique id carried there.
func (w *Wizard) Submitted() (string, bool) { return w.uniqueID, w.submitted }

// Aggregate returns a copy of everything submitted so far. Earlier steps stay
// re-editable: their last-submitted values re-populate the form on Back.
func (w *Wizard) Aggregate() Aggregate {
	agg := w.agg
	agg.Documents = append([]DocumentUpload(nil), w.agg.Documents...)
	return agg
}

// SubmitPersonalInfo validates the step 1 field group and advances to step 2.
func (w *Wizard) SubmitPersonalInfo(p PersonalInfo) error {
	if w.submitted || w.step != StepPersonalInfo {
		return ErrInvalidTransition
	}
	if err := ValidatePersonalInfo(p); err != nil {
		return err
	}
	w.agg.Personal = p
	w.step = StepProfessionalDetails
	return nil
}

// SubmitProfessionalDetails validates the step 2 field group and advances to
// the documents step.
func (w *Wizard) SubmitProfessionalDetails(p ProfessionalDetails) error {
	if w.submitted || w.step != StepProfessionalDetails {
		return ErrInvalidTransition
	}
	if err := ValidateProfessionalDetails(p); err != nil {
		return err
	}
	w.agg.Professional = p
	w.step = StepDocuments
	return nil
}

// SubmitDocuments applies the supersession rule to the uploaded set and
// advances to review. An empty upload list is deliberately allowed.
func (w *Wizard) SubmitDocuments(uploads []DocumentUpload) error {
	if w.submitted || w.step != StepDocuments {
		return ErrInvalidTransition
	}
	if err := ValidateDocuments(uploads); err != nil {
		return err
	}
	w.agg.Documents = Supersede(uploads)
	w.step = StepReview
	return nil
}

// Back moves to the immediately preceding step without discarding any data.
// It is a no-op at step 1 and illegal once submitted.
func (w *Wizard) Back() error {
	if w.submitted || w.inFlight {
		return ErrInvalidTransition
	}
	if w.step > StepPersonalInfo {
		w.step--
	}
	return nil
}

// BeginSubmit gates the one-shot finalize. It succeeds only at the review
// step with no submission already in flight.
func (w *Wizard) BeginSubmit() error {
	if w.submitted || w.step != StepReview {
		return ErrInvalidTransition
	}
	if w.inFlight {
		return ErrSubmitInFlight
	}
	w.inFlight = true
	return nil
}

// CompleteSubmit records the terminal Submitted state with the generated id.
func (w *Wizard) CompleteSubmit(uniqueID string) {
	w.inFlight = false
	w.submitted = true
	w.uniqueID = uniqueID
}

// FailSubmit records a recoverable failure: the wizard stays at review with
// the aggregate intact so the user can retry.
func (w *Wizard) FailSubmit() {
	w.inFlight = false
}

// Supersede folds an upload sequence left to right: a later non-photo upload
// replaces the earlier one of the same type, photos accumulate.
func Supersede(uploads []DocumentUpload) []DocumentUpload {
	out := make([]DocumentUpload, 0, len(uploads))
	for _, up := range uploads {
		if up.Type.Additive() {
			out = append(out, up)
			continue
		}
		replaced := false
		for i := range out {
			if out[i].Type == up.Type {
				out[i] = up
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, up)
		}
	}
	return out
}

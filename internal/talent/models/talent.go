package models

import "time"

// TalentStatus tracks the approval lifecycle of a profile. New registrations
// start pending and move to active or rejected through the admin review flow.
type TalentStatus string

const (
	StatusPending  TalentStatus = "pending"
	StatusActive   TalentStatus = "active"
	StatusRejected TalentStatus = "rejected"
)

// Valid reports whether s is one of the known review statuses.
func (s TalentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusRejected:
		return true
	}
	return false
}

// TalentType distinguishes the kind of talent being registered. Artist and
// performer types carry an optional free-text details field.
type TalentType string

const (
	TypePromoter  TalentType = "promoter"
	TypeArtist    TalentType = "artist"
	TypePerformer TalentType = "performer"
)

// Gender values accepted on registration.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

// Nationalities is the closed set of accepted nationality codes.
var Nationalities = map[string]bool{
	"ae": true, "us": true, "uk": true, "in": true, "ph": true,
	"pk": true, "sa": true, "eg": true, "lb": true, "other": true,
}

// Areas is the closed set of accepted region codes.
var Areas = map[string]bool{
	"dubai": true, "abu-dhabi": true, "sharjah": true, "ajman": true,
	"rak": true, "fujairah": true, "uaq": true, "al-ain": true, "other": true,
}

// Sizes is the closed set of accepted garment sizes.
var Sizes = map[string]bool{
	"xs": true, "s": true, "m": true, "l": true, "xl": true, "xxl": true,
}

// Height bounds in centimeters, inclusive.
const (
	HeightMin = 120
	HeightMax = 220
)

// Talent is the aggregate root for a registered profile. UniqueID is assigned
// exactly once at registration finalize and never regenerated.
type Talent struct {
	ID       int64  `json:"id"`
	UniqueID string `json:"uniqueId"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	Mobile      string `json:"mobile"`
	Nationality string `json:"nationality"`
	Area        string `json:"area"`
	Height      int    `json:"height"`
	TShirtSize  string `json:"tshirtSize"`
	ShirtSize   string `json:"shirtSize"`

	YearsExperience        int        `json:"yearsExperience"`
	TalentType             TalentType `json:"talentType"`
	ArtistPerformerDetails string     `json:"artistPerformerDetails,omitempty"`
	PreviousExperience     string     `json:"previousExperience,omitempty"`
	BrandsWorkedFor        string     `json:"brandsWorkedFor,omitempty"`

	Status    TalentStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Age derives whole years from DateOfBirth as of now, correcting for whether
// the birthday has occurred yet this year. ok is false when DateOfBirth is
// missing or unparseable.
func (t *Talent) Age(now time.Time) (int, bool) {
	dob, err := time.Parse("2006-01-02", t.DateOfBirth)
	if err != nil {
		return 0, false
	}
	years := now.Year() - dob.Year()
	// Birthday not yet reached this year.
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}

// DocumentType classifies uploaded documents. Photo is the only additive type;
// every other type supersedes a prior upload of the same type.
type DocumentType string

const (
	DocPassport   DocumentType = "passport"
	DocVisa       DocumentType = "visa"
	DocEmiratesID DocumentType = "emiratesId"
	DocLaborCard  DocumentType = "laborCard"
	DocPhoto      DocumentType = "photo"
	DocVideo      DocumentType = "video"
)

// DocumentTypes is the closed set of accepted document types.
var DocumentTypes = map[DocumentType]bool{
	DocPassport: true, DocVisa: true, DocEmiratesID: true,
	DocLaborCard: true, DocPhoto: true, DocVideo: true,
}

// Additive reports whether multiple documents of this type may coexist on one
// talent.
func (d DocumentType) Additive() bool {
	return d == DocPhoto
}

// Document is owned by exactly one Talent and deleted as a cascade with it.
// FileData carries the upload as base64 text; decoding stays out of scope.
type Document struct {
	ID         string       `json:"id"`
	TalentID   int64        `json:"talentId"`
	Type       DocumentType `json:"type"`
	FileName   string       `json:"fileName"`
	FileData   string       `json:"fileData"`
	MimeType   string       `json:"mimeType"`
	ExpiryDate string       `json:"expiryDate,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"promohub/internal/talent/models"
)

type FilterSuite struct {
	suite.Suite
	now time.Time
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterSuite))
}

func (s *FilterSuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *FilterSuite) TestExactMatchDimensions() {
	t := &models.Talent{
		Nationality: "ae",
		Area:        "dubai",
		Status:      models.StatusPending,
		Gender:      models.GenderFemale,
	}

	s.Run("all value matches any record", func() {
		s.True(Matches(t, DimNationality, "all", s.now))
		s.True(Matches(t, DimStatus, "", s.now))
	})

	s.Run("equality is exact and case-sensitive", func() {
		s.True(Matches(t, DimNationality, "ae", s.now))
		s.False(Matches(t, DimNationality, "AE", s.now))
		s.True(Matches(t, DimArea, "dubai", s.now))
		s.False(Matches(t, DimArea, "sharjah", s.now))
		s.True(Matches(t, DimStatus, "pending", s.now))
		s.True(Matches(t, DimGender, "female", s.now))
		s.False(Matches(t, DimGender, "male", s.now))
	})
}

func (s *FilterSuite) TestExperienceThreshold() {
	s.Run("matches at and above the threshold", func() {
		s.True(Matches(&models.Talent{YearsExperience: 5}, DimExperience, "5", s.now))
		s.True(Matches(&models.Talent{YearsExperience: 6}, DimExperience, "5", s.now))
		s.False(Matches(&models.Talent{YearsExperience: 4}, DimExperience, "5", s.now))
	})

	s.Run("zero experience fails any positive threshold", func() {
		s.False(Matches(&models.Talent{}, DimExperience, "1", s.now))
		s.True(Matches(&models.Talent{}, DimExperience, "0", s.now))
	})

	s.Run("malformed threshold matches nothing", func() {
		s.False(Matches(&models.Talent{YearsExperience: 10}, DimExperience, "lots", s.now))
	})
}

func (s *FilterSuite) TestHeightRange() {
	tall := func(cm int) *models.Talent { return &models.Talent{Height: cm} }

	s.Run("bounded range is inclusive on both ends", func() {
		s.True(Matches(tall(175), DimHeight, "171-180", s.now))
		s.True(Matches(tall(171), DimHeight, "171-180", s.now))
		s.True(Matches(tall(180), DimHeight, "171-180", s.now))
		s.False(Matches(tall(170), DimHeight, "171-180", s.now))
		s.False(Matches(tall(181), DimHeight, "171-180", s.now))
	})

	s.Run("open range has no upper bound", func() {
		s.True(Matches(tall(191), DimHeight, "191+", s.now))
		s.True(Matches(tall(250), DimHeight, "191+", s.now))
		s.False(Matches(tall(190), DimHeight, "191+", s.now))
	})

	s.Run("malformed range matches nothing", func() {
		s.False(Matches(tall(175), DimHeight, "tall", s.now))
		s.False(Matches(tall(175), DimHeight, "171-", s.now))
		s.False(Matches(tall(175), DimHeight, "-180", s.now))
		s.False(Matches(tall(175), DimHeight, "+", s.now))
	})
}

func (s *FilterSuite) TestAgeRange() {
	born := func(dob string) *models.Talent { return &models.Talent{DateOfBirth: dob} }

	s.Run("age counts completed years only", func() {
		// now = 2024-06-15: birthday today means the year is complete.
		s.True(Matches(born("2000-06-15"), DimAgeRange, "24-24", s.now))
		// Birthday tomorrow: still 23.
		s.True(Matches(born("2000-06-16"), DimAgeRange, "23-23", s.now))
		s.False(Matches(born("2000-06-16"), DimAgeRange, "24-24", s.now))
	})

	s.Run("open age range", func() {
		s.True(Matches(born("1980-01-01"), DimAgeRange, "41+", s.now))
		s.False(Matches(born("2000-01-01"), DimAgeRange, "41+", s.now))
	})

	s.Run("missing or unparseable date of birth never matches", func() {
		s.False(Matches(born(""), DimAgeRange, "18-30", s.now))
		s.False(Matches(born("not-a-date"), DimAgeRange, "18+", s.now))
		s.True(Matches(born(""), DimAgeRange, "all", s.now))
	})
}

func (s *FilterSuite) TestUnknownDimensionIgnored() {
	t := &models.Talent{Nationality: "ae"}
	s.True(Matches(t, "shoeSize", "42", s.now))
}

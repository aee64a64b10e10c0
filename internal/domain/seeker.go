package domain

import "time"

// Gender choices for seeker profiles.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// EducationLevel enumerates formal education levels.
type EducationLevel string

const (
	EducationNone       EducationLevel = "none"
	EducationPrimary    EducationLevel = "primary"
	EducationSecondary  EducationLevel = "secondary"
	EducationVocational EducationLevel = "vocational"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationPhD        EducationLevel = "phd"
)

// SeekerProfile holds the job seeker's profile. An application can only be
// submitted once the profile exists and is active.
type SeekerProfile struct {
	ID                  string
	UserID              string
	FirstName           string
	MiddleName          string
	LastName            string
	Gender              Gender
	Skills              string
	ExperienceYears     int
	EducationLevel      EducationLevel
	EducationSector     *string
	ResumeKey           *string
	ExpectedSalaryRange string
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

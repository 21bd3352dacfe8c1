package domain

import (
	"fmt"
	"strings"
	"time"
)

// Fragment is a natural-language fragment produced from one survey value. A
// fragment is pure: Transform returns the same string every call and never
// mutates its inputs. The transformer implementations live in the service
// layer; the aggregates only depend on this surface.
type Fragment interface {
	Transform() string
}

// DiagnosesFragment is the past-diagnoses variant of Fragment, rendered
// either as the full diagnostic sentence or as a short in-line clause.
type DiagnosesFragment interface {
	Transform(short bool) string
}

// IntakeInformation is the root of the parsed object graph for one
// conversion request. It is constructed once from the raw record, immutable
// thereafter, and discarded after report generation.
type IntakeInformation struct {
	Patient      *Patient
	DateOfIntake time.Time
	Phone        string
}

// Patient aggregates the identity fields of the subject and owns the
// sub-aggregates exclusively; no aggregate is shared between patients.
type Patient struct {
	FirstName   string
	LastName    string
	Nickname    string
	Age         int
	DateOfBirth time.Time

	// GenderLabel is the resolved gender name ("other" already replaced by
	// the freeform value).
	GenderLabel string

	// PronounForms holds subject, object, possessive adjective, possessive,
	// and reflexive forms.
	PronounForms [5]string

	Handedness Fragment

	Guardian           *Guardian
	Household          *Household
	Education          *Education
	Development        *Development
	PsychiatricHistory *PsychiatricHistory

	Languages          []Language
	LanguageSpokenBest string
}

// FullName is the patient's legal name with the nickname quoted inside when
// present.
func (p *Patient) FullName() string {
	if p.Nickname != "" {
		return fmt.Sprintf("%s %q %s", p.FirstName, p.Nickname, p.LastName)
	}
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// PreferredName is the nickname when present, the first name otherwise.
func (p *Patient) PreferredName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.FirstName
}

// AgeGenderLabel renders the age-appropriate gendered noun used in prose,
// e.g. "boy", "woman", "child".
func (p *Patient) AgeGenderLabel() string {
	adult := p.Age >= 18
	switch {
	case strings.Contains(p.GenderLabel, "female"):
		if adult {
			return "woman"
		}
		return "girl"
	case strings.Contains(p.GenderLabel, "male"):
		if adult {
			return "man"
		}
		return "boy"
	default:
		if adult {
			return "adult"
		}
		return "child"
	}
}

// Guardian is the reporting parent or guardian.
type Guardian struct {
	FirstName string
	LastName  string

	// Relationship is the resolved relationship name; freeform when the
	// survey coded it as "other".
	Relationship         string
	relationshipCategory GuardianRelationship
}

// NewGuardian builds a guardian with the resolved relationship. The raw
// category is retained to derive titles.
func NewGuardian(firstName, lastName, relationship string, category GuardianRelationship) *Guardian {
	return &Guardian{
		FirstName:            firstName,
		LastName:             lastName,
		Relationship:         relationship,
		relationshipCategory: category,
	}
}

// FullName is the guardian's full name.
func (g *Guardian) FullName() string {
	return fmt.Sprintf("%s %s", g.FirstName, g.LastName)
}

// TitleName is the honorific form used throughout the report, derived from
// the relationship: female kin terms yield "Ms. <last>", male kin terms
// "Mr. <last>", anything else falls back to the full name.
func (g *Guardian) TitleName() string {
	switch g.relationshipCategory {
	case GuardianBiologicalMother, GuardianAdoptiveMother, GuardianStepmother,
		GuardianFosterMother, GuardianGrandmother, GuardianAunt:
		return "Ms. " + g.LastName
	case GuardianBiologicalFather, GuardianAdoptiveFather, GuardianStepfather,
		GuardianFosterFather, GuardianGrandfather, GuardianUncle:
		return "Mr. " + g.LastName
	default:
		return g.FullName()
	}
}

// TitleFullName is the honorific form with the full name.
func (g *Guardian) TitleFullName() string {
	switch g.relationshipCategory {
	case GuardianBiologicalMother, GuardianAdoptiveMother, GuardianStepmother,
		GuardianFosterMother, GuardianGrandmother, GuardianAunt:
		return "Ms. " + g.FullName()
	case GuardianBiologicalFather, GuardianAdoptiveFather, GuardianStepfather,
		GuardianFosterFather, GuardianGrandfather, GuardianUncle:
		return "Mr. " + g.FullName()
	default:
		return g.FullName()
	}
}

// ParentOrGuardian is "parent" for biological, adoptive, and step parents,
// "guardian" for everyone else.
func (g *Guardian) ParentOrGuardian() string {
	switch g.relationshipCategory {
	case GuardianBiologicalMother, GuardianBiologicalFather,
		GuardianAdoptiveMother, GuardianAdoptiveFather,
		GuardianStepmother, GuardianStepfather:
		return "parent"
	default:
		return "guardian"
	}
}

// HouseholdMember is one person residing with the patient.
type HouseholdMember struct {
	Name                string
	Age                 string
	Relationship        Fragment
	RelationshipQuality RelationshipQuality
	GradeOccupation     string
}

// Household is the patient's living situation.
type Household struct {
	City          string
	State         USState
	MaritalStatus GuardianMaritalStatus
	Members       []HouseholdMember

	// Languages are the resolved names of the languages spoken at home,
	// including the freeform addition when present.
	Languages []string
}

// Language is one language the patient speaks.
type Language struct {
	Name            string
	SpokenWholeLife string
	SpokenSinceAge  string
	Setting         string
	Fluency         LanguageFluency
}

// PastSchool is one previously attended school with its grade range.
type PastSchool struct {
	Name   string
	Grades string
}

// Education is the patient's educational situation.
type Education struct {
	YearsOfEducation string
	SchoolName       string
	Grade            string
	SchoolType       SchoolType
	ClassroomType    ClassroomType

	// IEPStatus is the decoded survey answer; IEP renders it as prose.
	IEPStatus   IndividualizedEducationProgram
	IEP         Fragment
	PastSchools Fragment
}

// Development is the patient's developmental history.
type Development struct {
	DurationOfPregnancy   Fragment
	Delivery              Fragment
	DeliveryLocation      Fragment
	BirthComplications    Fragment
	PrematureBirth        bool
	PrematureBirthSpecify string
	Adaptability          Fragment
	SoothingDifficulty    SoothingDifficulty
	EarlyIntervention     Fragment
	CPSE                  Fragment

	StartedWalking   Fragment
	StartedTalking   Fragment
	DaytimeDryness   Fragment
	NighttimeDryness Fragment
}

// PastDiagnosis is one prior psychiatric diagnosis.
type PastDiagnosis struct {
	Diagnosis string
	Clinician string
	Date      string
}

// TherapeuticIntervention is one prior course of therapy.
type TherapeuticIntervention struct {
	Therapist     string
	Reason        string
	Start         string
	End           string
	Frequency     string
	Effectiveness string
	ReasonEnded   string
}

// FamilyPsychiatricHistory is the family history for one diagnosis.
type FamilyPsychiatricHistory struct {
	Diagnosis         string
	NoFormalDiagnosis bool
	FamilyMembers     []string
}

// PsychiatricHistory is the patient's psychiatric history.
type PsychiatricHistory struct {
	PastDiagnoses            DiagnosesFragment
	TherapeuticInterventions []TherapeuticIntervention
	FamilyDiagnoses          Fragment

	Aggression        Fragment
	ChildrenServices  Fragment
	ViolenceAndTrauma Fragment
	SelfHarm          Fragment
}

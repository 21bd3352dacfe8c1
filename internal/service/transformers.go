package service

import (
	"fmt"
	"strings"

	"github.com/ctk-report-generator/internal/domain"
	"github.com/ctk-report-generator/pkg/strutil"
)

// Each transformer converts one structured intake fact into a prose
// fragment. Transformers are pure: all inputs are fixed at construction and
// Transform returns the same string every call. Fragments may carry the
// {{PREFERRED_NAME}} and {{REPORTING_GUARDIAN}} placeholders, which the
// report writer resolves once after all sections exist.

// Handedness renders the patient's dominant hand.
type Handedness struct {
	base domain.Handedness
}

// NewHandedness creates the handedness transformer.
func NewHandedness(value domain.Handedness) *Handedness {
	return &Handedness{base: value}
}

// Transform returns "<hand>-handed", or an empty string when unknown.
func (t *Handedness) Transform() string {
	if t.base == domain.HandednessUnknown {
		return ""
	}
	return t.base.String() + "-handed"
}

// IndividualizedEducationProgram renders whether the patient had an IEP.
type IndividualizedEducationProgram struct {
	base domain.IndividualizedEducationProgram
}

// NewIndividualizedEducationProgram creates the IEP transformer.
func NewIndividualizedEducationProgram(value domain.IndividualizedEducationProgram) *IndividualizedEducationProgram {
	return &IndividualizedEducationProgram{base: value}
}

func (t *IndividualizedEducationProgram) Transform() string {
	if t.base != domain.IEPYes {
		return "did not have an Individualized Education Program (IEP)"
	}
	return "had an Individualized Education Program (IEP)"
}

// BirthComplications renders the complications during pregnancy or birth.
// "None of the above" is mutually exclusive with every other complication;
// the constructor rejects the combination so bad data fails before any
// prose is generated.
type BirthComplications struct {
	base  []domain.BirthComplication
	other string
}

// NewBirthComplications creates the birth complications transformer. The
// other string overrides the "other illnesses" member when present.
func NewBirthComplications(values []domain.BirthComplication, other string) (*BirthComplications, error) {
	hasNone := false
	for _, value := range values {
		if value == domain.ComplicationNoneOfTheAbove {
			hasNone = true
			break
		}
	}
	if hasNone && len(values) > 1 {
		return nil, domain.NewValidationError(
			"birth_complications",
			"'none of the above' cannot be combined with other birth complications",
			values,
		)
	}
	return &BirthComplications{base: values, other: other}, nil
}

func (t *BirthComplications) Transform() string {
	for _, value := range t.base {
		if value == domain.ComplicationNoneOfTheAbove {
			return "no birth complications"
		}
	}

	names := make([]string, len(t.base))
	for i, value := range t.base {
		if value == domain.ComplicationOtherIllnesses && t.other != "" {
			names[i] = t.other
			continue
		}
		names[i] = value.String()
	}

	if len(names) == 1 {
		return "the following birth complication: " + names[0]
	}
	return "the following birth complications: " + strutil.JoinWithOxfordComma(names)
}

// BirthDelivery renders the type of delivery.
type BirthDelivery struct {
	base domain.BirthDelivery
}

// NewBirthDelivery creates the birth delivery transformer.
func NewBirthDelivery(value domain.BirthDelivery) *BirthDelivery {
	return &BirthDelivery{base: value}
}

func (t *BirthDelivery) Transform() string {
	switch t.base {
	case domain.DeliveryVaginal:
		return "a vaginal delivery"
	case domain.DeliveryCesarean:
		return "a cesarean section"
	default:
		return "an unknown type of delivery"
	}
}

// DeliveryLocation renders where the patient was born.
type DeliveryLocation struct {
	base  domain.DeliveryLocation
	other string
}

// NewDeliveryLocation creates the delivery location transformer. The other
// string is only consulted for the "other" member.
func NewDeliveryLocation(value domain.DeliveryLocation, other string) *DeliveryLocation {
	return &DeliveryLocation{base: value, other: other}
}

func (t *DeliveryLocation) Transform() string {
	switch t.base {
	case domain.DeliveryLocationHospital:
		return "a hospital"
	case domain.DeliveryLocationHome:
		return "home"
	default:
		if t.other == "" {
			return "an unspecified location"
		}
		return t.other
	}
}

// Adaptability renders the patient's temperament during infancy.
type Adaptability struct {
	base domain.Adaptability
}

// NewAdaptability creates the adaptability transformer.
func NewAdaptability(value domain.Adaptability) *Adaptability {
	return &Adaptability{base: value}
}

func (t *Adaptability) Transform() string {
	if t.base == domain.AdaptabilityEasy {
		return "an adaptable temperament"
	}
	return "a slow to warm up temperament"
}

// EarlyIntervention renders Early Intervention participation.
type EarlyIntervention struct {
	base string
}

// NewEarlyIntervention creates the early intervention transformer.
func NewEarlyIntervention(base string) *EarlyIntervention {
	return &EarlyIntervention{base: base}
}

func (t *EarlyIntervention) Transform() string {
	if t.base == "" {
		return "did not receive Early Intervention (EI)"
	}
	return "received Early Intervention (EI) starting at " + t.base
}

// CPSE renders Committee on Preschool Special Education participation.
type CPSE struct {
	base string
}

// NewCPSE creates the CPSE transformer.
func NewCPSE(base string) *CPSE {
	return &CPSE{base: base}
}

func (t *CPSE) Transform() string {
	if t.base == "" {
		return "did not receive Committee on Preschool Special Education (CPSE) services"
	}
	return fmt.Sprintf(
		"received Committee on Preschool Special Education (CPSE) services starting at %q",
		t.base,
	)
}

// DurationOfPregnancy renders the gestational duration. Guardians enter
// freeform text here, so the transformer avoids double-annotating a value
// that already reads as a number of weeks.
type DurationOfPregnancy struct {
	base string
}

// NewDurationOfPregnancy creates the pregnancy duration transformer.
func NewDurationOfPregnancy(base string) *DurationOfPregnancy {
	return &DurationOfPregnancy{base: base}
}

func (t *DurationOfPregnancy) Transform() string {
	if value, ok := strutil.ParseNumber(t.base); ok {
		return strutil.FormatNumber(value) + " weeks"
	}
	lowered := strings.ToLower(strings.TrimSpace(t.base))
	if strings.HasSuffix(lowered, "weeks") {
		return lowered
	}
	return fmt.Sprintf("%q", t.base)
}

// DevelopmentSkill renders when a developmental milestone was reached. The
// skill phrase carries the verb, e.g. "talked" or "achieved daytime
// dryness".
type DevelopmentSkill struct {
	base  string
	skill string
}

// NewDevelopmentSkill creates a milestone transformer for one skill.
func NewDevelopmentSkill(base, skill string) *DevelopmentSkill {
	return &DevelopmentSkill{base: base, skill: skill}
}

func (t *DevelopmentSkill) Transform() string {
	base := strings.TrimSpace(t.base)
	if _, ok := strutil.ParseNumber(base); ok && !strings.ContainsAny(base, "abcdefghijklmnopqrstuvwxyz") {
		// The survey does not record whether the guardian meant months or
		// years, so the clinician resolves the unit.
		return fmt.Sprintf("%s at %s months/years", t.skill, base)
	}
	switch strings.ToLower(base) {
	case "not yet":
		return "has not " + t.skill + " yet"
	case "normal", "late":
		return fmt.Sprintf("%s at a %s age", t.skill, strings.ToLower(base))
	case "early":
		return t.skill + " at an early age"
	default:
		return t.skill + " at " + base
	}
}

// PastSchools renders the previously attended schools.
type PastSchools struct {
	base []domain.PastSchool
}

// NewPastSchools creates the past schools transformer.
func NewPastSchools(schools []domain.PastSchool) *PastSchools {
	return &PastSchools{base: schools}
}

func (t *PastSchools) Transform() string {
	if len(t.base) == 0 {
		return "no prior history of schools"
	}
	descriptions := make([]string, len(t.base))
	for i, school := range t.base {
		descriptions[i] = fmt.Sprintf("%s (grades: %s)", school.Name, school.Grades)
	}
	return "attended the following schools: " + strutil.JoinWithOxfordComma(descriptions)
}

// PastDiagnoses renders prior psychiatric diagnoses, either as a short
// clause for the reason-for-visit section or in full with dates and
// clinicians.
type PastDiagnoses struct {
	base []domain.PastDiagnosis
}

// NewPastDiagnoses creates the past diagnoses transformer.
func NewPastDiagnoses(diagnoses []domain.PastDiagnosis) *PastDiagnoses {
	return &PastDiagnoses{base: diagnoses}
}

// Transform renders the diagnoses. The short form lists names only.
func (t *PastDiagnoses) Transform(short bool) string {
	if len(t.base) == 0 {
		return "no prior history of psychiatric diagnoses"
	}

	if short {
		names := make([]string, len(t.base))
		for i, diagnosis := range t.base {
			names[i] = diagnosis.Diagnosis
		}
		return "a prior history of " + strutil.JoinWithOxfordComma(names)
	}

	descriptions := make([]string, len(t.base))
	for i, diagnosis := range t.base {
		descriptions[i] = fmt.Sprintf(
			"%s on %s by %s",
			diagnosis.Diagnosis,
			diagnosis.Date,
			diagnosis.Clinician,
		)
	}
	return "was diagnosed with the following psychiatric diagnoses: " +
		strutil.JoinWithOxfordComma(descriptions)
}

// FamilyDiagnoses renders the family psychiatric history, separating
// confirmed diagnoses from those the family denied.
type FamilyDiagnoses struct {
	base []domain.FamilyPsychiatricHistory
}

// NewFamilyDiagnoses creates the family diagnoses transformer.
func NewFamilyDiagnoses(history []domain.FamilyPsychiatricHistory) *FamilyDiagnoses {
	return &FamilyDiagnoses{base: history}
}

func (t *FamilyDiagnoses) Transform() string {
	var confirmed, denied []string
	for _, entry := range t.base {
		if entry.NoFormalDiagnosis {
			denied = append(denied, entry.Diagnosis)
			continue
		}
		description := entry.Diagnosis
		if len(entry.FamilyMembers) > 0 {
			members := make([]string, len(entry.FamilyMembers))
			for i, member := range entry.FamilyMembers {
				members[i] = strings.ToLower(member)
			}
			description += " (" + strutil.JoinWithOxfordComma(members) + ")"
		}
		confirmed = append(confirmed, description)
	}

	var sentences []string
	if len(confirmed) > 0 {
		sentences = append(
			sentences,
			"{{PREFERRED_NAME}}'s family history is significant for "+
				strutil.JoinWithOxfordComma(confirmed)+".",
		)
	}
	if len(denied) == 1 {
		sentences = append(sentences, "Family history of "+denied[0]+" was denied.")
	} else if len(denied) > 1 {
		sentences = append(
			sentences,
			"Family history of the following diagnoses was denied: "+
				strutil.JoinWithOxfordComma(denied)+".",
		)
	}
	return strings.Join(sentences, " ")
}

// HouseholdRelationship renders the relationship of a household member to
// the patient.
type HouseholdRelationship struct {
	base  domain.HouseholdRelationship
	other string
}

// NewHouseholdRelationship creates the household relationship transformer.
func NewHouseholdRelationship(value domain.HouseholdRelationship, other string) *HouseholdRelationship {
	return &HouseholdRelationship{base: value, other: other}
}

func (t *HouseholdRelationship) Transform() string {
	if t.base == domain.HouseholdOtherRelative {
		if t.other == "" {
			return "unspecified relationship"
		}
		return t.other
	}
	return t.base.String()
}

// guardianReport renders a guardian-reported free-text history: a fixed
// denial sentence when the guardian left the field empty, otherwise the
// guardian's words quoted verbatim.
type guardianReport struct {
	base   string
	denial string
}

func (t *guardianReport) Transform() string {
	if t.base == "" {
		return t.denial
	}
	return fmt.Sprintf("{{REPORTING_GUARDIAN}} reported that %q.", t.base)
}

// NewViolenceAndTrauma creates the violence and trauma transformer.
func NewViolenceAndTrauma(base string) domain.Fragment {
	return &guardianReport{
		base: base,
		denial: "{{REPORTING_GUARDIAN}} denied any history of violence or trauma " +
			"for {{PREFERRED_NAME}}.",
	}
}

// NewAggressiveBehavior creates the aggressive behavior transformer.
func NewAggressiveBehavior(base string) domain.Fragment {
	return &guardianReport{
		base: base,
		denial: "{{REPORTING_GUARDIAN}} denied any history of homicidality or " +
			"severe physically aggressive behaviors towards others for " +
			"{{PREFERRED_NAME}}.",
	}
}

// NewChildrenServices creates the ACS involvement transformer.
func NewChildrenServices(base string) domain.Fragment {
	return &guardianReport{
		base: base,
		denial: "{{REPORTING_GUARDIAN}} denied any history of ACS involvement " +
			"for {{PREFERRED_NAME}}.",
	}
}

// NewSelfHarm creates the self-harm transformer.
func NewSelfHarm(base string) domain.Fragment {
	return &guardianReport{
		base: base,
		denial: "{{REPORTING_GUARDIAN}} denied any history of serious " +
			"self-injurious harm or suicidal ideation for {{PREFERRED_NAME}}",
	}
}

// transformerRegistry maps the string-valued semantic field categories to
// their factories so tests and the parser can drive them from a table.
var transformerRegistry = map[string]func(base, other string) domain.Fragment{
	"early_intervention":    func(base, _ string) domain.Fragment { return NewEarlyIntervention(base) },
	"cpse":                  func(base, _ string) domain.Fragment { return NewCPSE(base) },
	"duration_of_pregnancy": func(base, _ string) domain.Fragment { return NewDurationOfPregnancy(base) },
	"development_skill":     func(base, other string) domain.Fragment { return NewDevelopmentSkill(base, other) },
	"violence_and_trauma":   func(base, _ string) domain.Fragment { return NewViolenceAndTrauma(base) },
	"aggressive_behavior":   func(base, _ string) domain.Fragment { return NewAggressiveBehavior(base) },
	"children_services":     func(base, _ string) domain.Fragment { return NewChildrenServices(base) },
	"self_harm":             func(base, _ string) domain.Fragment { return NewSelfHarm(base) },
}

// NewTransformer builds a string-valued transformer by its semantic field
// category.
func NewTransformer(category, base, other string) (domain.Fragment, error) {
	factory, ok := transformerRegistry[category]
	if !ok {
		return nil, fmt.Errorf("unknown transformer category %q", category)
	}
	return factory(base, other), nil
}

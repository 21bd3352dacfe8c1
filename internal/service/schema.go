package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctk-report-generator/internal/domain"
	"github.com/ctk-report-generator/internal/redcap"
)

// Survey column names consumed by the parser, grouped by aggregate. Indexed
// groups are generated through fieldName so the known naming irregularities
// stay in one place.
const (
	fieldFirstName     = "firstname"
	fieldLastName      = "lastname"
	fieldNickname      = "othername"
	fieldAge           = "age"
	fieldDateOfBirth   = "dob"
	fieldGender        = "childgender"
	fieldGenderOther   = "childgender_other"
	fieldPronouns      = "pronouns"
	fieldPronounsOther = "pronouns_other"
	fieldDominantHand  = "dominant_hand"

	fieldIntakeDate  = "date"
	fieldIntakePhone = "phone"

	fieldYearsOfSchool = "yrs_school"
	fieldSchoolName    = "school"
	fieldGrade         = "grade"
	fieldIEP           = "iep"
	fieldSchoolType    = "schooltype"
	fieldClassroomType = "classroomtype"

	fieldPregnancyDuration = "txt_duration_preg_num"
	fieldDeliveryType      = "opt_delivery"
	fieldDeliveryLocation  = "birth_location"
	fieldDeliveryOther     = "birth_other"
	fieldComplicationOther = "preg_symp_other"
	fieldPremature         = "premature"
	fieldPrematureSpecify  = "premature_specify"
	fieldAdaptability      = "infanttemp_adapt"
	fieldSoothability      = "infanttemp1"
	fieldEarlyIntervention = "ei_age"
	fieldCPSE              = "cpse_age"
	fieldBeganWalking      = "began_walking"
	fieldBeganTalking      = "began_talking"
	fieldDaytimeDryness    = "daytime_dryness"
	fieldNighttimeDryness  = "nighttime_dryness"

	fieldGuardianFirstName    = "guardian_first_name"
	fieldGuardianLastName     = "guardian_last_name"
	fieldGuardianRelationship = "guardian_relationship___1"
	fieldGuardianOther        = "other_relation"

	fieldCity           = "city"
	fieldState          = "state"
	fieldMaritalStatus  = "guardian_maritalstatus"
	fieldResidingNumber = "residing_number"

	fieldLanguageSpokenBest = "language_spoken"
	fieldLanguageOther      = "language_other"

	fieldAggression       = "psych_aggression"
	fieldChildrenServices = "psych_acs"
	fieldViolenceTrauma   = "psych_violence"
	fieldSelfHarm         = "psych_selfharm"
)

// Indexed column patterns. The index is substituted with fieldName.
const (
	patternComplication        = "preg_symp___%d"
	patternHouseholdLanguage   = "language___%d"
	patternMemberName          = "peopleinhome%d"
	patternMemberAge           = "peopleinhome%d_age"
	patternMemberRelation      = "peopleinhome%d_relation"
	patternMemberRelationOther = "peopleinhome%d_relation_other"
	patternMemberQuality       = "peopleinhome%d_relationship"
	patternMemberGrade         = "peopleinhome%d_gradeocc"
	patternLanguageName        = "child_language%d"
	patternLanguageSpoken      = "child_language%d_spoken"
	patternLanguageAge         = "child_language%d_age"
	patternLanguageSetting     = "child_language%d_setting"
	patternLanguageFluency     = "child_language%d_fluency"
	patternPastSchoolName      = "pastschool%d"
	patternPastSchoolGrades    = "pastschool%d_grades"
	patternPastDiagnosis       = "pastdx%d"
	patternPastDiagnosisDate   = "pastdx%d_date"
	patternPastDiagnosisDoctor = "pastdx%d_clinician"
	patternTherapist           = "txhx%d"
	patternTherapyReason       = "txhx%d_reason"
	patternTherapyStart        = "txhx%d_start"
	patternTherapyEnd          = "txhx%d_end"
	patternTherapyFrequency    = "txhx%d_freq"
	patternTherapyEffect       = "txhx%d_effectiveness"
	patternTherapyEnded        = "txhx%d_terminate"
	patternFamilyDiagnosis     = "famhx%d"
	patternFamilyMembers       = "famhx%d_specify"
	patternFamilyNoFormal      = "famhx%d_no_formal"
)

// Indexed group sizes fixed by the survey.
const (
	maxHouseholdMembers = 10
	maxLanguages        = domain.HouseholdLanguageCount
	maxPatientLanguages = 3
	maxPastSchools      = 10
	maxPastDiagnoses    = 10
	maxInterventions    = 10
	maxFamilyDiagnoses  = 10
)

// fieldOverrides lists survey columns whose names deviate from the pattern
// the rest of their group follows. The second household member's quality
// column has always been exported without its index; the asymmetry is part
// of the survey, not a bug to repair here.
var fieldOverrides = map[string]string{
	"peopleinhome2_relationship": "peopleinhome_relationship",
}

// fieldName renders an indexed column name, applying known overrides.
func fieldName(pattern string, index int) string {
	name := fmt.Sprintf(pattern, index)
	if override, ok := fieldOverrides[name]; ok {
		return override
	}
	return name
}

// record wraps a survey row with typed, error-reporting accessors.
type record struct {
	row redcap.Record
}

// String returns a required string column.
func (r record) String(field string) (string, error) {
	value, ok := r.row[field]
	if !ok {
		return "", domain.NewMissingFieldError(field)
	}
	return strings.TrimSpace(value), nil
}

// Optional returns a column that may be absent, treating absence as empty.
func (r record) Optional(field string) string {
	return strings.TrimSpace(r.row[field])
}

// Int returns a required integer column.
func (r record) Int(field string) (int, error) {
	text, err := r.String(field)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, domain.NewValidationError(field, "not an integer", text)
	}
	return value, nil
}

// Float returns a required floating-point column.
func (r record) Float(field string) (float64, error) {
	text, err := r.String(field)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, domain.NewValidationError(field, "not a number", text)
	}
	return value, nil
}

// Checked reports whether a checkbox column is ticked. Absent boxes count
// as unticked since REDCap omits unanswered checkbox groups entirely.
func (r record) Checked(field string) bool {
	value := strings.TrimSpace(r.row[field])
	return value == "1"
}

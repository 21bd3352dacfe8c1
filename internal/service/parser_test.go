package service

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctk-report-generator/internal/domain"
	"github.com/ctk-report-generator/internal/redcap"
)

// testRecord returns a complete survey row for one patient. Tests mutate
// their copy to exercise edge cases.
func testRecord() redcap.Record {
	rec := redcap.Record{
		"firstname":       "Lea",
		"lastname":        "Avatar",
		"othername":       "Lee",
		"age":             "8.6",
		"dob":             "2015-01-15",
		"childgender":     "2",
		"pronouns":        "3",
		"dominant_hand":   "1",
		"date":            "01/15/26",
		"phone":           "555-0100",
		"language_spoken": "1",

		"guardian_first_name":       "Jane",
		"guardian_last_name":        "Avatar",
		"guardian_relationship___1": "1",

		"city":                   "New York",
		"state":                  "33",
		"guardian_maritalstatus": "1",
		"residing_number":        "2",

		"peopleinhome1":              "Jane Avatar",
		"peopleinhome1_age":          "38",
		"peopleinhome1_relation":     "3",
		"peopleinhome1_relationship": "1",
		"peopleinhome1_gradeocc":     "teacher",
		"peopleinhome2":              "Max Avatar",
		"peopleinhome2_age":          "12",
		"peopleinhome2_relation":     "1",
		"peopleinhome_relationship":  "2",
		"peopleinhome2_gradeocc":     "6th grade",

		"language___1": "1",
		"language___2": "1",

		"child_language1":         "English",
		"child_language1_spoken":  "1",
		"child_language1_age":     "",
		"child_language1_setting": "home and school",
		"child_language1_fluency": "1",
		"child_language2":         "Spanish",
		"child_language2_spoken":  "0",
		"child_language2_age":     "4",
		"child_language2_setting": "home",
		"child_language2_fluency": "3",

		"yrs_school":    "3",
		"school":        "Current Elementary",
		"grade":         "3",
		"iep":           "1",
		"schooltype":    "1",
		"classroomtype": "1",

		"pastschool1":        "School A",
		"pastschool1_grades": "1-2",

		"txt_duration_preg_num": "40",
		"opt_delivery":          "1",
		"birth_location":        "1",
		"birth_other":           "",
		"preg_symp___20":        "1",
		"premature":             "0",
		"premature_specify":     "",
		"infanttemp_adapt":      "1",
		"infanttemp1":           "1",
		"ei_age":                "",
		"cpse_age":              "",
		"began_walking":         "12",
		"began_talking":         "normal",
		"daytime_dryness":       "early",
		"nighttime_dryness":     "4",

		"pastdx1":           "Anxiety",
		"pastdx1_date":      "2022-01-01",
		"pastdx1_clinician": "Dr. Smith",

		"famhx1":         "Depression",
		"famhx1_specify": "Mother",

		"psych_aggression": "",
		"psych_acs":        "",
		"psych_violence":   "",
		"psych_selfharm":   "",
	}
	return rec
}

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	timezone, err := time.LoadLocation("US/Eastern")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewParser(timezone, logger)
}

func TestParseIntakeInformation(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	assert.Equal(t, "555-0100", intake.Phone)
	assert.Equal(t, 2026, intake.DateOfIntake.Year())
	assert.Equal(t, time.January, intake.DateOfIntake.Month())
	assert.Equal(t, 15, intake.DateOfIntake.Day())
}

func TestParsePatientIdentity(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	patient := intake.Patient
	assert.Equal(t, `Lea "Lee" Avatar`, patient.FullName())
	assert.Equal(t, "Lee", patient.PreferredName())
	assert.Equal(t, 8, patient.Age, "age is rounded down")
	assert.Equal(t, "female", patient.GenderLabel)
	assert.Equal(t, "girl", patient.AgeGenderLabel())
	assert.Equal(t, [5]string{"they", "them", "their", "theirs", "themselves"}, patient.PronounForms)
	assert.Equal(t, "left-handed", patient.Handedness.Transform())
	assert.Equal(t, "English", patient.LanguageSpokenBest)
}

func TestParsePatientWithoutNickname(t *testing.T) {
	parser := newTestParser(t)
	rec := testRecord()
	rec["othername"] = ""

	intake, err := parser.Parse(rec)
	require.NoError(t, err)

	assert.Equal(t, "Lea Avatar", intake.Patient.FullName())
	assert.Equal(t, "Lea", intake.Patient.PreferredName())
}

func TestParseFreeformPronouns(t *testing.T) {
	parser := newTestParser(t)
	rec := testRecord()
	rec["pronouns"] = "5"
	rec["pronouns_other"] = "xe/xem/xyr/xyrs/xemself"

	intake, err := parser.Parse(rec)
	require.NoError(t, err)

	assert.Equal(
		t,
		[5]string{"xe", "xem", "xyr", "xyrs", "xemself"},
		intake.Patient.PronounForms,
	)
}

func TestParseGuardian(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	guardian := intake.Patient.Guardian
	assert.Equal(t, "Jane Avatar", guardian.FullName())
	assert.Equal(t, "biological mother", guardian.Relationship)
	assert.Equal(t, "Ms. Avatar", guardian.TitleName())
	assert.Equal(t, "Ms. Jane Avatar", guardian.TitleFullName())
	assert.Equal(t, "parent", guardian.ParentOrGuardian())
}

func TestParseGuardianOtherRelationship(t *testing.T) {
	parser := newTestParser(t)
	rec := testRecord()
	rec["guardian_relationship___1"] = "14"
	rec["other_relation"] = "family friend"

	intake, err := parser.Parse(rec)
	require.NoError(t, err)

	guardian := intake.Patient.Guardian
	assert.Equal(t, "family friend", guardian.Relationship)
	assert.Equal(t, "Jane Avatar", guardian.TitleName())
	assert.Equal(t, "guardian", guardian.ParentOrGuardian())
}

func TestParseHousehold(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	household := intake.Patient.Household
	assert.Equal(t, "New York", household.City)
	assert.Equal(t, "New York", household.State.String())
	assert.Equal(t, "married", household.MaritalStatus.String())
	assert.Equal(t, []string{"English", "Spanish"}, household.Languages)

	require.Len(t, household.Members, 2)
	assert.Equal(t, "Jane Avatar", household.Members[0].Name)
	assert.Equal(t, "mother", household.Members[0].Relationship.Transform())

	// The second member's relationship quality column is exported without
	// its index.
	assert.Equal(t, "brother", household.Members[1].Relationship.Transform())
	assert.Equal(t, "good", household.Members[1].RelationshipQuality.String())
}

func TestParseLanguages(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	languages := intake.Patient.Languages
	require.Len(t, languages, 2)
	assert.Equal(t, "English", languages[0].Name)
	assert.Equal(t, domain.FluencyFluent, languages[0].Fluency)
	assert.Equal(t, "Spanish", languages[1].Name)
	assert.Equal(t, domain.FluencyConversational, languages[1].Fluency)
	assert.Equal(t, "4", languages[1].SpokenSinceAge)
}

func TestParseEducation(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	education := intake.Patient.Education
	assert.Equal(t, "Current Elementary", education.SchoolName)
	assert.Equal(t, "3", education.Grade)
	assert.Equal(t, domain.IEPYes, education.IEPStatus)
	assert.Equal(t, "had an Individualized Education Program (IEP)", education.IEP.Transform())
	assert.Equal(
		t,
		"attended the following schools: School A (grades: 1-2)",
		education.PastSchools.Transform(),
	)
}

func TestParseDevelopment(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	development := intake.Patient.Development
	assert.Equal(t, "40 weeks", development.DurationOfPregnancy.Transform())
	assert.Equal(t, "a vaginal delivery", development.Delivery.Transform())
	assert.Equal(t, "a hospital", development.DeliveryLocation.Transform())
	assert.Equal(t, "no birth complications", development.BirthComplications.Transform())
	assert.False(t, development.PrematureBirth)
	assert.Equal(t, "an adaptable temperament", development.Adaptability.Transform())
	assert.Equal(t, "easy", development.SoothingDifficulty.String())
	assert.Equal(t, "started walking at 12 months/years", development.StartedWalking.Transform())
	assert.Equal(t, "started talking at a normal age", development.StartedTalking.Transform())
	assert.Equal(t, "achieved daytime dryness at an early age", development.DaytimeDryness.Transform())
	assert.Equal(t, "achieved nighttime dryness at 4 months/years", development.NighttimeDryness.Transform())
}

func TestParsePsychiatricHistory(t *testing.T) {
	parser := newTestParser(t)

	intake, err := parser.Parse(testRecord())
	require.NoError(t, err)

	history := intake.Patient.PsychiatricHistory
	assert.Equal(t, "a prior history of Anxiety", history.PastDiagnoses.Transform(true))
	assert.Empty(t, history.TherapeuticInterventions)
	assert.Equal(
		t,
		"{{PREFERRED_NAME}}'s family history is significant for Depression (mother).",
		history.FamilyDiagnoses.Transform(),
	)
	assert.Contains(t, history.SelfHarm.Transform(), "denied")
}

func TestParseMissingRequiredField(t *testing.T) {
	parser := newTestParser(t)
	rec := testRecord()
	delete(rec, "firstname")

	_, err := parser.Parse(rec)

	var missingErr *domain.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "firstname", missingErr.Field)
}

func TestParseInvalidDescriptorCode(t *testing.T) {
	parser := newTestParser(t)
	rec := testRecord()
	rec["childgender"] = "42"

	_, err := parser.Parse(rec)

	var codeErr *domain.InvalidCodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, 42, codeErr.Code)
}

func TestParseBirthComplicationConflict(t *testing.T) {
	parser := newTestParser(t)
	rec := testRecord()
	rec["preg_symp___4"] = "1"

	_, err := parser.Parse(rec)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name    string
		patient domain.Patient
		want    string
	}{
		{"ascii", domain.Patient{FirstName: "Lea", LastName: "Avatar"}, "LA"},
		{"accented", domain.Patient{FirstName: "Élodie", LastName: "Ávila"}, "ÉÁ"},
		{"missing names", domain.Patient{}, "??"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, initials(&tt.patient))
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	parser := newTestParser(t)

	first, err := parser.Parse(testRecord())
	require.NoError(t, err)
	second, err := parser.Parse(testRecord())
	require.NoError(t, err)

	assert.Equal(t, first.Patient.FullName(), second.Patient.FullName())
	assert.Equal(
		t,
		first.Patient.Development.BirthComplications.Transform(),
		second.Patient.Development.BirthComplications.Transform(),
	)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctk-report-generator/internal/domain"
)

func TestHandednessTransformer(t *testing.T) {
	tests := []struct {
		name  string
		value domain.Handedness
		want  string
	}{
		{"left", domain.HandednessLeft, "left-handed"},
		{"right", domain.HandednessRight, "right-handed"},
		{"unknown", domain.HandednessUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewHandedness(tt.value).Transform())
		})
	}
}

func TestIndividualizedEducationProgramTransformer(t *testing.T) {
	tests := []struct {
		name  string
		value domain.IndividualizedEducationProgram
		want  string
	}{
		{"yes", domain.IEPYes, "had an Individualized Education Program (IEP)"},
		{"no", domain.IEPNo, "did not have an Individualized Education Program (IEP)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewIndividualizedEducationProgram(tt.value).Transform())
		})
	}
}

func TestBirthComplicationsTransformer(t *testing.T) {
	tests := []struct {
		name   string
		values []domain.BirthComplication
		other  string
		want   string
	}{
		{
			"none of the above",
			[]domain.BirthComplication{domain.ComplicationNoneOfTheAbove},
			"",
			"no birth complications",
		},
		{
			"single",
			[]domain.BirthComplication{domain.ComplicationSpottingOrVaginalBleeding},
			"",
			"the following birth complication: spotting or vaginal bleeding",
		},
		{
			"multiple",
			[]domain.BirthComplication{
				domain.ComplicationEmotionalProblems,
				domain.ComplicationDiabetes,
			},
			"",
			"the following birth complications: emotional problems and diabetes",
		},
		{
			"other illnesses freeform",
			[]domain.BirthComplication{domain.ComplicationOtherIllnesses},
			"tester",
			"the following birth complication: tester",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transformer, err := NewBirthComplications(tt.values, tt.other)
			require.NoError(t, err)
			assert.Equal(t, tt.want, transformer.Transform())
		})
	}
}

func TestBirthComplicationsTransformerRejectsConflict(t *testing.T) {
	_, err := NewBirthComplications([]domain.BirthComplication{
		domain.ComplicationNoneOfTheAbove,
		domain.ComplicationDiabetes,
	}, "")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "birth_complications", validationErr.Field)
}

func TestBirthDeliveryTransformer(t *testing.T) {
	tests := []struct {
		name  string
		value domain.BirthDelivery
		want  string
	}{
		{"unknown", domain.DeliveryUnknown, "an unknown type of delivery"},
		{"vaginal", domain.DeliveryVaginal, "a vaginal delivery"},
		{"cesarean", domain.DeliveryCesarean, "a cesarean section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBirthDelivery(tt.value).Transform())
		})
	}
}

func TestDeliveryLocationTransformer(t *testing.T) {
	tests := []struct {
		name  string
		value domain.DeliveryLocation
		other string
		want  string
	}{
		{"other unspecified", domain.DeliveryLocationOther, "", "an unspecified location"},
		{"other freeform", domain.DeliveryLocationOther, "test location", "test location"},
		{"hospital", domain.DeliveryLocationHospital, "", "a hospital"},
		{"home", domain.DeliveryLocationHome, "", "home"},
		{"hospital ignores freeform", domain.DeliveryLocationHospital, "should not appear", "a hospital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDeliveryLocation(tt.value, tt.other).Transform())
		})
	}
}

func TestAdaptabilityTransformer(t *testing.T) {
	assert.Equal(t, "a slow to warm up temperament", NewAdaptability(domain.AdaptabilityDifficult).Transform())
	assert.Equal(t, "an adaptable temperament", NewAdaptability(domain.AdaptabilityEasy).Transform())
}

func TestEarlyInterventionTransformer(t *testing.T) {
	assert.Equal(t, "did not receive Early Intervention (EI)", NewEarlyIntervention("").Transform())
	assert.Equal(
		t,
		"received Early Intervention (EI) starting at 2022-01-01",
		NewEarlyIntervention("2022-01-01").Transform(),
	)
}

func TestCPSETransformer(t *testing.T) {
	assert.Equal(
		t,
		"did not receive Committee on Preschool Special Education (CPSE) services",
		NewCPSE("").Transform(),
	)
	assert.Equal(
		t,
		`received Committee on Preschool Special Education (CPSE) services starting at "2022-01-01"`,
		NewCPSE("2022-01-01").Transform(),
	)
}

func TestDurationOfPregnancyTransformer(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"40", "40 weeks"},
		{"38.5", "38.5 weeks"},
		{"40 weeks", "40 weeks"},
		{"38-40 Weeks", "38-40 weeks"},
		{"nine weeks", "nine weeks"},
		{"9 months", `"9 months"`},
		{"40 days", `"40 days"`},
		{"unsure, very late", `"unsure, very late"`},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDurationOfPregnancy(tt.base).Transform())
		})
	}
}

func TestDevelopmentSkillTransformer(t *testing.T) {
	tests := []struct {
		base  string
		skill string
		want  string
	}{
		{"12", "talked", "talked at 12 months/years"},
		{"not yet", "talked", "has not talked yet"},
		{"normal", "talked", "talked at a normal age"},
		{"late", "talked", "talked at a late age"},
		{"early", "walked", "walked at an early age"},
		{"2022-01-01", "talked", "talked at 2022-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDevelopmentSkill(tt.base, tt.skill).Transform())
		})
	}
}

func TestPastSchoolsTransformer(t *testing.T) {
	assert.Equal(t, "no prior history of schools", NewPastSchools(nil).Transform())

	schools := []domain.PastSchool{
		{Name: "School A", Grades: "1-5"},
		{Name: "School B", Grades: "6-8"},
	}
	assert.Equal(
		t,
		"attended the following schools: School A (grades: 1-5) and School B (grades: 6-8)",
		NewPastSchools(schools).Transform(),
	)
}

func TestPastDiagnosesTransformer(t *testing.T) {
	diagnoses := []domain.PastDiagnosis{
		{Diagnosis: "Anxiety", Date: "2022-01-01", Clinician: "Dr. Smith"},
		{Diagnosis: "Depression", Date: "2022-02-01", Clinician: "Dr. Johnson"},
	}

	assert.Equal(
		t,
		"no prior history of psychiatric diagnoses",
		NewPastDiagnoses(nil).Transform(false),
	)
	assert.Equal(
		t,
		"was diagnosed with the following psychiatric diagnoses: Anxiety on "+
			"2022-01-01 by Dr. Smith and Depression on 2022-02-01 by Dr. Johnson",
		NewPastDiagnoses(diagnoses).Transform(false),
	)
	assert.Equal(
		t,
		"a prior history of Anxiety and Depression",
		NewPastDiagnoses(diagnoses).Transform(true),
	)
}

func TestFamilyDiagnosesTransformer(t *testing.T) {
	tests := []struct {
		name string
		base []domain.FamilyPsychiatricHistory
		want string
	}{
		{"empty", nil, ""},
		{
			"confirmed with members",
			[]domain.FamilyPsychiatricHistory{
				{Diagnosis: "Anxiety", FamilyMembers: []string{"Mother", "Father"}},
				{Diagnosis: "Depression", FamilyMembers: []string{"Brother"}},
			},
			"{{PREFERRED_NAME}}'s family history is significant for Anxiety (" +
				"mother and father) and Depression (brother).",
		},
		{
			"confirmed without members",
			[]domain.FamilyPsychiatricHistory{
				{Diagnosis: "Anxiety"},
				{Diagnosis: "Depression"},
			},
			"{{PREFERRED_NAME}}'s family history is significant for Anxiety and Depression.",
		},
		{
			"all denied",
			[]domain.FamilyPsychiatricHistory{
				{Diagnosis: "Anxiety", NoFormalDiagnosis: true},
				{Diagnosis: "Depression", NoFormalDiagnosis: true},
			},
			"Family history of the following diagnoses was denied: Anxiety and Depression.",
		},
		{
			"mixed",
			[]domain.FamilyPsychiatricHistory{
				{Diagnosis: "Anxiety", NoFormalDiagnosis: true},
				{Diagnosis: "Depression", FamilyMembers: []string{"brother"}},
			},
			"{{PREFERRED_NAME}}'s family history is significant for Depression " +
				"(brother). Family history of Anxiety was denied.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFamilyDiagnoses(tt.base).Transform())
		})
	}
}

func TestHouseholdRelationshipTransformer(t *testing.T) {
	tests := []struct {
		name  string
		value domain.HouseholdRelationship
		other string
		want  string
	}{
		{"other unspecified", domain.HouseholdOtherRelative, "", "unspecified relationship"},
		{"other freeform", domain.HouseholdOtherRelative, "test relationship", "test relationship"},
		{"brother", domain.HouseholdBrother, "", "brother"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewHouseholdRelationship(tt.value, tt.other).Transform())
		})
	}
}

func TestGuardianReportTransformers(t *testing.T) {
	tests := []struct {
		category string
		denial   string
	}{
		{
			"violence_and_trauma",
			"{{REPORTING_GUARDIAN}} denied any history of violence or trauma for " +
				"{{PREFERRED_NAME}}.",
		},
		{
			"aggressive_behavior",
			"{{REPORTING_GUARDIAN}} denied any history of homicidality or severe " +
				"physically aggressive behaviors towards others for {{PREFERRED_NAME}}.",
		},
		{
			"children_services",
			"{{REPORTING_GUARDIAN}} denied any history of ACS involvement for " +
				"{{PREFERRED_NAME}}.",
		},
		{
			"self_harm",
			"{{REPORTING_GUARDIAN}} denied any history of serious self-injurious" +
				" harm or suicidal ideation for {{PREFERRED_NAME}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			denied, err := NewTransformer(tt.category, "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.denial, denied.Transform())

			reported, err := NewTransformer(tt.category, "test history", "")
			require.NoError(t, err)
			assert.Equal(t, `{{REPORTING_GUARDIAN}} reported that "test history".`, reported.Transform())
		})
	}
}

func TestSelfHarmTransformer(t *testing.T) {
	assert.Equal(
		t,
		`{{REPORTING_GUARDIAN}} reported that "cut self".`,
		NewSelfHarm("cut self").Transform(),
	)
}

func TestNewTransformerUnknownCategory(t *testing.T) {
	_, err := NewTransformer("nonexistent", "", "")
	assert.Error(t, err)
}

func TestTransformerIdempotence(t *testing.T) {
	transformer := NewDevelopmentSkill("normal", "walked")
	first := transformer.Transform()
	second := transformer.Transform()
	assert.Equal(t, first, second)
}

package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ctk-report-generator/internal/domain"
	"github.com/ctk-report-generator/internal/redcap"
)

// Survey date layouts. The intake date and date of birth use different
// formats in the export.
const (
	intakeDateLayout  = "01/02/06"
	dateOfBirthLayout = "2006-01-02"
)

// Parser builds the intake object graph from one survey row. It is a pure
// transformation: the same row always yields the same graph.
type Parser struct {
	timezone *time.Location
	logger   *logrus.Logger
}

// NewParser creates a parser that interprets survey dates in the given
// timezone.
func NewParser(timezone *time.Location, logger *logrus.Logger) *Parser {
	return &Parser{timezone: timezone, logger: logger}
}

// Parse extracts the full intake information from a survey row. Aggregates
// are built leaves first so every validation failure carries the field that
// caused it.
func (p *Parser) Parse(row redcap.Record) (*domain.IntakeInformation, error) {
	rec := record{row: row}

	patient, err := p.parsePatient(rec)
	if err != nil {
		return nil, fmt.Errorf("parsing patient: %w", err)
	}

	dateText, err := rec.String(fieldIntakeDate)
	if err != nil {
		return nil, err
	}
	dateOfIntake, err := time.ParseInLocation(intakeDateLayout, dateText, p.timezone)
	if err != nil {
		return nil, domain.NewValidationError(fieldIntakeDate, "not a valid intake date", dateText)
	}

	phone, err := rec.String(fieldIntakePhone)
	if err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"patient_initials": initials(patient),
		"intake_date":      dateOfIntake.Format("2006-01-02"),
	}).Info("Parsed intake record")

	return &domain.IntakeInformation{
		Patient:      patient,
		DateOfIntake: dateOfIntake,
		Phone:        phone,
	}, nil
}

func (p *Parser) parsePatient(rec record) (*domain.Patient, error) {
	firstName, err := rec.String(fieldFirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := rec.String(fieldLastName)
	if err != nil {
		return nil, err
	}

	age, err := rec.Float(fieldAge)
	if err != nil {
		return nil, err
	}

	dobText, err := rec.String(fieldDateOfBirth)
	if err != nil {
		return nil, err
	}
	dateOfBirth, err := time.ParseInLocation(dateOfBirthLayout, dobText, p.timezone)
	if err != nil {
		return nil, domain.NewValidationError(fieldDateOfBirth, "not a valid date of birth", dobText)
	}

	genderLabel, err := p.parseGender(rec)
	if err != nil {
		return nil, err
	}
	pronounForms, err := p.parsePronouns(rec)
	if err != nil {
		return nil, err
	}

	handCode, err := rec.Int(fieldDominantHand)
	if err != nil {
		return nil, err
	}
	handedness, err := domain.DecodeHandedness(handCode)
	if err != nil {
		return nil, err
	}

	guardian, err := p.parseGuardian(rec)
	if err != nil {
		return nil, fmt.Errorf("parsing guardian: %w", err)
	}
	household, err := p.parseHousehold(rec)
	if err != nil {
		return nil, fmt.Errorf("parsing household: %w", err)
	}
	education, err := p.parseEducation(rec)
	if err != nil {
		return nil, fmt.Errorf("parsing education: %w", err)
	}
	development, err := p.parseDevelopment(rec)
	if err != nil {
		return nil, fmt.Errorf("parsing development: %w", err)
	}
	psychiatric, err := p.parsePsychiatricHistory(rec)
	if err != nil {
		return nil, fmt.Errorf("parsing psychiatric history: %w", err)
	}
	languages, err := p.parseLanguages(rec)
	if err != nil {
		return nil, fmt.Errorf("parsing languages: %w", err)
	}

	bestCode, err := rec.Int(fieldLanguageSpokenBest)
	if err != nil {
		return nil, err
	}
	bestLanguage, err := domain.DecodeHouseholdLanguage(bestCode)
	if err != nil {
		return nil, err
	}

	return &domain.Patient{
		FirstName:          firstName,
		LastName:           lastName,
		Nickname:           rec.Optional(fieldNickname),
		Age:                int(math.Floor(age)),
		DateOfBirth:        dateOfBirth,
		GenderLabel:        genderLabel,
		PronounForms:       pronounForms,
		Handedness:         NewHandedness(handedness),
		Guardian:           guardian,
		Household:          household,
		Education:          education,
		Development:        development,
		PsychiatricHistory: psychiatric,
		Languages:          languages,
		LanguageSpokenBest: bestLanguage.String(),
	}, nil
}

func (p *Parser) parseGender(rec record) (string, error) {
	code, err := rec.Int(fieldGender)
	if err != nil {
		return "", err
	}
	gender, err := domain.DecodeGender(code)
	if err != nil {
		return "", err
	}
	if gender == domain.GenderOther {
		return rec.String(fieldGenderOther)
	}
	return gender.String(), nil
}

func (p *Parser) parsePronouns(rec record) ([5]string, error) {
	var forms [5]string

	code, err := rec.Int(fieldPronouns)
	if err != nil {
		return forms, err
	}
	pronouns, err := domain.DecodePronouns(code)
	if err != nil {
		return forms, err
	}

	if slots, ok := pronouns.Slots(); ok {
		return slots, nil
	}

	freeform, err := rec.String(fieldPronounsOther)
	if err != nil {
		return forms, err
	}
	for i, form := range strings.Split(freeform, "/") {
		if i >= len(forms) {
			break
		}
		forms[i] = strings.TrimSpace(form)
	}
	return forms, nil
}

func (p *Parser) parseGuardian(rec record) (*domain.Guardian, error) {
	firstName, err := rec.String(fieldGuardianFirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := rec.String(fieldGuardianLastName)
	if err != nil {
		return nil, err
	}

	code, err := rec.Int(fieldGuardianRelationship)
	if err != nil {
		return nil, err
	}
	category, err := domain.DecodeGuardianRelationship(code)
	if err != nil {
		return nil, err
	}

	relationship := category.String()
	if category == domain.GuardianRelationshipOther {
		relationship, err = rec.String(fieldGuardianOther)
		if err != nil {
			return nil, err
		}
	}

	return domain.NewGuardian(firstName, lastName, relationship, category), nil
}

func (p *Parser) parseHousehold(rec record) (*domain.Household, error) {
	city, err := rec.String(fieldCity)
	if err != nil {
		return nil, err
	}

	stateCode, err := rec.Int(fieldState)
	if err != nil {
		return nil, err
	}
	state, err := domain.DecodeUSState(stateCode)
	if err != nil {
		return nil, err
	}

	maritalCode, err := rec.Int(fieldMaritalStatus)
	if err != nil {
		return nil, err
	}
	maritalStatus, err := domain.DecodeGuardianMaritalStatus(maritalCode)
	if err != nil {
		return nil, err
	}

	count, err := rec.Int(fieldResidingNumber)
	if err != nil {
		return nil, err
	}
	if count > maxHouseholdMembers {
		count = maxHouseholdMembers
	}

	members := make([]domain.HouseholdMember, 0, count)
	for i := 1; i <= count; i++ {
		member, err := p.parseHouseholdMember(rec, i)
		if err != nil {
			return nil, fmt.Errorf("household member %d: %w", i, err)
		}
		members = append(members, member)
	}

	var languages []string
	for i := 1; i <= maxLanguages; i++ {
		if !rec.Checked(fieldName(patternHouseholdLanguage, i)) {
			continue
		}
		language, err := domain.DecodeHouseholdLanguage(i)
		if err != nil {
			return nil, err
		}
		name := language.String()
		if language == domain.LanguageOther {
			if freeform := rec.Optional(fieldLanguageOther); freeform != "" {
				name = freeform
			}
		}
		languages = append(languages, name)
	}

	return &domain.Household{
		City:          city,
		State:         state,
		MaritalStatus: maritalStatus,
		Members:       members,
		Languages:     languages,
	}, nil
}

func (p *Parser) parseHouseholdMember(rec record, index int) (domain.HouseholdMember, error) {
	name, err := rec.String(fieldName(patternMemberName, index))
	if err != nil {
		return domain.HouseholdMember{}, err
	}

	relationCode, err := rec.Int(fieldName(patternMemberRelation, index))
	if err != nil {
		return domain.HouseholdMember{}, err
	}
	relation, err := domain.DecodeHouseholdRelationship(relationCode)
	if err != nil {
		return domain.HouseholdMember{}, err
	}

	qualityCode, err := rec.Int(fieldName(patternMemberQuality, index))
	if err != nil {
		return domain.HouseholdMember{}, err
	}
	quality, err := domain.DecodeRelationshipQuality(qualityCode)
	if err != nil {
		return domain.HouseholdMember{}, err
	}

	return domain.HouseholdMember{
		Name:                name,
		Age:                 rec.Optional(fieldName(patternMemberAge, index)),
		Relationship:        NewHouseholdRelationship(relation, rec.Optional(fieldName(patternMemberRelationOther, index))),
		RelationshipQuality: quality,
		GradeOccupation:     rec.Optional(fieldName(patternMemberGrade, index)),
	}, nil
}

func (p *Parser) parseLanguages(rec record) ([]domain.Language, error) {
	var languages []domain.Language
	for i := 1; i <= maxPatientLanguages; i++ {
		name := rec.Optional(fieldName(patternLanguageName, i))
		if name == "" {
			continue
		}

		fluencyCode, err := rec.Int(fieldName(patternLanguageFluency, i))
		if err != nil {
			return nil, err
		}
		fluency, err := domain.DecodeLanguageFluency(fluencyCode)
		if err != nil {
			return nil, err
		}

		languages = append(languages, domain.Language{
			Name:            name,
			SpokenWholeLife: rec.Optional(fieldName(patternLanguageSpoken, i)),
			SpokenSinceAge:  rec.Optional(fieldName(patternLanguageAge, i)),
			Setting:         rec.Optional(fieldName(patternLanguageSetting, i)),
			Fluency:         fluency,
		})
	}
	return languages, nil
}

func (p *Parser) parseEducation(rec record) (*domain.Education, error) {
	years, err := rec.String(fieldYearsOfSchool)
	if err != nil {
		return nil, err
	}
	school, err := rec.String(fieldSchoolName)
	if err != nil {
		return nil, err
	}
	grade, err := rec.String(fieldGrade)
	if err != nil {
		return nil, err
	}

	iepCode, err := rec.Int(fieldIEP)
	if err != nil {
		return nil, err
	}
	iep, err := domain.DecodeIEP(iepCode)
	if err != nil {
		return nil, err
	}

	schoolTypeCode, err := rec.Int(fieldSchoolType)
	if err != nil {
		return nil, err
	}
	schoolType, err := domain.DecodeSchoolType(schoolTypeCode)
	if err != nil {
		return nil, err
	}

	classroomCode, err := rec.Int(fieldClassroomType)
	if err != nil {
		return nil, err
	}
	classroomType, err := domain.DecodeClassroomType(classroomCode)
	if err != nil {
		return nil, err
	}

	var pastSchools []domain.PastSchool
	for i := 1; i <= maxPastSchools; i++ {
		name := rec.Optional(fieldName(patternPastSchoolName, i))
		if name == "" {
			continue
		}
		pastSchools = append(pastSchools, domain.PastSchool{
			Name:   name,
			Grades: rec.Optional(fieldName(patternPastSchoolGrades, i)),
		})
	}

	return &domain.Education{
		YearsOfEducation: years,
		SchoolName:       school,
		Grade:            grade,
		SchoolType:       schoolType,
		ClassroomType:    classroomType,
		IEPStatus:        iep,
		IEP:              NewIndividualizedEducationProgram(iep),
		PastSchools:      NewPastSchools(pastSchools),
	}, nil
}

func (p *Parser) parseDevelopment(rec record) (*domain.Development, error) {
	duration, err := rec.String(fieldPregnancyDuration)
	if err != nil {
		return nil, err
	}

	deliveryCode, err := rec.Int(fieldDeliveryType)
	if err != nil {
		return nil, err
	}
	delivery, err := domain.DecodeBirthDelivery(deliveryCode)
	if err != nil {
		return nil, err
	}

	locationCode, err := rec.Int(fieldDeliveryLocation)
	if err != nil {
		return nil, err
	}
	location, err := domain.DecodeDeliveryLocation(locationCode)
	if err != nil {
		return nil, err
	}

	var complications []domain.BirthComplication
	for i := 1; i <= domain.BirthComplicationCount; i++ {
		if !rec.Checked(fieldName(patternComplication, i)) {
			continue
		}
		complication, err := domain.DecodeBirthComplication(i)
		if err != nil {
			return nil, err
		}
		complications = append(complications, complication)
	}
	birthComplications, err := NewBirthComplications(complications, rec.Optional(fieldComplicationOther))
	if err != nil {
		return nil, err
	}

	adaptabilityCode, err := rec.Int(fieldAdaptability)
	if err != nil {
		return nil, err
	}
	adaptability, err := domain.DecodeAdaptability(adaptabilityCode)
	if err != nil {
		return nil, err
	}

	soothingCode, err := rec.Int(fieldSoothability)
	if err != nil {
		return nil, err
	}
	soothing, err := domain.DecodeSoothingDifficulty(soothingCode)
	if err != nil {
		return nil, err
	}

	return &domain.Development{
		DurationOfPregnancy:   NewDurationOfPregnancy(duration),
		Delivery:              NewBirthDelivery(delivery),
		DeliveryLocation:      NewDeliveryLocation(location, rec.Optional(fieldDeliveryOther)),
		BirthComplications:    birthComplications,
		PrematureBirth:        rec.Checked(fieldPremature),
		PrematureBirthSpecify: rec.Optional(fieldPrematureSpecify),
		Adaptability:          NewAdaptability(adaptability),
		SoothingDifficulty:    soothing,
		EarlyIntervention:     NewEarlyIntervention(rec.Optional(fieldEarlyIntervention)),
		CPSE:                  NewCPSE(rec.Optional(fieldCPSE)),
		StartedWalking:        NewDevelopmentSkill(rec.Optional(fieldBeganWalking), "started walking"),
		StartedTalking:        NewDevelopmentSkill(rec.Optional(fieldBeganTalking), "started talking"),
		DaytimeDryness:        NewDevelopmentSkill(rec.Optional(fieldDaytimeDryness), "achieved daytime dryness"),
		NighttimeDryness:      NewDevelopmentSkill(rec.Optional(fieldNighttimeDryness), "achieved nighttime dryness"),
	}, nil
}

func (p *Parser) parsePsychiatricHistory(rec record) (*domain.PsychiatricHistory, error) {
	var diagnoses []domain.PastDiagnosis
	for i := 1; i <= maxPastDiagnoses; i++ {
		name := rec.Optional(fieldName(patternPastDiagnosis, i))
		if name == "" {
			continue
		}
		diagnoses = append(diagnoses, domain.PastDiagnosis{
			Diagnosis: name,
			Date:      rec.Optional(fieldName(patternPastDiagnosisDate, i)),
			Clinician: rec.Optional(fieldName(patternPastDiagnosisDoctor, i)),
		})
	}

	var interventions []domain.TherapeuticIntervention
	for i := 1; i <= maxInterventions; i++ {
		therapist := rec.Optional(fieldName(patternTherapist, i))
		if therapist == "" {
			continue
		}
		interventions = append(interventions, domain.TherapeuticIntervention{
			Therapist:     therapist,
			Reason:        rec.Optional(fieldName(patternTherapyReason, i)),
			Start:         rec.Optional(fieldName(patternTherapyStart, i)),
			End:           rec.Optional(fieldName(patternTherapyEnd, i)),
			Frequency:     rec.Optional(fieldName(patternTherapyFrequency, i)),
			Effectiveness: rec.Optional(fieldName(patternTherapyEffect, i)),
			ReasonEnded:   rec.Optional(fieldName(patternTherapyEnded, i)),
		})
	}

	var familyHistory []domain.FamilyPsychiatricHistory
	for i := 1; i <= maxFamilyDiagnoses; i++ {
		diagnosis := rec.Optional(fieldName(patternFamilyDiagnosis, i))
		if diagnosis == "" {
			continue
		}
		var members []string
		for _, member := range strings.Split(rec.Optional(fieldName(patternFamilyMembers, i)), ",") {
			if member = strings.TrimSpace(member); member != "" {
				members = append(members, member)
			}
		}
		familyHistory = append(familyHistory, domain.FamilyPsychiatricHistory{
			Diagnosis:         diagnosis,
			NoFormalDiagnosis: rec.Checked(fieldName(patternFamilyNoFormal, i)),
			FamilyMembers:     members,
		})
	}

	return &domain.PsychiatricHistory{
		PastDiagnoses:            NewPastDiagnoses(diagnoses),
		TherapeuticInterventions: interventions,
		FamilyDiagnoses:          NewFamilyDiagnoses(familyHistory),
		Aggression:               NewAggressiveBehavior(rec.Optional(fieldAggression)),
		ChildrenServices:         NewChildrenServices(rec.Optional(fieldChildrenServices)),
		ViolenceAndTrauma:        NewViolenceAndTrauma(rec.Optional(fieldViolenceTrauma)),
		SelfHarm:                 NewSelfHarm(rec.Optional(fieldSelfHarm)),
	}, nil
}

// initials avoids logging patient names while still giving operators a
// stable handle per report.
func initials(patient *domain.Patient) string {
	return firstRune(patient.FirstName) + firstRune(patient.LastName)
}

// firstRune returns the first character of a name, keeping multi-byte
// characters intact so accented names produce valid initials.
func firstRune(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}

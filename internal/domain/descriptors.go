// Package domain contains the core entities of the intake-to-report pipeline:
// the descriptor registry of coded survey fields and the patient aggregate
// graph built from one survey record.
//
// Descriptors are closed sets of integer-coded values. Every legal raw code
// maps to exactly one member; undeclared codes are a hard decode error and
// are never silently coerced. Adding members is safe, renumbering is a
// breaking change.
package domain

import "fmt"

// Descriptor is the common surface of every coded survey dimension. String
// returns the human-readable member name used in generated prose.
type Descriptor interface {
	fmt.Stringer
	IsValid() bool
}

// Gender is the reported gender of the patient.
type Gender int

const (
	GenderMale Gender = iota + 1
	GenderFemale
	GenderNonBinary
	GenderTransgenderMale
	GenderTransgenderFemale
	GenderOther
)

var genderNames = map[Gender]string{
	GenderMale:              "male",
	GenderFemale:            "female",
	GenderNonBinary:         "non-binary",
	GenderTransgenderMale:   "transgender male",
	GenderTransgenderFemale: "transgender female",
	GenderOther:             "other",
}

// Pronouns is the patient's pronoun set.
type Pronouns int

const (
	PronounsHeHimHis Pronouns = iota + 1
	PronounsSheHerHers
	PronounsTheyThemTheirs
	PronounsZeZirZirs
	PronounsOther
)

var pronounNames = map[Pronouns]string{
	PronounsHeHimHis:       "he/him/his",
	PronounsSheHerHers:     "she/her/hers",
	PronounsTheyThemTheirs: "they/them/theirs",
	PronounsZeZirZirs:      "ze/zir/zirs",
	PronounsOther:          "other",
}

// pronounSlots holds the five grammatical forms: subject, object, possessive
// adjective, possessive, reflexive.
var pronounSlots = map[Pronouns][5]string{
	PronounsHeHimHis:       {"he", "him", "his", "his", "himself"},
	PronounsSheHerHers:     {"she", "her", "her", "hers", "herself"},
	PronounsTheyThemTheirs: {"they", "them", "their", "theirs", "themselves"},
	PronounsZeZirZirs:      {"ze", "zir", "zir", "zirs", "zirself"},
}

// Slots returns the five grammatical pronoun forms for the member. The
// second return is false for PronounsOther, whose forms come from the
// freeform survey field instead.
func (p Pronouns) Slots() ([5]string, bool) {
	slots, ok := pronounSlots[p]
	return slots, ok
}

// Handedness is the dominant hand of the patient.
type Handedness int

const (
	HandednessLeft Handedness = iota + 1
	HandednessRight
	HandednessUnknown
)

var handednessNames = map[Handedness]string{
	HandednessLeft:    "left",
	HandednessRight:   "right",
	HandednessUnknown: "unknown",
}

// SchoolType is the type of school the patient attends.
type SchoolType int

const (
	SchoolTypeBoarding SchoolType = iota + 1
	SchoolTypeHome
	SchoolTypeParochial
	SchoolTypePrivate
	SchoolTypePublic
	SchoolTypeSpecial
	SchoolTypeVocational
	SchoolTypeCharter
	SchoolTypeOther
)

var schoolTypeNames = map[SchoolType]string{
	SchoolTypeBoarding:   "boarding",
	SchoolTypeHome:       "home",
	SchoolTypeParochial:  "parochial",
	SchoolTypePrivate:    "private",
	SchoolTypePublic:     "public",
	SchoolTypeSpecial:    "special",
	SchoolTypeVocational: "vocational",
	SchoolTypeCharter:    "charter",
	SchoolTypeOther:      "other",
}

// ClassroomType is the type of classroom the patient is placed in.
type ClassroomType int

const (
	ClassroomGeneralEducation ClassroomType = iota + 1
	ClassroomIntegratedCoTeaching
	ClassroomSelfContained
	ClassroomTwelveOneOne
	ClassroomOther
)

var classroomTypeNames = map[ClassroomType]string{
	ClassroomGeneralEducation:     "general education",
	ClassroomIntegratedCoTeaching: "integrated co-teaching (ICT)",
	ClassroomSelfContained:        "self-contained",
	ClassroomTwelveOneOne:         "12:1:1",
	ClassroomOther:                "other",
}

// IndividualizedEducationProgram marks whether the patient has an IEP.
type IndividualizedEducationProgram int

const (
	IEPNo IndividualizedEducationProgram = iota
	IEPYes
)

var iepNames = map[IndividualizedEducationProgram]string{
	IEPNo:  "no",
	IEPYes: "yes",
}

// BirthDelivery is the type of delivery the patient had.
type BirthDelivery int

const (
	DeliveryVaginal BirthDelivery = iota + 1
	DeliveryCesarean
	DeliveryUnknown
)

var birthDeliveryNames = map[BirthDelivery]string{
	DeliveryVaginal:  "vaginal",
	DeliveryCesarean: "cesarean",
	DeliveryUnknown:  "unknown",
}

// DeliveryLocation is the location of the patient's birth.
type DeliveryLocation int

const (
	DeliveryLocationHospital DeliveryLocation = iota + 1
	DeliveryLocationHome
	DeliveryLocationOther
)

var deliveryLocationNames = map[DeliveryLocation]string{
	DeliveryLocationHospital: "hospital",
	DeliveryLocationHome:     "home",
	DeliveryLocationOther:    "other",
}

// Adaptability is the adaptability of the patient during infancy.
type Adaptability int

const (
	AdaptabilityEasy Adaptability = iota + 1
	AdaptabilityDifficult
)

var adaptabilityNames = map[Adaptability]string{
	AdaptabilityEasy:      "easy",
	AdaptabilityDifficult: "difficult",
}

// SoothingDifficulty is how difficult the patient was to soothe during
// infancy.
type SoothingDifficulty int

const (
	SoothingEasy SoothingDifficulty = iota + 1
	SoothingDifficult
)

var soothingDifficultyNames = map[SoothingDifficulty]string{
	SoothingEasy:      "easy",
	SoothingDifficult: "difficult",
}

// BirthComplication is one complication experienced during pregnancy or
// birth. NoneOfTheAbove is mutually exclusive with every other member; the
// BirthComplications transformer enforces this at construction time.
type BirthComplication int

const (
	ComplicationSpottingOrVaginalBleeding BirthComplication = iota + 1
	ComplicationEmotionalProblems
	ComplicationThreatenedMiscarriage
	ComplicationDiabetes
	ComplicationHighBloodPressure
	ComplicationPreTermLabor
	ComplicationKidneyDisease
	ComplicationTookAnyPrescriptions
	ComplicationDrugUse
	ComplicationAlcoholUse
	ComplicationTobaccoUse
	ComplicationSwollenAnkles
	ComplicationPlacentaPrevia
	ComplicationFamilyStress
	ComplicationRhOrOtherIncompatibilities
	ComplicationFluOrVirus
	ComplicationAccidentOrInjury
	ComplicationBedrest
	ComplicationOtherIllnesses
	ComplicationNoneOfTheAbove
)

var birthComplicationNames = map[BirthComplication]string{
	ComplicationSpottingOrVaginalBleeding:  "spotting or vaginal bleeding",
	ComplicationEmotionalProblems:          "emotional problems",
	ComplicationThreatenedMiscarriage:      "threatened miscarriage",
	ComplicationDiabetes:                   "diabetes",
	ComplicationHighBloodPressure:          "high blood pressure",
	ComplicationPreTermLabor:               "pre-term labor",
	ComplicationKidneyDisease:              "kidney disease",
	ComplicationTookAnyPrescriptions:       "took any prescriptions",
	ComplicationDrugUse:                    "drug use",
	ComplicationAlcoholUse:                 "alcohol use",
	ComplicationTobaccoUse:                 "tobacco use",
	ComplicationSwollenAnkles:              "swollen ankles",
	ComplicationPlacentaPrevia:             "placenta previa",
	ComplicationFamilyStress:               "family stress",
	ComplicationRhOrOtherIncompatibilities: "Rh or other incompatibilities",
	ComplicationFluOrVirus:                 "flu or virus",
	ComplicationAccidentOrInjury:           "accident or injury",
	ComplicationBedrest:                    "bedrest",
	ComplicationOtherIllnesses:             "other illnesses",
	ComplicationNoneOfTheAbove:             "none of the above",
}

// GuardianRelationship is the relationship of the reporting guardian to the
// patient.
type GuardianRelationship int

const (
	GuardianBiologicalMother GuardianRelationship = iota + 1
	GuardianBiologicalFather
	GuardianAdoptiveMother
	GuardianAdoptiveFather
	GuardianStepmother
	GuardianStepfather
	GuardianFosterMother
	GuardianFosterFather
	GuardianGrandmother
	GuardianGrandfather
	GuardianAunt
	GuardianUncle
	GuardianSibling
	GuardianRelationshipOther
)

var guardianRelationshipNames = map[GuardianRelationship]string{
	GuardianBiologicalMother:  "biological mother",
	GuardianBiologicalFather:  "biological father",
	GuardianAdoptiveMother:    "adoptive mother",
	GuardianAdoptiveFather:    "adoptive father",
	GuardianStepmother:        "stepmother",
	GuardianStepfather:        "stepfather",
	GuardianFosterMother:      "foster mother",
	GuardianFosterFather:      "foster father",
	GuardianGrandmother:       "grandmother",
	GuardianGrandfather:       "grandfather",
	GuardianAunt:              "aunt",
	GuardianUncle:             "uncle",
	GuardianSibling:           "sibling",
	GuardianRelationshipOther: "other",
}

// GuardianMaritalStatus is the marital status of the patient's guardians.
type GuardianMaritalStatus int

const (
	MaritalMarried GuardianMaritalStatus = iota + 1
	MaritalDomesticPartnership
	MaritalWidowed
	MaritalDivorced
	MaritalSeparated
	MaritalNeverMarried
)

var guardianMaritalStatusNames = map[GuardianMaritalStatus]string{
	MaritalMarried:             "married",
	MaritalDomesticPartnership: "in a domestic partnership",
	MaritalWidowed:             "widowed",
	MaritalDivorced:            "divorced",
	MaritalSeparated:           "separated",
	MaritalNeverMarried:        "never married",
}

// HouseholdRelationship is the relationship of a household member to the
// patient.
type HouseholdRelationship int

const (
	HouseholdBrother HouseholdRelationship = iota + 1
	HouseholdSister
	HouseholdMother
	HouseholdFather
	HouseholdStepmother
	HouseholdStepfather
	HouseholdGrandmother
	HouseholdGrandfather
	HouseholdAunt
	HouseholdUncle
	HouseholdCousin
	HouseholdOtherRelative
)

var householdRelationshipNames = map[HouseholdRelationship]string{
	HouseholdBrother:       "brother",
	HouseholdSister:        "sister",
	HouseholdMother:        "mother",
	HouseholdFather:        "father",
	HouseholdStepmother:    "stepmother",
	HouseholdStepfather:    "stepfather",
	HouseholdGrandmother:   "grandmother",
	HouseholdGrandfather:   "grandfather",
	HouseholdAunt:          "aunt",
	HouseholdUncle:         "uncle",
	HouseholdCousin:        "cousin",
	HouseholdOtherRelative: "other relative",
}

// RelationshipQuality is the reported quality of the patient's relationship
// with a household member.
type RelationshipQuality int

const (
	QualityExcellent RelationshipQuality = iota + 1
	QualityGood
	QualityFair
	QualityPoor
)

var relationshipQualityNames = map[RelationshipQuality]string{
	QualityExcellent: "excellent",
	QualityGood:      "good",
	QualityFair:      "fair",
	QualityPoor:      "poor",
}

// HouseholdLanguage is one of the coded languages spoken in the patient's
// home. The final member covers the survey's freeform addition.
type HouseholdLanguage int

const (
	LanguageEnglish HouseholdLanguage = iota + 1
	LanguageSpanish
	LanguageMandarin
	LanguageCantonese
	LanguageFrench
	LanguageHaitianCreole
	LanguageRussian
	LanguageArabic
	LanguageBengali
	LanguageHindi
	LanguageUrdu
	LanguageKorean
	LanguageJapanese
	LanguageVietnamese
	LanguageTagalog
	LanguagePolish
	LanguageItalian
	LanguageGerman
	LanguagePortuguese
	LanguageGreek
	LanguageHebrew
	LanguageYiddish
	LanguageAlbanian
	LanguageASL
	LanguageOther
)

var householdLanguageNames = map[HouseholdLanguage]string{
	LanguageEnglish:       "English",
	LanguageSpanish:       "Spanish",
	LanguageMandarin:      "Mandarin",
	LanguageCantonese:     "Cantonese",
	LanguageFrench:        "French",
	LanguageHaitianCreole: "Haitian Creole",
	LanguageRussian:       "Russian",
	LanguageArabic:        "Arabic",
	LanguageBengali:       "Bengali",
	LanguageHindi:         "Hindi",
	LanguageUrdu:          "Urdu",
	LanguageKorean:        "Korean",
	LanguageJapanese:      "Japanese",
	LanguageVietnamese:    "Vietnamese",
	LanguageTagalog:       "Tagalog",
	LanguagePolish:        "Polish",
	LanguageItalian:       "Italian",
	LanguageGerman:        "German",
	LanguagePortuguese:    "Portuguese",
	LanguageGreek:         "Greek",
	LanguageHebrew:        "Hebrew",
	LanguageYiddish:       "Yiddish",
	LanguageAlbanian:      "Albanian",
	LanguageASL:           "American Sign Language",
	LanguageOther:         "other",
}

// LanguageFluency is the patient's fluency in one of their languages.
type LanguageFluency int

const (
	FluencyFluent LanguageFluency = iota + 1
	FluencyProficient
	FluencyConversational
	FluencyBasic
)

var languageFluencyNames = map[LanguageFluency]string{
	FluencyFluent:         "fluent",
	FluencyProficient:     "proficient",
	FluencyConversational: "conversational",
	FluencyBasic:          "basic",
}

// USState is the coded US state of residence, numbered alphabetically with
// the District of Columbia included.
type USState int

var usStateNames = [...]string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "District of Columbia", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
	"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming",
}

func (g Gender) IsValid() bool                         { _, ok := genderNames[g]; return ok }
func (p Pronouns) IsValid() bool                       { _, ok := pronounNames[p]; return ok }
func (h Handedness) IsValid() bool                     { _, ok := handednessNames[h]; return ok }
func (s SchoolType) IsValid() bool                     { _, ok := schoolTypeNames[s]; return ok }
func (c ClassroomType) IsValid() bool                  { _, ok := classroomTypeNames[c]; return ok }
func (i IndividualizedEducationProgram) IsValid() bool { _, ok := iepNames[i]; return ok }
func (b BirthDelivery) IsValid() bool                  { _, ok := birthDeliveryNames[b]; return ok }
func (d DeliveryLocation) IsValid() bool               { _, ok := deliveryLocationNames[d]; return ok }
func (a Adaptability) IsValid() bool                   { _, ok := adaptabilityNames[a]; return ok }
func (s SoothingDifficulty) IsValid() bool             { _, ok := soothingDifficultyNames[s]; return ok }
func (b BirthComplication) IsValid() bool              { _, ok := birthComplicationNames[b]; return ok }
func (g GuardianRelationship) IsValid() bool           { _, ok := guardianRelationshipNames[g]; return ok }
func (m GuardianMaritalStatus) IsValid() bool          { _, ok := guardianMaritalStatusNames[m]; return ok }
func (h HouseholdRelationship) IsValid() bool          { _, ok := householdRelationshipNames[h]; return ok }
func (q RelationshipQuality) IsValid() bool            { _, ok := relationshipQualityNames[q]; return ok }
func (l HouseholdLanguage) IsValid() bool              { _, ok := householdLanguageNames[l]; return ok }
func (f LanguageFluency) IsValid() bool                { _, ok := languageFluencyNames[f]; return ok }
func (s USState) IsValid() bool                        { return s >= 1 && int(s) <= len(usStateNames) }

func (g Gender) String() string                         { return descriptorName(genderNames[g], "Gender", int(g)) }
func (p Pronouns) String() string                       { return descriptorName(pronounNames[p], "Pronouns", int(p)) }
func (h Handedness) String() string                     { return descriptorName(handednessNames[h], "Handedness", int(h)) }
func (s SchoolType) String() string                     { return descriptorName(schoolTypeNames[s], "SchoolType", int(s)) }
func (c ClassroomType) String() string                  { return descriptorName(classroomTypeNames[c], "ClassroomType", int(c)) }
func (i IndividualizedEducationProgram) String() string { return descriptorName(iepNames[i], "IEP", int(i)) }
func (b BirthDelivery) String() string                  { return descriptorName(birthDeliveryNames[b], "BirthDelivery", int(b)) }
func (d DeliveryLocation) String() string {
	return descriptorName(deliveryLocationNames[d], "DeliveryLocation", int(d))
}
func (a Adaptability) String() string { return descriptorName(adaptabilityNames[a], "Adaptability", int(a)) }
func (s SoothingDifficulty) String() string {
	return descriptorName(soothingDifficultyNames[s], "SoothingDifficulty", int(s))
}
func (b BirthComplication) String() string {
	return descriptorName(birthComplicationNames[b], "BirthComplication", int(b))
}
func (g GuardianRelationship) String() string {
	return descriptorName(guardianRelationshipNames[g], "GuardianRelationship", int(g))
}
func (m GuardianMaritalStatus) String() string {
	return descriptorName(guardianMaritalStatusNames[m], "GuardianMaritalStatus", int(m))
}
func (h HouseholdRelationship) String() string {
	return descriptorName(householdRelationshipNames[h], "HouseholdRelationship", int(h))
}
func (q RelationshipQuality) String() string {
	return descriptorName(relationshipQualityNames[q], "RelationshipQuality", int(q))
}
func (l HouseholdLanguage) String() string {
	return descriptorName(householdLanguageNames[l], "HouseholdLanguage", int(l))
}
func (f LanguageFluency) String() string {
	return descriptorName(languageFluencyNames[f], "LanguageFluency", int(f))
}
func (s USState) String() string {
	if !s.IsValid() {
		return descriptorName("", "USState", int(s))
	}
	return usStateNames[s-1]
}

func descriptorName(name, category string, code int) string {
	if name == "" {
		return fmt.Sprintf("%s(%d)", category, code)
	}
	return name
}

// Descriptor category names used by the registry and the parser's schema
// table.
const (
	CategoryGender                = "gender"
	CategoryPronouns              = "pronouns"
	CategoryHandedness            = "handedness"
	CategorySchoolType            = "school_type"
	CategoryClassroomType         = "classroom_type"
	CategoryIEP                   = "individualized_education_program"
	CategoryBirthDelivery         = "birth_delivery"
	CategoryDeliveryLocation      = "delivery_location"
	CategoryAdaptability          = "adaptability"
	CategorySoothingDifficulty    = "soothing_difficulty"
	CategoryBirthComplication     = "birth_complication"
	CategoryGuardianRelationship  = "guardian_relationship"
	CategoryGuardianMaritalStatus = "guardian_marital_status"
	CategoryHouseholdRelationship = "household_relationship"
	CategoryRelationshipQuality   = "relationship_quality"
	CategoryHouseholdLanguage     = "household_language"
	CategoryLanguageFluency       = "language_fluency"
	CategoryUSState               = "us_state"
)

type decodeFunc func(code int) (Descriptor, error)

var descriptorRegistry = map[string]decodeFunc{
	CategoryGender:                func(c int) (Descriptor, error) { return DecodeGender(c) },
	CategoryPronouns:              func(c int) (Descriptor, error) { return DecodePronouns(c) },
	CategoryHandedness:            func(c int) (Descriptor, error) { return DecodeHandedness(c) },
	CategorySchoolType:            func(c int) (Descriptor, error) { return DecodeSchoolType(c) },
	CategoryClassroomType:         func(c int) (Descriptor, error) { return DecodeClassroomType(c) },
	CategoryIEP:                   func(c int) (Descriptor, error) { return DecodeIEP(c) },
	CategoryBirthDelivery:         func(c int) (Descriptor, error) { return DecodeBirthDelivery(c) },
	CategoryDeliveryLocation:      func(c int) (Descriptor, error) { return DecodeDeliveryLocation(c) },
	CategoryAdaptability:          func(c int) (Descriptor, error) { return DecodeAdaptability(c) },
	CategorySoothingDifficulty:    func(c int) (Descriptor, error) { return DecodeSoothingDifficulty(c) },
	CategoryBirthComplication:     func(c int) (Descriptor, error) { return DecodeBirthComplication(c) },
	CategoryGuardianRelationship:  func(c int) (Descriptor, error) { return DecodeGuardianRelationship(c) },
	CategoryGuardianMaritalStatus: func(c int) (Descriptor, error) { return DecodeGuardianMaritalStatus(c) },
	CategoryHouseholdRelationship: func(c int) (Descriptor, error) { return DecodeHouseholdRelationship(c) },
	CategoryRelationshipQuality:   func(c int) (Descriptor, error) { return DecodeRelationshipQuality(c) },
	CategoryHouseholdLanguage:     func(c int) (Descriptor, error) { return DecodeHouseholdLanguage(c) },
	CategoryLanguageFluency:       func(c int) (Descriptor, error) { return DecodeLanguageFluency(c) },
	CategoryUSState:               func(c int) (Descriptor, error) { return DecodeUSState(c) },
}

// Decode resolves a raw survey code against a named descriptor category.
// Unknown categories and undeclared codes return an *InvalidCodeError.
func Decode(category string, code int) (Descriptor, error) {
	decode, ok := descriptorRegistry[category]
	if !ok {
		return nil, fmt.Errorf("decoding descriptor: unknown category %q", category)
	}
	return decode(code)
}

// Categories returns the names of all registered descriptor categories.
func Categories() []string {
	names := make([]string, 0, len(descriptorRegistry))
	for name := range descriptorRegistry {
		names = append(names, name)
	}
	return names
}

// DecodeGender decodes a raw gender code.
func DecodeGender(code int) (Gender, error) {
	g := Gender(code)
	if !g.IsValid() {
		return 0, NewInvalidCodeError(CategoryGender, code)
	}
	return g, nil
}

// DecodePronouns decodes a raw pronouns code.
func DecodePronouns(code int) (Pronouns, error) {
	p := Pronouns(code)
	if !p.IsValid() {
		return 0, NewInvalidCodeError(CategoryPronouns, code)
	}
	return p, nil
}

// DecodeHandedness decodes a raw dominant-hand code.
func DecodeHandedness(code int) (Handedness, error) {
	h := Handedness(code)
	if !h.IsValid() {
		return 0, NewInvalidCodeError(CategoryHandedness, code)
	}
	return h, nil
}

// DecodeSchoolType decodes a raw school-type code.
func DecodeSchoolType(code int) (SchoolType, error) {
	s := SchoolType(code)
	if !s.IsValid() {
		return 0, NewInvalidCodeError(CategorySchoolType, code)
	}
	return s, nil
}

// DecodeClassroomType decodes a raw classroom-type code.
func DecodeClassroomType(code int) (ClassroomType, error) {
	c := ClassroomType(code)
	if !c.IsValid() {
		return 0, NewInvalidCodeError(CategoryClassroomType, code)
	}
	return c, nil
}

// DecodeIEP decodes a raw IEP code.
func DecodeIEP(code int) (IndividualizedEducationProgram, error) {
	i := IndividualizedEducationProgram(code)
	if !i.IsValid() {
		return 0, NewInvalidCodeError(CategoryIEP, code)
	}
	return i, nil
}

// DecodeBirthDelivery decodes a raw delivery-type code.
func DecodeBirthDelivery(code int) (BirthDelivery, error) {
	b := BirthDelivery(code)
	if !b.IsValid() {
		return 0, NewInvalidCodeError(CategoryBirthDelivery, code)
	}
	return b, nil
}

// DecodeDeliveryLocation decodes a raw delivery-location code.
func DecodeDeliveryLocation(code int) (DeliveryLocation, error) {
	d := DeliveryLocation(code)
	if !d.IsValid() {
		return 0, NewInvalidCodeError(CategoryDeliveryLocation, code)
	}
	return d, nil
}

// DecodeAdaptability decodes a raw infant-adaptability code.
func DecodeAdaptability(code int) (Adaptability, error) {
	a := Adaptability(code)
	if !a.IsValid() {
		return 0, NewInvalidCodeError(CategoryAdaptability, code)
	}
	return a, nil
}

// DecodeSoothingDifficulty decodes a raw soothing-difficulty code.
func DecodeSoothingDifficulty(code int) (SoothingDifficulty, error) {
	s := SoothingDifficulty(code)
	if !s.IsValid() {
		return 0, NewInvalidCodeError(CategorySoothingDifficulty, code)
	}
	return s, nil
}

// DecodeBirthComplication decodes a raw birth-complication code.
func DecodeBirthComplication(code int) (BirthComplication, error) {
	b := BirthComplication(code)
	if !b.IsValid() {
		return 0, NewInvalidCodeError(CategoryBirthComplication, code)
	}
	return b, nil
}

// DecodeGuardianRelationship decodes a raw guardian-relationship code.
func DecodeGuardianRelationship(code int) (GuardianRelationship, error) {
	g := GuardianRelationship(code)
	if !g.IsValid() {
		return 0, NewInvalidCodeError(CategoryGuardianRelationship, code)
	}
	return g, nil
}

// DecodeGuardianMaritalStatus decodes a raw marital-status code.
func DecodeGuardianMaritalStatus(code int) (GuardianMaritalStatus, error) {
	m := GuardianMaritalStatus(code)
	if !m.IsValid() {
		return 0, NewInvalidCodeError(CategoryGuardianMaritalStatus, code)
	}
	return m, nil
}

// DecodeHouseholdRelationship decodes a raw household-relationship code.
func DecodeHouseholdRelationship(code int) (HouseholdRelationship, error) {
	h := HouseholdRelationship(code)
	if !h.IsValid() {
		return 0, NewInvalidCodeError(CategoryHouseholdRelationship, code)
	}
	return h, nil
}

// DecodeRelationshipQuality decodes a raw relationship-quality code.
func DecodeRelationshipQuality(code int) (RelationshipQuality, error) {
	q := RelationshipQuality(code)
	if !q.IsValid() {
		return 0, NewInvalidCodeError(CategoryRelationshipQuality, code)
	}
	return q, nil
}

// DecodeHouseholdLanguage decodes a raw household-language code.
func DecodeHouseholdLanguage(code int) (HouseholdLanguage, error) {
	l := HouseholdLanguage(code)
	if !l.IsValid() {
		return 0, NewInvalidCodeError(CategoryHouseholdLanguage, code)
	}
	return l, nil
}

// DecodeLanguageFluency decodes a raw language-fluency code.
func DecodeLanguageFluency(code int) (LanguageFluency, error) {
	f := LanguageFluency(code)
	if !f.IsValid() {
		return 0, NewInvalidCodeError(CategoryLanguageFluency, code)
	}
	return f, nil
}

// DecodeUSState decodes a raw US-state code.
func DecodeUSState(code int) (USState, error) {
	s := USState(code)
	if !s.IsValid() {
		return 0, NewInvalidCodeError(CategoryUSState, code)
	}
	return s, nil
}

// BirthComplicationCount is the number of declared birth-complication codes;
// the survey encodes them as one checkbox column per code.
const BirthComplicationCount = int(ComplicationNoneOfTheAbove)

// HouseholdLanguageCount is the number of declared household-language codes.
const HouseholdLanguageCount = int(LanguageOther)

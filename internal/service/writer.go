package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ctk-report-generator/internal/domain"
	"github.com/ctk-report-generator/pkg/docwrite"
	"github.com/ctk-report-generator/pkg/strutil"
)

// Anchor heading every report template must contain. All intake content is
// inserted immediately before it.
const insertionAnchor = "MENTAL STATUS EXAMINATION AND TESTING BEHAVIORAL OBSERVATIONS"

// Placeholder rendered wherever the clinician fills in a detail by hand.
const clinicianPlaceholder = "______"

// Content color tags. Intake-sourced prose, testing/evaluation prose, and
// template prose awaiting clinician edits each carry their own color so a
// reviewer can see at a glance what still needs attention.
var (
	colorIntake   = docwrite.RGB{R: 178, G: 161, B: 199}
	colorTesting  = docwrite.RGB{R: 155, G: 187, B: 89}
	colorTemplate = docwrite.RGB{R: 247, G: 150, B: 70}

	colorTableHeader = docwrite.RGB{R: 217, G: 217, B: 217}
)

// ReportWriter assembles one intake report. It owns its document
// exclusively for the duration of Transform; generation is all-or-nothing.
type ReportWriter struct {
	intake       *domain.IntakeInformation
	report       *docwrite.Document
	closing      *docwrite.Document
	anchor       *docwrite.Paragraph
	signatureDir string
	reportID     uuid.UUID
	logger       *logrus.Logger
}

// NewReportWriter prepares a writer over a report template. The closing
// document and signature directory are optional; an absent anchor heading
// is a deployment defect and fails immediately.
func NewReportWriter(
	intake *domain.IntakeInformation,
	template *docwrite.Document,
	closing *docwrite.Document,
	signatureDir string,
	logger *logrus.Logger,
) (*ReportWriter, error) {
	anchor := template.FindParagraph(insertionAnchor)
	if anchor == nil {
		return nil, domain.NewTemplateStructureError(insertionAnchor)
	}

	return &ReportWriter{
		intake:       intake,
		report:       template,
		closing:      closing,
		anchor:       anchor,
		signatureDir: signatureDir,
		reportID:     uuid.New(),
		logger:       logger,
	}, nil
}

// ReportID identifies this report in the audit log.
func (w *ReportWriter) ReportID() uuid.UUID {
	return w.reportID
}

// Document returns the assembled report.
func (w *ReportWriter) Document() *docwrite.Document {
	return w.report
}

// Transform writes every report section in order, then resolves
// placeholders, applies grammar corrections, and inserts signatures.
func (w *ReportWriter) Transform() error {
	steps := []func() error{
		w.writeReasonForVisit,
		w.writeDevelopmentalHistory,
		w.writeAcademicHistory,
		w.writeSocialHistory,
		w.writePsychiatricHistory,
		w.writeMedicalHistory,
		w.writeCurrentPsychiatricFunctioning,
		w.addPageBreak,
		w.appendClosingStatement,
		w.replacePatientInformation,
		w.applyCorrections,
		w.addSignatures,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	w.logger.WithFields(logrus.Fields{
		"report_id":  w.reportID.String(),
		"paragraphs": len(w.report.Paragraphs()),
	}).Info("Assembled intake report")
	return nil
}

// styled runs one section step and colors every paragraph the step added.
// All insertions land directly before the anchor, so the paragraphs added
// by the step are exactly those between the anchor's index on entry and on
// exit.
func (w *ReportWriter) styled(color docwrite.RGB, step func() error) error {
	start := w.report.ParagraphIndexOf(w.anchor)
	if err := step(); err != nil {
		return err
	}
	end := w.report.ParagraphIndexOf(w.anchor)
	docwrite.FormatParagraphs(w.report.Paragraphs()[start:end], docwrite.Options{
		FontColor: &color,
	})
	return nil
}

// insert adds a whitespace-normalized paragraph before the anchor.
func (w *ReportWriter) insert(text, style string) (*docwrite.Paragraph, error) {
	return w.report.InsertParagraphBefore(w.anchor, strutil.RemoveExcessWhitespace(text), style)
}

func (w *ReportWriter) writeReasonForVisit() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient

		gradeSuperscript := ""
		if grade, err := strconv.Atoi(patient.Education.Grade); err == nil {
			gradeSuperscript = strutil.OrdinalSuffix(grade)
		}

		if _, err := w.insert("REASON FOR VISIT", docwrite.StyleHeading1); err != nil {
			return err
		}

		opening := fmt.Sprintf(`
			At the time of enrollment, %s was a %d-year-old, %s %s %s.
			%s was placed in a %s %s`,
			patient.FirstName,
			patient.Age,
			patient.Handedness.Transform(),
			patient.AgeGenderLabel(),
			patient.PsychiatricHistory.PastDiagnoses.Transform(true),
			patient.FirstName,
			patient.Education.ClassroomType.String(),
			patient.Education.Grade,
		)
		closing := fmt.Sprintf(`
			grade classroom at %s. %s %s. %s and %s %s, %s, attended the
			present evaluation due to concerns regarding %s. The family is
			hoping for %s. The family learned of the study through %s.`,
			patient.Education.SchoolName,
			patient.FirstName,
			patient.Education.IEP.Transform(),
			patient.FirstName,
			patient.PronounForms[2],
			patient.Guardian.Relationship,
			patient.Guardian.TitleFullName(),
			clinicianPlaceholder,
			clinicianPlaceholder,
			clinicianPlaceholder,
		)

		paragraph, err := w.insert(opening, docwrite.StyleNormal)
		if err != nil {
			return err
		}
		superscript := paragraph.AddRun(gradeSuperscript + " ")
		superscript.Font.Superscript = true
		paragraph.AddRun(strutil.RemoveExcessWhitespace(closing))
		return nil
	})
}

func (w *ReportWriter) writeDevelopmentalHistory() error {
	if err := w.styled(colorIntake, func() error {
		_, err := w.insert("DEVELOPMENTAL HISTORY", docwrite.StyleHeading1)
		return err
	}); err != nil {
		return err
	}
	if err := w.writePrenatalHistory(); err != nil {
		return err
	}
	if err := w.writeDevelopmentalMilestones(); err != nil {
		return err
	}
	return w.writeEarlyEducation()
}

func (w *ReportWriter) writePrenatalHistory() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient
		development := patient.Development

		text := fmt.Sprintf(`
			%s reported %s. %s was born at %s of gestation with %s at %s.
			%s had %s during infancy and was %s to soothe.`,
			patient.Guardian.TitleName(),
			development.BirthComplications.Transform(),
			patient.FirstName,
			development.DurationOfPregnancy.Transform(),
			development.Delivery.Transform(),
			development.DeliveryLocation.Transform(),
			patient.FirstName,
			development.Adaptability.Transform(),
			development.SoothingDifficulty.String(),
		)

		if _, err := w.insert("Prenatal and Birth History", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeDevelopmentalMilestones() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient
		development := patient.Development

		text := fmt.Sprintf(`
			%s's achievement of social, language, fine and gross motor
			developmental milestones were within normal limits, as reported by
			%s. %s %s and %s. %s %s and %s.`,
			patient.FirstName,
			patient.Guardian.TitleName(),
			patient.FirstName,
			development.StartedWalking.Transform(),
			development.StartedTalking.Transform(),
			strutil.CapitalizeFirst(patient.PronounForms[0]),
			development.DaytimeDryness.Transform(),
			development.NighttimeDryness.Transform(),
		)

		if _, err := w.insert("Developmental Milestones", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeEarlyEducation() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient
		development := patient.Development

		text := fmt.Sprintf(
			"%s reported that %s %s and %s.",
			patient.Guardian.TitleName(),
			patient.FirstName,
			development.EarlyIntervention.Transform(),
			development.CPSE.Transform(),
		)

		if _, err := w.insert("Early Educational Interventions", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeAcademicHistory() error {
	if err := w.styled(colorIntake, func() error {
		_, err := w.insert("ACADEMIC AND EDUCATIONAL HISTORY", docwrite.StyleHeading1)
		return err
	}); err != nil {
		return err
	}
	if err := w.writePreviousTesting(); err != nil {
		return err
	}
	if err := w.writeAcademicHistoryTable(); err != nil {
		return err
	}
	return w.writeEducationalHistory()
}

func (w *ReportWriter) writePreviousTesting() error {
	return w.styled(colorTemplate, func() error {
		patient := w.intake.Patient

		text := fmt.Sprintf(`
			%s has no history of previous psychoeducational evaluations./%s
			was evaluated by %s in 20XX. Documentation of the results of the
			evaluation(s) were unavailable at the time of writing this report/
			Notable results include:`,
			patient.FirstName,
			patient.FirstName,
			clinicianPlaceholder,
		)

		if _, err := w.insert("Previous Testing", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeAcademicHistoryTable() error {
	caption, err := w.insert("Name, Date of Assessment", docwrite.StyleNormal)
	if err != nil {
		return err
	}
	docwrite.FormatParagraphs([]*docwrite.Paragraph{caption}, docwrite.Options{
		FontColor: &colorIntake,
		Bold:      docwrite.Bool(true),
		Alignment: docwrite.Align(docwrite.AlignCenter),
	})

	table, err := w.report.InsertTableBefore(w.anchor, 7, 4)
	if err != nil {
		return err
	}
	table.Style = "Table Grid"

	headers := []string{"Domain/Index/Subtest", "Standard Score", "Percentile Rank", "Descriptor"}
	for i, header := range headers {
		cell := table.Rows[0].Cells[i]
		cell.SetText(header)
		cell.Width = 10
		docwrite.FormatCell(cell, docwrite.Options{
			Bold:      docwrite.Bool(true),
			FontColor: &colorIntake,
			Fill:      &colorTableHeader,
			Alignment: docwrite.Align(docwrite.AlignCenter),
		})
	}
	for _, row := range table.Rows {
		row.Height = 1
		row.ExactHeight = true
		for _, cell := range row.Cells {
			docwrite.FormatCell(cell, docwrite.Options{
				LineSpacing: docwrite.Float(1),
				SpaceBefore: docwrite.Float(0),
				SpaceAfter:  docwrite.Float(0),
			})
		}
	}
	return nil
}

func (w *ReportWriter) writeEducationalHistory() error {
	patient := w.intake.Patient
	education := patient.Education

	if err := w.styled(colorIntake, func() error {
		iepPrior := fmt.Sprintf(
			"%s has never had an Individualized Education Program (IEP).",
			patient.FirstName,
		)
		if education.IEPStatus == domain.IEPYes {
			iepPrior = fmt.Sprintf(
				"%s was granted an Individualized Education Program (IEP) in %s grade due to %s difficulties.",
				patient.FirstName,
				clinicianPlaceholder,
				clinicianPlaceholder,
			)
		}

		prior := fmt.Sprintf(`
			%s %s. %s previously struggled with (provide details of academic
			challenges and behavioral difficulties in school). %s`,
			patient.FirstName,
			education.PastSchools.Transform(),
			patient.PronounForms[0],
			iepPrior,
		)

		if _, err := w.insert("Educational History", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(prior, docwrite.StyleNormal)
		return err
	}); err != nil {
		return err
	}

	return w.styled(colorTemplate, func() error {
		gradeSuperscript := ""
		if grade, err := strconv.Atoi(education.Grade); err == nil {
			gradeSuperscript = strutil.OrdinalSuffix(grade)
		}

		opening := fmt.Sprintf(
			"%s is currently in the %s",
			patient.FirstName,
			education.Grade,
		)
		closing := fmt.Sprintf(`
			grade at %s. %s does/does not receive special education services
			and maintains/does not have an IEP allowing accommodations
			for/including %s. %s is generally an average/above average/below
			average student and receives mostly (describe grades). [Describe
			any academic issues reported by parent or child.] %s continues to
			exhibit weaknesses in %s.`,
			education.SchoolName,
			patient.FirstName,
			clinicianPlaceholder,
			patient.FirstName,
			patient.FirstName,
			clinicianPlaceholder,
		)

		paragraph, err := w.insert(opening, docwrite.StyleNormal)
		if err != nil {
			return err
		}
		superscript := paragraph.AddRun(gradeSuperscript + " ")
		superscript.Font.Superscript = true
		paragraph.AddRun(strutil.RemoveExcessWhitespace(closing))
		return nil
	})
}

func (w *ReportWriter) writeSocialHistory() error {
	if err := w.styled(colorIntake, func() error {
		_, err := w.insert("SOCIAL HISTORY", docwrite.StyleHeading1)
		return err
	}); err != nil {
		return err
	}
	if err := w.writeHomeAndAdaptiveFunctioning(); err != nil {
		return err
	}
	return w.writeSocialFunctioning()
}

func (w *ReportWriter) writeHomeAndAdaptiveFunctioning() error {
	patient := w.intake.Patient
	household := patient.Household

	if err := w.styled(colorIntake, func() error {
		spokenVerb := "is"
		if len(household.Languages) > 1 {
			spokenVerb = "are"
		}

		home := fmt.Sprintf(`
			%s lives in %s, %s, with %s. The %ss are %s. %s %s spoken at
			home. %s is reportedly %s's preferred language. %s %s.`,
			patient.FirstName,
			household.City,
			household.State.String(),
			describeHouseholdMembers(household.Members),
			patient.Guardian.ParentOrGuardian(),
			household.MaritalStatus.String(),
			strutil.JoinWithOxfordComma(household.Languages),
			spokenVerb,
			patient.LanguageSpokenBest,
			patient.FirstName,
			patient.FirstName,
			joinPatientLanguages(patient.Languages),
		)

		if _, err := w.insert("Home and Adaptive Functioning", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(home, docwrite.StyleNormal)
		return err
	}); err != nil {
		return err
	}

	return w.styled(colorTemplate, func() error {
		adaptive := fmt.Sprintf(`
			%s denied any concerns with %s functioning in the home setting//
			Per %s, %s has a history of %s (temper outbursts, oppositional
			behaviors, etc.) in the home setting. (Write details of behavioral
			difficulties). (Also include any history of sleep difficulties,
			daily living skills, poor hygiene, etc.)`,
			patient.Guardian.TitleName(),
			patient.PronounForms[2],
			patient.Guardian.TitleName(),
			patient.FirstName,
			clinicianPlaceholder,
		)
		_, err := w.insert(adaptive, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeSocialFunctioning() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient

		text := fmt.Sprintf(`
			%s was pleased to describe %s as a (insert adjective e.g.,
			affectionate) %s. %s reported that %s has many/several/one friends
			in %s peer group in school and on %s team/club/etc. %s socializes
			with friends outside of school and has a (positive/fair/poor)
			relationship with them. %s's hobbies include %s.`,
			patient.Guardian.TitleName(),
			patient.FirstName,
			patient.AgeGenderLabel(),
			patient.Guardian.TitleName(),
			patient.PronounForms[0],
			patient.PronounForms[2],
			patient.PronounForms[2],
			patient.FirstName,
			patient.FirstName,
			clinicianPlaceholder,
		)

		if _, err := w.insert("Social Functioning", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writePsychiatricHistory() error {
	if err := w.styled(colorIntake, func() error {
		_, err := w.insert("PSYCHIATRIC HISTORY", docwrite.StyleHeading1)
		return err
	}); err != nil {
		return err
	}

	steps := []func() error{
		w.writePastPsychiatricDiagnoses,
		w.writePastPsychiatricHospitalizations,
		w.writePastTherapeuticInterventions,
		w.writeSelfHarmHistory,
		w.writeAggressionHistory,
		w.writeViolenceAndTraumaHistory,
		w.writeChildrenServicesHistory,
		w.writeFamilyPsychiatricHistory,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writePastPsychiatricDiagnoses() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient
		text := fmt.Sprintf(
			"%s %s.",
			patient.FirstName,
			patient.PsychiatricHistory.PastDiagnoses.Transform(false),
		)

		if _, err := w.insert("Past Psychiatric Diagnoses", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writePastPsychiatricHospitalizations() error {
	return w.styled(colorTemplate, func() error {
		patient := w.intake.Patient
		text := fmt.Sprintf(
			"%s denied any history of past psychiatric hospitalizations for %s.",
			patient.Guardian.TitleName(),
			patient.FirstName,
		)

		if _, err := w.insert("Past Psychiatric Hospitalizations", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writePastTherapeuticInterventions() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient
		guardian := patient.Guardian
		interventions := patient.PsychiatricHistory.TherapeuticInterventions

		var texts []string
		if len(interventions) == 0 {
			texts = append(texts, fmt.Sprintf(
				"%s denied any history of therapeutic interventions.",
				guardian.TitleName(),
			))
		}
		for _, intervention := range interventions {
			texts = append(texts, fmt.Sprintf(`
				From %s-%s, %s engaged in therapy with %s due to %q at a
				frequency of %s. %s described the treatment as %q. Treatment
				was ended due to %q.`,
				intervention.Start,
				intervention.End,
				patient.FirstName,
				intervention.Therapist,
				intervention.Reason,
				intervention.Frequency,
				guardian.TitleName(),
				intervention.Effectiveness,
				intervention.ReasonEnded,
			))
		}

		if _, err := w.insert("Past Therapeutic Interventions", docwrite.StyleHeading2); err != nil {
			return err
		}
		for _, text := range texts {
			if _, err := w.insert(text, docwrite.StyleNormal); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *ReportWriter) writeSelfHarmHistory() error {
	return w.styled(colorIntake, func() error {
		if _, err := w.insert("Past Self-Injurious Behaviors and Suicidality", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(w.intake.Patient.PsychiatricHistory.SelfHarm.Transform(), docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeAggressionHistory() error {
	return w.styled(colorIntake, func() error {
		if _, err := w.insert("Past Severe Aggressive Behaviors and Homicidality", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(w.intake.Patient.PsychiatricHistory.Aggression.Transform(), docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeViolenceAndTraumaHistory() error {
	return w.styled(colorIntake, func() error {
		if _, err := w.insert("Exposure to Violence and Trauma", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(w.intake.Patient.PsychiatricHistory.ViolenceAndTrauma.Transform(), docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeChildrenServicesHistory() error {
	return w.styled(colorIntake, func() error {
		if _, err := w.insert(
			"Administration for Children's Services (ACS) Involvement",
			docwrite.StyleHeading2,
		); err != nil {
			return err
		}
		_, err := w.insert(w.intake.Patient.PsychiatricHistory.ChildrenServices.Transform(), docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeFamilyPsychiatricHistory() error {
	patient := w.intake.Patient
	familyDiagnoses := patient.PsychiatricHistory.FamilyDiagnoses.Transform()

	if familyDiagnoses != "" {
		return w.styled(colorIntake, func() error {
			if _, err := w.insert("Family Psychiatric History", docwrite.StyleHeading2); err != nil {
				return err
			}
			_, err := w.insert(familyDiagnoses, docwrite.StyleNormal)
			return err
		})
	}

	return w.styled(colorTemplate, func() error {
		text := fmt.Sprintf(`
			%s's family history is largely unremarkable for psychiatric
			illnesses. %s denied any family history related to homicidality,
			suicidality, depression, bipolar disorder,
			attention-deficit/hyperactivity disorder, autism spectrum
			disorder, learning disorders, psychotic disorders, eating
			disorders, oppositional defiant or conduct disorders, substance
			abuse, panic, generalized anxiety, or obsessive-compulsive
			disorders. Information regarding %s's family psychiatric history
			was deferred.`,
			patient.FirstName,
			patient.Guardian.TitleName(),
			patient.FirstName,
		)

		if _, err := w.insert("Family Psychiatric History", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeMedicalHistory() error {
	return w.styled(colorTemplate, func() error {
		patient := w.intake.Patient

		text := fmt.Sprintf(`
			%s's medical history is unremarkable for significant medical
			conditions. %s is not currently taking any medications for chronic
			medical conditions. %s wears prescription glasses in home and
			school settings. %s does/does not require a hearing device. %s
			denied any history of seizures, head trauma, migraines, meningitis
			or encephalitis.`,
			patient.FirstName,
			strutil.CapitalizeFirst(patient.PronounForms[0]),
			patient.FirstName,
			strutil.CapitalizeFirst(patient.PronounForms[0]),
			patient.Guardian.TitleName(),
		)

		if _, err := w.insert("MEDICAL HISTORY", docwrite.StyleHeading1); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeCurrentPsychiatricFunctioning() error {
	if err := w.styled(colorIntake, func() error {
		_, err := w.insert("CURRENT PSYCHIATRIC FUNCTIONING", docwrite.StyleHeading1)
		return err
	}); err != nil {
		return err
	}
	if err := w.writeCurrentPsychiatricMedications(); err != nil {
		return err
	}
	if err := w.writeDiagnosticConsiderations(); err != nil {
		return err
	}
	return w.writeDeniedSymptoms()
}

func (w *ReportWriter) writeCurrentPsychiatricMedications() error {
	return w.styled(colorIntake, func() error {
		patient := w.intake.Patient

		text := fmt.Sprintf(`
			%s is currently prescribed a daily/twice daily oral course of %s
			for %s. %s is being treated by Doctortype, DoctorName,
			monthly/weekly/biweekly. The medication has been
			ineffective/effective.`,
			patient.FirstName,
			clinicianPlaceholder,
			clinicianPlaceholder,
			strutil.CapitalizeFirst(patient.PronounForms[0]),
		)

		if _, err := w.insert("Current Psychiatric Medications", docwrite.StyleHeading2); err != nil {
			return err
		}
		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) writeDiagnosticConsiderations() error {
	return w.styled(colorTesting, func() error {
		patient := w.intake.Patient

		opening := fmt.Sprintf(`
			[Rule out presenting diagnoses, using headlines and KSADS/DSM
			criteria. Examples of headlines include: Temper Outbursts (ending
			should include "%s denied any consistent patterns of irritability
			for %s" if applicable), Inattention and Hyperactivity,
			Autism-Related Symptoms, Oppositional Defiant Behaviors, etc.].`,
			patient.Guardian.TitleName(),
			patient.FirstName,
		)
		trailing := fmt.Sprintf(`
			(Ex: Though %s is generally a %s child, %s continues to have
			difficulties with temper tantrums...).`,
			patient.FirstName,
			clinicianPlaceholder,
			patient.PronounForms[0],
		)

		paragraph, err := w.insert(opening, docwrite.StyleNormal)
		if err != nil {
			return err
		}
		emphasis := paragraph.AddRun("Establish a baseline first for temper outbursts")
		emphasis.Font.Bold = true
		paragraph.AddRun(" " + strutil.RemoveExcessWhitespace(trailing))

		docwrite.FormatParagraphs([]*docwrite.Paragraph{paragraph}, docwrite.Options{
			Italic: docwrite.Bool(true),
		})
		return nil
	})
}

func (w *ReportWriter) writeDeniedSymptoms() error {
	return w.styled(colorTesting, func() error {
		patient := w.intake.Patient

		text := fmt.Sprintf(`
			%s and %s denied any current significant symptoms related to mood,
			suicidality, psychosis, eating, oppositional or conduct behaviors,
			substance abuse, autism, tics, inattention/hyperactivity,
			enuresis/encopresis, trauma, sleep, panic, anxiety or
			obsessive-compulsive disorders.`,
			patient.Guardian.TitleName(),
			patient.FirstName,
		)

		_, err := w.insert(text, docwrite.StyleNormal)
		return err
	})
}

func (w *ReportWriter) addPageBreak() error {
	_, err := w.report.InsertPageBreakBefore(w.anchor)
	return err
}

// appendClosingStatement copies the closing boilerplate onto the end of the
// report, after the testing sections the template carries.
func (w *ReportWriter) appendClosingStatement() error {
	if w.closing == nil {
		return nil
	}
	w.report.Append(w.closing)
	return nil
}

// replacePatientInformation resolves every placeholder token in one late
// pass, headers and footers included.
func (w *ReportWriter) replacePatientInformation() error {
	patient := w.intake.Patient
	replacements := map[string]string{
		"{{FULL_NAME}}":          patient.FullName(),
		"{{PREFERRED_NAME}}":     patient.PreferredName(),
		"{{DATE_OF_BIRTH}}":      patient.DateOfBirth.Format("01/02/2006"),
		"{{REPORTING_GUARDIAN}}": patient.Guardian.TitleName(),
		"{{AGED_GENDER}}":        patient.AgeGenderLabel(),
		"{{PRONOUN_0}}":          patient.PronounForms[0],
		"{{PRONOUN_1}}":          patient.PronounForms[1],
		"{{PRONOUN_2}}":          patient.PronounForms[2],
		"{{PRONOUN_4}}":          patient.PronounForms[4],
	}

	docwrite.NewReplacer(w.report).ReplaceAll(replacements)
	return nil
}

func (w *ReportWriter) applyCorrections() error {
	corrector := NewGrammarCorrector(
		w.report,
		w.intake.Patient.PronounForms[0] == "they",
		true,
	)
	return corrector.Correct()
}

// addSignatures inserts each clinician's signature image above the
// paragraph carrying their name. One signatory's line lacks the underlined
// spacer paragraph the others have, so their image anchors on the name
// paragraph itself.
func (w *ReportWriter) addSignatures() error {
	if w.signatureDir == "" {
		return nil
	}

	signatures, err := filepath.Glob(filepath.Join(w.signatureDir, "*.png"))
	if err != nil {
		return fmt.Errorf("listing signatures: %w", err)
	}

	for _, signature := range signatures {
		name := strings.ReplaceAll(
			strings.TrimSuffix(filepath.Base(signature), ".png"),
			"_", " ",
		)

		paragraphs := w.report.Paragraphs()
		index := -1
		for i, paragraph := range paragraphs {
			if strings.HasPrefix(strings.ToLower(paragraph.Text()), name) {
				index = i
				break
			}
		}
		if index < 0 {
			continue
		}
		if name != "michael p. milham" && index > 0 {
			index--
		}

		data, err := os.ReadFile(signature)
		if err != nil {
			return fmt.Errorf("reading signature %s: %w", signature, err)
		}
		image, err := w.report.InsertImageBefore(paragraphs[index], signature, data)
		if err != nil {
			return err
		}
		if name != "michael p. milham" {
			if _, err := w.report.InsertParagraphBefore(image, "", docwrite.StyleNormal); err != nil {
				return err
			}
		}

		w.logger.WithFields(logrus.Fields{
			"report_id": w.reportID.String(),
			"signatory": name,
		}).Debug("Inserted signature")
	}
	return nil
}

// describeHouseholdMembers renders the people the patient lives with.
func describeHouseholdMembers(members []domain.HouseholdMember) string {
	descriptions := make([]string, len(members))
	for i, member := range members {
		descriptions[i] = fmt.Sprintf(
			"%s %s (%s)",
			member.Relationship.Transform(),
			member.Name,
			member.RelationshipQuality.String()+" relationship",
		)
	}
	return strutil.JoinWithOxfordComma(descriptions)
}

// joinPatientLanguages renders the patient's language fluencies, grouping
// languages by fluency level.
func joinPatientLanguages(languages []domain.Language) string {
	byFluency := make(map[domain.LanguageFluency][]string)
	for _, language := range languages {
		byFluency[language.Fluency] = append(byFluency[language.Fluency], language.Name)
	}

	var descriptions []string
	for _, fluency := range []domain.LanguageFluency{
		domain.FluencyFluent,
		domain.FluencyProficient,
		domain.FluencyConversational,
	} {
		if names, ok := byFluency[fluency]; ok {
			descriptions = append(descriptions, fmt.Sprintf(
				"%s in %s",
				fluency.String(),
				strutil.JoinWithOxfordComma(names),
			))
		}
	}
	prependIs := len(descriptions) > 0
	if names, ok := byFluency[domain.FluencyBasic]; ok {
		descriptions = append(descriptions, "has basic skills in "+strutil.JoinWithOxfordComma(names))
	}

	text := strutil.JoinWithOxfordComma(descriptions)
	if prependIs {
		text = "is " + text
	}
	return text
}

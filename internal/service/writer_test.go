package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctk-report-generator/internal/domain"
	"github.com/ctk-report-generator/pkg/docwrite"
)

func testTemplate() *docwrite.Document {
	doc := docwrite.New()
	doc.AddParagraph("NEUROPSYCHOLOGICAL EVALUATION REPORT", docwrite.StyleTitle)
	doc.AddParagraph("Name: {{FULL_NAME}}", docwrite.StyleNormal)
	doc.AddParagraph("Date of Birth: {{DATE_OF_BIRTH}}", docwrite.StyleNormal)
	doc.AddParagraph(insertionAnchor, docwrite.StyleHeading1)
	doc.AddParagraph(
		"{{PREFERRED_NAME}} presented as alert and oriented. {{PRONOUN_0}} engages readily with examiners.",
		docwrite.StyleNormal,
	)
	doc.AddParagraph("", docwrite.StyleNormal)
	doc.AddParagraph("Jane Doe, Ph.D.", docwrite.StyleNormal)
	doc.AddParagraph("Michael P. Milham, M.D., Ph.D.", docwrite.StyleNormal)

	footer := &docwrite.Paragraph{Style: docwrite.StyleNormal}
	footer.AddRun("{{FULL_NAME}} | CONFIDENTIAL")
	section := doc.Sections()[0]
	section.Footer = append(section.Footer, footer)
	return doc
}

func testIntake(t *testing.T) *domain.IntakeInformation {
	t.Helper()

	timezone, err := time.LoadLocation("US/Eastern")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	intake, err := NewParser(timezone, logger).Parse(testRecord())
	require.NoError(t, err)
	return intake
}

func testWriter(t *testing.T, closing *docwrite.Document, signatureDir string) *ReportWriter {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	writer, err := NewReportWriter(testIntake(t), testTemplate(), closing, signatureDir, logger)
	require.NoError(t, err)
	return writer
}

func TestNewReportWriterRequiresAnchorHeading(t *testing.T) {
	doc := docwrite.New()
	doc.AddParagraph("NEUROPSYCHOLOGICAL EVALUATION REPORT", docwrite.StyleTitle)

	logger := logrus.New()
	_, err := NewReportWriter(testIntake(t), doc, nil, "", logger)

	var structErr *domain.TemplateStructureError
	require.ErrorAs(t, err, &structErr)
	assert.Contains(t, structErr.Error(), insertionAnchor)
}

func TestTransformWritesEverySection(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	text := writer.Document().Text()
	headings := []string{
		"REASON FOR VISIT",
		"DEVELOPMENTAL HISTORY",
		"Prenatal and Birth History",
		"Developmental Milestones",
		"Early Educational Interventions",
		"ACADEMIC AND EDUCATIONAL HISTORY",
		"Previous Testing",
		"Educational History",
		"SOCIAL HISTORY",
		"Home and Adaptive Functioning",
		"Social Functioning",
		"PSYCHIATRIC HISTORY",
		"Past Psychiatric Diagnoses",
		"Past Psychiatric Hospitalizations",
		"Past Therapeutic Interventions",
		"Past Self-Injurious Behaviors and Suicidality",
		"Past Severe Aggressive Behaviors and Homicidality",
		"Exposure to Violence and Trauma",
		"Administration for Children's Services (ACS) Involvement",
		"Family Psychiatric History",
		"MEDICAL HISTORY",
		"CURRENT PSYCHIATRIC FUNCTIONING",
		"Current Psychiatric Medications",
	}
	for _, heading := range headings {
		assert.Equal(t, 1, strings.Count(text, heading), heading)
	}
}

func TestTransformInsertsContentBeforeAnchor(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	doc := writer.Document()
	anchor := doc.FindParagraph(insertionAnchor)
	require.NotNil(t, anchor)
	anchorIndex := doc.ParagraphIndexOf(anchor)

	reason := doc.FindParagraph("REASON FOR VISIT")
	require.NotNil(t, reason)
	assert.Less(t, doc.ParagraphIndexOf(reason), anchorIndex)

	medications := doc.FindParagraph("Current Psychiatric Medications")
	require.NotNil(t, medications)
	assert.Less(t, doc.ParagraphIndexOf(medications), anchorIndex)
}

func TestTransformResolvesEveryPlaceholderToken(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	doc := writer.Document()
	assert.NotContains(t, doc.Text(), "{{")

	footer := doc.Sections()[0].Footer
	require.Len(t, footer, 1)
	assert.Equal(t, `Lea "Lee" Avatar | CONFIDENTIAL`, footer[0].Text())
}

func TestTransformKeepsClinicianPlaceholders(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	assert.Contains(t, writer.Document().Text(), clinicianPlaceholder)
}

func TestTransformCorrectsPronounConjugation(t *testing.T) {
	// The fixture patient uses they/them pronouns, so the template's
	// "{{PRONOUN_0}} engages readily" sentence needs both a verb and a
	// capitalization fix after substitution.
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	text := writer.Document().Text()
	assert.Contains(t, text, "They engage readily with examiners.")
	assert.NotContains(t, text, "they engages")
}

func TestTransformKeepsTemplateCapitalization(t *testing.T) {
	// The sentence segmenter splits template prose after "etc.)"; fragments
	// without a "they" subject must keep their lowercase start.
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	text := writer.Document().Text()
	assert.Contains(t, text, "etc.) in the home setting")
	assert.NotContains(t, text, "etc.) In the home setting")
}

func TestTransformBuildsScoreTable(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	var table *docwrite.Table
	for _, block := range writer.Document().Blocks() {
		if found, ok := block.(*docwrite.Table); ok {
			table = found
			break
		}
	}
	require.NotNil(t, table)
	assert.Equal(t, "Table Grid", table.Style)
	require.Len(t, table.Rows, 7)
	require.Len(t, table.Rows[0].Cells, 4)

	header := table.Rows[0].Cells[0]
	assert.Equal(t, "Domain/Index/Subtest", header.Text())
	assert.Equal(t, "#D9D9D9", header.Fill)
	for _, row := range table.Rows {
		assert.Equal(t, 1, row.Height)
		assert.True(t, row.ExactHeight)
	}
}

func TestTransformColorsSectionsByContentSource(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	doc := writer.Document()

	reason := doc.FindParagraph("REASON FOR VISIT")
	require.NotNil(t, reason)
	require.NotEmpty(t, reason.Runs)
	require.NotNil(t, reason.Runs[0].Font.Color)
	assert.Equal(t, "#B2A1C7", reason.Runs[0].Font.Color.Hex())

	hospitalizations := doc.FindParagraph("Past Psychiatric Hospitalizations")
	require.NotNil(t, hospitalizations)
	require.NotNil(t, hospitalizations.Runs[0].Font.Color)
	assert.Equal(t, "#F79646", hospitalizations.Runs[0].Font.Color.Hex())

	denied := doc.FindParagraph("denied any current significant symptoms")
	require.NotNil(t, denied)
	require.NotNil(t, denied.Runs[0].Font.Color)
	assert.Equal(t, "#9BBB59", denied.Runs[0].Font.Color.Hex())
}

func TestTransformAddsPageBreakBeforeAnchor(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	doc := writer.Document()
	anchor := doc.FindParagraph(insertionAnchor)
	anchorIndex := doc.ParagraphIndexOf(anchor)

	broke := false
	for i, paragraph := range doc.Paragraphs() {
		if paragraph.PageBreak && i < anchorIndex {
			broke = true
		}
	}
	assert.True(t, broke)
}

func TestTransformAppendsClosingStatement(t *testing.T) {
	closing := docwrite.New()
	closing.AddParagraph(
		"It was a pleasure meeting {{PREFERRED_NAME}} and working with your family.",
		docwrite.StyleNormal,
	)

	writer := testWriter(t, closing, "")
	require.NoError(t, writer.Transform())

	paragraphs := writer.Document().Paragraphs()
	last := paragraphs[len(paragraphs)-1]
	assert.Equal(t, "It was a pleasure meeting Lee and working with your family.", last.Text())
}

func TestTransformInsertsSignatures(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"jane_doe.png", "michael_p._milham.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644))
	}

	writer := testWriter(t, nil, dir)
	require.NoError(t, writer.Transform())

	doc := writer.Document()
	var images []*docwrite.Image
	for _, block := range doc.Blocks() {
		if image, ok := block.(*docwrite.Image); ok {
			images = append(images, image)
		}
	}
	require.Len(t, images, 2)

	// One signatory's image sits directly above the name line; the others
	// get a spacer paragraph between image and name.
	blocks := doc.Blocks()
	for i, block := range blocks {
		image, ok := block.(*docwrite.Image)
		if !ok {
			continue
		}
		if strings.Contains(image.Path, "milham") {
			next, ok := blocks[i+1].(*docwrite.Paragraph)
			require.True(t, ok)
			assert.Contains(t, next.Text(), "Michael P. Milham")
		} else {
			next, ok := blocks[i+1].(*docwrite.Paragraph)
			require.True(t, ok)
			assert.Equal(t, "", next.Text())
		}
	}
}

func TestTransformSkipsSignaturesWithoutDirectory(t *testing.T) {
	writer := testWriter(t, nil, "")
	require.NoError(t, writer.Transform())

	for _, block := range writer.Document().Blocks() {
		_, ok := block.(*docwrite.Image)
		assert.False(t, ok)
	}
}

func TestDescribeHouseholdMembers(t *testing.T) {
	members := []domain.HouseholdMember{
		{
			Name:                "Rory",
			Relationship:        NewHouseholdRelationship(domain.HouseholdMother, ""),
			RelationshipQuality: domain.QualityGood,
		},
		{
			Name:                "Sam",
			Relationship:        NewHouseholdRelationship(domain.HouseholdBrother, ""),
			RelationshipQuality: domain.QualityExcellent,
		},
	}

	assert.Equal(
		t,
		"mother Rory (good relationship) and brother Sam (excellent relationship)",
		describeHouseholdMembers(members),
	)
}

func TestJoinPatientLanguages(t *testing.T) {
	tests := []struct {
		name      string
		languages []domain.Language
		expected  string
	}{
		{
			name: "grouped by fluency",
			languages: []domain.Language{
				{Name: "English", Fluency: domain.FluencyFluent},
				{Name: "Spanish", Fluency: domain.FluencyFluent},
				{Name: "French", Fluency: domain.FluencyBasic},
			},
			expected: "is fluent in English and Spanish and has basic skills in French",
		},
		{
			name: "single fluency",
			languages: []domain.Language{
				{Name: "English", Fluency: domain.FluencyConversational},
			},
			expected: "is conversational in English",
		},
		{
			name: "basic only",
			languages: []domain.Language{
				{Name: "French", Fluency: domain.FluencyBasic},
			},
			expected: "has basic skills in French",
		},
		{
			name:      "none",
			languages: nil,
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, joinPatientLanguages(tt.languages))
		})
	}
}

package service

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/ctk-report-generator/pkg/docwrite"
	"github.com/ctk-report-generator/pkg/strutil"
)

// GrammarCorrector fixes verb conjugations for patients with "they"
// pronouns and capitalizes sentence-initial words. Generated fragments are
// written for a singular subject, so sentences like "They hears it" appear
// whenever the pronoun slots in; the corrector rewrites them in place
// through the style-preserving replacer.
type GrammarCorrector struct {
	replacer              *docwrite.Replacer
	document              *docwrite.Document
	correctThey           bool
	correctCapitalization bool
}

// NewGrammarCorrector creates a corrector for a document. They-correction
// only makes sense when the patient's subject pronoun is "they".
func NewGrammarCorrector(document *docwrite.Document, correctThey, correctCapitalization bool) *GrammarCorrector {
	return &GrammarCorrector{
		replacer:              docwrite.NewReplacer(document),
		document:              document,
		correctThey:           correctThey,
		correctCapitalization: correctCapitalization,
	}
}

// Correct applies the enabled corrections to every body paragraph.
func (g *GrammarCorrector) Correct() error {
	if !g.correctThey && !g.correctCapitalization {
		return nil
	}

	for _, paragraph := range g.document.Paragraphs() {
		if err := g.correctParagraph(paragraph); err != nil {
			return err
		}
	}
	return nil
}

func (g *GrammarCorrector) correctParagraph(paragraph *docwrite.Paragraph) error {
	text := paragraph.Text()
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		return fmt.Errorf("segmenting paragraph: %w", err)
	}

	for _, sentence := range doc.Sentences() {
		if err := g.correctSentence(sentence.Text); err != nil {
			return err
		}
	}
	return nil
}

// correctSentence touches only sentences whose subject pronoun work applies:
// anything without a "they" token is left exactly as the template wrote it,
// including sentence fragments the segmenter splits after abbreviations.
func (g *GrammarCorrector) correctSentence(sentence string) error {
	if !containsThey(sentence) {
		return nil
	}

	if g.correctThey {
		corrected, err := correctTheyConjugation(sentence)
		if err != nil {
			return err
		}
		if corrected != sentence {
			g.replacer.Replace(sentence, corrected)
			sentence = corrected
		}
	}

	if g.correctCapitalization {
		if capitalized := strutil.CapitalizeFirst(sentence); capitalized != sentence {
			g.replacer.Replace(sentence, capitalized)
		}
	}
	return nil
}

func containsThey(sentence string) bool {
	for _, word := range strings.Fields(sentence) {
		if strings.EqualFold(strings.Trim(word, ".,;:!?\"'"), "they") {
			return true
		}
	}
	return false
}

// correctTheyConjugation rewrites third-person-singular verbs whose subject
// is "they". For chained forms like "has been waiting" the auxiliary is the
// first verb token, so correcting the first verb after the subject is
// sufficient. Words the pluralizer does not recognize are left untouched.
func correctTheyConjugation(sentence string) (string, error) {
	doc, err := prose.NewDocument(sentence, prose.WithExtraction(false))
	if err != nil {
		return "", fmt.Errorf("tagging sentence: %w", err)
	}

	tokens := doc.Tokens()

	// Token offsets within the sentence, resolved left to right so repeated
	// words land on the right occurrence.
	offsets := make([]int, len(tokens))
	cursor := 0
	for i, token := range tokens {
		index := strings.Index(sentence[cursor:], token.Text)
		if index < 0 {
			offsets[i] = -1
			continue
		}
		offsets[i] = cursor + index
		cursor = offsets[i] + len(token.Text)
	}

	subjectArmed := false
	delta := 0 // offset shift caused by earlier replacements
	for i, token := range tokens {
		if strings.EqualFold(token.Text, "they") {
			subjectArmed = true
			continue
		}
		if !subjectArmed || !strings.HasPrefix(token.Tag, "VB") {
			continue
		}

		// The tag itself cannot be trusted here: the tagger conditions on
		// the subject, so a singular form right after "they" comes back VBP
		// ("They engages" tags engages as VBP). Morphology decides instead;
		// pluralizeVerb refuses words that do not look like singular
		// conjugations.
		plural, ok := pluralizeVerb(token.Text)
		if ok && offsets[i] >= 0 {
			start := offsets[i] + delta
			sentence = sentence[:start] + plural + sentence[start+len(token.Text):]
			delta += len(plural) - len(token.Text)
		}
		subjectArmed = false
	}
	return sentence, nil
}

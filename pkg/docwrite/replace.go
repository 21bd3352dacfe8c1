package docwrite

import "strings"

// Replacer performs style-preserving find/replace across a document's body
// paragraphs and every section header and footer.
type Replacer struct {
	doc *Document
}

// NewReplacer wraps a document for global text replacement.
func NewReplacer(doc *Document) *Replacer {
	return &Replacer{doc: doc}
}

func (r *Replacer) paragraphs() []*Paragraph {
	paragraphs := r.doc.Paragraphs()
	for _, section := range r.doc.Sections() {
		paragraphs = append(paragraphs, section.Header...)
		paragraphs = append(paragraphs, section.Footer...)
	}
	return paragraphs
}

// Replace substitutes every occurrence of find in the document, including
// occurrences that span run boundaries. The replacement text takes the
// formatting of the first character of the matched text.
func (r *Replacer) Replace(find, replace string) {
	for _, p := range r.paragraphs() {
		replaceInParagraph(p, find, replace)
	}
}

// ReplaceAll applies every find/replace pair in the map.
func (r *Replacer) ReplaceAll(pairs map[string]string) {
	for find, replace := range pairs {
		r.Replace(find, replace)
	}
}

// Contains reports whether find occurs anywhere in the replacer's scope.
func (r *Replacer) Contains(find string) bool {
	for _, p := range r.paragraphs() {
		if strings.Contains(p.Text(), find) {
			return true
		}
	}
	return false
}

type matchSpan struct {
	run  *Run
	from int
	to   int
}

func replaceInParagraph(p *Paragraph, find, replace string) {
	if find == "" || !strings.Contains(p.Text(), find) {
		return
	}

	// Matches contained in a single run keep that run's formatting exactly.
	for _, run := range p.Runs {
		if strings.Contains(run.Text, find) {
			run.Text = strings.ReplaceAll(run.Text, find, replace)
		}
	}

	// Remaining matches span run boundaries. Locate each match in the
	// concatenated text, then splice back to front so the byte offsets of
	// earlier runs stay valid while trailing runs shrink.
	for {
		text := p.Text()
		start := strings.Index(text, find)
		if start < 0 {
			return
		}
		end := start + len(find)

		var spans []matchSpan
		offset := 0
		for _, run := range p.Runs {
			runStart := offset
			runEnd := offset + len(run.Text)
			offset = runEnd
			if runEnd <= start || runStart >= end {
				continue
			}
			from := start - runStart
			if from < 0 {
				from = 0
			}
			to := end - runStart
			if to > len(run.Text) {
				to = len(run.Text)
			}
			spans = append(spans, matchSpan{run: run, from: from, to: to})
		}
		if len(spans) == 0 {
			return
		}

		for i := len(spans) - 1; i >= 1; i-- {
			s := spans[i]
			s.run.Text = s.run.Text[:s.from] + s.run.Text[s.to:]
		}
		first := spans[0]
		first.run.Text = first.run.Text[:first.from] + replace + first.run.Text[first.to:]

		if strings.Contains(replace, find) {
			// A self-referencing replacement would loop forever.
			return
		}
	}
}

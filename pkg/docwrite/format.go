package docwrite

// Options is a sparse formatting request. Nil fields leave the existing
// formatting untouched.
type Options struct {
	LineSpacing *float64
	SpaceBefore *float64
	SpaceAfter  *float64
	Alignment   *Alignment
	Bold        *bool
	Italic      *bool
	Underline   *bool
	FontSize    *int
	FontColor   *RGB
	Fill        *RGB
}

// Bool returns a pointer to v for use in Options.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v for use in Options.
func Int(v int) *int { return &v }

// Float returns a pointer to v for use in Options.
func Float(v float64) *float64 { return &v }

// Color returns a pointer to an RGB value for use in Options.
func Color(r, g, b uint8) *RGB { return &RGB{R: r, G: g, B: b} }

// Align returns a pointer to an alignment for use in Options.
func Align(a Alignment) *Alignment { return &a }

// FormatParagraphs applies the set fields of opts to every given paragraph
// and each of its runs.
func FormatParagraphs(paragraphs []*Paragraph, opts Options) {
	for _, p := range paragraphs {
		if opts.LineSpacing != nil {
			p.Format.LineSpacing = *opts.LineSpacing
		}
		if opts.SpaceBefore != nil {
			p.Format.SpaceBefore = *opts.SpaceBefore
		}
		if opts.SpaceAfter != nil {
			p.Format.SpaceAfter = *opts.SpaceAfter
		}
		if opts.Alignment != nil {
			p.Format.Alignment = *opts.Alignment
		}
		for _, run := range p.Runs {
			applyFont(&run.Font, opts)
		}
	}
}

// FormatCell applies the set fields of opts to a table cell, its paragraphs
// and runs. Fill sets the cell background.
func FormatCell(cell *Cell, opts Options) {
	if opts.Fill != nil {
		cell.Fill = opts.Fill.Hex()
	}
	FormatParagraphs(cell.Paragraphs, opts)
}

func applyFont(font *Font, opts Options) {
	if opts.Bold != nil {
		font.Bold = *opts.Bold
	}
	if opts.Italic != nil {
		font.Italic = *opts.Italic
	}
	if opts.Underline != nil {
		font.Underline = *opts.Underline
	}
	if opts.FontSize != nil {
		font.Size = *opts.FontSize
	}
	if opts.FontColor != nil {
		color := *opts.FontColor
		font.Color = &color
	}
}

// Package docwrite implements a rich-text document model for report
// generation: paragraphs split into uniformly-styled runs, tables, images,
// and section headers/footers, with style-preserving find/replace, sparse
// formatting, and document composition.
//
// The model is mutated in place by a single writer; concurrent readers of a
// document being written are not supported. Templates loaded from disk are
// cached immutably and deep-copied before mutation.
package docwrite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAnchorNotFound is returned when an insertion anchor is not part of the
// document.
var ErrAnchorNotFound = errors.New("anchor block not found in document")

// RGB is a 24-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex renders the color as an upper-case hexadecimal code.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Alignment is a paragraph alignment.
type Alignment string

// Paragraph alignments.
const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Paragraph style names recognized by the report templates.
const (
	StyleNormal   = "Normal"
	StyleTitle    = "Title"
	StyleHeading1 = "Heading 1"
	StyleHeading2 = "Heading 2"
	StyleHeading3 = "Heading 3"
)

// Font is the character formatting of a run. The zero value inherits
// everything from the paragraph style.
type Font struct {
	Bold        bool `json:"bold,omitempty"`
	Italic      bool `json:"italic,omitempty"`
	Underline   bool `json:"underline,omitempty"`
	Superscript bool `json:"superscript,omitempty"`
	Size        int  `json:"size,omitempty"`
	Color       *RGB `json:"color,omitempty"`
}

// Run is a contiguous span of uniformly-styled text within a paragraph.
type Run struct {
	Text string `json:"text"`
	Font Font   `json:"font,omitempty"`
}

// ParagraphFormat is the block-level formatting of a paragraph.
type ParagraphFormat struct {
	LineSpacing float64   `json:"line_spacing,omitempty"`
	SpaceBefore float64   `json:"space_before,omitempty"`
	SpaceAfter  float64   `json:"space_after,omitempty"`
	Alignment   Alignment `json:"alignment,omitempty"`
}

// Paragraph is a styled sequence of runs. PageBreak marks a paragraph that
// forces a page break before the following content.
type Paragraph struct {
	Style     string          `json:"style,omitempty"`
	Runs      []*Run          `json:"runs"`
	Format    ParagraphFormat `json:"format,omitempty"`
	PageBreak bool            `json:"page_break,omitempty"`
}

// Text concatenates the text of all runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// AddRun appends a run with inherited formatting and returns it.
func (p *Paragraph) AddRun(text string) *Run {
	run := &Run{Text: text}
	p.Runs = append(p.Runs, run)
	return run
}

// Clone deep-copies the paragraph.
func (p *Paragraph) Clone() *Paragraph {
	clone := &Paragraph{Style: p.Style, Format: p.Format, PageBreak: p.PageBreak}
	clone.Runs = make([]*Run, len(p.Runs))
	for i, run := range p.Runs {
		copied := *run
		if run.Font.Color != nil {
			color := *run.Font.Color
			copied.Font.Color = &color
		}
		clone.Runs[i] = &copied
	}
	return clone
}

// Cell is one table cell.
type Cell struct {
	Paragraphs []*Paragraph `json:"paragraphs"`
	Fill       string       `json:"fill,omitempty"`
	Width      int          `json:"width,omitempty"`
}

// Text returns the text of the cell's paragraphs joined by newlines.
func (c *Cell) Text() string {
	texts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		texts[i] = p.Text()
	}
	return strings.Join(texts, "\n")
}

// SetText replaces the cell content with a single plain paragraph.
func (c *Cell) SetText(text string) {
	paragraph := &Paragraph{Style: StyleNormal}
	paragraph.AddRun(text)
	c.Paragraphs = []*Paragraph{paragraph}
}

// Row is one table row.
type Row struct {
	Cells       []*Cell `json:"cells"`
	Height      int     `json:"height,omitempty"`
	ExactHeight bool    `json:"exact_height,omitempty"`
}

// Table is a grid of cells.
type Table struct {
	Rows  []*Row `json:"rows"`
	Style string `json:"style,omitempty"`
}

// Clone deep-copies the table.
func (t *Table) Clone() *Table {
	clone := &Table{Style: t.Style}
	clone.Rows = make([]*Row, len(t.Rows))
	for i, row := range t.Rows {
		copied := &Row{Height: row.Height, ExactHeight: row.ExactHeight}
		copied.Cells = make([]*Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cellCopy := &Cell{Fill: cell.Fill, Width: cell.Width}
			cellCopy.Paragraphs = make([]*Paragraph, len(cell.Paragraphs))
			for k, p := range cell.Paragraphs {
				cellCopy.Paragraphs[k] = p.Clone()
			}
			copied.Cells[j] = cellCopy
		}
		clone.Rows[i] = copied
	}
	return clone
}

// Image is an embedded picture. Data carries the raw bytes so composition
// between documents keeps media intact; Path records the source asset.
type Image struct {
	Path string `json:"path,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// Clone deep-copies the image.
func (img *Image) Clone() *Image {
	data := make([]byte, len(img.Data))
	copy(data, img.Data)
	return &Image{Path: img.Path, Data: data}
}

// Block is one top-level element of a document body.
type Block interface {
	isBlock()
}

func (*Paragraph) isBlock() {}
func (*Table) isBlock()     {}
func (*Image) isBlock()     {}

// Section carries the header and footer paragraphs of one document section.
type Section struct {
	Header []*Paragraph `json:"header,omitempty"`
	Footer []*Paragraph `json:"footer,omitempty"`
}

// Document is an ordered sequence of styled blocks plus per-section
// header/footer paragraphs.
type Document struct {
	blocks   []Block
	sections []*Section
}

// New creates an empty document with a single section.
func New() *Document {
	return &Document{sections: []*Section{{}}}
}

// Blocks returns the document body in order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Sections returns the document sections.
func (d *Document) Sections() []*Section {
	return d.sections
}

// Paragraphs returns the top-level body paragraphs in order. Paragraphs
// inside table cells are not included, matching how anchors and global
// replacements address the document.
func (d *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, block := range d.blocks {
		if p, ok := block.(*Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Text returns the document's body text, one line per paragraph.
func (d *Document) Text() string {
	paragraphs := d.Paragraphs()
	lines := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// AddParagraph appends a paragraph with a single run and returns it.
func (d *Document) AddParagraph(text, style string) *Paragraph {
	paragraph := &Paragraph{Style: style}
	paragraph.AddRun(text)
	d.blocks = append(d.blocks, paragraph)
	return paragraph
}

// AddTable appends an empty rows-by-cols table and returns it.
func (d *Document) AddTable(rows, cols int) *Table {
	table := &Table{}
	for i := 0; i < rows; i++ {
		row := &Row{}
		for j := 0; j < cols; j++ {
			cell := &Cell{}
			cell.SetText("")
			row.Cells = append(row.Cells, cell)
		}
		table.Rows = append(table.Rows, row)
	}
	d.blocks = append(d.blocks, table)
	return table
}

// FindParagraph returns the first body paragraph whose text contains substr,
// or nil when no paragraph matches.
func (d *Document) FindParagraph(substr string) *Paragraph {
	for _, p := range d.Paragraphs() {
		if strings.Contains(p.Text(), substr) {
			return p
		}
	}
	return nil
}

// FindParagraphFunc returns the first body paragraph accepted by match, or
// nil.
func (d *Document) FindParagraphFunc(match func(*Paragraph) bool) *Paragraph {
	for _, p := range d.Paragraphs() {
		if match(p) {
			return p
		}
	}
	return nil
}

// ParagraphIndexOf returns the position of p among the body paragraphs, or
// -1 when p is not part of the document.
func (d *Document) ParagraphIndexOf(target *Paragraph) int {
	for i, p := range d.Paragraphs() {
		if p == target {
			return i
		}
	}
	return -1
}

func (d *Document) blockIndexOf(anchor Block) int {
	for i, block := range d.blocks {
		if block == anchor {
			return i
		}
	}
	return -1
}

// InsertBefore inserts a block immediately before the anchor.
func (d *Document) InsertBefore(anchor, block Block) error {
	index := d.blockIndexOf(anchor)
	if index < 0 {
		return ErrAnchorNotFound
	}
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[index+1:], d.blocks[index:])
	d.blocks[index] = block
	return nil
}

// InsertParagraphBefore inserts a single-run paragraph before the anchor and
// returns it.
func (d *Document) InsertParagraphBefore(anchor Block, text, style string) (*Paragraph, error) {
	paragraph := &Paragraph{Style: style}
	paragraph.AddRun(text)
	if err := d.InsertBefore(anchor, paragraph); err != nil {
		return nil, err
	}
	return paragraph, nil
}

// InsertImageBefore inserts an image block before the anchor and returns it.
func (d *Document) InsertImageBefore(anchor Block, path string, data []byte) (*Image, error) {
	image := &Image{Path: path, Data: data}
	if err := d.InsertBefore(anchor, image); err != nil {
		return nil, err
	}
	return image, nil
}

// InsertPageBreakBefore inserts a page-break paragraph before the anchor.
func (d *Document) InsertPageBreakBefore(anchor Block) (*Paragraph, error) {
	paragraph := &Paragraph{Style: StyleNormal, PageBreak: true}
	paragraph.AddRun("")
	if err := d.InsertBefore(anchor, paragraph); err != nil {
		return nil, err
	}
	return paragraph, nil
}

// InsertTableBefore inserts an empty rows-by-cols table before the anchor
// and returns it.
func (d *Document) InsertTableBefore(anchor Block, rows, cols int) (*Table, error) {
	table := &Table{}
	for i := 0; i < rows; i++ {
		row := &Row{}
		for j := 0; j < cols; j++ {
			cell := &Cell{}
			cell.SetText("")
			row.Cells = append(row.Cells, cell)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := d.InsertBefore(anchor, table); err != nil {
		return nil, err
	}
	return table, nil
}

// Append composes src onto the end of d, deep-copying every block so images
// and styles survive and src stays untouched. A plain text-level copy is not
// enough: it would drop embedded media.
func (d *Document) Append(src *Document) {
	for _, block := range src.blocks {
		switch b := block.(type) {
		case *Paragraph:
			d.blocks = append(d.blocks, b.Clone())
		case *Table:
			d.blocks = append(d.blocks, b.Clone())
		case *Image:
			d.blocks = append(d.blocks, b.Clone())
		}
	}
}

// Clone deep-copies the whole document, sections included.
func (d *Document) Clone() *Document {
	clone := &Document{}
	clone.Append(d)
	clone.sections = make([]*Section, len(d.sections))
	for i, section := range d.sections {
		copied := &Section{}
		for _, p := range section.Header {
			copied.Header = append(copied.Header, p.Clone())
		}
		for _, p := range section.Footer {
			copied.Footer = append(copied.Footer, p.Clone())
		}
		clone.sections[i] = copied
	}
	if len(clone.sections) == 0 {
		clone.sections = []*Section{{}}
	}
	return clone
}

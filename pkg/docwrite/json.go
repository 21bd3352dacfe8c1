package docwrite

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Block type tags used in the serialized form.
const (
	blockTypeParagraph = "paragraph"
	blockTypeTable     = "table"
	blockTypeImage     = "image"
)

type blockEnvelope struct {
	Type      string     `json:"type"`
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	Table     *Table     `json:"table,omitempty"`
	Image     *Image     `json:"image,omitempty"`
}

type documentEnvelope struct {
	Blocks   []blockEnvelope `json:"blocks"`
	Sections []*Section      `json:"sections,omitempty"`
}

// MarshalJSON serializes the document as type-tagged blocks.
func (d *Document) MarshalJSON() ([]byte, error) {
	envelope := documentEnvelope{Sections: d.sections}
	for _, block := range d.blocks {
		switch b := block.(type) {
		case *Paragraph:
			envelope.Blocks = append(envelope.Blocks, blockEnvelope{Type: blockTypeParagraph, Paragraph: b})
		case *Table:
			envelope.Blocks = append(envelope.Blocks, blockEnvelope{Type: blockTypeTable, Table: b})
		case *Image:
			envelope.Blocks = append(envelope.Blocks, blockEnvelope{Type: blockTypeImage, Image: b})
		}
	}
	return json.Marshal(envelope)
}

// UnmarshalJSON restores a document from its type-tagged form.
func (d *Document) UnmarshalJSON(data []byte) error {
	var envelope documentEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	d.blocks = nil
	for _, block := range envelope.Blocks {
		switch block.Type {
		case blockTypeParagraph:
			if block.Paragraph == nil {
				return fmt.Errorf("paragraph block has no paragraph payload")
			}
			d.blocks = append(d.blocks, block.Paragraph)
		case blockTypeTable:
			if block.Table == nil {
				return fmt.Errorf("table block has no table payload")
			}
			d.blocks = append(d.blocks, block.Table)
		case blockTypeImage:
			if block.Image == nil {
				return fmt.Errorf("image block has no image payload")
			}
			d.blocks = append(d.blocks, block.Image)
		default:
			return fmt.Errorf("unknown block type %q", block.Type)
		}
	}
	d.sections = envelope.Sections
	if len(d.sections) == 0 {
		d.sections = []*Section{{}}
	}
	return nil
}

// Write serializes the document to w.
func (d *Document) Write(w io.Writer) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Save writes the document to the given path.
func (d *Document) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	return d.Write(file)
}

// Load reads a document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}

// LoadFile reads a document from the given path.
func LoadFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	doc, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

package backend

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/alderui/alder"
)

const lineSpacingFactor = 1.2

// TextPainter measures and renders paragraphs with a single TTF/OTF face
// source. Faces are cached per size.
type TextPainter struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewTextPainter parses font data (TTF or OTF).
func NewTextPainter(fontData []byte) (*TextPainter, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &TextPainter{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

func (p *TextPainter) face(paragraph alder.Paragraph) *text.GoTextFace {
	size := paragraph.FontSize
	if size <= 0 {
		size = 14
	}
	if face, ok := p.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: p.source, Size: size}
	p.faces[size] = face
	return face
}

// MeasureText implements alder.TextPainter. Measurement ignores maxWidth:
// text/v2 lays out explicit newlines but does not soft-wrap, so the width
// returned is the natural width of the longest line.
func (p *TextPainter) MeasureText(paragraph alder.Paragraph, maxWidth float64) alder.Size {
	if paragraph.Text == "" {
		return alder.Size{}
	}
	face := p.face(paragraph)
	w, h := text.Measure(paragraph.Text, face, face.Size*lineSpacingFactor)
	return alder.Sz(w, h)
}

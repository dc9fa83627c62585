// Package text measures strings against AngelCode bitmap font descriptors
// so text entities can report extents without a renderer in the loop.
package text

import (
	"github.com/fzipp/bmfont"

	"github.com/astaben/tracery/engine/math"
)

const tabStops = 4

type glyph struct {
	width    float64
	height   float64
	xOffset  float64
	yOffset  float64
	xAdvance float64
}

type kernPair struct {
	first  rune
	second rune
}

// Face holds the metrics of one parsed .fnt descriptor. All raw metrics are
// in the pixel units of the font atlas; MeasureAt rescales them.
type Face struct {
	Name       string
	Size       float64
	LineHeight float64
	Baseline   float64

	glyphs  map[rune]glyph
	kerning map[kernPair]float64
}

// LoadFace parses the descriptor and page sheets at path.
func LoadFace(path string) (*Face, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}
	d := font.Descriptor

	face := &Face{
		Name:       d.Info.Face,
		Size:       float64(d.Info.Size),
		LineHeight: float64(d.Common.LineHeight),
		Baseline:   float64(d.Common.Base),
		glyphs:     make(map[rune]glyph, len(d.Chars)),
		kerning:    make(map[kernPair]float64, len(d.Kerning)),
	}
	for _, c := range d.Chars {
		face.glyphs[c.ID] = glyph{
			width:    float64(c.Width),
			height:   float64(c.Height),
			xOffset:  float64(c.XOffset),
			yOffset:  float64(c.YOffset),
			xAdvance: float64(c.XAdvance),
		}
	}
	for pair, k := range d.Kerning {
		face.kerning[kernPair{pair.First, pair.Second}] = float64(k.Amount)
	}
	return face, nil
}

// Measure lays s out in pixel units and returns the union of the glyph
// boxes. The origin is the pen position on the first baseline with y up, so
// ascenders land at positive y and descenders below zero. Characters the
// descriptor does not cover advance the pen by the nominal point size and
// add nothing to the box; an empty or fully uncovered string yields the
// empty extents.
func (f *Face) Measure(s string) math.Extents2D {
	box := math.NewExtents2D()

	cursorX := 0.0
	baselineY := 0.0
	prev := rune(-1)
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n':
			cursorX = 0
			baselineY -= f.LineHeight
			prev = -1
			continue
		case '\t':
			cursorX += tabStops * f.advanceOf(' ')
			prev = -1
			continue
		}

		g, ok := f.glyphs[r]
		if !ok {
			cursorX += f.Size
			prev = -1
			continue
		}
		if prev >= 0 {
			cursorX += f.kerning[kernPair{prev, r}]
		}

		if g.width > 0 && g.height > 0 {
			left := cursorX + g.xOffset
			top := baselineY + f.Baseline - g.yOffset
			box = box.ExpandByPoint(math.NewVec2(left, top))
			box = box.ExpandByPoint(math.NewVec2(left+g.width, top-g.height))
		}

		cursorX += g.xAdvance
		prev = r
	}
	return box
}

// MeasureAt measures s scaled so the nominal point size maps to height
// model units, with the first baseline pen at origin.
func (f *Face) MeasureAt(s string, origin math.Vec2, height float64) math.Extents2D {
	box := f.Measure(s)
	if box.IsEmpty() || f.Size <= 0 {
		return math.NewExtents2D()
	}
	scale := height / f.Size
	return math.NewExtents2DFromPoints([]math.Vec2{
		box.Min.MulScalar(scale).Add(origin),
		box.Max.MulScalar(scale).Add(origin),
	})
}

func (f *Face) advanceOf(r rune) float64 {
	if g, ok := f.glyphs[r]; ok {
		return g.xAdvance
	}
	return f.Size
}

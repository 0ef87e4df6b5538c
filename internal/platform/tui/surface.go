package tui

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/core"
)

// Palette maps image references to the cells drawn for them.
type Palette struct {
	sprites map[string]core.Cell
	Wall    core.Cell
}

// NewPalette builds a palette from scene sprite styles. The key "wall" styles
// wall strokes; a style keyed by a background image fills the whole grid.
func NewPalette(styles map[string]config.SpriteStyle) Palette {
	p := Palette{
		sprites: make(map[string]core.Cell, len(styles)),
		Wall:    core.Cell{Rune: '#', Color: core.ColorGray},
	}
	for image, style := range styles {
		cell := core.Cell{Rune: '?', Color: core.ColorDefault}
		if r, _ := utf8.DecodeRuneInString(style.Glyph); r != utf8.RuneError {
			cell.Rune = r
		}
		if c, ok := core.ParseColor(style.Color); ok {
			cell.Color = c
		}
		if image == "wall" {
			p.Wall = cell
			continue
		}
		p.sprites[image] = cell
	}
	return p
}

// Cell returns the cell for image. Unstyled images fall back to the upper-case
// first letter of the file name.
func (p Palette) Cell(image string) core.Cell {
	if c, ok := p.sprites[image]; ok {
		return c
	}
	name := strings.TrimSuffix(filepath.Base(image), filepath.Ext(image))
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		return core.Cell{Rune: unicode.ToUpper(r), Color: core.ColorWhite}
	}
	return core.Cell{Rune: '█', Color: core.ColorWhite}
}

// background returns the fill cell for a background image, if one is styled.
func (p Palette) background(image string) (core.Cell, bool) {
	if image == "" {
		return core.Cell{}, false
	}
	c, ok := p.sprites[image]
	return c, ok
}

type point struct{ x, y float64 }

// Surface draws the world onto a core.Screen, scaling world coordinates
// onto the character grid.
type Surface struct {
	screen        *core.Screen
	palette       Palette
	width, height float64 // world size
	background    string

	path    [][]point // sub-paths of the current path
	current []point
}

// NewSurface creates a surface for a world of the given size drawn onto a
// cols x rows grid.
func NewSurface(width, height float64, cols, rows int, palette Palette) *Surface {
	return &Surface{
		screen:  core.NewScreen(cols, rows),
		palette: palette,
		width:   width,
		height:  height,
	}
}

// Screen returns the underlying cell buffer.
func (s *Surface) Screen() *core.Screen { return s.screen }

// Resize changes the character grid. The next tick redraws the world.
func (s *Surface) Resize(cols, rows int) {
	s.screen.Resize(cols, rows)
}

// Background returns the active background image.
func (s *Surface) Background() string { return s.background }

// SetBackground changes the background image.
func (s *Surface) SetBackground(image string) {
	s.background = image
}

// Clear erases the grid and paints the background fill, if styled.
func (s *Surface) Clear(width, height float64) {
	s.width, s.height = width, height
	s.screen.Clear()
	if c, ok := s.palette.background(s.background); ok {
		s.screen.FillCell(c)
	}
}

// DrawImage fills every cell the rectangle covers with the image's glyph.
// A non-empty rectangle always covers at least one cell.
func (s *Surface) DrawImage(image string, x, y, w, h float64) {
	x0, y0 := s.toCell(x, y)
	x1 := int(math.Ceil((x + w) * s.scaleX()))
	y1 := int(math.Ceil((y + h) * s.scaleY()))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	s.screen.FillRect(x0, y0, x1-x0, y1-y0, s.palette.Cell(image))
}

// BeginPath discards any unstroked points.
func (s *Surface) BeginPath() {
	s.path = nil
	s.current = nil
}

// MoveTo starts a new sub-path.
func (s *Surface) MoveTo(x, y float64) {
	if len(s.current) > 0 {
		s.path = append(s.path, s.current)
	}
	s.current = []point{{x, y}}
}

// LineTo extends the current sub-path. Without a current point it acts
// like MoveTo.
func (s *Surface) LineTo(x, y float64) {
	s.current = append(s.current, point{x, y})
}

// Stroke rasterizes every segment of the path with the wall cell.
func (s *Surface) Stroke() {
	paths := s.path
	if len(s.current) > 0 {
		paths = append(paths, s.current)
	}
	for _, sub := range paths {
		if len(sub) == 1 {
			x, y := s.toCell(sub[0].x, sub[0].y)
			s.screen.SetCell(x, y, s.palette.Wall)
			continue
		}
		for i := 1; i < len(sub); i++ {
			x0, y0 := s.toCell(sub[i-1].x, sub[i-1].y)
			x1, y1 := s.toCell(sub[i].x, sub[i].y)
			s.screen.DrawLine(x0, y0, x1, y1, s.palette.Wall)
		}
	}
}

func (s *Surface) scaleX() float64 {
	if s.width <= 0 {
		return 1
	}
	return float64(s.screen.Width()) / s.width
}

func (s *Surface) scaleY() float64 {
	if s.height <= 0 {
		return 1
	}
	return float64(s.screen.Height()) / s.height
}

// toCell maps a world point to its cell. Points on the far edge of the
// world land in the last row or column.
func (s *Surface) toCell(x, y float64) (int, int) {
	cx := int(math.Floor(x * s.scaleX()))
	cy := int(math.Floor(y * s.scaleY()))
	cx = core.Clamp(cx, 0, s.screen.Width()-1)
	cy = core.Clamp(cy, 0, s.screen.Height()-1)
	return cx, cy
}

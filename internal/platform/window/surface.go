package window

import (
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/core"
)

const strokeWidth = 2

var (
	clearColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	wallColor  = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
)

// rgba maps terminal colors to window colors, so a scene's sprite palette
// also colors placeholders for images that fail to load.
var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

type point struct{ x, y float32 }

// Surface draws the world into an offscreen canvas that the window shows
// on every frame. World units are pixels.
type Surface struct {
	canvas     *ebiten.Image
	logger     *log.Logger
	styles     map[string]config.SpriteStyle
	images     map[string]*ebiten.Image // nil entries failed to load
	background string

	path    [][]point
	current []point
}

// NewSurface creates a width x height canvas.
func NewSurface(width, height int, styles map[string]config.SpriteStyle, logger *log.Logger) *Surface {
	return &Surface{
		canvas: ebiten.NewImage(width, height),
		logger: logger,
		styles: styles,
		images: make(map[string]*ebiten.Image),
	}
}

// Canvas returns the offscreen image.
func (s *Surface) Canvas() *ebiten.Image { return s.canvas }

// SetBackground changes the image drawn behind the world.
func (s *Surface) SetBackground(image string) {
	s.background = image
}

// Clear fills the canvas and stretches the background image over it.
func (s *Surface) Clear(width, height float64) {
	s.canvas.Fill(clearColor)
	if img := s.load(s.background); img != nil {
		s.blit(img, 0, 0, width, height)
	}
}

// DrawImage draws image scaled to the rectangle. Images that cannot be
// loaded are drawn as a filled rectangle.
func (s *Surface) DrawImage(image string, x, y, w, h float64) {
	if img := s.load(image); img != nil {
		s.blit(img, x, y, w, h)
		return
	}
	vector.FillRect(s.canvas, float32(x), float32(y), float32(w), float32(h), s.placeholder(image), false)
}

func (s *Surface) BeginPath() {
	s.path = nil
	s.current = nil
}

func (s *Surface) MoveTo(x, y float64) {
	if len(s.current) > 0 {
		s.path = append(s.path, s.current)
	}
	s.current = []point{{float32(x), float32(y)}}
}

func (s *Surface) LineTo(x, y float64) {
	s.current = append(s.current, point{float32(x), float32(y)})
}

// Stroke draws every segment of the current path in the wall color.
func (s *Surface) Stroke() {
	paths := s.path
	if len(s.current) > 0 {
		paths = append(paths, s.current)
	}
	for _, sub := range paths {
		for i := 1; i < len(sub); i++ {
			a, b := sub[i-1], sub[i]
			vector.StrokeLine(s.canvas, a.x, a.y, b.x, b.y, strokeWidth, wallColor, true)
		}
	}
}

func (s *Surface) blit(img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	s.canvas.DrawImage(img, op)
}

// load returns the cached image, loading it on first use. Failures are
// logged once and remembered.
func (s *Surface) load(image string) *ebiten.Image {
	if image == "" {
		return nil
	}
	if img, ok := s.images[image]; ok {
		return img
	}

	img, _, err := ebitenutil.NewImageFromFile(image)
	if err != nil {
		s.logger.Warn("cannot load image", "image", image, "error", err)
		img = nil
	}
	s.images[image] = img
	return img
}

func (s *Surface) placeholder(image string) color.RGBA {
	if style, ok := s.styles[image]; ok {
		if c, ok := core.ParseColor(style.Color); ok {
			return rgba[c]
		}
	}
	return rgba[core.ColorDefault]
}

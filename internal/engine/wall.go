package engine

import "github.com/vovakirdan/gamebuilder/internal/core"

// Wall is a static, always-visible obstacle that blocks characters.
// It is drawn as a line from its top-left to its bottom-right corner, so a
// wall with zero height renders as a horizontal line.
type Wall struct {
	rect core.Rect
}

// NewWall creates a wall covering the given rectangle.
func NewWall(x, y, width, height float64) *Wall {
	return &Wall{rect: core.NewRect(x, y, width, height)}
}

// Update does nothing; walls never move.
func (w *Wall) Update(World) {}

// Render strokes the wall's diagonal.
func (w *Wall) Render(s Surface) {
	s.BeginPath()
	s.MoveTo(w.rect.X, w.rect.Y)
	s.LineTo(w.rect.Right(), w.rect.Bottom())
	s.Stroke()
}

// Bounds returns the wall's rectangle.
func (w *Wall) Bounds() core.Rect { return w.rect }

// Passable is always false.
func (w *Wall) Passable() bool { return false }

// Visible is always true.
func (w *Wall) Visible() bool { return true }

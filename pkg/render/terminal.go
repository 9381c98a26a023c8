package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Double vertical resolution comes from half-block characters:
// each terminal row shows two framebuffer rows via ▀ with fg=top color and
// bg=bottom color.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// Presenter bridges a framebuffer to an ultraviolet terminal.
type Presenter struct {
	term *uv.Terminal
	cols int
	rows int
}

// NewPresenter creates a presenter for a terminal of the given cell size.
func NewPresenter(term *uv.Terminal, cols, rows int) *Presenter {
	return &Presenter{term: term, cols: cols, rows: rows}
}

// FramebufferSize returns the pixel dimensions matching the terminal size.
func (p *Presenter) FramebufferSize() (width, height int) {
	return p.cols, p.rows * 2
}

// Present draws the framebuffer into the terminal and flushes it.
func (p *Presenter) Present(fb *Framebuffer) error {
	fb.Draw(p.term, uv.Rect(0, 0, p.cols, p.rows))
	return p.term.Display()
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorSpace = color.RGBA{8, 8, 16, 255}
	ColorSun   = color.RGBA{255, 220, 120, 255}
	ColorRock  = color.RGBA{140, 120, 100, 255}
	ColorIce   = color.RGBA{190, 210, 235, 255}
	ColorDust  = color.RGBA{120, 110, 130, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

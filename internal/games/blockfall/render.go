package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// shapeColors is indexed by engine.Shape.SpriteIndex.
var shapeColors = [engine.ShapeCount]core.Color{
	core.ColorCyan,    // I
	core.ColorBlue,    // J
	core.ColorOrange,  // L
	core.ColorYellow,  // O
	core.ColorGreen,   // S
	core.ColorMagenta, // T
	core.ColorRed,     // Z
}

func colorOf(s engine.Shape) core.Color {
	if !s.Valid() {
		return core.ColorDefault
	}
	return shapeColors[s.SpriteIndex()]
}

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderField(dst)
	g.renderPanel(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "GAME OVER", "R restart  Q quit")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "P to resume")
	}
}

// cellPos converts a raw field coordinate to a screen position.
// Each cell is two characters wide and row 0 of the field is the bottom line.
func (g *Game) cellPos(c engine.Coord) (x, y int) {
	col := c.X / engine.Unit
	row := c.Y / engine.Unit
	return g.boxX + 1 + col*2, g.boxY + g.rows - row
}

func (g *Game) renderField(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.boxX, g.boxY, g.cols*2+2, g.rows+2), core.ColorGray)

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			x, y := g.cellPos(engine.C(col*engine.Unit, row*engine.Unit))
			dst.SetColored(x, y, ' ', core.ColorDefault)
			dst.SetColored(x+1, y, '.', core.ColorGray)
		}
	}

	for _, b := range g.state.Field().Blocks() {
		x, y := g.cellPos(b.Pos)
		c := colorOf(b.Shape)
		if b.Falling {
			dst.SetColored(x, y, '[', c)
			dst.SetColored(x+1, y, ']', c)
			continue
		}
		dst.SetColored(x, y, '█', c)
		dst.SetColored(x+1, y, '█', c)
	}
}

func (g *Game) renderPanel(dst *core.Screen) {
	px := g.boxX + g.cols*2 + 2 + panelGap
	py := g.boxY + 1

	st := g.State()
	stats := g.state.Stats()
	dst.DrawTextColored(px, py, "BLOCKFALL", core.ColorBrightWhite)
	dst.DrawText(px, py+2, fmt.Sprintf("Score %d", st.Score))
	dst.DrawText(px, py+3, fmt.Sprintf("Level %d", st.Level))
	dst.DrawText(px, py+4, fmt.Sprintf("Drops %d", stats.Dropped))

	dst.DrawText(px, py+6, "Next")
	y := py + 7
	preview := g.state.Preview()
	for i := 0; i < len(preview) && i < previewMax; i++ {
		drawPreview(dst, px, y, preview[i])
		y += 3
	}
}

// drawPreview draws a shape in its spawn orientation with its top-left at
// (x, y). Spawn layouts span two rows.
func drawPreview(dst *core.Screen, x, y int, s engine.Shape) {
	c := colorOf(s)
	for _, o := range s.Layout() {
		sx := x + (o.X+1)*2
		sy := y + 1 - o.Y
		dst.SetColored(sx, sy, '█', c)
		dst.SetColored(sx+1, sy, '█', c)
	}
}

// renderOverlay draws a framed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	r := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/rewind/game"
	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/status"
)

// TerminalRenderer draws the world and the time HUD onto a tcell screen
type TerminalRenderer struct {
	screen    tcell.Screen
	statusReg *status.Registry
	showStats bool
}

// NewTerminalRenderer creates a new terminal renderer
// With showStats set, the second HUD row lists every registered metric
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry, showStats bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		statusReg: reg,
		showStats: showStats,
	}
}

// RenderFrame renders the entire frame, holding the world lock while reading it
func (r *TerminalRenderer) RenderFrame(w *game.World) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	width, height := r.screen.Size()
	if width < w.Width() || height < w.Height()+parameter.HUDHeight {
		r.drawText(0, 0, "terminal too small", defaultStyle.Foreground(RgbWarning))
		r.screen.Show()
		return
	}

	w.RunSafe(func() {
		r.drawFloor(w, defaultStyle)
		r.drawMirrors(w, defaultStyle)
		r.drawCollectibles(w, defaultStyle)
		r.drawCrates(w, defaultStyle)
		r.drawGhosts(w, defaultStyle)
		r.drawPlayer(w, defaultStyle)
		r.drawHUD(w, w.Height(), defaultStyle)
	})

	if r.showStats {
		r.drawText(0, w.Height()+1, r.statusReg.Format(), defaultStyle.Foreground(RgbStatusDim))
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawFloor(w *game.World, style tcell.Style) {
	y := w.Height() - 1
	floorStyle := style.Foreground(RgbFloor)
	for x := 0; x < w.Width(); x++ {
		r.screen.SetContent(x, y, parameter.FloorChar, nil, floorStyle)
	}
}

func (r *TerminalRenderer) drawMirrors(w *game.World, style tcell.Style) {
	ground := int(w.Ground())
	mirrorStyle := style.Foreground(RgbMirror)
	for _, x := range w.Mirrors {
		for y := ground - parameter.MirrorHeight + 1; y <= ground; y++ {
			r.drawCell(w, x, y, parameter.MirrorChar, mirrorStyle)
		}
	}
}

func (r *TerminalRenderer) drawCollectibles(w *game.World, style tcell.Style) {
	collectStyle := style.Foreground(RgbCollectible)
	for _, c := range w.Collectibles {
		if !c.Visible {
			continue
		}
		x, y := c.Pos.Cell()
		r.drawCell(w, x, y, parameter.CollectibleChar, collectStyle)
	}
}

func (r *TerminalRenderer) drawCrates(w *game.World, style tcell.Style) {
	for _, c := range w.Crates {
		fg := RgbCrate
		if c.Rewinding() {
			fg = RgbCrateRewind
		}
		x, y := c.Pos.Cell()
		r.drawCell(w, x, y, parameter.CrateChar, style.Foreground(fg))
	}
}

func (r *TerminalRenderer) drawGhosts(w *game.World, style tcell.Style) {
	for _, g := range w.Ghosts {
		if !g.Visible() {
			continue
		}
		fg := RgbGhostForward
		if g.RecordedInverted {
			fg = RgbGhostBackward
		}
		x, y := g.Pos.Cell()
		r.drawCell(w, x, y, parameter.GhostChar, style.Foreground(fg))
	}
}

func (r *TerminalRenderer) drawPlayer(w *game.World, style tcell.Style) {
	x, y := w.Player.Pos.Cell()
	r.drawCell(w, x, y, parameter.PlayerChar, style.Foreground(RgbPlayer).Bold(true))
}

// drawCell sets one playfield cell, ignoring positions outside it
func (r *TerminalRenderer) drawCell(w *game.World, x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= w.Width() || y >= w.Height() {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// cellWidth measures runes independent of the user's locale so HUD columns stay fixed
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// drawText writes s from (x, y), returning the column after it
// Wide runes take two columns, zero-width runes are dropped
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := cellWidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

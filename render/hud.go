package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rewind/engine"
	"github.com/lixenwraith/rewind/game"
	"github.com/lixenwraith/rewind/parameter"
)

// FormatClock renders the clock as m:ss
func FormatClock(tk *engine.TimeKeeper) string {
	return fmt.Sprintf("%d:%02d", tk.Minutes(), tk.Seconds())
}

// DirectionGlyph returns << when time runs backward, >> otherwise
func DirectionGlyph(inverted bool) string {
	if inverted {
		return "<<"
	}
	return ">>"
}

// ProgressBar renders progress in [0, 1] as a fixed-width bar
func ProgressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// drawHUD draws the time line below the playfield
func (r *TerminalRenderer) drawHUD(w *game.World, y int, style tcell.Style) {
	tk := w.Clock

	dirStyle := style.Foreground(RgbForward).Bold(true)
	if tk.Inverted() {
		dirStyle = style.Foreground(RgbBackward).Bold(true)
	}
	x := r.drawText(0, y, DirectionGlyph(tk.Inverted()), dirStyle)
	x = r.drawText(x+1, y, FormatClock(tk), style)
	x = r.drawText(x+1, y, ProgressBar(tk.Progress(), parameter.HUDBarWidth), style.Foreground(RgbProgressFill))

	counts := fmt.Sprintf("ghosts %d  collected %d/%d", len(w.Ghosts), w.Collected(), len(w.Collectibles))
	x = r.drawText(x+2, y, counts, style.Foreground(RgbStatusDim))

	switch {
	case w.TimedOut:
		r.drawText(x+2, y, "TIME LIMIT", style.Foreground(RgbWarning).Bold(true))
	case tk.Paused():
		r.drawText(x+2, y, "PAUSED", style.Foreground(RgbWarning))
	}
}

package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rewind/event"
)

// keyBindings maps special keys to game events
var keyBindings = map[tcell.Key]event.EventType{
	tcell.KeyLeft:  event.EventMoveLeft,
	tcell.KeyRight: event.EventMoveRight,
	tcell.KeyUp:    event.EventJump,
}

// runeBindings maps printable keys to game events
var runeBindings = map[rune]event.EventType{
	'a': event.EventMoveLeft,
	'h': event.EventMoveLeft,
	'd': event.EventMoveRight,
	'l': event.EventMoveRight,
	'w': event.EventJump,
	'k': event.EventJump,
	' ': event.EventJump,
	'i': event.EventInvertTime,
	'p': event.EventPauseToggle,
	'r': event.EventWorldReset,
}

// translateKey maps a key press to a game event
func translateKey(ev *tcell.EventKey) (event.EventType, bool) {
	if ev.Key() == tcell.KeyRune {
		et, ok := runeBindings[ev.Rune()]
		return et, ok
	}
	et, ok := keyBindings[ev.Key()]
	return et, ok
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func isMuteToggle(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'm'
}

// Package game is a side-view demo world where the player, crates, collectibles and ghosts all live on one reversible clock
package game

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/rewind/audio"
	"github.com/lixenwraith/rewind/engine"
	"github.com/lixenwraith/rewind/event"
	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/status"
)

// AudioPlayer is the sound surface the world triggers, satisfied by audio.SoundManager
type AudioPlayer interface {
	Play(sound audio.SoundType)
	PlayInversion(inverted bool)
}

// Settings sizes the world and positions its clock
type Settings struct {
	Clock     engine.ClockSettings
	Width     int
	Height    int
	MaxGhosts int
}

// DefaultSettings returns the compile-time world settings
func DefaultSettings() Settings {
	return Settings{
		Clock:     engine.DefaultClockSettings(),
		Width:     parameter.DefaultWorldWidth,
		Height:    parameter.DefaultWorldHeight,
		MaxGhosts: parameter.DefaultMaxGhosts,
	}
}

// World owns every entity and the clock they share
// All access goes through RunSafe; the tick loop and the renderer never overlap
type World struct {
	updateMutex sync.Mutex

	settings Settings
	queue    *event.EventQueue
	sound    AudioPlayer
	reg      *status.Registry

	Clock        *engine.TimeKeeper
	Player       *Player
	Ghosts       []*GhostActor
	Crates       []*Crate
	Collectibles []*Collectible
	Mirrors      []int
	TimedOut     bool

	systems []System

	// Cached metric pointers
	statGhosts    *atomic.Int64
	statCollected *atomic.Int64
	statResets    *atomic.Int64
}

// NewWorld creates a world laid out for settings
// sound may be nil when audio is disabled
func NewWorld(settings Settings, queue *event.EventQueue, sound AudioPlayer, reg *status.Registry) *World {
	w := &World{
		settings:      settings,
		queue:         queue,
		sound:         sound,
		reg:           reg,
		statGhosts:    reg.Ints.Get("game.ghosts"),
		statCollected: reg.Ints.Get("game.collected"),
		statResets:    reg.Ints.Get("game.resets"),
	}

	w.systems = []System{GhostSystem{}, CollectibleSystem{}, CrateSystem{}, PlayerSystem{}}
	sortSystems(w.systems)

	w.build()
	return w
}

// build lays out entities and a fresh clock
func (w *World) build() {
	width, ground := w.settings.Width, w.Ground()

	w.Clock = engine.NewTimeKeeper(w.settings.Clock, w.reg)
	w.Clock.OnInvert(w.onInvert)
	w.Clock.OnTimeout(w.onTimeout)

	w.Player = newPlayer(Vec2{X: 2, Y: ground})
	w.Ghosts = nil
	w.TimedOut = false

	w.Crates = []*Crate{
		newCrate(Vec2{X: float64(width / 3), Y: ground}),
		newCrate(Vec2{X: float64(2 * width / 3), Y: ground}),
	}
	w.Collectibles = []*Collectible{
		newCollectible(Vec2{X: float64(width / 4), Y: ground - parameter.CollectibleLift}),
		newCollectible(Vec2{X: float64(width / 2), Y: ground - parameter.CollectibleLift}),
		newCollectible(Vec2{X: float64(3 * width / 4), Y: ground - parameter.CollectibleLift}),
	}
	w.Mirrors = []int{5 * width / 8}

	for _, c := range w.Crates {
		w.Clock.Register(c.motion)
	}
	for _, c := range w.Collectibles {
		w.Clock.Register(c.visibility)
	}
	w.publish()
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Tick runs one update under the world lock, the scheduler's tick callback
func (w *World) Tick() {
	w.RunSafe(w.Update)
}

// Update applies queued input, steps the clock and runs every system
// Caller must hold the world lock
func (w *World) Update() {
	for _, ev := range w.queue.Consume() {
		w.handleEvent(ev)
	}

	if w.Clock.Paused() {
		return
	}

	// A clock saturated at a limit holds every log with it until time is inverted
	if !w.Clock.Step() {
		w.publish()
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.publish()
}

func (w *World) handleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMoveLeft:
		w.Player.intent = -1
	case event.EventMoveRight:
		w.Player.intent = 1
	case event.EventJump:
		w.Player.jump = true
	case event.EventInvertTime:
		w.InvertTime()
	case event.EventPauseToggle:
		if w.Clock.Paused() {
			w.Clock.Resume()
			w.TimedOut = false
		} else {
			w.Clock.Pause()
		}
	case event.EventWorldReset:
		log.Printf("World reset")
		w.statResets.Add(1)
		w.build()
	}
}

// InvertTime flips the global clock; registered logs, ghosts and the player react synchronously
func (w *World) InvertTime() {
	w.Clock.Invert()
}

func (w *World) onInvert(inverted bool) {
	for _, g := range w.Ghosts {
		g.Invert()
	}
	w.spawnGhost(inverted)
	w.Player.nudge(w)

	if w.sound != nil {
		w.sound.PlayInversion(inverted)
	}
}

// spawnGhost hands the player's history to a new ghost, dropping the oldest beyond the cap
func (w *World) spawnGhost(inverted bool) {
	p := w.Player
	history := p.History()
	if history == 0 || w.settings.MaxGhosts == 0 {
		p.handOff(engine.NewGhost())
		return
	}

	g := &GhostActor{Ghost: engine.NewGhost(), RecordedInverted: !inverted}
	g.pos, g.facing = p.handOff(g.Ghost)
	g.Pos = g.pos.Value()
	g.FacingRight = g.facing.Value()
	w.Ghosts = append(w.Ghosts, g)
	log.Printf("Ghost %s spawned with %d ticks of history", g.ID, history)

	if over := len(w.Ghosts) - w.settings.MaxGhosts; over > 0 {
		for _, old := range w.Ghosts[:over] {
			log.Printf("Ghost %s dropped", old.ID)
		}
		w.Ghosts = append(w.Ghosts[:0], w.Ghosts[over:]...)
	}
}

func (w *World) onTimeout(time int) {
	w.TimedOut = true
	w.Clock.Pause()
	w.play(audio.SoundTimeout)
}

func (w *World) play(sound audio.SoundType) {
	if w.sound != nil {
		w.sound.Play(sound)
	}
}

func (w *World) publish() {
	w.statGhosts.Store(int64(len(w.Ghosts)))
	w.statCollected.Store(int64(w.Collected()))
}

// confine keeps pos inside the playfield, standing on the floor
func (w *World) confine(pos, vel *Vec2) {
	right := float64(w.settings.Width - 1)
	if pos.X < 0 {
		pos.X, vel.X = 0, 0
	} else if pos.X > right {
		pos.X, vel.X = right, 0
	}
	if ground := w.Ground(); pos.Y >= ground {
		pos.Y, vel.Y = ground, 0
	} else if pos.Y < 0 {
		pos.Y, vel.Y = 0, 0
	}
}

// MirrorAt reports whether column x holds a mirror
func (w *World) MirrorAt(x int) bool {
	for _, m := range w.Mirrors {
		if m == x {
			return true
		}
	}
	return false
}

// Collected returns the number of collectibles currently gone
func (w *World) Collected() int {
	n := 0
	for _, c := range w.Collectibles {
		if !c.Visible {
			n++
		}
	}
	return n
}

// Ground returns the row entities stand on, just above the floor
func (w *World) Ground() float64 {
	return float64(w.settings.Height - 2)
}

// Width returns the playfield width in cells
func (w *World) Width() int { return w.settings.Width }

// Height returns the playfield height in cells, floor included
func (w *World) Height() int { return w.settings.Height }

// Settings returns the settings the world was built from
func (w *World) Settings() Settings { return w.settings }

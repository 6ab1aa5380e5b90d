package game

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/rewind/engine"
	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/timeline"
)

// Player is the live, input-driven character
// Its history is recorded every tick and handed to a ghost on inversion
type Player struct {
	Pos         Vec2
	Vel         Vec2
	FacingRight bool

	positions *timeline.Recording[Vec2]
	facing    *timeline.Schedule[bool]

	intent   int // -1 left, +1 right, 0 none; cleared every tick
	jump     bool
	onMirror bool
}

func newPlayer(pos Vec2) *Player {
	return &Player{
		Pos:         pos,
		FacingRight: true,
		positions:   timeline.NewRecording[Vec2](),
		facing:      timeline.NewSchedule[bool](),
	}
}

// History returns the number of ticks recorded since the last inversion
func (p *Player) History() int {
	return p.positions.Length()
}

func (p *Player) step(w *World) {
	switch {
	case p.intent != 0:
		p.Vel.X = float64(p.intent) * parameter.PlayerSpeed
		p.FacingRight = p.intent > 0
	case p.Vel.X > 0:
		p.Vel.X = max(p.Vel.X-parameter.PlayerFriction, 0)
	case p.Vel.X < 0:
		p.Vel.X = min(p.Vel.X+parameter.PlayerFriction, 0)
	}

	if p.jump && p.Pos.Y >= w.Ground() {
		p.Vel.Y = parameter.PlayerJumpVelocity
	}
	p.Vel.Y += parameter.Gravity

	p.Pos = p.Pos.Add(p.Vel)
	w.confine(&p.Pos, &p.Vel)

	p.intent = 0
	p.jump = false
}

func (p *Player) record() {
	p.positions.Append(p.Pos)
	p.facing.Append(p.FacingRight)
}

// handOff transfers the recorded history to a new ghost and starts fresh logs
func (p *Player) handOff(g *engine.Ghost) (*engine.Track[Vec2], *engine.Track[bool]) {
	pos := engine.AddTrack[Vec2](g, p.positions)
	facing := engine.AddTrack[bool](g, p.facing)
	p.positions = timeline.NewRecording[Vec2]()
	p.facing = timeline.NewSchedule[bool]()
	return pos, facing
}

// nudge displaces the player along its facing so it does not overlap its ghost
func (p *Player) nudge(w *World) {
	if p.FacingRight {
		p.Pos.X += parameter.InversionNudge
	} else {
		p.Pos.X -= parameter.InversionNudge
	}
	w.confine(&p.Pos, &p.Vel)
}

// GhostActor is a past self replaying a handed-off player history
type GhostActor struct {
	*engine.Ghost

	Pos         Vec2
	FacingRight bool
	// RecordedInverted is the direction of time the history was recorded in
	RecordedInverted bool

	pos    *engine.Track[Vec2]
	facing *engine.Track[bool]
}

func (g *GhostActor) step() {
	g.Step()
	g.Pos = g.pos.Value()
	g.FacingRight = g.facing.Value()
}

// Crate is a pushable block whose motion rewinds with time
type Crate struct {
	ID  uuid.UUID
	Pos Vec2
	Vel Vec2

	motion *engine.Rewinder[Vec2]
}

func newCrate(pos Vec2) *Crate {
	return &Crate{
		ID:     uuid.New(),
		Pos:    pos,
		motion: engine.NewRewinder[Vec2](timeline.NewRecording[Vec2]()),
	}
}

// Rewinding reports whether the crate replays its recorded motion
func (c *Crate) Rewinding() bool { return !c.motion.Recording() }

// Collectible disappears when collected and reappears when time rewinds past that tick
type Collectible struct {
	ID      uuid.UUID
	Pos     Vec2
	Visible bool

	visibility *engine.Rewinder[bool]
}

func newCollectible(pos Vec2) *Collectible {
	return &Collectible{
		ID:         uuid.New(),
		Pos:        pos,
		Visible:    true,
		visibility: engine.NewRewinder[bool](timeline.NewSchedule[bool]()),
	}
}

// Rewinding reports whether the collectible replays its recorded visibility
func (c *Collectible) Rewinding() bool { return !c.visibility.Recording() }

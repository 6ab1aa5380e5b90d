package game

import (
	"log"
	"math"
	"sort"

	"github.com/lixenwraith/rewind/audio"
	"github.com/lixenwraith/rewind/parameter"
)

// System is one stage of the per-tick world update
type System interface {
	Update(w *World)
	Priority() int // Lower values run first
}

func sortSystems(systems []System) {
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Priority() < systems[j].Priority()
	})
}

// PlayerSystem moves the live player, records its history and fires mirror crossings
type PlayerSystem struct{}

func (PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (PlayerSystem) Update(w *World) {
	p := w.Player
	p.step(w)
	p.record()

	// Entering a mirror column inverts time, staying on it does not
	cx, _ := p.Pos.Cell()
	onMirror := w.MirrorAt(cx)
	entered := onMirror && !p.onMirror
	p.onMirror = onMirror
	if entered {
		log.Printf("Player crossed mirror at column %d", cx)
		w.InvertTime()
	}
}

// CrateSystem pushes crates while they record and replays them while they play back
type CrateSystem struct{}

func (CrateSystem) Priority() int { return parameter.PriorityCrate }

func (CrateSystem) Update(w *World) {
	p := w.Player
	for _, c := range w.Crates {
		touching := p.Pos.SameCell(c.Pos)
		if touching && !c.motion.Recording() {
			log.Printf("Crate %s interrupted at tick %d", c.ID, w.Clock.Time())
			c.motion.Interrupt()
		}

		live := c.Pos
		if c.motion.Recording() {
			if touching && p.Vel.X != 0 {
				live.X += math.Copysign(parameter.PlayerSpeed, p.Vel.X)
			}
			c.Vel.Y += parameter.Gravity
			live.Y += c.Vel.Y
			w.confine(&live, &c.Vel)
		}
		c.Pos = c.motion.Tick(live)
	}
}

// CollectibleSystem hides collectibles the live player touches and replays their visibility
type CollectibleSystem struct{}

func (CollectibleSystem) Priority() int { return parameter.PriorityCollectible }

func (CollectibleSystem) Update(w *World) {
	for _, c := range w.Collectibles {
		live := c.Visible
		if c.Visible && w.Player.Pos.SameCell(c.Pos) {
			if !c.visibility.Recording() {
				c.visibility.Interrupt()
			}
			live = false
			log.Printf("Collectible %s collected at tick %d", c.ID, w.Clock.Time())
			w.play(audio.SoundCollect)
		}
		c.Visible = c.visibility.Tick(live)
	}
}

// GhostSystem steps every ghost one tick along its replay
type GhostSystem struct{}

func (GhostSystem) Priority() int { return parameter.PriorityGhost }

func (GhostSystem) Update(w *World) {
	for _, g := range w.Ghosts {
		g.step()
	}
}

package parameter

// World Layout
const (
	// DefaultWorldWidth is the playfield width in cells
	DefaultWorldWidth = 64

	// DefaultWorldHeight is the playfield height in cells
	DefaultWorldHeight = 16

	// MinWorldWidth and MinWorldHeight fit the spawn layout
	MinWorldWidth  = 20
	MinWorldHeight = 6

	// DefaultMaxGhosts caps concurrent ghosts, the oldest is dropped first
	DefaultMaxGhosts = 8

	// HUDHeight is the number of rows below the playfield reserved for the time HUD
	HUDHeight = 2

	// HUDBarWidth is the width of the progress bar in cells
	HUDBarWidth = 40
)

// Player Movement (cells per tick, float)
const (
	// PlayerSpeed is horizontal speed while a direction key is held
	PlayerSpeed = 0.5

	// PlayerFriction is velocity lost per tick once input stops
	PlayerFriction = 0.25

	// PlayerJumpVelocity is the upward velocity applied on jump
	PlayerJumpVelocity = -1.2

	// Gravity is vertical acceleration per tick
	Gravity = 0.08

	// InversionNudge is how far the player is displaced along its facing after an inversion
	InversionNudge = 2.0
)

// Entity Glyphs
const (
	PlayerChar      = '@'
	GhostChar       = '&'
	CrateChar       = '#'
	CollectibleChar = '*'
	MirrorChar      = '|'
	FloorChar       = '='
)

// System Priorities, lower runs first
const (
	PriorityPlayer      = 10
	PriorityCrate       = 20
	PriorityCollectible = 30
	PriorityGhost       = 40
)

// CollectibleLift is how many rows above the floor collectibles float
const CollectibleLift = 3

// Mirror height in rows above the floor
const MirrorHeight = 3

package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor       = tcell.NewRGBColor(120, 120, 130) // Gray
	RgbMirror      = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbPlayer      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbCrate       = tcell.NewRGBColor(160, 110, 60)  // Brown
	RgbCrateRewind = tcell.NewRGBColor(200, 160, 110) // Pale brown while replaying
	RgbCollectible = tcell.NewRGBColor(255, 255, 0)   // Bright yellow

	// Ghosts are colored by the direction their history was recorded in
	RgbGhostForward  = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbGhostBackward = tcell.NewRGBColor(100, 150, 255) // Normal blue

	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbForward      = tcell.NewRGBColor(0, 200, 0)     // Normal green
	RgbBackward     = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbProgressFill = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbWarning      = tcell.NewRGBColor(255, 165, 0)   // Orange
)

package game

import "stickbrawl/sim"

// Config holds the host window settings and the simulation configuration
type Config struct {
	// Sim is passed unchanged to every match
	Sim sim.Config

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	Title string
}

// DefaultConfig sizes the window to the arena
func DefaultConfig(simCfg sim.Config) Config {
	return Config{
		Sim:          simCfg,
		ScreenWidth:  int(simCfg.Arena.Width),
		ScreenHeight: int(simCfg.Arena.Height),
		Title:        "Stick Brawl",
	}
}

package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"stickbrawl/sim"
)

// screen is the part of the game shown to the player
type screen int

const (
	screenMenu screen = iota
	screenPlaying
	screenOver
)

// Game implements ebiten.Game around one sim.Match at a time.
type Game struct {
	config Config
	audio  sim.Audio

	keyboard *Keyboard
	canvas   *Canvas
	hud      *HUD

	match  *sim.Match
	screen screen
}

// NewGame creates a game showing the mode selection screen. audio may be nil.
func NewGame(config Config, audio sim.Audio) *Game {
	if audio == nil {
		audio = sim.Discard{}
	}
	names := append(config.Sim.Player1Keys.Names(), config.Sim.Player2Keys.Names()...)

	return &Game{
		config:   config,
		audio:    audio,
		keyboard: NewKeyboard(names...),
		canvas:   NewCanvas(),
		hud:      NewHUD(config.ScreenWidth, config.ScreenHeight),
		screen:   screenMenu,
	}
}

// Start skips the menu and begins a match in mode.
func (g *Game) Start(mode sim.Mode) error {
	opts := sim.Options{
		Audio:      g.audio,
		Scoreboard: g.hud,
		Keys:       g.keyboard,
	}
	if path := g.config.Sim.AI.Script; path != "" {
		g.attachScript(path, mode, &opts)
	}

	g.keyboard.Reset()
	g.hud.Reset()
	m, err := sim.NewMatch(g.config.Sim, mode, opts)
	if err != nil {
		return err
	}
	g.match = m
	g.screen = screenPlaying
	return nil
}

// attachScript drives the computer opponent with a script. A script that does
// not load leaves the naive AI in place.
func (g *Game) attachScript(path string, mode sim.Mode, opts *sim.Options) {
	if mode == sim.ModeMulti {
		return
	}
	fallback := sim.NewNaiveAI(g.config.Sim.AI)
	ai, err := sim.LoadScriptAI(path, fallback)
	if err != nil {
		log.Printf("Using built-in AI: %v", err)
		return
	}
	opts.Player2 = ai
}

// Update advances the current screen by one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowStats = !debugState.ShowStats
	}

	switch g.screen {
	case screenMenu:
		mode, ok := menuChoice()
		if !ok {
			return nil
		}
		if err := g.Start(mode); err != nil {
			return err
		}

	case screenPlaying:
		g.keyboard.Update()
		if !g.match.Tick() {
			g.screen = screenOver
		}

	case screenOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.match = nil
			g.screen = screenMenu
		}
	}
	return nil
}

func menuChoice() (sim.Mode, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1), inpututil.IsKeyJustPressed(ebiten.KeyNumpad1):
		return sim.ModeSingle, true
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2), inpututil.IsKeyJustPressed(ebiten.KeyNumpad2):
		return sim.ModeMulti, true
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3), inpututil.IsKeyJustPressed(ebiten.KeyNumpad3):
		return sim.ModeCPU, true
	}
	return 0, false
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	if g.match == nil {
		drawMenu(screen, float64(g.config.ScreenWidth), float64(g.config.ScreenHeight))
		return
	}

	g.canvas.Target(screen)
	g.match.Draw(g.canvas)
	g.hud.Draw(screen)

	if GetDebugState().ShowStats {
		drawStats(screen, g.match)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

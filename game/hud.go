package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"stickbrawl/sim"
)

const (
	barWidth  = 300.0
	barHeight = 14.0
	barMargin = 20.0
)

var (
	healthColor = color.RGBA{0, 200, 80, 255}
	energyColor = color.RGBA{80, 160, 255, 255}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

type playerBars struct {
	health, energy float64
}

// HUD implements sim.Scoreboard and draws bars and banners over the arena.
type HUD struct {
	width, height float64

	bars   [2]playerBars
	result sim.Result
}

// NewHUD creates a HUD for a screen of the given size.
func NewHUD(width, height int) *HUD {
	return &HUD{width: float64(width), height: float64(height)}
}

// SetBars stores bar fills for slot 1 or 2.
func (h *HUD) SetBars(slot int, health, energy float64) {
	if slot < 1 || slot > 2 {
		return
	}
	h.bars[slot-1] = playerBars{health: health, energy: energy}
}

// ShowResult latches the end of match banner.
func (h *HUD) ShowResult(r sim.Result) {
	h.result = r
}

// Reset clears the banner for a new match.
func (h *HUD) Reset() {
	h.result = sim.Result{}
	h.bars = [2]playerBars{}
}

// Draw renders both players' bars and, once the match is over, the result.
func (h *HUD) Draw(screen *ebiten.Image) {
	leftX := barMargin
	rightX := h.width - barMargin - barWidth

	h.drawPlayer(screen, "P1", leftX, h.bars[0], sim.ColorPlayer1)
	h.drawPlayer(screen, "P2", rightX, h.bars[1], sim.ColorPlayer2)

	if h.result.Over {
		drawCentered(screen, h.result.String(), h.width/2, h.height/2-20, 3, color.White)
		drawCentered(screen, "Press R to restart", h.width/2, h.height/2+30, 1.5, color.White)
	}
}

func (h *HUD) drawPlayer(screen *ebiten.Image, label string, x float64, b playerBars, clr color.Color) {
	drawText(screen, label, x, barMargin-16, 1, clr)
	drawBar(screen, x, barMargin, barWidth, barHeight, b.health, healthColor)
	drawBar(screen, x, barMargin+barHeight+4, barWidth, barHeight/2, b.energy, energyColor)
}

// drawMenu renders the mode selection screen.
func drawMenu(screen *ebiten.Image, width, height float64) {
	screen.Fill(Background)
	drawCentered(screen, "STICK BRAWL", width/2, height/3, 4, sim.ColorPlayer1)
	drawCentered(screen, "1  Single player", width/2, height/2, 1.5, color.White)
	drawCentered(screen, "2  Two players", width/2, height/2+30, 1.5, color.White)
	drawCentered(screen, "3  CPU vs CPU", width/2, height/2+60, 1.5, color.White)
}

// drawStats is the F1 debug overlay.
func drawStats(screen *ebiten.Image, m *sim.Match) {
	msg := fmt.Sprintf("TPS: %.0f\nFrame: %d\nClock: %v\nSlowMo: %.2f\nBullets: %d\nShake: %d",
		ebiten.ActualTPS(), m.Frame(), m.Elapsed(), m.SlowMo(), len(m.Bullets()), m.Shake())
	ebitenutil.DebugPrintAt(screen, msg, int(barMargin), int(barMargin+barHeight*2+8))
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

func drawCentered(screen *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	w, h := text.Measure(s, hudFace, 0)
	drawText(screen, s, cx-w*scale/2, cy-h*scale/2, scale, clr)
}

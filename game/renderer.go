package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Background is the arena clear color
var Background = color.RGBA{20, 20, 40, 255}

type canvasState struct {
	dx, dy      float64
	alpha       float64
	stroke      color.Color
	strokeWidth float64
	fill        color.Color
}

// Canvas implements sim.Canvas with ebiten's vector package.
type Canvas struct {
	dst   *ebiten.Image
	cur   canvasState
	stack []canvasState
}

// NewCanvas creates a canvas; Target must be called before each frame.
func NewCanvas() *Canvas {
	return &Canvas{cur: defaultCanvasState()}
}

func defaultCanvasState() canvasState {
	return canvasState{alpha: 1, stroke: color.White, strokeWidth: 1, fill: color.White}
}

// Target points the canvas at the frame being drawn and resets its state.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
	c.cur = defaultCanvasState()
	c.stack = c.stack[:0]
}

func (c *Canvas) Clear() {
	c.dst.Fill(Background)
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.cur.dx += dx
	c.cur.dy += dy
}

func (c *Canvas) SetStroke(clr color.Color, width float64) {
	c.cur.stroke = clr
	c.cur.strokeWidth = width
}

func (c *Canvas) SetFill(clr color.Color) { c.cur.fill = clr }
func (c *Canvas) SetAlpha(alpha float64)  { c.cur.alpha = alpha }

func (c *Canvas) StrokeCircle(cx, cy, r float64) {
	x, y := c.point(cx, cy)
	vector.StrokeCircle(c.dst, x, y, float32(r), float32(c.cur.strokeWidth), c.color(c.cur.stroke), true)
}

func (c *Canvas) FillCircle(cx, cy, r float64) {
	x, y := c.point(cx, cy)
	vector.DrawFilledCircle(c.dst, x, y, float32(r), c.color(c.cur.fill), true)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64) {
	ax, ay := c.point(x1, y1)
	bx, by := c.point(x2, y2)
	vector.StrokeLine(c.dst, ax, ay, bx, by, float32(c.cur.strokeWidth), c.color(c.cur.stroke), true)
}

func (c *Canvas) point(x, y float64) (float32, float32) {
	return float32(x + c.cur.dx), float32(y + c.cur.dy)
}

// color applies the global alpha to clr.
func (c *Canvas) color(clr color.Color) color.Color {
	if c.cur.alpha >= 1 {
		return clr
	}
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	n.A = uint8(float64(n.A) * c.cur.alpha)
	return n
}

// drawBar draws a filled bar of the given fill ratio over a dark track.
func drawBar(dst *ebiten.Image, x, y, w, h, ratio float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), color.RGBA{60, 60, 60, 255}, true)
	if ratio > 0 {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w*ratio), float32(h), clr, true)
	}
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, color.White, true)
}

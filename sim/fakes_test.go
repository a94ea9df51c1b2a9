package sim

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

type fakeKeys map[string]bool

func (k fakeKeys) Pressed(name string) bool { return k[name] }
func (k fakeKeys) Release(name string)      { k[name] = false }

type playedCue struct {
	cue    Cue
	rewind bool
}

type recordAudio struct {
	played []playedCue
}

func (a *recordAudio) Play(cue Cue, rewind bool) {
	a.played = append(a.played, playedCue{cue: cue, rewind: rewind})
}

func (a *recordAudio) count(cue Cue) int {
	n := 0
	for _, p := range a.played {
		if p.cue == cue {
			n++
		}
	}
	return n
}

type bars struct {
	health, energy float64
}

type recordBoard struct {
	bars    map[int]bars
	results []Result
}

func newRecordBoard() *recordBoard {
	return &recordBoard{bars: make(map[int]bars)}
}

func (b *recordBoard) SetBars(slot int, health, energy float64) {
	b.bars[slot] = bars{health: health, energy: energy}
}

func (b *recordBoard) ShowResult(r Result) {
	b.results = append(b.results, r)
}

type drawCall struct {
	op    string
	args  []float64
	alpha float64
	clr   color.Color
}

type canvasState struct {
	dx, dy float64
	alpha  float64
	stroke color.Color
	fill   color.Color
}

type recordCanvas struct {
	calls []drawCall
	cur   canvasState
	stack []canvasState
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{cur: canvasState{alpha: 1}}
}

func (c *recordCanvas) add(op string, clr color.Color, args ...float64) {
	c.calls = append(c.calls, drawCall{op: op, args: args, alpha: c.cur.alpha, clr: clr})
}

func (c *recordCanvas) Clear() { c.add("clear", nil) }
func (c *recordCanvas) Save()  { c.stack = append(c.stack, c.cur) }
func (c *recordCanvas) Restore() {
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}
func (c *recordCanvas) Translate(dx, dy float64) {
	c.cur.dx += dx
	c.cur.dy += dy
}
func (c *recordCanvas) SetStroke(clr color.Color, _ float64) {
	c.cur.stroke = clr
}
func (c *recordCanvas) SetFill(clr color.Color) { c.cur.fill = clr }
func (c *recordCanvas) SetAlpha(a float64)      { c.cur.alpha = a }
func (c *recordCanvas) StrokeCircle(cx, cy, r float64) {
	c.add("strokeCircle", c.cur.stroke, cx+c.cur.dx, cy+c.cur.dy, r)
}
func (c *recordCanvas) FillCircle(cx, cy, r float64) {
	c.add("fillCircle", c.cur.fill, cx+c.cur.dx, cy+c.cur.dy, r)
}
func (c *recordCanvas) StrokeLine(x1, y1, x2, y2 float64) {
	c.add("line", c.cur.stroke, x1+c.cur.dx, y1+c.cur.dy, x2+c.cur.dx, y2+c.cur.dy)
}

func (c *recordCanvas) ops(op string) []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.op == op {
			out = append(out, call)
		}
	}
	return out
}

// newTestMatch builds a match with recording collaborators and a fixed seed.
func newTestMatch(t *testing.T, mode Mode, keys fakeKeys) (*Match, *recordAudio, *recordBoard) {
	t.Helper()
	audio := &recordAudio{}
	board := newRecordBoard()
	m, err := NewMatch(DefaultConfig(), mode, Options{
		Audio:      audio,
		Scoreboard: board,
		Keys:       keys,
		Rand:       testRNG(),
	})
	require.NoError(t, err)
	return m, audio, board
}

// idle is a controller that never acts.
type idle struct{}

func (idle) Decide(*Match, *Fighter, *Fighter) Intent { return Intent{} }

// scripted replays fixed intents, then idles.
type scripted struct {
	intents []Intent
	calls   int
}

func (s *scripted) Decide(*Match, *Fighter, *Fighter) Intent {
	s.calls++
	if len(s.intents) == 0 {
		return Intent{}
	}
	in := s.intents[0]
	s.intents = s.intents[1:]
	return in
}

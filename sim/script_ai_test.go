package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptAIChase(t *testing.T) {
	ai, err := LoadScriptAI("testdata/chase.js", nil)
	require.NoError(t, err)
	m, _, _ := newTestMatch(t, ModeCPU, fakeKeys{})
	p1, p2 := m.Fighter(1), m.Fighter(2)

	assert.Equal(t, Intent{Right: true}, ai.Decide(m, p1, p2))

	p2.X = p1.X - 20
	assert.Equal(t, Intent{Left: true, Punch: true}, ai.Decide(m, p1, p2))

	p1.Combo = 2
	assert.Equal(t, Intent{Left: true, Punch: true, Kick: true}, ai.Decide(m, p1, p2))
	assert.False(t, ai.Failed())
}

func TestScriptAIDrivesMatch(t *testing.T) {
	ai, err := LoadScriptAI("testdata/chase.js", nil)
	require.NoError(t, err)
	m, err := NewMatch(DefaultConfig(), ModeCPU, Options{Player1: ai, Player2: idle{}, Rand: testRNG()})
	require.NoError(t, err)
	p2 := m.Fighter(2)

	for i := 0; i < 400 && m.Tick(); i++ {
	}

	assert.False(t, ai.Failed())
	assert.Less(t, p2.Health, p2.MaxHealth, "chaser reached and hit the idle fighter")
}

func TestScriptAIContext(t *testing.T) {
	code := `function decide(ctx) {
		return {
			jump: ctx.self.grounded && ctx.arenaWidth === 900,
			crouch: ctx.opponent.state === "idle" && ctx.opponent.maxHealth === 120,
			kick: ctx.distance === 500 && ctx.frame === 0
		};
	}`
	ai, err := NewScriptAI("context.js", code, nil)
	require.NoError(t, err)
	m, _, _ := newTestMatch(t, ModeCPU, fakeKeys{})

	in := ai.Decide(m, m.Fighter(1), m.Fighter(2))

	assert.Equal(t, Intent{Jump: true, Crouch: true, Kick: true}, in)
}

func TestScriptAINullResult(t *testing.T) {
	ai, err := NewScriptAI("null.js", "function decide(ctx) { return null; }", nil)
	require.NoError(t, err)
	m, _, _ := newTestMatch(t, ModeCPU, fakeKeys{})

	assert.Equal(t, Intent{}, ai.Decide(m, m.Fighter(1), m.Fighter(2)))
	assert.False(t, ai.Failed())
}

func TestNewScriptAIErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "no decide", code: "var decide = 3;", want: "decide"},
		{name: "syntax error", code: "function decide(ctx) {", want: "bad.js"},
		{name: "throws at load", code: "throw new Error('boom');", want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScriptAI("bad.js", tt.code, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScriptAIMissingFile(t *testing.T) {
	_, err := LoadScriptAI("testdata/missing.js", nil)
	assert.Error(t, err)
}

func TestScriptAIFallsBackAfterError(t *testing.T) {
	fallback := &scripted{}
	ai, err := LoadScriptAI("testdata/broken.js", fallback)
	require.NoError(t, err)
	m, err := NewMatch(DefaultConfig(), ModeCPU, Options{Player1: ai, Player2: idle{}, Rand: testRNG()})
	require.NoError(t, err)

	m.Tick()
	m.Tick()
	assert.False(t, ai.Failed())
	assert.Zero(t, fallback.calls)

	m.Tick() // the script throws from frame 3
	assert.True(t, ai.Failed())
	assert.Equal(t, 1, fallback.calls)

	m.Tick()
	assert.Equal(t, 2, fallback.calls, "script is not retried")
}

package sim

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/dop251/goja"
)

// ScriptFighter is a fighter as seen by an AI script.
type ScriptFighter struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VY        float64 `json:"vy"`
	Facing    float64 `json:"facing"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	Energy    float64 `json:"energy"`
	Combo     int     `json:"combo"`
	Grounded  bool    `json:"grounded"`
	State     string  `json:"state"`
}

// ScriptContext is passed to decide(ctx) every frame.
type ScriptContext struct {
	Frame      int           `json:"frame"`
	ArenaWidth float64       `json:"arenaWidth"`
	Distance   float64       `json:"distance"`
	Self       ScriptFighter `json:"self"`
	Opponent   ScriptFighter `json:"opponent"`
}

// BuildScriptContext snapshots the match for self.
func BuildScriptContext(m *Match, self, enemy *Fighter) ScriptContext {
	return ScriptContext{
		Frame:      m.Frame(),
		ArenaWidth: m.Config().Arena.Width,
		Distance:   math.Abs(self.X - enemy.X),
		Self:       scriptFighter(self, m),
		Opponent:   scriptFighter(enemy, m),
	}
}

func scriptFighter(f *Fighter, m *Match) ScriptFighter {
	return ScriptFighter{
		X:         f.X,
		Y:         f.Y,
		VY:        f.VY,
		Facing:    f.Facing,
		Health:    f.Health,
		MaxHealth: f.MaxHealth,
		Energy:    f.Energy,
		Combo:     f.Combo,
		Grounded:  f.Grounded(),
		State:     f.State(m.Elapsed()).String(),
	}
}

// ScriptAI runs a JavaScript decide(ctx) function returning an intent object
// such as {right: true, punch: true}.
type ScriptAI struct {
	name     string
	vm       *goja.Runtime
	decide   goja.Callable
	fallback Controller
	failed   bool
}

// NewScriptAI compiles code and checks that it defines decide. After a runtime
// error the controller hands over to fallback for the rest of the match.
func NewScriptAI(name, code string, fallback Controller) (*ScriptAI, error) {
	vm := goja.New()
	if _, err := vm.RunScript(name, code); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	decide, ok := goja.AssertFunction(vm.Get("decide"))
	if !ok {
		return nil, fmt.Errorf("script %s must define a 'decide' function", name)
	}
	return &ScriptAI{name: name, vm: vm, decide: decide, fallback: fallback}, nil
}

// LoadScriptAI reads a script file.
func LoadScriptAI(path string, fallback Controller) (*ScriptAI, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return NewScriptAI(path, string(code), fallback)
}

// Failed reports whether the script has been abandoned for the fallback.
func (s *ScriptAI) Failed() bool {
	return s.failed
}

func (s *ScriptAI) Decide(m *Match, self, enemy *Fighter) Intent {
	if s.failed {
		return s.fallbackDecide(m, self, enemy)
	}
	in, err := s.run(BuildScriptContext(m, self, enemy))
	if err != nil {
		log.Printf("AI script %s disabled: %v", s.name, err)
		s.failed = true
		return s.fallbackDecide(m, self, enemy)
	}
	return in
}

func (s *ScriptAI) fallbackDecide(m *Match, self, enemy *Fighter) Intent {
	if s.fallback == nil {
		return Intent{}
	}
	return s.fallback.Decide(m, self, enemy)
}

func (s *ScriptAI) run(ctx ScriptContext) (Intent, error) {
	ctxJSON, err := json.Marshal(ctx)
	if err != nil {
		return Intent{}, fmt.Errorf("failed to serialize context: %w", err)
	}
	ctxObj, err := s.vm.RunString("(" + string(ctxJSON) + ")")
	if err != nil {
		return Intent{}, fmt.Errorf("failed to parse context: %w", err)
	}

	result, err := s.decide(goja.Undefined(), ctxObj)
	if err != nil {
		return Intent{}, fmt.Errorf("decide failed: %w", err)
	}
	if goja.IsUndefined(result) || goja.IsNull(result) {
		return Intent{}, nil
	}

	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return Intent{}, fmt.Errorf("failed to serialize result: %w", err)
	}
	var in Intent
	if err := json.Unmarshal(resultJSON, &in); err != nil {
		return Intent{}, fmt.Errorf("failed to parse result: %w (result: %s)", err, resultJSON)
	}
	return in, nil
}

package sim

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/flapper/ecs/component"
)

// keysDispatchScript calls the user's keys(tick) after the script body.
const keysDispatchScript = `
__keys := keys(__tick)
`

// ScriptKeys feeds held keys from a tengo script defining keys(tick), which
// returns a map with any of up, left, right and end set to true.
type ScriptKeys struct {
	compiled *tengo.Compiled
	tick     int
	err      error
}

func NewScriptKeys(src []byte) (*ScriptKeys, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + keysDispatchScript))
	_ = script.Add("__tick", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("sim: compile keys script: %w", err)
	}
	return &ScriptKeys{compiled: compiled}, nil
}

// Poll runs keys for the next tick. After the first script error it keeps
// returning no keys; the error is available from Err.
func (s *ScriptKeys) Poll() component.Input {
	if s.err != nil {
		return component.Input{}
	}
	tick := s.tick
	s.tick++

	if err := s.compiled.Set("__tick", tick); err != nil {
		s.err = fmt.Errorf("sim: tick %d: %w", tick, err)
		return component.Input{}
	}
	if err := s.compiled.Run(); err != nil {
		s.err = fmt.Errorf("sim: tick %d: %w", tick, err)
		return component.Input{}
	}

	result := s.compiled.Get("__keys").Map()
	if result == nil {
		s.err = fmt.Errorf("sim: tick %d: keys must return a map", tick)
		return component.Input{}
	}
	return component.Input{
		Up:    truthy(result["up"]),
		Left:  truthy(result["left"]),
		Right: truthy(result["right"]),
		End:   truthy(result["end"]),
	}
}

func (s *ScriptKeys) Err() error {
	return s.err
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// HoldKeys holds the same keys every tick.
type HoldKeys struct {
	Input component.Input
}

func (h HoldKeys) Poll() component.Input {
	return h.Input
}

// ParseHold parses a comma separated key list such as "up,left".
func ParseHold(s string) (HoldKeys, error) {
	var h HoldKeys
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
		case "up":
			h.Input.Up = true
		case "left":
			h.Input.Left = true
		case "right":
			h.Input.Right = true
		default:
			return HoldKeys{}, fmt.Errorf("sim: unknown key %q", part)
		}
	}
	return h, nil
}

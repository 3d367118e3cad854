package flipbook

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Source string  `json:"source,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Page   int     `json:"page,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input and page notifications across
// frames for automated runs. Attach to a Dispatcher via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script and returns a ScriptRunner ready to
// be attached to a Dispatcher.
//
//	{"steps": [
//	  {"action": "flip", "page": 2},
//	  {"action": "drag", "source": "touch", "fromX": 850, "fromY": 330, "toX": 1000, "toY": 350, "frames": 10},
//	  {"action": "wait", "frames": 30}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := sonic.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "wait", "flip":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseSource(st.Source); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called from
// Dispatcher.Update before input is processed each frame.
func (d *Dispatcher) SetScriptRunner(runner *ScriptRunner) {
	d.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(d *Dispatcher) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	src, _ := parseSource(st.Source)
	switch st.Action {
	case "press":
		d.InjectPress(src, st.X, st.Y)
	case "move":
		d.InjectMove(src, st.X, st.Y)
	case "release":
		d.InjectRelease(src, st.X, st.Y)
	case "drag":
		d.InjectDrag(src, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "flip":
		d.book.OnFlip(st.Page)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(d.injectQueue) == 0 {
		r.done = true
	}
}

func parseSource(s string) (Source, error) {
	switch s {
	case "", "pointer", "mouse":
		return SourcePointer, nil
	case "touch":
		return SourceTouch, nil
	default:
		return SourcePointer, fmt.Errorf("unknown source %q", s)
	}
}
